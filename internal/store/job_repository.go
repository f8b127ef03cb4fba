package store

import (
	"context"
	"time"

	"github.com/01moynul/umkm-web-golang/internal/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type JobRepo struct {
	DB *sqlx.DB
}

func (r *JobRepo) List(ctx context.Context, activeOnly bool) ([]models.JobPosting, error) {
	query := "SELECT * FROM job_postings"
	if activeOnly {
		query += " WHERE is_active = TRUE"
	}
	query += " ORDER BY created_at DESC"

	jobs := []models.JobPosting{}
	if err := r.DB.SelectContext(ctx, &jobs, query); err != nil {
		return nil, wrap("list job postings", err)
	}
	return jobs, nil
}

func (r *JobRepo) Get(ctx context.Context, id string) (*models.JobPosting, error) {
	var j models.JobPosting
	if err := r.DB.GetContext(ctx, &j, "SELECT * FROM job_postings WHERE id = ?", id); err != nil {
		return nil, wrap("get job posting", err)
	}
	return &j, nil
}

func (r *JobRepo) Create(ctx context.Context, j *models.JobPosting) error {
	now := time.Now()
	j.ID = uuid.NewString()
	j.CreatedAt = now
	j.UpdatedAt = now

	query := `
		INSERT INTO job_postings
		(id, title, location, employment_type, description, requirements, salary_range, is_active, created_at, updated_at)
		VALUES (:id, :title, :location, :employment_type, :description, :requirements, :salary_range, :is_active, :created_at, :updated_at)`
	_, err := r.DB.NamedExecContext(ctx, query, j)
	return wrap("create job posting", err)
}

func (r *JobRepo) Update(ctx context.Context, j *models.JobPosting) error {
	j.UpdatedAt = time.Now()
	query := `
		UPDATE job_postings
		SET title = :title, location = :location, employment_type = :employment_type,
			description = :description, requirements = :requirements, salary_range = :salary_range,
			is_active = :is_active, updated_at = :updated_at
		WHERE id = :id`
	res, err := r.DB.NamedExecContext(ctx, query, j)
	return expectRow("update job posting", res, err)
}

func (r *JobRepo) SetActive(ctx context.Context, id string, active bool) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE job_postings SET is_active = ?, updated_at = ? WHERE id = ?", active, time.Now(), id)
	return expectRow("set job posting active", res, err)
}

// Delete also removes the posting's applications (ON DELETE CASCADE).
func (r *JobRepo) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM job_postings WHERE id = ?", id)
	return expectRow("delete job posting", res, err)
}

func (r *JobRepo) CountActive(ctx context.Context) (int, error) {
	return count(ctx, r.DB, "count active jobs", "SELECT COUNT(*) FROM job_postings WHERE is_active = TRUE")
}

type ApplicationRepo struct {
	DB *sqlx.DB
}

func (r *ApplicationRepo) Create(ctx context.Context, a *models.JobApplication) error {
	a.ID = uuid.NewString()
	a.CreatedAt = time.Now()

	query := `
		INSERT INTO job_applications (id, job_id, full_name, email, phone, cover_letter, resume_url, created_at)
		VALUES (:id, :job_id, :full_name, :email, :phone, :cover_letter, :resume_url, :created_at)`
	_, err := r.DB.NamedExecContext(ctx, query, a)
	return wrap("create job application", err)
}

const applicationColumns = `
		a.id, a.job_id, a.full_name, a.email, a.phone, a.cover_letter, a.resume_url, a.created_at,
		j.title AS job_title`

func (r *ApplicationRepo) ListByJob(ctx context.Context, jobID string) ([]models.JobApplication, error) {
	apps := []models.JobApplication{}
	query := `SELECT` + applicationColumns + `
		FROM job_applications a
		JOIN job_postings j ON j.id = a.job_id
		WHERE a.job_id = ?
		ORDER BY a.created_at DESC`
	if err := r.DB.SelectContext(ctx, &apps, query, jobID); err != nil {
		return nil, wrap("list job applications", err)
	}
	return apps, nil
}

func (r *ApplicationRepo) List(ctx context.Context) ([]models.JobApplication, error) {
	apps := []models.JobApplication{}
	query := `SELECT` + applicationColumns + `
		FROM job_applications a
		JOIN job_postings j ON j.id = a.job_id
		ORDER BY a.created_at DESC`
	if err := r.DB.SelectContext(ctx, &apps, query); err != nil {
		return nil, wrap("list job applications", err)
	}
	return apps, nil
}

func (r *ApplicationRepo) Count(ctx context.Context) (int, error) {
	return count(ctx, r.DB, "count job applications", "SELECT COUNT(*) FROM job_applications")
}
