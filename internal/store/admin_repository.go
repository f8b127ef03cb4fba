package store

import (
	"context"
	"time"

	"github.com/01moynul/umkm-web-golang/internal/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type AdminRepo struct {
	DB *sqlx.DB
}

// Any reports whether at least one admin profile exists.
func (r *AdminRepo) Any(ctx context.Context) (bool, error) {
	var exists bool
	if err := r.DB.GetContext(ctx, &exists, "SELECT EXISTS(SELECT 1 FROM admin_profiles)"); err != nil {
		return false, wrap("check admin exists", err)
	}
	return exists, nil
}

func (r *AdminRepo) GetByEmail(ctx context.Context, email string) (*models.AdminProfile, error) {
	var a models.AdminProfile
	if err := r.DB.GetContext(ctx, &a, "SELECT * FROM admin_profiles WHERE email = ?", email); err != nil {
		return nil, wrap("get admin by email", err)
	}
	return &a, nil
}

func (r *AdminRepo) GetByID(ctx context.Context, id string) (*models.AdminProfile, error) {
	var a models.AdminProfile
	if err := r.DB.GetContext(ctx, &a, "SELECT * FROM admin_profiles WHERE id = ?", id); err != nil {
		return nil, wrap("get admin by id", err)
	}
	return &a, nil
}

func (r *AdminRepo) Create(ctx context.Context, a *models.AdminProfile) error {
	now := time.Now()
	a.ID = uuid.NewString()
	a.CreatedAt = now
	a.UpdatedAt = now

	query := `
		INSERT INTO admin_profiles (id, email, password_hash, full_name, role, created_at, updated_at)
		VALUES (:id, :email, :password_hash, :full_name, :role, :created_at, :updated_at)`
	_, err := r.DB.NamedExecContext(ctx, query, a)
	return wrap("create admin", err)
}

func (r *AdminRepo) UpdatePassword(ctx context.Context, id, hash string) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE admin_profiles SET password_hash = ?, updated_at = ? WHERE id = ?", hash, time.Now(), id)
	return expectRow("update admin password", res, err)
}

func (r *AdminRepo) List(ctx context.Context) ([]models.AdminProfile, error) {
	admins := []models.AdminProfile{}
	if err := r.DB.SelectContext(ctx, &admins, "SELECT * FROM admin_profiles ORDER BY created_at ASC"); err != nil {
		return nil, wrap("list admins", err)
	}
	return admins, nil
}
