package models

import "time"

// Employment types accepted for a job posting.
const (
	EmploymentFullTime   = "full-time"
	EmploymentPartTime   = "part-time"
	EmploymentContract   = "contract"
	EmploymentInternship = "internship"
)

// JobPosting is the model for the 'job_postings' table
type JobPosting struct {
	ID             string    `json:"id" db:"id"`
	Title          string    `json:"title" db:"title"`
	Location       string    `json:"location" db:"location"`
	EmploymentType string    `json:"employmentType" db:"employment_type"`
	Description    string    `json:"description" db:"description"`
	Requirements   string    `json:"requirements" db:"requirements"`
	SalaryRange    string    `json:"salaryRange" db:"salary_range"`
	IsActive       bool      `json:"isActive" db:"is_active"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`
}

// JobApplication is the model for the 'job_applications' table
type JobApplication struct {
	ID          string    `json:"id" db:"id"`
	JobID       string    `json:"jobId" db:"job_id"`
	FullName    string    `json:"fullName" db:"full_name"`
	Email       string    `json:"email" db:"email"`
	Phone       string    `json:"phone" db:"phone"`
	CoverLetter string    `json:"coverLetter" db:"cover_letter"`
	ResumeURL   string    `json:"resumeUrl" db:"resume_url"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`

	// Joined from job_postings when listing across jobs
	JobTitle *string `json:"jobTitle,omitempty" db:"job_title"`
}
