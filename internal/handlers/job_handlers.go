package handlers

import (
	"net/http"

	"github.com/01moynul/umkm-web-golang/internal/models"
	"github.com/gin-gonic/gin"
)

type JobPostingInput struct {
	Title          string `json:"title" binding:"required,max=255"`
	Location       string `json:"location" binding:"required"`
	EmploymentType string `json:"employmentType" binding:"required,oneof=full-time part-time contract internship"`
	Description    string `json:"description" binding:"required"`
	Requirements   string `json:"requirements"`
	SalaryRange    string `json:"salaryRange"`
	IsActive       *bool  `json:"isActive"`
}

type JobApplicationInput struct {
	FullName    string `json:"fullName" binding:"required,max=255"`
	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone" binding:"required"`
	CoverLetter string `json:"coverLetter"`
	ResumeURL   string `json:"resumeUrl" binding:"omitempty,url"`
}

//
// --- Public Career Handlers ---
//

// GetOpenJobs handles GET /v1/jobs
func (h *Handlers) GetOpenJobs(c *gin.Context) {
	jobs, err := h.Store.Jobs.List(c.Request.Context(), true)
	if err != nil {
		h.fail(c, err, "Jobs")
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

// GetOpenJob handles GET /v1/jobs/:id
func (h *Handlers) GetOpenJob(c *gin.Context) {
	job, ok := h.activeJob(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"job": job})
}

// ApplyForJob handles POST /v1/jobs/:id/applications
func (h *Handlers) ApplyForJob(c *gin.Context) {
	var input JobApplicationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	job, ok := h.activeJob(c)
	if !ok {
		return
	}

	application := &models.JobApplication{
		JobID:       job.ID,
		FullName:    input.FullName,
		Email:       input.Email,
		Phone:       input.Phone,
		CoverLetter: input.CoverLetter,
		ResumeURL:   input.ResumeURL,
	}
	if err := h.Store.Applications.Create(c.Request.Context(), application); err != nil {
		h.fail(c, err, "Application")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Application submitted", "application": application})
}

// activeJob loads the :id posting and hides closed ones.
func (h *Handlers) activeJob(c *gin.Context) (*models.JobPosting, bool) {
	job, err := h.Store.Jobs.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, "Job")
		return nil, false
	}
	if !job.IsActive {
		c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		return nil, false
	}
	return job, true
}

//
// --- Admin Career Handlers ---
//

// AdminListJobs handles GET /v1/admin/jobs
func (h *Handlers) AdminListJobs(c *gin.Context) {
	jobs, err := h.Store.Jobs.List(c.Request.Context(), false)
	if err != nil {
		h.fail(c, err, "Jobs")
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

// AdminGetJob handles GET /v1/admin/jobs/:id
func (h *Handlers) AdminGetJob(c *gin.Context) {
	job, err := h.Store.Jobs.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, "Job")
		return
	}
	c.JSON(http.StatusOK, gin.H{"job": job})
}

// CreateJob handles POST /v1/admin/jobs
func (h *Handlers) CreateJob(c *gin.Context) {
	var input JobPostingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	job := &models.JobPosting{IsActive: true}
	applyJobInput(job, &input)
	if err := h.Store.Jobs.Create(c.Request.Context(), job); err != nil {
		h.fail(c, err, "Job")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Job posting created", "job": job})
}

// UpdateJob handles PUT /v1/admin/jobs/:id
func (h *Handlers) UpdateJob(c *gin.Context) {
	var input JobPostingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	job, err := h.Store.Jobs.Get(ctx, c.Param("id"))
	if err != nil {
		h.fail(c, err, "Job")
		return
	}
	applyJobInput(job, &input)
	if err := h.Store.Jobs.Update(ctx, job); err != nil {
		h.fail(c, err, "Job")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job posting updated", "job": job})
}

// ToggleJobActive handles PATCH /v1/admin/jobs/:id/active
func (h *Handlers) ToggleJobActive(c *gin.Context) {
	ctx := c.Request.Context()
	job, err := h.Store.Jobs.Get(ctx, c.Param("id"))
	if err != nil {
		h.fail(c, err, "Job")
		return
	}

	job.IsActive = !job.IsActive
	if err := h.Store.Jobs.SetActive(ctx, job.ID, job.IsActive); err != nil {
		h.fail(c, err, "Job")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job status updated", "job": job})
}

// DeleteJob handles DELETE /v1/admin/jobs/:id
// Applications to the posting are removed with it.
func (h *Handlers) DeleteJob(c *gin.Context) {
	if err := h.Store.Jobs.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err, "Job")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job posting deleted"})
}

// GetJobApplications handles GET /v1/admin/jobs/:id/applications
func (h *Handlers) GetJobApplications(c *gin.Context) {
	ctx := c.Request.Context()
	jobID := c.Param("id")
	if _, err := h.Store.Jobs.Get(ctx, jobID); err != nil {
		h.fail(c, err, "Job")
		return
	}

	apps, err := h.Store.Applications.ListByJob(ctx, jobID)
	if err != nil {
		h.fail(c, err, "Applications")
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": apps})
}

// GetAllApplications handles GET /v1/admin/applications
func (h *Handlers) GetAllApplications(c *gin.Context) {
	apps, err := h.Store.Applications.List(c.Request.Context())
	if err != nil {
		h.fail(c, err, "Applications")
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": apps})
}

func applyJobInput(j *models.JobPosting, input *JobPostingInput) {
	j.Title = input.Title
	j.Location = input.Location
	j.EmploymentType = input.EmploymentType
	j.Description = input.Description
	j.Requirements = input.Requirements
	j.SalaryRange = input.SalaryRange
	j.IsActive = boolOr(input.IsActive, j.IsActive)
}
