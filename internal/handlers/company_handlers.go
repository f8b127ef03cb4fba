package handlers

import (
	"net/http"

	"github.com/01moynul/umkm-web-golang/internal/cache"
	"github.com/01moynul/umkm-web-golang/internal/models"
	"github.com/gin-gonic/gin"
)

// CompanyInfoInput is the admin "company info" form.
type CompanyInfoInput struct {
	Name           string `json:"name" binding:"required"`
	Description    string `json:"description"`
	Profile        string `json:"profile"`
	Vision         string `json:"vision"`
	Mission        string `json:"mission"`
	Address        string `json:"address"`
	OperatingHours string `json:"operatingHours"`
	Phone          string `json:"phone"`
	Email          string `json:"email" binding:"omitempty,email"`
	WhatsApp       string `json:"whatsapp"`
	Website        string `json:"website" binding:"omitempty,url"`
	LogoURL        string `json:"logoUrl"`
}

// GetCompanyInfo handles GET /v1/company and GET /v1/admin/company
func (h *Handlers) GetCompanyInfo(c *gin.Context) {
	var info models.CompanyInfo
	err := h.cached(c, cache.KeyCompany, &info, func() error {
		got, err := h.Store.Company.Get(c.Request.Context())
		if err != nil {
			return err
		}
		info = *got
		return nil
	})
	if err != nil {
		h.fail(c, err, "Company info")
		return
	}

	c.JSON(http.StatusOK, gin.H{"company": info})
}

// UpdateCompanyInfo handles PUT /v1/admin/company
// The first save creates the row.
func (h *Handlers) UpdateCompanyInfo(c *gin.Context) {
	var input CompanyInfoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	info := &models.CompanyInfo{
		Name:           input.Name,
		Description:    input.Description,
		Profile:        input.Profile,
		Vision:         input.Vision,
		Mission:        input.Mission,
		Address:        input.Address,
		OperatingHours: input.OperatingHours,
		Phone:          input.Phone,
		Email:          input.Email,
		WhatsApp:       input.WhatsApp,
		Website:        input.Website,
		LogoURL:        input.LogoURL,
	}
	if err := h.Store.Company.Upsert(c.Request.Context(), info); err != nil {
		h.fail(c, err, "Company info")
		return
	}
	h.invalidate(c, cache.KeyCompany)

	c.JSON(http.StatusOK, gin.H{"message": "Company info saved", "company": info})
}
