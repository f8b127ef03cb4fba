package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/01moynul/umkm-web-golang/internal/models"
	"github.com/01moynul/umkm-web-golang/internal/store"
	"github.com/gin-gonic/gin"
)

// --- Admin Login ---

// LoginInput accepts either an email address or an admin id as identifier.
type LoginInput struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

type AdminAccountInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"fullName" binding:"required"`
	Role     string `json:"role" binding:"omitempty,oneof=admin super_admin"`
}

type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=8"`
}

// Login is the handler for POST /v1/login
// Unknown accounts and wrong passwords get the same answer.
func (h *Handlers) Login(c *gin.Context) {
	// 1. --- Bind & Validate JSON ---
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// 2. --- Find the Admin ---
	ctx := c.Request.Context()
	identifier := strings.TrimSpace(input.Identifier)
	var (
		admin *models.AdminProfile
		err   error
	)
	if strings.Contains(identifier, "@") {
		admin, err = h.Store.Admins.GetByEmail(ctx, strings.ToLower(identifier))
	} else {
		admin, err = h.Store.Admins.GetByID(ctx, identifier)
	}
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		h.fail(c, err, "Admin")
		return
	}

	// 3. --- Check Password ---
	match, err := admin.CheckPassword(input.Password)
	if err != nil {
		h.fail(c, err, "Admin")
		return
	}
	if !match {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	// 4. --- Issue the Token ---
	token, err := h.Tokens.Generate(admin.ID, admin.Role)
	if err != nil {
		h.fail(c, err, "Token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"admin":   admin,
	})
}

// --- First-Run Setup ---

// GetSetupStatus handles GET /v1/setup/status
func (h *Handlers) GetSetupStatus(c *gin.Context) {
	exists, err := h.Store.Admins.Any(c.Request.Context())
	if err != nil {
		h.fail(c, err, "Admin")
		return
	}
	c.JSON(http.StatusOK, gin.H{"adminExists": exists})
}

// CreateFirstAdmin handles POST /v1/setup/first-admin
// It only works while no admin account exists, and always makes a super admin.
func (h *Handlers) CreateFirstAdmin(c *gin.Context) {
	var input AdminAccountInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	exists, err := h.Store.Admins.Any(ctx)
	if err != nil {
		h.fail(c, err, "Admin")
		return
	}
	if exists {
		c.JSON(http.StatusConflict, gin.H{"error": "An admin account already exists"})
		return
	}

	input.Role = models.RoleSuperAdmin
	h.createAdmin(c, &input, "First admin created")
}

// --- Admin Accounts ---

// GetMe handles GET /v1/admin/me
func (h *Handlers) GetMe(c *gin.Context) {
	admin, err := h.Store.Admins.GetByID(c.Request.Context(), currentAdminID(c))
	if err != nil {
		h.fail(c, err, "Admin")
		return
	}
	c.JSON(http.StatusOK, gin.H{"admin": admin})
}

// ChangePassword handles PATCH /v1/admin/me/password
func (h *Handlers) ChangePassword(c *gin.Context) {
	var input ChangePasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	admin, err := h.Store.Admins.GetByID(ctx, currentAdminID(c))
	if err != nil {
		h.fail(c, err, "Admin")
		return
	}

	match, err := admin.CheckPassword(input.CurrentPassword)
	if err != nil {
		h.fail(c, err, "Admin")
		return
	}
	if !match {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Current password is incorrect"})
		return
	}

	var password models.Password
	if err := password.Set(input.NewPassword); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}
	if err := h.Store.Admins.UpdatePassword(ctx, admin.ID, password.Hash); err != nil {
		h.fail(c, err, "Admin")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password updated"})
}

// ListAdmins handles GET /v1/admin/admins (super admin only)
func (h *Handlers) ListAdmins(c *gin.Context) {
	admins, err := h.Store.Admins.List(c.Request.Context())
	if err != nil {
		h.fail(c, err, "Admins")
		return
	}
	c.JSON(http.StatusOK, gin.H{"admins": admins})
}

// CreateAdmin handles POST /v1/admin/admins (super admin only)
func (h *Handlers) CreateAdmin(c *gin.Context) {
	var input AdminAccountInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.createAdmin(c, &input, "Admin created")
}

func (h *Handlers) createAdmin(c *gin.Context, input *AdminAccountInput, message string) {
	admin, err := models.NewAdminProfile(input.Email, input.Password, input.FullName, input.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}
	if err := h.Store.Admins.Create(c.Request.Context(), admin); err != nil {
		h.fail(c, err, "Admin")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": message, "admin": admin})
}
