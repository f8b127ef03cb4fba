package handlers

import (
	"net/http"

	"github.com/01moynul/umkm-web-golang/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
)

type CategoryInput struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description"`
}

// --- Category Handlers ---

// GetAllCategories handles GET /v1/categories and GET /v1/admin/categories
func (h *Handlers) GetAllCategories(c *gin.Context) {
	categories, err := h.Store.Categories.List(c.Request.Context())
	if err != nil {
		h.fail(c, err, "Categories")
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// CreateCategory handles POST /v1/admin/categories
func (h *Handlers) CreateCategory(c *gin.Context) {
	var input CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category := &models.Category{
		Name:        input.Name,
		Slug:        slug.Make(input.Name),
		Description: optionalString(input.Description),
	}
	if err := h.Store.Categories.Create(c.Request.Context(), category); err != nil {
		h.fail(c, err, "Category")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Category created", "category": category})
}

// UpdateCategory handles PUT /v1/admin/categories/:id
func (h *Handlers) UpdateCategory(c *gin.Context) {
	var input CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	category, err := h.Store.Categories.Get(ctx, c.Param("id"))
	if err != nil {
		h.fail(c, err, "Category")
		return
	}

	category.Name = input.Name
	category.Slug = slug.Make(input.Name)
	category.Description = optionalString(input.Description)
	if err := h.Store.Categories.Update(ctx, category); err != nil {
		h.fail(c, err, "Category")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category updated", "category": category})
}

// DeleteCategory handles DELETE /v1/admin/categories/:id
// Products of the category keep existing without one.
func (h *Handlers) DeleteCategory(c *gin.Context) {
	if err := h.Store.Categories.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err, "Category")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
}
