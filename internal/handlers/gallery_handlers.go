package handlers

import (
	"net/http"

	"github.com/01moynul/umkm-web-golang/internal/models"
	"github.com/gin-gonic/gin"
)

type GalleryItemInput struct {
	Title       string `json:"title" binding:"required,max=255"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl" binding:"required"`
	IsActive    *bool  `json:"isActive"`
}

// GetGallery handles GET /v1/gallery
func (h *Handlers) GetGallery(c *gin.Context) {
	items, err := h.Store.Gallery.List(c.Request.Context(), true)
	if err != nil {
		h.fail(c, err, "Gallery")
		return
	}
	c.JSON(http.StatusOK, gin.H{"gallery": items})
}

// AdminListGallery handles GET /v1/admin/gallery
func (h *Handlers) AdminListGallery(c *gin.Context) {
	items, err := h.Store.Gallery.List(c.Request.Context(), false)
	if err != nil {
		h.fail(c, err, "Gallery")
		return
	}
	c.JSON(http.StatusOK, gin.H{"gallery": items})
}

// CreateGalleryItem handles POST /v1/admin/gallery
func (h *Handlers) CreateGalleryItem(c *gin.Context) {
	var input GalleryItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item := &models.GalleryItem{
		Title:       input.Title,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		IsActive:    boolOr(input.IsActive, true),
	}
	if err := h.Store.Gallery.Create(c.Request.Context(), item); err != nil {
		h.fail(c, err, "Gallery item")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Gallery item created", "item": item})
}

// UpdateGalleryItem handles PUT /v1/admin/gallery/:id
func (h *Handlers) UpdateGalleryItem(c *gin.Context) {
	var input GalleryItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	item, err := h.Store.Gallery.Get(ctx, c.Param("id"))
	if err != nil {
		h.fail(c, err, "Gallery item")
		return
	}
	item.Title = input.Title
	item.Description = input.Description
	item.ImageURL = input.ImageURL
	item.IsActive = boolOr(input.IsActive, item.IsActive)

	if err := h.Store.Gallery.Update(ctx, item); err != nil {
		h.fail(c, err, "Gallery item")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Gallery item updated", "item": item})
}

// DeleteGalleryItem handles DELETE /v1/admin/gallery/:id
func (h *Handlers) DeleteGalleryItem(c *gin.Context) {
	if err := h.Store.Gallery.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err, "Gallery item")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Gallery item deleted"})
}
