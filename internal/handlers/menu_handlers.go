package handlers

import (
	"net/http"

	"github.com/01moynul/umkm-web-golang/internal/cache"
	"github.com/01moynul/umkm-web-golang/internal/models"
	"github.com/gin-gonic/gin"
)

type MenuItemStatusInput struct {
	IsActive *bool `json:"isActive" binding:"required"`
}

// GetMenu handles GET /v1/menu (active entries only, cached)
func (h *Handlers) GetMenu(c *gin.Context) {
	items := []models.MenuItem{}
	err := h.cached(c, cache.KeyMenu, &items, func() error {
		got, err := h.Store.Menu.List(c.Request.Context(), true)
		items = got
		return err
	})
	if err != nil {
		h.fail(c, err, "Menu")
		return
	}

	c.JSON(http.StatusOK, gin.H{"menu": items})
}

// AdminListMenu handles GET /v1/admin/menu
func (h *Handlers) AdminListMenu(c *gin.Context) {
	items, err := h.Store.Menu.List(c.Request.Context(), false)
	if err != nil {
		h.fail(c, err, "Menu")
		return
	}
	c.JSON(http.StatusOK, gin.H{"menu": items})
}

// SetMenuItemActive handles PATCH /v1/admin/menu/:id
func (h *Handlers) SetMenuItemActive(c *gin.Context) {
	var input MenuItemStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Store.Menu.SetActive(c.Request.Context(), c.Param("id"), *input.IsActive); err != nil {
		h.fail(c, err, "Menu item")
		return
	}
	h.invalidate(c, cache.KeyMenu)

	c.JSON(http.StatusOK, gin.H{"message": "Menu item updated", "isActive": *input.IsActive})
}
