package handlers

import (
	"net/http"

	"github.com/01moynul/umkm-web-golang/internal/cache"
	"github.com/01moynul/umkm-web-golang/internal/models"
	"github.com/gin-gonic/gin"
)

type OnlineShopInput struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description"`
	URL         string `json:"url" binding:"required,url"`
	LogoURL     string `json:"logoUrl"`
	IsActive    *bool  `json:"isActive"`
}

// GetOnlineShops handles GET /v1/online-shops (active shops by name, cached)
func (h *Handlers) GetOnlineShops(c *gin.Context) {
	shops := []models.OnlineShop{}
	err := h.cached(c, cache.KeyOnlineShops, &shops, func() error {
		got, err := h.Store.Shops.List(c.Request.Context(), true)
		shops = got
		return err
	})
	if err != nil {
		h.fail(c, err, "Online shops")
		return
	}
	c.JSON(http.StatusOK, gin.H{"shops": shops})
}

// AdminListOnlineShops handles GET /v1/admin/online-shops
func (h *Handlers) AdminListOnlineShops(c *gin.Context) {
	shops, err := h.Store.Shops.List(c.Request.Context(), false)
	if err != nil {
		h.fail(c, err, "Online shops")
		return
	}
	c.JSON(http.StatusOK, gin.H{"shops": shops})
}

// CreateOnlineShop handles POST /v1/admin/online-shops
func (h *Handlers) CreateOnlineShop(c *gin.Context) {
	var input OnlineShopInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	shop := &models.OnlineShop{
		Name:        input.Name,
		Description: input.Description,
		URL:         input.URL,
		LogoURL:     input.LogoURL,
		IsActive:    boolOr(input.IsActive, true),
	}
	if err := h.Store.Shops.Create(c.Request.Context(), shop); err != nil {
		h.fail(c, err, "Online shop")
		return
	}
	h.invalidate(c, cache.KeyOnlineShops)

	c.JSON(http.StatusCreated, gin.H{"message": "Online shop created", "shop": shop})
}

// UpdateOnlineShop handles PUT /v1/admin/online-shops/:id
func (h *Handlers) UpdateOnlineShop(c *gin.Context) {
	var input OnlineShopInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	shop, err := h.Store.Shops.Get(ctx, c.Param("id"))
	if err != nil {
		h.fail(c, err, "Online shop")
		return
	}
	shop.Name = input.Name
	shop.Description = input.Description
	shop.URL = input.URL
	shop.LogoURL = input.LogoURL
	shop.IsActive = boolOr(input.IsActive, shop.IsActive)

	if err := h.Store.Shops.Update(ctx, shop); err != nil {
		h.fail(c, err, "Online shop")
		return
	}
	h.invalidate(c, cache.KeyOnlineShops)

	c.JSON(http.StatusOK, gin.H{"message": "Online shop updated", "shop": shop})
}

// DeleteOnlineShop handles DELETE /v1/admin/online-shops/:id
func (h *Handlers) DeleteOnlineShop(c *gin.Context) {
	if err := h.Store.Shops.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err, "Online shop")
		return
	}
	h.invalidate(c, cache.KeyOnlineShops)

	c.JSON(http.StatusOK, gin.H{"message": "Online shop deleted"})
}
