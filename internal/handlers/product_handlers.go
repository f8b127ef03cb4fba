package handlers

import (
	"errors"
	"net/http"

	"github.com/01moynul/umkm-web-golang/internal/models"
	"github.com/01moynul/umkm-web-golang/internal/store"
	"github.com/gin-gonic/gin"
)

const (
	featuredProductsLimit = 4
	relatedProductsLimit  = 4
)

// ProductInput is the admin product form. Price may be left empty.
type ProductInput struct {
	Name        string   `json:"name" binding:"required,max=255"`
	Description string   `json:"description"`
	Price       *float64 `json:"price" binding:"omitempty,gte=0"`
	ImageURL    string   `json:"imageUrl"`
	CategoryID  string   `json:"categoryId"`
	IsFeatured  bool     `json:"isFeatured"`
	IsActive    *bool    `json:"isActive"`
}

//
// --- Public Catalog Handlers ---
//

// SearchProducts handles GET /v1/products?category=&search=&sort=
func (h *Handlers) SearchProducts(c *gin.Context) {
	filter := store.ProductFilter{
		ActiveOnly: true,
		CategoryID: c.Query("category"),
		Search:     c.Query("search"),
		Sort:       c.Query("sort"),
	}

	products, err := h.Store.Products.List(c.Request.Context(), filter)
	if err != nil {
		h.fail(c, err, "Products")
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

// GetFeaturedProducts handles GET /v1/products/featured
func (h *Handlers) GetFeaturedProducts(c *gin.Context) {
	products, err := h.Store.Products.Featured(c.Request.Context(), featuredProductsLimit)
	if err != nil {
		h.fail(c, err, "Products")
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

// GetProduct handles GET /v1/products/:id
// Inactive products are reported as missing.
func (h *Handlers) GetProduct(c *gin.Context) {
	ctx := c.Request.Context()
	product, err := h.Store.Products.GetActive(ctx, c.Param("id"))
	if err != nil {
		h.fail(c, err, "Product")
		return
	}

	related, err := h.Store.Products.Related(ctx, product, relatedProductsLimit)
	if err != nil {
		h.fail(c, err, "Related products")
		return
	}

	c.JSON(http.StatusOK, gin.H{"product": product, "related": related})
}

//
// --- Admin Product Handlers ---
//

// AdminListProducts handles GET /v1/admin/products
func (h *Handlers) AdminListProducts(c *gin.Context) {
	products, err := h.Store.Products.List(c.Request.Context(), store.ProductFilter{
		Search: c.Query("search"),
	})
	if err != nil {
		h.fail(c, err, "Products")
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

// AdminGetProduct handles GET /v1/admin/products/:id
func (h *Handlers) AdminGetProduct(c *gin.Context) {
	product, err := h.Store.Products.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, "Product")
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": product})
}

// CreateProduct handles POST /v1/admin/products
func (h *Handlers) CreateProduct(c *gin.Context) {
	var input ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !h.categoryExists(c, input.CategoryID) {
		return
	}

	product := &models.Product{IsActive: true}
	applyProductInput(product, &input)
	if err := h.Store.Products.Create(c.Request.Context(), product); err != nil {
		h.fail(c, err, "Product")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Product created successfully", "product": product})
}

// UpdateProduct handles PUT /v1/admin/products/:id
func (h *Handlers) UpdateProduct(c *gin.Context) {
	var input ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	product, err := h.Store.Products.Get(ctx, c.Param("id"))
	if err != nil {
		h.fail(c, err, "Product")
		return
	}
	if !h.categoryExists(c, input.CategoryID) {
		return
	}

	applyProductInput(product, &input)
	if err := h.Store.Products.Update(ctx, product); err != nil {
		h.fail(c, err, "Product")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product updated successfully", "product": product})
}

// DeleteProduct handles DELETE /v1/admin/products/:id
func (h *Handlers) DeleteProduct(c *gin.Context) {
	if err := h.Store.Products.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err, "Product")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

// categoryExists writes a 400 and returns false when a non-empty category id
// does not match a category.
func (h *Handlers) categoryExists(c *gin.Context, id string) bool {
	if id == "" {
		return true
	}
	_, err := h.Store.Categories.Get(c.Request.Context(), id)
	if err == nil {
		return true
	}
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category does not exist"})
		return false
	}
	h.fail(c, err, "Category")
	return false
}

func applyProductInput(p *models.Product, input *ProductInput) {
	p.Name = input.Name
	p.Description = optionalString(input.Description)
	p.Price = input.Price
	p.ImageURL = optionalString(input.ImageURL)
	p.CategoryID = optionalString(input.CategoryID)
	p.IsFeatured = input.IsFeatured
	p.IsActive = boolOr(input.IsActive, p.IsActive)
}
