package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/01moynul/umkm-web-golang/internal/models"
	"github.com/01moynul/umkm-web-golang/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestSearchProducts_PassesFilter(t *testing.T) {
	env := newTestEnv(t)
	want := store.ProductFilter{ActiveOnly: true, CategoryID: "c1", Search: "kopi", Sort: store.SortPriceAsc}
	env.mocks.Products.On("List", mock.Anything, want).
		Return([]models.Product{{ID: "p1", Name: "Kopi Gayo"}}, nil)

	w := do(t, http.MethodGet, "/products", "/products?category=c1&search=kopi&sort=price_asc", nil, env.h.SearchProducts)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Kopi Gayo")
	env.mocks.AssertExpectations(t)
}

func TestSearchProducts_StoreError(t *testing.T) {
	env := newTestEnv(t)
	env.mocks.Products.On("List", mock.Anything, mock.Anything).Return(nil, errors.New("connection reset"))

	w := do(t, http.MethodGet, "/products", "/products", nil, env.h.SearchProducts)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Database error", decode(t, w)["error"])
	require.Equal(t, 1, env.logs.FilterMessage("store call failed").Len())
}

func TestGetFeaturedProducts(t *testing.T) {
	env := newTestEnv(t)
	env.mocks.Products.On("Featured", mock.Anything, 4).Return([]models.Product{}, nil)

	w := do(t, http.MethodGet, "/products/featured", "/products/featured", nil, env.h.GetFeaturedProducts)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"products":[]}`, w.Body.String())
}

func TestGetProduct_WithRelated(t *testing.T) {
	env := newTestEnv(t)
	p := &models.Product{ID: "p1", Name: "Keripik", CategoryID: strPtr("c1"), IsActive: true}
	env.mocks.Products.On("GetActive", mock.Anything, "p1").Return(p, nil)
	env.mocks.Products.On("Related", mock.Anything, p, 4).
		Return([]models.Product{{ID: "p2", Name: "Rengginang"}}, nil)

	w := do(t, http.MethodGet, "/products/:id", "/products/p1", nil, env.h.GetProduct)

	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "Keripik", body["product"].(map[string]any)["name"])
	assert.Len(t, body["related"], 1)
}

func TestGetProduct_Inactive(t *testing.T) {
	env := newTestEnv(t)
	env.mocks.Products.On("GetActive", mock.Anything, "p9").Return(nil, store.ErrNotFound)

	w := do(t, http.MethodGet, "/products/:id", "/products/p9", nil, env.h.GetProduct)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Product not found", decode(t, w)["error"])
	env.mocks.Products.AssertNotCalled(t, "Related", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateProduct_Validation(t *testing.T) {
	env := newTestEnv(t)

	cases := map[string]any{
		"missing name":   map[string]any{"price": 1000},
		"negative price": map[string]any{"name": "Kopi", "price": -1},
		"malformed":      "{",
	}
	for name, body := range cases {
		w := do(t, http.MethodPost, "/products", "/products", body, env.h.CreateProduct)
		assert.Equal(t, http.StatusBadRequest, w.Code, name)
	}
	env.mocks.Products.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateProduct_Defaults(t *testing.T) {
	env := newTestEnv(t)
	env.mocks.Products.On("Create", mock.Anything, mock.MatchedBy(func(p *models.Product) bool {
		return p.Name == "Kopi Gayo" &&
			p.IsActive &&
			p.Price == nil &&
			p.CategoryID == nil &&
			p.Description == nil
	})).Return(nil)

	w := do(t, http.MethodPost, "/products", "/products",
		map[string]any{"name": "Kopi Gayo", "categoryId": "", "description": ""}, env.h.CreateProduct)

	assert.Equal(t, http.StatusCreated, w.Code)
	env.mocks.AssertExpectations(t)
	env.mocks.Categories.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestCreateProduct_UnknownCategory(t *testing.T) {
	env := newTestEnv(t)
	env.mocks.Categories.On("Get", mock.Anything, "ghost").Return(nil, store.ErrNotFound)

	w := do(t, http.MethodPost, "/products", "/products",
		map[string]any{"name": "Kopi", "categoryId": "ghost"}, env.h.CreateProduct)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Category does not exist", decode(t, w)["error"])
	env.mocks.Products.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUpdateProduct_KeepsActiveWhenOmitted(t *testing.T) {
	env := newTestEnv(t)
	existing := &models.Product{ID: "p1", Name: "Old", IsActive: false}
	env.mocks.Products.On("Get", mock.Anything, "p1").Return(existing, nil)
	env.mocks.Categories.On("Get", mock.Anything, "c1").Return(&models.Category{ID: "c1"}, nil)
	env.mocks.Products.On("Update", mock.Anything, mock.MatchedBy(func(p *models.Product) bool {
		return p.ID == "p1" && p.Name == "New" && !p.IsActive && *p.CategoryID == "c1" && *p.Price == 15000
	})).Return(nil)

	w := do(t, http.MethodPut, "/products/:id", "/products/p1",
		map[string]any{"name": "New", "price": 15000, "categoryId": "c1"}, env.h.UpdateProduct)

	assert.Equal(t, http.StatusOK, w.Code)
	env.mocks.AssertExpectations(t)
}

func TestUpdateProduct_Missing(t *testing.T) {
	env := newTestEnv(t)
	env.mocks.Products.On("Get", mock.Anything, "p1").Return(nil, store.ErrNotFound)

	w := do(t, http.MethodPut, "/products/:id", "/products/p1", map[string]any{"name": "New"}, env.h.UpdateProduct)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteProduct(t *testing.T) {
	env := newTestEnv(t)
	env.mocks.Products.On("Delete", mock.Anything, "p1").Return(nil)
	env.mocks.Products.On("Delete", mock.Anything, "p2").Return(store.ErrNotFound)

	assert.Equal(t, http.StatusOK, do(t, http.MethodDelete, "/products/:id", "/products/p1", nil, env.h.DeleteProduct).Code)
	assert.Equal(t, http.StatusNotFound, do(t, http.MethodDelete, "/products/:id", "/products/p2", nil, env.h.DeleteProduct).Code)
}

func TestAdminListProducts_IncludesInactive(t *testing.T) {
	env := newTestEnv(t)
	env.mocks.Products.On("List", mock.Anything, store.ProductFilter{}).Return([]models.Product{}, nil)

	w := do(t, http.MethodGet, "/admin/products", "/admin/products", nil, env.h.AdminListProducts)

	assert.Equal(t, http.StatusOK, w.Code)
	env.mocks.AssertExpectations(t)
}
