package store

import (
	"context"
	"time"

	"github.com/01moynul/umkm-web-golang/internal/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type ProductRepo struct {
	DB *sqlx.DB
}

func (r *ProductRepo) List(ctx context.Context, f ProductFilter) ([]models.Product, error) {
	query, args := BuildProductQuery(f)
	products := []models.Product{}
	if err := r.DB.SelectContext(ctx, &products, query, args...); err != nil {
		return nil, wrap("list products", err)
	}
	return products, nil
}

func (r *ProductRepo) Get(ctx context.Context, id string) (*models.Product, error) {
	var p models.Product
	query := `SELECT` + productColumns + `
		FROM products p
		LEFT JOIN product_categories c ON c.id = p.category_id
		WHERE p.id = ?`
	if err := r.DB.GetContext(ctx, &p, query, id); err != nil {
		return nil, wrap("get product", err)
	}
	return &p, nil
}

// GetActive hides inactive products from the public detail page.
func (r *ProductRepo) GetActive(ctx context.Context, id string) (*models.Product, error) {
	p, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.IsActive {
		return nil, ErrNotFound
	}
	return p, nil
}

// Related returns other active products of the same category.
// A product without a category has no related products.
func (r *ProductRepo) Related(ctx context.Context, p *models.Product, limit int) ([]models.Product, error) {
	if p.CategoryID == nil || *p.CategoryID == "" {
		return []models.Product{}, nil
	}
	return r.List(ctx, ProductFilter{
		ActiveOnly: true,
		CategoryID: *p.CategoryID,
		ExcludeID:  p.ID,
		Limit:      limit,
	})
}

func (r *ProductRepo) Featured(ctx context.Context, limit int) ([]models.Product, error) {
	return r.List(ctx, ProductFilter{ActiveOnly: true, FeaturedOnly: true, Limit: limit})
}

func (r *ProductRepo) Create(ctx context.Context, p *models.Product) error {
	now := time.Now()
	p.ID = uuid.NewString()
	p.CreatedAt = now
	p.UpdatedAt = now

	query := `
		INSERT INTO products
		(id, name, description, price, image_url, category_id, is_featured, is_active, created_at, updated_at)
		VALUES (:id, :name, :description, :price, :image_url, :category_id, :is_featured, :is_active, :created_at, :updated_at)`
	_, err := r.DB.NamedExecContext(ctx, query, p)
	return wrap("create product", err)
}

func (r *ProductRepo) Update(ctx context.Context, p *models.Product) error {
	p.UpdatedAt = time.Now()
	query := `
		UPDATE products
		SET name = :name, description = :description, price = :price, image_url = :image_url,
			category_id = :category_id, is_featured = :is_featured, is_active = :is_active,
			updated_at = :updated_at
		WHERE id = :id`
	res, err := r.DB.NamedExecContext(ctx, query, p)
	return expectRow("update product", res, err)
}

func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM products WHERE id = ?", id)
	return expectRow("delete product", res, err)
}

func (r *ProductRepo) Count(ctx context.Context) (int, error) {
	return count(ctx, r.DB, "count products", "SELECT COUNT(*) FROM products")
}

func (r *ProductRepo) Recent(ctx context.Context, limit int) ([]models.ProductSummary, error) {
	out := []models.ProductSummary{}
	err := r.DB.SelectContext(ctx, &out,
		"SELECT name, created_at FROM products ORDER BY created_at DESC LIMIT ?", limit)
	if err != nil {
		return nil, wrap("recent products", err)
	}
	return out, nil
}
