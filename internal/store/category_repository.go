package store

import (
	"context"
	"time"

	"github.com/01moynul/umkm-web-golang/internal/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type CategoryRepo struct {
	DB *sqlx.DB
}

func (r *CategoryRepo) List(ctx context.Context) ([]models.Category, error) {
	categories := []models.Category{}
	if err := r.DB.SelectContext(ctx, &categories, "SELECT * FROM product_categories ORDER BY name ASC"); err != nil {
		return nil, wrap("list categories", err)
	}
	return categories, nil
}

func (r *CategoryRepo) Get(ctx context.Context, id string) (*models.Category, error) {
	var c models.Category
	if err := r.DB.GetContext(ctx, &c, "SELECT * FROM product_categories WHERE id = ?", id); err != nil {
		return nil, wrap("get category", err)
	}
	return &c, nil
}

func (r *CategoryRepo) Create(ctx context.Context, c *models.Category) error {
	now := time.Now()
	c.ID = uuid.NewString()
	c.CreatedAt = now
	c.UpdatedAt = now

	query := `
		INSERT INTO product_categories (id, name, slug, description, created_at, updated_at)
		VALUES (:id, :name, :slug, :description, :created_at, :updated_at)`
	_, err := r.DB.NamedExecContext(ctx, query, c)
	return wrap("create category", err)
}

func (r *CategoryRepo) Update(ctx context.Context, c *models.Category) error {
	c.UpdatedAt = time.Now()
	query := `
		UPDATE product_categories
		SET name = :name, slug = :slug, description = :description, updated_at = :updated_at
		WHERE id = :id`
	res, err := r.DB.NamedExecContext(ctx, query, c)
	return expectRow("update category", res, err)
}

// Delete removes the category; its products keep existing uncategorized
// (ON DELETE SET NULL).
func (r *CategoryRepo) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM product_categories WHERE id = ?", id)
	return expectRow("delete category", res, err)
}

func (r *CategoryRepo) Count(ctx context.Context) (int, error) {
	return count(ctx, r.DB, "count categories", "SELECT COUNT(*) FROM product_categories")
}
