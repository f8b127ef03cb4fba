package store

import (
	"context"
	"time"

	"github.com/01moynul/umkm-web-golang/internal/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type GalleryRepo struct {
	DB *sqlx.DB
}

func (r *GalleryRepo) List(ctx context.Context, activeOnly bool) ([]models.GalleryItem, error) {
	query := "SELECT * FROM gallery"
	if activeOnly {
		query += " WHERE is_active = TRUE"
	}
	query += " ORDER BY created_at DESC"

	items := []models.GalleryItem{}
	if err := r.DB.SelectContext(ctx, &items, query); err != nil {
		return nil, wrap("list gallery", err)
	}
	return items, nil
}

func (r *GalleryRepo) Get(ctx context.Context, id string) (*models.GalleryItem, error) {
	var g models.GalleryItem
	if err := r.DB.GetContext(ctx, &g, "SELECT * FROM gallery WHERE id = ?", id); err != nil {
		return nil, wrap("get gallery item", err)
	}
	return &g, nil
}

func (r *GalleryRepo) Create(ctx context.Context, g *models.GalleryItem) error {
	now := time.Now()
	g.ID = uuid.NewString()
	g.CreatedAt = now
	g.UpdatedAt = now

	query := `
		INSERT INTO gallery (id, title, description, image_url, is_active, created_at, updated_at)
		VALUES (:id, :title, :description, :image_url, :is_active, :created_at, :updated_at)`
	_, err := r.DB.NamedExecContext(ctx, query, g)
	return wrap("create gallery item", err)
}

func (r *GalleryRepo) Update(ctx context.Context, g *models.GalleryItem) error {
	g.UpdatedAt = time.Now()
	query := `
		UPDATE gallery
		SET title = :title, description = :description, image_url = :image_url,
			is_active = :is_active, updated_at = :updated_at
		WHERE id = :id`
	res, err := r.DB.NamedExecContext(ctx, query, g)
	return expectRow("update gallery item", res, err)
}

func (r *GalleryRepo) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM gallery WHERE id = ?", id)
	return expectRow("delete gallery item", res, err)
}
