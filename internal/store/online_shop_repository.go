package store

import (
	"context"
	"time"

	"github.com/01moynul/umkm-web-golang/internal/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type OnlineShopRepo struct {
	DB *sqlx.DB
}

// List orders the public view by name and the admin view newest first.
func (r *OnlineShopRepo) List(ctx context.Context, activeOnly bool) ([]models.OnlineShop, error) {
	query := "SELECT * FROM online_shops ORDER BY created_at DESC"
	if activeOnly {
		query = "SELECT * FROM online_shops WHERE is_active = TRUE ORDER BY name ASC"
	}

	shops := []models.OnlineShop{}
	if err := r.DB.SelectContext(ctx, &shops, query); err != nil {
		return nil, wrap("list online shops", err)
	}
	return shops, nil
}

func (r *OnlineShopRepo) Get(ctx context.Context, id string) (*models.OnlineShop, error) {
	var s models.OnlineShop
	if err := r.DB.GetContext(ctx, &s, "SELECT * FROM online_shops WHERE id = ?", id); err != nil {
		return nil, wrap("get online shop", err)
	}
	return &s, nil
}

func (r *OnlineShopRepo) Create(ctx context.Context, s *models.OnlineShop) error {
	now := time.Now()
	s.ID = uuid.NewString()
	s.CreatedAt = now
	s.UpdatedAt = now

	query := `
		INSERT INTO online_shops (id, name, description, url, logo_url, is_active, created_at, updated_at)
		VALUES (:id, :name, :description, :url, :logo_url, :is_active, :created_at, :updated_at)`
	_, err := r.DB.NamedExecContext(ctx, query, s)
	return wrap("create online shop", err)
}

func (r *OnlineShopRepo) Update(ctx context.Context, s *models.OnlineShop) error {
	s.UpdatedAt = time.Now()
	query := `
		UPDATE online_shops
		SET name = :name, description = :description, url = :url, logo_url = :logo_url,
			is_active = :is_active, updated_at = :updated_at
		WHERE id = :id`
	res, err := r.DB.NamedExecContext(ctx, query, s)
	return expectRow("update online shop", res, err)
}

func (r *OnlineShopRepo) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM online_shops WHERE id = ?", id)
	return expectRow("delete online shop", res, err)
}
