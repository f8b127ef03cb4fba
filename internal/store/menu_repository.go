package store

import (
	"context"

	"github.com/01moynul/umkm-web-golang/internal/models"
	"github.com/jmoiron/sqlx"
)

type MenuRepo struct {
	DB *sqlx.DB
}

func (r *MenuRepo) List(ctx context.Context, activeOnly bool) ([]models.MenuItem, error) {
	query := "SELECT * FROM menu_items"
	if activeOnly {
		query += " WHERE is_active = TRUE"
	}
	query += " ORDER BY sort_order ASC"

	items := []models.MenuItem{}
	if err := r.DB.SelectContext(ctx, &items, query); err != nil {
		return nil, wrap("list menu items", err)
	}
	return items, nil
}

func (r *MenuRepo) SetActive(ctx context.Context, id string, active bool) error {
	res, err := r.DB.ExecContext(ctx, "UPDATE menu_items SET is_active = ? WHERE id = ?", active, id)
	return expectRow("set menu item active", res, err)
}
