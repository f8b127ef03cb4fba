package store

import (
	"context"
	"time"

	"github.com/01moynul/umkm-web-golang/internal/models"
	"github.com/jmoiron/sqlx"
)

type CompanyRepo struct {
	DB *sqlx.DB
}

// Get returns ErrNotFound until the company profile has been saved once.
func (r *CompanyRepo) Get(ctx context.Context) (*models.CompanyInfo, error) {
	var info models.CompanyInfo
	if err := r.DB.GetContext(ctx, &info, "SELECT * FROM company_info WHERE id = ?", models.CompanyInfoID); err != nil {
		return nil, wrap("get company info", err)
	}
	return &info, nil
}

// Upsert writes the singleton row, creating it on first save.
func (r *CompanyRepo) Upsert(ctx context.Context, info *models.CompanyInfo) error {
	info.ID = models.CompanyInfoID
	info.UpdatedAt = time.Now()

	query := `
		INSERT INTO company_info
		(id, name, description, profile, vision, mission, address, operating_hours,
		 phone, email, whatsapp, website, logo_url, updated_at)
		VALUES (:id, :name, :description, :profile, :vision, :mission, :address, :operating_hours,
		 :phone, :email, :whatsapp, :website, :logo_url, :updated_at)
		ON DUPLICATE KEY UPDATE
			name = VALUES(name), description = VALUES(description), profile = VALUES(profile),
			vision = VALUES(vision), mission = VALUES(mission), address = VALUES(address),
			operating_hours = VALUES(operating_hours), phone = VALUES(phone), email = VALUES(email),
			whatsapp = VALUES(whatsapp), website = VALUES(website), logo_url = VALUES(logo_url),
			updated_at = VALUES(updated_at)`
	_, err := r.DB.NamedExecContext(ctx, query, info)
	return wrap("upsert company info", err)
}
