package models

import "time"

// CompanyInfoID is the fixed key of the single 'company_info' row.
const CompanyInfoID = 1

// CompanyInfo is the singleton shown on the home, about and contact pages.
type CompanyInfo struct {
	ID             int       `json:"-" db:"id"`
	Name           string    `json:"name" db:"name"`
	Description    string    `json:"description" db:"description"`
	Profile        string    `json:"profile" db:"profile"`
	Vision         string    `json:"vision" db:"vision"`
	Mission        string    `json:"mission" db:"mission"`
	Address        string    `json:"address" db:"address"`
	OperatingHours string    `json:"operatingHours" db:"operating_hours"`
	Phone          string    `json:"phone" db:"phone"`
	Email          string    `json:"email" db:"email"`
	WhatsApp       string    `json:"whatsapp" db:"whatsapp"`
	Website        string    `json:"website" db:"website"`
	LogoURL        string    `json:"logoUrl" db:"logo_url"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`
}
