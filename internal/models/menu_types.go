package models

// MenuItem is one entry of the public site navigation. Admins can hide entries.
type MenuItem struct {
	ID        string `json:"id" db:"id"`
	Name      string `json:"name" db:"name"`
	URL       string `json:"url" db:"url"`
	SortOrder int    `json:"sortOrder" db:"sort_order"`
	IsActive  bool   `json:"isActive" db:"is_active"`
}
