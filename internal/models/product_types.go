package models

import (
	"time"
)

// Product is the model for the 'products' table.
// Nullable columns are pointers so they serialize as null.
type Product struct {
	ID          string   `json:"id" db:"id"`
	Name        string   `json:"name" db:"name"`
	Description *string  `json:"description" db:"description"`
	Price       *float64 `json:"price" db:"price"`
	ImageURL    *string  `json:"imageUrl" db:"image_url"`
	CategoryID  *string  `json:"categoryId" db:"category_id"`
	IsFeatured  bool     `json:"isFeatured" db:"is_featured"`
	IsActive    bool     `json:"isActive" db:"is_active"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`

	// Joined from product_categories, not a products column
	CategoryName *string `json:"categoryName,omitempty" db:"category_name"`
}

// ProductSummary is the slim row used by the dashboard "recent products" list.
type ProductSummary struct {
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
