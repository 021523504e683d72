package product

import "github.com/shopspring/decimal"

// CreateProductRequest holds the data for creating a product. Price accepts
// a JSON number or string.
type CreateProductRequest struct {
	Name        string           `json:"name" validate:"required"`
	Description string           `json:"description"`
	Price       *decimal.Decimal `json:"price" validate:"required"`
	ImageURL    string           `json:"imageUrl" validate:"omitempty,url"`
	Category    string           `json:"category"`
	Stock       int              `json:"stock" validate:"gte=0"`
}

// UpdateProductRequest is a partial update; absent fields are left untouched.
type UpdateProductRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	ImageURL    *string          `json:"imageUrl" validate:"omitempty,url"`
	Category    *string          `json:"category"`
	Stock       *int             `json:"stock" validate:"omitempty,gte=0"`
}
