package inventory

import "github.com/akshayfox/admin-dashboard/internal/store"

// StockLevel is a product's stock position relative to the low-stock threshold.
type StockLevel struct {
	ProductID int64  `json:"productId"`
	Name      string `json:"name"`
	Category  string `json:"category,omitempty"`
	Stock     int    `json:"stock"`
	Low       bool   `json:"low"`
}

func levelOf(p store.Product, threshold int) StockLevel {
	return StockLevel{
		ProductID: p.ID,
		Name:      p.Name,
		Category:  p.Category,
		Stock:     p.Stock,
		Low:       p.Stock < threshold,
	}
}

// SetStockRequest replaces the stock count outright.
type SetStockRequest struct {
	Quantity *int `json:"quantity" validate:"required,min=0"`
}

// AdjustStockRequest moves stock up (restock) or down (shrinkage).
type AdjustStockRequest struct {
	Delta int `json:"delta" validate:"required"`
}
