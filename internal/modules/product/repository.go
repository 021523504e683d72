package product

import (
	"context"

	"github.com/akshayfox/admin-dashboard/internal/store"
)

// Repository defines the interface for product data storage.
type Repository interface {
	CreateProduct(ctx context.Context, in store.NewProduct) (*store.Product, error)
	GetProduct(ctx context.Context, id int64) (*store.Product, error)
	ListProducts(ctx context.Context) ([]store.Product, error)
	UpdateProduct(ctx context.Context, id int64, patch store.ProductPatch) (*store.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}
