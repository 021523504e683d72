package inventory

import (
	"context"

	"github.com/akshayfox/admin-dashboard/internal/store"
)

// Repository is the slice of the product store inventory works against.
type Repository interface {
	ListProducts(ctx context.Context) ([]store.Product, error)
	UpdateProduct(ctx context.Context, id int64, patch store.ProductPatch) (*store.Product, error)
	AdjustStock(ctx context.Context, id int64, delta int) (*store.Product, error)
}
