package order

import (
	"context"

	"github.com/akshayfox/admin-dashboard/internal/store"
)

// Repository defines data access for orders. *store.Store satisfies it.
type Repository interface {
	// CreateOrder persists a new order and its items atomically.
	CreateOrder(ctx context.Context, in store.NewOrder) (*store.Order, error)

	// GetOrderByNumber retrieves an order by its human-readable order number.
	GetOrderByNumber(ctx context.Context, number string) (*store.Order, error)

	UpdateOrder(ctx context.Context, id int64, patch store.OrderPatch) (*store.Order, error)

	// DeleteOrder removes an order and its items.
	DeleteOrder(ctx context.Context, id int64) error

	GetOrder(ctx context.Context, id int64) (*store.Order, error)
	CreateOrderItem(ctx context.Context, in store.NewOrderItem) (*store.OrderItem, error)
	ListOrderItemsByOrder(ctx context.Context, orderID int64) ([]store.OrderItem, error)

	// Joined views, omitting orders whose user is gone.
	ResolveOrder(ctx context.Context, id int64) (*store.OrderWithUser, error)
	ResolveAllOrders(ctx context.Context) ([]store.OrderWithUser, error)
	ResolveRecentOrders(ctx context.Context, limit int) ([]store.OrderWithUser, error)
}
