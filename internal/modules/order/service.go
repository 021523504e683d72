package order

import (
	"context"
	"fmt"

	"github.com/akshayfox/admin-dashboard/internal/store"
	"github.com/samber/lo"
)

// Service defines the order management business logic.
type Service interface {
	// ListOrders returns every order joined with its customer.
	ListOrders(ctx context.Context) ([]store.OrderWithUser, error)

	// RecentOrders returns the newest orders first.
	RecentOrders(ctx context.Context, limit int) ([]store.OrderWithUser, error)

	GetOrder(ctx context.Context, id int64) (*store.OrderWithUser, error)
	GetOrderByNumber(ctx context.Context, number string) (*store.OrderWithUser, error)

	// PlaceOrder stores the order and its items and assigns an order number.
	PlaceOrder(ctx context.Context, req PlaceOrderRequest) (*store.Order, error)

	UpdateOrder(ctx context.Context, id int64, req UpdateOrderRequest) (*store.Order, error)
	DeleteOrder(ctx context.Context, id int64) error

	ListItems(ctx context.Context, orderID int64) ([]store.OrderItem, error)
	AddItem(ctx context.Context, orderID int64, item CartItem) (*store.OrderItem, error)
}

type service struct {
	repo Repository
}

// NewService creates a new order service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListOrders(ctx context.Context) ([]store.OrderWithUser, error) {
	return s.repo.ResolveAllOrders(ctx)
}

func (s *service) RecentOrders(ctx context.Context, limit int) ([]store.OrderWithUser, error) {
	return s.repo.ResolveRecentOrders(ctx, limit)
}

func (s *service) GetOrder(ctx context.Context, id int64) (*store.OrderWithUser, error) {
	return s.repo.ResolveOrder(ctx, id)
}

func (s *service) GetOrderByNumber(ctx context.Context, number string) (*store.OrderWithUser, error) {
	o, err := s.repo.GetOrderByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	return s.repo.ResolveOrder(ctx, o.ID)
}

func (s *service) PlaceOrder(ctx context.Context, req PlaceOrderRequest) (*store.Order, error) {
	if req.TotalAmount == nil && len(req.Items) == 0 {
		return nil, fmt.Errorf("totalAmount is required for an order without items: %w", store.ErrValidation)
	}
	in := store.NewOrder{
		UserID: req.UserID,
		Status: store.OrderStatus(req.Status),
		Items: lo.Map(req.Items, func(ci CartItem, _ int) store.NewOrderItem {
			return toNewItem(0, ci)
		}),
	}
	if req.TotalAmount != nil {
		total := req.TotalAmount.Round(2)
		in.TotalAmount = &total
	}
	return s.repo.CreateOrder(ctx, in)
}

func (s *service) UpdateOrder(ctx context.Context, id int64, req UpdateOrderRequest) (*store.Order, error) {
	var patch store.OrderPatch
	if req.Status != nil {
		status := store.OrderStatus(*req.Status)
		patch.Status = &status
	}
	if req.TotalAmount != nil {
		total := req.TotalAmount.Round(2)
		patch.TotalAmount = &total
	}
	return s.repo.UpdateOrder(ctx, id, patch)
}

func (s *service) DeleteOrder(ctx context.Context, id int64) error {
	return s.repo.DeleteOrder(ctx, id)
}

func (s *service) ListItems(ctx context.Context, orderID int64) ([]store.OrderItem, error) {
	if _, err := s.repo.GetOrder(ctx, orderID); err != nil {
		return nil, err
	}
	return s.repo.ListOrderItemsByOrder(ctx, orderID)
}

func (s *service) AddItem(ctx context.Context, orderID int64, item CartItem) (*store.OrderItem, error) {
	return s.repo.CreateOrderItem(ctx, toNewItem(orderID, item))
}

func toNewItem(orderID int64, ci CartItem) store.NewOrderItem {
	ni := store.NewOrderItem{OrderID: orderID, ProductID: ci.ProductID, Quantity: ci.Quantity}
	if ci.Price != nil {
		price := ci.Price.Round(2)
		ni.Price = &price
	}
	return ni
}
