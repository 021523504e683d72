package store

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrder inserts the order and all its items in one critical section.
// Either every item is stored or none is.
func (s *Store) CreateOrder(ctx context.Context, in NewOrder) (*Order, error) {
	status := in.Status
	if status == "" {
		status = StatusPending
	}
	if !status.Valid() {
		return nil, fmt.Errorf("invalid status %q: %w", status, ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users.get(in.UserID); !ok {
		return nil, fmt.Errorf("user %d does not exist: %w", in.UserID, ErrValidation)
	}

	items := make([]OrderItem, 0, len(in.Items))
	subtotal := decimal.Zero
	for _, ni := range in.Items {
		it, err := s.prepareItem(ni)
		if err != nil {
			return nil, err
		}
		subtotal = subtotal.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
		items = append(items, it)
	}

	total := subtotal
	if in.TotalAmount != nil {
		total = *in.TotalAmount
	}
	if total.IsNegative() {
		return nil, fmt.Errorf("total amount must not be negative: %w", ErrValidation)
	}

	now := s.now()
	createdAt := now
	if in.CreatedAt != nil {
		createdAt = *in.CreatedAt
	}
	number, err := s.nextOrderNumber(now)
	if err != nil {
		return nil, err
	}

	o := s.orders.insert(func(id int64) Order {
		return Order{
			ID:          id,
			UserID:      in.UserID,
			OrderNumber: number,
			TotalAmount: total,
			Status:      status,
			CreatedAt:   createdAt,
		}
	})
	for _, it := range items {
		it.OrderID = o.ID
		s.orderItems.insert(func(id int64) OrderItem {
			it.ID = id
			return it
		})
	}
	return &o, nil
}

func (s *Store) GetOrder(ctx context.Context, id int64) (*Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.orders.get(id)
	if !ok {
		return nil, fmt.Errorf("order %d: %w", id, ErrNotFound)
	}
	return &o, nil
}

func (s *Store) GetOrderByNumber(ctx context.Context, number string) (*Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.orders.find(func(o Order) bool { return o.OrderNumber == number })
	if !ok {
		return nil, fmt.Errorf("order %q: %w", number, ErrNotFound)
	}
	return &o, nil
}

func (s *Store) ListOrders(ctx context.Context) ([]Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.orders.list(), nil
}

// UpdateOrder merges the non-nil fields of patch into the stored order.
func (s *Store) UpdateOrder(ctx context.Context, id int64, patch OrderPatch) (*Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders.get(id)
	if !ok {
		return nil, fmt.Errorf("order %d: %w", id, ErrNotFound)
	}
	if patch.Status != nil {
		if !patch.Status.Valid() {
			return nil, fmt.Errorf("invalid status %q: %w", *patch.Status, ErrValidation)
		}
		o.Status = *patch.Status
	}
	if patch.TotalAmount != nil {
		if patch.TotalAmount.IsNegative() {
			return nil, fmt.Errorf("total amount must not be negative: %w", ErrValidation)
		}
		o.TotalAmount = *patch.TotalAmount
	}
	s.orders.put(id, o)
	return &o, nil
}

// DeleteOrder removes the order together with all of its items.
func (s *Store) DeleteOrder(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.orders.get(id); !ok {
		return fmt.Errorf("order %d: %w", id, ErrNotFound)
	}
	for _, it := range s.orderItems.list() {
		if it.OrderID == id {
			s.orderItems.remove(it.ID)
		}
	}
	s.orders.remove(id)
	return nil
}

// CreateOrderItem appends an item to an existing order.
func (s *Store) CreateOrderItem(ctx context.Context, in NewOrderItem) (*OrderItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.orders.get(in.OrderID); !ok {
		return nil, fmt.Errorf("order %d: %w", in.OrderID, ErrNotFound)
	}
	it, err := s.prepareItem(in)
	if err != nil {
		return nil, err
	}
	it = s.orderItems.insert(func(id int64) OrderItem {
		it.ID = id
		it.OrderID = in.OrderID
		return it
	})
	return &it, nil
}

func (s *Store) GetOrderItem(ctx context.Context, id int64) (*OrderItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	it, ok := s.orderItems.get(id)
	if !ok {
		return nil, fmt.Errorf("order item %d: %w", id, ErrNotFound)
	}
	return &it, nil
}

func (s *Store) ListOrderItems(ctx context.Context) ([]OrderItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.orderItems.list(), nil
}

// ListOrderItemsByOrder returns the items of an order; unknown orders have none.
func (s *Store) ListOrderItemsByOrder(ctx context.Context, orderID int64) ([]OrderItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []OrderItem{}
	for _, it := range s.orderItems.list() {
		if it.OrderID == orderID {
			out = append(out, it)
		}
	}
	return out, nil
}

// prepareItem validates an item and resolves its price snapshot. The caller
// holds the write lock.
func (s *Store) prepareItem(in NewOrderItem) (OrderItem, error) {
	if in.Quantity < 1 {
		return OrderItem{}, fmt.Errorf("quantity must be at least 1 for product %d: %w", in.ProductID, ErrValidation)
	}
	p, ok := s.products.get(in.ProductID)
	if !ok {
		return OrderItem{}, fmt.Errorf("product %d does not exist: %w", in.ProductID, ErrValidation)
	}
	price := p.Price
	if in.Price != nil {
		price = *in.Price
	}
	if price.IsNegative() {
		return OrderItem{}, fmt.Errorf("price must not be negative for product %d: %w", in.ProductID, ErrValidation)
	}
	return OrderItem{ProductID: in.ProductID, Quantity: in.Quantity, Price: price}, nil
}

func (s *Store) nextOrderNumber(now time.Time) (string, error) {
	for i := 0; i < maxOrderNumberAttempts; i++ {
		n := s.orderNumber(now)
		if _, taken := s.orders.find(func(o Order) bool { return o.OrderNumber == n }); !taken {
			return n, nil
		}
	}
	return "", fmt.Errorf("could not allocate a unique order number: %w", ErrConflict)
}
