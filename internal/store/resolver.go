package store

import (
	"context"
	"fmt"
	"slices"

	"github.com/samber/lo"
)

// DefaultRecentLimit is the number of orders returned by ResolveRecentOrders
// when the caller does not ask for a specific count.
const DefaultRecentLimit = 5

// ResolveOrder joins an order with its user. An order whose user no longer
// exists resolves to ErrNotFound.
func (s *Store) ResolveOrder(ctx context.Context, id int64) (*OrderWithUser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.orders.get(id)
	if !ok {
		return nil, fmt.Errorf("order %d: %w", id, ErrNotFound)
	}
	u, ok := s.users.get(o.UserID)
	if !ok {
		return nil, fmt.Errorf("user %d of order %d: %w", o.UserID, id, ErrNotFound)
	}
	return &OrderWithUser{Order: o, User: u}, nil
}

// ResolveAllOrders joins every order with its user, in insertion order,
// skipping orders whose user cannot be found.
func (s *Store) ResolveAllOrders(ctx context.Context) ([]OrderWithUser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.joinOrders(), nil
}

// ResolveRecentOrders returns the newest limit joined orders, newest first.
// Orders with equal timestamps keep insertion order.
func (s *Store) ResolveRecentOrders(ctx context.Context, limit int) ([]OrderWithUser, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	s.mu.RLock()
	joined := s.joinOrders()
	s.mu.RUnlock()

	slices.SortStableFunc(joined, func(a, b OrderWithUser) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	if len(joined) > limit {
		joined = joined[:limit]
	}
	return joined, nil
}

func (s *Store) joinOrders() []OrderWithUser {
	return lo.FilterMap(s.orders.list(), func(o Order, _ int) (OrderWithUser, bool) {
		u, ok := s.users.get(o.UserID)
		return OrderWithUser{Order: o, User: u}, ok
	})
}
