// Package store is the in-memory entity store of the admin dashboard: users,
// products, orders and order items, plus the order-to-user join.
//
// A Store is the single owner of its collections. Every read returns copies,
// so callers can never mutate stored records behind the store's back.
package store

import (
	"context"
	"sync"
	"time"
)

// maxOrderNumberAttempts bounds retries when a generated order number collides.
const maxOrderNumberAttempts = 8

// Store holds the four entity collections and their id counters.
type Store struct {
	mu         sync.RWMutex
	users      table[User]
	products   table[Product]
	orders     table[Order]
	orderItems table[OrderItem]

	now         func() time.Time
	orderNumber func(time.Time) string
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the clock used for defaulted creation timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithOrderNumberGenerator replaces the order number generator.
func WithOrderNumberGenerator(gen func(time.Time) string) Option {
	return func(s *Store) { s.orderNumber = gen }
}

// New creates an empty store. Use Seed to load the demo dataset.
func New(opts ...Option) *Store {
	s := &Store{
		users:       newTable[User](),
		products:    newTable[Product](),
		orders:      newTable[Order](),
		orderItems:  newTable[OrderItem](),
		now:         time.Now,
		orderNumber: GenerateOrderNumber,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot copies all collections under a single read lock.
func (s *Store) Snapshot(ctx context.Context) Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Users:      s.users.list(),
		Products:   s.products.list(),
		Orders:     s.orders.list(),
		OrderItems: s.orderItems.list(),
	}
}
