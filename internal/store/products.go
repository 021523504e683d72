package store

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

func (s *Store) CreateProduct(ctx context.Context, in NewProduct) (*Product, error) {
	if err := validateProduct(in.Name, in.Price, in.Stock); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.products.insert(func(id int64) Product {
		return Product{
			ID:          id,
			Name:        in.Name,
			Description: in.Description,
			Price:       in.Price,
			ImageURL:    in.ImageURL,
			Category:    in.Category,
			Stock:       in.Stock,
		}
	})
	return &p, nil
}

func (s *Store) GetProduct(ctx context.Context, id int64) (*Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products.get(id)
	if !ok {
		return nil, fmt.Errorf("product %d: %w", id, ErrNotFound)
	}
	return &p, nil
}

func (s *Store) ListProducts(ctx context.Context) ([]Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.products.list(), nil
}

// UpdateProduct merges the non-nil fields of patch into the stored product.
// Order items keep the price they were created with.
func (s *Store) UpdateProduct(ctx context.Context, id int64, patch ProductPatch) (*Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products.get(id)
	if !ok {
		return nil, fmt.Errorf("product %d: %w", id, ErrNotFound)
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.ImageURL != nil {
		p.ImageURL = *patch.ImageURL
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Stock != nil {
		p.Stock = *patch.Stock
	}
	if err := validateProduct(p.Name, p.Price, p.Stock); err != nil {
		return nil, err
	}
	s.products.put(id, p)
	return &p, nil
}

// AdjustStock adds delta (which may be negative) to a product's stock in a
// single step. The result must not drop below zero.
func (s *Store) AdjustStock(ctx context.Context, id int64, delta int) (*Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products.get(id)
	if !ok {
		return nil, fmt.Errorf("product %d: %w", id, ErrNotFound)
	}
	if p.Stock+delta < 0 {
		return nil, fmt.Errorf("product %d has %d in stock, cannot remove %d: %w", id, p.Stock, -delta, ErrValidation)
	}
	p.Stock += delta
	s.products.put(id, p)
	return &p, nil
}

// DeleteProduct removes a product that no order item references.
func (s *Store) DeleteProduct(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products.get(id); !ok {
		return fmt.Errorf("product %d: %w", id, ErrNotFound)
	}
	if it, ok := s.orderItems.find(func(it OrderItem) bool { return it.ProductID == id }); ok {
		return fmt.Errorf("product %d is referenced by order %d: %w", id, it.OrderID, ErrConflict)
	}
	s.products.remove(id)
	return nil
}

func validateProduct(name string, price decimal.Decimal, stock int) error {
	if name == "" {
		return fmt.Errorf("name is required: %w", ErrValidation)
	}
	if price.IsNegative() {
		return fmt.Errorf("price must not be negative: %w", ErrValidation)
	}
	if stock < 0 {
		return fmt.Errorf("stock must not be negative: %w", ErrValidation)
	}
	return nil
}
