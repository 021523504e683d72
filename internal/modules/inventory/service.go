package inventory

import (
	"context"

	"github.com/akshayfox/admin-dashboard/internal/analytics"
	"github.com/akshayfox/admin-dashboard/internal/store"
	"github.com/samber/lo"
)

// Service defines stock-keeping business logic.
type Service interface {
	Levels(ctx context.Context) ([]StockLevel, error)
	LowStock(ctx context.Context, threshold int) ([]StockLevel, error)
	UpdateStock(ctx context.Context, productID int64, qty int) (*StockLevel, error)
	AdjustStock(ctx context.Context, productID int64, delta int) (*StockLevel, error)
}

type service struct{ repo Repository }

// NewService creates a new inventory service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) Levels(ctx context.Context) ([]StockLevel, error) {
	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	return lo.Map(products, func(p store.Product, _ int) StockLevel {
		return levelOf(p, analytics.LowStockThreshold)
	}), nil
}

// LowStock lists the products under threshold, in catalog order. Zero means
// the dashboard's threshold.
func (s *service) LowStock(ctx context.Context, threshold int) ([]StockLevel, error) {
	if threshold == 0 {
		threshold = analytics.LowStockThreshold
	}
	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	return lo.FilterMap(products, func(p store.Product, _ int) (StockLevel, bool) {
		return levelOf(p, threshold), p.Stock < threshold
	}), nil
}

func (s *service) UpdateStock(ctx context.Context, productID int64, qty int) (*StockLevel, error) {
	p, err := s.repo.UpdateProduct(ctx, productID, store.ProductPatch{Stock: &qty})
	if err != nil {
		return nil, err
	}
	level := levelOf(*p, analytics.LowStockThreshold)
	return &level, nil
}

func (s *service) AdjustStock(ctx context.Context, productID int64, delta int) (*StockLevel, error) {
	p, err := s.repo.AdjustStock(ctx, productID, delta)
	if err != nil {
		return nil, err
	}
	level := levelOf(*p, analytics.LowStockThreshold)
	return &level, nil
}
