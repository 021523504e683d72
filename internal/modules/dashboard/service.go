package dashboard

import (
	"context"

	"github.com/akshayfox/admin-dashboard/internal/analytics"
)

// Service serves the dashboard aggregates.
type Service interface {
	Stats(ctx context.Context) (analytics.DashboardStats, error)
	TopProducts(ctx context.Context) ([]analytics.TopProduct, error)
	Sales(ctx context.Context, timeRange string) ([]analytics.SalesPoint, error)
}

type service struct{ engine *analytics.Engine }

func NewService(engine *analytics.Engine) Service { return &service{engine: engine} }

func (s *service) Stats(ctx context.Context) (analytics.DashboardStats, error) {
	return s.engine.Stats(ctx), nil
}

func (s *service) TopProducts(ctx context.Context) ([]analytics.TopProduct, error) {
	return s.engine.TopProducts(ctx), nil
}

func (s *service) Sales(ctx context.Context, timeRange string) ([]analytics.SalesPoint, error) {
	r, err := analytics.ParseTimeRange(timeRange)
	if err != nil {
		return nil, err
	}
	return s.engine.Sales(ctx, r)
}
