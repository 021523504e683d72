package analytics

import (
	"context"
	"time"

	"github.com/akshayfox/admin-dashboard/internal/store"
)

// Source provides consistent views of the entity collections.
type Source interface {
	Snapshot(ctx context.Context) store.Snapshot
}

// Engine computes aggregates over the current contents of a Source.
type Engine struct {
	src Source
	now func() time.Time
	loc *time.Location
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithClock sets the engine clock.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) { e.now = now }
}

// WithLocation sets the location whose calendar days and months bucket the data.
func WithLocation(loc *time.Location) EngineOption {
	return func(e *Engine) { e.loc = loc }
}

func NewEngine(src Source, opts ...EngineOption) *Engine {
	e := &Engine{src: src, now: time.Now, loc: time.Local}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) Stats(ctx context.Context) DashboardStats {
	return Stats(e.src.Snapshot(ctx), e.now().In(e.loc))
}

func (e *Engine) TopProducts(ctx context.Context) []TopProduct {
	return TopProducts(e.src.Snapshot(ctx), TopProductsLimit)
}

func (e *Engine) Sales(ctx context.Context, r TimeRange) ([]SalesPoint, error) {
	return Sales(e.src.Snapshot(ctx), r, e.now().In(e.loc))
}
