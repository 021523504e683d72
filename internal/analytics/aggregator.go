// Package analytics derives the dashboard aggregates from a store snapshot.
// Nothing is cached: every call recomputes from the data it is given.
package analytics

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/akshayfox/admin-dashboard/internal/store"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

const (
	// TopProductsLimit is how many products the dashboard ranks.
	TopProductsLimit = 5

	// LowStockThreshold: products with fewer units than this count as low stock.
	LowStockThreshold = 10

	dayLayout   = "2006-01-02"
	monthLayout = "2006-01"
)

// TimeRange selects the window and bucket size of the sales series.
type TimeRange string

const (
	RangeWeekly  TimeRange = "weekly"
	RangeMonthly TimeRange = "monthly"
	RangeYearly  TimeRange = "yearly"
)

// ErrUnknownRange is returned by ParseTimeRange for unsupported ranges.
var ErrUnknownRange = errors.New("unknown time range")

// ParseTimeRange parses a range name. The empty string means monthly.
func ParseTimeRange(s string) (TimeRange, error) {
	switch r := TimeRange(s); r {
	case "":
		return RangeMonthly, nil
	case RangeWeekly, RangeMonthly, RangeYearly:
		return r, nil
	}
	return "", fmt.Errorf("%w %q (want weekly, monthly or yearly): %w", ErrUnknownRange, s, store.ErrValidation)
}

// Stats computes the dashboard statistics. "Today" is the calendar day of
// now in now's location.
func Stats(snap store.Snapshot, now time.Time) DashboardStats {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	today := lo.Filter(snap.Orders, func(o store.Order, _ int) bool {
		return !o.CreatedAt.Before(dayStart) && o.CreatedAt.Before(dayEnd)
	})

	return DashboardStats{
		TotalRevenue: sumAmounts(snap.Orders),
		TodayRevenue: sumAmounts(today),
		TotalOrders:  len(snap.Orders),
		PendingOrders: lo.CountBy(snap.Orders, func(o store.Order) bool {
			return o.Status == store.StatusPending
		}),
		CompletedOrders: lo.CountBy(snap.Orders, func(o store.Order) bool {
			return o.Status == store.StatusCompleted
		}),
		TotalProducts: len(snap.Products),
		TotalCustomers: lo.CountBy(snap.Users, func(u store.User) bool {
			return u.Role == store.RoleCustomer
		}),
		LowStockProducts: lo.CountBy(snap.Products, func(p store.Product) bool {
			// stock defaults to 0, so an empty shelf counts as low
			return p.Stock < LowStockThreshold
		}),
	}
}

// TopProducts ranks every product by units sold, descending, and returns the
// first limit. Products with equal sales keep catalog order; products with no
// sales are ranked too. A limit <= 0 returns the whole ranking.
func TopProducts(snap store.Snapshot, limit int) []TopProduct {
	byProduct := lo.GroupBy(snap.OrderItems, func(it store.OrderItem) int64 { return it.ProductID })

	ranked := lo.Map(snap.Products, func(p store.Product, _ int) TopProduct {
		tp := TopProduct{
			ID:           p.ID,
			Name:         p.Name,
			Category:     p.Category,
			ImageURL:     p.ImageURL,
			TotalRevenue: decimal.Zero,
		}
		for _, it := range byProduct[p.ID] {
			tp.TotalSold += it.Quantity
			tp.TotalRevenue = tp.TotalRevenue.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
		}
		return tp
	})

	slices.SortStableFunc(ranked, func(a, b TopProduct) int { return b.TotalSold - a.TotalSold })
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// Sales returns a dense revenue series ending at now: one entry per day for
// the last 7 (weekly) or 30 (monthly) days, or one per month for the last 12
// months (yearly), oldest first. Buckets follow now's location.
func Sales(snap store.Snapshot, r TimeRange, now time.Time) ([]SalesPoint, error) {
	loc := now.Location()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	var (
		layout  string
		buckets []time.Time
	)
	switch r {
	case RangeWeekly, RangeMonthly:
		days := 7
		if r == RangeMonthly {
			days = 30
		}
		layout = dayLayout
		for i := days - 1; i >= 0; i-- {
			buckets = append(buckets, today.AddDate(0, 0, -i))
		}
	case RangeYearly:
		layout = monthLayout
		month := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
		for i := 11; i >= 0; i-- {
			buckets = append(buckets, month.AddDate(0, -i, 0))
		}
	default:
		return nil, fmt.Errorf("%w %q: %w", ErrUnknownRange, r, store.ErrValidation)
	}

	// One pass over the orders, then one lookup per bucket.
	revenue := make(map[string]decimal.Decimal, len(buckets))
	for _, o := range snap.Orders {
		key := o.CreatedAt.In(loc).Format(layout)
		revenue[key] = revenue[key].Add(o.TotalAmount)
	}

	points := make([]SalesPoint, 0, len(buckets))
	for _, b := range buckets {
		key := b.Format(layout)
		v, ok := revenue[key]
		if !ok {
			v = decimal.Zero
		}
		points = append(points, SalesPoint{Date: key, Revenue: v})
	}
	return points, nil
}

func sumAmounts(orders []store.Order) decimal.Decimal {
	total := decimal.Zero
	for _, o := range orders {
		total = total.Add(o.TotalAmount)
	}
	return total
}
