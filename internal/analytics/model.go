package analytics

import "github.com/shopspring/decimal"

// DashboardStats are the headline numbers of the dashboard.
type DashboardStats struct {
	TotalRevenue     decimal.Decimal `json:"totalRevenue"`
	TodayRevenue     decimal.Decimal `json:"todayRevenue"`
	TotalOrders      int             `json:"totalOrders"`
	PendingOrders    int             `json:"pendingOrders"`
	CompletedOrders  int             `json:"completedOrders"`
	TotalProducts    int             `json:"totalProducts"`
	TotalCustomers   int             `json:"totalCustomers"`
	LowStockProducts int             `json:"lowStockProducts"`
}

// TopProduct is a product ranked by units sold.
type TopProduct struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Category     string          `json:"category,omitempty"`
	TotalSold    int             `json:"totalSold"`
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
	ImageURL     string          `json:"imageUrl,omitempty"`
}

// SalesPoint is the revenue of one bucket of the sales series.
type SalesPoint struct {
	Date    string          `json:"date"`
	Revenue decimal.Decimal `json:"revenue"`
}
