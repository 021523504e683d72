package store

import (
	"time"

	"github.com/shopspring/decimal"
)

// Role is the access level of a dashboard account.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleUser     Role = "user"
	RoleCustomer Role = "customer"
	RoleManager  Role = "manager"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleUser, RoleCustomer, RoleManager:
		return true
	}
	return false
}

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusCompleted  OrderStatus = "completed"
	StatusCancelled  OrderStatus = "cancelled"
)

// Valid reports whether s is one of the known order statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// User is a dashboard account. Password is stored as handed in by the caller
// (the user module stores a bcrypt hash) and never serialized.
type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Password  string `json:"-"`
	FullName  string `json:"fullName"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

// Product is an item in the catalog.
type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"imageUrl,omitempty"`
	Category    string          `json:"category,omitempty"`
	Stock       int             `json:"stock"`
}

// Order is a customer's order. OrderNumber is the human-readable reference.
type Order struct {
	ID          int64           `json:"id"`
	UserID      int64           `json:"userId"`
	OrderNumber string          `json:"orderNumber"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Status      OrderStatus     `json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// OrderItem is a single line of an order. Price is the unit price captured
// when the item was created; it never follows later product price changes.
type OrderItem struct {
	ID        int64           `json:"id"`
	OrderID   int64           `json:"orderId"`
	ProductID int64           `json:"productId"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// OrderWithUser is an order joined with the account that placed it.
type OrderWithUser struct {
	Order
	User User `json:"user"`
}

// NewUser holds the caller-supplied fields of a user.
type NewUser struct {
	Username  string
	Password  string
	FullName  string
	Email     string
	Role      Role
	AvatarURL string
}

// UserPatch is a partial user update. Nil fields are left untouched.
type UserPatch struct {
	Password  *string
	FullName  *string
	Email     *string
	Role      *Role
	AvatarURL *string
}

// NewProduct holds the caller-supplied fields of a product.
type NewProduct struct {
	Name        string
	Description string
	Price       decimal.Decimal
	ImageURL    string
	Category    string
	Stock       int
}

// ProductPatch is a partial product update. Nil fields are left untouched.
type ProductPatch struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	ImageURL    *string
	Category    *string
	Stock       *int
}

// NewOrder holds the caller-supplied fields of an order. A nil TotalAmount
// is computed from Items; a nil CreatedAt defaults to the store clock.
type NewOrder struct {
	UserID      int64
	TotalAmount *decimal.Decimal
	Status      OrderStatus
	CreatedAt   *time.Time
	Items       []NewOrderItem
}

// OrderPatch is a partial order update. Nil fields are left untouched.
type OrderPatch struct {
	Status      *OrderStatus
	TotalAmount *decimal.Decimal
}

// NewOrderItem describes one line of an order. A nil Price snapshots the
// product's current price.
type NewOrderItem struct {
	OrderID   int64
	ProductID int64
	Quantity  int
	Price     *decimal.Decimal
}

// Snapshot is a consistent copy of every collection, in insertion order.
type Snapshot struct {
	Users      []User
	Products   []Product
	Orders     []Order
	OrderItems []OrderItem
}
