package order

import "github.com/shopspring/decimal"

// CartItem describes one line of a new order. A missing price is taken from
// the product's current price.
type CartItem struct {
	ProductID int64            `json:"productId" validate:"required,gt=0"`
	Quantity  int              `json:"quantity" validate:"required,gte=1"`
	Price     *decimal.Decimal `json:"price"`
}

// PlaceOrderRequest is the payload for creating a new order. TotalAmount
// defaults to the sum of the item lines and is required without them.
type PlaceOrderRequest struct {
	UserID      int64            `json:"userId" validate:"required,gt=0"`
	TotalAmount *decimal.Decimal `json:"totalAmount" validate:"required_without=Items"`
	Status      string           `json:"status" validate:"omitempty,oneof=pending processing shipped completed cancelled"`
	Items       []CartItem       `json:"items" validate:"dive"`
}

// UpdateOrderRequest changes an order's status and/or amount.
type UpdateOrderRequest struct {
	Status      *string          `json:"status" validate:"omitempty,oneof=pending processing shipped completed cancelled"`
	TotalAmount *decimal.Decimal `json:"totalAmount"`
}
