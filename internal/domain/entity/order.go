// Package entity contains the core business objects of the project.
package entity

import "time"

// OrderStatus is a closed set of order states. No other values are
// permitted anywhere in the system.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusCompleted, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// OrderItem is a single line of an order.
//
// JSON field names keep the upstream snake_case wire shape so persisted
// data stays interchangeable with what the order source produces.
type OrderItem struct {
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// Order is a buyer order visible to a property owner. Orders originate
// from an external source (see service.OrderSource); in-app they are only
// ever mutated through status transitions, never deleted.
type Order struct {
	ID        string      `json:"id"`
	BuyerName string      `json:"buyer_name"`
	Items     []OrderItem `json:"items"`
	Total     float64     `json:"total"`
	Status    OrderStatus `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
}
