package model

import (
	"time"

	"gorm.io/datatypes"
)

type OrderStatus string // order lifecycle state

const (
	OrderStatusPending   OrderStatus = "PENDING"   // placed, cancellable by the owner
	OrderStatusConfirmed OrderStatus = "CONFIRMED" // accepted by the restaurant
	OrderStatusDelivered OrderStatus = "DELIVERED" // terminal, unlocks reviews
	OrderStatusCancelled OrderStatus = "CANCELLED" // terminal
)

// OrderStatuses lists every state in lifecycle order.
var OrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusConfirmed,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// LineItem is a priced snapshot of one requested menu item. PriceAtOrder is
// fixed when the order is created.
type LineItem struct {
	MenuItemID   uint    `json:"menu_item_id"`
	Quantity     int     `json:"quantity"`
	PriceAtOrder float64 `json:"price_at_order"`
}

// Subtotal returns PriceAtOrder × Quantity.
func (li LineItem) Subtotal() float64 {
	return li.PriceAtOrder * float64(li.Quantity)
}

// LineItems is stored as a single JSON column on orders.
type LineItems = datatypes.JSONSlice[LineItem]

// SumLineItems returns Σ PriceAtOrder × Quantity.
func SumLineItems(items []LineItem) float64 {
	var total float64
	for _, li := range items {
		total += li.Subtotal()
	}
	return total
}

type Order struct {
	ID           uint        `gorm:"primarykey" json:"id"`                                            // order ID
	UserID       uint        `gorm:"not null;index" json:"user_id"`                                   // owner
	RestaurantID uint        `gorm:"not null;index" json:"restaurant_id"`                             // restaurant ordered from
	Items        LineItems   `gorm:"not null" json:"items"`                                           // embedded line items
	Status       OrderStatus `gorm:"type:varchar(20);not null;default:'PENDING';index" json:"status"` // lifecycle state
	TotalPrice   float64     `gorm:"not null" json:"total_price"`                                     // fixed at creation
	CreatedAt    time.Time   `json:"created_at"`                                                      // created at
	UpdatedAt    time.Time   `json:"updated_at"`                                                      // updated at
}

func (Order) TableName() string {
	return "orders"
}
