package models

import "time"

// OrderStatus represents the status of an order
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusOnCredit  OrderStatus = "on_credit"
	OrderStatusCancelled OrderStatus = "cancelled"
)

func (s OrderStatus) String() string {
	return string(s)
}

// Terminal reports whether the status resolves the order for day-close purposes
func (s OrderStatus) Terminal() bool {
	switch s {
	case OrderStatusPaid, OrderStatusCancelled, OrderStatusOnCredit:
		return true
	}
	return false
}

// OrderItem is one line of an order: a menu item with its chosen
// customizations, removed ingredients, and resolved per-unit price.
type OrderItem struct {
	ID                 string               `json:"id"`
	MenuItem           MenuItem             `json:"menu_item"`
	Quantity           int                  `json:"quantity"`
	Customizations     map[string]Selection `json:"customizations"`
	RemovedIngredients []string             `json:"removed_ingredients"`
	UnitPrice          float64              `json:"unit_price"` // base price + customization modifiers, pre-tax
	Discount           float64              `json:"discount,omitempty"` // percentage, 0-100
	CreatedAt          time.Time            `json:"created_at"`
}

// Order represents a submitted customer order
type Order struct {
	ID             int64           `json:"id"` // time-based
	Items          []OrderItem     `json:"items"`
	Subtotal       float64         `json:"subtotal"`
	Tax            float64         `json:"tax"`
	Total          float64         `json:"total"`
	Status         OrderStatus     `json:"status"`
	CreatedAt      time.Time       `json:"created_at"`
	TableNumber    int             `json:"table_number"`
	Area           Area            `json:"area"`
	WaiterID       string          `json:"waiter_id"`
	Notes          string          `json:"notes"`
	PaymentDetails *PaymentDetails `json:"payment_details,omitempty"`
	CustomerName   string          `json:"customer_name,omitempty"` // set when converted to on_credit
}

// HeldOrder is a cart parked against a table without becoming an order.
// At most one may exist per (table number, area) pair.
type HeldOrder struct {
	ID          string      `json:"id"`
	CreatedAt   time.Time   `json:"created_at"`
	TableNumber int         `json:"table_number"`
	Area        Area        `json:"area"`
	Items       []OrderItem `json:"items"`
	Notes       string      `json:"notes"`
	WaiterID    string      `json:"waiter_id"`
}
