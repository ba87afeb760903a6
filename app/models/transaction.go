package models

import "time"

// PaymentMethod identifies how a payment (or part of one) was made
type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "cash"
	PaymentMethodCard     PaymentMethod = "card"
	PaymentMethodMultiple PaymentMethod = "multiple"
)

// PartialPayment is one component of a multiple-method payment
type PartialPayment struct {
	Method PaymentMethod `json:"method"`
	Amount float64       `json:"amount"`
}

// PaymentDetails records how an order was settled
type PaymentDetails struct {
	Method     PaymentMethod    `json:"method"`
	Amount     float64          `json:"amount,omitempty"`
	CashAmount float64          `json:"cash_amount,omitempty"`
	CardAmount float64          `json:"card_amount,omitempty"`
	Payments   []PartialPayment `json:"payments,omitempty"` // set when Method is "multiple"
}

// TransactionType distinguishes order settlements from manual entries
type TransactionType string

const (
	TransactionSale   TransactionType = "sale"
	TransactionManual TransactionType = "manual"
)

// Transaction is one entry in the append-only money log
type Transaction struct {
	ID            string          `json:"id"`
	Type          TransactionType `json:"type"`
	Amount        float64         `json:"amount"`
	CreatedAt     time.Time       `json:"created_at"`
	Description   string          `json:"description"`
	PaymentMethod PaymentMethod   `json:"payment_method,omitempty"`
	Tax           float64         `json:"tax"`
	OrderID       *int64          `json:"order_id,omitempty"`
}
