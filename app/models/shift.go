package models

import "time"

// ShiftStatus represents the status of a trading-day shift
type ShiftStatus string

const (
	ShiftOpen   ShiftStatus = "OPEN"
	ShiftClosed ShiftStatus = "CLOSED"
)

// ShiftReport is a single trading day's cash-accounting period.
// The live accumulators mutate while the shift is OPEN; the Final* fields
// are frozen copies written once at close. At most one shift is OPEN at a time.
type ShiftReport struct {
	ID             string      `json:"id"`
	Status         ShiftStatus `json:"status"`
	OpeningBalance float64     `json:"opening_balance"`
	OpenedAt       time.Time   `json:"opened_at"`
	ClosedAt       *time.Time  `json:"closed_at,omitempty"`

	// Live accumulators for the open shift
	CashSales        float64 `json:"cash_sales"`
	CardSales        float64 `json:"card_sales"`
	ManualIncomeCash float64 `json:"manual_income_cash"`
	ManualIncomeCard float64 `json:"manual_income_card"`
	TotalTax         float64 `json:"total_tax"`

	// Frozen at close
	FinalTotalRevenue     *float64 `json:"final_total_revenue,omitempty"`
	FinalTotalTax         *float64 `json:"final_total_tax,omitempty"`
	FinalCashSales        *float64 `json:"final_cash_sales,omitempty"`
	FinalCardSales        *float64 `json:"final_card_sales,omitempty"`
	FinalManualIncomeCash *float64 `json:"final_manual_income_cash,omitempty"`
	FinalManualIncomeCard *float64 `json:"final_manual_income_card,omitempty"`
}
