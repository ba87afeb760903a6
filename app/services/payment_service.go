package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"RestoPos/app/models"
	"RestoPos/app/store"
)

// PaymentService settles pending orders and posts the amounts into the open
// shift's accumulators and the transaction log.
type PaymentService struct {
	store *store.Store
	log   zerolog.Logger
}

// NewPaymentService creates a new payment service
func NewPaymentService(st *store.Store, logger zerolog.Logger) *PaymentService {
	return &PaymentService{
		store: st,
		log:   logger.With().Str("service", "payment").Logger(),
	}
}

// ConfirmPayment marks an order paid with the finalized (possibly adjusted)
// total and tax, appends a sale transaction, and routes the amount into the
// open shift: cash into cashSales, card into cardSales, and for multiple each
// sub-payment by its own method. When no shift is open the transaction is
// still recorded and the order still flips to paid, but the amount lands in
// no shift total; a warning is logged.
func (s *PaymentService) ConfirmPayment(orderID int64, details models.PaymentDetails, finalTotal, finalTax float64) (*models.Order, error) {
	orders := append([]models.Order{}, s.store.Orders.Get()...)
	var order *models.Order
	for i := range orders {
		if orders[i].ID == orderID {
			order = &orders[i]
			break
		}
	}
	if order == nil {
		return nil, fmt.Errorf("%w: order %d", ErrReference, orderID)
	}

	order.Status = models.OrderStatusPaid
	order.PaymentDetails = &details
	order.Total = finalTotal
	order.Tax = finalTax

	tx := models.Transaction{
		ID:            fmt.Sprintf("tx-%s", uuid.NewString()),
		Type:          models.TransactionSale,
		Amount:        finalTotal,
		CreatedAt:     time.Now(),
		Description:   fmt.Sprintf("Order #%d", orderID),
		PaymentMethod: details.Method,
		Tax:           finalTax,
		OrderID:       &orderID,
	}

	if err := s.store.Orders.Commit(orders); err != nil {
		return nil, err
	}
	if err := s.store.Transactions.Commit(append(s.store.Transactions.Get(), tx)); err != nil {
		return nil, err
	}

	if err := s.routeToShift(details, finalTotal, finalTax); err != nil {
		return nil, err
	}

	s.log.Info().Int64("order", orderID).Str("method", string(details.Method)).
		Float64("total", finalTotal).Msg("payment confirmed")
	return order, nil
}

func (s *PaymentService) routeToShift(details models.PaymentDetails, finalTotal, finalTax float64) error {
	shifts := append([]models.ShiftReport{}, s.store.Shifts.Get()...)
	for i := range shifts {
		if shifts[i].Status != models.ShiftOpen {
			continue
		}
		shifts[i].TotalTax += finalTax
		switch details.Method {
		case models.PaymentMethodCash:
			shifts[i].CashSales += finalTotal
		case models.PaymentMethodCard:
			shifts[i].CardSales += finalTotal
		case models.PaymentMethodMultiple:
			for _, p := range details.Payments {
				switch p.Method {
				case models.PaymentMethodCash:
					shifts[i].CashSales += p.Amount
				case models.PaymentMethodCard:
					shifts[i].CardSales += p.Amount
				}
			}
		}
		return s.store.Shifts.Commit(shifts)
	}

	s.log.Warn().Float64("amount", finalTotal).
		Msg("payment recorded with no open shift; amount will not appear in any shift total")
	return nil
}

// RecordManualIncome appends a manual transaction (income outside of order
// sales) and routes it into the open shift's manual income accumulators.
func (s *PaymentService) RecordManualIncome(amount float64, method models.PaymentMethod, description string) (*models.Transaction, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrValidation)
	}
	if method != models.PaymentMethodCash && method != models.PaymentMethodCard {
		return nil, fmt.Errorf("%w: manual income method must be cash or card", ErrValidation)
	}

	tx := models.Transaction{
		ID:            fmt.Sprintf("tx-%s", uuid.NewString()),
		Type:          models.TransactionManual,
		Amount:        amount,
		CreatedAt:     time.Now(),
		Description:   description,
		PaymentMethod: method,
	}
	if err := s.store.Transactions.Commit(append(s.store.Transactions.Get(), tx)); err != nil {
		return nil, err
	}

	shifts := append([]models.ShiftReport{}, s.store.Shifts.Get()...)
	routed := false
	for i := range shifts {
		if shifts[i].Status != models.ShiftOpen {
			continue
		}
		if method == models.PaymentMethodCash {
			shifts[i].ManualIncomeCash += amount
		} else {
			shifts[i].ManualIncomeCard += amount
		}
		routed = true
		break
	}
	if routed {
		if err := s.store.Shifts.Commit(shifts); err != nil {
			return nil, err
		}
	} else {
		s.log.Warn().Float64("amount", amount).Msg("manual income recorded with no open shift")
	}

	s.log.Info().Float64("amount", amount).Str("method", string(method)).Msg("manual income recorded")
	return &tx, nil
}
