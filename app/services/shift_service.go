package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"RestoPos/app/models"
	"RestoPos/app/store"
)

// ShiftService owns the daily trading shift: opening with a cash balance,
// accumulating sales while open, and closing once every order is resolved.
type ShiftService struct {
	store *store.Store
	log   zerolog.Logger
}

// NewShiftService creates a new shift service
func NewShiftService(st *store.Store, logger zerolog.Logger) *ShiftService {
	return &ShiftService{
		store: st,
		log:   logger.With().Str("service", "shift").Logger(),
	}
}

// ActiveShift returns the currently OPEN shift, or nil
func (s *ShiftService) ActiveShift() *models.ShiftReport {
	shifts := s.store.Shifts.Get()
	for i := range shifts {
		if shifts[i].Status == models.ShiftOpen {
			shift := shifts[i]
			return &shift
		}
	}
	return nil
}

// OpenDay opens a new shift with the given opening cash balance. Refused
// while another shift is still open.
func (s *ShiftService) OpenDay(openingBalance float64) (*models.ShiftReport, error) {
	if s.ActiveShift() != nil {
		return nil, fmt.Errorf("%w: a shift is already open", ErrPrecondition)
	}

	shift := models.ShiftReport{
		ID:             fmt.Sprintf("shift-%s", uuid.NewString()),
		Status:         models.ShiftOpen,
		OpeningBalance: openingBalance,
		OpenedAt:       time.Now(),
	}

	if err := s.store.Shifts.Commit(append(s.store.Shifts.Get(), shift)); err != nil {
		return nil, err
	}

	s.log.Info().Str("shift", shift.ID).Float64("opening_balance", openingBalance).Msg("day opened")
	return &shift, nil
}

// CloseDay closes the open shift. While any order is still outside a
// terminal status the close is refused with an UnresolvedOrdersError listing
// them; each must be paid or converted to credit first.
func (s *ShiftService) CloseDay() (*models.ShiftReport, error) {
	unresolved := s.UnresolvedOrders()
	if len(unresolved) > 0 {
		return nil, &UnresolvedOrdersError{Orders: unresolved}
	}
	return s.finalizeClose(nil)
}

// UnresolvedOrders returns every order not yet in a terminal status
func (s *ShiftService) UnresolvedOrders() []models.Order {
	var unresolved []models.Order
	for _, order := range s.store.Orders.Get() {
		if !order.Status.Terminal() {
			unresolved = append(unresolved, order)
		}
	}
	return unresolved
}

// CreditConvert resolves the given orders to on_credit with the attached
// customer names and then finalizes the close. Every unresolved order must
// be covered or the close is refused again.
func (s *ShiftService) CreditConvert(customerNames map[int64]string) (*models.ShiftReport, error) {
	for id, name := range customerNames {
		if name == "" {
			return nil, fmt.Errorf("%w: order %d needs a customer name for credit conversion", ErrValidation, id)
		}
	}

	for _, order := range s.UnresolvedOrders() {
		if _, ok := customerNames[order.ID]; !ok {
			return nil, &UnresolvedOrdersError{Orders: []models.Order{order}}
		}
	}

	return s.finalizeClose(customerNames)
}

// finalizeClose converts the given orders to credit, freezes the live
// accumulators into the final fields, and flips the shift to CLOSED.
func (s *ShiftService) finalizeClose(customerNames map[int64]string) (*models.ShiftReport, error) {
	shifts := append([]models.ShiftReport{}, s.store.Shifts.Get()...)
	var active *models.ShiftReport
	for i := range shifts {
		if shifts[i].Status == models.ShiftOpen {
			active = &shifts[i]
			break
		}
	}
	if active == nil {
		return nil, fmt.Errorf("%w: no open shift", ErrReference)
	}

	if len(customerNames) > 0 {
		orders := append([]models.Order{}, s.store.Orders.Get()...)
		for i := range orders {
			if name, ok := customerNames[orders[i].ID]; ok {
				orders[i].Status = models.OrderStatusOnCredit
				orders[i].CustomerName = name
			}
		}
		if err := s.store.Orders.Commit(orders); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	revenue := active.CashSales + active.CardSales + active.ManualIncomeCash + active.ManualIncomeCard
	active.Status = models.ShiftClosed
	active.ClosedAt = &now
	active.FinalTotalRevenue = f64(revenue)
	active.FinalTotalTax = f64(active.TotalTax)
	active.FinalCashSales = f64(active.CashSales)
	active.FinalCardSales = f64(active.CardSales)
	active.FinalManualIncomeCash = f64(active.ManualIncomeCash)
	active.FinalManualIncomeCard = f64(active.ManualIncomeCard)

	if err := s.store.Shifts.Commit(shifts); err != nil {
		return nil, err
	}

	s.log.Info().Str("shift", active.ID).Float64("revenue", revenue).Msg("day closed")
	closed := *active
	return &closed, nil
}

func f64(v float64) *float64 {
	return &v
}
