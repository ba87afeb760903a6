package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"RestoPos/app/models"
	"RestoPos/app/store"
)

// OrderService governs the order lifecycle: submitting carts, holding and
// resuming them per table, editing submitted orders, and status transitions.
type OrderService struct {
	store        *store.Store
	cart         *CartService
	inventorySvc *InventoryService
	taxRate      float64
	log          zerolog.Logger
}

// NewOrderService creates a new order service
func NewOrderService(st *store.Store, cart *CartService, inventorySvc *InventoryService, taxRate float64, logger zerolog.Logger) *OrderService {
	return &OrderService{
		store:        st,
		cart:         cart,
		inventorySvc: inventorySvc,
		taxRate:      taxRate,
		log:          logger.With().Str("service", "order").Logger(),
	}
}

// SelectTable resolves a table selection. If a held order is parked on the
// table it is surfaced for a resume/discard decision; otherwise the cart is
// bound to the table and a nil held order is returned.
func (s *OrderService) SelectTable(number int, area models.Area) *models.HeldOrder {
	for _, held := range s.store.HeldOrders.Get() {
		if held.TableNumber == number && held.Area == area {
			h := held
			return &h
		}
	}
	s.cart.BindTable(number, area)
	return nil
}

// Submit commits the cart: decrements stock for every line not already on an
// order under edit, then creates the order (or replaces the edited order's
// items, notes, and totals). Both effects are persisted in one transaction
// so neither is visible without the other. On success the cart is cleared.
func (s *OrderService) Submit(waiterID string) (*models.Order, error) {
	if s.cart.Empty() {
		return nil, fmt.Errorf("%w: cart is empty", ErrValidation)
	}
	editing := s.cart.Editing()
	if s.cart.Table() == nil && editing == nil {
		return nil, fmt.Errorf("%w: no table selected and no order under edit", ErrValidation)
	}

	var skip func(lineID string) bool
	if editing != nil {
		skip = s.cart.IsOriginal
	}
	nextInventory := s.inventorySvc.NextAfterConsumption(s.cart.Items(), skip)

	totals := s.cart.Totals(s.taxRate)
	orders := append([]models.Order{}, s.store.Orders.Get()...)

	var result *models.Order
	if editing != nil {
		found := false
		for i := range orders {
			if orders[i].ID == editing.ID {
				orders[i].Items = append([]models.OrderItem{}, s.cart.Items()...)
				orders[i].Notes = s.cart.Notes()
				orders[i].Subtotal = totals.Subtotal
				orders[i].Tax = totals.Tax
				orders[i].Total = totals.Total
				result = &orders[i]
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: order %d", ErrReference, editing.ID)
		}
	} else {
		table := s.cart.Table()
		id := time.Now().UnixMilli()
		for _, existing := range orders {
			if existing.ID >= id {
				id = existing.ID + 1
			}
		}
		order := models.Order{
			ID:          id,
			Items:       append([]models.OrderItem{}, s.cart.Items()...),
			Subtotal:    totals.Subtotal,
			Tax:         totals.Tax,
			Total:       totals.Total,
			Status:      models.OrderStatusPending,
			CreatedAt:   time.Now(),
			TableNumber: table.Number,
			Area:        table.Area,
			WaiterID:    waiterID,
			Notes:       s.cart.Notes(),
		}
		orders = append(orders, order)
		result = &orders[len(orders)-1]
	}

	if err := s.store.CommitOrdersAndInventory(orders, nextInventory); err != nil {
		return nil, err
	}

	s.log.Info().Int64("order", result.ID).Int("items", len(result.Items)).
		Float64("total", result.Total).Bool("edit", editing != nil).Msg("order submitted")
	s.cart.Reset()
	return result, nil
}

// Hold parks the cart against its table as a held order and clears the cart.
// No inventory is consumed until the held order is resumed and submitted.
func (s *OrderService) Hold(waiterID string) (*models.HeldOrder, error) {
	if s.cart.Empty() {
		return nil, fmt.Errorf("%w: cart is empty", ErrValidation)
	}
	table := s.cart.Table()
	if table == nil {
		return nil, fmt.Errorf("%w: no table selected", ErrValidation)
	}

	held := append([]models.HeldOrder{}, s.store.HeldOrders.Get()...)
	for _, h := range held {
		if h.TableNumber == table.Number && h.Area == table.Area {
			return nil, fmt.Errorf("%w: table %d (%s) already has a held order", ErrPrecondition, table.Number, table.Area)
		}
	}

	heldOrder := models.HeldOrder{
		ID:          fmt.Sprintf("held-%s", uuid.NewString()),
		CreatedAt:   time.Now(),
		TableNumber: table.Number,
		Area:        table.Area,
		Items:       append([]models.OrderItem{}, s.cart.Items()...),
		Notes:       s.cart.Notes(),
		WaiterID:    waiterID,
	}
	held = append(held, heldOrder)

	if err := s.store.HeldOrders.Commit(held); err != nil {
		return nil, err
	}

	s.log.Info().Str("held_order", heldOrder.ID).Int("table", table.Number).Msg("order held")
	s.cart.Reset()
	return &heldOrder, nil
}

// ResumeHeld removes a held order from the held set and loads its items and
// notes back into the cart, bound to the same table.
func (s *OrderService) ResumeHeld(heldOrderID string) error {
	held := s.store.HeldOrders.Get()
	var target *models.HeldOrder
	remaining := make([]models.HeldOrder, 0, len(held))
	for _, h := range held {
		if h.ID == heldOrderID {
			target = &h
			continue
		}
		remaining = append(remaining, h)
	}
	if target == nil {
		return fmt.Errorf("%w: held order %q", ErrReference, heldOrderID)
	}

	if err := s.store.HeldOrders.Commit(remaining); err != nil {
		return err
	}

	s.cart.BindTable(target.TableNumber, target.Area)
	s.cart.Load(target.Items, target.Notes)
	s.log.Info().Str("held_order", heldOrderID).Int("table", target.TableNumber).Msg("held order resumed")
	return nil
}

// DiscardHeld removes a held order without restoring its items, then binds
// the cart to the freed table for a new order. Destructive, so the caller
// must pass explicit confirmation.
func (s *OrderService) DiscardHeld(heldOrderID string, confirmed bool) error {
	if !confirmed {
		return fmt.Errorf("%w: discarding a held order requires confirmation", ErrValidation)
	}

	held := s.store.HeldOrders.Get()
	var target *models.HeldOrder
	remaining := make([]models.HeldOrder, 0, len(held))
	for _, h := range held {
		if h.ID == heldOrderID {
			target = &h
			continue
		}
		remaining = append(remaining, h)
	}
	if target == nil {
		return fmt.Errorf("%w: held order %q", ErrReference, heldOrderID)
	}

	if err := s.store.HeldOrders.Commit(remaining); err != nil {
		return err
	}

	s.cart.BindTable(target.TableNumber, target.Area)
	s.log.Info().Str("held_order", heldOrderID).Msg("held order discarded")
	return nil
}

// Cancel discards the cart and editing context. Nothing persisted changes.
func (s *OrderService) Cancel() {
	s.cart.Reset()
}

// EditExisting loads a submitted order into the cart for in-place editing
func (s *OrderService) EditExisting(orderID int64) error {
	for _, order := range s.store.Orders.Get() {
		if order.ID == orderID {
			s.cart.BeginEdit(order)
			return nil
		}
	}
	return fmt.Errorf("%w: order %d", ErrReference, orderID)
}

// UpdateStatus moves an order to the given status. No transition table is
// enforced; the kitchen queue drives pending through preparing to ready and
// the UI is trusted not to walk backwards.
func (s *OrderService) UpdateStatus(orderID int64, status models.OrderStatus) (*models.Order, error) {
	orders := append([]models.Order{}, s.store.Orders.Get()...)
	for i := range orders {
		if orders[i].ID == orderID {
			orders[i].Status = status
			if err := s.store.Orders.Commit(orders); err != nil {
				return nil, err
			}
			s.log.Info().Int64("order", orderID).Str("status", status.String()).Msg("order status updated")
			return &orders[i], nil
		}
	}
	return nil, fmt.Errorf("%w: order %d", ErrReference, orderID)
}
