package services

import (
	"fmt"

	"github.com/rs/zerolog"

	"RestoPos/app/models"
	"RestoPos/app/store"
)

// InventoryService maintains the stock counters. Decrements never block:
// stock is allowed to go negative so an over-sold item shows up in reporting
// instead of failing the sale.
type InventoryService struct {
	store *store.Store
	log   zerolog.Logger
}

// NewInventoryService creates a new inventory service
func NewInventoryService(st *store.Store, logger zerolog.Logger) *InventoryService {
	return &InventoryService{
		store: st,
		log:   logger.With().Str("service", "inventory").Logger(),
	}
}

// Decrement reduces a stock item's quantity by amount and persists the
// collection. An unknown id is a no-op, not an error.
func (s *InventoryService) Decrement(stockItemID string, amount float64) ([]models.InventoryItem, error) {
	next := applyDecrement(s.store.Inventory.Get(), stockItemID, amount)
	if err := s.store.Inventory.Commit(next); err != nil {
		return nil, err
	}
	return next, nil
}

// NextAfterConsumption computes the inventory state after committing the
// given cart lines, without persisting anything. Lines for which skip returns
// true (already on an order being edited) are left out so their stock is not
// decremented twice. Submit persists the result together with the order.
func (s *InventoryService) NextAfterConsumption(items []models.OrderItem, skip func(lineID string) bool) []models.InventoryItem {
	next := append([]models.InventoryItem{}, s.store.Inventory.Get()...)
	for _, line := range items {
		if skip != nil && skip(line.ID) {
			continue
		}
		if line.MenuItem.StockItemID == "" {
			continue
		}
		amount := line.MenuItem.StockConsumption * float64(line.Quantity)
		next = applyDecrement(next, line.MenuItem.StockItemID, amount)
	}
	return next
}

func applyDecrement(items []models.InventoryItem, stockItemID string, amount float64) []models.InventoryItem {
	for i := range items {
		if items[i].ID == stockItemID {
			items[i].Quantity -= amount
			return items
		}
	}
	// unknown stock item: silently ignored
	return items
}

// AdjustQuantity applies a manual stock correction (restock or write-off)
func (s *InventoryService) AdjustQuantity(stockItemID string, delta float64) ([]models.InventoryItem, error) {
	items := append([]models.InventoryItem{}, s.store.Inventory.Get()...)
	found := false
	for i := range items {
		if items[i].ID == stockItemID {
			items[i].Quantity += delta
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("%w: inventory item %q", ErrReference, stockItemID)
	}
	if err := s.store.Inventory.Commit(items); err != nil {
		return nil, err
	}
	s.log.Info().Str("stock_item", stockItemID).Float64("delta", delta).Msg("inventory adjusted")
	return items, nil
}

// LowStock returns every item at or below its low-stock threshold, including
// over-sold items that have gone negative.
func (s *InventoryService) LowStock() []models.InventoryItem {
	var low []models.InventoryItem
	for _, item := range s.store.Inventory.Get() {
		if item.LowStock() {
			low = append(low, item)
		}
	}
	return low
}
