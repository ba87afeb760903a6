package services

import (
	"math"
	"testing"

	"github.com/rs/zerolog"

	"RestoPos/app/database"
	"RestoPos/app/models"
	"RestoPos/app/store"
)

const testTaxRate = 0.15

// testEnv wires the real service graph over an in-memory snapshot store
type testEnv struct {
	store     *store.Store
	cart      *CartService
	inventory *InventoryService
	orders    *OrderService
	payments  *PaymentService
	shifts    *ShiftService
	auth      *AuthService
	admin     *AdminService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open snapshot db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	st, err := store.Open(db)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}

	logger := zerolog.Nop()
	inventory := NewInventoryService(st, logger)
	cart := NewCartService(st, logger)

	return &testEnv{
		store:     st,
		cart:      cart,
		inventory: inventory,
		orders:    NewOrderService(st, cart, inventory, testTaxRate, logger),
		payments:  NewPaymentService(st, logger),
		shifts:    NewShiftService(st, logger),
		auth:      NewAuthService(st, logger),
		admin:     NewAdminService(st, logger),
	}
}

func (e *testEnv) menuItem(t *testing.T, id string) models.MenuItem {
	t.Helper()
	for _, item := range e.store.MenuItems.Get() {
		if item.ID == id {
			return item
		}
	}
	t.Fatalf("menu item %q not in seed data", id)
	return models.MenuItem{}
}

func (e *testEnv) stockQuantity(t *testing.T, id string) float64 {
	t.Helper()
	for _, item := range e.store.Inventory.Get() {
		if item.ID == id {
			return item.Quantity
		}
	}
	t.Fatalf("inventory item %q not in seed data", id)
	return 0
}

// cheddarSelection is the "Classic Burger" + Cheddar (+1.00) combination
// used across tests.
func cheddarSelection() map[string]models.Selection {
	return map[string]models.Selection{
		"cust1": {Multi: []models.CustomizationOption{
			{ID: "opt1", Name: "Cheddar", PriceModifier: 1.00},
		}},
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
