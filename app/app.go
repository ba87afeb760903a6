package app

import (
	"github.com/rs/zerolog"

	"RestoPos/app/config"
	"RestoPos/app/database"
	"RestoPos/app/services"
	"RestoPos/app/store"
)

// Engine bundles the store and every service behind one entry point. The UI
// layer issues commands through the services and re-renders from the store's
// snapshots; it has no other way to mutate state.
type Engine struct {
	Store *store.Store

	Auth      *services.AuthService
	Cart      *services.CartService
	Orders    *services.OrderService
	Inventory *services.InventoryService
	Payments  *services.PaymentService
	Shifts    *services.ShiftService
	Receipts  *services.ReceiptService
	Admin     *services.AdminService
}

// NewEngine loads all snapshots and wires the service graph
func NewEngine(cfg config.Config, db *database.SnapshotDB, logger zerolog.Logger) (*Engine, error) {
	st, err := store.Open(db)
	if err != nil {
		return nil, err
	}

	inventory := services.NewInventoryService(st, logger)
	cart := services.NewCartService(st, logger)

	return &Engine{
		Store:     st,
		Auth:      services.NewAuthService(st, logger),
		Cart:      cart,
		Orders:    services.NewOrderService(st, cart, inventory, cfg.TaxRate, logger),
		Inventory: inventory,
		Payments:  services.NewPaymentService(st, logger),
		Shifts:    services.NewShiftService(st, logger),
		Receipts:  services.NewReceiptService(st),
		Admin:     services.NewAdminService(st, logger),
	}, nil
}
