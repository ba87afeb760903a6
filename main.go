package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"RestoPos/app"
	"RestoPos/app/config"
	"RestoPos/app/database"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config.Load()

	db, err := database.Open(cfg.DataPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DataPath).Msg("failed to open snapshot database")
	}
	defer db.Close()

	engine, err := app.NewEngine(cfg, db, log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load engine state")
	}

	shiftStatus := "CLOSED"
	if shift := engine.Shifts.ActiveShift(); shift != nil {
		shiftStatus = "OPEN"
	}
	log.Info().
		Str("data", cfg.DataPath).
		Float64("tax_rate", cfg.TaxRate).
		Int("menu_items", len(engine.Store.MenuItems.Get())).
		Int("orders", len(engine.Store.Orders.Get())).
		Int("low_stock", len(engine.Inventory.LowStock())).
		Str("shift", shiftStatus).
		Msg("engine ready")
}
