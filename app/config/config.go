package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds runtime settings for the engine
type Config struct {
	DataPath string  // snapshot database file
	TaxRate  float64 // applied on every order subtotal
	Language string  // fallback UI language when no preference is stored
}

const (
	defaultDataPath = "./data/restopos.db"
	defaultTaxRate  = 0.15
	defaultLanguage = "en"
)

// Load reads configuration from .env and environment variables, falling back
// to defaults. A missing .env file is not an error.
func Load() Config {
	_ = godotenv.Load(".env")

	cfg := Config{
		DataPath: defaultDataPath,
		TaxRate:  defaultTaxRate,
		Language: defaultLanguage,
	}

	if v := os.Getenv("POS_DATA_PATH"); v != "" {
		cfg.DataPath = v
	}
	if v := os.Getenv("POS_TAX_RATE"); v != "" {
		if rate, err := strconv.ParseFloat(v, 64); err == nil && rate >= 0 {
			cfg.TaxRate = rate
		}
	}
	if v := os.Getenv("POS_LANGUAGE"); v != "" {
		cfg.Language = v
	}

	return cfg
}
