// Package config loads runtime settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds everything the sudoku shell reads from the environment.
type Config struct {
	// StorageDriver selects puzzle persistence: none, sqlite, or pocketbase.
	StorageDriver string `env:"SUDOKU_STORAGE" envDefault:"none"`
	SQLitePath    string `env:"SUDOKU_SQLITE_PATH" envDefault:"sudoku.db"`

	PocketBaseURL      string `env:"POCKETBASE_URL"`
	PocketBaseEmail    string `env:"POCKETBASE_EMAIL"`
	PocketBasePassword string `env:"POCKETBASE_PASSWORD"`
}

// Load reads an optional .env file and parses the environment. A missing
// .env file is not an error.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
