package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the configuration for the application.
type Config struct {
	APIHost string
	APIPort int

	// DatabasePath is the SQLite file backing the kitchen resources.
	DatabasePath string

	// DataDir holds client-side state, currently only the fixed
	// shopping lists blob.
	DataDir string

	// EstoqueMinimo is the low-stock threshold used to build the
	// variable shopping list.
	EstoqueMinimo int

	// APIBaseURL is where the CLI finds the running server.
	APIBaseURL string
}

// NewFromEnv creates a new Config object from environment variables,
// loading a .env file first when one is present.
func NewFromEnv() (*Config, error) {
	// Missing .env is fine, the environment may be set directly.
	_ = godotenv.Load()

	cfg := &Config{
		APIHost:       getenv("API_HOST", "0.0.0.0"),
		DatabasePath:  getenv("COZINHA_DB_PATH", "data/cozinha.db"),
		DataDir:       getenv("COZINHA_DATA_DIR", "data"),
		APIBaseURL:    getenv("COZINHA_API_URL", "http://localhost:8000/api"),
		APIPort:       8000,
		EstoqueMinimo: 10,
	}

	if v := os.Getenv("API_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid API_PORT %q: %w", v, err)
		}
		cfg.APIPort = port
	}

	if v := os.Getenv("ESTOQUE_MINIMO"); v != "" {
		threshold, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid ESTOQUE_MINIMO %q: %w", v, err)
		}
		if threshold < 1 {
			return nil, fmt.Errorf("ESTOQUE_MINIMO must be at least 1, got %d", threshold)
		}
		cfg.EstoqueMinimo = threshold
	}

	return cfg, nil
}

// Addr returns the host:port the server should listen on.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.APIHost, c.APIPort)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
