package config

import (
	"os"
	"testing"
)

func TestNewFromEnv(t *testing.T) {
	clearEnv := func(t *testing.T) {
		t.Helper()
		for _, key := range []string{"API_HOST", "API_PORT", "COZINHA_DB_PATH", "COZINHA_DATA_DIR", "COZINHA_API_URL", "ESTOQUE_MINIMO"} {
			os.Unsetenv(key)
		}
	}

	t.Run("Defaults", func(t *testing.T) {
		clearEnv(t)

		cfg, err := NewFromEnv()
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if cfg.APIHost != "0.0.0.0" {
			t.Errorf("Expected APIHost to be '0.0.0.0', got '%s'", cfg.APIHost)
		}
		if cfg.APIPort != 8000 {
			t.Errorf("Expected APIPort to be 8000, got %d", cfg.APIPort)
		}
		if cfg.EstoqueMinimo != 10 {
			t.Errorf("Expected EstoqueMinimo to be 10, got %d", cfg.EstoqueMinimo)
		}
		if cfg.Addr() != "0.0.0.0:8000" {
			t.Errorf("Expected Addr '0.0.0.0:8000', got '%s'", cfg.Addr())
		}
	})

	t.Run("Overrides", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("API_HOST", "127.0.0.1")
		t.Setenv("API_PORT", "9000")
		t.Setenv("COZINHA_DB_PATH", "/tmp/test.db")
		t.Setenv("ESTOQUE_MINIMO", "5")

		cfg, err := NewFromEnv()
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if cfg.Addr() != "127.0.0.1:9000" {
			t.Errorf("Expected Addr '127.0.0.1:9000', got '%s'", cfg.Addr())
		}
		if cfg.DatabasePath != "/tmp/test.db" {
			t.Errorf("Expected DatabasePath '/tmp/test.db', got '%s'", cfg.DatabasePath)
		}
		if cfg.EstoqueMinimo != 5 {
			t.Errorf("Expected EstoqueMinimo to be 5, got %d", cfg.EstoqueMinimo)
		}
	})

	t.Run("InvalidPort", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("API_PORT", "not-a-port")

		if _, err := NewFromEnv(); err == nil {
			t.Fatal("Expected an error for invalid API_PORT, got nil")
		}
	})

	t.Run("InvalidThreshold", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("ESTOQUE_MINIMO", "0")

		if _, err := NewFromEnv(); err == nil {
			t.Fatal("Expected an error for ESTOQUE_MINIMO below 1, got nil")
		}
	})
}
