package config

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("INVENTARIO_DB_MAX_OPEN_CONNS", "")
	t.Setenv("INVENTARIO_DB_QUERY_TIMEOUT", "")
	t.Setenv("INVENTARIO_DB_SSLMODE", "")
	t.Setenv("INVENTARIO_LOGGER_MODE", "")

	cfg := LoadConfig()
	if cfg.Web.Port != 3000 {
		t.Fatalf("expected default port 3000, got %d", cfg.Web.Port)
	}
	if cfg.Database.MaxOpenConns != 50 || cfg.Database.MaxIdleConns != 10 {
		t.Fatalf("unexpected pool defaults: %d/%d", cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns)
	}
	if cfg.Database.QueryTimeout != 10*time.Second {
		t.Fatalf("expected 10s query timeout, got %s", cfg.Database.QueryTimeout)
	}
	if cfg.Database.SSLMode != "require" {
		t.Fatalf("expected sslmode require, got %q", cfg.Database.SSLMode)
	}
	if cfg.Logger.Mode != "production" {
		t.Fatalf("expected production logger mode, got %q", cfg.Logger.Mode)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/inventario")
	t.Setenv("INVENTARIO_DB_MAX_OPEN_CONNS", "5")
	t.Setenv("INVENTARIO_DB_CONN_MAX_LIFETIME", "60")
	t.Setenv("INVENTARIO_DB_SSLMODE", "verify-full")
	t.Setenv("INVENTARIO_LOGGER_FILE_ENABLE", "true")

	cfg := LoadConfig()
	if cfg.Web.Port != 8081 {
		t.Fatalf("expected port 8081, got %d", cfg.Web.Port)
	}
	if cfg.Database.URL != "postgres://u:p@db:5432/inventario" {
		t.Fatalf("unexpected url %q", cfg.Database.URL)
	}
	if cfg.Database.MaxOpenConns != 5 {
		t.Fatalf("expected 5 open conns, got %d", cfg.Database.MaxOpenConns)
	}
	if cfg.Database.ConnMaxLifetime != time.Minute {
		t.Fatalf("expected 60s lifetime, got %s", cfg.Database.ConnMaxLifetime)
	}
	if cfg.Database.SSLMode != "verify-full" {
		t.Fatalf("expected verify-full, got %q", cfg.Database.SSLMode)
	}
	if !cfg.Logger.FileEnable {
		t.Fatal("expected file logging enabled")
	}
}
