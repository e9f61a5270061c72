package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaultsWithNoFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.TickIntervalMS != 50 {
		t.Errorf("TickIntervalMS = %d, want 50", cfg.Server.TickIntervalMS)
	}
	if cfg.Server.RandomTicks != 3 {
		t.Errorf("RandomTicks = %d, want 3", cfg.Server.RandomTicks)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}
}

func TestLoadOverridesFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "server.yaml")
	data := []byte("server:\n  tick_interval_ms: 100\n  address: \":9999\"\nlogging:\n  level: debug\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.TickIntervalMS != 100 {
		t.Errorf("TickIntervalMS = %d, want 100", cfg.Server.TickIntervalMS)
	}
	if cfg.Server.Address != ":9999" {
		t.Errorf("Address = %q, want :9999", cfg.Server.Address)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Server.RandomTicks != 3 {
		t.Errorf("RandomTicks = %d, want default 3 to survive a partial override", cfg.Server.RandomTicks)
	}
}
