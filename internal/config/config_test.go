package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.DataDir == "" {
		t.Error("DataDir should have a default")
	}
	if cfg.Greeting.MaxAttempts != 5 {
		t.Errorf("Greeting.MaxAttempts = %d, want 5", cfg.Greeting.MaxAttempts)
	}
	if cfg.Greeting.RecentWindowDays != 30 {
		t.Errorf("Greeting.RecentWindowDays = %d, want 30", cfg.Greeting.RecentWindowDays)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want info", cfg.Log.Level)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Greeting.MaxAttempts != 5 {
		t.Errorf("Greeting.MaxAttempts = %d, want default 5", cfg.Greeting.MaxAttempts)
	}
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{"data_dir": "/tmp/ww-test", "greeting": {"max_attempts": 3, "recent_window_days": 7}}`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DataDir != "/tmp/ww-test" {
		t.Errorf("DataDir = %q, want /tmp/ww-test", cfg.DataDir)
	}
	if cfg.Greeting.MaxAttempts != 3 {
		t.Errorf("Greeting.MaxAttempts = %d, want 3", cfg.Greeting.MaxAttempts)
	}
	if cfg.Greeting.RecentWindowDays != 7 {
		t.Errorf("Greeting.RecentWindowDays = %d, want 7", cfg.Greeting.RecentWindowDays)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("WELLWISH_DATA_DIR", "/tmp/ww-env")
	t.Setenv("WELLWISH_MAX_ATTEMPTS", "2")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DataDir != "/tmp/ww-env" {
		t.Errorf("DataDir = %q, want env override", cfg.DataDir)
	}
	if cfg.Greeting.MaxAttempts != 2 {
		t.Errorf("Greeting.MaxAttempts = %d, want env override 2", cfg.Greeting.MaxAttempts)
	}
}

func TestLoad_BadEnvAttemptsIgnored(t *testing.T) {
	t.Setenv("WELLWISH_MAX_ATTEMPTS", "zero")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Greeting.MaxAttempts != 5 {
		t.Errorf("Greeting.MaxAttempts = %d, want default after bad env", cfg.Greeting.MaxAttempts)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg := Default()
	cfg.DataDir = "/tmp/ww-roundtrip"
	cfg.Greeting.MaxAttempts = 4
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.DataDir != "/tmp/ww-roundtrip" || loaded.Greeting.MaxAttempts != 4 {
		t.Errorf("round trip lost values: %+v", loaded)
	}
}
