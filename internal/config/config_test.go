package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := Default()
	if cfg.Server.Addr != ":8080" {
		t.Errorf("expected :8080, got %s", cfg.Server.Addr)
	}
	if cfg.Server.MaxUploadBytes != 32<<20 {
		t.Errorf("expected 32MB cap, got %d", cfg.Server.MaxUploadBytes)
	}
	if cfg.Extract.RowTolerance != 5.0 {
		t.Errorf("expected row tolerance 5, got %v", cfg.Extract.RowTolerance)
	}
	if cfg.Observer.Enabled {
		t.Error("observer should be disabled by default")
	}
}

func TestLoadFromTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.toml")
	os.WriteFile(path, []byte(`
[server]
addr = ":9090"

[extract]
row_tolerance = 7.5

[observer]
enabled = true
`), 0644)

	cfg := Load(path)
	if cfg.Server.Addr != ":9090" {
		t.Errorf("expected :9090, got %s", cfg.Server.Addr)
	}
	if cfg.Extract.RowTolerance != 7.5 {
		t.Errorf("expected 7.5, got %v", cfg.Extract.RowTolerance)
	}
	if !cfg.Observer.Enabled {
		t.Error("expected observer enabled")
	}
	// Defaults preserved
	if cfg.Extract.HeaderPadding != 5.0 {
		t.Errorf("default should be preserved, got %v", cfg.Extract.HeaderPadding)
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("QUAYCHECK_ADDR", ":7070")
	t.Setenv("QUAYCHECK_MAX_UPLOAD", "1048576")
	t.Setenv("QUAYCHECK_OBSERVER", "true")

	cfg := Load("/nonexistent/path.toml")
	if cfg.Server.Addr != ":7070" {
		t.Errorf("expected :7070, got %s", cfg.Server.Addr)
	}
	if cfg.Server.MaxUploadBytes != 1048576 {
		t.Errorf("expected 1048576, got %d", cfg.Server.MaxUploadBytes)
	}
	if !cfg.Observer.Enabled {
		t.Error("expected observer enabled via env")
	}
}

func TestEnvOverrideIgnoresGarbage(t *testing.T) {
	t.Setenv("QUAYCHECK_MAX_UPLOAD", "not-a-number")

	cfg := Load("/nonexistent/path.toml")
	if cfg.Server.MaxUploadBytes != 32<<20 {
		t.Errorf("expected default cap, got %d", cfg.Server.MaxUploadBytes)
	}
}
