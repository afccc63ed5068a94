package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvScheme, "name")
	t.Setenv(EnvWorkers, "3")
	t.Setenv(EnvDecorations, "Background, ,Props")

	cfg := Default()
	if err := ApplyEnv(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Import.Scheme != "name" || cfg.Import.Workers != 3 {
		t.Fatalf("expected env overrides, got %+v", cfg.Import)
	}
	if got := cfg.Import.DecorationLayers; len(got) != 2 || got[0] != "Background" || got[1] != "Props" {
		t.Fatalf("expected [Background Props], got %v", got)
	}
	if cfg.Import.TileSize != 16 {
		t.Fatalf("expected unset variables to leave defaults, got tile size %d", cfg.Import.TileSize)
	}
}

func TestApplyEnvRejectsBadNumbers(t *testing.T) {
	t.Setenv(EnvTileSize, "sixteen")
	if err := ApplyEnv(Default()); err == nil {
		t.Fatalf("expected error for a non-numeric tile size")
	}
}

func TestLoadDotEnv(t *testing.T) {
	if _, ok := os.LookupEnv(EnvProject); ok {
		t.Skipf("%s is set in the test environment", EnvProject)
	}
	dir := t.TempDir()
	file := filepath.Join(dir, "viewer.env")
	if err := os.WriteFile(file, []byte(EnvProject+"=maps/world.ldtk\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv(EnvProject) })

	if err := LoadDotEnv(filepath.Join(dir, "missing.env"), file); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := os.Getenv(EnvProject); got != "maps/world.ldtk" {
		t.Fatalf("expected project from env file, got %q", got)
	}
	if err := LoadDotEnv(filepath.Join(dir, "missing.env")); err != nil {
		t.Fatalf("expected missing files to be ignored, got %v", err)
	}
}
