package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/automoto/ldtkworld/importer"
	"gopkg.in/yaml.v3"
)

// Load reads the YAML configuration file at path on top of the defaults.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %q: %w", path, err)
	}
	defer f.Close()

	cfg, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("config: parse %q: %w", path, err)
	}
	return cfg, nil
}

// LoadFromReader decodes a YAML config from r over the defaults and
// validates the result.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: decode yaml: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that cfg contains a coherent set of values.
// It returns a joined error listing all validation failures found.
func Validate(cfg *Config) error {
	var errs []error

	if cfg.Import.TileLayer == "" {
		errs = append(errs, errors.New("import.tile_layer must be set"))
	}
	if cfg.Import.EntityLayer == "" {
		errs = append(errs, errors.New("import.entity_layer must be set"))
	}
	if cfg.Import.TileSize <= 0 {
		errs = append(errs, fmt.Errorf("import.tile_size must be positive, got %d", cfg.Import.TileSize))
	}
	if _, err := importer.ParseScheme(cfg.Import.Scheme); err != nil {
		errs = append(errs, fmt.Errorf("import.scheme: %w", err))
	}
	if cfg.Import.Workers < 0 {
		errs = append(errs, fmt.Errorf("import.workers must not be negative, got %d", cfg.Import.Workers))
	}
	if cfg.Collision.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("collision.cell_size must be positive, got %d", cfg.Collision.CellSize))
	}
	if cfg.Preview.Width <= 0 || cfg.Preview.Height <= 0 {
		errs = append(errs, fmt.Errorf("preview size %dx%d is invalid", cfg.Preview.Width, cfg.Preview.Height))
	}

	return errors.Join(errs...)
}
