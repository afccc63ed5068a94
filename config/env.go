package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment overrides, applied after the YAML file and before flags
const (
	EnvProject     = "LDTKWORLD_PROJECT"
	EnvScheme      = "LDTKWORLD_SCHEME"
	EnvWorkers     = "LDTKWORLD_WORKERS"
	EnvTileSize    = "LDTKWORLD_TILE_SIZE"
	EnvDecorations = "LDTKWORLD_DECORATION_LAYERS" // comma separated
)

// LoadDotEnv loads files (".env" when none are given) into the process
// environment without overriding variables that are already set. A missing
// file is not an error.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	present := make([]string, 0, len(files))
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			present = append(present, f)
		}
	}
	if len(present) == 0 {
		return nil
	}
	return godotenv.Load(present...)
}

// ApplyEnv overrides cfg with any LDTKWORLD_* variables that are set.
func ApplyEnv(cfg *Config) error {
	if v, ok := os.LookupEnv(EnvProject); ok {
		cfg.Import.Project = v
	}
	if v, ok := os.LookupEnv(EnvScheme); ok {
		cfg.Import.Scheme = v
	}
	if v, ok := os.LookupEnv(EnvWorkers); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvWorkers, err)
		}
		cfg.Import.Workers = n
	}
	if v, ok := os.LookupEnv(EnvTileSize); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvTileSize, err)
		}
		cfg.Import.TileSize = n
	}
	if v, ok := os.LookupEnv(EnvDecorations); ok {
		cfg.Import.DecorationLayers = nil
		for _, name := range strings.Split(v, ",") {
			if name = strings.TrimSpace(name); name != "" {
				cfg.Import.DecorationLayers = append(cfg.Import.DecorationLayers, name)
			}
		}
	}
	return nil
}
