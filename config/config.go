package config

import "github.com/automoto/ldtkworld/importer"

// ImportConfig contains everything the importer needs from the caller
type ImportConfig struct {
	Project     string `yaml:"project"`      // .ldtk file, single .tmx map, or a directory of .tmx maps
	TileLayer   string `yaml:"tile_layer"`   // layer holding tiles and the type-grid
	EntityLayer string `yaml:"entity_layer"` // layer holding entity markers
	TileSize    int    `yaml:"tile_size"`    // pixels per tile, applied to every layer
	SpawnTag    string `yaml:"spawn_tag"`    // TOC identifier of the spawn marker; empty disables
	Scheme      string `yaml:"scheme"`       // "iid" or "name"
	Workers     int    `yaml:"workers"`      // parallel tileset loads and level assembly

	// Extra tile-only layers drawn under the tile layer, bottom first
	DecorationLayers []string `yaml:"decoration_layers"`
}

// CollisionConfig contains type-grid to collision mapping
type CollisionConfig struct {
	// Type-grid values treated as solid. Empty means every non-zero cell.
	SolidValues []int `yaml:"solid_values"`
	CellSize    int   `yaml:"cell_size"` // resolv space cell size in pixels
}

// PreviewConfig contains preview window configuration values
type PreviewConfig struct {
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	PanDuration float32 `yaml:"pan_duration"` // seconds to tween the camera between areas
	Watch       bool    `yaml:"watch"`        // re-import when the project changes on disk
	ShowGrid    bool    `yaml:"show_grid"`    // overlay solid type-grid cells
}

type Config struct {
	Import    ImportConfig    `yaml:"import"`
	Collision CollisionConfig `yaml:"collision"`
	Preview   PreviewConfig   `yaml:"preview"`
}

// Global configuration instance
var C *Config

func init() {
	C = Default()
}

// Default returns a fresh configuration with all defaults applied.
func Default() *Config {
	return &Config{
		Import: ImportConfig{
			TileLayer:   importer.DefaultTileLayer,
			EntityLayer: importer.DefaultEntityLayer,
			TileSize:    importer.DefaultTileSize,
			SpawnTag:    "spawn",
			Scheme:      "iid",
			Workers:     1,
		},
		Collision: CollisionConfig{
			CellSize: 16,
		},
		Preview: PreviewConfig{
			Width:       640,
			Height:      360,
			PanDuration: 0.6,
			Watch:       true,
		},
	}
}

// Options translates the import section into importer options.
func (c ImportConfig) Options() ([]importer.Option, error) {
	scheme, err := importer.ParseScheme(c.Scheme)
	if err != nil {
		return nil, err
	}
	return []importer.Option{
		importer.WithTileSize(c.TileSize),
		importer.WithLayers(c.TileLayer, c.EntityLayer),
		importer.WithSpawnTag(c.SpawnTag),
		importer.WithScheme(scheme),
		importer.WithWorkers(c.Workers),
	}, nil
}

// IsSolid reports whether a type-grid value blocks movement.
func (c CollisionConfig) IsSolid(v int) bool {
	if len(c.SolidValues) == 0 {
		return v != 0
	}
	for _, s := range c.SolidValues {
		if s == v {
			return true
		}
	}
	return false
}
