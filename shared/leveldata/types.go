// Package leveldata holds the project document consumed by the importer.
// It has no dependencies on ebitengine, donburi, or resolv.
//
// The shapes follow the LDtk JSON export so that a project file decodes
// straight into these types; Tiled maps are adapted into the same shapes by
// LoadTMX.
package leveldata

// Tile flip bits as stored in TileInstance.F.
const (
	FlipX = 1 << 0
	FlipY = 1 << 1
)

// Project is a fully parsed project document. It is never mutated by the
// importer.
type Project struct {
	Defs   Definitions `json:"defs"`
	Levels []Level     `json:"levels"`
	// TOC lists tool-authored markers (e.g. spawn points) across all levels.
	TOC            []TocEntry `json:"toc"`
	ExternalLevels bool       `json:"externalLevels"`
}

type Definitions struct {
	Tilesets []TilesetDef `json:"tilesets"`
}

// TilesetDef declares a tileset image. RelPath is empty for tilesets that
// have no image (internal icons, embedded atlases).
type TilesetDef struct {
	UID          int    `json:"uid"`
	Identifier   string `json:"identifier"`
	RelPath      string `json:"relPath"`
	TileGridSize int    `json:"tileGridSize"`
}

// TilesetPaths returns the image paths of all tilesets that have one, in
// declaration order.
func (p *Project) TilesetPaths() []string {
	paths := make([]string, 0, len(p.Defs.Tilesets))
	for _, ts := range p.Defs.Tilesets {
		if ts.RelPath == "" {
			continue
		}
		paths = append(paths, ts.RelPath)
	}
	return paths
}

type Level struct {
	Identifier      string          `json:"identifier"`
	IID             string          `json:"iid"`
	UID             int             `json:"uid"`
	WorldX          int             `json:"worldX"`
	WorldY          int             `json:"worldY"`
	PxWid           int             `json:"pxWid"`
	PxHei           int             `json:"pxHei"`
	FieldInstances  []FieldInstance `json:"fieldInstances"`
	LayerInstances  []LayerInstance `json:"layerInstances"`
	ExternalRelPath string          `json:"externalRelPath"`
}

// Layer returns the first layer with the given identifier.
func (l *Level) Layer(name string) (*LayerInstance, bool) {
	for i := range l.LayerInstances {
		if l.LayerInstances[i].Identifier == name {
			return &l.LayerInstances[i], true
		}
	}
	return nil, false
}

type LayerInstance struct {
	Identifier string `json:"__identifier"`
	Type       string `json:"__type"` // "IntGrid", "Entities", "Tiles", "AutoLayer"
	CWid       int    `json:"__cWid"`
	CHei       int    `json:"__cHei"`
	GridSize   int    `json:"__gridSize"`
	// TilesetRelPath is empty when the layer has no tileset.
	TilesetRelPath  string           `json:"__tilesetRelPath"`
	IntGridCSV      []int            `json:"intGridCsv"`
	AutoLayerTiles  []TileInstance   `json:"autoLayerTiles"`
	GridTiles       []TileInstance   `json:"gridTiles"`
	EntityInstances []EntityInstance `json:"entityInstances"`
}

// TileInstance is one placed tile. Px is the pixel position inside the
// layer, Src the pixel position inside the tileset image, F the flip bits.
type TileInstance struct {
	Px  [2]int `json:"px"`
	Src [2]int `json:"src"`
	F   int    `json:"f"`
	T   int    `json:"t"`
}

type EntityInstance struct {
	Identifier     string          `json:"__identifier"`
	IID            string          `json:"iid"`
	WorldX         float64         `json:"__worldX"`
	WorldY         float64         `json:"__worldY"`
	Px             [2]int          `json:"px"`
	Width          int             `json:"width"`
	Height         int             `json:"height"`
	FieldInstances []FieldInstance `json:"fieldInstances"`
}

// FieldInstance is a custom field as authored. Value is whatever the
// document carried (nil, bool, float64, string, []any, map[string]any).
type FieldInstance struct {
	Identifier string `json:"__identifier"`
	Type       string `json:"__type"`
	Value      any    `json:"__value"`
}

type TocEntry struct {
	Identifier    string            `json:"identifier"`
	InstancesData []TocInstanceData `json:"instancesData"`
}

type TocInstanceData struct {
	IIDs   ReferenceInfos `json:"iids"`
	WorldX float64        `json:"worldX"`
	WorldY float64        `json:"worldY"`
	WidPx  int            `json:"widPx"`
	HeiPx  int            `json:"heiPx"`
}

// ReferenceInfos locates one entity inside the project.
type ReferenceInfos struct {
	EntityIID string `json:"entityIid"`
	LayerIID  string `json:"layerIid"`
	LevelIID  string `json:"levelIid"`
	WorldIID  string `json:"worldIid"`
}
