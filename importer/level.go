package importer

import (
	"fmt"
	"image"

	"github.com/automoto/ldtkworld/shared/leveldata"
	"github.com/yohamta/donburi/features/math"
)

// Scheme selects which level identifier keys the world index.
type Scheme int

const (
	// SchemeIID keys areas by the stable internal level ID.
	SchemeIID Scheme = iota
	// SchemeName keys areas by the human-readable level identifier.
	SchemeName
)

// ParseScheme accepts "iid" and "name".
func ParseScheme(s string) (Scheme, error) {
	switch s {
	case "", "iid":
		return SchemeIID, nil
	case "name":
		return SchemeName, nil
	}
	return 0, fmt.Errorf("unknown identifier scheme %q", s)
}

func (s Scheme) String() string {
	if s == SchemeName {
		return "name"
	}
	return "iid"
}

// Key returns the identifier of lvl under the scheme.
func (s Scheme) Key(lvl *leveldata.Level) string {
	if s == SchemeName {
		return lvl.Identifier
	}
	return lvl.IID
}

// LayerNames tells the assembler which layers hold tiles and entities.
type LayerNames struct {
	Tile   string
	Entity string
}

// TiledArea is the tile content of one level: a positioned grid of tiles
// and its type-grid.
type TiledArea struct {
	Position      math.Vec2
	WidthInTiles  int
	HeightInTiles int
	TileSize      int
	Tiles         []Tile
	TypeGrid      Grid
}

// Bounds is the area's rectangle in world pixels.
func (a *TiledArea) Bounds() image.Rectangle {
	x, y := int(a.Position.X), int(a.Position.Y)
	return image.Rect(x, y, x+a.WidthInTiles*a.TileSize, y+a.HeightInTiles*a.TileSize)
}

// Area is the engine-facing form of one level.
type Area struct {
	TiledArea

	// ID is the key the world indexes this area under.
	ID   string
	IID  string
	Name string

	Entities []*Entity
	Fields   FieldSet

	entitiesByID map[string][]*Entity
}

// EntitiesNamed returns all entities with the given identifier in document
// order.
func (a *Area) EntitiesNamed(identifier string) []*Entity {
	return a.entitiesByID[identifier]
}

// AssembleArea builds one Area from its tile layer, entity layer and level
// fields. Both layer names must exist on the level.
func AssembleArea(lvl *leveldata.Level, names LayerNames, tilesets *Tilesets, tileSize int, scheme Scheme) (*Area, error) {
	label := levelLabel(lvl)

	tileData, ok := lvl.Layer(names.Tile)
	if !ok {
		return nil, &MissingLayerError{Level: label, Layer: names.Tile}
	}
	entityData, ok := lvl.Layer(names.Entity)
	if !ok {
		return nil, &MissingLayerError{Level: label, Layer: names.Entity}
	}

	tiles, err := AssembleLayer(*tileData, tilesets, tileSize)
	if err != nil {
		return nil, annotate(err, label, names.Tile)
	}
	entities := tiles
	if entityData != tileData {
		entities, err = AssembleLayer(*entityData, tilesets, tileSize)
		if err != nil {
			return nil, annotate(err, label, names.Entity)
		}
	}

	area := &Area{
		TiledArea: TiledArea{
			Position:      math.Vec2{X: float64(lvl.WorldX), Y: float64(lvl.WorldY)},
			WidthInTiles:  tiles.WidthInTiles,
			HeightInTiles: tiles.HeightInTiles,
			TileSize:      tileSize,
			Tiles:         tiles.Tiles,
			TypeGrid:      tiles.Grid,
		},
		ID:           scheme.Key(lvl),
		IID:          lvl.IID,
		Name:         lvl.Identifier,
		Entities:     entities.Entities,
		Fields:       NewFieldSet(DecodeFields(lvl.FieldInstances)),
		entitiesByID: make(map[string][]*Entity, len(entities.Entities)),
	}
	for _, e := range area.Entities {
		area.entitiesByID[e.Identifier] = append(area.entitiesByID[e.Identifier], e)
	}

	return area, nil
}

// assembleTiledArea builds the tile-only area of a decoration layer.
func assembleTiledArea(lvl *leveldata.Level, layerName string, tilesets *Tilesets, tileSize int) (*TiledArea, error) {
	label := levelLabel(lvl)
	data, ok := lvl.Layer(layerName)
	if !ok {
		return nil, &MissingLayerError{Level: label, Layer: layerName}
	}
	layer, err := AssembleLayer(*data, tilesets, tileSize)
	if err != nil {
		return nil, annotate(err, label, layerName)
	}
	return &TiledArea{
		Position:      math.Vec2{X: float64(lvl.WorldX), Y: float64(lvl.WorldY)},
		WidthInTiles:  layer.WidthInTiles,
		HeightInTiles: layer.HeightInTiles,
		TileSize:      tileSize,
		Tiles:         layer.Tiles,
		TypeGrid:      layer.Grid,
	}, nil
}

func levelLabel(lvl *leveldata.Level) string {
	switch {
	case lvl.Identifier == "":
		return lvl.IID
	case lvl.IID == "" || lvl.IID == lvl.Identifier:
		return lvl.Identifier
	}
	return fmt.Sprintf("%s (%s)", lvl.Identifier, lvl.IID)
}
