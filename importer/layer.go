package importer

import (
	"errors"

	"github.com/automoto/ldtkworld/shared/leveldata"
)

// Layer is one named layer of a level with its decoded content.
type Layer struct {
	Name          string
	Type          string
	WidthInTiles  int
	HeightInTiles int
	TilesetPath   string
	Texture       Texture
	Tiles         []Tile
	Grid          Grid
	Entities      []*Entity
}

// AssembleLayer decodes a layer's tiles, int-grid and entities. Tiles are
// only produced when the layer has a tileset, which must be declared by the
// project and already loaded. Auto-layer tiles come before hand-placed grid tiles.
func AssembleLayer(li leveldata.LayerInstance, tilesets *Tilesets, tileSize int) (*Layer, error) {
	layer := &Layer{
		Name:          li.Identifier,
		Type:          li.Type,
		WidthInTiles:  li.CWid,
		HeightInTiles: li.CHei,
		TilesetPath:   li.TilesetRelPath,
	}

	if li.TilesetRelPath != "" {
		tex, ok := tilesets.Lookup(li.TilesetRelPath)
		if !ok {
			return nil, &MissingResourceError{Layer: li.Identifier, Path: li.TilesetRelPath}
		}
		layer.Texture = tex
		layer.Tiles = make([]Tile, 0, len(li.AutoLayerTiles)+len(li.GridTiles))
		for _, ti := range li.AutoLayerTiles {
			layer.Tiles = append(layer.Tiles, DecodeTile(ti, tex, tileSize))
		}
		for _, ti := range li.GridTiles {
			layer.Tiles = append(layer.Tiles, DecodeTile(ti, tex, tileSize))
		}
	}

	grid, err := ReconstructGrid(li.IntGridCSV, li.CWid, li.CHei)
	if err != nil {
		return nil, annotate(err, "", li.Identifier)
	}
	layer.Grid = grid

	layer.Entities = decodeEntities(li.EntityInstances)

	return layer, nil
}

// annotate fills in the level and layer of taxonomy errors raised below the
// level that knows them.
func annotate(err error, level, layer string) error {
	var integrity *IntegrityError
	var missing *MissingResourceError
	switch {
	case errors.As(err, &integrity):
		if integrity.Level == "" {
			integrity.Level = level
		}
		if integrity.Layer == "" {
			integrity.Layer = layer
		}
	case errors.As(err, &missing):
		if missing.Level == "" {
			missing.Level = level
		}
		if missing.Layer == "" {
			missing.Layer = layer
		}
	}
	return err
}
