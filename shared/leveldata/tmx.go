package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/lafriks/go-tiled"
)

// ErrNoLevels is returned by LoadAllTMX when the directory holds no maps.
var ErrNoLevels = errors.New("no .tmx files found")

// Tiled layer and property names understood by the TMX adapter.
const (
	// A tile layer with this boolean property set also produces an int-grid.
	PropIntGrid = "intgrid"
	// Per tileset-tile int-grid value; tiles without it count as 1.
	PropIntGridValue = "intgridValue"
	// Optional level placement in world pixels.
	PropWorldX = "worldX"
	PropWorldY = "worldY"
)

// LoadTMX adapts a single Tiled map into a one-level Project. Tile layers
// become tile layers, object groups become entity layers and every object is
// listed in the TOC under its class.
func LoadTMX(fsys fs.FS, tmxPath string) (*Project, error) {
	p := &Project{}
	if err := appendTMX(p, fsys, tmxPath, 0); err != nil {
		return nil, err
	}
	return p, nil
}

// LoadAllTMX discovers all .tmx files in levelsDir within fsys and adapts
// them into one Project. Levels are sorted by file name and, unless a map
// declares worldX/worldY, laid out left to right.
func LoadAllTMX(fsys fs.FS, levelsDir string) (*Project, error) {
	pattern := path.Join(levelsDir, "*.tmx")
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoLevels, levelsDir)
	}
	sort.Strings(matches)

	p := &Project{}
	nextX := 0
	for _, m := range matches {
		if err := appendTMX(p, fsys, m, nextX); err != nil {
			return nil, err
		}
		last := p.Levels[len(p.Levels)-1]
		nextX = last.WorldX + last.PxWid
	}
	return p, nil
}

func appendTMX(p *Project, fsys fs.FS, tmxPath string, defaultX int) error {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	stem := strings.TrimSuffix(path.Base(tmxPath), ".tmx")
	dir := path.Dir(tmxPath)
	mapProps := propertyList(levelMap.Properties)

	level := Level{
		Identifier: stem,
		IID:        stem,
		UID:        len(p.Levels),
		WorldX:     defaultX,
		PxWid:      levelMap.Width * levelMap.TileWidth,
		PxHei:      levelMap.Height * levelMap.TileHeight,
	}
	if v, ok := lookupProperty(mapProps, PropWorldX); ok {
		level.WorldX, _ = strconv.Atoi(v)
	}
	if v, ok := lookupProperty(mapProps, PropWorldY); ok {
		level.WorldY, _ = strconv.Atoi(v)
	}
	for _, prop := range mapProps {
		if prop.Name == PropWorldX || prop.Name == PropWorldY {
			continue
		}
		level.FieldInstances = append(level.FieldInstances, fieldFromProperty(prop, stem))
	}

	for _, ts := range levelMap.Tilesets {
		if ts.Image == nil {
			continue
		}
		p.addTileset(ts, tilesetImagePath(dir, ts))
	}

	for _, layer := range levelMap.Layers {
		level.LayerInstances = append(level.LayerInstances, tileLayer(levelMap, layer, dir))
	}

	for _, og := range levelMap.ObjectGroups {
		li := LayerInstance{
			Identifier: og.Name,
			Type:       "Entities",
			CWid:       levelMap.Width,
			CHei:       levelMap.Height,
			GridSize:   levelMap.TileWidth,
		}
		for _, o := range og.Objects {
			e := entityFromObject(o, stem, level.WorldX, level.WorldY)
			li.EntityInstances = append(li.EntityInstances, e)
			p.addTocInstance(e.Identifier, TocInstanceData{
				IIDs:   ReferenceInfos{EntityIID: e.IID, LevelIID: level.IID},
				WorldX: e.WorldX,
				WorldY: e.WorldY,
				WidPx:  e.Width,
				HeiPx:  e.Height,
			})
		}
		level.LayerInstances = append(level.LayerInstances, li)
	}

	p.Levels = append(p.Levels, level)
	return nil
}

func tileLayer(levelMap *tiled.Map, layer *tiled.Layer, dir string) LayerInstance {
	li := LayerInstance{
		Identifier: layer.Name,
		Type:       "Tiles",
		CWid:       levelMap.Width,
		CHei:       levelMap.Height,
		GridSize:   levelMap.TileWidth,
	}

	cells := levelMap.Width * levelMap.Height
	if len(layer.Tiles) != cells {
		// infinite maps store chunks, which are not supported
		return li
	}

	withGrid := false
	if v, ok := lookupProperty(propertyList(layer.Properties), PropIntGrid); ok {
		withGrid, _ = strconv.ParseBool(v)
	}
	if withGrid {
		li.Type = "IntGrid"
		li.IntGridCSV = make([]int, cells)
	}

	var layerTileset *tiled.Tileset
	skipped, rotated := 0, 0
	for y := 0; y < levelMap.Height; y++ {
		for x := 0; x < levelMap.Width; x++ {
			tile := layer.Tiles[y*levelMap.Width+x]
			if tile.IsNil() {
				continue
			}
			if withGrid {
				li.IntGridCSV[y*levelMap.Width+x] = intGridValue(tile)
			}
			if tile.Tileset == nil || tile.Tileset.Image == nil {
				continue
			}
			if layerTileset == nil {
				layerTileset = tile.Tileset
				li.TilesetRelPath = tilesetImagePath(dir, tile.Tileset)
			}
			// a layer references a single tileset
			if tile.Tileset != layerTileset {
				skipped++
				continue
			}

			src := tile.Tileset.GetTileRect(tile.ID)
			f := 0
			if tile.HorizontalFlip {
				f |= FlipX
			}
			if tile.VerticalFlip {
				f |= FlipY
			}
			// only mirror flips survive; a diagonal flip has no equivalent bit
			if tile.DiagonalFlip {
				rotated++
			}
			li.GridTiles = append(li.GridTiles, TileInstance{
				Px:  [2]int{x * levelMap.TileWidth, y * levelMap.TileHeight},
				Src: [2]int{src.Min.X, src.Min.Y},
				F:   f,
				T:   int(tile.ID),
			})
		}
	}
	if skipped > 0 {
		log.Printf("[leveldata] layer %q mixes tilesets, dropped %d tiles not from %s",
			layer.Name, skipped, li.TilesetRelPath)
	}
	if rotated > 0 {
		log.Printf("[leveldata] layer %q has %d diagonally flipped tiles, imported without rotation",
			layer.Name, rotated)
	}

	return li
}

func intGridValue(tile *tiled.LayerTile) int {
	if tile.Tileset == nil {
		return 1
	}
	tt, err := tile.Tileset.GetTilesetTile(tile.ID)
	if err != nil {
		return 1
	}
	if v, ok := lookupProperty(propertyList(tt.Properties), PropIntGridValue); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return 1
}

func entityFromObject(o *tiled.Object, levelIID string, worldX, worldY int) EntityInstance {
	identifier := o.Class
	if identifier == "" {
		identifier = o.Type //nolint:staticcheck // TMX uses type= attribute
	}
	if identifier == "" {
		identifier = o.Name
	}

	e := EntityInstance{
		Identifier: identifier,
		IID:        objectIID(levelIID, o.ID),
		WorldX:     float64(worldX) + o.X,
		WorldY:     float64(worldY) + o.Y,
		Px:         [2]int{int(o.X), int(o.Y)},
		Width:      int(o.Width),
		Height:     int(o.Height),
	}
	for _, prop := range propertyList(o.Properties) {
		e.FieldInstances = append(e.FieldInstances, fieldFromProperty(prop, levelIID))
	}
	return e
}

func objectIID(levelIID string, id uint32) string {
	return fmt.Sprintf("%s-%d", levelIID, id)
}

// fieldFromProperty maps a Tiled custom property onto the LDtk field
// vocabulary. Values that do not parse are kept as the raw string.
func fieldFromProperty(prop *tiled.Property, levelIID string) FieldInstance {
	f := FieldInstance{Identifier: prop.Name, Value: prop.Value}
	switch prop.Type {
	case "int":
		f.Type = "Int"
		if n, err := strconv.Atoi(prop.Value); err == nil {
			f.Value = n
		}
	case "float":
		f.Type = "Float"
		if n, err := strconv.ParseFloat(prop.Value, 64); err == nil {
			f.Value = n
		}
	case "bool":
		f.Type = "Bool"
		if b, err := strconv.ParseBool(prop.Value); err == nil {
			f.Value = b
		}
	case "color":
		f.Type = "Color"
	case "file":
		f.Type = "FilePath"
	case "object":
		f.Type = "EntityRef"
		if id, err := strconv.ParseUint(prop.Value, 10, 32); err == nil && id != 0 {
			f.Value = map[string]any{
				"entityIid": objectIID(levelIID, uint32(id)),
				"levelIid":  levelIID,
			}
		} else {
			f.Value = nil
		}
	default:
		f.Type = "String"
	}
	return f
}

func tilesetImagePath(dir string, ts *tiled.Tileset) string {
	base := dir
	if ts.Source != "" {
		// external .tsx files resolve their image relative to themselves
		base = path.Join(dir, path.Dir(ts.Source))
	}
	return path.Join(base, ts.Image.Source)
}

func (p *Project) addTileset(ts *tiled.Tileset, relPath string) {
	for _, def := range p.Defs.Tilesets {
		if def.RelPath == relPath {
			return
		}
	}
	p.Defs.Tilesets = append(p.Defs.Tilesets, TilesetDef{
		UID:          len(p.Defs.Tilesets),
		Identifier:   ts.Name,
		RelPath:      relPath,
		TileGridSize: ts.TileWidth,
	})
}

func (p *Project) addTocInstance(identifier string, inst TocInstanceData) {
	for i := range p.TOC {
		if p.TOC[i].Identifier == identifier {
			p.TOC[i].InstancesData = append(p.TOC[i].InstancesData, inst)
			return
		}
	}
	p.TOC = append(p.TOC, TocEntry{Identifier: identifier, InstancesData: []TocInstanceData{inst}})
}

// propertyList accepts go-tiled property sets whether they are held by
// value or by pointer.
func propertyList[P tiled.Properties | *tiled.Properties](props P) tiled.Properties {
	switch v := any(props).(type) {
	case tiled.Properties:
		return v
	case *tiled.Properties:
		if v != nil {
			return *v
		}
	}
	return nil
}

func lookupProperty(props tiled.Properties, name string) (string, bool) {
	for _, prop := range props {
		if prop.Name == name {
			return prop.Value, true
		}
	}
	return "", false
}
