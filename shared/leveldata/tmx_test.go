package leveldata

import (
	"bytes"
	"log"
	"os"
	"strings"
	"testing"
	"testing/fstest"
)

// 2x1 map: a horizontally flipped tile (gid 2) and an empty cell, plus one
// Door object.
const doorTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="2" height="1" tilewidth="16" tileheight="16" infinite="0" nextlayerid="3" nextobjectid="3">
 <properties>
  <property name="music" value="cave"/>
  <property name="worldY" type="int" value="64"/>
 </properties>
 <tileset firstgid="1" name="terrain" tilewidth="16" tileheight="16" tilecount="4" columns="2">
  <image source="tilesets/terrain.png" width="32" height="32"/>
 </tileset>
 <layer id="1" name="tiles" width="2" height="1">
  <properties>
   <property name="intgrid" type="bool" value="true"/>
  </properties>
  <data encoding="csv">
2147483650,0
</data>
 </layer>
 <objectgroup id="2" name="entities">
  <object id="1" name="front" type="Door" x="16" y="0" width="16" height="16">
   <properties>
    <property name="locked" type="bool" value="true"/>
    <property name="target" type="object" value="2"/>
   </properties>
  </object>
 </objectgroup>
</map>
`

func TestLoadTMX(t *testing.T) {
	fsys := fstest.MapFS{"levels/cave.tmx": {Data: []byte(doorTMX)}}

	p, err := Load(fsys, "levels/cave.tmx")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := p.TilesetPaths(); len(got) != 1 || got[0] != "levels/tilesets/terrain.png" {
		t.Fatalf("expected tileset path relative to the map, got %v", got)
	}

	lvl := p.Levels[0]
	if lvl.IID != "cave" || lvl.WorldX != 0 || lvl.WorldY != 64 || lvl.PxWid != 32 {
		t.Fatalf("unexpected level %+v", lvl)
	}
	if len(lvl.FieldInstances) != 1 || lvl.FieldInstances[0].Identifier != "music" {
		t.Fatalf("expected only the music field, got %+v", lvl.FieldInstances)
	}

	tiles, ok := lvl.Layer("tiles")
	if !ok {
		t.Fatalf("expected tiles layer")
	}
	if tiles.TilesetRelPath != "levels/tilesets/terrain.png" {
		t.Fatalf("unexpected layer tileset %q", tiles.TilesetRelPath)
	}
	if len(tiles.GridTiles) != 1 {
		t.Fatalf("expected 1 tile, got %d", len(tiles.GridTiles))
	}
	tile := tiles.GridTiles[0]
	if tile.Px != [2]int{0, 0} || tile.Src != [2]int{16, 0} || tile.F != FlipX {
		t.Fatalf("unexpected tile %+v", tile)
	}
	if len(tiles.IntGridCSV) != 2 || tiles.IntGridCSV[0] != 1 || tiles.IntGridCSV[1] != 0 {
		t.Fatalf("unexpected int-grid %v", tiles.IntGridCSV)
	}

	entities, ok := lvl.Layer("entities")
	if !ok || len(entities.EntityInstances) != 1 {
		t.Fatalf("expected one entity")
	}
	door := entities.EntityInstances[0]
	if door.Identifier != "Door" || door.IID != "cave-1" || door.WorldX != 16 || door.WorldY != 64 {
		t.Fatalf("unexpected door %+v", door)
	}
	fields := map[string]FieldInstance{}
	for _, f := range door.FieldInstances {
		fields[f.Identifier] = f
	}
	if f := fields["locked"]; f.Type != "Bool" || f.Value != true {
		t.Fatalf("unexpected locked field %+v", f)
	}
	ref, ok := fields["target"].Value.(map[string]any)
	if !ok || fields["target"].Type != "EntityRef" || ref["entityIid"] != "cave-2" {
		t.Fatalf("unexpected target field %+v", fields["target"])
	}

	if len(p.TOC) != 1 || p.TOC[0].Identifier != "Door" || p.TOC[0].InstancesData[0].IIDs.LevelIID != "cave" {
		t.Fatalf("unexpected toc %+v", p.TOC)
	}
}

// 1x1 map whose only tile (gid 2) is flipped diagonally and horizontally.
const rotatedTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="1" height="1" tilewidth="16" tileheight="16" infinite="0" nextlayerid="2" nextobjectid="1">
 <tileset firstgid="1" name="terrain" tilewidth="16" tileheight="16" tilecount="4" columns="2">
  <image source="terrain.png" width="32" height="32"/>
 </tileset>
 <layer id="1" name="walls" width="1" height="1">
  <data encoding="csv">
2684354562
</data>
 </layer>
</map>
`

func TestLoadTMXReportsDiagonalFlips(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	fsys := fstest.MapFS{"rotated.tmx": {Data: []byte(rotatedTMX)}}
	p, err := Load(fsys, "rotated.tmx")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	walls, ok := p.Levels[0].Layer("walls")
	if !ok || len(walls.GridTiles) != 1 {
		t.Fatalf("expected the rotated tile to import, got %+v", walls)
	}
	if tile := walls.GridTiles[0]; tile.Src != [2]int{16, 0} || tile.F != FlipX {
		t.Fatalf("expected the mirror flip to survive, got %+v", tile)
	}
	if !strings.Contains(buf.String(), `layer "walls" has 1 diagonally flipped tiles`) {
		t.Fatalf("expected a diagonal flip warning, got %q", buf.String())
	}
}

func TestLoadAllTMXLaysOutLevels(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/b.tmx": {Data: []byte(doorTMX)},
		"levels/a.tmx": {Data: []byte(doorTMX)},
	}

	p, err := Load(fsys, "levels")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.Levels) != 2 {
		t.Fatalf("expected 2 levels, got %d", len(p.Levels))
	}
	if p.Levels[0].IID != "a" || p.Levels[1].IID != "b" {
		t.Fatalf("expected levels sorted by name")
	}
	if p.Levels[1].WorldX != 32 {
		t.Fatalf("expected second level right of the first, got x=%d", p.Levels[1].WorldX)
	}
	if len(p.Defs.Tilesets) != 1 {
		t.Fatalf("expected shared tileset to be declared once, got %d", len(p.Defs.Tilesets))
	}
	if len(p.TOC) != 1 || len(p.TOC[0].InstancesData) != 2 {
		t.Fatalf("expected both doors under one toc entry")
	}
}
