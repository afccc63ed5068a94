package factory

import (
	"log"

	"github.com/automoto/ldtkworld/components"
	"github.com/automoto/ldtkworld/config"
	"github.com/automoto/ldtkworld/importer"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// SpawnWorld populates ecs with an imported world: the collision space and
// its walls, one entry per area and one marker per entity. The camera
// starts on area focus, or on the spawn area when focus is out of range.
// decorations[i] lists the tile-only layers of area i, bottom first.
func SpawnWorld(ecs *ecs.ECS, w *importer.World, decorations [][]*importer.TiledArea, coll config.CollisionConfig, focus int) {
	spaceEntry := CreateSpace(ecs, w, coll.CellSize, coll.IsSolid)
	space := components.Space.Get(spaceEntry)

	spawn, hasSpawn := w.Spawn()
	markers := 0
	for i, area := range w.Areas() {
		var decor []*importer.TiledArea
		if i < len(decorations) {
			decor = decorations[i]
		}
		CreateArea(ecs, area, i, decor)

		for _, e := range area.Entities {
			CreateMarker(ecs, space, area, e, hasSpawn && e.IID == spawn.EntityIID)
			markers++
		}
	}

	if focus < 0 || focus >= w.Len() {
		focus = 0
		if hasSpawn {
			for i, a := range w.Areas() {
				if a == spawn.Area {
					focus = i
				}
			}
		}
	}

	var position math.Vec2
	if w.Len() > 0 {
		position = AreaCenter(w.Areas()[focus])
	}
	CreateCamera(ecs, position, focus)

	log.Printf("[factory] spawned world: %d areas, %d markers, camera on area %d", w.Len(), markers, focus)
}

// AreaCenter is the middle of an area in world pixels.
func AreaCenter(a *importer.Area) math.Vec2 {
	b := a.Bounds()
	return math.Vec2{
		X: float64(b.Min.X+b.Max.X) / 2,
		Y: float64(b.Min.Y+b.Max.Y) / 2,
	}
}
