package factory

import (
	"github.com/automoto/ldtkworld/archetypes"
	"github.com/automoto/ldtkworld/components"
	"github.com/automoto/ldtkworld/importer"
	"github.com/automoto/ldtkworld/shared/collision"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace builds the collision space of w and a wall entry for every
// solid object in it.
func CreateSpace(ecs *ecs.ECS, w *importer.World, cellSize int, solid func(int) bool) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := collision.NewSpace(w, cellSize, solid)
	components.Space.Set(space, spaceData)

	for _, obj := range spaceData.Objects() {
		CreateWall(ecs, obj)
	}
	return space
}
