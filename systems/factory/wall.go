package factory

import (
	"github.com/automoto/ldtkworld/archetypes"
	"github.com/automoto/ldtkworld/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWall wraps a solid object that is already in the space.
func CreateWall(ecs *ecs.ECS, obj *resolv.Object) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)
	obj.Data = wall // Link for O(1) lookup
	components.Object.SetValue(wall, components.ObjectData{Object: obj})
	return wall
}
