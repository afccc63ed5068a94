package archetypes

import (
	"github.com/automoto/ldtkworld/components"
	"github.com/automoto/ldtkworld/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Render layers, drawn in order
const (
	LayerWorld ecs.LayerID = iota
	LayerHUD
)

var (
	Area = newArchetype(
		tags.Area,
		components.Area,
	)
	Marker = newArchetype(
		tags.Marker,
		components.Marker,
		components.Object,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Preview = newArchetype(
		components.Preview,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		LayerWorld,
		append(a.components, cs...)...,
	))
	return e
}
