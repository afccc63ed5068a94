package factory

import (
	"github.com/automoto/ldtkworld/archetypes"
	"github.com/automoto/ldtkworld/components"
	"github.com/automoto/ldtkworld/importer"
	"github.com/automoto/ldtkworld/shared/collision"
	"github.com/automoto/ldtkworld/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateMarker spawns an entity marker and adds a trigger object for it to
// the space, tagged with the entity identifier. Point entities get a
// one-tile box.
func CreateMarker(ecs *ecs.ECS, space *collision.Space, area *importer.Area, entity *importer.Entity, spawn bool) *donburi.Entry {
	var marker *donburi.Entry
	if spawn {
		marker = archetypes.Marker.Spawn(ecs, tags.Spawn)
	} else {
		marker = archetypes.Marker.Spawn(ecs)
	}
	components.Marker.SetValue(marker, components.MarkerData{Entity: entity, Area: area})

	w, h := float64(entity.Width), float64(entity.Height)
	if w <= 0 || h <= 0 {
		w, h = float64(area.TileSize), float64(area.TileSize)
	}
	obj := space.NewObject(collision.Rect{X: entity.Position.X, Y: entity.Position.Y, W: w, H: h},
		collision.TagEntity, entity.Identifier)
	obj.Data = marker
	components.Object.SetValue(marker, components.ObjectData{Object: obj})
	space.Add(obj)

	return marker
}
