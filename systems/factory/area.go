package factory

import (
	"github.com/automoto/ldtkworld/archetypes"
	"github.com/automoto/ldtkworld/components"
	"github.com/automoto/ldtkworld/importer"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateArea(ecs *ecs.ECS, area *importer.Area, index int, decorations []*importer.TiledArea) *donburi.Entry {
	entry := archetypes.Area.Spawn(ecs)
	components.Area.SetValue(entry, components.AreaData{
		Area:        area,
		Index:       index,
		Decorations: decorations,
	})
	return entry
}
