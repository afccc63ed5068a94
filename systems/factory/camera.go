package factory

import (
	"github.com/automoto/ldtkworld/archetypes"
	"github.com/automoto/ldtkworld/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func CreateCamera(ecs *ecs.ECS, position math.Vec2, focus int) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{
		Position: position,
		Zoom:     1,
		Focus:    focus,
	})
	return camera
}

func CreatePreview(ecs *ecs.ECS, data components.PreviewData) *donburi.Entry {
	preview := archetypes.Preview.Spawn(ecs)
	components.Preview.SetValue(preview, data)
	return preview
}
