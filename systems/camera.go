package systems

import (
	"github.com/automoto/ldtkworld/components"
	"github.com/automoto/ldtkworld/config"
	"github.com/automoto/ldtkworld/systems/factory"
	"github.com/automoto/ldtkworld/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera advances an active pan between areas.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	if camera.PanX == nil || camera.PanY == nil {
		return
	}

	dt := float32(1.0 / float64(ebiten.TPS()))
	x, doneX := camera.PanX.Update(dt)
	y, doneY := camera.PanY.Update(dt)
	camera.Position.X = float64(x)
	camera.Position.Y = float64(y)

	if doneX && doneY {
		camera.PanX, camera.PanY = nil, nil
	}
}

// FocusArea pans the camera to the area at index. Indices wrap around.
func FocusArea(e *ecs.ECS, index int) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	var target *components.AreaData
	count := 0
	components.Area.Each(e.World, func(entry *donburi.Entry) {
		count++
	})
	if count == 0 {
		return
	}
	index = ((index % count) + count) % count
	components.Area.Each(e.World, func(entry *donburi.Entry) {
		if a := components.Area.Get(entry); a.Index == index {
			target = a
		}
	})
	if target == nil {
		return
	}

	camera.Focus = index
	to := factory.AreaCenter(target.Area)
	d := config.C.Preview.PanDuration
	if d <= 0 {
		camera.Position = to
		camera.PanX, camera.PanY = nil, nil
		return
	}
	camera.PanX = gween.New(float32(camera.Position.X), float32(to.X), d, ease.InOutQuad)
	camera.PanY = gween.New(float32(camera.Position.Y), float32(to.Y), d, ease.InOutQuad)
}

// FocusSpawn pans to the area holding the spawn marker, if any.
func FocusSpawn(e *ecs.ECS) {
	spawnEntry, ok := tags.Spawn.First(e.World)
	if !ok {
		return
	}
	spawnArea := components.Marker.Get(spawnEntry).Area
	components.Area.Each(e.World, func(entry *donburi.Entry) {
		if a := components.Area.Get(entry); a.Area == spawnArea {
			FocusArea(e, a.Index)
		}
	})
}
