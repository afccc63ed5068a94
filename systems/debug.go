package systems

import (
	"image/color"

	"github.com/automoto/ldtkworld/components"
	"github.com/automoto/ldtkworld/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	solidColor  = color.RGBA{100, 100, 100, 255}
	markerColor = color.RGBA{0, 255, 255, 255}
	spawnColor  = color.RGBA{0, 255, 0, 255}
	areaColor   = color.RGBA{255, 200, 0, 255}
)

// DrawCollision outlines solid objects and area bounds when the grid
// overlay is on.
func DrawCollision(e *ecs.ECS, screen *ebiten.Image) {
	preview, ok := components.Preview.First(e.World)
	if !ok || !components.Preview.Get(preview).ShowGrid {
		return
	}
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	world := cameraTransform(camera, screen)

	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)
	ox, oy := float64(space.Origin.X), float64(space.Origin.Y)

	tags.Wall.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		strokeRect(screen, world, obj.X+ox, obj.Y+oy, obj.W, obj.H, solidColor)
	})

	components.Area.Each(e.World, func(entry *donburi.Entry) {
		b := components.Area.Get(entry).Area.Bounds()
		strokeRect(screen, world, float64(b.Min.X), float64(b.Min.Y), float64(b.Dx()), float64(b.Dy()), areaColor)
	})
}

// DrawMarkers outlines entity markers and labels them with their
// identifier.
func DrawMarkers(e *ecs.ECS, screen *ebiten.Image) {
	preview, ok := components.Preview.First(e.World)
	if !ok || !components.Preview.Get(preview).ShowMarkers {
		return
	}
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	world := cameraTransform(camera, screen)

	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)
	ox, oy := float64(space.Origin.X), float64(space.Origin.Y)

	tags.Marker.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		c := markerColor
		if entry.HasComponent(tags.Spawn) {
			c = spawnColor
		}
		strokeRect(screen, world, obj.X+ox, obj.Y+oy, obj.W, obj.H, c)

		x, y := world.Apply(obj.X+ox, obj.Y+oy)
		ebitenutil.DebugPrintAt(screen, components.Marker.Get(entry).Entity.Identifier, int(x), int(y)-16)
	})
}

func strokeRect(screen *ebiten.Image, world ebiten.GeoM, x, y, w, h float64, c color.Color) {
	x0, y0 := world.Apply(x, y)
	x1, y1 := world.Apply(x+w, y+h)
	vector.StrokeRect(screen, float32(x0), float32(y0), float32(x1-x0), float32(y1-y0), 1, c, false)
}
