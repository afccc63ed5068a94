package systems

import (
	"image"

	"github.com/automoto/ldtkworld/components"
	"github.com/automoto/ldtkworld/importer"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// cameraTransform maps world pixels to screen pixels.
func cameraTransform(camera *components.CameraData, screen *ebiten.Image) ebiten.GeoM {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	// Safety check for zero zoom
	zoom := camera.Zoom
	if zoom == 0 {
		zoom = 1.0
	}

	var m ebiten.GeoM
	m.Translate(-camera.Position.X, -camera.Position.Y)
	m.Scale(zoom, zoom)
	m.Translate(float64(width)/2, float64(height)/2)
	return m
}

// viewport is the visible world rectangle.
func viewport(camera *components.CameraData, screen *ebiten.Image) image.Rectangle {
	zoom := camera.Zoom
	if zoom == 0 {
		zoom = 1.0
	}
	halfW := float64(screen.Bounds().Dx()) / 2 / zoom
	halfH := float64(screen.Bounds().Dy()) / 2 / zoom
	return image.Rect(
		int(camera.Position.X-halfW), int(camera.Position.Y-halfH),
		int(camera.Position.X+halfW)+1, int(camera.Position.Y+halfH)+1,
	)
}

// DrawAreas renders the decoration layers and tiles of every visible area.
func DrawAreas(e *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	world := cameraTransform(camera, screen)
	view := viewport(camera, screen)

	components.Area.Each(e.World, func(entry *donburi.Entry) {
		a := components.Area.Get(entry)

		// Viewport Culling
		if !a.Area.Bounds().Overlaps(view) {
			return
		}

		for _, decor := range a.Decorations {
			DrawTiledArea(screen, decor, world)
		}
		DrawTiledArea(screen, &a.Area.TiledArea, world)
	})
}

// DrawTiledArea draws each tile of area in order, later tiles on top.
func DrawTiledArea(screen *ebiten.Image, area *importer.TiledArea, world ebiten.GeoM) {
	for _, t := range area.Tiles {
		img, ok := t.Texture.(*ebiten.Image)
		if !ok {
			continue
		}
		sub := img.SubImage(t.SourceRect()).(*ebiten.Image)

		sx, sy, dx, dy := t.Flip()
		drawOp.GeoM.Reset()
		drawOp.GeoM.Scale(sx, sy)
		drawOp.GeoM.Translate(dx+area.Position.X+t.Position.X, dy+area.Position.Y+t.Position.Y)
		drawOp.GeoM.Concat(world)
		screen.DrawImage(sub, drawOp)
	}
}
