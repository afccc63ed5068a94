package systems

import (
	"fmt"

	"github.com/automoto/ldtkworld/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const hudHelp = "<-/-> area  S spawn  G grid  M markers  R reload  +/- zoom"

// DrawHUD prints the focused area, its fields and the last import status.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	previewEntry, ok := components.Preview.First(e.World)
	if !ok {
		return
	}
	preview := components.Preview.Get(previewEntry)

	y := 4
	line := func(s string) {
		ebitenutil.DebugPrintAt(screen, s, 4, y)
		y += 16
	}

	if cameraEntry, ok := components.Camera.First(e.World); ok {
		camera := components.Camera.Get(cameraEntry)
		components.Area.Each(e.World, func(entry *donburi.Entry) {
			a := components.Area.Get(entry)
			if a.Index != camera.Focus {
				return
			}
			line(fmt.Sprintf("%s [%s]  %dx%d tiles  %d entities",
				a.Area.Name, a.Area.ID, a.Area.WidthInTiles, a.Area.HeightInTiles, len(a.Area.Entities)))
			for _, f := range a.Area.Fields.All() {
				line(fmt.Sprintf("  %s = %s", f.Name, f.Value))
			}
		})
	}

	if preview.Status != "" {
		prefix := ""
		if preview.Failed {
			prefix = "import failed: "
		}
		line(prefix + preview.Status)
	}

	ebitenutil.DebugPrintAt(screen, hudHelp, 4, screen.Bounds().Dy()-20)
}
