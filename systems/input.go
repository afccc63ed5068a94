package systems

import (
	"github.com/automoto/ldtkworld/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// ActionID represents a viewer action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionNextArea
	ActionPrevArea
	ActionFocusSpawn
	ActionToggleGrid
	ActionToggleMarkers
	ActionReload
	ActionZoomIn
	ActionZoomOut
	ActionCount // Must be last
)

// InputBinding represents the keys and buttons bound to one action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// Bindings maps each action to its inputs.
var Bindings = map[ActionID]InputBinding{
	ActionNextArea: {
		Keys:                   []ebiten.Key{ebiten.KeyRight, ebiten.KeyD, ebiten.KeyPageDown},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightTop},
	},
	ActionPrevArea: {
		Keys:                   []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA, ebiten.KeyPageUp},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop},
	},
	ActionFocusSpawn: {
		Keys:                   []ebiten.Key{ebiten.KeyHome, ebiten.KeyS},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight},
	},
	ActionToggleGrid: {
		Keys:                   []ebiten.Key{ebiten.KeyG, ebiten.KeyF1},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightLeft},
	},
	ActionToggleMarkers: {
		Keys:                   []ebiten.Key{ebiten.KeyM},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightRight},
	},
	ActionReload: {
		Keys:                   []ebiten.Key{ebiten.KeyR, ebiten.KeyF5},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterLeft},
	},
	ActionZoomIn: {
		Keys: []ebiten.Key{ebiten.KeyEqual, ebiten.KeyKPAdd},
	},
	ActionZoomOut: {
		Keys: []ebiten.Key{ebiten.KeyMinus, ebiten.KeyKPSubtract},
	},
}

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput applies this frame's key and button presses to the camera
// and the preview state.
func UpdateInput(e *ecs.ECS) {
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	previewEntry, ok := components.Preview.First(e.World)
	if !ok {
		return
	}
	preview := components.Preview.Get(previewEntry)

	if justPressed(ActionReload) {
		preview.Reload = true
	}
	if justPressed(ActionToggleGrid) {
		preview.ShowGrid = !preview.ShowGrid
	}
	if justPressed(ActionToggleMarkers) {
		preview.ShowMarkers = !preview.ShowMarkers
	}

	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	switch {
	case justPressed(ActionNextArea):
		FocusArea(e, camera.Focus+1)
	case justPressed(ActionPrevArea):
		FocusArea(e, camera.Focus-1)
	case justPressed(ActionFocusSpawn):
		FocusSpawn(e)
	}

	if justPressed(ActionZoomIn) {
		camera.Zoom = min(camera.Zoom*2, 8)
	}
	if justPressed(ActionZoomOut) {
		camera.Zoom = max(camera.Zoom/2, 0.25)
	}
}

func justPressed(id ActionID) bool {
	binding := Bindings[id]
	for _, key := range binding.Keys {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		for _, btn := range binding.StandardGamepadButtons {
			if inpututil.IsStandardGamepadButtonJustPressed(gpID, btn) {
				return true
			}
		}
	}
	return false
}
