package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position math.Vec2
	Zoom     float64
	Focus    int // index of the area the camera is on

	// Active pan between areas, nil when the camera is still
	PanX, PanY *gween.Tween
}

var Camera = donburi.NewComponentType[CameraData]()
