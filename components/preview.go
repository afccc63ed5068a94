package components

import "github.com/yohamta/donburi"

// PreviewData is the singleton viewer state.
type PreviewData struct {
	ShowGrid    bool
	ShowMarkers bool
	Reload      bool   // set by input, consumed by the scene
	Status      string // last import result shown in the HUD
	Failed      bool
}

var Preview = donburi.NewComponentType[PreviewData]()
