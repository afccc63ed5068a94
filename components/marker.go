package components

import (
	"github.com/automoto/ldtkworld/importer"
	"github.com/yohamta/donburi"
)

// MarkerData is a placed entity marker and the area it was placed in.
type MarkerData struct {
	Entity *importer.Entity
	Area   *importer.Area
}

var Marker = donburi.NewComponentType[MarkerData]()
