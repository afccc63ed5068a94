package components

import (
	"github.com/automoto/ldtkworld/importer"
	"github.com/yohamta/donburi"
)

type AreaData struct {
	Area  *importer.Area
	Index int // position in level order

	// Tile-only layers drawn under the area's own tiles, bottom first
	Decorations []*importer.TiledArea
}

var Area = donburi.NewComponentType[AreaData]()
