package components

import (
	"github.com/automoto/ldtkworld/shared/collision"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData links an entry to its collision object. The object's Data
// field points back at the entry.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

var Space = donburi.NewComponentType[collision.Space]()
