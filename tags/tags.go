package tags

import "github.com/yohamta/donburi"

var (
	Area   = donburi.NewTag().SetName("Area")
	Marker = donburi.NewTag().SetName("Marker")
	Spawn  = donburi.NewTag().SetName("Spawn")
	Wall   = donburi.NewTag().SetName("Wall")
)
