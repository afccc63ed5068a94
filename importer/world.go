package importer

import "github.com/yohamta/donburi/features/math"

// Spawn is the designated start point of a world.
type Spawn struct {
	Area      *Area
	Position  math.Vec2
	EntityIID string
}

// World is the imported set of areas, indexed by the identifier scheme the
// importer was configured with. Areas sharing an identifier are grouped.
type World struct {
	tileSize int
	areas    []*Area
	byID     map[string][]*Area
	spawn    *Spawn
}

func newWorld(tileSize int, areas []*Area) *World {
	w := &World{
		tileSize: tileSize,
		areas:    areas,
		byID:     make(map[string][]*Area, len(areas)),
	}
	for _, a := range areas {
		w.byID[a.ID] = append(w.byID[a.ID], a)
	}
	return w
}

// Areas returns all areas in level order.
func (w *World) Areas() []*Area { return w.areas }

func (w *World) Len() int { return len(w.areas) }

func (w *World) TileSize() int { return w.tileSize }

// Area returns the first area with the given identifier.
func (w *World) Area(id string) (*Area, bool) {
	group := w.byID[id]
	if len(group) == 0 {
		return nil, false
	}
	return group[0], true
}

// AreasByID returns every area with the given identifier in level order.
func (w *World) AreasByID(id string) []*Area {
	return w.byID[id]
}

// Spawn returns the resolved spawn point. ok is false when the project has
// no matching marker, which is a normal state.
func (w *World) Spawn() (Spawn, bool) {
	if w.spawn == nil {
		return Spawn{}, false
	}
	return *w.spawn, true
}
