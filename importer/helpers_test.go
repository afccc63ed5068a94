package importer

import (
	"errors"
	"image"
	"sync"

	"github.com/automoto/ldtkworld/shared/leveldata"
)

// countingLoader returns a fresh image per load and counts calls per path.
type countingLoader struct {
	mu    sync.Mutex
	calls map[string]int
	fail  map[string]bool
}

func newCountingLoader() *countingLoader {
	return &countingLoader{calls: make(map[string]int), fail: make(map[string]bool)}
}

func (l *countingLoader) LoadTexture(path string) (Texture, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls[path]++
	if l.fail[path] {
		return nil, errors.New("file not found")
	}
	return image.NewRGBA(image.Rect(0, 0, 32, 32)), nil
}

func (l *countingLoader) total() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, c := range l.calls {
		n += c
	}
	return n
}

// doorProject is the single-level project used across the importer tests.
func doorProject() *leveldata.Project {
	return &leveldata.Project{
		Defs: leveldata.Definitions{Tilesets: []leveldata.TilesetDef{
			{UID: 1, Identifier: "Tiles", RelPath: "tiles.png"},
		}},
		Levels: []leveldata.Level{level("L1", "Entrance", 0, 0)},
	}
}

func level(iid, name string, x, y int) leveldata.Level {
	return leveldata.Level{
		Identifier: name,
		IID:        iid,
		WorldX:     x,
		WorldY:     y,
		LayerInstances: []leveldata.LayerInstance{
			{
				Identifier: "entities",
				Type:       "Entities",
				CWid:       2,
				CHei:       1,
				EntityInstances: []leveldata.EntityInstance{
					{
						Identifier: "Door",
						IID:        iid + "-door",
						WorldX:     float64(x) + 16,
						WorldY:     float64(y),
						FieldInstances: []leveldata.FieldInstance{
							{Identifier: "locked", Type: "Bool", Value: true},
						},
					},
				},
			},
			{
				Identifier:     "tiles",
				Type:           "IntGrid",
				CWid:           2,
				CHei:           1,
				TilesetRelPath: "tiles.png",
				IntGridCSV:     []int{1, 2},
				GridTiles: []leveldata.TileInstance{
					{Px: [2]int{0, 0}, Src: [2]int{0, 0}, F: 1},
				},
			},
		},
	}
}
