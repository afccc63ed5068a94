// Package collision turns imported type-grids into resolv collision spaces.
// It is shared by the preview and the ldtkinfo tool and does not import
// ebitengine.
package collision

import (
	"image"
	"log"

	"github.com/automoto/ldtkworld/importer"
	"github.com/solarlune/resolv"
)

// Resolv tags
const (
	TagSolid  = "solid"
	TagEntity = "entity"
)

// Rect is a solid region in world pixels.
type Rect struct {
	X, Y, W, H float64
}

// SolidRects merges each row of solid type-grid cells into horizontal runs.
// Rows are scanned top to bottom, runs left to right.
func SolidRects(a *importer.TiledArea, solid func(int) bool) []Rect {
	g := a.TypeGrid
	if g == nil {
		return nil
	}
	size := float64(a.TileSize)
	var rects []Rect
	for y := 0; y < g.Height(); y++ {
		start := -1
		for x := 0; x <= g.Width(); x++ {
			isSolid := x < g.Width() && solid(g.At(x, y))
			if isSolid && start < 0 {
				start = x
				continue
			}
			if !isSolid && start >= 0 {
				rects = append(rects, Rect{
					X: a.Position.X + float64(start)*size,
					Y: a.Position.Y + float64(y)*size,
					W: float64(x-start) * size,
					H: size,
				})
				start = -1
			}
		}
	}
	return rects
}

// WorldBounds is the union of all area bounds.
func WorldBounds(w *importer.World) image.Rectangle {
	var r image.Rectangle
	for i, a := range w.Areas() {
		if i == 0 {
			r = a.Bounds()
			continue
		}
		r = r.Union(a.Bounds())
	}
	return r
}

// Space is a resolv space covering a whole world. World pixel Origin maps
// to space (0, 0), since resolv cells start at zero.
type Space struct {
	*resolv.Space
	Origin image.Point
}

// NewSpace builds a space for w and fills it with the solid runs of every
// area.
func NewSpace(w *importer.World, cellSize int, solid func(int) bool) *Space {
	bounds := WorldBounds(w)
	s := &Space{
		Space:  resolv.NewSpace(bounds.Dx(), bounds.Dy(), cellSize, cellSize),
		Origin: bounds.Min,
	}

	total := 0
	for _, a := range w.Areas() {
		for _, r := range SolidRects(&a.TiledArea, solid) {
			s.Add(s.NewObject(r, TagSolid))
			total++
		}
	}

	log.Printf("[collision] built space: %d solid rects, %d areas, %dx%d px",
		total, w.Len(), bounds.Dx(), bounds.Dy())
	return s
}

// NewObject creates an object for a world rectangle, translated into space
// coordinates. It is not added to the space.
func (s *Space) NewObject(r Rect, tags ...string) *resolv.Object {
	obj := resolv.NewObject(r.X-float64(s.Origin.X), r.Y-float64(s.Origin.Y), r.W, r.H, tags...)
	obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
	return obj
}

// SolidAt reports whether the world pixel (x, y) lies inside a solid object.
func (s *Space) SolidAt(x, y float64) bool {
	probe := s.NewObject(Rect{X: x, Y: y, W: 1, H: 1})
	s.Add(probe)
	defer s.Remove(probe)

	check := probe.Check(0, 0, TagSolid)
	if check == nil {
		return false
	}
	for _, obj := range check.ObjectsByTags(TagSolid) {
		if probe.X >= obj.X && probe.X < obj.X+obj.W && probe.Y >= obj.Y && probe.Y < obj.Y+obj.H {
			return true
		}
	}
	return false
}
