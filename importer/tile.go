package importer

import (
	"image"

	"github.com/automoto/ldtkworld/shared/leveldata"
	"github.com/yohamta/donburi/features/math"
)

// Tile is one placed tile. Its identity is its position.
type Tile struct {
	// Position is the pixel offset inside the owning area.
	Position math.Vec2
	Texture  Texture
	// SrcX and SrcY locate the tile inside Texture in pixels.
	SrcX, SrcY int
	FlipX      bool
	FlipY      bool
	Size       int
}

// SourceRect is the region of Texture the tile draws from.
func (t Tile) SourceRect() image.Rectangle {
	return image.Rect(t.SrcX, t.SrcY, t.SrcX+t.Size, t.SrcY+t.Size)
}

// DecodeTile converts a tile placement. Bit 0 of F flips horizontally, bit 1
// vertically; other bits are ignored.
func DecodeTile(ti leveldata.TileInstance, tex Texture, tileSize int) Tile {
	return Tile{
		Position: math.Vec2{X: float64(ti.Px[0]), Y: float64(ti.Px[1])},
		Texture:  tex,
		SrcX:     ti.Src[0],
		SrcY:     ti.Src[1],
		FlipX:    ti.F&leveldata.FlipX != 0,
		FlipY:    ti.F&leveldata.FlipY != 0,
		Size:     tileSize,
	}
}

// Flip returns the scale and offset that mirror the tile in place: draw
// with scale (sx, sy), then translate by (dx, dy) plus Position.
func (t Tile) Flip() (sx, sy, dx, dy float64) {
	sx, sy = 1, 1
	if t.FlipX {
		sx, dx = -1, float64(t.Size)
	}
	if t.FlipY {
		sy, dy = -1, float64(t.Size)
	}
	return sx, sy, dx, dy
}
