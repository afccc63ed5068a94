package importer

import (
	"image"
	"testing"

	"github.com/automoto/ldtkworld/shared/leveldata"
)

func TestDecodeTileFlipBits(t *testing.T) {
	cases := []struct {
		name         string
		bits         int
		flipX, flipY bool
	}{
		{"none", 0b00, false, false},
		{"horizontal", 0b01, true, false},
		{"vertical", 0b10, false, true},
		{"both", 0b11, true, true},
		{"high_bits_ignored", 0b1100, false, false},
		{"high_bits_with_both", 0b1111, true, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tile := DecodeTile(leveldata.TileInstance{F: c.bits}, nil, 16)
			if tile.FlipX != c.flipX || tile.FlipY != c.flipY {
				t.Fatalf("expected flip (%v,%v), got (%v,%v)", c.flipX, c.flipY, tile.FlipX, tile.FlipY)
			}
		})
	}
}

func TestDecodeTileCopiesCoordinates(t *testing.T) {
	tex := image.NewRGBA(image.Rect(0, 0, 64, 64))
	tile := DecodeTile(leveldata.TileInstance{Px: [2]int{32, 48}, Src: [2]int{16, 8}}, tex, 8)

	if tile.Position.X != 32 || tile.Position.Y != 48 {
		t.Fatalf("expected position (32,48), got %v", tile.Position)
	}
	if tile.Texture != tex {
		t.Fatalf("expected texture to be carried through")
	}
	if got, want := tile.SourceRect(), image.Rect(16, 8, 24, 16); got != want {
		t.Fatalf("expected source %v, got %v", want, got)
	}
}

func TestTileFlip(t *testing.T) {
	cases := []struct {
		name           string
		bits           int
		sx, sy, dx, dy float64
	}{
		{"none", 0b00, 1, 1, 0, 0},
		{"horizontal", 0b01, -1, 1, 16, 0},
		{"vertical", 0b10, 1, -1, 0, 16},
		{"both", 0b11, -1, -1, 16, 16},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			sx, sy, dx, dy := DecodeTile(leveldata.TileInstance{F: c.bits}, nil, 16).Flip()
			if sx != c.sx || sy != c.sy || dx != c.dx || dy != c.dy {
				t.Fatalf("expected (%v,%v,%v,%v), got (%v,%v,%v,%v)", c.sx, c.sy, c.dx, c.dy, sx, sy, dx, dy)
			}
		})
	}
}
