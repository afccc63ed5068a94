package importer

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReconstructGridRowMajor(t *testing.T) {
	cases := []struct {
		name          string
		width, height int
	}{
		{"single", 1, 1},
		{"row", 4, 1},
		{"column", 1, 4},
		{"wide", 5, 3},
		{"tall", 3, 5},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			flat := make([]int, c.width*c.height)
			for i := range flat {
				flat[i] = i + 1
			}
			g, err := ReconstructGrid(flat, c.width, c.height)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if g.Width() != c.width || g.Height() != c.height {
				t.Fatalf("expected %dx%d grid, got %dx%d", c.width, c.height, g.Width(), g.Height())
			}
			for x := 0; x < c.width; x++ {
				for y := 0; y < c.height; y++ {
					if g.At(x, y) != flat[x+y*c.width] {
						t.Fatalf("cell (%d,%d): expected %d, got %d", x, y, flat[x+y*c.width], g.At(x, y))
					}
				}
			}
		})
	}
}

func TestReconstructGridLayout(t *testing.T) {
	g, err := ReconstructGrid([]int{1, 2, 3, 4, 5, 6}, 3, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Grid{{1, 4}, {2, 5}, {3, 6}}
	if diff := cmp.Diff(want, g); diff != "" {
		t.Fatalf("grid mismatch (-want +got):\n%s", diff)
	}
}

func TestReconstructGridEmptyIsAbsent(t *testing.T) {
	g, err := ReconstructGrid(nil, 4, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g != nil {
		t.Fatalf("expected nil grid, got %v", g)
	}
	if g.At(0, 0) != 0 || g.Width() != 0 || g.Height() != 0 {
		t.Fatalf("absent grid should read as empty")
	}
}

func TestReconstructGridIntegrity(t *testing.T) {
	cases := []struct {
		name          string
		flat          []int
		width, height int
	}{
		{"short", []int{1, 2, 3}, 2, 2},
		{"long", []int{1, 2, 3, 4, 5}, 2, 2},
		{"zero_dims", []int{1}, 0, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := ReconstructGrid(c.flat, c.width, c.height)
			var ie *IntegrityError
			if !errors.As(err, &ie) {
				t.Fatalf("expected IntegrityError, got %v", err)
			}
			if ie.Len != len(c.flat) || ie.Width != c.width || ie.Height != c.height {
				t.Fatalf("error carries wrong shape: %+v", ie)
			}
		})
	}
}

func TestGridAtOutOfRange(t *testing.T) {
	g := Grid{{7}}
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {1, 0}, {0, 1}} {
		if v := g.At(p[0], p[1]); v != 0 {
			t.Fatalf("At(%d,%d): expected 0, got %d", p[0], p[1], v)
		}
	}
}
