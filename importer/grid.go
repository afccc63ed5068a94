package importer

// Grid is a per-cell type classification indexed Grid[x][y]. A nil Grid
// means the layer has no int-grid.
type Grid [][]int

// ReconstructGrid lays out a row-major flat array: cell (x, y) is
// flat[x+y*width]. An empty array yields a nil Grid.
func ReconstructGrid(flat []int, width, height int) (Grid, error) {
	if len(flat) == 0 {
		return nil, nil
	}
	if width <= 0 || height <= 0 || len(flat) != width*height {
		return nil, &IntegrityError{Len: len(flat), Width: width, Height: height}
	}

	g := make(Grid, width)
	for x := 0; x < width; x++ {
		g[x] = make([]int, height)
		for y := 0; y < height; y++ {
			g[x][y] = flat[x+y*width]
		}
	}
	return g, nil
}

func (g Grid) Width() int { return len(g) }

func (g Grid) Height() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// At returns the cell value, or 0 outside the grid.
func (g Grid) At(x, y int) int {
	if x < 0 || x >= len(g) || y < 0 || y >= len(g[x]) {
		return 0
	}
	return g[x][y]
}
