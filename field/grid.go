package field

import "math"

const minGridCell = 8

// grid buckets on-canvas positions into square cells so a nearest query
// only visits rings of cells around the pixel. Positions that drifted off
// the canvas are checked on every query.
type grid struct {
	cell     int
	cols     int
	rows     int
	cells    [][]Position
	outliers []Position
}

func newGrid(pos []Position, width, height int) *grid {
	cell := gridCell(width, height, len(pos))
	g := &grid{
		cell: cell,
		cols: (width + cell - 1) / cell,
		rows: (height + cell - 1) / cell,
	}
	g.cells = make([][]Position, g.cols*g.rows)
	for _, p := range pos {
		if uint64(p.X) >= uint64(width) || uint64(p.Y) >= uint64(height) {
			g.outliers = append(g.outliers, p)
			continue
		}
		i := int(p.Y)/cell*g.cols + int(p.X)/cell
		g.cells[i] = append(g.cells[i], p)
	}
	return g
}

// gridCell picks a cell side that puts about one position in each cell.
func gridCell(width, height, n int) int {
	if n < 1 {
		n = 1
	}
	cell := int(math.Sqrt(float64(width*height) / float64(n)))
	return max(cell, minGridCell)
}

func (g *grid) nearest(x, y int) float64 {
	best := math.Inf(1)
	for _, p := range g.outliers {
		if d := sqDist(x, y, p); d < best {
			best = d
		}
	}

	cx, cy := x/g.cell, y/g.cell
	maxRing := max(cx, g.cols-1-cx, cy, g.rows-1-cy)
	for r := 0; r <= maxRing; r++ {
		// Every position in ring r is more than (r-1)*cell away on one axis.
		if r > 0 {
			lb := float64((r - 1) * g.cell)
			if lb*lb >= best {
				break
			}
		}
		best = g.scanRing(cx, cy, r, x, y, best)
	}
	return math.Sqrt(best)
}

func (g *grid) scanRing(cx, cy, r, x, y int, best float64) float64 {
	if r == 0 {
		return g.scanCell(cx, cy, x, y, best)
	}
	for i := cx - r; i <= cx+r; i++ {
		best = g.scanCell(i, cy-r, x, y, best)
		best = g.scanCell(i, cy+r, x, y, best)
	}
	for j := cy - r + 1; j < cy+r; j++ {
		best = g.scanCell(cx-r, j, x, y, best)
		best = g.scanCell(cx+r, j, x, y, best)
	}
	return best
}

func (g *grid) scanCell(i, j, x, y int, best float64) float64 {
	if i < 0 || j < 0 || i >= g.cols || j >= g.rows {
		return best
	}
	for _, p := range g.cells[j*g.cols+i] {
		if d := sqDist(x, y, p); d < best {
			best = d
		}
	}
	return best
}
