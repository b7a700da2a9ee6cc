package sim

import "math"

// cellLimit bounds floored coordinates before the int conversion
const cellLimit = 1 << 30

// Grid partitions the plane into square cells of side CellSize. Each cell
// keeps its members in insertion order, which is the order the force pass
// visits them in.
type Grid struct {
	Cols, Rows int
	CellSize   float64
	cells      [][]int // index = j*Cols + i
}

// NewGrid sizes the grid to cover width x height
func NewGrid(width, height, cellSize float64) *Grid {
	cols := int(math.Ceil(width / cellSize))
	rows := int(math.Ceil(height / cellSize))
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return &Grid{
		Cols:     cols,
		Rows:     rows,
		CellSize: cellSize,
		cells:    make([][]int, cols*rows),
	}
}

func floorDiv(v, size float64) int {
	f := math.Floor(v / size)
	switch {
	case math.IsNaN(f):
		return 0
	case f > cellLimit:
		return cellLimit
	case f < -cellLimit:
		return -cellLimit
	}
	return int(f)
}

// CellOf returns the cell covering (x, y), clamped to the grid bounds
func (g *Grid) CellOf(x, y float64) (i, j int) {
	i = clampInt(floorDiv(x, g.CellSize), 0, g.Cols-1)
	j = clampInt(floorDiv(y, g.CellSize), 0, g.Rows-1)
	return i, j
}

// cellIndex is the flat index of the clamped cell p currently belongs to
func (g *Grid) cellIndex(p *Particle) int {
	fx, fy := p.Cell(g.CellSize)
	return g.index(clampInt(fx, 0, g.Cols-1), clampInt(fy, 0, g.Rows-1))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (g *Grid) index(i, j int) int {
	return j*g.Cols + i
}

// At returns the members of cell (i, j). The slice is owned by the grid.
func (g *Grid) At(i, j int) []int {
	if i < 0 || i >= g.Cols || j < 0 || j >= g.Rows {
		return nil
	}
	return g.cells[g.index(i, j)]
}

// Insert files every particle into its cell in arena order, discarding
// previous membership
func (g *Grid) Insert(particles []Particle) {
	for k := range g.cells {
		g.cells[k] = g.cells[k][:0]
	}
	for idx := range particles {
		p := &particles[idx]
		c := g.cellIndex(p)
		g.cells[c] = append(g.cells[c], idx)
		p.cell = c
	}
}

// Rebucket moves particles whose position left their filed cell
func (g *Grid) Rebucket(particles []Particle) (moved int) {
	for idx := range particles {
		p := &particles[idx]
		c := g.cellIndex(p)
		if c == p.cell {
			continue
		}
		g.cells[p.cell] = removeIndex(g.cells[p.cell], idx)
		g.cells[c] = append(g.cells[c], idx)
		p.cell = c
		moved++
	}
	return moved
}

// removeIndex deletes idx from members keeping the order of the rest
func removeIndex(members []int, idx int) []int {
	for k, m := range members {
		if m == idx {
			return append(members[:k], members[k+1:]...)
		}
	}
	return members
}

// ForEachPair calls fn once for every unordered pair of particles that
// share a cell or sit in forward-adjacent cells (right, down, down-right).
// Pairs further apart are never visited.
func (g *Grid) ForEachPair(fn func(a, b int)) {
	for j := 0; j < g.Rows; j++ {
		for i := 0; i < g.Cols; i++ {
			cell := g.cells[g.index(i, j)]
			for k, a := range cell {
				for _, b := range cell[k+1:] {
					fn(a, b)
				}
				if i < g.Cols-1 {
					for _, b := range g.cells[g.index(i+1, j)] {
						fn(a, b)
					}
				}
				if j < g.Rows-1 {
					for _, b := range g.cells[g.index(i, j+1)] {
						fn(a, b)
					}
				}
				if i < g.Cols-1 && j < g.Rows-1 {
					for _, b := range g.cells[g.index(i+1, j+1)] {
						fn(a, b)
					}
				}
			}
		}
	}
}
