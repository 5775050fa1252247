// Package life implements Conway's Game of Life on a toroidal grid together
// with a small controller that tracks run/pause state for a host event loop.
//
// The package never renders, never reads input and never owns a timer. Hosts
// call the mutating entry points, read Snapshots to draw, and drive
// autonomous advances themselves through Controller.Advance.
package life

import (
	"fmt"

	"lifepad/pkg/core"
)

// Grid is a toroidal field of boolean cells stored in row-major order.
//
// Step is double-buffered: the next generation is computed from the frozen
// current one into a second buffer which is swapped in only after the whole
// pass completes.
type Grid struct {
	rows, cols int
	cur        []bool
	nxt        []bool
	gen        uint64
	rng        *core.RNG

	// Distinct wrapped neighbour indices per row and per column, including
	// the index itself.
	rowNbr [][]int
	colNbr [][]int
}

// NewGrid returns an all-dead grid. The seed drives Randomize.
func NewGrid(rows, cols int, seed int64) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rows, cols)
	}
	g := &Grid{
		rows:   rows,
		cols:   cols,
		cur:    make([]bool, rows*cols),
		nxt:    make([]bool, rows*cols),
		rng:    core.NewRNG(seed),
		rowNbr: wrapNeighbours(rows),
		colNbr: wrapNeighbours(cols),
	}
	return g, nil
}

// NewGridFrom copies cells into a new grid. Every row must have the same,
// positive length.
func NewGridFrom(cells [][]bool, seed int64) (*Grid, error) {
	if len(cells) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidDimensions)
	}
	cols := len(cells[0])
	for r, row := range cells {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidDimensions, r, len(row), cols)
		}
	}
	g, err := NewGrid(len(cells), cols, seed)
	if err != nil {
		return nil, err
	}
	for r, row := range cells {
		copy(g.cur[r*cols:(r+1)*cols], row)
	}
	return g, nil
}

// wrapNeighbours lists, for every index in [0, n), the distinct indices
// reached by offsets -1, 0 and +1 modulo n.
func wrapNeighbours(n int) [][]int {
	out := make([][]int, n)
	for i := range out {
		set := make([]int, 0, 3)
		for d := -1; d <= 1; d++ {
			j := (i + d + n) % n
			dup := false
			for _, k := range set {
				if k == j {
					dup = true
					break
				}
			}
			if !dup {
				set = append(set, j)
			}
		}
		out[i] = set
	}
	return out
}

// Size returns the grid dimensions.
func (g *Grid) Size() core.Size { return core.Size{Rows: g.rows, Cols: g.cols} }

// Generation returns how many times Step has completed.
func (g *Grid) Generation() uint64 { return g.gen }

// Population returns the number of alive cells.
func (g *Grid) Population() int {
	n := 0
	for _, alive := range g.cur {
		if alive {
			n++
		}
	}
	return n
}

func (g *Grid) index(r, c int) (int, error) {
	if !g.Size().Contains(r, c) {
		return 0, fmt.Errorf("%w: (%d,%d) not in %dx%d", ErrOutOfRange, r, c, g.rows, g.cols)
	}
	return r*g.cols + c, nil
}

// Alive reports the state of cell (r, c).
func (g *Grid) Alive(r, c int) (bool, error) {
	idx, err := g.index(r, c)
	if err != nil {
		return false, err
	}
	return g.cur[idx], nil
}

// Set writes the state of cell (r, c).
func (g *Grid) Set(r, c int, alive bool) error {
	idx, err := g.index(r, c)
	if err != nil {
		return err
	}
	g.cur[idx] = alive
	return nil
}

// Toggle flips cell (r, c).
func (g *Grid) Toggle(r, c int) error {
	idx, err := g.index(r, c)
	if err != nil {
		return err
	}
	g.cur[idx] = !g.cur[idx]
	return nil
}

// Randomize sets every cell alive with probability one half.
func (g *Grid) Randomize() {
	g.rng.FillBool(g.cur)
}

// Reseed restarts the random stream used by Randomize.
func (g *Grid) Reseed(seed int64) {
	g.rng = core.NewRNG(seed)
}

// Clear kills every cell.
func (g *Grid) Clear() {
	clear(g.cur)
}

// neighbours counts the alive cells around (r, c). Wrapped positions that
// coincide with the cell itself or with each other on narrow grids are
// counted once and the cell never counts itself.
func (g *Grid) neighbours(r, c int) int {
	n := 0
	for _, nr := range g.rowNbr[r] {
		base := nr * g.cols
		for _, nc := range g.colNbr[c] {
			if nr == r && nc == c {
				continue
			}
			if g.cur[base+nc] {
				n++
			}
		}
	}
	return n
}

// Step advances the grid by one generation using the B3/S23 rule: a live
// cell survives with two or three live neighbours, a dead cell becomes alive
// with exactly three.
func (g *Grid) Step() {
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			idx := r*g.cols + c
			n := g.neighbours(r, c)
			g.nxt[idx] = n == 3 || (g.cur[idx] && n == 2)
		}
	}
	g.cur, g.nxt = g.nxt, g.cur
	g.gen++
}

// Snapshot returns a copy of the current generation.
func (g *Grid) Snapshot() Snapshot {
	return Snapshot{
		size:  g.Size(),
		gen:   g.gen,
		cells: append([]bool(nil), g.cur...),
	}
}
