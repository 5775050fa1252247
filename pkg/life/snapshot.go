package life

import "lifepad/pkg/core"

// Snapshot is an immutable copy of one generation. The zero value is an
// empty 0x0 snapshot.
type Snapshot struct {
	size  core.Size
	gen   uint64
	cells []bool
}

// Size returns the dimensions of the captured grid.
func (s Snapshot) Size() core.Size { return s.size }

// Generation returns the generation the snapshot was taken at.
func (s Snapshot) Generation() uint64 { return s.gen }

// Alive reports whether (r, c) was alive. Coordinates outside the grid
// report false.
func (s Snapshot) Alive(r, c int) bool {
	if !s.size.Contains(r, c) {
		return false
	}
	return s.cells[r*s.size.Cols+c]
}

// Cells returns a row-major copy of the cell states.
func (s Snapshot) Cells() []bool {
	return append([]bool(nil), s.cells...)
}

// Matrix returns a fresh rows x cols copy of the cell states.
func (s Snapshot) Matrix() [][]bool {
	out := make([][]bool, s.size.Rows)
	for r := range out {
		out[r] = append([]bool(nil), s.cells[r*s.size.Cols:(r+1)*s.size.Cols]...)
	}
	return out
}

// Population returns the number of alive cells.
func (s Snapshot) Population() int {
	n := 0
	for _, alive := range s.cells {
		if alive {
			n++
		}
	}
	return n
}
