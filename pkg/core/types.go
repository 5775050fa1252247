package core

// Size describes the dimensions of a grid in rows and columns.
type Size struct {
	Rows int
	Cols int
}

// Cells returns the number of cells covered by the size.
func (s Size) Cells() int { return s.Rows * s.Cols }

// Contains reports whether (r, c) lies inside the size.
func (s Size) Contains(r, c int) bool {
	return r >= 0 && r < s.Rows && c >= 0 && c < s.Cols
}
