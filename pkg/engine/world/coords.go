package world

// CellAt maps a pixel position to a (row, col) pair for a grid of rows×rows cells
// drawn across width pixels. Cell size is width/rows (floored); x selects the column
// and y the row, the same convention as Cell.Origin. The result is not clamped, so
// callers must check it with Grid.IsValidPosition.
func CellAt(x, y, width, rows int) (row, col int) {
	if rows <= 0 {
		return -1, -1
	}
	gap := width / rows
	if gap <= 0 {
		return -1, -1
	}
	return floorDiv(y, gap), floorDiv(x, gap)
}

// floorDiv divides rounding toward negative infinity so pixels left of or above
// the grid map to negative (out of bounds) indices instead of 0.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// CellAtPixel returns the grid cell under a pixel, or nil if the pixel is outside it
func (g *Grid) CellAtPixel(x, y int) *Cell {
	row, col := CellAt(x, y, g.width, g.rows)
	return g.GetCell(row, col)
}
