package world

import "testing"

func TestCellAt(t *testing.T) {
	// 800px wide, 50 rows: 16px cells
	tests := []struct {
		x, y     int
		row, col int
	}{
		{0, 0, 0, 0},
		{15, 15, 0, 0},
		{16, 0, 0, 1},
		{0, 16, 1, 0},
		{799, 799, 49, 49},
		{40, 100, 6, 2},
		{-1, 0, 0, -1},
	}
	for _, tt := range tests {
		row, col := CellAt(tt.x, tt.y, 800, 50)
		if row != tt.row || col != tt.col {
			t.Errorf("CellAt(%d,%d) = (%d,%d), want (%d,%d)", tt.x, tt.y, row, col, tt.row, tt.col)
		}
	}
}

func TestCellAt_AgreesWithOrigin(t *testing.T) {
	g := MustNewGrid(7, 350)
	g.ForEachCell(func(row, col int, cell *Cell) {
		x, y := cell.Origin()
		if got := g.CellAtPixel(x, y); got != cell {
			t.Errorf("CellAtPixel(Origin of %v) = %v", cell.Pos(), got)
		}
		if got := g.CellAtPixel(x+cell.Size-1, y+cell.Size-1); got != cell {
			t.Errorf("CellAtPixel(far corner of %v) = %v", cell.Pos(), got)
		}
	})
}

func TestCellAt_DegenerateSizes(t *testing.T) {
	if row, col := CellAt(10, 10, 800, 0); row != -1 || col != -1 {
		t.Errorf("CellAt with 0 rows = (%d,%d), want (-1,-1)", row, col)
	}
	if row, col := CellAt(10, 10, 3, 50); row != -1 || col != -1 {
		t.Errorf("CellAt with zero-size cells = (%d,%d), want (-1,-1)", row, col)
	}
	g := MustNewGrid(3, 30)
	if c := g.CellAtPixel(31, 0); c != nil {
		t.Errorf("CellAtPixel past right edge = %v, want nil", c)
	}
}
