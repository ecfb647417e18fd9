package devtools

import (
	"fmt"
	"image"
	"time"

	"github.com/fogleman/gg"

	"gridpath/pkg/engine/world"
	"gridpath/pkg/game/renderer"
)

// RenderImage draws the grid as the window shows it: width×width pixels, one
// filled square per cell, separated by grid lines.
func RenderImage(grid *world.Grid, width int) image.Image {
	dc := gg.NewContext(width, width)
	dc.SetColor(renderer.ColorEmpty)
	dc.Clear()

	rows := grid.Rows()
	size := float64(width / rows)
	for row, line := range grid.States() {
		for col, s := range line {
			if s == world.Empty {
				continue
			}
			dc.SetColor(renderer.StateColor(s))
			dc.DrawRectangle(float64(col)*size, float64(row)*size, size, size)
			dc.Fill()
		}
	}

	dc.SetColor(renderer.ColorGridLine)
	dc.SetLineWidth(1)
	extent := size * float64(rows)
	for i := 0; i <= rows; i++ {
		p := float64(i) * size
		dc.DrawLine(0, p, extent, p)
		dc.DrawLine(p, 0, p, extent)
	}
	dc.Stroke()

	return dc.Image()
}

// SavePNG writes RenderImage to path
func SavePNG(path string, grid *world.Grid, width int) error {
	if grid.Rows() > width {
		return fmt.Errorf("devtools: %d rows do not fit in %dpx", grid.Rows(), width)
	}
	dc := gg.NewContextForImage(RenderImage(grid, width))
	return dc.SavePNG(path)
}

// ExportPNG saves the editor's grid to path, or to a timestamped file in the
// working directory when path is empty. It returns the file name written.
func ExportPNG(grid *world.Grid, width int, path string) (string, error) {
	if path == "" {
		path = fmt.Sprintf("grid-%s.png", time.Now().Format("20060102-150405"))
	}
	if err := SavePNG(path, grid, width); err != nil {
		return "", err
	}
	return path, nil
}
