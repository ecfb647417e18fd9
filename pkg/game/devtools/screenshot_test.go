package devtools

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridpath/pkg/engine/world"
	"gridpath/pkg/game/renderer"
)

func TestRenderImage_CellColours(t *testing.T) {
	grid, err := ParseMap(strings.NewReader("S.#\n...\n*.E\n"), 0)
	require.NoError(t, err)

	img := RenderImage(grid, 90)

	assert.Equal(t, 90, img.Bounds().Dx())
	center := func(row, col int) (int, int) { return col*30 + 15, row*30 + 15 }
	for _, tc := range []struct {
		row, col int
		state    world.CellState
	}{
		{0, 0, world.Start},
		{0, 1, world.Empty},
		{0, 2, world.Barrier},
		{2, 0, world.Path},
		{2, 2, world.End},
	} {
		x, y := center(tc.row, tc.col)
		r, g, b, _ := img.At(x, y).RGBA()
		want := renderer.StateColor(tc.state)
		wr, wg, wb, _ := want.RGBA()
		assert.Equal(t, [3]uint32{wr, wg, wb}, [3]uint32{r, g, b}, "cell (%d,%d) %s", tc.row, tc.col, tc.state)
	}
}

func TestSavePNG(t *testing.T) {
	grid := world.MustNewGrid(5, 0)
	path := filepath.Join(t.TempDir(), "grid.png")

	require.NoError(t, SavePNG(path, grid, 50))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 50, img.Bounds().Dx())
	assert.Equal(t, 50, img.Bounds().Dy())
}

func TestSavePNG_TooSmall(t *testing.T) {
	grid := world.MustNewGrid(10, 0)
	assert.Error(t, SavePNG(filepath.Join(t.TempDir(), "x.png"), grid, 5))
}

func TestExportPNG_DefaultName(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	name, err := ExportPNG(world.MustNewGrid(2, 0), 20, "")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(name, "grid-"))
	assert.FileExists(t, name)
}
