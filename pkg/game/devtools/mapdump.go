// Package devtools reads and writes grids as text maps and images.
//
// Text maps use one character per cell:
//
//	. empty   # barrier   S start   E end
//	o open    x closed    * path
//
// Lines starting with ';' are comments and blank lines are ignored, so a dump
// written by DumpEditorToFile can be loaded again with ParseMap.
package devtools

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gridpath/pkg/engine/world"
	"gridpath/pkg/game/state"
)

const mapDumpFilename = "map.txt"

var (
	ErrEmptyMap     = errors.New("devtools: map has no rows")
	ErrNotSquare    = errors.New("devtools: map is not square")
	ErrUnknownGlyph = errors.New("devtools: unknown map character")
	ErrDuplicate    = errors.New("devtools: more than one start or end")
)

var symbols = map[world.CellState]rune{
	world.Empty:   '.',
	world.Barrier: '#',
	world.Start:   'S',
	world.End:     'E',
	world.Open:    'o',
	world.Closed:  'x',
	world.Path:    '*',
}

// Symbol returns the map character for a cell state
func Symbol(s world.CellState) rune {
	if r, ok := symbols[s]; ok {
		return r
	}
	return '?'
}

func stateOf(r rune) (world.CellState, bool) {
	for s, sym := range symbols {
		if sym == r {
			return s, true
		}
	}
	return world.Empty, false
}

// ParseMap reads a square text map into a grid drawn across width pixels.
func ParseMap(r io.Reader, width int) (*world.Grid, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r")
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("devtools: reading map: %w", err)
	}
	if len(lines) == 0 {
		return nil, ErrEmptyMap
	}

	grid, err := world.NewGrid(len(lines), width)
	if err != nil {
		return nil, err
	}

	seen := make(map[world.CellState]bool)
	for row, line := range lines {
		glyphs := []rune(line)
		if len(glyphs) != len(lines) {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNotSquare, row, len(glyphs), len(lines))
		}
		for col, g := range glyphs {
			s, ok := stateOf(g)
			if !ok {
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrUnknownGlyph, g, row, col)
			}
			if s == world.Start || s == world.End {
				if seen[s] {
					return nil, fmt.Errorf("%w: second %s at (%d,%d)", ErrDuplicate, s, row, col)
				}
				seen[s] = true
			}
			grid.GetCell(row, col).SetState(s)
		}
	}
	return grid, nil
}

// LoadMapFile is ParseMap for a file on disk
func LoadMapFile(path string, width int) (*world.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	grid, err := ParseMap(f, width)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return grid, nil
}

// DumpMap writes the grid as a text map, one line per row
func DumpMap(w io.Writer, grid *world.Grid) error {
	bw := bufio.NewWriter(w)
	for _, line := range grid.States() {
		for _, s := range line {
			bw.WriteRune(Symbol(s))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// DumpEditorToFile writes a commented dump of the editor to path (map.txt when
// empty): metadata and legend as comments, then the map itself.
// It returns the absolute path written.
func DumpEditorToFile(e *state.Editor, path string) (string, error) {
	if e == nil || e.Grid == nil {
		return "", fmt.Errorf("devtools: no grid")
	}
	if path == "" {
		path = mapDumpFilename
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	// --- Metadata ---
	fmt.Fprintln(f, "; === GRID DUMP ===")
	fmt.Fprintf(f, "; grid_rows: %d\n", e.Grid.Rows())
	fmt.Fprintf(f, "; display_width: %d\n", e.Grid.Width())
	fmt.Fprintln(f, "; coordinate_system: row,col (0-based, row=vertical, col=horizontal)")
	fmt.Fprintf(f, "; start_cell: %s\n", posOrNone(e.Start))
	fmt.Fprintf(f, "; end_cell: %s\n", posOrNone(e.End))
	fmt.Fprintf(f, "; barriers: %d\n", e.Grid.CountState(world.Barrier))
	if e.Last != nil {
		fmt.Fprintf(f, "; outcome: %s\n", e.Last.Outcome)
		fmt.Fprintf(f, "; cost: %d\n", e.Last.Cost)
		fmt.Fprintf(f, "; expanded: %d\n", e.Last.Expanded)
	}

	// --- Legend ---
	fmt.Fprintln(f, "; legend: . empty  # barrier  S start  E end  o open  x closed  * path")
	fmt.Fprintln(f)

	if err := DumpMap(f, e.Grid); err != nil {
		return "", err
	}
	return absPath, f.Close()
}

func posOrNone(c *world.Cell) string {
	if c == nil {
		return "none"
	}
	return c.Pos().String()
}
