// Package terminal reports properties of the controlling terminal.
package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24

	// CellColumns is how many terminal columns one grid cell occupies
	CellColumns = 2
	// ReservedLines is kept free below the grid for status and help text
	ReservedLines = 6
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// IsInteractive reports whether both stdin and stdout are terminals.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// MaxGridRows returns the largest square grid that fits a terminal of the given size.
func MaxGridRows(width, height int) int {
	rows := min(width/CellColumns, height-ReservedLines)
	if rows < 0 {
		return 0
	}
	return rows
}

// FitsGrid reports whether a rows×rows grid fits the current terminal.
func FitsGrid(rows int) bool {
	return rows <= MaxGridRows(GetSize())
}
