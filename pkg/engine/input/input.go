// Package input turns device events into editing and search intents.
package input

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// ErrNotTerminal is returned when stdin cannot be put into raw mode.
var ErrNotTerminal = errors.New("input: stdin is not a terminal")

// KeyReader reads single key presses from a terminal in raw mode.
type KeyReader struct {
	in io.Reader
	fd int
}

// NewKeyReader returns a reader over stdin
func NewKeyReader() *KeyReader {
	return &KeyReader{in: os.Stdin, fd: int(os.Stdin.Fd())}
}

// ReadKey blocks for one key press and returns its raw code
// ("arrow_up", "enter", "space", "escape", "ctrl_c" or the character itself).
func (k *KeyReader) ReadKey() (string, error) {
	if !term.IsTerminal(k.fd) {
		return "", ErrNotTerminal
	}
	oldState, err := term.MakeRaw(k.fd)
	if err != nil {
		return "", fmt.Errorf("cannot set terminal to raw mode: %w", err)
	}
	defer term.Restore(k.fd, oldState)

	return readCode(k.in)
}

// ReadIntent reads one key press and maps it through the bindings
func (k *KeyReader) ReadIntent() (Intent, error) {
	code, err := k.ReadKey()
	if err != nil {
		return Intent{Action: ActionNone}, err
	}
	return Translate(RawInput{Device: DeviceTerminal, Code: code}), nil
}

// readByte reads a single byte
func readByte(r io.Reader) (byte, error) {
	buf := make([]byte, 1)
	_, err := io.ReadFull(r, buf)
	return buf[0], err
}

// readCode decodes one key from a raw-mode byte stream
func readCode(r io.Reader) (string, error) {
	b1, err := readByte(r)
	if err != nil {
		return "", err
	}

	switch b1 {
	case 0x1b:
		return readEscape(r)
	case 3:
		return "ctrl_c", nil
	case '\r', '\n':
		return "enter", nil
	case ' ':
		return "space", nil
	case 127, 8:
		return "delete", nil
	}
	if b1 >= 32 && b1 < 127 {
		return string(b1), nil
	}
	return "", nil
}

// readEscape decodes the rest of an escape sequence. A bare ESC is reported as
// "escape"; unknown sequences are discarded.
func readEscape(r io.Reader) (string, error) {
	b2, err := readByte(r)
	if err != nil {
		return "escape", nil
	}
	// Handle both CSI sequences (ESC [) and SS3 sequences (ESC O)
	if b2 != '[' && b2 != 'O' {
		return "escape", nil
	}
	b3, err := readByte(r)
	if err != nil {
		return "", err
	}
	switch b3 {
	case 'A':
		return "arrow_up", nil
	case 'B':
		return "arrow_down", nil
	case 'C':
		return "arrow_right", nil
	case 'D':
		return "arrow_left", nil
	}
	return "", nil
}
