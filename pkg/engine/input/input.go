package input

import (
	"bufio"
	"io"
	"os"
	"time"

	"golang.org/x/term"
)

const (
	keyCtrlC     = 3
	keyBackspace = 127
	keyEscape    = 0x1b
)

// KeyReader decodes single key presses from a byte stream, such as a
// terminal in raw mode
type KeyReader struct {
	r *bufio.Reader
}

// NewKeyReader creates a key reader over r
func NewKeyReader(r io.Reader) *KeyReader {
	return &KeyReader{r: bufio.NewReader(r)}
}

// ReadKey returns the code of the next key press: a printable character,
// "arrow_up", "arrow_down", "arrow_left", "arrow_right", "enter",
// "escape", "backspace" or "ctrl_c". Unknown bytes give an empty code.
func (k *KeyReader) ReadKey() (string, error) {
	b, err := k.r.ReadByte()
	if err != nil {
		return "", err
	}

	switch {
	case b == keyEscape:
		return k.readEscape()
	case b == keyCtrlC:
		return "ctrl_c", nil
	case b == '\r' || b == '\n':
		return "enter", nil
	case b == keyBackspace || b == '\b':
		return "backspace", nil
	case b == ' ':
		return "space", nil
	case b > ' ' && b < keyBackspace:
		return string(rune(b)), nil
	default:
		return "", nil
	}
}

// readEscape reads the rest of an escape sequence after ESC.
// Both CSI (ESC [) and SS3 (ESC O) arrow sequences are recognised.
func (k *KeyReader) readEscape() (string, error) {
	if k.r.Buffered() == 0 {
		return "escape", nil
	}
	b2, err := k.r.ReadByte()
	if err != nil {
		return "escape", nil
	}
	if b2 != '[' && b2 != 'O' {
		// ESC followed by another key; keep that key for the next read
		_ = k.r.UnreadByte()
		return "escape", nil
	}
	b3, err := k.r.ReadByte()
	if err != nil {
		return "", nil
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
	// Unknown escape sequence - discard it
	return "", nil
}

// ReadRawInput reads the next key press as a timestamped event
func (k *KeyReader) ReadRawInput() (RawInput, error) {
	code, err := k.ReadKey()
	if err != nil {
		return RawInput{}, err
	}
	return RawInput{Device: DeviceTerminal, Code: code, Timestamp: time.Now()}, nil
}

// MakeRaw puts the terminal behind f into raw mode and returns a function
// that restores it
func MakeRaw(f *os.File) (restore func(), err error) {
	fd := int(f.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	return func() { _ = term.Restore(fd, oldState) }, nil
}
