// Package terminal answers questions about the attached terminal.
package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// IsTerminal returns true if f is connected to a terminal
func IsTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}

// GetSize returns the width and height of the terminal behind f.
// Falls back to defaults if the size cannot be determined.
func GetSize(f *os.File) (width, height int) {
	if f == nil {
		return DefaultWidth, DefaultHeight
	}
	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// GetWidth returns the width of the terminal behind f.
// Falls back to DefaultWidth if the width cannot be determined.
func GetWidth(f *os.File) int {
	width, _ := GetSize(f)
	return width
}

// Fits returns true if a map of the given size fits the terminal behind f
// without wrapping or scrolling
func Fits(f *os.File, mapWidth, mapHeight int) bool {
	width, height := GetSize(f)
	return mapWidth <= width && mapHeight <= height
}
