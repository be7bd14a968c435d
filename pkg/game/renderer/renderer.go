// Package renderer projects a generated maze onto a text grid.
//
// The grid covers the bounding box of all rooms. The first line is the
// northernmost row (largest Y) and each line runs west to east (smallest X
// first), so the picture matches the compass: North is up, East is right.
package renderer

import (
	"strings"

	"labyrinth/pkg/engine/world"
)

// Glyphs for special cells
const (
	GlyphSpawn = "O"
	GlyphVoid  = " "
)

// connection bits used to index linkGlyphs
const (
	bitNorth = 1 << iota
	bitSouth
	bitEast
	bitWest
)

// linkGlyphs is indexed by connection bits
var linkGlyphs = [16]string{
	"·", "╵", "╷", "│", "╶", "└", "┌", "├",
	"╴", "┘", "┐", "┤", "─", "┴", "┬", "┼",
}

// Cell is one position of the rendered grid
type Cell struct {
	Room  *world.Room // nil for empty cells
	Spawn bool
}

// connectionMask returns the link bits of a room
func connectionMask(r *world.Room) int {
	mask := 0
	for _, dir := range r.ConnectedDirections() {
		switch dir {
		case world.North:
			mask |= bitNorth
		case world.South:
			mask |= bitSouth
		case world.East:
			mask |= bitEast
		case world.West:
			mask |= bitWest
		}
	}
	return mask
}

// GlyphFor returns the glyph for a room
func GlyphFor(r *world.Room, spawn bool) string {
	if r == nil {
		return GlyphVoid
	}
	if spawn {
		return GlyphSpawn
	}
	return linkGlyphs[connectionMask(r)]
}

// StyleFor classifies a room by its degree
func StyleFor(r *world.Room, spawn bool) GlyphStyle {
	if r == nil {
		return StyleVoid
	}
	if spawn {
		return StyleSpawn
	}
	switch r.Degree() {
	case 0:
		return StyleIsolated
	case 1:
		return StyleDeadEnd
	case 2:
		return StyleCorridor
	default:
		return StyleJunction
	}
}

// Layout places every room of src into rows ordered north to south.
// It returns nil rows for a maze without rooms.
func Layout(src Source) ([][]Cell, world.Rect) {
	rooms := src.Rooms()
	positions := make([]world.Vector2, len(rooms))
	for i, r := range rooms {
		positions[i] = r.Position()
	}
	bounds, ok := world.BoundingRect(positions)
	if !ok {
		return nil, world.Rect{}
	}

	spawn := src.Spawn()
	rows := make([][]Cell, bounds.Height())
	for i := range rows {
		rows[i] = make([]Cell, bounds.Width())
	}
	for _, r := range rooms {
		pos := r.Position()
		row := bounds.Max.Y - pos.Y
		col := pos.X - bounds.Min.X
		rows[row][col] = Cell{Room: r, Spawn: r == spawn}
	}
	return rows, bounds
}

// ASCIIRenderer draws the maze with plain box-drawing glyphs
type ASCIIRenderer struct{}

// New creates a new plain text renderer
func New() *ASCIIRenderer {
	return &ASCIIRenderer{}
}

// Render returns the maze as text. Rows are separated by newlines and
// there is no trailing newline.
func (a *ASCIIRenderer) Render(src Source) string {
	return RenderWith(src, func(c Cell) string {
		return GlyphFor(c.Room, c.Spawn)
	})
}

// RenderWith lays out src and draws each cell with draw
func RenderWith(src Source, draw func(Cell) string) string {
	rows, _ := Layout(src)
	lines := make([]string, len(rows))
	for i, row := range rows {
		var b strings.Builder
		for _, c := range row {
			b.WriteString(draw(c))
		}
		lines[i] = b.String()
	}
	return strings.Join(lines, "\n")
}

// Render draws src with the plain text renderer
func Render(src Source) string {
	return New().Render(src)
}
