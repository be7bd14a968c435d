// Package tui renders a maze for a colour terminal.
package tui

import (
	"github.com/gookit/color"

	"labyrinth/pkg/game/renderer"
)

// TUIRenderer is the terminal renderer. It draws the same glyphs as the
// plain renderer and colours them by how many links a room has.
type TUIRenderer struct {
	colorSpawn    color.Style
	colorIsolated color.Style
	colorDeadEnd  color.Style
	colorCorridor color.Style
	colorJunction color.Style
}

// New creates a new TUI renderer
func New() *TUIRenderer {
	t := &TUIRenderer{}
	t.Init()
	return t
}

// Init initializes the colour styles
func (t *TUIRenderer) Init() {
	t.colorSpawn = color.Style{color.FgGreen, color.OpBold}
	t.colorIsolated = color.Style{color.FgGray}
	t.colorDeadEnd = color.Style{color.FgRed}
	t.colorCorridor = color.Style{color.FgBlue}
	t.colorJunction = color.Style{color.FgYellow, color.OpBold}
}

// StyleText applies a glyph style to text
func (t *TUIRenderer) StyleText(text string, style renderer.GlyphStyle) string {
	switch style {
	case renderer.StyleSpawn:
		return t.colorSpawn.Sprint(text)
	case renderer.StyleIsolated:
		return t.colorIsolated.Sprint(text)
	case renderer.StyleDeadEnd:
		return t.colorDeadEnd.Sprint(text)
	case renderer.StyleCorridor:
		return t.colorCorridor.Sprint(text)
	case renderer.StyleJunction:
		return t.colorJunction.Sprint(text)
	default:
		return text
	}
}

// Render returns the coloured maze
func (t *TUIRenderer) Render(src renderer.Source) string {
	return renderer.RenderWith(src, func(c renderer.Cell) string {
		glyph := renderer.GlyphFor(c.Room, c.Spawn)
		return t.StyleText(glyph, renderer.StyleFor(c.Room, c.Spawn))
	})
}

// Legend returns a one-line key for the coloured glyphs
func (t *TUIRenderer) Legend(spawn, deadEnd, corridor, junction string) string {
	return t.StyleText(renderer.GlyphSpawn, renderer.StyleSpawn) + " " + spawn + "  " +
		t.StyleText("╵", renderer.StyleDeadEnd) + " " + deadEnd + "  " +
		t.StyleText("│", renderer.StyleCorridor) + " " + corridor + "  " +
		t.StyleText("┼", renderer.StyleJunction) + " " + junction
}
