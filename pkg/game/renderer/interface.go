package renderer

import (
	"labyrinth/pkg/engine/world"
)

// GlyphStyle classifies a cell for renderers that style their output
type GlyphStyle int

const (
	StyleVoid GlyphStyle = iota
	StyleSpawn
	StyleIsolated
	StyleDeadEnd
	StyleCorridor
	StyleJunction
)

// Source is the read-only view of a maze that renderers draw from.
// *generator.Graph satisfies it.
type Source interface {
	Rooms() []*world.Room
	Spawn() *world.Room
}

// Renderer defines the interface for maze rendering backends
type Renderer interface {
	// Render returns the maze as one line of text per grid row
	Render(src Source) string
}
