// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"labyrinth/pkg/engine/world"
	"labyrinth/pkg/game/generator"
	"labyrinth/pkg/game/renderer"
)

const mapDumpFilename = "maze.txt"

// DumpMazeToFile writes a full debug dump of the generated maze to path
// (maze.txt when empty) and returns the absolute path written.
func DumpMazeToFile(path string, g *generator.Graph) (string, error) {
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

	w := bufio.NewWriter(f)
	if err := WriteMazeDump(w, g); err != nil {
		return "", err
	}
	if err := w.Flush(); err != nil {
		return "", err
	}
	return absPath, nil
}

// WriteMazeDump writes metadata, legend, map and a room list.
// Format is human-readable (sections, key: value, consistent structure).
func WriteMazeDump(w io.Writer, g *generator.Graph) error {
	result, err := g.LastResult()
	if err != nil {
		return err
	}
	rooms := g.Rooms()
	_, bounds := renderer.Layout(g)

	// --- Metadata ---
	fmt.Fprintln(w, "=== MAZE DUMP DEBUG (layout, links, degrees) ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "generator: %s\n", g.Name())
	fmt.Fprintf(w, "seed: %d\n", result.Seed)
	fmt.Fprintf(w, "room_limit: %d\n", result.RoomLimit)
	fmt.Fprintf(w, "room_count: %d\n", result.RoomCount)
	fmt.Fprintf(w, "status: %s\n", result.Status)
	fmt.Fprintf(w, "links: %d\n", g.LinkCount())
	fmt.Fprintf(w, "coordinate_system: x,y (x grows east, y grows north, spawn at 0,0)\n")
	fmt.Fprintf(w, "bounding_box: %s..%s (%dx%d)\n", bounds.Min, bounds.Max, bounds.Width(), bounds.Height())
	if limit, ok := g.Bounds(); ok {
		fmt.Fprintf(w, "growth_bounds: %s..%s\n", limit.Min, limit.Max)
	}
	if err := g.Validate(); err != nil {
		fmt.Fprintf(w, "valid: false (%v)\n", err)
	} else {
		fmt.Fprintln(w, "valid: true")
	}
	fmt.Fprintln(w, "")

	// --- Degree histogram ---
	fmt.Fprintln(w, "--- Degrees ---")
	var degrees [5]int
	for _, r := range rooms {
		degrees[r.Degree()]++
	}
	for d, n := range degrees {
		fmt.Fprintf(w, "degree_%d: %d\n", d, n)
	}
	fmt.Fprintln(w, "")

	// --- Legend ---
	fmt.Fprintln(w, "--- Legend ---")
	fmt.Fprintf(w, "%s = spawn  line ends point at linked neighbours  blank = no room\n", renderer.GlyphSpawn)
	fmt.Fprintln(w, "")

	// --- Map ---
	fmt.Fprintln(w, "--- Map (north up) ---")
	fmt.Fprintln(w, renderer.Render(g))
	fmt.Fprintln(w, "")

	// --- Rooms, north to south then west to east ---
	fmt.Fprintln(w, "--- Rooms ---")
	slices.SortFunc(rooms, func(a, b *world.Room) int {
		pa, pb := a.Position(), b.Position()
		if pa.Y != pb.Y {
			return pb.Y - pa.Y
		}
		return pa.X - pb.X
	})
	for _, r := range rooms {
		pos := r.Position()
		fmt.Fprintf(w, "  x: %d y: %d id: %q name: %q degree: %d links: %v\n",
			pos.X, pos.Y, r.ID, r.Name, r.Degree(), r.ConnectedDirections())
	}
	return nil
}
