package renderer

import (
	"strings"
	"testing"
	"unicode/utf8"

	"labyrinth/pkg/engine/world"
	"labyrinth/pkg/game/generator"
)

// fixedMaze is a hand-built Source
type fixedMaze struct {
	rooms []*world.Room
}

func (m fixedMaze) Rooms() []*world.Room { return m.rooms }

func (m fixedMaze) Spawn() *world.Room {
	if len(m.rooms) == 0 {
		return nil
	}
	return m.rooms[0]
}

func connect(t *testing.T, a, b *world.Room, dir world.Direction) {
	t.Helper()
	if err := a.Connect(b, dir); err != nil {
		t.Fatalf("Connect: %v", err)
	}
}

func TestRender_Empty(t *testing.T) {
	if got := Render(fixedMaze{}); got != "" {
		t.Errorf("Render(empty) = %q, want empty", got)
	}
}

func TestRender_SpawnOnly(t *testing.T) {
	spawn := world.NewRoom("spawn")
	if got := Render(fixedMaze{rooms: []*world.Room{spawn}}); got != GlyphSpawn {
		t.Errorf("Render(spawn only) = %q, want %q", got, GlyphSpawn)
	}
}

func TestRender_NorthIsUp(t *testing.T) {
	// B
	// O C
	a, b, c := world.NewRoom("a"), world.NewRoom("b"), world.NewRoom("c")
	connect(t, a, b, world.North)
	connect(t, a, c, world.East)

	got := Render(fixedMaze{rooms: []*world.Room{a, b, c}})
	want := "╷ \nO╴"
	if got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestRender_NegativeCoordinates(t *testing.T) {
	// a plus shape around the spawn, with a tail to the south-west
	spawn := world.NewRoom("spawn")
	n, s, e, w := world.NewRoom("n"), world.NewRoom("s"), world.NewRoom("e"), world.NewRoom("w")
	sw := world.NewRoom("sw")
	connect(t, spawn, n, world.North)
	connect(t, spawn, s, world.South)
	connect(t, spawn, e, world.East)
	connect(t, spawn, w, world.West)
	connect(t, w, sw, world.South)

	got := Render(fixedMaze{rooms: []*world.Room{spawn, n, s, e, w, sw}})
	want := strings.Join([]string{
		" ╷ ",
		"┌O╴",
		"╵╵ ",
	}, "\n")
	if got != want {
		t.Errorf("Render =\n%s\nwant\n%s", got, want)
	}
}

func TestGlyphFor_AllPatterns(t *testing.T) {
	cases := []struct {
		dirs []world.Direction
		want string
	}{
		{nil, "·"},
		{[]world.Direction{world.North}, "╵"},
		{[]world.Direction{world.South}, "╷"},
		{[]world.Direction{world.East}, "╶"},
		{[]world.Direction{world.West}, "╴"},
		{[]world.Direction{world.North, world.South}, "│"},
		{[]world.Direction{world.East, world.West}, "─"},
		{[]world.Direction{world.North, world.East}, "└"},
		{[]world.Direction{world.North, world.West}, "┘"},
		{[]world.Direction{world.South, world.East}, "┌"},
		{[]world.Direction{world.South, world.West}, "┐"},
		{[]world.Direction{world.North, world.South, world.East}, "├"},
		{[]world.Direction{world.North, world.South, world.West}, "┤"},
		{[]world.Direction{world.North, world.East, world.West}, "┴"},
		{[]world.Direction{world.South, world.East, world.West}, "┬"},
		{world.AllDirections(), "┼"},
	}
	for _, c := range cases {
		hub := world.NewRoom("hub")
		for _, dir := range c.dirs {
			connect(t, hub, world.NewRoom(dir.String()), dir)
		}
		if got := GlyphFor(hub, false); got != c.want {
			t.Errorf("GlyphFor(%v) = %q, want %q", c.dirs, got, c.want)
		}
		if got := GlyphFor(hub, true); got != GlyphSpawn {
			t.Errorf("GlyphFor(%v, spawn) = %q, want %q", c.dirs, got, GlyphSpawn)
		}
	}
	if GlyphFor(nil, false) != GlyphVoid {
		t.Error("GlyphFor(nil) is not the void glyph")
	}
}

func TestStyleFor(t *testing.T) {
	hub := world.NewRoom("hub")
	if StyleFor(hub, false) != StyleIsolated {
		t.Error("lone room is not isolated")
	}
	connect(t, hub, world.NewRoom("n"), world.North)
	if StyleFor(hub, false) != StyleDeadEnd {
		t.Error("degree 1 is not a dead end")
	}
	connect(t, hub, world.NewRoom("s"), world.South)
	if StyleFor(hub, false) != StyleCorridor {
		t.Error("degree 2 is not a corridor")
	}
	connect(t, hub, world.NewRoom("e"), world.East)
	if StyleFor(hub, false) != StyleJunction {
		t.Error("degree 3 is not a junction")
	}
	if StyleFor(hub, true) != StyleSpawn || StyleFor(nil, false) != StyleVoid {
		t.Error("spawn/void styles mismatch")
	}
}

func TestRender_GeneratedMaze(t *testing.T) {
	g, err := generator.NewGraph(120)
	if err != nil {
		t.Fatal(err)
	}
	g.Generate(17)

	out := Render(g)
	_, bounds := Layout(g)
	lines := strings.Split(out, "\n")
	if len(lines) != bounds.Height() {
		t.Fatalf("%d lines, want %d", len(lines), bounds.Height())
	}

	drawn := 0
	spawns := 0
	for i, line := range lines {
		if n := utf8.RuneCountInString(line); n != bounds.Width() {
			t.Errorf("line %d has %d cells, want %d", i, n, bounds.Width())
		}
		for _, r := range line {
			if string(r) != GlyphVoid {
				drawn++
			}
			if string(r) == GlyphSpawn {
				spawns++
			}
		}
	}
	if drawn != g.Size() {
		t.Errorf("drew %d rooms, want %d", drawn, g.Size())
	}
	if spawns != 1 {
		t.Errorf("drew %d spawn glyphs, want 1", spawns)
	}

	// the spawn glyph sits at the origin's offset
	row := bounds.Max.Y
	col := -bounds.Min.X
	if got := string([]rune(lines[row])[col]); got != GlyphSpawn {
		t.Errorf("cell at origin = %q, want %q", got, GlyphSpawn)
	}

	if Render(g) != out {
		t.Error("rendering twice gave different output")
	}
}
