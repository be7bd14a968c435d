package generator

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"slices"
	"strings"
	"testing"

	"labyrinth/pkg/engine/world"
)

// sequentialIDs returns an id source yielding room-001, room-002, ...
func sequentialIDs() func() world.RoomID {
	n := 0
	return func() world.RoomID {
		n++
		return world.RoomID(fmt.Sprintf("room-%03d", n))
	}
}

func mustGraph(t *testing.T, limit int, opts ...Option) *Graph {
	t.Helper()
	g, err := NewGraph(limit, opts...)
	if err != nil {
		t.Fatalf("NewGraph(%d) = %v", limit, err)
	}
	return g
}

// layout maps every position to its linked directions, ignoring ids
func layout(g *Graph) map[world.Vector2][]world.Direction {
	out := make(map[world.Vector2][]world.Direction)
	g.ForEachRoom(func(r *world.Room) {
		out[r.Position()] = r.ConnectedDirections()
	})
	return out
}

func TestNewGraph_RejectsNonPositiveLimit(t *testing.T) {
	for _, limit := range []int{0, -1, -100} {
		g, err := NewGraph(limit)
		if g != nil {
			t.Errorf("NewGraph(%d) returned a graph", limit)
		}
		var cfgErr *ConfigError
		if !errors.As(err, &cfgErr) || !errors.Is(err, ErrInvalidRoomLimit) {
			t.Errorf("NewGraph(%d) error = %v, want ConfigError wrapping ErrInvalidRoomLimit", limit, err)
		}
	}
}

func TestNewGraph_RejectsBoundsWithoutOrigin(t *testing.T) {
	_, err := NewGraph(5, WithBounds(world.NewRect(world.Vector2{X: 1, Y: 1}, world.Vector2{X: 4, Y: 4})))
	if !errors.Is(err, ErrBoundsExcludeSpawn) {
		t.Errorf("NewGraph with bounds excluding origin = %v, want ErrBoundsExcludeSpawn", err)
	}
}

func TestGraph_NotGeneratedYet(t *testing.T) {
	g := mustGraph(t, 3)
	if g.Generated() {
		t.Error("Generated() = true before Generate")
	}
	if _, err := g.LastResult(); !errors.Is(err, ErrNotGenerated) {
		t.Errorf("LastResult() error = %v, want ErrNotGenerated", err)
	}
	if err := g.Validate(); !errors.Is(err, ErrNotGenerated) {
		t.Errorf("Validate() = %v, want ErrNotGenerated", err)
	}
	if g.Spawn() != nil || g.Size() != 0 || len(g.Occupied()) != 0 {
		t.Error("empty graph reports rooms")
	}
}

func TestGenerate_SingleRoom(t *testing.T) {
	g := mustGraph(t, 1)
	res := g.Generate(42)

	if res.Status != StatusComplete || res.RoomCount != 1 {
		t.Errorf("Generate = %+v, want complete with 1 room", res)
	}
	spawn := g.Spawn()
	if spawn == nil || spawn.Position() != world.Zero() || spawn.Name != SpawnRoomName {
		t.Fatalf("Spawn() = %v, want %q at origin", spawn, SpawnRoomName)
	}
	if g.LinkCount() != 0 {
		t.Errorf("LinkCount() = %d, want 0", g.LinkCount())
	}
	if g.FrontierLen() != 0 {
		t.Errorf("FrontierLen() = %d, want 0", g.FrontierLen())
	}
	if err := g.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestGenerate_PerfectMazeProperties(t *testing.T) {
	for _, limit := range []int{2, 7, 25, 100, 400} {
		for seed := int64(1); seed <= 8; seed++ {
			g := mustGraph(t, limit)
			res := g.Generate(seed)

			// bounded growth: exactly the limit on an open grid
			if res.RoomCount != limit || g.Size() != limit || res.Degenerate() {
				t.Fatalf("limit %d seed %d: %v, want %d rooms", limit, seed, res, limit)
			}
			// uniqueness
			if got := len(g.Occupied()); got != g.Size() {
				t.Errorf("limit %d seed %d: %d occupied positions for %d rooms", limit, seed, got, g.Size())
			}
			// spanning tree
			if g.LinkCount() != limit-1 {
				t.Errorf("limit %d seed %d: LinkCount() = %d, want %d", limit, seed, g.LinkCount(), limit-1)
			}
			if err := g.Validate(); err != nil {
				t.Errorf("limit %d seed %d: Validate() = %v", limit, seed, err)
			}
		}
	}
}

func TestGenerate_AdjacencyEqualsLink(t *testing.T) {
	g := mustGraph(t, 150)
	g.Generate(7)

	g.ForEachRoom(func(r *world.Room) {
		for _, dir := range world.AllDirections() {
			adjacent := g.RoomAt(r.Position().Add(dir.Offset()))
			linked := g.Neighbor(r, dir)
			if adjacent != linked {
				t.Errorf("room %q %s: adjacent %v, linked %v", r.Name, dir, adjacent, linked)
			}
		}
	})
}

func TestGenerate_Reciprocity(t *testing.T) {
	g := mustGraph(t, 150)
	g.Generate(11)

	g.ForEachRoom(func(a *world.Room) {
		for _, dir := range world.AllDirections() {
			b := g.Neighbor(a, dir)
			if b == nil {
				continue
			}
			if back := g.Neighbor(b, dir.Opposite()); back != a {
				t.Errorf("%q -%s-> %q but %q -%s-> %v", a.Name, dir, b.Name, b.Name, dir.Opposite(), back)
			}
		}
	})
}

func TestGenerate_Deterministic(t *testing.T) {
	for _, seed := range []int64{0, 1, 99, -5, 1 << 40} {
		a := mustGraph(t, 80, WithIDSource(sequentialIDs()))
		b := mustGraph(t, 80, WithIDSource(sequentialIDs()))
		a.Generate(seed)
		b.Generate(seed)

		if !slices.Equal(a.Occupied(), b.Occupied()) {
			t.Fatalf("seed %d: occupied positions differ", seed)
		}
		la, lb := layout(a), layout(b)
		for pos, dirs := range la {
			if !slices.Equal(dirs, lb[pos]) {
				t.Errorf("seed %d: links at %s = %v and %v", seed, pos, dirs, lb[pos])
			}
		}

		ra, rb := a.Rooms(), b.Rooms()
		for i := range ra {
			if ra[i].ID != rb[i].ID || ra[i].Name != rb[i].Name || ra[i].Position() != rb[i].Position() {
				t.Errorf("seed %d: room %d = %s/%s/%s, want %s/%s/%s", seed, i,
					rb[i].ID, rb[i].Name, rb[i].Position(), ra[i].ID, ra[i].Name, ra[i].Position())
			}
		}
	}
}

func TestGenerate_SeedsDiffer(t *testing.T) {
	a := mustGraph(t, 60)
	b := mustGraph(t, 60)
	a.Generate(1)
	b.Generate(2)
	if slices.Equal(a.Occupied(), b.Occupied()) {
		t.Error("seeds 1 and 2 produced the same layout")
	}
}

func TestGenerate_RoomNames(t *testing.T) {
	g := mustGraph(t, 5)
	g.Generate(3)
	for i, r := range g.Rooms() {
		want := SpawnRoomName
		if i > 0 {
			want = fmt.Sprintf("Room %d", i)
		}
		if r.Name != want {
			t.Errorf("room %d name = %q, want %q", i, r.Name, want)
		}
		if r.Occupants.Size() != 0 || r.ItemReward != nil {
			t.Errorf("room %q has gameplay payload after generation", r.Name)
		}
	}
}

func TestGenerate_RegenerateDiscardsState(t *testing.T) {
	g := mustGraph(t, 40)
	first := g.Generate(5)
	firstLayout := g.Occupied()
	firstRooms := g.Rooms()

	g.Generate(6)
	for _, r := range firstRooms {
		if g.Room(r.ID) != nil {
			t.Fatalf("room %s from the previous run survived regeneration", r.ID)
		}
	}
	if g.Size() != 40 {
		t.Errorf("Size() after regenerate = %d, want 40", g.Size())
	}

	again := g.Generate(5)
	if again.Seed != first.Seed || again.RoomCount != first.RoomCount {
		t.Errorf("Generate(5) again = %+v, want %+v", again, first)
	}
	if !slices.Equal(g.Occupied(), firstLayout) {
		t.Error("regenerating with the same seed changed the layout")
	}
}

func TestGenerate_DegenerateInsideBounds(t *testing.T) {
	cases := []struct {
		name   string
		bounds world.Rect
		limit  int
		want   int
	}{
		{"single cell", world.NewRect(world.Zero(), world.Zero()), 5, 1},
		{"corridor", world.NewRect(world.Vector2{X: -2, Y: 0}, world.Vector2{X: 2, Y: 0}), 10, 5},
		{"two by two", world.NewRect(world.Zero(), world.Vector2{X: 1, Y: 1}), 4, 3},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			for seed := int64(0); seed < 5; seed++ {
				var buf bytes.Buffer
				g := mustGraph(t, c.limit, WithBounds(c.bounds), WithLogger(log.New(&buf, "", 0)))
				res := g.Generate(seed)

				if !res.Degenerate() || res.RoomCount != c.want {
					t.Fatalf("seed %d: %v, want degenerate with %d rooms", seed, res, c.want)
				}
				if got := res.String(); got != fmt.Sprintf("completed with %d < %d rooms", c.want, c.limit) {
					t.Errorf("Result.String() = %q", got)
				}
				if !strings.Contains(buf.String(), "no growable rooms left") {
					t.Errorf("degenerate run logged %q", buf.String())
				}
				if err := g.Validate(); err != nil {
					t.Errorf("seed %d: Validate() = %v", seed, err)
				}
				if g.FrontierLen() != 0 || !g.frontier.Empty() {
					t.Errorf("seed %d: FrontierLen() = %d after a degenerate run", seed, g.FrontierLen())
				}
				for _, pos := range g.Occupied() {
					if !c.bounds.Contains(pos) {
						t.Errorf("room at %s outside bounds", pos)
					}
				}
			}
		})
	}
}

func TestGenerate_SpawnIsPlaced(t *testing.T) {
	g := mustGraph(t, 1)
	g.Generate(3)
	if !g.Spawn().Placed() || g.Spawn().Position() != world.Zero() {
		t.Errorf("spawn placed %v at %s, want placed at origin", g.Spawn().Placed(), g.Spawn().Position())
	}
}

func TestGenerate_BoundsReachedExactly(t *testing.T) {
	bounds := world.NewRect(world.Vector2{X: -10, Y: -10}, world.Vector2{X: 10, Y: 10})
	g := mustGraph(t, 30, WithBounds(bounds))
	res := g.Generate(8)
	if res.Degenerate() || res.RoomCount != 30 {
		t.Errorf("Generate = %v, want 30 rooms", res)
	}
	if b, ok := g.Bounds(); !ok || b != bounds {
		t.Errorf("Bounds() = %v, %v", b, ok)
	}
}

func TestCanPlaceAt(t *testing.T) {
	g := mustGraph(t, 10)
	g.reset(0)
	g.occupied.Put(world.Zero())

	if !g.CanPlaceAt(world.Vector2{X: 0, Y: 1}) {
		t.Error("CanPlaceAt((0,1)) with one occupied neighbour = false, want true")
	}
	if g.CanPlaceAt(world.Vector2{X: 1, Y: 1}) {
		t.Error("CanPlaceAt((1,1)) with no occupied neighbour = true, want false")
	}
	if g.CanPlaceAt(world.Zero()) {
		t.Error("CanPlaceAt on an occupied cell = true, want false")
	}

	g.occupied.Put(world.Vector2{X: 1, Y: 0})
	g.occupied.Put(world.Vector2{X: 0, Y: 1})
	if g.CanPlaceAt(world.Vector2{X: 1, Y: 1}) {
		t.Error("CanPlaceAt((1,1)) with two occupied neighbours = true, want false")
	}
	if !g.CanPlaceAt(world.Vector2{X: 2, Y: 0}) {
		t.Error("CanPlaceAt((2,0)) with one occupied neighbour = false, want true")
	}
}

func TestEligibleDirections_SortedAndFresh(t *testing.T) {
	g := mustGraph(t, 10)
	g.reset(0)
	spawn := world.NewRoom(SpawnRoomName)
	g.place(spawn)

	if got, want := g.EligibleDirections(spawn), world.AllDirections(); !slices.Equal(got, want) {
		t.Errorf("EligibleDirections(lone spawn) = %v, want %v", got, want)
	}

	east := world.NewRoom("east")
	g.attach(spawn, east, world.East)

	got := g.EligibleDirections(spawn)
	want := []world.Direction{world.North, world.South, world.West}
	if !slices.Equal(got, want) {
		t.Errorf("EligibleDirections(spawn) = %v, want %v", got, want)
	}
	if g.EligibleDirections(nil) != nil {
		t.Error("EligibleDirections(nil) != nil")
	}
}

func TestAttach_OccupiedTargetPanics(t *testing.T) {
	g := mustGraph(t, 10)
	g.reset(0)
	spawn := world.NewRoom(SpawnRoomName)
	g.place(spawn)
	g.attach(spawn, world.NewRoom("north"), world.North)

	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, world.ErrOccupied) {
			t.Fatalf("recover() = %v, want error wrapping ErrOccupied", r)
		}
		var inv *world.InvariantError
		if !errors.As(err, &inv) || inv.Position != (world.Vector2{X: 0, Y: 1}) {
			t.Errorf("invariant error = %v, want position (0, 1)", err)
		}
	}()
	// the spawn's north slot is taken and the cell occupied
	g.attach(spawn, world.NewRoom("intruder"), world.North)
	t.Fatal("attach onto an occupied cell did not panic")
}

func TestResult_String(t *testing.T) {
	r := Result{RoomLimit: 10, RoomCount: 10, Status: StatusComplete}
	if got := r.String(); got != "completed with 10 rooms" {
		t.Errorf("String() = %q", got)
	}
	if StatusDegenerate.String() != "degenerate" || Status(9).String() != "unknown" {
		t.Error("Status.String mismatch")
	}
}
