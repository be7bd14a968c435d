// Package generator grows perfect mazes of rooms outward from a spawn room.
package generator

import (
	"fmt"
	"io"
	"log"
	"math/rand"
	"slices"

	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"

	"labyrinth/pkg/engine/world"
)

// Status describes how a generation run ended
type Status int

// Generation outcomes
const (
	StatusComplete   Status = iota // reached the room limit
	StatusDegenerate               // ran out of growable rooms first
)

// String returns the string representation of a status
func (s Status) String() string {
	switch s {
	case StatusComplete:
		return "complete"
	case StatusDegenerate:
		return "degenerate"
	default:
		return "unknown"
	}
}

// Result summarises one generation run
type Result struct {
	Seed      int64
	RoomLimit int
	RoomCount int
	Status    Status
}

// Degenerate returns true if the run stopped short of the room limit
func (r Result) Degenerate() bool {
	return r.Status == StatusDegenerate
}

func (r Result) String() string {
	if r.Degenerate() {
		return fmt.Sprintf("completed with %d < %d rooms", r.RoomCount, r.RoomLimit)
	}
	return fmt.Sprintf("completed with %d rooms", r.RoomCount)
}

// Option configures a Graph
type Option func(*Graph)

// WithLogger sets the logger used for generation notices
func WithLogger(l *log.Logger) Option {
	return func(g *Graph) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithIDSource sets the function used to mint room ids
func WithIDSource(next func() world.RoomID) Option {
	return func(g *Graph) {
		if next != nil {
			g.newID = next
		}
	}
}

// WithBounds confines growth to the cells of r.
// The spawn room sits at the origin, so r must contain it.
func WithBounds(r world.Rect) Option {
	return func(g *Graph) {
		g.bounds = &r
	}
}

// Graph owns every room of one maze together with the occupied positions and
// the growth frontier. It is not safe for concurrent use; after Generate
// returns it should be treated as read-only.
type Graph struct {
	roomLimit int
	logger    *log.Logger
	newID     func() world.RoomID
	bounds    *world.Rect

	rng         *rand.Rand
	rooms       map[world.RoomID]*world.Room
	order       []*world.Room
	byPosition  map[world.Vector2]*world.Room
	occupied    mapset.Set[world.Vector2]
	frontier    *queue.Queue[*world.Room]
	frontierLen int // reported by FrontierLen only
	spawn       *world.Room

	generated bool
	result    Result
}

// NewGraph creates an empty graph that grows to roomLimit rooms.
// A limit below one, or bounds that leave out the origin, are rejected
// before any rooms exist.
func NewGraph(roomLimit int, opts ...Option) (*Graph, error) {
	if roomLimit <= 0 {
		return nil, &ConfigError{Field: "roomLimit", Value: roomLimit, Err: ErrInvalidRoomLimit}
	}

	g := &Graph{
		roomLimit: roomLimit,
		logger:    log.New(io.Discard, "", 0),
		newID:     world.NewRoomID,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.bounds != nil && !g.bounds.Contains(world.Zero()) {
		return nil, &ConfigError{Field: "bounds", Value: *g.bounds, Err: ErrBoundsExcludeSpawn}
	}
	return g, nil
}

// Name returns the name of this generator
func (g *Graph) Name() string {
	return "Frontier Growth"
}

// Bounds returns the growth bounds and whether any are set
func (g *Graph) Bounds() (world.Rect, bool) {
	if g.bounds == nil {
		return world.Rect{}, false
	}
	return *g.bounds, true
}

// RoomLimit returns the configured target room count
func (g *Graph) RoomLimit() int {
	return g.roomLimit
}

// reset discards all state from a previous run
func (g *Graph) reset(seed int64) {
	g.rng = rand.New(rand.NewSource(seed))
	g.rooms = make(map[world.RoomID]*world.Room, g.roomLimit)
	g.order = make([]*world.Room, 0, g.roomLimit)
	g.byPosition = make(map[world.Vector2]*world.Room, g.roomLimit)
	g.occupied = mapset.New[world.Vector2]()
	g.frontier = queue.New[*world.Room]()
	g.frontierLen = 0
	g.spawn = nil
	g.generated = false
	g.result = Result{Seed: seed, RoomLimit: g.roomLimit}
}

// Generate grows a new maze from seed, replacing any earlier one.
//
// Rooms are taken from the frontier oldest first. Each grows one new room in
// a direction drawn at random from its eligible directions, sorted into
// North, South, East, West order so a seed always replays the same draws.
// Both rooms go back on the frontier while they can still grow. The room
// count is checked before every step, so it never exceeds the limit.
func (g *Graph) Generate(seed int64) Result {
	g.reset(seed)

	g.spawn = world.NewRoomWithID(g.newID(), SpawnRoomName)
	g.spawn.Place()
	g.place(g.spawn)
	g.enqueue(g.spawn)

	for len(g.order) < g.roomLimit {
		if g.frontier.Empty() {
			g.logger.Printf("maze seed %d: no growable rooms left at %d of %d rooms", seed, len(g.order), g.roomLimit)
			return g.finish(StatusDegenerate)
		}

		current := g.dequeue()
		dirs := g.EligibleDirections(current)
		if len(dirs) == 0 {
			continue
		}
		world.SortDirections(dirs)
		dir := dirs[g.rng.Intn(len(dirs))]

		room := world.NewRoomWithID(g.newID(), fmt.Sprintf(roomNameFormat, len(g.order)))
		g.attach(current, room, dir)

		if g.canGrow(room) {
			g.enqueue(room)
		}
		if g.canGrow(current) {
			g.enqueue(current)
		}
	}

	return g.finish(StatusComplete)
}

// finish freezes the graph and drops the frontier
func (g *Graph) finish(status Status) Result {
	for !g.frontier.Empty() {
		g.dequeue()
	}
	g.result.RoomCount = len(g.order)
	g.result.Status = status
	g.generated = true
	return g.result
}

func (g *Graph) enqueue(r *world.Room) {
	g.frontier.Enqueue(r)
	g.frontierLen++
}

func (g *Graph) dequeue() *world.Room {
	g.frontierLen--
	return g.frontier.Dequeue()
}

// place registers a linked room and its position
func (g *Graph) place(r *world.Room) {
	pos := r.Position()
	if g.occupied.Has(pos) {
		panic(fmt.Errorf("generated invalid maze: %w", &world.InvariantError{Err: world.ErrOccupied, Room: r.ID, Position: pos}))
	}
	if _, dup := g.rooms[r.ID]; dup {
		panic(fmt.Errorf("generated invalid maze: duplicate room id %s", r.ID))
	}
	g.rooms[r.ID] = r
	g.order = append(g.order, r)
	g.byPosition[pos] = r
	g.occupied.Put(pos)
}

// attach links a new room to parent in dir and places it
func (g *Graph) attach(parent, child *world.Room, dir world.Direction) {
	target := parent.Position().Add(dir.Offset())
	if g.occupied.Has(target) {
		panic(fmt.Errorf("generated invalid maze: %w", &world.InvariantError{
			Err: world.ErrOccupied, Room: parent.ID, Other: child.ID, Direction: dir, Position: target,
		}))
	}
	if err := parent.Connect(child, dir); err != nil {
		panic(fmt.Errorf("generated invalid maze: %w", err))
	}
	g.place(child)
}

// CanPlaceAt returns true if pos is free, inside the bounds if any, and
// exactly one of its cardinal neighbours is occupied. With no occupied
// neighbour the room would be orphaned; with two it would close a cycle.
func (g *Graph) CanPlaceAt(pos world.Vector2) bool {
	if g.bounds != nil && !g.bounds.Contains(pos) {
		return false
	}
	if g.occupied.Has(pos) {
		return false
	}
	count := 0
	for _, n := range pos.NSEWOffsets() {
		if g.occupied.Has(n) {
			count++
		}
	}
	return count == 1
}

// EligibleDirections returns the directions room can currently grow in,
// in North, South, East, West order. It is recomputed on every call.
func (g *Graph) EligibleDirections(room *world.Room) []world.Direction {
	if room == nil {
		return nil
	}
	var dirs []world.Direction
	for i, pos := range room.Position().NSEWOffsets() {
		if g.CanPlaceAt(pos) {
			dirs = append(dirs, world.AllDirections()[i])
		}
	}
	return dirs
}

func (g *Graph) canGrow(room *world.Room) bool {
	return len(g.EligibleDirections(room)) > 0
}

// Generated returns true once Generate has finished at least once
func (g *Graph) Generated() bool {
	return g.generated
}

// LastResult returns the result of the most recent run
func (g *Graph) LastResult() (Result, error) {
	if !g.generated {
		return Result{}, ErrNotGenerated
	}
	return g.result, nil
}

// Spawn returns the spawn room, or nil before generation
func (g *Graph) Spawn() *world.Room {
	return g.spawn
}

// Size returns the number of placed rooms
func (g *Graph) Size() int {
	return len(g.order)
}

// FrontierLen returns the number of queued frontier entries
func (g *Graph) FrontierLen() int {
	return g.frontierLen
}

// Rooms returns all rooms in creation order
func (g *Graph) Rooms() []*world.Room {
	return slices.Clone(g.order)
}

// ForEachRoom calls fn for every room in creation order
func (g *Graph) ForEachRoom(fn func(room *world.Room)) {
	for _, r := range g.order {
		fn(r)
	}
}

// Room returns the room with the given id, or nil
func (g *Graph) Room(id world.RoomID) *world.Room {
	return g.rooms[id]
}

// RoomAt returns the room at pos, or nil
func (g *Graph) RoomAt(pos world.Vector2) *world.Room {
	return g.byPosition[pos]
}

// Neighbor resolves the room linked to room in dir, or nil
func (g *Graph) Neighbor(room *world.Room, dir world.Direction) *world.Room {
	id, ok := room.Neighbor(dir)
	if !ok {
		return nil
	}
	return g.rooms[id]
}

// Occupied returns every occupied position sorted by Y then X
func (g *Graph) Occupied() []world.Vector2 {
	positions := make([]world.Vector2, 0, g.Size())
	g.occupied.Each(func(pos world.Vector2) {
		positions = append(positions, pos)
	})
	slices.SortFunc(positions, func(a, b world.Vector2) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
	return positions
}

// LinkCount returns the number of undirected links between rooms
func (g *Graph) LinkCount() int {
	total := 0
	for _, r := range g.order {
		total += r.Degree()
	}
	return total / 2
}
