package export

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"

	"labyrinth/pkg/engine/world"
)

// Maze is a set of rooms rebuilt from a snapshot. It can be drawn by the
// renderers.
type Maze struct {
	rooms []*world.Room
	spawn *world.Room
}

// Rooms returns the rebuilt rooms, spawn first
func (m *Maze) Rooms() []*world.Room {
	return m.rooms
}

// Spawn returns the spawn room
func (m *Maze) Spawn() *world.Room {
	return m.spawn
}

func corrupt(format string, a ...any) error {
	return fmt.Errorf("%w: %s", ErrCorruptSnapshot, fmt.Sprintf(format, a...))
}

// Restore rebuilds the rooms of snap by replaying its links outward from
// the spawn room. Every recorded position must match the one the links
// produce, and the result must be a perfect maze: one room per position,
// adjacent rooms always linked, and one link fewer than rooms.
func (snap Snapshot) Restore() (*Maze, error) {
	spawnRec, ok := snap.Rooms[snap.SpawnRoom]
	if !ok {
		return nil, corrupt("spawn room %q missing", snap.SpawnRoom)
	}

	rooms := make(map[string]*world.Room, len(snap.Rooms))
	for id, rec := range snap.Rooms {
		if rec.ID != id {
			return nil, corrupt("room keyed %q has id %q", id, rec.ID)
		}
		r := world.NewRoomWithID(world.RoomID(id), rec.Name)
		for _, name := range rec.Players {
			r.Occupants.Put(world.NewPlayer(name))
		}
		if rec.ItemReward != nil {
			r.ItemReward = world.NewItem(*rec.ItemReward)
		}
		rooms[id] = r
	}

	spawn := rooms[spawnRec.ID]
	spawn.Place()
	maze := &Maze{spawn: spawn}
	visited := mapset.New[string]()
	pending := queue.New[string]()
	visited.Put(spawnRec.ID)
	pending.Enqueue(spawnRec.ID)

	for !pending.Empty() {
		id := pending.Dequeue()
		rec := snap.Rooms[id]
		current := rooms[id]
		maze.rooms = append(maze.rooms, current)

		if got := current.Position(); got.X != rec.Position[0] || got.Y != rec.Position[1] {
			return nil, corrupt("room %q recorded at %v but links place it at %s", id, rec.Position, got)
		}

		for _, dir := range world.AllDirections() {
			otherID := rec.Neighbor(dir)
			if otherID == "" {
				continue
			}
			other, ok := rooms[otherID]
			if !ok {
				return nil, corrupt("room %q links %s to unknown room %q", id, dir, otherID)
			}
			if back := snap.Rooms[otherID].Neighbor(dir.Opposite()); back != id {
				return nil, corrupt("room %q links %s to %q without a link back", id, dir, otherID)
			}
			if err := current.Connect(other, dir); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrCorruptSnapshot, err)
			}
			if !visited.Has(otherID) {
				visited.Put(otherID)
				pending.Enqueue(otherID)
			}
		}
	}

	if visited.Size() != len(snap.Rooms) {
		return nil, corrupt("%d of %d rooms unreachable from spawn", len(snap.Rooms)-visited.Size(), len(snap.Rooms))
	}
	if err := checkPerfect(maze.rooms); err != nil {
		return nil, err
	}
	return maze, nil
}

// checkPerfect rejects rebuilt rooms that share a position, touch without
// a link, or contain a cycle
func checkPerfect(rooms []*world.Room) error {
	byPosition := make(map[world.Vector2]*world.Room, len(rooms))
	for _, r := range rooms {
		pos := r.Position()
		if other, dup := byPosition[pos]; dup {
			return corrupt("rooms %q and %q both at %s", other.ID, r.ID, pos)
		}
		byPosition[pos] = r
	}

	degrees := 0
	for _, r := range rooms {
		degrees += r.Degree()
		for i, pos := range r.Position().NSEWOffsets() {
			adjacent := byPosition[pos]
			dir := world.AllDirections()[i]
			if _, linked := r.Neighbor(dir); adjacent != nil && !linked {
				return corrupt("rooms %q and %q touch %s without a link", r.ID, adjacent.ID, dir)
			}
		}
	}
	if links := degrees / 2; links != len(rooms)-1 {
		return corrupt("%d links for %d rooms", links, len(rooms))
	}
	return nil
}
