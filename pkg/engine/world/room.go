// Package world provides the grid primitives the maze is built from:
// coordinates, cardinal directions and rooms linked to their neighbours.
package world

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/zyedidia/generic/mapset"
)

// RoomID identifies a room. The empty id means "no room".
type RoomID string

// NoRoom is the id stored in an unlinked neighbour slot
const NoRoom RoomID = ""

// NewRoomID returns a fresh random room id
func NewRoomID() RoomID {
	return RoomID(uuid.NewString())
}

// Room is a single maze node.
// Neighbour links are stored as ids, never as pointers; the owner of the
// rooms resolves them.
type Room struct {
	ID   RoomID
	Name string

	position  Vector2
	placed    bool
	neighbors [directionCount]RoomID

	// Gameplay payload, initialised empty and never touched by generation
	Occupants  PlayerSet
	ItemReward *Item
}

// NewRoom creates an unlinked room at the origin with a random id
func NewRoom(name string) *Room {
	return NewRoomWithID(NewRoomID(), name)
}

// NewRoomWithID creates an unlinked room at the origin with the given id
func NewRoomWithID(id RoomID, name string) *Room {
	return &Room{
		ID:        id,
		Name:      name,
		Occupants: mapset.New[*Player](),
	}
}

// Position returns the room's grid position
func (r *Room) Position() Vector2 {
	return r.position
}

// Placed returns true once the room's position is fixed
func (r *Room) Placed() bool {
	return r.placed
}

// Place fixes the room at its current position. Rooms are placed by their
// first link; a room that anchors a maze, like the spawn room, is placed
// before it has any.
func (r *Room) Place() {
	r.placed = true
}

// Neighbor returns the id of the room linked in dir, if any
func (r *Room) Neighbor(dir Direction) (RoomID, bool) {
	if r == nil || !dir.IsValid() {
		return NoRoom, false
	}
	id := r.neighbors[dir]
	return id, id != NoRoom
}

// Degree returns the number of linked neighbours
func (r *Room) Degree() int {
	n := 0
	for _, id := range r.neighbors {
		if id != NoRoom {
			n++
		}
	}
	return n
}

// ConnectedDirections returns the linked directions in fixed order
func (r *Room) ConnectedDirections() []Direction {
	var dirs []Direction
	for _, dir := range AllDirections() {
		if r.neighbors[dir] != NoRoom {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

// Connect links r to other in direction dir and the reverse link from other
// back to r. If other is not placed yet it is moved to r's position plus the
// direction offset; a placed room never moves. Both rooms are placed
// afterwards.
//
// The forward link is set first and the reciprocal link second. Nothing is
// modified when an *InvariantError is returned.
func (r *Room) Connect(other *Room, dir Direction) error {
	if r == nil || other == nil {
		return &InvariantError{Err: ErrNilRoom, Direction: dir}
	}
	target := r.position.Add(dir.Offset())
	fail := func(err error) error {
		return &InvariantError{Err: err, Room: r.ID, Other: other.ID, Direction: dir, Position: target}
	}

	if !dir.IsValid() {
		return fail(ErrInvalidDirection)
	}
	if r == other || r.ID == other.ID {
		return fail(ErrSelfLink)
	}

	back := dir.Opposite()
	if current := r.neighbors[dir]; current != NoRoom && current != other.ID {
		return fail(ErrLinkConflict)
	}
	if current := other.neighbors[back]; current != NoRoom && current != r.ID {
		return fail(ErrLinkConflict)
	}
	if other.placed && other.position != target {
		return fail(ErrPositionConflict)
	}

	r.neighbors[dir] = other.ID
	r.placed = true
	if !other.placed {
		other.position = target
		other.placed = true
	}
	if other.neighbors[back] != r.ID {
		other.neighbors[back] = r.ID
	}
	return nil
}

// String describes the room and how many rooms it is connected to
func (r *Room) String() string {
	count := r.Degree()
	noun := "rooms"
	if count == 1 {
		noun = "room"
	}
	return fmt.Sprintf("Room: %s - connected to %d %s", r.Name, count, noun)
}
