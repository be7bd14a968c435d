package world

import (
	"errors"
	"fmt"
)

// Errors describing a broken maze invariant
var (
	ErrNilRoom          = errors.New("nil room")
	ErrInvalidDirection = errors.New("invalid direction")
	ErrSelfLink         = errors.New("room cannot link to itself")
	ErrLinkConflict     = errors.New("neighbour slot already linked to another room")
	ErrPositionConflict = errors.New("room already placed at a different position")
	ErrOccupied         = errors.New("position already occupied")
)

// InvariantError reports a link or placement that would break the maze.
// Reaching one during generation means the algorithm is wrong.
type InvariantError struct {
	Err       error
	Room      RoomID
	Other     RoomID
	Direction Direction
	Position  Vector2
}

func (e *InvariantError) Error() string {
	if e.Room == NoRoom && e.Other == NoRoom {
		return fmt.Sprintf("maze invariant: %v at %s", e.Err, e.Position)
	}
	return fmt.Sprintf("maze invariant: %v: room %s %s to %s at %s", e.Err, e.Room, e.Direction, e.Other, e.Position)
}

func (e *InvariantError) Unwrap() error {
	return e.Err
}
