package world

import (
	"github.com/zyedidia/generic/mapset"
)

// ItemSet is a set of items
type ItemSet = mapset.Set[*Item]

// PlayerSet is a set of players occupying a room
type PlayerSet = mapset.Set[*Player]

// Item represents a collectible item, such as a room reward
type Item struct {
	Name string
}

// NewItem creates a new item with the given name
func NewItem(name string) *Item {
	return &Item{Name: name}
}

// Player is an occupant of a room. Generation never touches players;
// they exist so gameplay code has somewhere to put them.
type Player struct {
	Name string
}

// NewPlayer creates a new player with the given name
func NewPlayer(name string) *Player {
	return &Player{Name: name}
}
