// Package export converts a generated maze into a plain data snapshot that
// can be written as JSON or persisted, and rebuilds rooms from one.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"

	"labyrinth/pkg/engine/world"
	"labyrinth/pkg/game/generator"
)

// ErrCorruptSnapshot is returned when a snapshot does not describe a maze
var ErrCorruptSnapshot = errors.New("corrupt maze snapshot")

// Source is what Take reads from. *generator.Graph satisfies it.
type Source interface {
	LastResult() (generator.Result, error)
	Rooms() []*world.Room
	Spawn() *world.Room
}

// RoomRecord is the exported form of one room. Unlinked directions are
// left empty.
type RoomRecord struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Position   [2]int   `json:"position"`
	North      string   `json:"north,omitempty"`
	South      string   `json:"south,omitempty"`
	East       string   `json:"east,omitempty"`
	West       string   `json:"west,omitempty"`
	Players    []string `json:"players"`
	ItemReward *string  `json:"itemReward"`
}

// Neighbor returns the id recorded for dir
func (r RoomRecord) Neighbor(dir world.Direction) string {
	switch dir {
	case world.North:
		return r.North
	case world.South:
		return r.South
	case world.East:
		return r.East
	case world.West:
		return r.West
	default:
		return ""
	}
}

func (r *RoomRecord) setNeighbor(dir world.Direction, id string) {
	switch dir {
	case world.North:
		r.North = id
	case world.South:
		r.South = id
	case world.East:
		r.East = id
	case world.West:
		r.West = id
	}
}

// Snapshot is a complete generated maze
type Snapshot struct {
	Seed            int64                 `json:"seed"`
	RoomLimit       int                   `json:"roomLimit"`
	RoomCount       int                   `json:"roomCount"`
	Status          string                `json:"status"`
	SpawnRoom       string                `json:"spawnRoom"`
	RoomCoordinates [][2]int              `json:"roomCoordinates"`
	Rooms           map[string]RoomRecord `json:"rooms"`
}

// Take snapshots the most recent generation of src
func Take(src Source) (Snapshot, error) {
	result, err := src.LastResult()
	if err != nil {
		return Snapshot{}, err
	}

	rooms := src.Rooms()
	snap := Snapshot{
		Seed:            result.Seed,
		RoomLimit:       result.RoomLimit,
		RoomCount:       len(rooms),
		Status:          result.Status.String(),
		RoomCoordinates: make([][2]int, 0, len(rooms)),
		Rooms:           make(map[string]RoomRecord, len(rooms)),
	}
	if spawn := src.Spawn(); spawn != nil {
		snap.SpawnRoom = string(spawn.ID)
	}

	for _, r := range rooms {
		rec := Record(r)
		snap.Rooms[rec.ID] = rec
		snap.RoomCoordinates = append(snap.RoomCoordinates, rec.Position)
	}
	sortCoordinates(snap.RoomCoordinates)
	return snap, nil
}

// Record exports a single room
func Record(r *world.Room) RoomRecord {
	pos := r.Position()
	rec := RoomRecord{
		ID:       string(r.ID),
		Name:     r.Name,
		Position: [2]int{pos.X, pos.Y},
		Players:  []string{},
	}
	for _, dir := range world.AllDirections() {
		if id, ok := r.Neighbor(dir); ok {
			rec.setNeighbor(dir, string(id))
		}
	}
	r.Occupants.Each(func(p *world.Player) {
		rec.Players = append(rec.Players, p.Name)
	})
	slices.Sort(rec.Players)
	if r.ItemReward != nil {
		name := r.ItemReward.Name
		rec.ItemReward = &name
	}
	return rec
}

func sortCoordinates(coords [][2]int) {
	slices.SortFunc(coords, func(a, b [2]int) int {
		if a[0] != b[0] {
			return a[0] - b[0]
		}
		return a[1] - b[1]
	})
}

// WriteJSON writes snap as indented JSON
func WriteJSON(w io.Writer, snap Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("encode maze snapshot: %w", err)
	}
	return nil
}

// ReadJSON decodes a snapshot written by WriteJSON
func ReadJSON(r io.Reader) (Snapshot, error) {
	var snap Snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return Snapshot{}, fmt.Errorf("decode maze snapshot: %w", err)
	}
	return snap, nil
}
