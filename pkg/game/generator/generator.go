package generator

import (
	"time"
)

// MazeGenerator is an interface for maze generation algorithms
type MazeGenerator interface {
	Generate(seed int64) Result
	Name() string
}

// DefaultRoomLimit is the room count used when none is configured
const DefaultRoomLimit = 100

// Room names given to generated rooms
const (
	SpawnRoomName  = "Spawn Area"
	roomNameFormat = "Room %d"
)

var _ MazeGenerator = (*Graph)(nil)

// TimeSeed returns a time-derived seed for runs that need not be reproducible
func TimeSeed() int64 {
	return time.Now().UnixNano()
}
