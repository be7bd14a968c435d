package generator

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRoomLimit is returned for a room limit below one
	ErrInvalidRoomLimit = errors.New("room limit must be positive")
	// ErrBoundsExcludeSpawn is returned for bounds that leave out the origin
	ErrBoundsExcludeSpawn = errors.New("bounds must contain the spawn position")
	// ErrNotGenerated is returned when the graph is read before Generate ran
	ErrNotGenerated = errors.New("maze has not been generated")
	// ErrInvalidMaze is returned by Validate for a graph that is not a perfect maze
	ErrInvalidMaze = errors.New("invalid maze")
)

// ConfigError reports a bad construction parameter
type ConfigError struct {
	Field string
	Value any
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config %s=%v: %v", e.Field, e.Value, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func invalidMaze(format string, a ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidMaze, fmt.Sprintf(format, a...))
}
