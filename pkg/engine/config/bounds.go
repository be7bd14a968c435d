package config

import (
	"fmt"
	"strconv"
	"strings"

	"labyrinth/pkg/engine/world"
)

// ParseBounds parses "minX,minY,maxX,maxY" into an inclusive rectangle
func ParseBounds(s string) (world.Rect, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return world.Rect{}, fmt.Errorf("bounds %q: want minX,minY,maxX,maxY", s)
	}
	var v [4]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return world.Rect{}, fmt.Errorf("bounds %q: %w", s, err)
		}
		v[i] = n
	}
	if v[0] > v[2] || v[1] > v[3] {
		return world.Rect{}, fmt.Errorf("bounds %q: min exceeds max", s)
	}
	return world.NewRect(world.Vector2{X: v[0], Y: v[1]}, world.Vector2{X: v[2], Y: v[3]}), nil
}
