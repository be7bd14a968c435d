package world

import (
	"fmt"
	"math"
)

// Vector2 is an integer grid coordinate.
// It is comparable, so it can key maps and sets directly.
type Vector2 struct {
	X int
	Y int
}

// Zero returns the origin
func Zero() Vector2 {
	return Vector2{}
}

// Add returns v + o
func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o
func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{v.X - o.X, v.Y - o.Y}
}

// Mul multiplies component-wise
func (v Vector2) Mul(o Vector2) Vector2 {
	return Vector2{v.X * o.X, v.Y * o.Y}
}

// Scale multiplies both components by k
func (v Vector2) Scale(k int) Vector2 {
	return Vector2{v.X * k, v.Y * k}
}

// Div divides component-wise, rounding towards negative infinity.
// A zero component in o panics, as integer division does.
func (v Vector2) Div(o Vector2) Vector2 {
	return Vector2{floorDiv(v.X, o.X), floorDiv(v.Y, o.Y)}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Equal reports whether v and o are the same point
func (v Vector2) Equal(o Vector2) bool {
	return v == o
}

// DistanceSquared returns the squared Euclidean distance to o
func (v Vector2) DistanceSquared(o Vector2) int {
	dx := v.X - o.X
	dy := v.Y - o.Y
	return dx*dx + dy*dy
}

// Distance returns the Euclidean distance to o
func (v Vector2) Distance(o Vector2) float64 {
	return math.Sqrt(float64(v.DistanceSquared(o)))
}

// DistanceGreaterThan reports whether the distance to o exceeds threshold.
// The comparison is done on squared integers, so no rounding is involved.
func (v Vector2) DistanceGreaterThan(o Vector2, threshold int) bool {
	return v.DistanceSquared(o) > threshold*threshold
}

// NSEWOffsets returns the four cardinal neighbours of v in
// North, South, East, West order.
func (v Vector2) NSEWOffsets() [directionCount]Vector2 {
	return [directionCount]Vector2{
		v.Add(North.Offset()),
		v.Add(South.Offset()),
		v.Add(East.Offset()),
		v.Add(West.Offset()),
	}
}

// String returns "(x, y)"
func (v Vector2) String() string {
	return fmt.Sprintf("(%d, %d)", v.X, v.Y)
}
