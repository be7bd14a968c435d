package world

// Rect is an inclusive axis-aligned box of grid cells
type Rect struct {
	Min Vector2
	Max Vector2
}

// NewRect returns the rect spanning both corners in any order
func NewRect(a, b Vector2) Rect {
	return Rect{
		Min: Vector2{min(a.X, b.X), min(a.Y, b.Y)},
		Max: Vector2{max(a.X, b.X), max(a.Y, b.Y)},
	}
}

// BoundingRect returns the smallest rect containing every point.
// ok is false when points is empty.
func BoundingRect(points []Vector2) (r Rect, ok bool) {
	if len(points) == 0 {
		return Rect{}, false
	}
	r = Rect{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		r = r.Extend(p)
	}
	return r, true
}

// Extend returns r grown to include p
func (r Rect) Extend(p Vector2) Rect {
	return Rect{
		Min: Vector2{min(r.Min.X, p.X), min(r.Min.Y, p.Y)},
		Max: Vector2{max(r.Max.X, p.X), max(r.Max.Y, p.Y)},
	}
}

// Contains returns true if p lies inside r
func (r Rect) Contains(p Vector2) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Width returns the number of columns in r
func (r Rect) Width() int {
	return r.Max.X - r.Min.X + 1
}

// Height returns the number of rows in r
func (r Rect) Height() int {
	return r.Max.Y - r.Min.Y + 1
}

// Area returns the number of cells in r
func (r Rect) Area() int {
	return r.Width() * r.Height()
}
