// Package geometry provides the 2D math used by pointer hit-testing.
package geometry

// Vec2 is a 2D point or offset in world or local coordinates.
type Vec2 struct {
	X, Y float64
}

// V is a shorthand constructor for Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Transform places a shape in the world. Shapes only ever translate,
// so the inverse transform is a subtraction.
type Transform struct {
	Translation Vec2
}

// At creates a Transform at the given world position.
func At(x, y float64) Transform {
	return Transform{Translation: Vec2{X: x, Y: y}}
}

// ToLocal converts a world-space point into the shape's local frame.
func (t Transform) ToLocal(world Vec2) Vec2 {
	return world.Sub(t.Translation)
}

// ToWorld converts a local-frame point into world space.
func (t Transform) ToWorld(local Vec2) Vec2 {
	return local.Add(t.Translation)
}

// PointInRect reports whether a local-frame point lies within a rectangle
// centered on the origin with the given half extents. Bounds are inclusive.
func PointInRect(p, half Vec2) bool {
	return -half.X <= p.X && p.X <= half.X &&
		-half.Y <= p.Y && p.Y <= half.Y
}

// PointInTriangle reports whether a local-frame point lies strictly inside
// the triangle abc, using barycentric weights from signed sub-triangle areas.
// Points exactly on an edge are outside. Degenerate (zero-area) triangles
// contain nothing.
func PointInTriangle(p, a, b, c Vec2) bool {
	area := (b.Y-c.Y)*(a.X-c.X) + (c.X-b.X)*(a.Y-c.Y)
	if area == 0 {
		return false
	}
	invArea := 1 / area

	baryA := ((b.Y-c.Y)*(p.X-c.X) + (c.X-b.X)*(p.Y-c.Y)) * invArea
	baryB := ((c.Y-a.Y)*(p.X-c.X) + (a.X-c.X)*(p.Y-c.Y)) * invArea
	baryC := 1 - baryA - baryB

	return baryA > 0 && baryB > 0 && baryC > 0
}
