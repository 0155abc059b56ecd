// Package entity provides the hoverable-shape domain types: shape variants
// and the per-shape hover state with its one-frame edge flags.
package entity

import "github.com/smolyneaux/simon/internal/domain/geometry"

// ShapeKind discriminates the shape variants.
type ShapeKind int

const (
	ShapeRect ShapeKind = iota
	ShapeTriangle
)

// Shape is a hoverable region in a shape-local coordinate frame.
// Rectangles are centered on the origin and described by half extents;
// triangles by their three vertices.
type Shape struct {
	Kind ShapeKind

	// Rectangle half extents.
	Half geometry.Vec2

	// Triangle vertices.
	A, B, C geometry.Vec2
}

// RectShape creates a rectangle shape from full width and height.
func RectShape(w, h float64) Shape {
	return Shape{Kind: ShapeRect, Half: geometry.V(w/2, h/2)}
}

// TriangleShape creates a triangle shape from three local-frame vertices.
func TriangleShape(a, b, c geometry.Vec2) Shape {
	return Shape{Kind: ShapeTriangle, A: a, B: b, C: c}
}

// Contains reports whether a local-frame point hits the shape.
// Rectangle bounds are inclusive; triangle edges are exclusive.
func (s Shape) Contains(local geometry.Vec2) bool {
	switch s.Kind {
	case ShapeRect:
		return geometry.PointInRect(local, s.Half)
	case ShapeTriangle:
		return geometry.PointInTriangle(local, s.A, s.B, s.C)
	default:
		return false
	}
}
