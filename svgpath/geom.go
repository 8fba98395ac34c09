package svgpath

import "math"

// This file implements the point and polar vector algebra
// used to compute the bezier control points.

// Point is a position in the drawing plane.
type Point struct {
	X, Y float32
}

// Pt is a convenience function to create a Point.
func Pt(x, y float32) Point { return Point{X: x, Y: y} }

// Add returns the sum of two points.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Sub returns the difference of two points.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Scale multiplies both coordinates by r.
func (p Point) Scale(r float32) Point { return Point{X: p.X * r, Y: p.Y * r} }

// Vector is the polar form of the offset between two points.
// Angle is in radians, in the range of math.Atan2.
type Vector struct {
	Value float32 // magnitude, may be 0
	Angle float32
}

// NewVector returns the vector going from `from` to `to`.
// A zero length segment yields the zero vector (Value and Angle are 0),
// following the atan2(0, 0) = 0 convention.
func NewVector(from, to Point) Vector {
	dx, dy := float64(to.X-from.X), float64(to.Y-from.Y)
	return Vector{
		Value: float32(math.Sqrt(dx*dx + dy*dy)),
		Angle: float32(math.Atan2(dy, dx)),
	}
}

// Point converts v back to a cartesian offset.
func (v Vector) Point() Point {
	a, r := float64(v.Angle), float64(v.Value)
	return Point{X: float32(math.Cos(a) * r), Y: float32(math.Sin(a) * r)}
}

// Scale multiplies the magnitude of v by r.
func (v Vector) Scale(r float32) Vector {
	v.Value *= r
	return v
}

// Control projects origin along v. It is used for every bezier
// control point: the zero vector leaves origin unchanged.
func Control(origin Point, v Vector) Point {
	return origin.Add(v.Point())
}
