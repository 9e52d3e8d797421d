package line

import "math"

// Point represents a 2D point or vector.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// IsFinite reports whether both coordinates are neither NaN nor ±Inf.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Line is the infinite line through P0 and P1.
// P0 and P1 must differ; equal points leave the direction undefined.
type Line struct {
	P0, P1 Point
}

// Ln is a convenience function to create a Line from raw coordinates.
func Ln(x0, y0, x1, y1 float64) Line {
	return Line{P0: Point{X: x0, Y: y0}, P1: Point{X: x1, Y: y1}}
}
