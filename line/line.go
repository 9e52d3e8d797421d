package line

import "math"

// Parallel returns the line parallel to l at signed perpendicular distance w.
//
// Algorithm:
//  1. d = P0 − P1.
//  2. d = d / |d|.
//  3. rotate a quarter turn: (x, y) → (−y, x).
//  4. add w·d to both endpoints.
//
// For a line running in +X, positive w moves it towards −Y.
// A zero-length line yields NaN coordinates (0/0), not an error.
//
// Complexity: O(1).
func Parallel(l Line, w float64) Line {
	x := l.P0.X - l.P1.X
	y := l.P0.Y - l.P1.Y

	d := math.Sqrt(float64(x*x) + float64(y*y))

	x = x / d
	y = y / d

	x, y = -y, x

	return Line{
		P0: Point{X: l.P0.X + float64(w*x), Y: l.P0.Y + float64(w*y)},
		P1: Point{X: l.P1.X + float64(w*x), Y: l.P1.Y + float64(w*y)},
	}
}

// Intersection returns the point where the infinite lines a and b cross.
//
//	d  = (x0−x1)(y2−y3) − (y0−y1)(x2−x3)
//	d0 = x0·y1 − y0·x1
//	d1 = x2·y3 − y2·x3
//	x  = (d0·(x2−x3) − d1·(x0−x1)) / d
//	y  = (d0·(y2−y3) − d1·(y0−y1)) / d
//
// Parallel or coincident lines give d == 0 and therefore ±Inf/NaN
// coordinates; check the result with IsFinite.
//
// Complexity: O(1).
func Intersection(a, b Line) Point {
	x0, y0, x1, y1 := a.P0.X, a.P0.Y, a.P1.X, a.P1.Y
	x2, y2, x3, y3 := b.P0.X, b.P0.Y, b.P1.X, b.P1.Y

	d := float64((x0-x1)*(y2-y3)) - float64((y0-y1)*(x2-x3))
	d0 := float64(x0*y1) - float64(y0*x1)
	d1 := float64(x2*y3) - float64(y2*x3)

	return Point{
		X: (float64(d0*(x2-x3)) - float64(d1*(x0-x1))) / d,
		Y: (float64(d0*(y2-y3)) - float64(d1*(y0-y1))) / d,
	}
}
