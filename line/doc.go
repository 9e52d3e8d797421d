// Package line is the 2D line/vector engine of lvgeom.
//
// 🚀 What is line?
//
//	Two scalar-in/scalar-out primitives over lines defined by two points:
//	  • Parallel    : the line offset by a signed perpendicular distance
//	  • Intersection: the crossing point of two infinite lines
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvgeom/line"
//
//	edge := line.Ln(0, 0, 10, 0)
//	inner := line.Parallel(edge, 5)               // {(0,-5) (10,-5)}
//	p := line.Intersection(edge, line.Ln(3, -1, 3, 1)) // (3, 0)
//	if !p.IsFinite() {
//	  // parallel or coincident lines
//	}
//
// Degenerate input is never reported as an error: a zero-length line passed
// to Parallel, or two parallel lines passed to Intersection, produce ±Inf or
// NaN coordinates per IEEE-754. Callers that need to special-case these test
// the result with Point.IsFinite.
//
// All arithmetic is float64. Products are rounded before they are summed so
// results do not depend on fused multiply-add.
package line
