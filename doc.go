// Package lvgeom is a small, allocation-light geometry kernel: packed 4×4
// float32 matrices and 2D line helpers for drawing and imaging hosts.
//
// 🚀 What is lvgeom?
//
//	A pure-Go library of stateless, reentrant functions:
//		• Matrix engine: identity, add/subtract, scalar multiply/divide,
//		  product and left-to-right chain, determinant, transpose, adjugate
//		• Projection: map 2D and 3D points through a matrix, singly or in batch
//		• Line engine: perpendicular offset, intersection of infinite lines
//		• Binary boundary: 64-byte matrix blobs, packed point streams,
//		  scalar normalization and malformed-argument rejection
//
// ✨ Why choose lvgeom?
//
//   - Bit-stable arithmetic: fixed evaluation order, no fused multiply-add
//   - Degeneracy is data: singular matrices and parallel lines yield Inf/NaN,
//     never a panic
//   - Value semantics: inputs are never modified; every result is fresh
//   - Safe for concurrent use: no shared mutable state
//
// Everything is organized under three subpackages:
//
//	mat4/  : row-major 4×4 float32 matrices and point projection
//	line/  : 2D lines in float64: Parallel, Intersection
//	packed/: byte-blob codec and Kernel facade with error reporting
//
// Quick example (translate, then scale):
//
//	m := mat4.MultiplyChain([]mat4.Mat4{
//	    mat4.Translate(10, 20, 0),
//	    mat4.Scale(2, 2, 1),
//	})
//	p := mat4.ProjectVector2(m, f32.Vec2{1, 1}) // (12, 22)
//
//	go get github.com/katalvlaran/lvgeom
package lvgeom
