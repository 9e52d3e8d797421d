// Package mat4 is the 4×4 matrix engine of lvgeom.
//
// 🚀 What is mat4?
//
//	A tiny, allocation-free kernel over fixed-size float32 matrices stored
//	row-major in a [16]float32 (golang.org/x/image/math/f32.Mat4):
//
//	  | m[0]  m[1]  m[2]  m[3]  |
//	  | m[4]  m[5]  m[6]  m[7]  |     element [r][c] lives at m[r*4+c]
//	  | m[8]  m[9]  m[10] m[11] |
//	  | m[12] m[13] m[14] m[15] |
//
// ✨ Key features:
//   - element-wise Add / Subtract / MultiplyScalar / DivideScalar
//   - Multiply and MultiplyChain (left fold from the identity)
//   - Determinant and Adjugate (inverse = adjugate / determinant)
//   - Transpose, Close (tolerance-based equality)
//   - ProjectVector2 / ProjectVector3 (+ batch forms) through an affine matrix
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvgeom/mat4"
//
//	m := mat4.MultiplyChain([]mat4.Mat4{
//	  mat4.Translate(10, 20, 0),
//	  mat4.RotateZ(math.Pi / 2),
//	})
//	p := mat4.ProjectVector2(m, f32.Vec2{1, 0}) // ≈ (10, 21)
//
// Semantics:
//
//   - Every operation is a pure function over values: inputs are never
//     mutated and every returned matrix is a fresh value. All functions are
//     safe for concurrent use.
//   - Numerically degenerate input (singular matrix used as divisor, s == 0
//     in DivideScalar) is NOT trapped: IEEE-754 Inf/NaN propagate. Invert is
//     the single convenience that reports ErrZeroDeterminant.
//   - Products are rounded to float32 before they are summed, so results do
//     not depend on whether the target fuses multiply-add.
//
// Performance:
//
//   - Time:   O(1) per matrix, O(n) for chains and batches
//   - Memory: O(1) per matrix, one output slice for batches
package mat4
