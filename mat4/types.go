// SPDX-License-Identifier: MIT

// Package mat4: domain types and row-major indexing helpers.
package mat4

import "golang.org/x/image/math/f32"

// Size is the number of elements in a Mat4.
const Size = 16

// Dim is the row (and column) count of a Mat4.
const Dim = 4

// Mat4 is a 4×4 float32 matrix in row-major order: m[4*r + c] is the element
// in the r'th row and c'th column. It is an alias of f32.Mat4 so values move
// freely between lvgeom and golang.org/x/image consumers without conversion.
type Mat4 = f32.Mat4

// Index returns the linear offset of element [r][c].
// Complexity: O(1). Callers pass 0 ≤ r,c < Dim; out-of-range values are not checked.
func Index(r, c int) int {
	return r*Dim + c
}

// At returns element [r][c] of m.
// Panics (index out of range) if r or c is outside 0..3, like any array access.
func At(m Mat4, r, c int) float32 {
	return m[Index(r, c)]
}
