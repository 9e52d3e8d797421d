// SPDX-License-Identifier: MIT
// Package: mat4
//
// Purpose:
//   - Provide the identity constant and the small set of builders callers use
//     to create transforms (translation, scale, rotation about Z).
//
// Notes:
//   - Translation lives in column 3 of rows 0..2. ProjectVector2/3 rely on the
//     same convention, so Translate(x, y, 0) moves the origin to (x, y).

package mat4

import "math"

// identity is the single source of truth for the identity matrix.
// It is never handed out by reference; Identity returns a copy.
var identity = Mat4{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 1, 0,
	0, 0, 0, 1,
}

// Identity returns the 4×4 identity matrix.
func Identity() Mat4 {
	return identity
}

// Translate creates a translation matrix.
func Translate(x, y, z float32) Mat4 {
	return Mat4{
		1, 0, 0, x,
		0, 1, 0, y,
		0, 0, 1, z,
		0, 0, 0, 1,
	}
}

// Scale creates a scaling matrix.
func Scale(x, y, z float32) Mat4 {
	return Mat4{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	}
}

// RotateZ creates a rotation matrix about the Z axis (angle in radians).
// Positive angles turn +X towards +Y.
func RotateZ(radians float64) Mat4 {
	cos := float32(math.Cos(radians))
	sin := float32(math.Sin(radians))
	return Mat4{
		cos, -sin, 0, 0,
		sin, cos, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}
