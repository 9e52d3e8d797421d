// SPDX-License-Identifier: MIT
// Package: mat4
//
// Purpose:
//   - Project points through a homogeneous/affine matrix.
//
// Design:
//   - The point is embedded as the translation column of an otherwise
//     identity matrix, the full 4×4 product m × T is taken, and column 3 of
//     the result is read back. This is the same as applying m to (x, y, 0, 1)
//     or (x, y, z, 1) but keeps 2D and 3D on one code path through mul.
//   - No perspective divide is performed; w is ignored.

package mat4

import "golang.org/x/image/math/f32"

// ProjectVector2 applies m to the point p and returns the projected point.
//
//	T = | 1 0 0 x |      result = ( (m×T)[0][3], (m×T)[1][3] )
//	    | 0 1 0 y |
//	    | 0 0 1 0 |
//	    | 0 0 0 1 |
//
// Complexity: O(1).
func ProjectVector2(m Mat4, p f32.Vec2) f32.Vec2 {
	t := Mat4{
		1, 0, 0, p[0],
		0, 1, 0, p[1],
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
	var out Mat4
	mul(&m, &t, &out)

	return f32.Vec2{out[3], out[7]}
}

// ProjectVector2Batch applies ProjectVector2 to every point in ps.
// The result is a freshly allocated slice with the same length and order;
// ps is not modified.
//
// Complexity: O(n) time, O(n) space.
func ProjectVector2Batch(m Mat4, ps []f32.Vec2) []f32.Vec2 {
	out := make([]f32.Vec2, len(ps))
	for i, p := range ps {
		out[i] = ProjectVector2(m, p)
	}
	return out
}

// ProjectVector3 is the 3D analogue of ProjectVector2: z goes into row 2 of
// the translation column and (m×T)[2][3] is returned as the new z.
//
// Complexity: O(1).
func ProjectVector3(m Mat4, p f32.Vec3) f32.Vec3 {
	t := Mat4{
		1, 0, 0, p[0],
		0, 1, 0, p[1],
		0, 0, 1, p[2],
		0, 0, 0, 1,
	}
	var out Mat4
	mul(&m, &t, &out)

	return f32.Vec3{out[3], out[7], out[11]}
}

// ProjectVector3Batch applies ProjectVector3 to every point in ps,
// preserving order and count in a fresh slice.
//
// Complexity: O(n) time, O(n) space.
func ProjectVector3Batch(m Mat4, ps []f32.Vec3) []f32.Vec3 {
	out := make([]f32.Vec3, len(ps))
	for i, p := range ps {
		out[i] = ProjectVector3(m, p)
	}
	return out
}
