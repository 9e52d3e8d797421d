// SPDX-License-Identifier: MIT
// Package: mat4
//
// Purpose:
//   - Element-wise kernels: Close, Add, Subtract, MultiplyScalar, DivideScalar.
//
// Determinism & Performance:
//   - Flat 0..15 loops over the row-major buffer; no allocations.
//   - Inputs are received by value; the result is a fresh Mat4.

package mat4

import "math"

// Close reports whether a and b are equal within tolerance:
// |a[i] - b[i]| ≤ |tolerance| for all 16 positions.
//
// Behavior highlights:
//   - The sign of tolerance is irrelevant.
//   - The difference is taken in float32 and compared in float64.
//
// Notes:
//   - Only a strictly greater difference rejects. A NaN difference is never
//     greater than t, so NaN elements do not make Close return false; check
//     finiteness separately if that matters.
//
// Complexity: O(1).
func Close(a, b Mat4, tolerance float64) bool {
	t := math.Abs(tolerance)
	for i := 0; i < Size; i++ {
		if math.Abs(float64(a[i]-b[i])) > t {
			return false
		}
	}
	return true
}

// Add computes the element-wise sum c[i] = a[i] + b[i].
// Complexity: O(1).
func Add(a, b Mat4) Mat4 {
	var c Mat4
	for i := 0; i < Size; i++ {
		c[i] = a[i] + b[i]
	}
	return c
}

// Subtract computes the element-wise difference c[i] = a[i] - b[i].
// Complexity: O(1).
func Subtract(a, b Mat4) Mat4 {
	var c Mat4
	for i := 0; i < Size; i++ {
		c[i] = a[i] - b[i]
	}
	return c
}

// MultiplyScalar returns c[i] = a[i] * s.
// Complexity: O(1).
func MultiplyScalar(a Mat4, s float32) Mat4 {
	var c Mat4
	for i := 0; i < Size; i++ {
		c[i] = a[i] * s
	}
	return c
}

// DivideScalar returns c[i] = a[i] / s.
// s == 0 is not trapped: elements become ±Inf or NaN.
// Complexity: O(1).
func DivideScalar(a Mat4, s float32) Mat4 {
	var c Mat4
	for i := 0; i < Size; i++ {
		c[i] = a[i] / s
	}
	return c
}
