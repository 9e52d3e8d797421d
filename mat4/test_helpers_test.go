// SPDX-License-Identifier: MIT
// Package mat4_test contains test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures shared by the kernel tests.
//   - Keep all data finite and integer-valued where exact results are asserted.

package mat4_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvgeom/mat4"
	"github.com/stretchr/testify/require"
)

// tol is the absolute tolerance used for chained float32 arithmetic.
const tol = 1e-5

// fixtureA is a non-singular integer matrix; det(fixtureA) == -160.
var fixtureA = mat4.Mat4{
	2, 0, 1, 3,
	1, 4, 0, 2,
	0, 1, 3, 1,
	5, 2, 1, 1,
}

// fixtureAdjA is Adjugate(fixtureA), computed independently in exact arithmetic.
var fixtureAdjA = mat4.Mat4{
	-2, 14, 12, -34,
	28, -36, -8, -4,
	9, 17, -54, -7,
	-55, -15, 10, 25,
}

// fixtureDetA is Determinant(fixtureA).
const fixtureDetA float32 = -160

// fixtureB holds 1..16 row by row.
var fixtureB = mat4.Mat4{
	1, 2, 3, 4,
	5, 6, 7, 8,
	9, 10, 11, 12,
	13, 14, 15, 16,
}

// fixtureAB is fixtureA × fixtureB.
var fixtureAB = mat4.Mat4{
	50, 56, 62, 68,
	47, 54, 61, 68,
	45, 50, 55, 60,
	37, 46, 55, 64,
}

// fixtureSingular has two equal rows, so its determinant is exactly zero.
var fixtureSingular = mat4.Mat4{
	1, 2, 3, 4,
	1, 2, 3, 4,
	0, 1, 0, 0,
	0, 0, 1, 0,
}

// randomMat returns a matrix with entries uniformly drawn from [-1, 1).
// The generator is seeded by the caller for reproducibility.
func randomMat(rng *rand.Rand) mat4.Mat4 {
	var m mat4.Mat4
	for i := range m {
		m[i] = float32(rng.Float64()*2 - 1)
	}
	return m
}

// requireClose fails the test unless mat4.Close(want, got, eps) holds.
func requireClose(t testing.TB, want, got mat4.Mat4, eps float64) {
	t.Helper()
	require.Truef(t, mat4.Close(want, got, eps), "matrices differ by more than %g:\nwant %v\ngot  %v", eps, want, got)
}

// isNonFinite reports whether v is NaN or ±Inf.
func isNonFinite(v float32) bool {
	f := float64(v)
	return math.IsNaN(f) || math.IsInf(f, 0)
}
