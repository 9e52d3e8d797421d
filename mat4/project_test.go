// SPDX-License-Identifier: MIT
// Package mat4_test contains unit tests for point projection.
package mat4_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvgeom/mat4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/f32"
)

// TestProjectVector2_Translation projects the origin under a pure translation.
func TestProjectVector2_Translation(t *testing.T) {
	t.Parallel()

	got := mat4.ProjectVector2(mat4.Translate(3, 4, 0), f32.Vec2{0, 0})
	assert.Equal(t, f32.Vec2{3, 4}, got)

	got = mat4.ProjectVector2(mat4.Translate(3, 4, 0), f32.Vec2{-1, 2})
	assert.Equal(t, f32.Vec2{2, 6}, got)
}

// TestProjectVector2_Identity leaves points unchanged.
func TestProjectVector2_Identity(t *testing.T) {
	t.Parallel()

	for _, p := range []f32.Vec2{{0, 0}, {1.5, -2.25}, {1e6, -1e6}} {
		assert.Equal(t, p, mat4.ProjectVector2(mat4.Identity(), p))
	}
}

// TestProjectVector2_Rotation turns +X into +Y under a quarter turn.
func TestProjectVector2_Rotation(t *testing.T) {
	t.Parallel()

	got := mat4.ProjectVector2(mat4.RotateZ(math.Pi/2), f32.Vec2{1, 0})
	assert.InDelta(t, 0, got[0], 1e-6)
	assert.InDelta(t, 1, got[1], 1e-6)
}

// TestProjectVector2_MatchesAffineApply compares with the direct formula
// m·(x, y, 0, 1) on random affine matrices.
func TestProjectVector2_MatchesAffineApply(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 100; i++ {
		m := randomMat(rng)
		p := f32.Vec2{float32(rng.Float64()*10 - 5), float32(rng.Float64()*10 - 5)}
		got := mat4.ProjectVector2(m, p)

		wantX := float64(m[0])*float64(p[0]) + float64(m[1])*float64(p[1]) + float64(m[3])
		wantY := float64(m[4])*float64(p[0]) + float64(m[5])*float64(p[1]) + float64(m[7])
		require.InDelta(t, wantX, float64(got[0]), 1e-4, "iteration %d", i)
		require.InDelta(t, wantY, float64(got[1]), 1e-4, "iteration %d", i)
	}
}

// TestProjectVector2Batch_OrderAndCount checks that batch projection equals
// independent single projections, in order.
func TestProjectVector2Batch_OrderAndCount(t *testing.T) {
	t.Parallel()

	m := mat4.MultiplyChain([]mat4.Mat4{mat4.Translate(5, -5, 0), mat4.RotateZ(0.3), mat4.Scale(2, 3, 1)})
	in := []f32.Vec2{{0, 0}, {1, 0}, {0, 1}, {-4, 2.5}, {100, -100}}
	snapshot := append([]f32.Vec2(nil), in...)

	out := mat4.ProjectVector2Batch(m, in)
	require.Len(t, out, len(in))
	for i, p := range in {
		assert.Equal(t, mat4.ProjectVector2(m, p), out[i], "index %d", i)
	}
	assert.Equal(t, snapshot, in, "input must not be modified")

	out[0] = f32.Vec2{99, 99}
	assert.Equal(t, snapshot[0], in[0], "output must not alias input")
}

// TestProjectVector2Batch_Empty returns an empty, non-nil slice.
func TestProjectVector2Batch_Empty(t *testing.T) {
	t.Parallel()

	out := mat4.ProjectVector2Batch(mat4.Identity(), nil)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

// TestProjectVector3 covers translation and batch order in 3D.
func TestProjectVector3(t *testing.T) {
	t.Parallel()

	m := mat4.Translate(1, 2, 3)
	assert.Equal(t, f32.Vec3{1, 2, 3}, mat4.ProjectVector3(m, f32.Vec3{}))
	assert.Equal(t, f32.Vec3{2, 4, 6}, mat4.ProjectVector3(m, f32.Vec3{1, 2, 3}))

	scaled := mat4.ProjectVector3(mat4.Scale(2, 3, 4), f32.Vec3{1, 1, 1})
	assert.Equal(t, f32.Vec3{2, 3, 4}, scaled)

	in := []f32.Vec3{{0, 0, 0}, {1, 1, 1}, {-1, 0, 2}}
	out := mat4.ProjectVector3Batch(m, in)
	require.Len(t, out, len(in))
	for i, p := range in {
		assert.Equal(t, mat4.ProjectVector3(m, p), out[i])
	}
}
