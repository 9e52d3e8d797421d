package packed_test

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/katalvlaran/lvgeom/mat4"
	"github.com/katalvlaran/lvgeom/packed"
	"github.com/stretchr/testify/require"
)

// fixtureA is a well-conditioned matrix with det = -160.
var fixtureA = mat4.Mat4{
	2, 0, 1, 3,
	1, 4, 0, 2,
	0, 1, 3, 1,
	5, 2, 1, 1,
}

// fixtureB holds 1..16 row-major.
var fixtureB = mat4.Mat4{
	1, 2, 3, 4,
	5, 6, 7, 8,
	9, 10, 11, 12,
	13, 14, 15, 16,
}

// le is the codec used to build test blobs; kernels under test share its order.
var le = packed.NewCodec(packed.WithByteOrder(binary.LittleEndian))

// newKernel returns a little-endian kernel with extra options applied.
func newKernel(opts ...packed.Option) *packed.Kernel {
	return packed.NewKernel(append([]packed.Option{packed.WithByteOrder(binary.LittleEndian)}, opts...)...)
}

// blob encodes m little-endian.
func blob(m mat4.Mat4) []byte { return le.EncodeMat4(m) }

// decode decodes a little-endian matrix blob, failing the test on error.
func decode(t testing.TB, b []byte) mat4.Mat4 {
	t.Helper()
	m, err := le.DecodeMat4(b)
	require.NoError(t, err)

	return m
}

// nanMatrix returns the identity with one NaN lane.
func nanMatrix() mat4.Mat4 {
	m := mat4.Identity()
	m[5] = float32(math.NaN())

	return m
}

func inf() float64 { return math.Inf(1) }
