// SPDX-License-Identifier: MIT

package packed

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/katalvlaran/lvgeom/mat4"
	"golang.org/x/image/math/f32"
)

const (
	// laneBytes is the size of one float32 lane.
	laneBytes = 4

	// Mat4Bytes is the exact size of a packed matrix blob.
	Mat4Bytes = mat4.Size * laneBytes

	// Vec2Bytes is the size of one packed (x, y) point.
	Vec2Bytes = 2 * laneBytes
)

// Codec converts between packed blobs and kernel values.
// A Codec is immutable after construction and safe for concurrent use.
type Codec struct {
	order          binary.ByteOrder
	validateNaNInf bool
}

// NewCodec returns a Codec configured by opts.
func NewCodec(opts ...Option) *Codec {
	o := gatherOptions(opts...)

	return &Codec{order: o.order, validateNaNInf: o.validateNaNInf}
}

// ByteOrder reports the lane byte order in use.
func (c *Codec) ByteOrder() binary.ByteOrder { return c.order }

// DecodeMat4 reads exactly Mat4Bytes bytes as a row-major matrix.
// Returns ErrNilArgument for a nil blob, ErrBadLength for any other size,
// ErrNaNInf in strict mode.
func (c *Codec) DecodeMat4(b []byte) (mat4.Mat4, error) {
	var m mat4.Mat4
	if b == nil {
		return m, ErrNilArgument
	}
	if len(b) != Mat4Bytes {
		return m, fmt.Errorf("%w: got %d bytes, want %d", ErrBadLength, len(b), Mat4Bytes)
	}
	for i := range m {
		m[i] = math.Float32frombits(c.order.Uint32(b[i*laneBytes:]))
	}
	if c.validateNaNInf {
		for i, v := range m {
			if isNonFinite32(v) {
				return mat4.Mat4{}, fmt.Errorf("%w: lane %d", ErrNaNInf, i)
			}
		}
	}

	return m, nil
}

// EncodeMat4 returns a fresh Mat4Bytes blob holding m.
func (c *Codec) EncodeMat4(m mat4.Mat4) []byte {
	return c.AppendMat4(make([]byte, 0, Mat4Bytes), m)
}

// AppendMat4 appends the packed form of m to dst and returns the extended slice.
func (c *Codec) AppendMat4(dst []byte, m mat4.Mat4) []byte {
	start := len(dst)
	dst = append(dst, make([]byte, Mat4Bytes)...)
	for i, v := range m {
		c.order.PutUint32(dst[start+i*laneBytes:], math.Float32bits(v))
	}

	return dst
}

// DecodeVec2s reads a stream of packed (x, y) pairs.
// An empty blob decodes to zero points. Returns ErrBadLength when len(b)
// is not a multiple of Vec2Bytes; ErrNaNInf in strict mode.
func (c *Codec) DecodeVec2s(b []byte) ([]f32.Vec2, error) {
	if len(b)%Vec2Bytes != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a multiple of %d", ErrBadLength, len(b), Vec2Bytes)
	}
	vs := make([]f32.Vec2, len(b)/Vec2Bytes)
	for i := range vs {
		off := i * Vec2Bytes
		vs[i][0] = math.Float32frombits(c.order.Uint32(b[off:]))
		vs[i][1] = math.Float32frombits(c.order.Uint32(b[off+laneBytes:]))
		if c.validateNaNInf && (isNonFinite32(vs[i][0]) || isNonFinite32(vs[i][1])) {
			return nil, fmt.Errorf("%w: point %d", ErrNaNInf, i)
		}
	}

	return vs, nil
}

// EncodeVec2s returns a fresh len(vs)*Vec2Bytes blob holding vs in order.
func (c *Codec) EncodeVec2s(vs []f32.Vec2) []byte {
	out := make([]byte, len(vs)*Vec2Bytes)
	for i, v := range vs {
		off := i * Vec2Bytes
		c.order.PutUint32(out[off:], math.Float32bits(v[0]))
		c.order.PutUint32(out[off+laneBytes:], math.Float32bits(v[1]))
	}

	return out
}

// isNonFinite32 reports NaN or ±Inf.
func isNonFinite32(v float32) bool {
	return isNonFinite(float64(v))
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
