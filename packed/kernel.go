// SPDX-License-Identifier: MIT

package packed

import (
	"fmt"

	"github.com/katalvlaran/lvgeom/line"
	"github.com/katalvlaran/lvgeom/mat4"
	"golang.org/x/image/math/f32"
)

// Kernel exposes the mat4 and line kernels over packed blobs and host scalars.
//
// Every method decodes and validates all of its arguments before computing
// anything. On a malformed argument it returns a nil (or zero) result and an
// error matching ErrMalformedArgument; no partial output is ever produced.
// Degenerate numeric input is not an error and propagates as Inf/NaN.
//
// A Kernel is immutable after construction and safe for concurrent use.
type Kernel struct {
	codec          *Codec
	validateNaNInf bool
}

// NewKernel returns a Kernel whose codec is configured by opts.
func NewKernel(opts ...Option) *Kernel {
	o := gatherOptions(opts...)

	return &Kernel{
		codec:          &Codec{order: o.order, validateNaNInf: o.validateNaNInf},
		validateNaNInf: o.validateNaNInf,
	}
}

// Codec returns the codec used to decode arguments and encode results.
func (k *Kernel) Codec() *Codec { return k.codec }

// Close reports whether a and b agree lane-wise within |tolerance|.
func (k *Kernel) Close(a, b []byte, tolerance any) (bool, error) {
	ma, err := k.decodeMatrix(opClose, 0, a)
	if err != nil {
		return false, err
	}
	mb, err := k.decodeMatrix(opClose, 1, b)
	if err != nil {
		return false, err
	}
	tol, err := k.scalar64(opClose, 2, tolerance)
	if err != nil {
		return false, err
	}

	return mat4.Close(ma, mb, tol), nil
}

// Add returns the packed element-wise sum a + b.
func (k *Kernel) Add(a, b []byte) ([]byte, error) {
	return k.binary(opAdd, a, b, mat4.Add)
}

// Subtract returns the packed element-wise difference a − b.
func (k *Kernel) Subtract(a, b []byte) ([]byte, error) {
	return k.binary(opSubtract, a, b, mat4.Subtract)
}

// Multiply returns the packed product a × b.
func (k *Kernel) Multiply(a, b []byte) ([]byte, error) {
	return k.binary(opMultiply, a, b, mat4.Multiply)
}

// MultiplyList returns the packed left-to-right product of ms.
// An empty or nil list yields the identity.
func (k *Kernel) MultiplyList(ms [][]byte) ([]byte, error) {
	decoded := make([]mat4.Mat4, len(ms))
	for i, b := range ms {
		m, err := k.decodeMatrix(opMultiplyList, i, b)
		if err != nil {
			return nil, err
		}
		decoded[i] = m
	}

	return k.codec.EncodeMat4(mat4.MultiplyChain(decoded)), nil
}

// MultiplyScalar returns the packed product a·s.
// s is read as float64 and rounded once to float32.
func (k *Kernel) MultiplyScalar(a []byte, s any) ([]byte, error) {
	return k.scalarOp(opMultiplyScalar, a, s, mat4.MultiplyScalar)
}

// DivideScalar returns the packed quotient a/s. s == 0 yields Inf/NaN lanes.
func (k *Kernel) DivideScalar(a []byte, s any) ([]byte, error) {
	return k.scalarOp(opDivideScalar, a, s, mat4.DivideScalar)
}

// Determinant returns det(a), computed in float32 and widened to float64.
func (k *Kernel) Determinant(a []byte) (float64, error) {
	m, err := k.decodeMatrix(opDeterminant, 0, a)
	if err != nil {
		return 0, err
	}

	return float64(mat4.Determinant(m)), nil
}

// Transpose returns the packed transpose of a.
func (k *Kernel) Transpose(a []byte) ([]byte, error) {
	return k.unary(opTranspose, a, mat4.Transpose)
}

// Adjugate returns the packed adjugate of a.
func (k *Kernel) Adjugate(a []byte) ([]byte, error) {
	return k.unary(opAdjugate, a, mat4.Adjugate)
}

// ProjectVector2 maps the point (x, y) through m.
// Coordinates are normalized to float32 before the product.
func (k *Kernel) ProjectVector2(m []byte, x, y any) (float64, float64, error) {
	mm, err := k.decodeMatrix(opProjectVector2, 0, m)
	if err != nil {
		return 0, 0, err
	}
	px, err := k.scalar32(opProjectVector2, 1, x)
	if err != nil {
		return 0, 0, err
	}
	py, err := k.scalar32(opProjectVector2, 2, y)
	if err != nil {
		return 0, 0, err
	}
	p := mat4.ProjectVector2(mm, f32.Vec2{px, py})

	return float64(p[0]), float64(p[1]), nil
}

// ProjectVector2s maps every packed point in vs through m and returns a
// fresh stream of the same length and order. An empty stream yields an
// empty, non-nil blob.
func (k *Kernel) ProjectVector2s(m, vs []byte) ([]byte, error) {
	mm, err := k.decodeMatrix(opProjectVector2s, 0, m)
	if err != nil {
		return nil, err
	}
	points, err := k.codec.DecodeVec2s(vs)
	if err != nil {
		return nil, k.reject(opProjectVector2s, 1, err)
	}

	return k.codec.EncodeVec2s(mat4.ProjectVector2Batch(mm, points)), nil
}

// Parallel offsets the line (x0, y0)→(x1, y1) perpendicular to itself by w.
func (k *Kernel) Parallel(x0, y0, x1, y1, w any) (line.Line, error) {
	args, err := k.scalars64(opParallel, x0, y0, x1, y1, w)
	if err != nil {
		return line.Line{}, err
	}

	return line.Parallel(line.Ln(args[0], args[1], args[2], args[3]), args[4]), nil
}

// Intersection returns the crossing point of the infinite lines through
// (x0, y0)→(x1, y1) and (x2, y2)→(x3, y3). Parallel lines yield non-finite
// coordinates.
func (k *Kernel) Intersection(x0, y0, x1, y1, x2, y2, x3, y3 any) (line.Point, error) {
	args, err := k.scalars64(opIntersection, x0, y0, x1, y1, x2, y2, x3, y3)
	if err != nil {
		return line.Point{}, err
	}

	return line.Intersection(
		line.Ln(args[0], args[1], args[2], args[3]),
		line.Ln(args[4], args[5], args[6], args[7]),
	), nil
}

// ---------- argument plumbing ----------

func (k *Kernel) unary(op string, a []byte, fn func(mat4.Mat4) mat4.Mat4) ([]byte, error) {
	m, err := k.decodeMatrix(op, 0, a)
	if err != nil {
		return nil, err
	}

	return k.codec.EncodeMat4(fn(m)), nil
}

func (k *Kernel) binary(op string, a, b []byte, fn func(mat4.Mat4, mat4.Mat4) mat4.Mat4) ([]byte, error) {
	ma, err := k.decodeMatrix(op, 0, a)
	if err != nil {
		return nil, err
	}
	mb, err := k.decodeMatrix(op, 1, b)
	if err != nil {
		return nil, err
	}

	return k.codec.EncodeMat4(fn(ma, mb)), nil
}

func (k *Kernel) scalarOp(op string, a []byte, s any, fn func(mat4.Mat4, float32) mat4.Mat4) ([]byte, error) {
	m, err := k.decodeMatrix(op, 0, a)
	if err != nil {
		return nil, err
	}
	v, err := k.scalar64(op, 1, s)
	if err != nil {
		return nil, err
	}

	return k.codec.EncodeMat4(fn(m, float32(v))), nil
}

func (k *Kernel) decodeMatrix(op string, arg int, b []byte) (mat4.Mat4, error) {
	m, err := k.codec.DecodeMat4(b)
	if err != nil {
		return mat4.Mat4{}, k.reject(op, arg, err)
	}

	return m, nil
}

func (k *Kernel) scalar64(op string, arg int, v any) (float64, error) {
	x, err := Float64(v)
	if err == nil && k.validateNaNInf && isNonFinite(x) {
		err = fmt.Errorf("%w: %v", ErrNaNInf, x)
	}
	if err != nil {
		return 0, k.reject(op, arg, err)
	}

	return x, nil
}

func (k *Kernel) scalar32(op string, arg int, v any) (float32, error) {
	x, err := Float32(v)
	if err == nil && k.validateNaNInf && isNonFinite32(x) {
		err = fmt.Errorf("%w: %v", ErrNaNInf, x)
	}
	if err != nil {
		return 0, k.reject(op, arg, err)
	}

	return x, nil
}

func (k *Kernel) scalars64(op string, vs ...any) ([]float64, error) {
	out := make([]float64, len(vs))
	for i, v := range vs {
		x, err := k.scalar64(op, i, v)
		if err != nil {
			return nil, err
		}
		out[i] = x
	}

	return out, nil
}

// reject wraps err with op and argument position and logs it at Debug.
func (k *Kernel) reject(op string, arg int, err error) error {
	err = argErrorf(op, arg, err)
	Logger().Debug("packed: rejected argument", "op", op, "arg", arg, "err", err)

	return err
}
