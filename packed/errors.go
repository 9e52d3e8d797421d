// SPDX-License-Identifier: MIT
// Package packed: sentinel error set.
// Every boundary failure is a malformed argument; the detail sentinels below
// wrap ErrMalformedArgument so callers may match either level with errors.Is.

package packed

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedArgument is the single caller-visible error category:
	// wrong blob length, wrong scalar type, or (in strict mode) a non-finite value.
	ErrMalformedArgument = errors.New("packed: malformed argument")

	// ErrBadLength indicates a blob whose size is not exactly one matrix
	// (64 bytes) or not a whole number of packed 2D points (multiple of 8).
	ErrBadLength = fmt.Errorf("%w: bad buffer length", ErrMalformedArgument)

	// ErrBadScalar indicates a scalar that is neither an integer nor a float.
	ErrBadScalar = fmt.Errorf("%w: bad scalar type", ErrMalformedArgument)

	// ErrNilArgument indicates a nil matrix blob or a nil scalar.
	ErrNilArgument = fmt.Errorf("%w: nil argument", ErrMalformedArgument)

	// ErrNaNInf indicates a NaN or ±Inf input rejected under WithValidateNaNInf.
	ErrNaNInf = fmt.Errorf("%w: NaN or Inf encountered", ErrMalformedArgument)
)

// Operation name constants for unified error wrapping and logging.
const (
	opClose           = "Close"
	opAdd             = "Add"
	opSubtract        = "Subtract"
	opMultiply        = "Multiply"
	opMultiplyList    = "MultiplyList"
	opMultiplyScalar  = "MultiplyScalar"
	opDivideScalar    = "DivideScalar"
	opDeterminant     = "Determinant"
	opTranspose       = "Transpose"
	opAdjugate        = "Adjugate"
	opProjectVector2  = "ProjectVector2"
	opProjectVector2s = "ProjectVector2s"
	opParallel        = "Parallel"
	opIntersection    = "Intersection"
)

// argErrorf wraps err with the operation tag and the offending argument position.
// Use only when err != nil.
func argErrorf(op string, arg int, err error) error {
	return fmt.Errorf("%s: arg %d: %w", op, arg, err)
}
