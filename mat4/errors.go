// SPDX-License-Identifier: MIT
// Package mat4: sentinel error set.
// The arithmetic kernels never fail; the only sentinel belongs to the
// Invert convenience, which divides by the determinant on the caller's behalf.

package mat4

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "mat4: ..." for easy grepping across logs.
// Callers match with errors.Is; wrapping goes through matrixErrorf only.

var (
	// ErrZeroDeterminant is returned by Invert when Determinant(a) == 0.
	// Near-singular matrices are NOT rejected; test the result if that matters.
	ErrZeroDeterminant = errors.New("mat4: zero determinant")
)

// Operation name constants for unified error wrapping.
const (
	opInvert = "Invert"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
