// Package packed is the binary boundary of lvgeom.
//
// Hosts that keep matrices and point streams as opaque byte blobs call the
// kernels through this package:
//
//   - a matrix is exactly 64 bytes: 16 float32 values, row-major;
//   - a 2D point stream is n×8 bytes: n packed (x, y) float32 pairs;
//   - scalars arrive as Go numbers of any integer or float kind and are
//     normalized to the precision the operation needs (integers are exact
//     real equivalents; no other coercions).
//
// Every argument is validated before any arithmetic runs. A malformed
// argument fails the whole call: the result is nil/zero and nothing is
// written. All such errors match ErrMalformedArgument via errors.Is, plus a
// detail sentinel (ErrBadLength, ErrBadScalar, ErrNilArgument, ErrNaNInf).
//
// Numerically degenerate input is NOT an error here either: singular
// matrices, zero divisors and parallel lines flow through as Inf/NaN, exactly
// as the kernels produce them.
//
// Usage:
//
//	k := packed.NewKernel()
//	out, err := k.MultiplyList([][]byte{a, b, c})
//	if errors.Is(err, packed.ErrMalformedArgument) {
//	  // caller bug: wrong blob size or scalar type
//	}
//
// Byte order defaults to the host's native order, matching blobs produced
// by reinterpreting a float array in place. Use WithByteOrder for portable
// (e.g. little-endian) blobs.
package packed
