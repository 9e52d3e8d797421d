// SPDX-License-Identifier: MIT
// Package mat4 provides the linear-algebra kernels of the matrix engine:
// Multiply, MultiplyChain, Determinant, Transpose, Adjugate and Invert.
//
// Purpose:
//   - Keep every formula fully unrolled, term by term, so results are
//     reproducible across platforms and comparable under a fixed tolerance.
//
// Notes:
//   - Each product is converted with float32(...) before it is summed. An
//     explicit conversion forces rounding and forbids the compiler from
//     fusing the multiply with the following add.
//   - Summation runs left to right in the order written.

package mat4

// mul writes the row-major product a × b into c.
// c must not alias a or b; MultiplyChain relies on this contract.
// Complexity: 64 multiplies, 48 adds.
func mul(a, b, c *Mat4) {
	c[0] = float32(a[0]*b[0]) + float32(a[1]*b[4]) + float32(a[2]*b[8]) + float32(a[3]*b[12])
	c[1] = float32(a[0]*b[1]) + float32(a[1]*b[5]) + float32(a[2]*b[9]) + float32(a[3]*b[13])
	c[2] = float32(a[0]*b[2]) + float32(a[1]*b[6]) + float32(a[2]*b[10]) + float32(a[3]*b[14])
	c[3] = float32(a[0]*b[3]) + float32(a[1]*b[7]) + float32(a[2]*b[11]) + float32(a[3]*b[15])

	c[4] = float32(a[4]*b[0]) + float32(a[5]*b[4]) + float32(a[6]*b[8]) + float32(a[7]*b[12])
	c[5] = float32(a[4]*b[1]) + float32(a[5]*b[5]) + float32(a[6]*b[9]) + float32(a[7]*b[13])
	c[6] = float32(a[4]*b[2]) + float32(a[5]*b[6]) + float32(a[6]*b[10]) + float32(a[7]*b[14])
	c[7] = float32(a[4]*b[3]) + float32(a[5]*b[7]) + float32(a[6]*b[11]) + float32(a[7]*b[15])

	c[8] = float32(a[8]*b[0]) + float32(a[9]*b[4]) + float32(a[10]*b[8]) + float32(a[11]*b[12])
	c[9] = float32(a[8]*b[1]) + float32(a[9]*b[5]) + float32(a[10]*b[9]) + float32(a[11]*b[13])
	c[10] = float32(a[8]*b[2]) + float32(a[9]*b[6]) + float32(a[10]*b[10]) + float32(a[11]*b[14])
	c[11] = float32(a[8]*b[3]) + float32(a[9]*b[7]) + float32(a[10]*b[11]) + float32(a[11]*b[15])

	c[12] = float32(a[12]*b[0]) + float32(a[13]*b[4]) + float32(a[14]*b[8]) + float32(a[15]*b[12])
	c[13] = float32(a[12]*b[1]) + float32(a[13]*b[5]) + float32(a[14]*b[9]) + float32(a[15]*b[13])
	c[14] = float32(a[12]*b[2]) + float32(a[13]*b[6]) + float32(a[14]*b[10]) + float32(a[15]*b[14])
	c[15] = float32(a[12]*b[3]) + float32(a[13]*b[7]) + float32(a[14]*b[11]) + float32(a[15]*b[15])
}

// Multiply performs the standard matrix product C = A × B.
// Order matters: Multiply(a, b) != Multiply(b, a) in general.
//
// Complexity: O(1) (64 multiply-adds).
func Multiply(a, b Mat4) Mat4 {
	var c Mat4
	mul(&a, &b, &c)
	return c
}

// MultiplyChain reduces ms left to right starting from the identity:
//
//	C = I × ms[0] × ms[1] × … × ms[n-1]
//
// Implementation:
//   - Stage 1: seed product[0] with the identity.
//   - Stage 2: for each matrix swap src/dst and multiply product[src] × m
//     into product[dst]; the two accumulators alternate so no call ever
//     reads and writes the same buffer.
//   - Stage 3: return product[dst].
//
// Behavior highlights:
//   - An empty (or nil) slice returns the identity, bit for bit.
//   - The leading I × ms[0] is performed, not skipped.
//
// Complexity: O(n) multiplies, O(1) extra memory.
func MultiplyChain(ms []Mat4) Mat4 {
	var product [2]Mat4
	src, dst := 1, 0

	product[dst] = identity
	for i := range ms {
		src, dst = dst, src
		mul(&product[src], &ms[i], &product[dst])
	}

	return product[dst]
}

// Determinant returns the determinant of a using the full 24-term expansion:
// twelve positive and twelve negative products of four elements drawn from
// distinct rows and columns.
//
// Complexity: O(1).
func Determinant(a Mat4) float32 {
	return float32(a[0]*a[5]*a[10]*a[15]) + float32(a[0]*a[9]*a[14]*a[7]) +
		float32(a[0]*a[13]*a[6]*a[11]) + float32(a[4]*a[1]*a[14]*a[11]) +
		float32(a[4]*a[9]*a[2]*a[15]) + float32(a[4]*a[13]*a[10]*a[3]) +
		float32(a[8]*a[1]*a[6]*a[15]) + float32(a[8]*a[5]*a[14]*a[3]) +
		float32(a[8]*a[13]*a[2]*a[7]) + float32(a[12]*a[1]*a[10]*a[7]) +
		float32(a[12]*a[5]*a[2]*a[11]) + float32(a[12]*a[9]*a[6]*a[3]) -
		float32(a[0]*a[5]*a[14]*a[11]) - float32(a[0]*a[9]*a[6]*a[15]) -
		float32(a[0]*a[13]*a[10]*a[7]) - float32(a[4]*a[1]*a[10]*a[15]) -
		float32(a[4]*a[9]*a[14]*a[3]) - float32(a[4]*a[13]*a[2]*a[11]) -
		float32(a[8]*a[1]*a[14]*a[7]) - float32(a[8]*a[5]*a[2]*a[15]) -
		float32(a[8]*a[13]*a[6]*a[3]) - float32(a[12]*a[1]*a[6]*a[11]) -
		float32(a[12]*a[5]*a[10]*a[3]) - float32(a[12]*a[9]*a[2]*a[7])
}

// Transpose returns aᵀ (c[r][c] = a[c][r]).
// Complexity: O(1).
func Transpose(a Mat4) Mat4 {
	return Mat4{
		a[0], a[4], a[8], a[12],
		a[1], a[5], a[9], a[13],
		a[2], a[6], a[10], a[14],
		a[3], a[7], a[11], a[15],
	}
}

// Adjugate returns the classical adjugate of a (transpose of the cofactor
// matrix), so that a × Adjugate(a) = Determinant(a) × I.
//
// Each element is its own six-term sum of triple products; the cofactor
// matrix is never materialized.
//
// Complexity: O(1).
func Adjugate(a Mat4) Mat4 {
	var c Mat4

	c[0] = float32(a[5]*a[10]*a[15]) + float32(a[9]*a[14]*a[7]) + float32(a[13]*a[6]*a[11]) - float32(a[5]*a[14]*a[11]) - float32(a[9]*a[6]*a[15]) - float32(a[13]*a[10]*a[7])
	c[4] = float32(a[4]*a[14]*a[11]) + float32(a[8]*a[6]*a[15]) + float32(a[12]*a[10]*a[7]) - float32(a[4]*a[10]*a[15]) - float32(a[8]*a[14]*a[7]) - float32(a[12]*a[6]*a[11])
	c[8] = float32(a[4]*a[9]*a[15]) + float32(a[8]*a[13]*a[7]) + float32(a[12]*a[5]*a[11]) - float32(a[4]*a[13]*a[11]) - float32(a[8]*a[5]*a[15]) - float32(a[12]*a[9]*a[7])
	c[12] = float32(a[4]*a[13]*a[10]) + float32(a[8]*a[5]*a[14]) + float32(a[12]*a[9]*a[6]) - float32(a[4]*a[9]*a[14]) - float32(a[8]*a[13]*a[6]) - float32(a[12]*a[5]*a[10])

	c[1] = float32(a[1]*a[14]*a[11]) + float32(a[9]*a[2]*a[15]) + float32(a[13]*a[10]*a[3]) - float32(a[1]*a[10]*a[15]) - float32(a[9]*a[14]*a[3]) - float32(a[13]*a[2]*a[11])
	c[5] = float32(a[0]*a[10]*a[15]) + float32(a[8]*a[14]*a[3]) + float32(a[12]*a[2]*a[11]) - float32(a[0]*a[14]*a[11]) - float32(a[8]*a[2]*a[15]) - float32(a[12]*a[10]*a[3])
	c[9] = float32(a[0]*a[13]*a[11]) + float32(a[8]*a[1]*a[15]) + float32(a[12]*a[9]*a[3]) - float32(a[0]*a[9]*a[15]) - float32(a[8]*a[13]*a[3]) - float32(a[12]*a[1]*a[11])
	c[13] = float32(a[0]*a[9]*a[14]) + float32(a[8]*a[13]*a[2]) + float32(a[12]*a[1]*a[10]) - float32(a[0]*a[13]*a[10]) - float32(a[8]*a[1]*a[14]) - float32(a[12]*a[9]*a[2])

	c[2] = float32(a[1]*a[6]*a[15]) + float32(a[5]*a[14]*a[3]) + float32(a[13]*a[2]*a[7]) - float32(a[1]*a[14]*a[7]) - float32(a[5]*a[2]*a[15]) - float32(a[13]*a[6]*a[3])
	c[6] = float32(a[0]*a[14]*a[7]) + float32(a[4]*a[2]*a[15]) + float32(a[12]*a[6]*a[3]) - float32(a[0]*a[6]*a[15]) - float32(a[4]*a[14]*a[3]) - float32(a[12]*a[2]*a[7])
	c[10] = float32(a[0]*a[5]*a[15]) + float32(a[4]*a[13]*a[3]) + float32(a[12]*a[1]*a[7]) - float32(a[0]*a[13]*a[7]) - float32(a[4]*a[1]*a[15]) - float32(a[12]*a[5]*a[3])
	c[14] = float32(a[0]*a[13]*a[6]) + float32(a[4]*a[1]*a[14]) + float32(a[12]*a[5]*a[2]) - float32(a[0]*a[5]*a[14]) - float32(a[4]*a[13]*a[2]) - float32(a[12]*a[1]*a[6])

	c[3] = float32(a[1]*a[10]*a[7]) + float32(a[5]*a[2]*a[11]) + float32(a[9]*a[6]*a[3]) - float32(a[1]*a[6]*a[11]) - float32(a[5]*a[10]*a[3]) - float32(a[9]*a[2]*a[7])
	c[7] = float32(a[0]*a[6]*a[11]) + float32(a[4]*a[10]*a[3]) + float32(a[8]*a[2]*a[7]) - float32(a[0]*a[10]*a[7]) - float32(a[4]*a[2]*a[11]) - float32(a[8]*a[6]*a[3])
	c[11] = float32(a[0]*a[9]*a[7]) + float32(a[4]*a[1]*a[11]) + float32(a[8]*a[5]*a[3]) - float32(a[0]*a[5]*a[11]) - float32(a[4]*a[9]*a[3]) - float32(a[8]*a[1]*a[7])
	c[15] = float32(a[0]*a[5]*a[10]) + float32(a[4]*a[9]*a[2]) + float32(a[8]*a[1]*a[6]) - float32(a[0]*a[9]*a[6]) - float32(a[4]*a[1]*a[10]) - float32(a[8]*a[5]*a[2])

	return c
}

// Invert returns Adjugate(a) / Determinant(a).
//
// Errors:
//   - ErrZeroDeterminant when the determinant is exactly zero. Tiny non-zero
//     determinants are divided through; callers that care about conditioning
//     should call Determinant and Adjugate themselves.
//
// Complexity: O(1).
func Invert(a Mat4) (Mat4, error) {
	det := Determinant(a)
	if det == 0 {
		return Mat4{}, matrixErrorf(opInvert, ErrZeroDeterminant)
	}

	return DivideScalar(Adjugate(a), det), nil
}
