// Package mat4_test provides benchmarks for the matrix engine,
// using deterministic random fill.
package mat4_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvgeom/mat4"
	"golang.org/x/image/math/f32"
)

// sinks to defeat dead-code elimination
var (
	sinkM  mat4.Mat4
	sinkF  float32
	sinkV  []f32.Vec2
	sinkOK bool
)

func BenchmarkMultiply(b *testing.B) {
	rng := rand.New(rand.NewSource(1337))
	x, y := randomMat(rng), randomMat(rng)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkM = mat4.Multiply(x, y)
	}
}

func BenchmarkMultiplyChain(b *testing.B) {
	for _, n := range []int{4, 16, 64} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			rng := rand.New(rand.NewSource(int64(n)))
			ms := make([]mat4.Mat4, n)
			for i := range ms {
				ms[i] = randomMat(rng)
			}
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkM = mat4.MultiplyChain(ms)
			}
		})
	}
}

func BenchmarkDeterminant(b *testing.B) {
	x := randomMat(rand.New(rand.NewSource(5)))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkF = mat4.Determinant(x)
	}
}

func BenchmarkAdjugate(b *testing.B) {
	x := randomMat(rand.New(rand.NewSource(6)))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkM = mat4.Adjugate(x)
	}
}

func BenchmarkClose(b *testing.B) {
	x := randomMat(rand.New(rand.NewSource(8)))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkOK = mat4.Close(x, x, 1e-6)
	}
}

func BenchmarkProjectVector2Batch(b *testing.B) {
	for _, n := range []int{16, 1024} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			rng := rand.New(rand.NewSource(9))
			m := randomMat(rng)
			ps := make([]f32.Vec2, n)
			for i := range ps {
				ps[i] = f32.Vec2{float32(rng.Float64()), float32(rng.Float64())}
			}
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkV = mat4.ProjectVector2Batch(m, ps)
			}
		})
	}
}
