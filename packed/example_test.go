package packed_test

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/katalvlaran/lvgeom/mat4"
	"github.com/katalvlaran/lvgeom/packed"
)

// ExampleKernel_MultiplyList composes translate and scale blobs, then
// projects a point through the result.
func ExampleKernel_MultiplyList() {
	k := packed.NewKernel(packed.WithByteOrder(binary.LittleEndian))
	c := k.Codec()

	m, err := k.MultiplyList([][]byte{
		c.EncodeMat4(mat4.Translate(10, 20, 0)),
		c.EncodeMat4(mat4.Scale(2, 2, 1)),
	})
	if err != nil {
		panic(err)
	}

	x, y, _ := k.ProjectVector2(m, 1, 1)
	fmt.Println(len(m), x, y)
	// Output:
	// 64 12 22
}

// ExampleKernel_Add shows the malformed-argument contract.
func ExampleKernel_Add() {
	k := packed.NewKernel()
	id := k.Codec().EncodeMat4(mat4.Identity())

	out, err := k.Add(id, id[:60])
	fmt.Println(out == nil, errors.Is(err, packed.ErrMalformedArgument), errors.Is(err, packed.ErrBadLength))
	// Output:
	// true true true
}
