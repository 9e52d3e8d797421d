// SPDX-License-Identifier: MIT

// Package packed: functional configuration for the binary boundary.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults,
//   - WithX constructors (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Notes:
//   - Byte order is a property of the blob format, not of the arithmetic.
//     Native order matches blobs produced by reinterpreting float arrays in place.
//   - Finite validation is OFF by default: NaN/Inf inputs flow through the
//     kernels unchanged. Enable it for hosts that want dirty data rejected at
//     the boundary as a malformed argument.
package packed

import "encoding/binary"

// ---------- Defaults (single source of truth) ----------

// DefaultValidateNaNInf toggles strict finite-value validation of decoded
// blobs and scalar arguments.
const DefaultValidateNaNInf = false

// DefaultByteOrder is the byte order used to read and write float32 lanes.
var DefaultByteOrder binary.ByteOrder = binary.NativeEndian

// ---------- Internal panic messages (no magic strings) ----------

const panicByteOrderNil = "packed: WithByteOrder: order must be non-nil"

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (last writer wins).
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	order          binary.ByteOrder // DefaultByteOrder
	validateNaNInf bool             // DefaultValidateNaNInf
}

// WithByteOrder selects the lane byte order for decoding and encoding.
// Panics if order is nil.
func WithByteOrder(order binary.ByteOrder) Option {
	if order == nil {
		panic(panicByteOrderNil)
	}

	return func(o *Options) { o.order = order }
}

// WithValidateNaNInf rejects NaN and ±Inf in matrices, point streams and
// scalars with ErrNaNInf.
//
// Notes:
//   - Outputs are never checked: a singular matrix divided by its zero
//     determinant still yields Inf/NaN lanes.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf restores the default pass-through behavior.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// gatherOptions applies user setters in order over the defaults.
func gatherOptions(user ...Option) Options {
	o := Options{
		order:          DefaultByteOrder,
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
