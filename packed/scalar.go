// SPDX-License-Identifier: MIT

package packed

import "fmt"

// Float64 normalizes a host scalar to float64.
// Accepted kinds are every Go integer type plus float32 and float64;
// integers convert to their exact real equivalent where representable.
// nil returns ErrNilArgument; anything else (strings, bools, named types)
// returns ErrBadScalar.
func Float64(v any) (float64, error) {
	switch x := v.(type) {
	case nil:
		return 0, ErrNilArgument
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int8:
		return float64(x), nil
	case int16:
		return float64(x), nil
	case int32:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case uint:
		return float64(x), nil
	case uint8:
		return float64(x), nil
	case uint16:
		return float64(x), nil
	case uint32:
		return float64(x), nil
	case uint64:
		return float64(x), nil
	default:
		return 0, fmt.Errorf("%w: %T", ErrBadScalar, v)
	}
}

// Float32 normalizes a host scalar to float32.
// float64 inputs are rounded to nearest; integers convert directly so no
// intermediate float64 rounding step is introduced.
func Float32(v any) (float32, error) {
	switch x := v.(type) {
	case nil:
		return 0, ErrNilArgument
	case float32:
		return x, nil
	case float64:
		return float32(x), nil
	case int:
		return float32(x), nil
	case int8:
		return float32(x), nil
	case int16:
		return float32(x), nil
	case int32:
		return float32(x), nil
	case int64:
		return float32(x), nil
	case uint:
		return float32(x), nil
	case uint8:
		return float32(x), nil
	case uint16:
		return float32(x), nil
	case uint32:
		return float32(x), nil
	case uint64:
		return float32(x), nil
	default:
		return 0, fmt.Errorf("%w: %T", ErrBadScalar, v)
	}
}
