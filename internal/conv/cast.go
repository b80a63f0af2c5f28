package conv

import (
	"errors"
	"fmt"
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// ErrOverflow is returned (wrapped) when a checked operation does not fit its result type.
var ErrOverflow = errors.New("arithmetic overflow")

// IntToUint32 converts int to uint32 safely.
func IntToUint32(v int) (uint32, error) {
	if v < 0 {
		return 0, fmt.Errorf("%w: %d cannot be converted to uint32 (negative)", ErrOverflow, v)
	}
	// On 64-bit systems, int can exceed uint32 max; on 32-bit, this is always false
	if uint64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("%w: %d cannot be converted to uint32 (too large)", ErrOverflow, v)
	}
	return uint32(v), nil
}

// Uint32ToInt converts uint32 to int safely.
func Uint32ToInt(v uint32) (int, error) {
	if uint64(v) > uint64(math.MaxInt) {
		return 0, fmt.Errorf("%w: %d cannot be converted to int (too large)", ErrOverflow, v)
	}
	return int(v), nil
}

// AddInt64 returns a+b or an error if the sum wraps.
func AddInt64(a, b int64) (int64, error) {
	s := a + b
	// Overflow iff both operands share a sign that the result does not.
	if (a >= 0) == (b >= 0) && (s >= 0) != (a >= 0) {
		return 0, fmt.Errorf("%w: %d + %d exceeds int64", ErrOverflow, a, b)
	}
	return s, nil
}

// AddUint64 returns a+b or an error if the sum wraps.
func AddUint64(a, b uint64) (uint64, error) {
	s := a + b
	if s < a {
		return 0, fmt.Errorf("%w: %d + %d exceeds uint64", ErrOverflow, a, b)
	}
	return s, nil
}

// Narrow converts between integer types, failing when v is not representable in To.
func Narrow[To, From constraints.Integer](v From) (To, error) {
	t := To(v)
	if From(t) != v || (t < 0) != (v < 0) {
		return 0, fmt.Errorf("%w: %d cannot be converted to %s", ErrOverflow, v, intName[To]())
	}
	return t, nil
}

// FloatToInt rounds f half-to-even and converts it to To, failing on NaN,
// infinities and values outside the range of To.
func FloatToInt[To constraints.Integer](f float64) (To, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %v cannot be converted to %s", ErrOverflow, f, intName[To]())
	}
	r := math.RoundToEven(f)
	lo, hi := floatBounds[To]()
	// hi is exclusive: it is the first power of two beyond the range.
	if r < lo || r >= hi {
		return 0, fmt.Errorf("%w: %v cannot be converted to %s", ErrOverflow, f, intName[To]())
	}
	return To(r), nil
}

func isSigned[T constraints.Integer]() bool {
	return ^T(0) < 0
}

func bitSize[T constraints.Integer]() int {
	var zero T
	return int(unsafe.Sizeof(zero)) * 8
}

func floatBounds[T constraints.Integer]() (lo, hi float64) {
	n := bitSize[T]()
	if isSigned[T]() {
		return -math.Ldexp(1, n-1), math.Ldexp(1, n-1)
	}
	return 0, math.Ldexp(1, n)
}

func intName[T constraints.Integer]() string {
	if isSigned[T]() {
		return fmt.Sprintf("int%d", bitSize[T]())
	}
	return fmt.Sprintf("uint%d", bitSize[T]())
}
