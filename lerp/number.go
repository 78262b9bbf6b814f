package lerp

import (
	"math"
	"reflect"

	"golang.org/x/exp/constraints"
)

// Func interpolates between start and end at progress p. Implementations
// are pure, return start at p=0, end at p=1, and end whenever
// start == end regardless of p.
type Func[T any] func(start, end T, p float64) T

// Number is any scalar that can be interpolated through float64.
type Number interface {
	constraints.Integer | constraints.Float
}

// Float interpolates a float64.
func Float(start, end, p float64) float64 {
	switch {
	case start == end, p == 1:
		return end
	case p == 0:
		return start
	}
	return start + (end-start)*p
}

// Scalar interpolates any numeric type. Integer results truncate toward
// zero like a plain conversion and saturate at the type's range, so an
// overshooting ease cannot wrap a uint8 channel.
func Scalar[T Number](start, end T, p float64) T {
	if start == end {
		return end
	}
	return saturate[T](Float(float64(start), float64(end), p))
}

// Positive interpolates a float64 and clamps the result at zero. Used for
// values that are invalid when negative, such as sizes and blur radii.
func Positive(start, end, p float64) float64 {
	return math.Max(0, Float(start, end, p))
}

// PositiveScalar is Positive for any numeric type.
func PositiveScalar[T Number](start, end T, p float64) T {
	if start == end {
		return end
	}
	return saturate[T](Positive(float64(start), float64(end), p))
}

// saturate converts f to T, clamping integers into T's range. NaN becomes 0.
func saturate[T Number](f float64) T {
	if math.IsNaN(f) {
		return 0
	}
	t := reflect.TypeFor[T]()
	switch t.Kind() {
	case reflect.Float32, reflect.Float64:
		return T(f)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		hi := math.Ldexp(1, t.Bits())
		f = math.Max(0, math.Min(f, math.Nextafter(hi, 0)))
	default:
		hi := math.Ldexp(1, t.Bits()-1)
		f = math.Max(-hi, math.Min(f, math.Nextafter(hi, 0)))
	}
	return T(f)
}

// Clamped interpolates and clamps into [lo, hi].
func Clamped(lo, hi float64) Func[float64] {
	return func(start, end, p float64) float64 {
		return math.Max(lo, math.Min(hi, Float(start, end, p)))
	}
}
