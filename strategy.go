package glide

import (
	"fmt"
	"math"

	"github.com/phanxgames/glide/lerp"
)

// Binding is one animated property of one tween.
type Binding struct {
	// Name identifies the binding inside its tween and in the active-property
	// bookkeeping. StopTween matches on it.
	Name string
	// Property is the resolved handle. Named strategies have none.
	Property *Property

	// Start is captured from the target on the tween's first tick. Until
	// then it holds End.
	Start, End any
	Active     bool

	strategy Strategy
}

// Strategy reads and writes one property. Set receives the eased progress
// and interpolates between b.Start and b.End itself. Errors deactivate the
// binding; they never stop other bindings or other tweens.
type Strategy struct {
	Get func(target any, b *Binding) (any, error)
	Set func(target any, b *Binding, p float64) error
}

// NewStrategy builds a strategy for targets implementing PropertyTarget,
// interpolating values of type T with fn.
func NewStrategy[T any](fn lerp.Func[T]) Strategy {
	return Strategy{
		Get: propertyGet,
		Set: func(target any, b *Binding, p float64) error {
			start, end, err := endpoints[T](b)
			if err != nil {
				return err
			}
			return propertySet(target, b, fn(start, end, p))
		},
	}
}

// FuncStrategy builds a strategy around a field accessor pair on targets of
// type O. Targets of any other type fall back to PropertyTarget access.
func FuncStrategy[O, T any](get func(O) T, set func(O, T), fn lerp.Func[T]) Strategy {
	return Strategy{
		Get: func(target any, b *Binding) (any, error) {
			if o, ok := target.(O); ok {
				return get(o), nil
			}
			return propertyGet(target, b)
		},
		Set: func(target any, b *Binding, p float64) error {
			start, end, err := endpoints[T](b)
			if err != nil {
				return err
			}
			v := fn(start, end, p)
			if o, ok := target.(O); ok {
				set(o, v)
				return nil
			}
			return propertySet(target, b, v)
		},
	}
}

// numericStrategy is the last resort for any numeric end value. It
// interpolates through float64 and writes back in the end value's type.
var numericStrategy = Strategy{
	Get: propertyGet,
	Set: func(target any, b *Binding, p float64) error {
		start, ok := toFloat(b.Start)
		if !ok {
			return fmt.Errorf("glide: %s start %T: %w", b.Name, b.Start, ErrValueType)
		}
		end, ok := toFloat(b.End)
		if !ok {
			return fmt.Errorf("glide: %s end %T: %w", b.Name, b.End, ErrValueType)
		}
		return propertySet(target, b, convertLike(lerp.Float(start, end, p), b.End))
	},
}

func propertyGet(target any, b *Binding) (any, error) {
	pt, ok := target.(PropertyTarget)
	if !ok || b.Property == nil {
		return nil, fmt.Errorf("glide: get %s on %T: %w", b.Name, target, ErrNotPropertyTarget)
	}
	return pt.GetProperty(b.Property)
}

func propertySet(target any, b *Binding, v any) error {
	pt, ok := target.(PropertyTarget)
	if !ok || b.Property == nil {
		return fmt.Errorf("glide: set %s on %T: %w", b.Name, target, ErrNotPropertyTarget)
	}
	return pt.SetProperty(b.Property, v)
}

func endpoints[T any](b *Binding) (start, end T, err error) {
	start, ok := coerce[T](b.Start)
	if !ok {
		return start, end, fmt.Errorf("glide: %s start is %T: %w", b.Name, b.Start, ErrValueType)
	}
	end, ok = coerce[T](b.End)
	if !ok {
		return start, end, fmt.Errorf("glide: %s end is %T: %w", b.Name, b.End, ErrValueType)
	}
	return start, end, nil
}

// coerce converts v to T. Numbers convert between numeric types so that
// AddTween(s, "x", 300, ...) works against a float64 field.
func coerce[T any](v any) (T, bool) {
	if t, ok := v.(T); ok {
		return t, true
	}
	var zero T
	f, ok := toFloat(v)
	if !ok {
		return zero, false
	}
	out, ok := convertLike(f, zero).(T)
	return out, ok
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

// convertLike returns f converted to the numeric type of like. Integer
// results are rounded and saturate at the type's range. Non-numeric likes
// get f unchanged.
func convertLike(f float64, like any) any {
	switch like.(type) {
	case float32:
		return float32(f)
	case int:
		return int(roundIn(f, math.MinInt, math.MaxInt))
	case int8:
		return int8(roundIn(f, math.MinInt8, math.MaxInt8))
	case int16:
		return int16(roundIn(f, math.MinInt16, math.MaxInt16))
	case int32:
		return int32(roundIn(f, math.MinInt32, math.MaxInt32))
	case int64:
		return int64(roundIn(f, math.MinInt64, math.MaxInt64))
	case uint:
		return uint(roundIn(f, 0, math.MaxUint))
	case uint8:
		return uint8(roundIn(f, 0, math.MaxUint8))
	case uint16:
		return uint16(roundIn(f, 0, math.MaxUint16))
	case uint32:
		return uint32(roundIn(f, 0, math.MaxUint32))
	case uint64:
		return uint64(roundIn(f, 0, math.MaxUint64))
	}
	return f
}

// roundIn rounds f and clamps it to [lo, hi]. The 64-bit bounds are not
// exact floats, so the upper clamp steps just below them.
func roundIn(f, lo, hi float64) float64 {
	if math.IsNaN(f) {
		return 0
	}
	if hi >= 1<<63 {
		hi = math.Nextafter(hi, 0)
	}
	return math.Max(lo, math.Min(math.Round(f), hi))
}
