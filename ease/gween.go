package ease

import gween "github.com/tanema/gween/ease"

// FromGween adapts a gween easing function so code written against
// gween can drive glide tweens.
func FromGween(fn gween.TweenFunc) Func {
	if fn == nil {
		return nil
	}
	return func(ratio float64) float64 {
		return float64(fn(float32(ratio), 0, 1, 1))
	}
}

// ToGween goes the other way, for handing glide curves to gween.Tween.
func ToGween(fn Func) gween.TweenFunc {
	if fn == nil {
		return gween.Linear
	}
	return func(t, b, c, d float32) float32 {
		if d == 0 {
			return b + c
		}
		return b + c*float32(fn(float64(t/d)))
	}
}
