package glide

import (
	"github.com/phanxgames/glide/ease"
	"github.com/phanxgames/glide/lerp"
)

// Shorthand for the common sprite tweens. Each starts immediately, logs
// instead of returning errors, and always returns a tween. A nil sprite
// yields a tween that ends on its first tick.

// TweenPosition animates s.X and s.Y to x, y.
func (a *Animator) TweenPosition(s *Sprite, x, y, duration float64, fn ease.Func) *Tween {
	return a.spriteTween(s, []any{PropX, PropY}, []any{x, y}, duration, fn)
}

// TweenX animates s.X alone.
func (a *Animator) TweenX(s *Sprite, x, duration float64, fn ease.Func) *Tween {
	return a.spriteTween(s, []any{PropX}, []any{x}, duration, fn)
}

// TweenY animates s.Y alone.
func (a *Animator) TweenY(s *Sprite, y, duration float64, fn ease.Func) *Tween {
	return a.spriteTween(s, []any{PropY}, []any{y}, duration, fn)
}

// TweenScale animates both scale axes.
func (a *Animator) TweenScale(s *Sprite, sx, sy, duration float64, fn ease.Func) *Tween {
	return a.spriteTween(s, []any{PropScaleX, PropScaleY}, []any{sx, sy}, duration, fn)
}

// TweenColor animates the sprite's tint.
func (a *Animator) TweenColor(s *Sprite, to lerp.Color, duration float64, fn ease.Func) *Tween {
	return a.spriteTween(s, []any{PropColor}, []any{to}, duration, fn)
}

// TweenAlpha animates s.Alpha without touching Visible.
func (a *Animator) TweenAlpha(s *Sprite, alpha, duration float64, fn ease.Func) *Tween {
	return a.spriteTween(s, []any{PropAlpha}, []any{alpha}, duration, fn)
}

// TweenAutoAlpha animates s.Alpha and hides the sprite once it reaches 0.
func (a *Animator) TweenAutoAlpha(s *Sprite, alpha, duration float64, fn ease.Func) *Tween {
	return a.spriteTween(s, []any{"autoalpha"}, []any{alpha}, duration, fn)
}

// TweenRotation animates s.Rotation, in radians.
func (a *Animator) TweenRotation(s *Sprite, radians, duration float64, fn ease.Func) *Tween {
	return a.spriteTween(s, []any{PropRotation}, []any{radians}, duration, fn)
}

func (a *Animator) spriteTween(s *Sprite, props, ends []any, duration float64, fn ease.Func) *Tween {
	var target any
	if s != nil {
		// A typed nil would reach the sprite accessors.
		target = s
	}
	t, err := a.AddTween(target, props, ends, duration, fn, 0)
	if err != nil {
		a.logf("%v", err)
	}
	return t
}
