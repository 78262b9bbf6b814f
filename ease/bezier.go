package ease

import (
	"errors"
	"fmt"
)

// BezierPoint is one control point of a custom curve. X is time, Y is the
// value at X, and Y2 is the control value of the quadratic segment that
// starts here. X2 is carried for authoring tools and is not evaluated.
type BezierPoint struct {
	X, Y, X2, Y2 float64
}

// BouncePoints is a hand-tuned bounce drawn on a 200x200 grid.
var BouncePoints = []BezierPoint{
	{0, 0, 20, 20},
	{62, 195, 75, 40},
	{107, 197, 129, 134},
	{151, 196, 165, 161},
	{178, 198, 186, 186},
	{200, 200, 0, 0},
}

// ErrBadCurve is returned for curves that cannot be evaluated.
var ErrBadCurve = errors.New("bad bezier curve")

// NewBezier returns an easer following a piecewise quadratic Bezier curve.
// Points must be ordered by X, start at X=0 and end on a positive X. The
// last point's X scales both axes, so a curve ending at (200, 200) maps
// ratio 1 to progress 1.
func NewBezier(pts []BezierPoint) (Func, error) {
	if len(pts) < 2 {
		return nil, fmt.Errorf("ease: %d points: %w", len(pts), ErrBadCurve)
	}
	for i := 1; i < len(pts); i++ {
		if pts[i].X < pts[i-1].X {
			return nil, fmt.Errorf("ease: point %d goes back in time: %w", i, ErrBadCurve)
		}
	}
	if pts[len(pts)-1].X <= 0 {
		return nil, fmt.Errorf("ease: curve has no length: %w", ErrBadCurve)
	}
	curve := append([]BezierPoint(nil), pts...)
	return func(ratio float64) float64 {
		return BezierEase(ratio, curve)
	}, nil
}

// BezierEase evaluates the curve at ratio. The active segment is the first
// one whose end X reaches ratio scaled to the curve's length. Curves that
// NewBezier would reject evaluate to 0.
func BezierEase(ratio float64, pts []BezierPoint) float64 {
	if len(pts) < 2 || pts[len(pts)-1].X <= 0 {
		return 0
	}
	total := pts[len(pts)-1].X
	cur := total * ratio

	i := 0
	for i < len(pts)-2 && cur > pts[i+1].X {
		i++
	}
	a, b := pts[i], pts[i+1]

	span := b.X - a.X
	if span == 0 {
		return b.Y / total
	}
	local := (cur - a.X) / span
	return quadBezEase(local, a.Y, b.Y, a.Y2) / total
}

// quadBezEquation is the quadratic Bezier from 0 to 1 with control ratio i.
func quadBezEquation(p, i float64) float64 {
	return 2*p*(1-p)*i + p*p
}

// quadBezEase blends from p1 to p2 with control value p3.
func quadBezEase(per, p1, p2, p3 float64) float64 {
	delta := p2 - p1
	if delta == 0 {
		return p1
	}
	return quadBezEquation(per, (p3-p1)/delta)*delta + p1
}
