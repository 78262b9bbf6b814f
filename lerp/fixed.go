package lerp

import "golang.org/x/image/math/fixed"

// Fixed eases a 26.6 fixed-point value, as used by font metrics.
func Fixed(start, end fixed.Int26_6, p float64) fixed.Int26_6 {
	return Scalar(start, end, p)
}

// FixedPoint eases a 26.6 fixed-point vector.
func FixedPoint(start, end fixed.Point26_6, p float64) fixed.Point26_6 {
	if start == end {
		return end
	}
	return fixed.Point26_6{X: Fixed(start.X, end.X, p), Y: Fixed(start.Y, end.Y, p)}
}
