package lerp

import "github.com/hajimehoshi/ebiten/v2"

// GeoM eases the six elements of an ebiten affine matrix. The boundaries
// return an input as-is since GeoM stores some elements offset by one.
func GeoM(start, end ebiten.GeoM, p float64) ebiten.GeoM {
	switch {
	case start == end, p == 1:
		return end
	case p == 0:
		return start
	}
	var g ebiten.GeoM
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			g.SetElement(i, j, Float(start.Element(i, j), end.Element(i, j), p))
		}
	}
	return g
}

// ColorScale eases an ebiten color scale channel by channel.
func ColorScale(start, end ebiten.ColorScale, p float64) ebiten.ColorScale {
	switch {
	case start == end, p == 1:
		return end
	case p == 0:
		return start
	}
	var c ebiten.ColorScale
	c.SetR(float32(Float(float64(start.R()), float64(end.R()), p)))
	c.SetG(float32(Float(float64(start.G()), float64(end.G()), p)))
	c.SetB(float32(Float(float64(start.B()), float64(end.B()), p)))
	c.SetA(float32(Float(float64(start.A()), float64(end.A()), p)))
	return c
}
