package lerp

import "image/color"

// Color is an RGBA color with components in [0, 1], not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is opaque white.
var ColorWhite = Color{1, 1, 1, 1}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.toRGBA().RGBA()
}

// toRGBA converts to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	clamp := func(v float64) float64 {
		if v < 0 {
			return 0
		}
		if v > 1 {
			return 1
		}
		return v
	}
	a := clamp(c.A)
	return color.RGBA{
		R: uint8(clamp(c.R)*a*255 + 0.5),
		G: uint8(clamp(c.G)*a*255 + 0.5),
		B: uint8(clamp(c.B)*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

// LerpColor eases each channel, alpha included, independently.
func LerpColor(start, end Color, p float64) Color {
	if start == end {
		return end
	}
	return Color{
		R: Float(start.R, end.R, p),
		G: Float(start.G, end.G, p),
		B: Float(start.B, end.B, p),
		A: Float(start.A, end.A, p),
	}
}

// RGBA eases an 8-bit premultiplied color channel by channel.
func RGBA(start, end color.RGBA, p float64) color.RGBA {
	if start == end {
		return end
	}
	return color.RGBA{
		R: Scalar(start.R, end.R, p),
		G: Scalar(start.G, end.G, p),
		B: Scalar(start.B, end.B, p),
		A: Scalar(start.A, end.A, p),
	}
}

// NRGBA eases an 8-bit non-premultiplied color channel by channel.
func NRGBA(start, end color.NRGBA, p float64) color.NRGBA {
	if start == end {
		return end
	}
	return color.NRGBA{
		R: Scalar(start.R, end.R, p),
		G: Scalar(start.G, end.G, p),
		B: Scalar(start.B, end.B, p),
		A: Scalar(start.A, end.A, p),
	}
}
