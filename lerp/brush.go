package lerp

// Blur is a gaussian blur effect.
type Blur struct {
	Radius float64
}

// DropShadow is a shadow effect cast behind a visual.
type DropShadow struct {
	BlurRadius  float64
	Color       Color
	Direction   float64 // degrees
	Opacity     float64
	ShadowDepth float64
}

// GradientStop is one color at an offset along a gradient.
type GradientStop struct {
	Offset float64
	Color  Color
}

// SolidBrush paints with a single color.
type SolidBrush struct {
	Color   Color
	Opacity float64
}

// LinearGradient paints along the line from StartPoint to EndPoint.
type LinearGradient struct {
	StartPoint, EndPoint Point
	Stops                []GradientStop
	Opacity              float64
}

// RadialGradient paints outward from GradientOrigin to an ellipse around
// Center.
type RadialGradient struct {
	Center, GradientOrigin Point
	RadiusX, RadiusY       float64
	Stops                  []GradientStop
	Opacity                float64
}

// LerpBlur eases the radius, never below zero.
func LerpBlur(start, end Blur, p float64) Blur {
	if start == end {
		return end
	}
	return Blur{Radius: Positive(start.Radius, end.Radius, p)}
}

// LerpDropShadow eases every field. Blur radius and depth stay positive.
func LerpDropShadow(start, end DropShadow, p float64) DropShadow {
	if start == end {
		return end
	}
	return DropShadow{
		BlurRadius:  Positive(start.BlurRadius, end.BlurRadius, p),
		Color:       LerpColor(start.Color, end.Color, p),
		Direction:   Float(start.Direction, end.Direction, p),
		Opacity:     Float(start.Opacity, end.Opacity, p),
		ShadowDepth: Positive(start.ShadowDepth, end.ShadowDepth, p),
	}
}

// LerpGradientStop eases a stop's color and offset.
func LerpGradientStop(start, end GradientStop, p float64) GradientStop {
	if start == end {
		return end
	}
	return GradientStop{
		Offset: Float(start.Offset, end.Offset, p),
		Color:  LerpColor(start.Color, end.Color, p),
	}
}

// GradientStops eases stops pairwise by index. Extra stops in end are
// copied through.
func GradientStops(start, end []GradientStop, p float64) []GradientStop {
	return Slice(LerpGradientStop)(start, end, p)
}

// LerpSolidBrush eases the color and opacity.
func LerpSolidBrush(start, end SolidBrush, p float64) SolidBrush {
	if start == end {
		return end
	}
	return SolidBrush{
		Color:   LerpColor(start.Color, end.Color, p),
		Opacity: Float(start.Opacity, end.Opacity, p),
	}
}

// LerpLinearGradient eases the endpoints, stops and opacity.
func LerpLinearGradient(start, end LinearGradient, p float64) LinearGradient {
	return LinearGradient{
		StartPoint: LerpPoint(start.StartPoint, end.StartPoint, p),
		EndPoint:   LerpPoint(start.EndPoint, end.EndPoint, p),
		Stops:      GradientStops(start.Stops, end.Stops, p),
		Opacity:    Float(start.Opacity, end.Opacity, p),
	}
}

// LerpRadialGradient eases the center, origin, radii, stops and opacity.
func LerpRadialGradient(start, end RadialGradient, p float64) RadialGradient {
	return RadialGradient{
		Center:         LerpPoint(start.Center, end.Center, p),
		GradientOrigin: LerpPoint(start.GradientOrigin, end.GradientOrigin, p),
		RadiusX:        Positive(start.RadiusX, end.RadiusX, p),
		RadiusY:        Positive(start.RadiusY, end.RadiusY, p),
		Stops:          GradientStops(start.Stops, end.Stops, p),
		Opacity:        Float(start.Opacity, end.Opacity, p),
	}
}
