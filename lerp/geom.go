package lerp

// Point is a 2D position.
type Point struct {
	X, Y float64
}

// Size is a width and height pair.
type Size struct {
	Width, Height float64
}

// Rect is an axis-aligned rectangle with its origin at the top-left.
type Rect struct {
	X, Y, Width, Height float64
}

// Thickness describes spacing around the four edges of a box (margin,
// padding, border widths).
type Thickness struct {
	Left, Top, Right, Bottom float64
}

// CornerRadius holds one radius per corner.
type CornerRadius struct {
	TopLeft, TopRight, BottomRight, BottomLeft float64
}

// GridUnit says how a GridLength value is measured.
type GridUnit uint8

const (
	GridAuto  GridUnit = iota // sized to content
	GridPixel                 // fixed device-independent pixels
	GridStar                  // weighted share of the remaining space
)

// GridLength is a row height or column width.
type GridLength struct {
	Value float64
	Unit  GridUnit
}

// LerpPoint eases X and Y independently.
func LerpPoint(start, end Point, p float64) Point {
	if start == end {
		return end
	}
	return Point{Float(start.X, end.X, p), Float(start.Y, end.Y, p)}
}

// LerpSize eases both dimensions, clamped at zero.
func LerpSize(start, end Size, p float64) Size {
	if start == end {
		return end
	}
	return Size{Positive(start.Width, end.Width, p), Positive(start.Height, end.Height, p)}
}

// LerpRect eases position and size component-wise.
func LerpRect(start, end Rect, p float64) Rect {
	if start == end {
		return end
	}
	return Rect{
		X:      Float(start.X, end.X, p),
		Y:      Float(start.Y, end.Y, p),
		Width:  Float(start.Width, end.Width, p),
		Height: Float(start.Height, end.Height, p),
	}
}

// LerpThickness eases all four edges. Margins may go negative.
func LerpThickness(start, end Thickness, p float64) Thickness {
	if start == end {
		return end
	}
	return Thickness{
		Left:   Float(start.Left, end.Left, p),
		Top:    Float(start.Top, end.Top, p),
		Right:  Float(start.Right, end.Right, p),
		Bottom: Float(start.Bottom, end.Bottom, p),
	}
}

// LerpCornerRadius eases all four corners, clamped at zero.
func LerpCornerRadius(start, end CornerRadius, p float64) CornerRadius {
	if start == end {
		return end
	}
	return CornerRadius{
		TopLeft:     Positive(start.TopLeft, end.TopLeft, p),
		TopRight:    Positive(start.TopRight, end.TopRight, p),
		BottomRight: Positive(start.BottomRight, end.BottomRight, p),
		BottomLeft:  Positive(start.BottomLeft, end.BottomLeft, p),
	}
}

// LerpGridLength eases the value, never below zero. The unit comes from
// end once p leaves zero.
func LerpGridLength(start, end GridLength, p float64) GridLength {
	if start == end {
		return end
	}
	if p == 0 {
		return start
	}
	return GridLength{Value: Positive(start.Value, end.Value, p), Unit: end.Unit}
}
