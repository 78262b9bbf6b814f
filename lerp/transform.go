package lerp

// CompositeTransform is a decomposed 2D transform. The parts are applied as
// scale, skew, rotate, then translate, all about (CenterX, CenterY).
type CompositeTransform struct {
	CenterX, CenterY       float64
	Rotation               float64 // degrees
	ScaleX, ScaleY         float64
	SkewX, SkewY           float64 // degrees
	TranslateX, TranslateY float64
}

// IdentityTransform leaves geometry unchanged.
var IdentityTransform = CompositeTransform{ScaleX: 1, ScaleY: 1}

// LerpCompositeTransform eases every component independently, which keeps
// rotation continuous where a matrix blend would shear.
func LerpCompositeTransform(start, end CompositeTransform, p float64) CompositeTransform {
	if start == end {
		return end
	}
	return CompositeTransform{
		CenterX:    Float(start.CenterX, end.CenterX, p),
		CenterY:    Float(start.CenterY, end.CenterY, p),
		Rotation:   Float(start.Rotation, end.Rotation, p),
		ScaleX:     Float(start.ScaleX, end.ScaleX, p),
		ScaleY:     Float(start.ScaleY, end.ScaleY, p),
		SkewX:      Float(start.SkewX, end.SkewX, p),
		SkewY:      Float(start.SkewY, end.SkewY, p),
		TranslateX: Float(start.TranslateX, end.TranslateX, p),
		TranslateY: Float(start.TranslateY, end.TranslateY, p),
	}
}
