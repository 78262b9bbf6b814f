package lerp

// FillRule picks how a path's interior is computed.
type FillRule uint8

const (
	FillEvenOdd FillRule = iota
	FillNonZero
)

// SweepDirection is the direction an arc is drawn in.
type SweepDirection uint8

const (
	CounterClockwise SweepDirection = iota
	Clockwise
)

// Segment is one piece of a path figure. The concrete types are
// *LineSegment, *BezierSegment, *QuadraticBezierSegment, *ArcSegment,
// *PolyLineSegment, *PolyBezierSegment and *PolyQuadraticBezierSegment.
type Segment interface {
	segment()
}

// LineSegment draws a straight line to Point.
type LineSegment struct {
	Point Point
}

// BezierSegment draws a cubic Bezier with two control points.
type BezierSegment struct {
	Point1, Point2, Point3 Point
}

// QuadraticBezierSegment draws a quadratic Bezier with one control point.
type QuadraticBezierSegment struct {
	Point1, Point2 Point
}

// ArcSegment draws an elliptical arc to Point.
type ArcSegment struct {
	Point          Point
	Size           Size
	RotationAngle  float64
	IsLargeArc     bool
	SweepDirection SweepDirection
}

// PolyLineSegment draws connected lines through Points.
type PolyLineSegment struct {
	Points []Point
}

// PolyBezierSegment draws cubic Beziers, three points per curve.
type PolyBezierSegment struct {
	Points []Point
}

// PolyQuadraticBezierSegment draws quadratic Beziers, two points per curve.
type PolyQuadraticBezierSegment struct {
	Points []Point
}

func (*LineSegment) segment()                {}
func (*BezierSegment) segment()              {}
func (*QuadraticBezierSegment) segment()     {}
func (*ArcSegment) segment()                 {}
func (*PolyLineSegment) segment()            {}
func (*PolyBezierSegment) segment()          {}
func (*PolyQuadraticBezierSegment) segment() {}

// PathFigure is a connected run of segments from StartPoint.
type PathFigure struct {
	StartPoint Point
	Segments   []Segment
	IsClosed   bool
	IsFilled   bool
}

// PathGeometry is a shape made of one or more figures.
type PathGeometry struct {
	FillRule FillRule
	Figures  []PathFigure
}

// LerpSegment eases two segments of the same concrete type. Mismatched
// types cannot be blended, so end is returned unchanged.
func LerpSegment(start, end Segment, p float64) Segment {
	switch e := end.(type) {
	case *LineSegment:
		if s, ok := start.(*LineSegment); ok {
			return &LineSegment{Point: LerpPoint(s.Point, e.Point, p)}
		}
	case *BezierSegment:
		if s, ok := start.(*BezierSegment); ok {
			return &BezierSegment{
				Point1: LerpPoint(s.Point1, e.Point1, p),
				Point2: LerpPoint(s.Point2, e.Point2, p),
				Point3: LerpPoint(s.Point3, e.Point3, p),
			}
		}
	case *QuadraticBezierSegment:
		if s, ok := start.(*QuadraticBezierSegment); ok {
			return &QuadraticBezierSegment{
				Point1: LerpPoint(s.Point1, e.Point1, p),
				Point2: LerpPoint(s.Point2, e.Point2, p),
			}
		}
	case *ArcSegment:
		if s, ok := start.(*ArcSegment); ok {
			if p == 0 {
				return s
			}
			return &ArcSegment{
				Point:          LerpPoint(s.Point, e.Point, p),
				Size:           LerpSize(s.Size, e.Size, p),
				RotationAngle:  Float(s.RotationAngle, e.RotationAngle, p),
				IsLargeArc:     e.IsLargeArc,
				SweepDirection: e.SweepDirection,
			}
		}
	case *PolyLineSegment:
		if s, ok := start.(*PolyLineSegment); ok {
			return &PolyLineSegment{Points: Points(s.Points, e.Points, p)}
		}
	case *PolyBezierSegment:
		if s, ok := start.(*PolyBezierSegment); ok {
			return &PolyBezierSegment{Points: Points(s.Points, e.Points, p)}
		}
	case *PolyQuadraticBezierSegment:
		if s, ok := start.(*PolyQuadraticBezierSegment); ok {
			return &PolyQuadraticBezierSegment{Points: Points(s.Points, e.Points, p)}
		}
	}
	return end
}

// LerpFigure eases the start point and the segments. Flags come from end
// once the figure has started moving.
func LerpFigure(start, end PathFigure, p float64) PathFigure {
	if p == 0 {
		return start
	}
	return PathFigure{
		StartPoint: LerpPoint(start.StartPoint, end.StartPoint, p),
		Segments:   Slice(LerpSegment)(start.Segments, end.Segments, p),
		IsClosed:   end.IsClosed,
		IsFilled:   end.IsFilled,
	}
}

// LerpPath eases every figure of a geometry. Figures past the end of
// start are copied from end.
func LerpPath(start, end PathGeometry, p float64) PathGeometry {
	if p == 0 {
		return start
	}
	return PathGeometry{
		FillRule: end.FillRule,
		Figures:  Slice(LerpFigure)(start.Figures, end.Figures, p),
	}
}
