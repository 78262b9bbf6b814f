package lerp

import (
	"image/color"
	"math"
	"reflect"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/math/fixed"
)

const epsilon = 1e-9

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

// --- Scalars ---

func TestFloatMidpoint(t *testing.T) {
	if got := Float(0, 100, 0.5); got != 50 {
		t.Errorf("Float(0, 100, 0.5) = %v, want 50", got)
	}
	if got := Float(10, 20, 0.25); !approxEqual(got, 12.5, epsilon) {
		t.Errorf("Float(10, 20, 0.25) = %v, want 12.5", got)
	}
}

func TestFloatIdentity(t *testing.T) {
	v := 0.1 + 0.2
	for _, p := range []float64{0, 0.3, 0.5, 0.77, 1, 1.4, -0.2} {
		if got := Float(v, v, p); got != v {
			t.Errorf("Float(v, v, %v) = %v, want %v", p, got, v)
		}
	}
}

func TestFloatBoundariesExact(t *testing.T) {
	start, end := 0.1, 0.7
	if got := Float(start, end, 0); got != start {
		t.Errorf("p=0: got %v, want %v", got, start)
	}
	if got := Float(start, end, 1); got != end {
		t.Errorf("p=1: got %v, want %v", got, end)
	}
}

func TestFloatOvershootExtrapolates(t *testing.T) {
	if got := Float(0, 10, 1.2); !approxEqual(got, 12, epsilon) {
		t.Errorf("Float(0, 10, 1.2) = %v, want 12", got)
	}
}

func TestScalarIntegers(t *testing.T) {
	if got := Scalar(0, 100, 0.5); got != 50 {
		t.Errorf("Scalar[int] = %d, want 50", got)
	}
	if got := Scalar[uint8](0, 255, 1); got != 255 {
		t.Errorf("Scalar[uint8] p=1 = %d, want 255", got)
	}
	if got := Scalar[int32](7, 7, 0.4); got != 7 {
		t.Errorf("Scalar identity = %d, want 7", got)
	}
}

func TestScalarSaturates(t *testing.T) {
	tests := []struct {
		name      string
		got, want int64
	}{
		{"uint8 over", int64(Scalar[uint8](200, 255, 1.5)), 255},
		{"uint8 under", int64(Scalar[uint8](50, 0, 1.5)), 0},
		{"int8 over", int64(Scalar[int8](100, 127, 2)), 127},
		{"int8 under", int64(Scalar[int8](-100, -128, 2)), -128},
		{"uint16 over", int64(Scalar[uint16](0, 65535, 1.1)), 65535},
		{"positive uint8", int64(PositiveScalar[uint8](0, 250, 1.2)), 255},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %d, want %d", tt.got, tt.want)
			}
		})
	}
	if got := Scalar(0.0, 1.0, 1.5); !approxEqual(got, 1.5, epsilon) {
		t.Errorf("Scalar[float64] overshoot = %v, want 1.5", got)
	}
}

func TestRGBAOvershootSaturates(t *testing.T) {
	start := color.RGBA{R: 10, G: 200, B: 0, A: 255}
	end := color.RGBA{R: 0, G: 255, B: 128, A: 255}
	got := RGBA(start, end, 1.5)
	want := color.RGBA{R: 0, G: 255, B: 192, A: 255}
	if got != want {
		t.Errorf("RGBA = %+v, want %+v", got, want)
	}
}

func TestPositiveClampsAtZero(t *testing.T) {
	if got := Positive(10, 0, 1.5); got != 0 {
		t.Errorf("Positive overshoot = %v, want 0", got)
	}
	if got := Positive(10, 20, 0.5); got != 15 {
		t.Errorf("Positive(10, 20, 0.5) = %v, want 15", got)
	}
	if got := PositiveScalar(4, -4, 1); got != 0 {
		t.Errorf("PositiveScalar = %d, want 0", got)
	}
}

func TestSizeAndCornersStayPositive(t *testing.T) {
	if got := LerpSize(Size{10, 10}, Size{0, 20}, 1.5); got != (Size{0, 25}) {
		t.Errorf("LerpSize overshoot = %+v, want {0 25}", got)
	}
	got := LerpCornerRadius(CornerRadius{4, 4, 4, 4}, CornerRadius{0, 8, 0, 8}, 2)
	if want := (CornerRadius{0, 12, 0, 12}); got != want {
		t.Errorf("LerpCornerRadius overshoot = %+v, want %+v", got, want)
	}
}

func TestClamped(t *testing.T) {
	unit := Clamped(0, 1)
	if got := unit(0, 1, 1.3); got != 1 {
		t.Errorf("Clamped high = %v, want 1", got)
	}
	if got := unit(0, 1, -0.3); got != 0 {
		t.Errorf("Clamped low = %v, want 0", got)
	}
}

func TestFixed(t *testing.T) {
	start, end := fixed.I(0), fixed.I(10)
	if got := Fixed(start, end, 0.5); got != fixed.I(5) {
		t.Errorf("Fixed = %v, want %v", got, fixed.I(5))
	}
	pa, pb := fixed.P(0, 0), fixed.P(4, 8)
	if got := FixedPoint(pa, pb, 0.25); got != fixed.P(1, 2) {
		t.Errorf("FixedPoint = %v, want %v", got, fixed.P(1, 2))
	}
}

// --- Composites ---

// roundTrip checks the identity and boundary contracts for one interpolator.
func roundTrip[T any](t *testing.T, name string, fn Func[T], start, end T) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		if got := fn(start, end, 0); !reflect.DeepEqual(got, start) {
			t.Errorf("p=0: got %+v, want %+v", got, start)
		}
		if got := fn(start, end, 1); !reflect.DeepEqual(got, end) {
			t.Errorf("p=1: got %+v, want %+v", got, end)
		}
		for _, p := range []float64{0, 0.25, 0.5, 1} {
			if got := fn(start, start, p); !reflect.DeepEqual(got, start) {
				t.Errorf("identity p=%v: got %+v, want %+v", p, got, start)
			}
		}
	})
}

func TestInterpolatorContracts(t *testing.T) {
	roundTrip(t, "color", LerpColor, Color{1, 0, 0, 1}, Color{0.2, 0.4, 0.6, 0.3})
	roundTrip(t, "rgba", RGBA, color.RGBA{255, 0, 0, 255}, color.RGBA{0, 128, 64, 200})
	roundTrip(t, "nrgba", NRGBA, color.NRGBA{10, 20, 30, 40}, color.NRGBA{200, 100, 50, 255})
	roundTrip(t, "point", LerpPoint, Point{1, 2}, Point{-3, 9.5})
	roundTrip(t, "size", LerpSize, Size{10, 20}, Size{30, 5})
	roundTrip(t, "rect", LerpRect, Rect{0, 0, 10, 10}, Rect{5, -5, 20, 40})
	roundTrip(t, "thickness", LerpThickness, Thickness{1, 2, 3, 4}, Thickness{4, 3, 2, 1})
	roundTrip(t, "corner", LerpCornerRadius, CornerRadius{1, 1, 1, 1}, CornerRadius{8, 0, 8, 0})
	roundTrip(t, "grid", LerpGridLength, GridLength{1, GridStar}, GridLength{120, GridPixel})
	roundTrip(t, "matrix", LerpMatrix, IdentityMatrix, Matrix{2, 0.5, -0.5, 2, 30, 40})
	roundTrip(t, "matrix3d", LerpMatrix3D, IdentityMatrix3D, Matrix3D{2, 0, 0, 0, 0, 2, 0, 0, 0, 0, 2, 0, 5, 6, 7, 1})
	roundTrip(t, "transform", LerpCompositeTransform, IdentityTransform,
		CompositeTransform{CenterX: 5, CenterY: 5, Rotation: 90, ScaleX: 2, ScaleY: 2, SkewX: 10, TranslateX: 100})
	roundTrip(t, "blur", LerpBlur, Blur{0}, Blur{8})
	roundTrip(t, "shadow", LerpDropShadow,
		DropShadow{BlurRadius: 2, Color: Color{0, 0, 0, 1}, Direction: 315, Opacity: 1, ShadowDepth: 3},
		DropShadow{BlurRadius: 6, Color: Color{0.5, 0, 0, 1}, Direction: 45, Opacity: 0.5, ShadowDepth: 9})
	roundTrip(t, "solid", LerpSolidBrush, SolidBrush{ColorWhite, 1}, SolidBrush{Color{0, 0, 1, 1}, 0.5})
	roundTrip(t, "linear", LerpLinearGradient,
		LinearGradient{Point{0, 0}, Point{1, 0}, []GradientStop{{0, ColorWhite}, {1, Color{0, 0, 0, 1}}}, 1},
		LinearGradient{Point{0, 0}, Point{0, 1}, []GradientStop{{0.2, Color{1, 0, 0, 1}}, {0.8, Color{0, 1, 0, 1}}}, 0.5})
	roundTrip(t, "radial", LerpRadialGradient,
		RadialGradient{Point{0.5, 0.5}, Point{0.5, 0.5}, 0.5, 0.5, []GradientStop{{0, ColorWhite}}, 1},
		RadialGradient{Point{0.2, 0.2}, Point{0.3, 0.3}, 1, 2, []GradientStop{{1, Color{0, 0, 0, 0}}}, 0})
	roundTrip(t, "floats", Floats, []float64{1, 2, 3}, []float64{4, 5, 6})
	roundTrip(t, "points", Points, []Point{{0, 0}, {1, 1}}, []Point{{2, 2}, {3, 3}})
	roundTrip(t, "path", LerpPath,
		PathGeometry{FillNonZero, []PathFigure{{StartPoint: Point{0, 0}, Segments: []Segment{&LineSegment{Point{10, 0}}}}}},
		PathGeometry{FillEvenOdd, []PathFigure{{StartPoint: Point{5, 5}, Segments: []Segment{&LineSegment{Point{20, 20}}}, IsClosed: true}}})
	roundTrip(t, "fixed", Fixed, fixed.I(3), fixed.I(-9))
}

func TestColorChannelsIndependent(t *testing.T) {
	got := LerpColor(Color{0, 1, 0, 1}, Color{1, 0, 0.5, 0}, 0.5)
	want := Color{0.5, 0.5, 0.25, 0.5}
	if got != want {
		t.Errorf("LerpColor = %+v, want %+v", got, want)
	}
}

func TestColorRGBAPremultiplies(t *testing.T) {
	r, g, b, a := Color{1, 0.5, 0, 0.5}.RGBA()
	if a>>8 != 128 {
		t.Errorf("alpha = %d, want 128", a>>8)
	}
	if r>>8 != 128 || g>>8 != 64 || b != 0 {
		t.Errorf("rgb = %d %d %d, want premultiplied 128 64 0", r>>8, g>>8, b>>8)
	}
}

func TestGridLengthTakesEndUnit(t *testing.T) {
	got := LerpGridLength(GridLength{1, GridStar}, GridLength{3, GridPixel}, 0.5)
	if got.Unit != GridPixel || got.Value != 2 {
		t.Errorf("got %+v, want {2 GridPixel}", got)
	}
	if got := LerpGridLength(GridLength{10, GridPixel}, GridLength{0, GridPixel}, 1.5); got.Value != 0 {
		t.Errorf("negative grid value = %v, want clamp 0", got.Value)
	}
}

func TestBlurRadiusNeverNegative(t *testing.T) {
	if got := LerpBlur(Blur{4}, Blur{0}, 2); got.Radius != 0 {
		t.Errorf("radius = %v, want 0", got.Radius)
	}
}

// --- Collections ---

func TestSliceTailCopiedFromEnd(t *testing.T) {
	start := []float64{0, 0}
	end := []float64{10, 20, 30, 40}
	for _, p := range []float64{0, 0.3, 0.5, 1, 1.7} {
		got := Floats(start, end, p)
		if len(got) != len(end) {
			t.Fatalf("len = %d, want %d", len(got), len(end))
		}
		if got[2] != 30 || got[3] != 40 {
			t.Errorf("p=%v tail = %v, want [30 40]", p, got[2:])
		}
	}
	if got := Floats(start, end, 0.5); got[0] != 5 || got[1] != 10 {
		t.Errorf("eased head = %v, want [5 10]", got[:2])
	}
}

func TestSliceShorterEndDropsExtra(t *testing.T) {
	got := Points([]Point{{0, 0}, {5, 5}, {9, 9}}, []Point{{10, 10}}, 0.5)
	if len(got) != 1 || got[0] != (Point{5, 5}) {
		t.Errorf("got %v, want [{5 5}]", got)
	}
}

func TestSliceNilEnd(t *testing.T) {
	if got := Floats([]float64{1}, nil, 0.5); got != nil {
		t.Errorf("got %v, want nil", got)
	}
}

func TestSliceDoesNotAliasEnd(t *testing.T) {
	end := []float64{1, 2}
	got := Floats(nil, end, 0.5)
	got[0] = 99
	if end[0] != 1 {
		t.Error("result aliases end")
	}
}

func TestGradientStopsTail(t *testing.T) {
	start := []GradientStop{{0, Color{0, 0, 0, 1}}}
	end := []GradientStop{{0, ColorWhite}, {1, Color{1, 0, 0, 1}}}
	got := GradientStops(start, end, 0.5)
	if got[0].Color != (Color{0.5, 0.5, 0.5, 1}) {
		t.Errorf("stop 0 = %+v", got[0])
	}
	if got[1] != end[1] {
		t.Errorf("stop 1 = %+v, want %+v", got[1], end[1])
	}
}

// --- Paths ---

func TestSegmentTypes(t *testing.T) {
	tests := []struct {
		name       string
		start, end Segment
		want       Segment
	}{
		{"line", &LineSegment{Point{0, 0}}, &LineSegment{Point{10, 20}}, &LineSegment{Point{5, 10}}},
		{"bezier",
			&BezierSegment{Point{0, 0}, Point{0, 0}, Point{0, 0}},
			&BezierSegment{Point{2, 2}, Point{4, 4}, Point{6, 6}},
			&BezierSegment{Point{1, 1}, Point{2, 2}, Point{3, 3}}},
		{"quadratic",
			&QuadraticBezierSegment{Point{0, 0}, Point{0, 0}},
			&QuadraticBezierSegment{Point{2, 0}, Point{0, 2}},
			&QuadraticBezierSegment{Point{1, 0}, Point{0, 1}}},
		{"arc",
			&ArcSegment{Point: Point{0, 0}, Size: Size{2, 2}},
			&ArcSegment{Point: Point{4, 4}, Size: Size{6, 6}, RotationAngle: 90, IsLargeArc: true, SweepDirection: Clockwise},
			&ArcSegment{Point: Point{2, 2}, Size: Size{4, 4}, RotationAngle: 45, IsLargeArc: true, SweepDirection: Clockwise}},
		{"polyline",
			&PolyLineSegment{[]Point{{0, 0}}},
			&PolyLineSegment{[]Point{{2, 2}, {8, 8}}},
			&PolyLineSegment{[]Point{{1, 1}, {8, 8}}}},
		{"polybezier",
			&PolyBezierSegment{[]Point{{0, 0}}},
			&PolyBezierSegment{[]Point{{4, 0}}},
			&PolyBezierSegment{[]Point{{2, 0}}}},
		{"polyquadratic",
			&PolyQuadraticBezierSegment{[]Point{{0, 4}}},
			&PolyQuadraticBezierSegment{[]Point{{0, 0}}},
			&PolyQuadraticBezierSegment{[]Point{{0, 2}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LerpSegment(tt.start, tt.end, 0.5)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSegmentMismatchReturnsEnd(t *testing.T) {
	end := &BezierSegment{Point{1, 1}, Point{2, 2}, Point{3, 3}}
	for _, p := range []float64{0, 0.5, 1} {
		got := LerpSegment(&LineSegment{Point{0, 0}}, end, p)
		if got != Segment(end) {
			t.Errorf("p=%v: got %+v, want the end segment itself", p, got)
		}
	}
	if got := LerpSegment(nil, end, 0.5); got != Segment(end) {
		t.Errorf("nil start: got %+v, want end", got)
	}
}

func TestPathFigureTail(t *testing.T) {
	start := PathGeometry{Figures: []PathFigure{{StartPoint: Point{0, 0}}}}
	extra := PathFigure{StartPoint: Point{7, 7}, Segments: []Segment{&LineSegment{Point{1, 1}}}}
	end := PathGeometry{FillRule: FillNonZero, Figures: []PathFigure{{StartPoint: Point{10, 10}}, extra}}

	got := LerpPath(start, end, 0.5)
	if got.FillRule != FillNonZero {
		t.Errorf("fill rule = %v, want FillNonZero", got.FillRule)
	}
	if len(got.Figures) != 2 {
		t.Fatalf("figures = %d, want 2", len(got.Figures))
	}
	if got.Figures[0].StartPoint != (Point{5, 5}) {
		t.Errorf("figure 0 start = %+v, want {5 5}", got.Figures[0].StartPoint)
	}
	if !reflect.DeepEqual(got.Figures[1], extra) {
		t.Errorf("figure 1 = %+v, want copy of end", got.Figures[1])
	}
}

// --- ebiten ---

func TestGeoMMidpoint(t *testing.T) {
	var start, end ebiten.GeoM
	end.Scale(3, 3)
	end.Translate(10, 20)

	got := GeoM(start, end, 0.5)
	if v := got.Element(0, 0); !approxEqual(v, 2, epsilon) {
		t.Errorf("a = %v, want 2", v)
	}
	if v := got.Element(1, 1); !approxEqual(v, 2, epsilon) {
		t.Errorf("d = %v, want 2", v)
	}
	if v := got.Element(0, 2); !approxEqual(v, 5, epsilon) {
		t.Errorf("tx = %v, want 5", v)
	}
	if v := got.Element(1, 2); !approxEqual(v, 10, epsilon) {
		t.Errorf("ty = %v, want 10", v)
	}
	if GeoM(start, end, 1) != end || GeoM(start, end, 0) != start {
		t.Error("GeoM boundaries not exact")
	}
}

func TestColorScaleMidpoint(t *testing.T) {
	var start, end ebiten.ColorScale
	end.SetA(0)
	end.SetR(0)

	got := ColorScale(start, end, 0.5)
	if !approxEqual(float64(got.A()), 0.5, 1e-6) || !approxEqual(float64(got.R()), 0.5, 1e-6) {
		t.Errorf("got r=%v a=%v, want 0.5 0.5", got.R(), got.A())
	}
	if !approxEqual(float64(got.G()), 1, 1e-6) {
		t.Errorf("g = %v, want 1", got.G())
	}
	if ColorScale(start, end, 1) != end {
		t.Error("ColorScale p=1 not exact")
	}
}
