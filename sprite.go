package glide

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/glide/lerp"
)

// Sprite is a drawable image with the standard animatable properties. Its
// fields can be tweened by name: "x", "y", "scalex", "scaley", "rotation",
// "alpha", "color" and "geom", plus the named strategy "autoalpha".
type Sprite struct {
	Name  string
	Image *ebiten.Image

	X, Y           float64
	ScaleX, ScaleY float64
	Rotation       float64 // radians
	PivotX, PivotY float64 // normalized, 0.5 is the center

	Alpha   float64
	Color   lerp.Color
	Visible bool

	// Transform is applied after scale and rotation, before translation.
	Transform ebiten.GeoM
}

// NewSprite returns a visible, opaque, unscaled sprite.
func NewSprite(name string, img *ebiten.Image) *Sprite {
	return &Sprite{
		Name:    name,
		Image:   img,
		ScaleX:  1,
		ScaleY:  1,
		Alpha:   1,
		Color:   lerp.ColorWhite,
		Visible: true,
	}
}

// Draw renders the sprite onto dst.
func (s *Sprite) Draw(dst *ebiten.Image) {
	if !s.Visible || s.Image == nil || s.Alpha <= 0 {
		return
	}
	b := s.Image.Bounds()
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(-float64(b.Dx())*s.PivotX, -float64(b.Dy())*s.PivotY)
	op.GeoM.Scale(s.ScaleX, s.ScaleY)
	op.GeoM.Rotate(s.Rotation)
	op.GeoM.Concat(s.Transform)
	op.GeoM.Translate(s.X, s.Y)

	a := float32(s.Alpha * s.Color.A)
	op.ColorScale.Scale(float32(s.Color.R)*a, float32(s.Color.G)*a, float32(s.Color.B)*a, a)
	dst.DrawImage(s.Image, &op)
}

// --- Standard properties ---

// Sprite property handles. Each is also a shortcut under its own name.
var (
	PropX         = NewProperty("x")
	PropY         = NewProperty("y")
	PropScaleX    = NewProperty("scalex")
	PropScaleY    = NewProperty("scaley")
	PropRotation  = NewProperty("rotation")
	PropAlpha     = NewProperty("alpha")
	PropColor     = NewProperty("color")
	PropTransform = NewProperty("geom")
)

func registerSpriteProperties(r *Registry) {
	add := func(p *Property, s Strategy) {
		_ = r.RegisterProperty(p, s)
		_ = r.RegisterShortcut(p.Name(), p)
	}
	field := func(p *Property, get func(*Sprite) float64, set func(*Sprite, float64)) {
		add(p, FuncStrategy(get, set, lerp.Float))
	}

	field(PropX, func(s *Sprite) float64 { return s.X }, func(s *Sprite, v float64) { s.X = v })
	field(PropY, func(s *Sprite) float64 { return s.Y }, func(s *Sprite, v float64) { s.Y = v })
	field(PropScaleX, func(s *Sprite) float64 { return s.ScaleX }, func(s *Sprite, v float64) { s.ScaleX = v })
	field(PropScaleY, func(s *Sprite) float64 { return s.ScaleY }, func(s *Sprite, v float64) { s.ScaleY = v })
	field(PropRotation, func(s *Sprite) float64 { return s.Rotation }, func(s *Sprite, v float64) { s.Rotation = v })
	field(PropAlpha, func(s *Sprite) float64 { return s.Alpha }, func(s *Sprite, v float64) { s.Alpha = v })
	add(PropColor, FuncStrategy(
		func(s *Sprite) lerp.Color { return s.Color },
		func(s *Sprite, c lerp.Color) { s.Color = c },
		lerp.LerpColor))
	add(PropTransform, FuncStrategy(
		func(s *Sprite) ebiten.GeoM { return s.Transform },
		func(s *Sprite, g ebiten.GeoM) { s.Transform = g },
		lerp.GeoM))

	_ = r.RegisterNamed("autoalpha", autoAlpha)
}

// autoAlpha fades alpha within [0, 1] and hides the sprite at zero, so
// fully faded sprites cost nothing to draw.
var autoAlpha = FuncStrategy(
	func(s *Sprite) float64 { return s.Alpha },
	func(s *Sprite, v float64) {
		s.Alpha = v
		s.Visible = v > 0
	},
	func(start, end, p float64) float64 {
		return math.Max(0, math.Min(1, lerp.Float(start, end, p)))
	},
)
