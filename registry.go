package glide

import (
	"fmt"
	"image/color"
	"log"
	"reflect"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/glide/lerp"
	"golang.org/x/image/math/fixed"
)

// Registry maps properties to strategies. Lookups consult, in order, the
// strategy registered for the exact property handle, the strategy for the
// end value's type, and finally a numeric fallback. String names resolve
// through shortcuts to handles, or to a named strategy.
//
// Every registration refuses to overwrite an existing key. The default
// strategies are installed on first use.
type Registry struct {
	byProperty map[*Property]Strategy
	byType     map[reflect.Type]Strategy
	byName     map[string]Strategy
	shortcuts  map[string]*Property

	logger *log.Logger
	ready  bool
}

// NewRegistry returns a registry that logs refused registrations to the
// standard logger.
func NewRegistry() *Registry {
	return &Registry{
		byProperty: make(map[*Property]Strategy),
		byType:     make(map[reflect.Type]Strategy),
		byName:     make(map[string]Strategy),
		shortcuts:  make(map[string]*Property),
		logger:     log.Default(),
	}
}

// SetLogger redirects registry warnings. A nil logger restores the default.
func (r *Registry) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.Default()
	}
	r.logger = l
}

// RegisterProperty binds s to the property handle p.
func (r *Registry) RegisterProperty(p *Property, s Strategy) error {
	r.ensure()
	if _, ok := r.byProperty[p]; ok {
		return r.refuse("property", p.Name())
	}
	r.byProperty[p] = s
	return nil
}

// RegisterShortcut makes name resolve to the handle p.
func (r *Registry) RegisterShortcut(name string, p *Property) error {
	r.ensure()
	if _, ok := r.shortcuts[name]; ok {
		return r.refuse("shortcut", name)
	}
	r.shortcuts[name] = p
	return nil
}

// RegisterNamed binds s to a string name with no property handle behind it.
// The strategy must reach the target without PropertyTarget access.
func (r *Registry) RegisterNamed(name string, s Strategy) error {
	r.ensure()
	if _, ok := r.byName[name]; ok {
		return r.refuse("named strategy", name)
	}
	r.byName[name] = s
	return nil
}

// RegisterType binds s to end values of type T.
func RegisterType[T any](r *Registry, s Strategy) error {
	r.ensure()
	return r.registerType(reflect.TypeFor[T](), s)
}

// RegisterLerp registers a PropertyTarget strategy for values of type T
// interpolated by fn.
func RegisterLerp[T any](r *Registry, fn lerp.Func[T]) error {
	return RegisterType[T](r, NewStrategy(fn))
}

func (r *Registry) registerType(t reflect.Type, s Strategy) error {
	if _, ok := r.byType[t]; ok {
		return r.refuse("type", t.String())
	}
	r.byType[t] = s
	return nil
}

func (r *Registry) refuse(kind, key string) error {
	err := fmt.Errorf("glide: register %s %q: %w", kind, key, ErrDuplicateKey)
	r.logger.Printf("%v", err)
	return err
}

// Shortcut returns the handle registered under name.
func (r *Registry) Shortcut(name string) (*Property, bool) {
	r.ensure()
	p, ok := r.shortcuts[name]
	return p, ok
}

// resolve turns a property reference into a binding template. ref is a
// string or a *Property.
func (r *Registry) resolve(ref any, end any) (*Binding, error) {
	r.ensure()
	b := &Binding{End: end, Start: end}
	switch v := ref.(type) {
	case string:
		if p, ok := r.shortcuts[v]; ok {
			b.Name, b.Property = p.Name(), p
			break
		}
		if s, ok := r.byName[v]; ok {
			b.Name, b.strategy = v, s
			return b, nil
		}
		return nil, fmt.Errorf("glide: property %q: %w", v, ErrUnknownProperty)
	case *Property:
		if v == nil {
			return nil, fmt.Errorf("glide: nil property handle: %w", ErrUnknownProperty)
		}
		b.Name, b.Property = v.Name(), v
	default:
		return nil, fmt.Errorf("glide: property reference %T: %w", ref, ErrUnknownProperty)
	}

	if s, ok := r.byProperty[b.Property]; ok {
		b.strategy = s
		return b, nil
	}
	if end != nil {
		if s, ok := r.byType[reflect.TypeOf(end)]; ok {
			b.strategy = s
			return b, nil
		}
	}
	if _, ok := toFloat(end); ok {
		b.strategy = numericStrategy
		return b, nil
	}
	return nil, fmt.Errorf("glide: no strategy for %s with end value %T: %w", b.Name, end, ErrValueType)
}

func (r *Registry) ensure() {
	if r.ready {
		return
	}
	r.ready = true
	registerDefaultTypes(r)
	registerSpriteProperties(r)
}

func registerDefaultTypes(r *Registry) {
	def := func(t reflect.Type, s Strategy) { _ = r.registerType(t, s) }

	def(reflect.TypeFor[float64](), NewStrategy(lerp.Float))
	def(reflect.TypeFor[float32](), NewStrategy(lerp.Scalar[float32]))
	def(reflect.TypeFor[int](), NewStrategy(lerp.Scalar[int]))
	def(reflect.TypeFor[fixed.Int26_6](), NewStrategy(lerp.Fixed))
	def(reflect.TypeFor[fixed.Point26_6](), NewStrategy(lerp.FixedPoint))

	def(reflect.TypeFor[lerp.Color](), NewStrategy(lerp.LerpColor))
	def(reflect.TypeFor[color.RGBA](), NewStrategy(lerp.RGBA))
	def(reflect.TypeFor[color.NRGBA](), NewStrategy(lerp.NRGBA))
	def(reflect.TypeFor[ebiten.ColorScale](), NewStrategy(lerp.ColorScale))

	def(reflect.TypeFor[lerp.Point](), NewStrategy(lerp.LerpPoint))
	def(reflect.TypeFor[lerp.Size](), NewStrategy(lerp.LerpSize))
	def(reflect.TypeFor[lerp.Rect](), NewStrategy(lerp.LerpRect))
	def(reflect.TypeFor[lerp.Thickness](), NewStrategy(lerp.LerpThickness))
	def(reflect.TypeFor[lerp.CornerRadius](), NewStrategy(lerp.LerpCornerRadius))
	def(reflect.TypeFor[lerp.GridLength](), NewStrategy(lerp.LerpGridLength))

	def(reflect.TypeFor[lerp.Matrix](), NewStrategy(lerp.LerpMatrix))
	def(reflect.TypeFor[lerp.Matrix3D](), NewStrategy(lerp.LerpMatrix3D))
	def(reflect.TypeFor[lerp.CompositeTransform](), NewStrategy(lerp.LerpCompositeTransform))
	def(reflect.TypeFor[ebiten.GeoM](), NewStrategy(lerp.GeoM))

	def(reflect.TypeFor[[]float64](), NewStrategy(lerp.Floats))
	def(reflect.TypeFor[[]lerp.Point](), NewStrategy(lerp.Points))
	def(reflect.TypeFor[[]lerp.GradientStop](), NewStrategy(lerp.GradientStops))
	def(reflect.TypeFor[lerp.PathGeometry](), NewStrategy(lerp.LerpPath))

	def(reflect.TypeFor[lerp.Blur](), NewStrategy(lerp.LerpBlur))
	def(reflect.TypeFor[lerp.DropShadow](), NewStrategy(lerp.LerpDropShadow))
	def(reflect.TypeFor[lerp.SolidBrush](), NewStrategy(lerp.LerpSolidBrush))
	def(reflect.TypeFor[lerp.LinearGradient](), NewStrategy(lerp.LerpLinearGradient))
	def(reflect.TypeFor[lerp.RadialGradient](), NewStrategy(lerp.LerpRadialGradient))
}
