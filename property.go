package glide

import "fmt"

// Property is an opaque handle naming one animatable property. Handles are
// compared by identity, so two calls to NewProperty with the same name
// produce different properties.
type Property struct {
	name string
}

// NewProperty creates a property handle. The name is used for logging and
// for the active-property bookkeeping.
func NewProperty(name string) *Property {
	return &Property{name: name}
}

// Name returns the name the handle was created with.
func (p *Property) Name() string {
	if p == nil {
		return ""
	}
	return p.name
}

func (p *Property) String() string { return p.Name() }

// PropertyTarget is implemented by objects that expose their state through
// property handles. Strategies built with NewStrategy read and write targets
// through this interface.
type PropertyTarget interface {
	GetProperty(p *Property) (any, error)
	SetProperty(p *Property, v any) error
}

// Bag is a PropertyTarget backed by a map. It is useful for animating plain
// values that are not fields of any object, and in tests.
type Bag struct {
	values map[*Property]any
}

// NewBag returns an empty Bag.
func NewBag() *Bag {
	return &Bag{values: make(map[*Property]any)}
}

// Get returns the stored value for p, or nil.
func (b *Bag) Get(p *Property) any {
	return b.values[p]
}

// Set stores v under p and returns the bag for chaining.
func (b *Bag) Set(p *Property, v any) *Bag {
	b.values[p] = v
	return b
}

// Float returns the value for p as a float64 and whether it was one.
func (b *Bag) Float(p *Property) (float64, bool) {
	return toFloat(b.values[p])
}

// GetProperty implements PropertyTarget.
func (b *Bag) GetProperty(p *Property) (any, error) {
	v, ok := b.values[p]
	if !ok {
		return nil, fmt.Errorf("glide: get %q: %w", p.Name(), ErrNoValue)
	}
	return v, nil
}

// SetProperty implements PropertyTarget.
func (b *Bag) SetProperty(p *Property, v any) error {
	b.values[p] = v
	return nil
}
