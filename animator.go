package glide

import (
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/phanxgames/glide/ease"
	"github.com/phanxgames/glide/lerp"
)

// Config configures an Animator. The zero value is usable: a wall-clock
// Stopwatch, a fresh Registry and the standard logger.
type Config struct {
	// Clock is the time base. Use a *FrameClock for fixed-step games and
	// tests.
	Clock Clock
	// Registry resolves properties to strategies. Animators may share one.
	Registry *Registry
	// Logger receives warnings about failed bindings and refused
	// registrations. Defaults to log.Default().
	Logger *log.Logger
	// Debug logs tween lifecycle transitions and per-tick counters.
	Debug bool
}

// Stats holds tween counters.
type Stats struct {
	Created int // tweens created by AddTween and Play
	Running int // tweens currently subscribed to the scheduler
}

// Animator owns everything a set of tweens share: the clock, the per-frame
// scheduler, the active-property bookkeeping and the strategy registry.
// Independent animators never interact.
//
// Animator is not safe for concurrent use. Call every method from the
// goroutine that calls Tick.
type Animator struct {
	clock    Clock
	registry *Registry
	logger   *log.Logger
	debug    bool

	sched  scheduler
	active activeSet
	store  EventStore

	nextID        uint32
	stats         Stats
	warnedRunning bool
}

// NewAnimator creates an animator from cfg.
func NewAnimator(cfg Config) *Animator {
	a := &Animator{
		clock:    cfg.Clock,
		registry: cfg.Registry,
		logger:   cfg.Logger,
		debug:    cfg.Debug,
		active:   newActiveSet(),
	}
	if a.logger == nil {
		a.logger = log.Default()
	}
	if a.clock == nil {
		a.clock = NewStopwatch()
	}
	if a.registry == nil {
		a.registry = NewRegistry()
		a.registry.SetLogger(a.logger)
	}
	return a
}

// Now returns the clock's elapsed milliseconds.
func (a *Animator) Now() float64 { return a.clock.ElapsedMilliseconds() }

// Clock returns the animator's time base.
func (a *Animator) Clock() Clock { return a.clock }

// Registry returns the strategy registry.
func (a *Animator) Registry() *Registry { return a.registry }

// Stats returns the current counters.
func (a *Animator) Stats() Stats { return a.stats }

// SetEventStore forwards lifecycle events to store. Pass nil to detach.
func (a *Animator) SetEventStore(store EventStore) {
	a.store = store
}

// Tick advances every subscribed tween and frame callback once, at the
// clock's current time. Call it once per frame.
func (a *Animator) Tick() {
	a.sched.tick(a.Now())
	a.debugLogStats()
}

// Owner returns the tween currently driving name on target, if any.
func (a *Animator) Owner(target any, name string) *Tween {
	if !isComparable(target) {
		return nil
	}
	return a.active.owner(target, name)
}

// --- Tweens ---

// AddTween creates and starts a tween on target.
//
// props is a property name, a *Property, or a []string, []*Property or
// []any of them. With a single property, end is its end value. With a
// list, end must be a []any of the same length. Durations and delays are
// in seconds; a nil fn means linear.
//
// A nil target yields a tween with no bindings, which ends on its first
// tick. An unknown property name returns that no-op tween together with an
// error wrapping ErrUnknownProperty. Any other problem is logged and also
// yields the no-op tween, with a nil error.
func (a *Animator) AddTween(target any, props any, end any, duration float64, fn ease.Func, delay float64) (*Tween, error) {
	if target == nil {
		return a.noop(nil), nil
	}
	if !isComparable(target) {
		a.logf("add tween: %T: %v", target, ErrTargetNotComparable)
		return a.noop(nil), nil
	}

	refs, ends, err := pairs(props, end)
	if err != nil {
		a.logf("add tween on %T: %v", target, err)
		return a.noop(target), nil
	}

	t := newTween(a, target, duration, fn, delay)
	for i, ref := range refs {
		b, err := a.registry.resolve(ref, ends[i])
		if err != nil {
			if errors.Is(err, ErrUnknownProperty) {
				return a.noop(target), err
			}
			a.logf("add tween on %T: %v", target, err)
			return a.noop(target), nil
		}
		t.bind(b)
	}

	a.nextID++
	t.ID = a.nextID
	a.stats.Created++

	// Undelayed tweens take their properties right away; a delayed tween
	// leaves current owners alone until its own first tick.
	if t.delayMs == 0 && len(t.order) > 0 {
		a.stopProps(target, t.order...)
	}
	return t.Start(), nil
}

func (a *Animator) noop(target any) *Tween {
	if !isComparable(target) {
		target = nil
	}
	t := newTween(a, target, 0, nil, 0)
	return t.Start()
}

// pairs normalizes the property and end value arguments of AddTween.
func pairs(props any, end any) ([]any, []any, error) {
	var refs []any
	switch p := props.(type) {
	case string, *Property:
		return []any{p}, []any{normalizeEnd(end)}, nil
	case []string:
		for _, s := range p {
			refs = append(refs, s)
		}
	case []*Property:
		for _, h := range p {
			refs = append(refs, h)
		}
	case []any:
		refs = p
	default:
		return nil, nil, fmt.Errorf("glide: property argument %T: %w", props, ErrUnknownProperty)
	}

	ends, ok := end.([]any)
	if !ok {
		if len(refs) != 1 {
			return nil, nil, fmt.Errorf("glide: %d properties, end value %T: %w", len(refs), end, ErrMismatchedValues)
		}
		ends = []any{end}
	}
	if len(ends) != len(refs) {
		return nil, nil, fmt.Errorf("glide: %d properties, %d end values: %w", len(refs), len(ends), ErrMismatchedValues)
	}
	out := make([]any, len(ends))
	for i, e := range ends {
		out[i] = normalizeEnd(e)
	}
	return refs, out, nil
}

// normalizeEnd turns untyped-constant ints into float64, the type every
// standard numeric property uses.
func normalizeEnd(v any) any {
	if n, ok := v.(int); ok {
		return float64(n)
	}
	return v
}

// StopTween stops driving the named properties on target in every running
// tween. With no names, every property of every tween on target stops.
// props are names or *Property handles.
func (a *Animator) StopTween(target any, props ...any) {
	if target == nil || !isComparable(target) {
		return
	}
	names := make([]string, 0, len(props))
	for _, p := range props {
		switch v := p.(type) {
		case string:
			if h, ok := a.registry.Shortcut(v); ok {
				names = append(names, h.Name())
				if h.Name() != v {
					names = append(names, v)
				}
				continue
			}
			names = append(names, v)
		case *Property:
			names = append(names, v.Name())
		}
	}
	if len(props) > 0 && len(names) == 0 {
		return
	}
	a.stopProps(target, names...)
}

func (a *Animator) stopProps(target any, names ...string) {
	a.sched.tweens(func(t *Tween) {
		if t.Target == target {
			t.StopProps(names...)
		}
	})
}

// --- Scheduler plumbing ---

func (a *Animator) subscribe(t *Tween) {
	a.sched.add(t)
	a.stats.Running++
	a.debugCheckRunning()
}

func (a *Animator) unsubscribe(t *Tween) {
	a.sched.remove(t)
	a.stats.Running--
	a.debugCheckRunning()
}

func (a *Animator) emit(kind EventType, t *Tween, progress float64) {
	if a.store == nil {
		return
	}
	a.store.EmitEvent(TweenEvent{Type: kind, TweenID: t.ID, Target: t.Target, Progress: progress})
}

// isComparable reports whether v can key a map without panicking. Interface
// fields are checked by their dynamic values, so a struct holding a slice in
// an any field is rejected.
func isComparable(v any) bool {
	if v == nil {
		return true
	}
	return reflect.ValueOf(v).Comparable()
}

// EaseValue linearly interpolates between start and end.
func EaseValue(start, end, percent float64) float64 {
	return lerp.Float(start, end, percent)
}
