package glide

import (
	"math"

	"github.com/phanxgames/glide/ease"
)

// EndReason says why a tween stopped running.
type EndReason uint8

const (
	EndNone              EndReason = iota // still running, or never started
	EndDurationElapsed                    // reached the end value and completed
	EndAllBindingsFailed                  // every binding failed or was stopped individually
	EndStopped                            // Stop was called
	EndNoBindings                         // nothing to animate
)

func (r EndReason) String() string {
	switch r {
	case EndDurationElapsed:
		return "duration-elapsed"
	case EndAllBindingsFailed:
		return "all-bindings-failed"
	case EndStopped:
		return "stopped"
	case EndNoBindings:
		return "no-bindings"
	}
	return "none"
}

// Handler receives tween lifecycle events with the eased progress.
type Handler func(t *Tween, progress float64)

// Tween animates one or more properties of a single target. It is created
// and started by Animator.AddTween and advanced by Animator.Tick.
//
// Lifecycle: an optional delay, then a first tick that captures start values
// and claims the properties, then one setter call per binding per tick until
// the duration elapses. Finish snaps to the end values and raises Update and
// Complete. Stop leaves the properties where they are. Both end by raising
// Stopped.
type Tween struct {
	ID     uint32
	Target any
	// Data is free for the caller.
	Data any

	anim     *Animator
	bindings map[string]*Binding
	order    []string

	durationMs float64
	delayMs    float64
	ease       ease.Func

	startTime   float64
	percentTime float64
	percentEase float64

	running  bool
	firstRun bool
	delayed  bool
	runs     int

	activeCount int
	reason      EndReason

	onBegin, onUpdate, onComplete, onStopped []Handler
}

func newTween(a *Animator, target any, duration float64, fn ease.Func, delay float64) *Tween {
	t := &Tween{
		Target:     target,
		anim:       a,
		bindings:   make(map[string]*Binding),
		durationMs: toMillis(duration),
		delayMs:    toMillis(delay),
		ease:       fn,
		firstRun:   true,
	}
	t.delayed = t.delayMs > 0
	return t
}

// toMillis converts user-facing seconds. Non-positive and NaN collapse to 0.
func toMillis(seconds float64) float64 {
	if math.IsNaN(seconds) || seconds <= 0 {
		return 0
	}
	return seconds * 1000
}

func (t *Tween) bind(b *Binding) {
	if _, ok := t.bindings[b.Name]; !ok {
		t.order = append(t.order, b.Name)
	}
	t.bindings[b.Name] = b
}

// --- Accessors ---

// Running reports whether the tween is subscribed to the scheduler.
func (t *Tween) Running() bool { return t.running }

// Progress returns the linear time ratio of the last applied tick.
func (t *Tween) Progress() float64 { return t.percentTime }

// EasedProgress returns the eased ratio of the last applied tick.
func (t *Tween) EasedProgress() float64 { return t.percentEase }

// Duration returns the duration in seconds.
func (t *Tween) Duration() float64 { return t.durationMs / 1000 }

// Delay returns the delay in seconds.
func (t *Tween) Delay() float64 { return t.delayMs / 1000 }

// EndReason reports why the tween last stopped.
func (t *Tween) EndReason() EndReason { return t.reason }

// ActiveCount returns the number of bindings still being driven.
func (t *Tween) ActiveCount() int { return t.activeCount }

// Binding returns the binding for name, or nil.
func (t *Tween) Binding(name string) *Binding { return t.bindings[name] }

// Names returns binding names in the order they were added.
func (t *Tween) Names() []string { return append([]string(nil), t.order...) }

// --- Events ---

// OnBegin adds a handler raised on the first tick after the delay.
func (t *Tween) OnBegin(h Handler) *Tween {
	t.onBegin = append(t.onBegin, h)
	return t
}

// OnUpdate adds a handler raised after each tick applies progress.
func (t *Tween) OnUpdate(h Handler) *Tween {
	t.onUpdate = append(t.onUpdate, h)
	return t
}

// OnComplete adds a handler raised once the end values are applied.
func (t *Tween) OnComplete(h Handler) *Tween {
	t.onComplete = append(t.onComplete, h)
	return t
}

// Callback runs fn when the tween completes. Stopping it early skips fn.
func (t *Tween) Callback(fn func()) *Tween {
	return t.OnComplete(func(*Tween, float64) { fn() })
}

// OnStopped adds a handler raised when the tween leaves the scheduler.
func (t *Tween) OnStopped(h Handler) *Tween {
	t.onStopped = append(t.onStopped, h)
	return t
}

func (t *Tween) raise(kind EventType, hs []Handler, progress float64) {
	for _, h := range hs {
		h(t, progress)
	}
	if t.anim != nil {
		t.anim.emit(kind, t, progress)
	}
}

// --- Control ---

// Start (re)arms every binding and subscribes to the scheduler. Calling it
// on a running tween resets progress and recaptures start values on the
// next tick; it never subscribes twice. The delay is not re-armed.
func (t *Tween) Start() *Tween {
	if t.anim == nil {
		return t
	}
	t.runs++
	for _, name := range t.order {
		if b := t.bindings[name]; !b.Active {
			b.Active = true
			t.activeCount++
		}
	}
	t.percentTime, t.percentEase = 0, 0
	t.startTime = t.anim.Now()
	t.firstRun = true
	t.reason = EndNone
	if !t.running {
		t.running = true
		t.anim.subscribe(t)
	}
	return t
}

// Stop ends the tween without snapping to the end values. Stopped is raised
// once; later calls do nothing.
func (t *Tween) Stop() {
	t.halt(EndStopped)
}

// Finish applies the end values to every active binding and ends the tween.
// If any binding was still active, Update and Complete are raised with
// progress 1 before Stopped.
func (t *Tween) Finish() {
	if !t.running {
		return
	}
	runs := t.runs
	t.percentTime, t.percentEase = 1, 1

	applied := false
	for _, name := range t.order {
		b := t.bindings[name]
		if !b.Active {
			continue
		}
		applied = true
		if err := b.strategy.Set(t.Target, b, 1); err != nil {
			t.anim.logf("tween %d: finish %s: %v", t.ID, b.Name, err)
		}
		t.deactivate(b)
	}

	reason := EndAllBindingsFailed
	if len(t.bindings) == 0 {
		reason = EndNoBindings
	}
	if applied {
		reason = EndDurationElapsed
		t.reason = reason
		t.raise(EventUpdate, t.onUpdate, 1)
		t.raise(EventComplete, t.onComplete, 1)
		if t.runs != runs {
			// Restarted from a handler.
			return
		}
	}
	t.halt(reason)
}

// StopProps stops driving the named bindings, or every binding when no
// names are given. The tween keeps running and ends on its next tick once
// nothing is left active.
func (t *Tween) StopProps(names ...string) {
	if len(names) == 0 {
		for _, name := range t.order {
			t.deactivate(t.bindings[name])
		}
		return
	}
	for _, name := range names {
		t.deactivateName(name)
	}
}

func (t *Tween) halt(reason EndReason) {
	if !t.running {
		return
	}
	t.running = false
	t.reason = reason
	t.anim.unsubscribe(t)
	for _, name := range t.order {
		t.deactivate(t.bindings[name])
	}
	t.anim.debugf("tween %d ended: %s", t.ID, reason)
	t.raise(EventStopped, t.onStopped, t.percentEase)
}

func (t *Tween) deactivateName(name string) {
	if b, ok := t.bindings[name]; ok {
		t.deactivate(b)
	}
}

func (t *Tween) deactivate(b *Binding) {
	if !b.Active {
		return
	}
	b.Active = false
	t.activeCount--
	t.anim.active.release(t.Target, b.Name, t)
}

// --- Tick ---

func (t *Tween) tick(now float64) {
	if !t.running {
		return
	}
	if len(t.bindings) == 0 {
		t.halt(EndNoBindings)
		return
	}

	elapsed := now - t.startTime
	if t.delayed {
		if elapsed < t.delayMs {
			return
		}
		t.delayed = false
		elapsed -= t.delayMs
		t.startTime = now - elapsed
	}

	if t.activeCount == 0 {
		t.halt(EndAllBindingsFailed)
		return
	}

	if t.firstRun {
		t.firstRun = false
		runs := t.runs
		t.capture()
		if t.activeCount == 0 {
			t.halt(EndAllBindingsFailed)
			return
		}
		t.anim.debugf("tween %d begin", t.ID)
		t.raise(EventBegin, t.onBegin, 0)
		if !t.running || t.runs != runs {
			return
		}
	}

	if elapsed >= t.durationMs {
		t.Finish()
		return
	}

	t.percentTime = elapsed / t.durationMs
	if t.ease != nil {
		t.percentEase = t.ease(t.percentTime)
	} else {
		t.percentEase = t.percentTime
	}

	for _, name := range t.order {
		b := t.bindings[name]
		if !b.Active {
			continue
		}
		if err := b.strategy.Set(t.Target, b, t.percentEase); err != nil {
			t.anim.logf("tween %d: set %s: %v", t.ID, b.Name, err)
			t.deactivate(b)
		}
	}

	if t.activeCount == 0 {
		t.halt(EndAllBindingsFailed)
		return
	}
	t.raise(EventUpdate, t.onUpdate, t.percentEase)
}

// capture reads live start values and claims each active binding.
func (t *Tween) capture() {
	for _, name := range t.order {
		b := t.bindings[name]
		if !b.Active {
			continue
		}
		v, err := b.strategy.Get(t.Target, b)
		if err != nil {
			t.anim.logf("tween %d: get %s: %v", t.ID, b.Name, err)
			t.deactivate(b)
			continue
		}
		b.Start = v
		t.anim.active.claim(t.Target, b.Name, t)
	}
}
