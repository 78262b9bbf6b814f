package glide

import "slices"

// Group collects tweens and raises one completion when all of them are
// done. A tween leaves Running on its first Complete, or on Stopped when
// UseStopped is set; when Running empties the group's handlers fire.
type Group struct {
	Items   []*Tween
	Running []*Tween

	// UseComplete counts a tween's Complete event as done. On by default.
	UseComplete bool
	// UseStopped also counts Stopped, so stopped tweens do not hold the
	// group open.
	UseStopped bool

	onComplete []func(g *Group)
}

// NewGroup returns an empty group that counts Complete events.
func NewGroup(tweens ...*Tween) *Group {
	g := &Group{UseComplete: true}
	for _, t := range tweens {
		g.Add(t)
	}
	return g
}

// Add subscribes the group to t's events and marks it running. A tween that
// has already ended is recorded in Items only.
func (g *Group) Add(t *Tween) *Group {
	if t == nil || slices.Contains(g.Items, t) {
		return g
	}
	g.Items = append(g.Items, t)
	if !t.Running() {
		return g
	}
	g.Running = append(g.Running, t)
	t.OnComplete(func(t *Tween, _ float64) {
		if g.UseComplete {
			g.settle(t)
		}
	})
	t.OnStopped(func(t *Tween, _ float64) {
		if g.UseStopped {
			g.settle(t)
		}
	})
	return g
}

// OnComplete registers fn to run when the group completes.
func (g *Group) OnComplete(fn func(g *Group)) *Group {
	g.onComplete = append(g.onComplete, fn)
	return g
}

func (g *Group) settle(t *Tween) {
	i := slices.Index(g.Running, t)
	if i < 0 {
		return
	}
	g.Running = slices.Delete(g.Running, i, i+1)
	if len(g.Running) == 0 {
		g.complete()
	}
}

func (g *Group) complete() {
	for _, fn := range g.onComplete {
		fn(g)
	}
}

// FinishGroup finishes every running tween, snapping each to its end values.
// The tweens complete as usual, which may already complete the group; the
// group's handlers then run once more unconditionally, even when nothing was
// running. It reports whether anything was running.
func (g *Group) FinishGroup() bool {
	list := slices.Clone(g.Running)
	for _, t := range list {
		t.Finish()
	}
	g.Running = g.Running[:0]
	g.complete()
	return len(list) > 0
}

// StopGroup stops every running tween where it stands. The group completes
// only if UseStopped is set. It reports whether anything was running.
func (g *Group) StopGroup() bool {
	if len(g.Running) == 0 {
		return false
	}
	for _, t := range slices.Clone(g.Running) {
		t.Stop()
	}
	return true
}

// Reset forgets every tween and completion handler.
func (g *Group) Reset() {
	g.ClearGroup()
	g.ClearComplete()
}

// ClearGroup forgets every tween but keeps completion handlers.
func (g *Group) ClearGroup() {
	g.Items = nil
	g.Running = nil
}

// ClearComplete drops the completion handlers.
func (g *Group) ClearComplete() {
	g.onComplete = nil
}
