package glide

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

// --- Exclusivity ---

func TestNewTweenTakesPropertyBeforeFirstTick(t *testing.T) {
	a, clk := newTestAnimator()
	s := NewSprite("s", nil)

	old, _ := a.AddTween(s, "alpha", 0.0, 1.0, nil, 0)
	oldCompleted := 0
	old.OnComplete(func(*Tween, float64) { oldCompleted++ })
	a.Tick()
	step(a, clk, 100)
	if a.Owner(s, "alpha") != old {
		t.Fatal("first tween does not own alpha")
	}

	next, _ := a.AddTween(s, "alpha", 1.0, 1.0, nil, 0)
	if old.Binding("alpha").Active {
		t.Fatal("old binding still active after the new tween was added")
	}

	before := s.Alpha
	a.Tick()
	// Only the new tween wrote alpha, and at its p=0 that is the captured value.
	if s.Alpha != before {
		t.Errorf("Alpha = %f, want %f", s.Alpha, before)
	}
	if a.Owner(s, "alpha") != next {
		t.Error("new tween does not own alpha")
	}
	if old.Running() || old.EndReason() != EndAllBindingsFailed {
		t.Errorf("old running=%v reason=%v, want stopped with %v", old.Running(), old.EndReason(), EndAllBindingsFailed)
	}

	step(a, clk, 1000)
	if s.Alpha != 1 {
		t.Errorf("Alpha = %f, want 1", s.Alpha)
	}
	if oldCompleted != 0 {
		t.Errorf("old tween completed %d times, want 0", oldCompleted)
	}
}

func TestHandoffKeepsOtherProperties(t *testing.T) {
	a, clk := newTestAnimator()
	s := NewSprite("s", nil)

	both, _ := a.AddTween(s, []string{"x", "y"}, []any{100.0, 100.0}, 1.0, nil, 0)
	completed := 0
	both.OnComplete(func(*Tween, float64) { completed++ })
	a.Tick()

	if _, err := a.AddTween(s, "x", -50.0, 0.5, nil, 0); err != nil {
		t.Fatal(err)
	}
	a.Tick()
	step(a, clk, 1000)

	if s.X != -50 {
		t.Errorf("X = %f, want -50", s.X)
	}
	if s.Y != 100 {
		t.Errorf("Y = %f, want 100", s.Y)
	}
	if completed != 1 {
		t.Errorf("completed = %d, want 1", completed)
	}
}

func TestDelayedTweenWaitsToTakeProperty(t *testing.T) {
	a, clk := newTestAnimator()
	s := NewSprite("s", nil)

	first, _ := a.AddTween(s, "x", 100.0, 1.0, nil, 0)
	a.Tick()
	second, _ := a.AddTween(s, "x", 0.0, 0.5, nil, 0.2)

	step(a, clk, 100)
	if !first.Binding("x").Active || a.Owner(s, "x") != first {
		t.Fatal("delayed tween took x before its delay elapsed")
	}
	if !approxEqual(s.X, 10, epsilon) {
		t.Errorf("X = %f, want 10", s.X)
	}

	step(a, clk, 100)
	if a.Owner(s, "x") != second {
		t.Error("delayed tween did not take x after its delay")
	}
	if first.Binding("x").Active {
		t.Error("first tween still drives x")
	}
}

func TestOwnerRegistryEmptiesOnFinish(t *testing.T) {
	a, clk := newTestAnimator()
	s := NewSprite("s", nil)
	a.AddTween(s, []string{"x", "y"}, []any{1.0, 1.0}, 0.1, nil, 0)
	a.Tick()
	if a.active.len() != 2 {
		t.Fatalf("owned pairs = %d, want 2", a.active.len())
	}
	step(a, clk, 100)
	if a.active.len() != 0 {
		t.Errorf("owned pairs = %d after finish, want 0", a.active.len())
	}
	if len(a.active.owners) != 0 {
		t.Error("empty inner map left behind")
	}
}

// --- StopTween ---

func TestStopTweenNamed(t *testing.T) {
	a, clk := newTestAnimator()
	s := NewSprite("s", nil)
	tw, _ := a.AddTween(s, []string{"x", "y"}, []any{100.0, 100.0}, 1.0, nil, 0)
	a.Tick()
	step(a, clk, 500)

	a.StopTween(s, "x")
	step(a, clk, 250)

	if !approxEqual(s.X, 50, epsilon) {
		t.Errorf("X = %f, want 50 (stopped)", s.X)
	}
	if !approxEqual(s.Y, 75, epsilon) {
		t.Errorf("Y = %f, want 75 (still running)", s.Y)
	}
	if !tw.Running() {
		t.Error("tween stopped with y still active")
	}
}

func TestStopTweenByHandle(t *testing.T) {
	a, clk := newTestAnimator()
	s := NewSprite("s", nil)
	tw, _ := a.AddTween(s, "rotation", 1.0, 1.0, nil, 0)
	a.Tick()
	a.StopTween(s, PropRotation)
	step(a, clk, 100)
	if tw.Running() {
		t.Error("tween running after its only property was stopped")
	}
	if s.Rotation != 0 {
		t.Errorf("Rotation = %f, want 0", s.Rotation)
	}
}

func TestStopTweenAll(t *testing.T) {
	a, clk := newTestAnimator()
	s := NewSprite("s", nil)
	other := NewSprite("other", nil)
	tw, _ := a.AddTween(s, []string{"x", "y"}, []any{1.0, 1.0}, 1.0, nil, 0)
	keep, _ := a.AddTween(other, "x", 1.0, 1.0, nil, 0)
	completed := 0
	tw.OnComplete(func(*Tween, float64) { completed++ })

	a.Tick()
	a.StopTween(s)
	step(a, clk, 100)

	if tw.Running() || completed != 0 {
		t.Errorf("running=%v completed=%d, want stopped without completion", tw.Running(), completed)
	}
	if !keep.Running() {
		t.Error("StopTween reached a tween on another target")
	}
}

// --- Stats and logging ---

func TestStats(t *testing.T) {
	a, clk := newTestAnimator()
	s := NewSprite("s", nil)
	a.AddTween(s, "x", 1.0, 0.1, nil, 0)
	a.AddTween(s, "y", 1.0, 0.2, nil, 0)
	if got := a.Stats(); got.Created != 2 || got.Running != 2 {
		t.Errorf("Stats = %+v, want 2 created 2 running", got)
	}
	a.Tick()
	step(a, clk, 100)
	if got := a.Stats().Running; got != 1 {
		t.Errorf("Running = %d, want 1", got)
	}
	step(a, clk, 100)
	if got := a.Stats().Running; got != 0 {
		t.Errorf("Running = %d, want 0", got)
	}
}

func TestSetterFailureIsLogged(t *testing.T) {
	var buf bytes.Buffer
	clk := &FrameClock{}
	a := NewAnimator(Config{Clock: clk, Logger: log.New(&buf, "", 0)})
	rec := newRecorder(clk)
	v := NewProperty("v")
	rec.values[v] = 0.0
	rec.fail[v] = true

	a.AddTween(rec, v, 1.0, 1.0, nil, 0)
	a.Tick()
	if !strings.Contains(buf.String(), "glide: ") || !strings.Contains(buf.String(), "set failed") {
		t.Errorf("log = %q, want a glide-prefixed set failure", buf.String())
	}
}

func TestDebugLogsLifecycle(t *testing.T) {
	var buf bytes.Buffer
	a := NewAnimator(Config{Clock: &FrameClock{}, Logger: log.New(&buf, "", 0), Debug: true})
	a.AddTween(NewSprite("s", nil), "x", 1.0, 0, nil, 0)
	a.Tick()
	out := buf.String()
	for _, want := range []string{"begin", "ended: duration-elapsed", "running: 0"} {
		if !strings.Contains(out, want) {
			t.Errorf("debug log missing %q:\n%s", want, out)
		}
	}
}

func TestAnimatorsAreIndependent(t *testing.T) {
	a1, _ := newTestAnimator()
	a2, _ := newTestAnimator()
	s := NewSprite("s", nil)
	t1, _ := a1.AddTween(s, "x", 1.0, 1.0, nil, 0)
	a2.AddTween(s, "x", 2.0, 1.0, nil, 0)
	a1.Tick()
	a2.Tick()
	if !t1.Binding("x").Active {
		t.Error("a tween in another animator took x")
	}
}

// --- Frame callbacks ---

func TestAfterFiresOnce(t *testing.T) {
	a, clk := newTestAnimator()
	fired := 0
	k := a.After(0.1, func() { fired++ })

	step(a, clk, 50)
	if fired != 0 {
		t.Fatal("fired early")
	}
	step(a, clk, 50)
	step(a, clk, 50)
	if fired != 1 {
		t.Errorf("fired = %d, want 1", fired)
	}
	if k.Running() {
		t.Error("timer still subscribed")
	}
}

func TestOnFrameRunsUntilDone(t *testing.T) {
	a, _ := newTestAnimator()
	n := 0
	a.OnFrame(func() bool {
		n++
		return n == 3
	})
	for i := 0; i < 10; i++ {
		a.Tick()
	}
	if n != 3 {
		t.Errorf("callback ran %d times, want 3", n)
	}
}

func TestTickerStop(t *testing.T) {
	a, _ := newTestAnimator()
	n := 0
	k := a.OnFrame(func() bool { n++; return false })
	a.Tick()
	k.Stop()
	a.Tick()
	if n != 1 {
		t.Errorf("callback ran %d times, want 1", n)
	}
}

func TestTweenStartedInsideTickWaitsForNextFrame(t *testing.T) {
	a, _ := newTestAnimator()
	s := NewSprite("s", nil)
	var tw *Tween
	a.OnFrame(func() bool {
		tw, _ = a.AddTween(s, "x", 7.0, 0, nil, 0)
		return true
	})
	a.Tick()
	if s.X != 0 {
		t.Errorf("X = %f, want 0 until the next frame", s.X)
	}
	a.Tick()
	if s.X != 7 || tw.Running() {
		t.Errorf("X = %f running=%v, want 7 and finished", s.X, tw.Running())
	}
}
