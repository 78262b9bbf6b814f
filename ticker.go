package glide

// Ticker runs a callback once per frame until the callback reports done or
// the ticker is stopped.
type Ticker struct {
	anim    *Animator
	fn      func() bool
	running bool
}

// OnFrame subscribes fn to the animator's frame tick. fn returns true when
// it is finished.
func (a *Animator) OnFrame(fn func() (done bool)) *Ticker {
	k := &Ticker{anim: a, fn: fn}
	k.Start()
	return k
}

// After runs fn once, on the first tick at least seconds after now.
func (a *Animator) After(seconds float64, fn func()) *Ticker {
	due := a.Now() + toMillis(seconds)
	return a.OnFrame(func() bool {
		if a.Now() < due {
			return false
		}
		fn()
		return true
	})
}

// Start subscribes the ticker. Starting a running ticker does nothing.
func (k *Ticker) Start() {
	if k.running || k.fn == nil {
		return
	}
	k.running = true
	k.anim.sched.add(k)
}

// Stop unsubscribes the ticker.
func (k *Ticker) Stop() {
	if !k.running {
		return
	}
	k.running = false
	k.anim.sched.remove(k)
}

// Running reports whether the ticker is subscribed.
func (k *Ticker) Running() bool { return k.running }

func (k *Ticker) tick(float64) {
	if !k.running {
		return
	}
	if k.fn() {
		k.Stop()
	}
}
