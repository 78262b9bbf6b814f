package glide

// debugMaxRunning is the running-tween count above which debug mode warns
// once per crossing. Thousands of live tweens usually mean tweens are
// started every frame and never finish.
const debugMaxRunning = 1000

// debugf logs lifecycle detail when the animator is in debug mode.
func (a *Animator) debugf(format string, args ...any) {
	if !a.debug {
		return
	}
	a.logger.Printf("glide: debug: "+format, args...)
}

// logf logs a recoverable failure.
func (a *Animator) logf(format string, args ...any) {
	a.logger.Printf("glide: "+format, args...)
}

// debugCheckRunning warns when the running count first exceeds the threshold.
func (a *Animator) debugCheckRunning() {
	if !a.debug {
		return
	}
	if a.stats.Running > debugMaxRunning && !a.warnedRunning {
		a.warnedRunning = true
		a.logger.Printf("glide: warning: %d running tweens exceeds %d", a.stats.Running, debugMaxRunning)
	}
	if a.stats.Running <= debugMaxRunning {
		a.warnedRunning = false
	}
}

// debugLogStats prints the per-tick counters.
func (a *Animator) debugLogStats() {
	if !a.debug {
		return
	}
	a.logger.Printf("glide: debug: tick %.1fms | running: %d | created: %d | owned props: %d",
		a.Now(), a.stats.Running, a.stats.Created, a.active.len())
}
