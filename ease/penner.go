package ease

import "math"

// Penner is an easing equation in Robert Penner's four-argument form:
// t is the current time, b the start value, c the change in value and d
// the duration. Every equation returns b at t=0 and b+c at t=d, except
// for the overshooting families, which only guarantee the endpoints.
type Penner func(t, b, c, d float64) float64

// Overshoot constants for the Back family.
const (
	backOvershoot      = 1.70158
	backInOutOvershoot = backOvershoot * 1.525
)

// Bounce constants.
const (
	bounceScale = 7.5625
	bounceDiv   = 2.75
)

// inOut builds an ease-in-out equation from an ease-in and an ease-out by
// running each over half the duration with half the change. Continuity at
// the midpoint follows from in(d, b, c/2, d) == out(0, b+c/2, c/2, d).
func inOut(in, out Penner) Penner {
	return func(t, b, c, d float64) float64 {
		if t < d/2 {
			return in(t*2, b, c/2, d)
		}
		return out(t*2-d, b+c/2, c/2, d)
	}
}

// outIn is the mirror of inOut.
func outIn(in, out Penner) Penner {
	return func(t, b, c, d float64) float64 {
		if t < d/2 {
			return out(t*2, b, c/2, d)
		}
		return in(t*2-d, b+c/2, c/2, d)
	}
}

// --- Linear ---

// Linear is constant-velocity motion.
func Linear(t, b, c, d float64) float64 {
	return c*t/d + b
}

// --- Quadratic ---

// InQuad accelerates from zero velocity.
func InQuad(t, b, c, d float64) float64 {
	t /= d
	return c*t*t + b
}

// OutQuad decelerates to zero velocity.
func OutQuad(t, b, c, d float64) float64 {
	t /= d
	return -c*t*(t-2) + b
}

// InOutQuad accelerates until halfway, then decelerates.
func InOutQuad(t, b, c, d float64) float64 { return inOut(InQuad, OutQuad)(t, b, c, d) }

// OutInQuad decelerates until halfway, then accelerates.
func OutInQuad(t, b, c, d float64) float64 { return outIn(InQuad, OutQuad)(t, b, c, d) }

// --- Cubic ---

// InCubic is the cubic ease-in.
func InCubic(t, b, c, d float64) float64 {
	t /= d
	return c*t*t*t + b
}

// OutCubic is the cubic ease-out.
func OutCubic(t, b, c, d float64) float64 {
	t = t/d - 1
	return c*(t*t*t+1) + b
}

// InOutCubic eases in to halfway, then out.
func InOutCubic(t, b, c, d float64) float64 { return inOut(InCubic, OutCubic)(t, b, c, d) }

// OutInCubic eases out to halfway, then in.
func OutInCubic(t, b, c, d float64) float64 { return outIn(InCubic, OutCubic)(t, b, c, d) }

// --- Quartic ---

// InQuart is the quartic ease-in.
func InQuart(t, b, c, d float64) float64 {
	t /= d
	return c*t*t*t*t + b
}

// OutQuart is the quartic ease-out.
func OutQuart(t, b, c, d float64) float64 {
	t = t/d - 1
	return -c*(t*t*t*t-1) + b
}

// InOutQuart eases in to halfway, then out.
func InOutQuart(t, b, c, d float64) float64 { return inOut(InQuart, OutQuart)(t, b, c, d) }

// OutInQuart eases out to halfway, then in.
func OutInQuart(t, b, c, d float64) float64 { return outIn(InQuart, OutQuart)(t, b, c, d) }

// --- Quintic ---

// InQuint is the quintic ease-in.
func InQuint(t, b, c, d float64) float64 {
	t /= d
	return c*t*t*t*t*t + b
}

// OutQuint is the quintic ease-out.
func OutQuint(t, b, c, d float64) float64 {
	t = t/d - 1
	return c*(t*t*t*t*t+1) + b
}

// InOutQuint eases in to halfway, then out.
func InOutQuint(t, b, c, d float64) float64 { return inOut(InQuint, OutQuint)(t, b, c, d) }

// OutInQuint eases out to halfway, then in.
func OutInQuint(t, b, c, d float64) float64 { return outIn(InQuint, OutQuint)(t, b, c, d) }

// --- Sine ---

// InSine is the sinusoidal ease-in.
func InSine(t, b, c, d float64) float64 {
	return -c*math.Cos(t/d*(math.Pi/2)) + c + b
}

// OutSine is the sinusoidal ease-out.
func OutSine(t, b, c, d float64) float64 {
	return c*math.Sin(t/d*(math.Pi/2)) + b
}

// InOutSine eases in to halfway, then out.
func InOutSine(t, b, c, d float64) float64 { return inOut(InSine, OutSine)(t, b, c, d) }

// OutInSine eases out to halfway, then in.
func OutInSine(t, b, c, d float64) float64 { return outIn(InSine, OutSine)(t, b, c, d) }

// --- Exponential ---

// InExpo returns b exactly at t=0; 2^-10 would otherwise leak through.
func InExpo(t, b, c, d float64) float64 {
	if t == 0 {
		return b
	}
	if t == d {
		return b + c
	}
	return c*math.Pow(2, 10*(t/d-1)) + b
}

// OutExpo returns b+c exactly at t=d.
func OutExpo(t, b, c, d float64) float64 {
	if t == 0 {
		return b
	}
	if t == d {
		return b + c
	}
	return c*(-math.Pow(2, -10*t/d)+1) + b
}

// InOutExpo eases in to halfway, then out.
func InOutExpo(t, b, c, d float64) float64 { return inOut(InExpo, OutExpo)(t, b, c, d) }

// OutInExpo eases out to halfway, then in.
func OutInExpo(t, b, c, d float64) float64 { return outIn(InExpo, OutExpo)(t, b, c, d) }

// --- Circular ---

// InCirc is the circular ease-in.
func InCirc(t, b, c, d float64) float64 {
	t /= d
	return -c*(math.Sqrt(1-t*t)-1) + b
}

// OutCirc is the circular ease-out.
func OutCirc(t, b, c, d float64) float64 {
	t = t/d - 1
	return c*math.Sqrt(1-t*t) + b
}

// InOutCirc eases in to halfway, then out.
func InOutCirc(t, b, c, d float64) float64 { return inOut(InCirc, OutCirc)(t, b, c, d) }

// OutInCirc eases out to halfway, then in.
func OutInCirc(t, b, c, d float64) float64 { return outIn(InCirc, OutCirc)(t, b, c, d) }

// --- Elastic ---

// elasticIn is the exponentially growing sine wave with period p.
func elasticIn(t, b, c, d, p float64) float64 {
	if t == 0 {
		return b
	}
	if t /= d; t == 1 {
		return b + c
	}
	s := p / 4
	t--
	return -(c * math.Pow(2, 10*t) * math.Sin((t*d-s)*(2*math.Pi)/p)) + b
}

// elasticOut is the exponentially decaying sine wave with period p.
func elasticOut(t, b, c, d, p float64) float64 {
	if t == 0 {
		return b
	}
	if t /= d; t == 1 {
		return b + c
	}
	s := p / 4
	return c*math.Pow(2, -10*t)*math.Sin((t*d-s)*(2*math.Pi)/p) + c + b
}

// InElastic is the elastic ease-in.
func InElastic(t, b, c, d float64) float64 { return elasticIn(t, b, c, d, d*0.3) }

// OutElastic is the elastic ease-out.
func OutElastic(t, b, c, d float64) float64 { return elasticOut(t, b, c, d, d*0.3) }

// InOutElastic stretches the period by 1.5 over the combined curve.
func InOutElastic(t, b, c, d float64) float64 {
	in := func(t, b, c, d float64) float64 { return elasticIn(t, b, c, d, d*0.45) }
	out := func(t, b, c, d float64) float64 { return elasticOut(t, b, c, d, d*0.45) }
	return inOut(in, out)(t, b, c, d)
}

// OutInElastic eases out to halfway, then in.
func OutInElastic(t, b, c, d float64) float64 { return outIn(InElastic, OutElastic)(t, b, c, d) }

// --- Bounce ---

// OutBounce is the bounce ease-out.
func OutBounce(t, b, c, d float64) float64 {
	t /= d
	switch {
	case t < 1/bounceDiv:
		return c*(bounceScale*t*t) + b
	case t < 2/bounceDiv:
		t -= 1.5 / bounceDiv
		return c*(bounceScale*t*t+0.75) + b
	case t < 2.5/bounceDiv:
		t -= 2.25 / bounceDiv
		return c*(bounceScale*t*t+0.9375) + b
	default:
		t -= 2.625 / bounceDiv
		return c*(bounceScale*t*t+0.984375) + b
	}
}

// InBounce is the bounce ease-in.
func InBounce(t, b, c, d float64) float64 {
	return c - OutBounce(d-t, 0, c, d) + b
}

// InOutBounce eases in to halfway, then out.
func InOutBounce(t, b, c, d float64) float64 { return inOut(InBounce, OutBounce)(t, b, c, d) }

// OutInBounce eases out to halfway, then in.
func OutInBounce(t, b, c, d float64) float64 { return outIn(InBounce, OutBounce)(t, b, c, d) }

// --- Back ---

func backIn(t, b, c, d, s float64) float64 {
	t /= d
	return c*t*t*((s+1)*t-s) + b
}

func backOut(t, b, c, d, s float64) float64 {
	t = t/d - 1
	return c*(t*t*((s+1)*t+s)+1) + b
}

// InBack is the back ease-in.
func InBack(t, b, c, d float64) float64 { return backIn(t, b, c, d, backOvershoot) }

// OutBack is the back ease-out.
func OutBack(t, b, c, d float64) float64 { return backOut(t, b, c, d, backOvershoot) }

// InOutBack uses the overshoot scaled by 1.525.
func InOutBack(t, b, c, d float64) float64 {
	in := func(t, b, c, d float64) float64 { return backIn(t, b, c, d, backInOutOvershoot) }
	out := func(t, b, c, d float64) float64 { return backOut(t, b, c, d, backInOutOvershoot) }
	return inOut(in, out)(t, b, c, d)
}

// OutInBack eases out to halfway, then in.
func OutInBack(t, b, c, d float64) float64 { return outIn(InBack, OutBack)(t, b, c, d) }
