package ease

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Func maps an elapsed-time ratio in [0, 1] to eased progress. The result
// usually stays in [0, 1] but may leave it for overshooting families
// (Back, Elastic) and custom curves.
type Func func(ratio float64) float64

// ErrUnknown is returned by ByName for names that match no family or mode.
var ErrUnknown = errors.New("unknown easing")

// Wrap converts a Penner equation to the single-ratio form with start 0,
// change 1 and duration 1.
func Wrap(p Penner) Func {
	return func(ratio float64) float64 {
		return p(ratio, 0, 1, 1)
	}
}

// Mode selects one of the four variants of a family.
type Mode uint8

const (
	ModeIn    Mode = iota // accelerate from zero velocity
	ModeOut               // decelerate to the target
	ModeInOut             // in over the first half, out over the second
	ModeOutIn             // out over the first half, in over the second
)

var modeNames = [...]string{"in", "out", "in-out", "out-in"}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", m)
}

// Set holds the four variants of one easing family.
type Set struct {
	Name  string
	In    Func
	Out   Func
	InOut Func
	OutIn Func
}

// Mode returns the variant for m, or nil for an unknown mode.
func (s Set) Mode(m Mode) Func {
	switch m {
	case ModeIn:
		return s.In
	case ModeOut:
		return s.Out
	case ModeInOut:
		return s.InOut
	case ModeOutIn:
		return s.OutIn
	}
	return nil
}

func newSet(name string, in, out, inOut, outIn Penner) Set {
	return Set{
		Name:  name,
		In:    Wrap(in),
		Out:   Wrap(out),
		InOut: Wrap(inOut),
		OutIn: Wrap(outIn),
	}
}

// Families in the order they are usually listed.
var (
	LinearSet = newSet("linear", Linear, Linear, Linear, Linear)
	Quad      = newSet("quad", InQuad, OutQuad, InOutQuad, OutInQuad)
	Cubic     = newSet("cubic", InCubic, OutCubic, InOutCubic, OutInCubic)
	Quart     = newSet("quart", InQuart, OutQuart, InOutQuart, OutInQuart)
	Quint     = newSet("quint", InQuint, OutQuint, InOutQuint, OutInQuint)
	Sine      = newSet("sine", InSine, OutSine, InOutSine, OutInSine)
	Expo      = newSet("expo", InExpo, OutExpo, InOutExpo, OutInExpo)
	Circ      = newSet("circ", InCirc, OutCirc, InOutCirc, OutInCirc)
	Elastic   = newSet("elastic", InElastic, OutElastic, InOutElastic, OutInElastic)
	Bounce    = newSet("bounce", InBounce, OutBounce, InOutBounce, OutInBounce)
	Back      = newSet("back", InBack, OutBack, InOutBack, OutInBack)
)

// Families lists every built-in family.
var Families = []Set{LinearSet, Quad, Cubic, Quart, Quint, Sine, Expo, Circ, Elastic, Bounce, Back}

// None is the linear passthrough.
func None(ratio float64) float64 { return ratio }

var familyAliases = map[string]string{
	"quadratic":   "quad",
	"quartic":     "quart",
	"quintic":     "quint",
	"exponential": "expo",
	"circular":    "circ",
	"circle":      "circ",
}

// ByName resolves names such as "cubic-out", "quad-in-out", "back_inout"
// or "linear". Case, '-', '_' and spaces are ignored when matching modes.
func ByName(name string) (Func, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.NewReplacer("_", "-", " ", "-").Replace(n)
	if n == "linear" || n == "none" {
		return None, nil
	}

	family, mode, ok := strings.Cut(n, "-")
	if !ok {
		return nil, fmt.Errorf("ease: %q: %w", name, ErrUnknown)
	}
	if alias, ok := familyAliases[family]; ok {
		family = alias
	}

	var m Mode
	switch strings.ReplaceAll(mode, "-", "") {
	case "in":
		m = ModeIn
	case "out":
		m = ModeOut
	case "inout":
		m = ModeInOut
	case "outin":
		m = ModeOutIn
	default:
		return nil, fmt.Errorf("ease: %q: bad mode %q: %w", name, mode, ErrUnknown)
	}

	for _, s := range Families {
		if s.Name == family {
			return s.Mode(m), nil
		}
	}
	return nil, fmt.Errorf("ease: %q: bad family %q: %w", name, family, ErrUnknown)
}

// Names returns every name accepted by ByName in canonical form, sorted.
func Names() []string {
	names := []string{"linear"}
	for _, s := range Families[1:] {
		for m := ModeIn; m <= ModeOutIn; m++ {
			names = append(names, s.Name+"-"+m.String())
		}
	}
	sort.Strings(names)
	return names
}
