package glide

import (
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/phanxgames/glide/ease"
	"gopkg.in/yaml.v3"
)

// presetFile is the YAML layout:
//
//	easings:
//	  softbounce: [[0,0,20,20],[62,195,75,40],[200,200,0,0]]
//	tweens:
//	  fade-in:
//	    duration: 0.5
//	    delay: 0
//	    ease: cubic-out
//	    props: {alpha: 1}
type presetFile struct {
	Easings map[string][][]float64 `yaml:"easings"`
	Tweens  map[string]presetSpec   `yaml:"tweens"`
}

type presetSpec struct {
	Duration float64        `yaml:"duration"`
	Delay    float64        `yaml:"delay"`
	Ease     string         `yaml:"ease"`
	Props    map[string]any `yaml:"props"`
}

// Preset is a named, reusable tween description.
type Preset struct {
	Name     string
	Duration float64
	Delay    float64
	EaseName string
	Ease     ease.Func
	// Props and Values are parallel. Values are float64 or []float64.
	Props  []string
	Values []any
}

// Presets holds the easings and tweens loaded from a presets file.
type Presets struct {
	easings map[string]ease.Func
	tweens  map[string]*Preset
}

// LoadPresetsFile reads and parses a YAML presets file.
func LoadPresetsFile(path string) (*Presets, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("glide: read presets: %w", err)
	}
	return LoadPresets(data)
}

// LoadPresets parses YAML presets. Custom easings are built first so tweens
// can name them; every ease name is resolved at load time.
func LoadPresets(data []byte) (*Presets, error) {
	var f presetFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("glide: parse presets: %w", err)
	}

	p := &Presets{
		easings: make(map[string]ease.Func, len(f.Easings)),
		tweens:  make(map[string]*Preset, len(f.Tweens)),
	}
	for name, raw := range f.Easings {
		pts := make([]ease.BezierPoint, len(raw))
		for i, v := range raw {
			if len(v) != 4 {
				return nil, fmt.Errorf("glide: easing %q point %d has %d values, want 4", name, i, len(v))
			}
			pts[i] = ease.BezierPoint{X: v[0], Y: v[1], X2: v[2], Y2: v[3]}
		}
		fn, err := ease.NewBezier(pts)
		if err != nil {
			return nil, fmt.Errorf("glide: easing %q: %w", name, err)
		}
		p.easings[name] = fn
	}

	for name, spec := range f.Tweens {
		pr := &Preset{
			Name:     name,
			Duration: spec.Duration,
			Delay:    spec.Delay,
			EaseName: spec.Ease,
		}
		if spec.Ease != "" {
			fn, err := p.Ease(spec.Ease)
			if err != nil {
				return nil, fmt.Errorf("glide: tween %q: %w", name, err)
			}
			pr.Ease = fn
		}
		for _, prop := range slices.Sorted(maps.Keys(spec.Props)) {
			v, err := presetValue(spec.Props[prop])
			if err != nil {
				return nil, fmt.Errorf("glide: tween %q prop %q: %w", name, prop, err)
			}
			pr.Props = append(pr.Props, prop)
			pr.Values = append(pr.Values, v)
		}
		p.tweens[name] = pr
	}
	return p, nil
}

func presetValue(v any) (any, error) {
	if f, ok := toFloat(v); ok {
		return f, nil
	}
	list, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("value %T: %w", v, ErrValueType)
	}
	out := make([]float64, len(list))
	for i, e := range list {
		f, ok := toFloat(e)
		if !ok {
			return nil, fmt.Errorf("element %d is %T: %w", i, e, ErrValueType)
		}
		out[i] = f
	}
	return out, nil
}

// Ease returns the custom easing called name, or a built-in one such as
// "cubic-out".
func (p *Presets) Ease(name string) (ease.Func, error) {
	if fn, ok := p.easings[name]; ok {
		return fn, nil
	}
	return ease.ByName(name)
}

// Tween returns the preset called name.
func (p *Presets) Tween(name string) (*Preset, bool) {
	pr, ok := p.tweens[name]
	return pr, ok
}

// Names returns the tween preset names, sorted.
func (p *Presets) Names() []string {
	return slices.Sorted(maps.Keys(p.tweens))
}

// Play starts preset on target. It behaves like AddTween with the preset's
// properties, values, duration, ease and delay.
func (a *Animator) Play(target any, preset *Preset) (*Tween, error) {
	if preset == nil {
		return a.noop(target), fmt.Errorf("glide: play: %w", ErrUnknownPreset)
	}
	props := make([]any, len(preset.Props))
	for i, name := range preset.Props {
		props[i] = name
	}
	return a.AddTween(target, props, slices.Clone(preset.Values), preset.Duration, preset.Ease, preset.Delay)
}

// PlayNamed looks up a preset by name and plays it.
func (a *Animator) PlayNamed(target any, presets *Presets, name string) (*Tween, error) {
	pr, ok := presets.Tween(name)
	if !ok {
		return a.noop(target), fmt.Errorf("glide: play %q: %w", name, ErrUnknownPreset)
	}
	return a.Play(target, pr)
}
