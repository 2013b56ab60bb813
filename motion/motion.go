// Package motion holds the animation presets used by the site's components.
//
// A preset is plain data: which trigger it reacts to, the visual target it
// starts from and animates to, and the timing curve. The server only selects
// presets and encodes them into markup; the browser runtime (motion.js)
// executes them.
package motion

import (
	"encoding/json"
	"time"
)

// Trigger is the event a preset reacts to.
type Trigger string

const (
	OnMount  Trigger = "mount"
	OnHover  Trigger = "hover"
	OnPress  Trigger = "press"
	InView   Trigger = "inview"
	OnToggle Trigger = "toggle"
)

// Spring is a damped spring timing curve.
type Spring struct {
	Stiffness float64 `json:"stiffness"`
	Damping   float64 `json:"damping"`
}

// Bezier is a cubic-bezier easing curve.
type Bezier [4]float64

var (
	EaseOut   = Bezier{0, 0, 0.58, 1}
	EaseInOut = Bezier{0.42, 0, 0.58, 1}
	// EaseReveal is the curve used by every staggered entrance item.
	EaseReveal = Bezier{0.25, 0.46, 0.45, 0.94}
)

// Transition describes timing. A non-nil Spring makes it a spring
// transition; otherwise it is a tween of Duration along Ease.
type Transition struct {
	Spring   *Spring
	Duration time.Duration
	Ease     Bezier
	Delay    time.Duration
	// Stagger offsets each child of a group by this much.
	Stagger time.Duration
}

// Target is a visual state. Zero Scale means "unchanged"; a nil Opacity
// leaves opacity alone.
type Target struct {
	X       float64
	Y       float64
	Scale   float64
	ScaleX  float64
	Rotate  float64
	Opacity *float64
}

// Alpha returns a pointer to v for use as Target.Opacity.
func Alpha(v float64) *float64 { return &v }

// Preset binds a trigger to an animation.
type Preset struct {
	Name       string
	Trigger    Trigger
	From       Target
	To         Target
	Transition Transition
	// Once stops the preset from replaying (viewport entrances).
	Once bool
	// LayoutID shares one element's position across renders.
	LayoutID string
}

// Scheduled is a transition ready to hand to the runtime.
type Scheduled struct {
	Preset string
	From   Target
	To     Target
	Transition
}

// Schedule selects the transition that preset p runs for trigger t. index
// is the element's position inside a staggered group and shifts the delay
// by index × Stagger. ok is false when p does not react to t.
func Schedule(t Trigger, p Preset, index int) (Scheduled, bool) {
	if p.Trigger != t {
		return Scheduled{}, false
	}
	tr := p.Transition
	if index > 0 && tr.Stagger > 0 {
		tr.Delay += time.Duration(index) * tr.Stagger
	}
	return Scheduled{Preset: p.Name, From: p.From, To: p.To, Transition: tr}, true
}

// WithDelay returns a copy of p delayed by d.
func (p Preset) WithDelay(d time.Duration) Preset {
	p.Transition.Delay = d
	return p
}

type wireTarget struct {
	X       float64  `json:"x,omitempty"`
	Y       float64  `json:"y,omitempty"`
	Scale   float64  `json:"scale,omitempty"`
	ScaleX  float64  `json:"scaleX,omitempty"`
	Rotate  float64  `json:"rotate,omitempty"`
	Opacity *float64 `json:"opacity,omitempty"`
}

type wirePreset struct {
	Name     string     `json:"name"`
	Trigger  Trigger    `json:"on"`
	From     wireTarget `json:"from"`
	To       wireTarget `json:"to"`
	Type     string     `json:"type"`
	Spring   *Spring    `json:"spring,omitempty"`
	Duration float64    `json:"duration,omitempty"`
	Ease     *Bezier    `json:"ease,omitempty"`
	Delay    float64    `json:"delay,omitempty"`
	Stagger  float64    `json:"stagger,omitempty"`
	Once     bool       `json:"once,omitempty"`
	LayoutID string     `json:"layoutId,omitempty"`
}

func toWire(p Preset) wirePreset {
	w := wirePreset{
		Name:     p.Name,
		Trigger:  p.Trigger,
		From:     wireTarget(p.From),
		To:       wireTarget(p.To),
		Delay:    p.Transition.Delay.Seconds(),
		Stagger:  p.Transition.Stagger.Seconds(),
		Once:     p.Once,
		LayoutID: p.LayoutID,
	}
	if p.Transition.Spring != nil {
		w.Type = "spring"
		w.Spring = p.Transition.Spring
		return w
	}
	w.Type = "tween"
	w.Duration = p.Transition.Duration.Seconds()
	if p.Transition.Ease != (Bezier{}) {
		e := p.Transition.Ease
		w.Ease = &e
	}
	return w
}

// Encode serialises presets for the data-motion attribute. An empty list
// encodes as "".
func Encode(presets ...Preset) string {
	if len(presets) == 0 {
		return ""
	}
	out := make([]wirePreset, len(presets))
	for i, p := range presets {
		out[i] = toWire(p)
	}
	b, err := json.Marshal(out)
	if err != nil {
		return ""
	}
	return string(b)
}
