package ui

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/bistroconsulting/bistro/motion"
)

// Reveal builds a staggered entrance group. Items are numbered in the
// order they are created, so nested grids inherit the group's timeline.
type Reveal struct {
	trigger motion.Trigger
	n       int
}

// NewReveal starts a group played on trigger: motion.InView for sections
// below the fold, motion.OnMount for heroes.
func NewReveal(trigger motion.Trigger) *Reveal {
	return &Reveal{trigger: trigger}
}

// Count is the number of items created so far.
func (r *Reveal) Count() int { return r.n }

func (r *Reveal) preset(p motion.Preset) motion.Preset {
	if r.trigger == motion.OnMount {
		return motion.OnMountGroup(p)
	}
	return p
}

// Item wraps children in the next item of the group.
func (r *Reveal) Item(class string, children ...g.Node) g.Node {
	p := r.preset(motion.ItemReveal)
	s, _ := motion.Schedule(p.Trigger, p, r.n)
	r.n++
	return h.Div(
		g.If(class != "", h.Class(class)),
		Motion(p.WithDelay(s.Delay)),
		g.Group(children),
	)
}

// Wrap turns an existing node into the next item without an extra class.
func (r *Reveal) Wrap(n g.Node) g.Node {
	return r.Item("", n)
}

// Section is the group container.
func (r *Reveal) Section(class string, children ...g.Node) g.Node {
	return h.Section(
		h.Class(class),
		Motion(r.preset(motion.GroupReveal)),
		g.Group(children),
	)
}
