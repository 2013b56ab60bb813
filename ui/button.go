package ui

import (
	"io"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/bistroconsulting/bistro/motion"
)

// Button renders as a link when Href is set and as a <button> otherwise.
type Button struct {
	Label    string
	Variant  ButtonVariant
	Size     ButtonSize
	Icon     string // optional leading icon
	Trailing string // optional icon after the label, e.g. an arrow
	Href     string
	Type     string // button type; defaults to "button"
	Name     string
	Value    string
	Disabled bool
	// OnClick runs on activation. Handlers that model server-side state
	// (menu, billing) use it to compute the post-click state.
	OnClick func()
	Class   string
	Attrs   []g.Node
}

// Activate performs a click. A disabled button, or one without a handler,
// does nothing and reports false.
func (b Button) Activate() bool {
	if b.Disabled || b.OnClick == nil {
		return false
	}
	b.OnClick()
	return true
}

// Presets returns the hover and press animations. Disabled buttons have
// none.
func (b Button) Presets() []motion.Preset {
	if b.Disabled {
		return nil
	}
	return []motion.Preset{motion.ButtonHover, motion.ButtonPress}
}

// Classes resolves the class list or reports an unknown variant or size.
func (b Button) Classes() (string, error) {
	vs, err := b.Variant.Style()
	if err != nil {
		return "", err
	}
	ss, err := b.Size.Style()
	if err != nil {
		return "", err
	}
	state := Style("")
	if b.Disabled {
		state = "opacity-50 cursor-not-allowed"
	}
	return join(buttonBase, vs, ss, state, Style(b.Class)), nil
}

// Render implements g.Node.
func (b Button) Render(w io.Writer) error {
	return b.node().Render(w)
}

func (b Button) node() g.Node {
	class, err := b.Classes()
	if err != nil {
		return failed(err)
	}
	body := []g.Node{
		h.Class(class),
		Motion(b.Presets()...),
		g.Group(b.Attrs),
		h.Span(h.Class("relative z-10 flex items-center"),
			g.If(b.Icon != "", Icon(b.Icon, "w-5 h-5 mr-2.5")),
			g.Text(b.Label),
			g.If(b.Trailing != "", Icon(b.Trailing, "ml-2 w-5 h-5")),
		),
	}

	if b.Href != "" {
		if b.Disabled {
			return h.A(h.Aria("disabled", "true"), h.Role("link"), g.Group(body))
		}
		return h.A(h.Href(b.Href), g.Group(body))
	}

	typ := b.Type
	if typ == "" {
		typ = "button"
	}
	return h.Button(
		h.Type(typ),
		g.If(b.Name != "", h.Name(b.Name)),
		g.If(b.Value != "", h.Value(b.Value)),
		g.If(b.Disabled, h.Disabled()),
		g.Group(body),
	)
}
