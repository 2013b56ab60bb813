package ui

import (
	"io"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/bistroconsulting/bistro/motion"
)

// Card is a rounded glass container. Hover lift is on unless NoHover.
type Card struct {
	Variant  CardVariant
	NoHover  bool
	Kind     string // data-card marker, e.g. "service"
	Class    string
	Children []g.Node
}

func (c Card) Render(w io.Writer) error {
	vs, err := c.Variant.Style()
	if err != nil {
		return err
	}
	hover := Style("")
	var presets []motion.Preset
	if !c.NoHover {
		hover = "hover:glow-orange"
		presets = append(presets, motion.CardLift)
	}
	return h.Div(
		h.Class(join("rounded-3xl p-8 transition-all duration-500", vs, hover, Style(c.Class))),
		g.If(c.Kind != "", h.Data("card", c.Kind)),
		Motion(presets...),
		g.Group(c.Children),
	).Render(w)
}

// NewCard is shorthand for a hoverable card of variant v.
func NewCard(v CardVariant, kind, class string, children ...g.Node) Card {
	return Card{Variant: v, Kind: kind, Class: class, Children: children}
}
