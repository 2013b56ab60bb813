// Package ui contains the site's presentational components. Components are
// gomponents nodes; Component adapts any node to templ for the HTTP layer.
package ui

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/bistroconsulting/bistro/icons"
	"github.com/bistroconsulting/bistro/motion"
)

// Component adapts a node to a templ.Component.
func Component(n g.Node) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return n.Render(w)
	})
}

// Motion attaches presets to an element for the browser runtime.
func Motion(presets ...motion.Preset) g.Node {
	if len(presets) == 0 {
		return g.Group(nil)
	}
	return h.Data("motion", motion.Encode(presets...))
}

// Icon renders a named icon inline.
func Icon(name, class string) g.Node {
	return g.Raw(icons.SVG(name, class))
}

// failed is a node whose rendering reports err.
func failed(err error) g.Node {
	return g.NodeFunc(func(io.Writer) error { return err })
}

// Heading renders "Title <span class=gradient-text>Highlight</span>".
func Heading(title, highlight string) g.Node {
	if highlight == "" {
		return g.Text(title)
	}
	return g.Group([]g.Node{
		g.Text(title + " "),
		h.Span(h.Class("gradient-text"), g.Text(highlight)),
	})
}
