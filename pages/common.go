// Package pages renders the site's pages from content records through the
// ui components.
package pages

import (
	"fmt"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/bistroconsulting/bistro/content"
	"github.com/bistroconsulting/bistro/icons"
	"github.com/bistroconsulting/bistro/motion"
	"github.com/bistroconsulting/bistro/ui"
)

// Document wraps a page body in the site layout.
func (f Frame) Document(meta PageMeta, jsonLD string, head []g.Node, body ...g.Node) g.Node {
	brand := f.Config.Name
	var footer ui.Footer
	if f.Site != nil {
		if f.Site.Brand != "" {
			brand = f.Site.Brand
		}
		footer = ui.Footer{
			Brand:   brand,
			Tagline: f.Site.Tagline,
			Phone:   f.Site.Contact.Phone,
			Email:   f.Site.Contact.Email,
		}
	}
	if meta.Description == "" {
		meta.Description = f.Config.Description
	}
	return ui.Layout(ui.Page{
		Title:       meta.Title,
		Description: meta.Description,
		Canonical:   meta.URL,
		OGType:      meta.OGType,
		SiteName:    f.Config.Name,
		JSONLD:      jsonLD,
		Nav: ui.Navigation{
			Brand:   brand,
			Current: f.Path,
			Menu:    f.Menu,
			Self:    f.Self,
		},
		Head:   head,
		Footer: footer,
	}, body...)
}

func (f Frame) meta(title, route string) PageMeta {
	t := f.Config.Name
	if title != "" {
		t = title + " | " + f.Config.Name
	}
	return PageMeta{Title: t, URL: buildURL(f.Config.URL, route)}
}

// hero is the opening group of a page, animated on mount.
func hero(class string, hh content.Hero, extra ...g.Node) g.Node {
	r := ui.NewReveal(motion.OnMount)
	return r.Section(class,
		h.Div(h.Class("max-w-7xl mx-auto text-center"),
			r.Wrap(h.H1(h.Class("text-6xl md:text-8xl font-bold font-space mb-8 text-shadow"),
				g.Text(hh.Title), g.If(hh.Highlight != "", h.Br()),
				g.If(hh.Highlight != "", h.Span(h.Class("gradient-text"), g.Text(hh.Highlight))),
			)),
			r.Wrap(h.P(h.Class("text-xl md:text-2xl text-gray-600 mb-12 max-w-4xl mx-auto leading-relaxed font-medium"),
				g.Text(hh.Lead))),
			g.Group(wrapAll(r, extra)),
		),
	)
}

func wrapAll(r *ui.Reveal, nodes []g.Node) []g.Node {
	out := make([]g.Node, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, r.Wrap(n))
	}
	return out
}

// heading is the centred title block above a card grid.
func heading(r *ui.Reveal, s content.Section) g.Node {
	return r.Item("text-center mb-20",
		h.H2(h.Class("text-5xl md:text-6xl font-bold font-space mb-8 text-shadow"), ui.Heading(s.Title, s.Highlight)),
		g.If(s.Lead != "", h.P(h.Class("text-xl text-gray-600 max-w-3xl mx-auto font-medium leading-relaxed"), g.Text(s.Lead))),
	)
}

func iconTile(name, class, iconClass string) g.Node {
	return h.Div(h.Class("gradient-bg flex items-center justify-center flex-shrink-0 premium-shadow "+class),
		ui.Icon(name, iconClass+" text-white"),
	)
}

func featureList(features []string) g.Node {
	if len(features) == 0 {
		return g.Group(nil)
	}
	return h.Div(h.Class("space-y-2"),
		g.Group(g.Map(features, func(f string) g.Node {
			return h.Div(h.Class("flex items-center text-sm text-gray-500"),
				h.Div(h.Class("w-2 h-2 gradient-bg rounded-full mr-3")),
				g.Text(f),
			)
		})),
	)
}

// statGrid renders the four headline numbers.
func statGrid(r *ui.Reveal, stats []content.Stat) g.Node {
	return h.Div(h.Class("grid md:grid-cols-4 gap-8"),
		g.Group(g.Map(stats, func(s content.Stat) g.Node {
			return r.Wrap(ui.NewCard(ui.CardElevated, "stat", "text-center h-full",
				h.Div(h.Class("text-5xl md:text-6xl font-bold font-space gradient-text mb-3"), g.Text(s.Value)),
				h.Div(h.Class("text-gray-600 font-semibold text-lg"), g.Text(s.Label)),
				g.If(s.Description != "", h.P(h.Class("text-gray-500 text-sm mt-2"), g.Text(s.Description))),
			))
		})),
	)
}

// itemCard is the icon-beside-text card used for services and values.
func itemCard(kind string, it content.Item) g.Node {
	return ui.NewCard(ui.CardElevated, kind, "h-full",
		h.Div(h.Class("flex items-start space-x-6"),
			iconTile(it.Icon, "w-16 h-16 rounded-3xl", "w-8 h-8"),
			h.Div(h.Class("flex-1"),
				h.H3(h.Class("text-2xl font-bold font-space mb-4 text-gray-800"), g.Text(it.Title)),
				h.P(h.Class("text-gray-600 mb-6 leading-relaxed"), g.Text(it.Description)),
				featureList(it.Features),
			),
		),
	)
}

// ctaSection is the closing gradient card with its buttons.
func ctaSection(c content.CTA, buttons ...ui.Button) g.Node {
	r := ui.NewReveal(motion.InView)
	btns := make([]g.Node, 0, len(buttons))
	for _, b := range buttons {
		btns = append(btns, b)
	}
	return r.Section("py-24 px-4 section-gradient",
		h.Div(h.Class("max-w-5xl mx-auto text-center"),
			r.Wrap(ui.NewCard(ui.CardElevated, "cta", "gradient-bg text-white",
				h.H2(h.Class("text-5xl md:text-6xl font-bold font-space mb-8 text-shadow"), ui.Heading(c.Title, c.Highlight)),
				h.P(h.Class("text-xl mb-10 opacity-95 leading-relaxed max-w-3xl mx-auto"), g.Text(c.Text)),
				g.If(len(btns) > 0, h.Div(h.Class("flex flex-col sm:flex-row gap-4 justify-center"), g.Group(btns))),
			)),
		),
	)
}

func stars(n int) g.Node {
	nodes := make([]g.Node, 0, n)
	for i := 0; i < n; i++ {
		nodes = append(nodes, ui.Icon(icons.Star, "w-5 h-5 text-orange-400 fill-current"))
	}
	return h.Div(h.Class("flex mb-6"), h.Role("img"), h.Aria("label", fmt.Sprintf("%d out of 5 stars", n)), g.Group(nodes))
}
