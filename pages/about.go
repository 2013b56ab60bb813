package pages

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/bistroconsulting/bistro/content"
	"github.com/bistroconsulting/bistro/motion"
	"github.com/bistroconsulting/bistro/ui"
)

// About renders the company page.
func About(f Frame) g.Node {
	ap := f.Site.About
	stats := ui.NewReveal(motion.InView)
	values := ui.NewReveal(motion.InView)
	expertise := ui.NewReveal(motion.InView)
	team := ui.NewReveal(motion.InView)

	return f.Document(f.meta("About", "/about/"), OrganizationJsonLD(f.Config, f.Site), nil,
		h.Div(h.Class("pt-40"),
			hero("pb-24 px-4 hero-gradient", ap.Hero),
		),
		stats.Section("pb-24 px-4 section-gradient",
			h.Div(h.Class("max-w-7xl mx-auto"), statGrid(stats, ap.Stats)),
		),
		values.Section("py-24 px-4",
			h.Div(h.Class("max-w-7xl mx-auto"),
				heading(values, ap.ValuesSection),
				h.Div(h.Class("grid md:grid-cols-2 gap-10"),
					g.Group(g.Map(ap.Values, func(it content.Item) g.Node {
						return values.Wrap(itemCard("value", it))
					})),
				),
			),
		),
		expertise.Section("py-24 px-4 section-gradient",
			h.Div(h.Class("max-w-7xl mx-auto"),
				heading(expertise, ap.ExpertiseSection),
				h.Div(h.Class("grid md:grid-cols-3 gap-8"),
					g.Group(g.Map(ap.Expertise, func(it content.Item) g.Node {
						return expertise.Wrap(expertiseCard(it))
					})),
				),
			),
		),
		team.Section("py-24 px-4",
			h.Div(h.Class("max-w-5xl mx-auto"),
				team.Wrap(ui.NewCard(ui.CardElevated, "cta", "gradient-bg text-white text-center",
					h.H3(h.Class("text-4xl md:text-5xl font-bold font-space mb-8 text-shadow"), ui.Heading(ap.CTA.Title, ap.CTA.Highlight)),
					h.P(h.Class("text-xl mb-12 opacity-95 leading-relaxed max-w-3xl mx-auto"), g.Text(ap.CTA.Text)),
					h.Div(h.Class("grid md:grid-cols-3 gap-10 text-left"),
						g.Group(g.Map(ap.Pillars, func(p content.Pillar) g.Node {
							return h.Div(h.Class("space-y-4"),
								h.H4(h.Class("font-bold text-xl"), g.Text(p.Title)),
								h.P(h.Class("opacity-90 leading-relaxed"), g.Text(p.Text)),
							)
						})),
					),
				)),
			),
		),
	)
}

func expertiseCard(it content.Item) g.Node {
	return ui.NewCard(ui.CardElevated, "expertise", "h-full text-center",
		iconTile(it.Icon, "w-20 h-20 rounded-3xl mx-auto mb-8", "w-10 h-10"),
		h.H3(h.Class("text-2xl font-bold font-space mb-4 text-gray-800"), g.Text(it.Title)),
		h.P(h.Class("text-gray-600 mb-8 leading-relaxed"), g.Text(it.Description)),
		h.Div(h.Class("flex flex-wrap justify-center gap-2"),
			g.Group(g.Map(it.Features, func(s string) g.Node {
				return h.Span(h.Class("px-3 py-1 rounded-full bg-orange-100 text-orange-700 text-sm font-medium"), g.Text(s))
			})),
		),
	)
}
