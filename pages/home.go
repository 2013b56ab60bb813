package pages

import (
	"strconv"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/bistroconsulting/bistro/content"
	"github.com/bistroconsulting/bistro/icons"
	"github.com/bistroconsulting/bistro/motion"
	"github.com/bistroconsulting/bistro/ui"
)

// Home renders the landing page.
func Home(f Frame) g.Node {
	hp := f.Site.Home
	return f.Document(f.meta("", "/"), OrganizationJsonLD(f.Config, f.Site), nil,
		hero("pt-40 pb-24 px-4 hero-gradient", hp.Hero,
			h.Div(h.Class("flex flex-col sm:flex-row gap-4 justify-center items-center"),
				ui.Button{Label: "Book Consultation Now", Size: ui.SizeLarge, Icon: icons.ArrowRight, Href: "/contact/", Class: "text-lg px-10 py-5"},
				ui.Button{Label: "Learn More", Variant: ui.ButtonGlass, Size: ui.SizeLarge, Href: "/about/", Class: "text-lg px-10 py-5"},
			),
		),
		homeStats(hp),
		homeServices(hp),
		homeSteps(hp),
		homeTestimonials(hp),
		ctaSection(hp.CTA,
			ui.Button{Label: "Start Your Growth Journey", Variant: ui.ButtonSecondary, Size: ui.SizeLarge, Icon: icons.ArrowRight, Href: "/contact/", Class: "text-lg px-10 py-5"},
			ui.Button{Label: "View Pricing Plans", Variant: ui.ButtonGlass, Size: ui.SizeLarge, Href: "/pricing/", Class: "text-lg px-10 py-5 text-white border-white border-2"},
		),
	)
}

func homeStats(hp content.Home) g.Node {
	r := ui.NewReveal(motion.InView)
	return r.Section("py-20 px-4 section-gradient",
		h.Div(h.Class("max-w-7xl mx-auto"), statGrid(r, hp.Stats)),
	)
}

func homeServices(hp content.Home) g.Node {
	r := ui.NewReveal(motion.InView)
	return r.Section("py-24 px-4",
		h.Div(h.Class("max-w-7xl mx-auto"),
			heading(r, hp.ServicesSection),
			h.Div(h.Class("grid md:grid-cols-2 gap-10"),
				g.Group(g.Map(hp.Services, func(it content.Item) g.Node {
					return r.Wrap(itemCard("service", it))
				})),
			),
		),
	)
}

func homeSteps(hp content.Home) g.Node {
	r := ui.NewReveal(motion.InView)
	steps := make([]g.Node, 0, len(hp.Steps))
	for i, st := range hp.Steps {
		steps = append(steps, r.Item("relative",
			ui.NewCard(ui.CardElevated, "step", "text-center h-full",
				iconTile(st.Icon, "w-16 h-16 rounded-full mx-auto mb-6", "w-8 h-8"),
				h.Div(h.Class("absolute -top-4 -right-4 w-8 h-8 bg-orange-500 text-white rounded-full flex items-center justify-center text-sm font-bold"),
					g.Text(strconv.Itoa(i+1))),
				h.H3(h.Class("text-xl font-bold font-space mb-4 text-gray-800"), g.Text(st.Title)),
				h.P(h.Class("text-gray-600 leading-relaxed"), g.Text(st.Description)),
			),
		))
	}
	return r.Section("py-24 px-4 section-gradient",
		h.Div(h.Class("max-w-7xl mx-auto"),
			heading(r, hp.StepsSection),
			h.Div(h.Class("grid md:grid-cols-2 lg:grid-cols-4 gap-8"), g.Group(steps)),
		),
	)
}

func homeTestimonials(hp content.Home) g.Node {
	r := ui.NewReveal(motion.InView)
	return r.Section("py-24 px-4",
		h.Div(h.Class("max-w-7xl mx-auto"),
			heading(r, hp.ClientsSection),
			h.Div(h.Class("grid md:grid-cols-3 gap-8"),
				g.Group(g.Map(hp.Testimonials, func(t content.Testimonial) g.Node {
					return r.Wrap(testimonialCard(t))
				})),
			),
		),
	)
}

func testimonialCard(t content.Testimonial) g.Node {
	return ui.NewCard(ui.CardTestimonial, "testimonial", "h-full",
		stars(t.Rating),
		h.P(h.Class("text-gray-700 mb-8 italic leading-relaxed text-lg"), g.Text("\u201c"+t.Text+"\u201d")),
		h.Div(h.Class("flex items-center justify-between"),
			h.Div(h.Class("flex items-center"),
				h.Img(h.Src(t.Image), h.Alt(t.Name), h.Class("w-14 h-14 rounded-full mr-4 premium-shadow"),
					g.Attr("width", "56"), g.Attr("height", "56"), g.Attr("loading", "lazy")),
				h.Div(
					h.P(h.Class("font-bold text-gray-800"), g.Text(t.Name)),
					h.P(h.Class("text-sm text-gray-500 font-medium"), g.Text(t.Business)),
					g.If(t.Location != "", h.P(h.Class("text-xs text-gray-400"), g.Text(t.Location))),
				),
			),
			g.If(t.Result != "", h.Div(h.Class("text-right"),
				h.Div(h.Class("text-sm font-bold gradient-text"), g.Text(t.Result)))),
		),
	)
}
