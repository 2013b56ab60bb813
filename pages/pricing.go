package pages

import (
	"net/url"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/bistroconsulting/bistro/content"
	"github.com/bistroconsulting/bistro/icons"
	"github.com/bistroconsulting/bistro/motion"
	"github.com/bistroconsulting/bistro/ui"
)

// PartialPlans is the fragment name for the plan grid.
const PartialPlans = "plans"

// BillingToggle is the monthly/yearly switch. Activating it flips *b.
func BillingToggle(b *content.Billing) ui.Button {
	return ui.Button{
		Label:   "Toggle yearly billing",
		Variant: ui.ButtonGlass,
		Size:    ui.SizeSmall,
		OnClick: b.Toggle,
	}
}

// YearlyPath serves the yearly billing state as its own page, so a static
// copy of the site holds both states.
const YearlyPath = "/pricing/yearly/"

// BillingHref is the link the toggle points at: the pricing page in the
// billing state one click would produce. The menu state is dropped.
func BillingHref(b content.Billing) string {
	next := b
	BillingToggle(&next).Activate()
	if next == content.Yearly {
		return YearlyPath
	}
	return "/pricing/"
}

// Pricing renders the plans page in billing state f.Billing.
func Pricing(f Frame) g.Node {
	pp := f.Site.Pricing
	return f.Document(f.meta("Pricing", "/pricing/"), OffersJsonLD(f.Config, pp.Plans), nil,
		h.Div(h.Class("pt-40"),
			hero("pb-24 px-4 hero-gradient", pp.Hero, billingSwitch(pp, f.Billing)),
		),
		plansSection(pp, f.Billing),
		faqSection(pp),
		ctaSection(pp.CTA,
			ui.Button{Label: "Book Free Consultation", Variant: ui.ButtonSecondary, Size: ui.SizeLarge, Icon: icons.ArrowRight, Href: "/contact/", Class: "text-lg px-10 py-5"},
		),
	)
}

// PricingPartial renders one named fragment of the pricing page. ok is
// false for unknown names.
func PricingPartial(f Frame, name string) (g.Node, bool) {
	switch name {
	case PartialPlans:
		return h.Div(
			billingSwitch(f.Site.Pricing, f.Billing),
			planGrid(f.Site.Pricing, f.Billing),
		), true
	}
	return nil, false
}

func billingSwitch(pp content.Pricing, b content.Billing) g.Node {
	yearly := b == content.Yearly
	monthlyClass, yearlyClass := "text-orange-500", "text-gray-500"
	track, knob, checked := "bg-gray-300", motion.KnobAt(4), "false"
	if yearly {
		monthlyClass, yearlyClass = "text-gray-500", "text-orange-500"
		track, knob, checked = "gradient-bg", motion.KnobAt(24), "true"
	}
	href := BillingHref(b)
	return h.Div(h.ID("billing-toggle"), h.Class("flex items-center justify-center mb-16"), h.Data("billing", b.String()),
		h.Span(h.Class("mr-4 text-lg font-medium "+monthlyClass), g.Text("Monthly")),
		h.A(h.Href(href), h.Role("switch"), h.Aria("checked", checked), h.Aria("label", "Toggle yearly billing"),
			g.Attr("hx-get", href+partialQuery(href)), g.Attr("hx-target", "#plans"), g.Attr("hx-select", "#plans"),
			g.Attr("hx-select-oob", "#billing-toggle"), g.Attr("hx-swap", "outerHTML"), g.Attr("hx-push-url", href),
			h.Class("relative inline-flex h-8 w-14 items-center rounded-full transition-colors premium-shadow "+track),
			ui.Motion(motion.ButtonHover, motion.ButtonPress),
			h.Span(h.Class("inline-block h-6 w-6 transform rounded-full bg-white shadow-lg"), ui.Motion(knob)),
		),
		h.Span(h.Class("ml-4 text-lg font-medium "+yearlyClass), g.Text("Yearly")),
		g.If(yearly, h.Span(h.Class("ml-3 text-sm text-green-600 font-bold bg-green-100 px-3 py-1 rounded-full"),
			h.Data("badge", "discount"), ui.Motion(motion.BadgeIn), g.Text(pp.DiscountLabel()))),
	)
}

func partialQuery(href string) string {
	u, err := url.Parse(href)
	if err != nil || u.RawQuery == "" {
		return "?partial=" + PartialPlans
	}
	return "&partial=" + PartialPlans
}

func plansSection(pp content.Pricing, b content.Billing) g.Node {
	r := ui.NewReveal(motion.InView)
	return r.Section("pb-24 px-4 section-gradient",
		h.Div(h.Class("max-w-7xl mx-auto"), planGridWith(r, pp, b)),
	)
}

func planGrid(pp content.Pricing, b content.Billing) g.Node {
	return planGridWith(ui.NewReveal(motion.InView), pp, b)
}

func planGridWith(r *ui.Reveal, pp content.Pricing, b content.Billing) g.Node {
	return h.Div(h.ID("plans"), h.Class("grid lg:grid-cols-3 gap-10"), h.Data("billing", b.String()),
		g.Group(g.Map(pp.Plans, func(p content.Plan) g.Node {
			return r.Wrap(PlanCard(p, b))
		})),
	)
}

// PlanCard renders one plan in billing state b. The popular plan is
// elevated with a primary button, the others use the pricing card and an
// outline button.
func PlanCard(p content.Plan, b content.Billing) g.Node {
	variant, btn, extra := ui.CardPricing, ui.ButtonOutline, ""
	if p.Popular {
		variant, btn, extra = ui.CardElevated, ui.ButtonPrimary, " border-orange-500 border-2 scale-105"
	}
	var badge g.Node
	if p.Popular {
		badge = h.Div(h.Class("absolute -top-4 left-1/2 transform -translate-x-1/2"),
			h.Div(h.Class("gradient-bg px-6 py-2 rounded-full text-sm font-bold text-white premium-shadow flex items-center"),
				ui.Icon(icons.Star, "w-4 h-4 mr-2"), g.Text(p.Badge)))
	} else {
		badge = h.Div(h.Class("absolute -top-3 left-1/2 transform -translate-x-1/2"),
			h.Div(h.Class("bg-gray-600 text-white px-4 py-1 rounded-full text-xs font-medium"), g.Text(p.Badge)))
	}
	return ui.Card{
		Variant: variant,
		Kind:    "plan",
		Class:   "relative h-full flex flex-col" + extra,
		Children: []g.Node{
			g.If(p.Badge != "", badge),
			h.Div(h.Class("text-center mb-10"),
				h.H3(h.Class("text-3xl font-bold font-space mb-3 text-gray-800"), g.Text(p.Name)),
				h.P(h.Class("text-gray-600 mb-8 font-medium"), g.Text(p.Subtitle)),
				h.Div(h.Class("mb-8"),
					h.Span(h.Class("text-5xl font-bold font-space gradient-text"), h.Data("price", ""),
						g.Text(content.FormatDollars(p.DisplayPrice(b)))),
					h.Span(h.Class("text-gray-600 text-lg"), g.Text("/month")),
					g.If(b == content.Yearly, h.Div(h.Class("text-sm text-gray-500 mt-2"),
						g.Textf("Billed annually (%s/year)", content.FormatDollars(p.YearlyPrice)))),
				),
			),
			h.Div(h.Class("space-y-4 mb-10"),
				g.Group(g.Map(p.Features, func(s string) g.Node {
					return h.Div(h.Class("flex items-start"),
						ui.Icon(icons.Check, "w-5 h-5 text-orange-500 mr-4 mt-0.5 flex-shrink-0"),
						h.Span(h.Class("text-gray-700 leading-relaxed"), g.Text(s)),
					)
				})),
			),
			h.Div(h.Class("mt-auto"),
				ui.Button{Label: "Get Started", Variant: btn, Icon: icons.ArrowRight, Href: "/contact/?plan=" + url.QueryEscape(p.Name), Class: "w-full text-lg py-4"},
			),
		},
	}
}

func faqSection(pp content.Pricing) g.Node {
	r := ui.NewReveal(motion.InView)
	return r.Section("py-24 px-4",
		h.Div(h.Class("max-w-5xl mx-auto"),
			heading(r, pp.FAQSection),
			r.Wrap(ui.NewCard(ui.CardElevated, "faq", "",
				h.Div(h.Class("space-y-8"),
					g.Group(g.Map(pp.FAQs, func(q content.FAQ) g.Node {
						return h.Div(h.Class("border-b border-gray-200 last:border-b-0 pb-6 last:pb-0"),
							h.H3(h.Class("text-xl font-bold font-space mb-4 text-gray-800"), g.Text(q.Question)),
							h.Div(h.Class("text-gray-600 leading-relaxed"), g.Raw(string(q.AnswerHTML()))),
						)
					})),
				),
			)),
		),
	)
}
