package pages

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/bistroconsulting/bistro/content"
	"github.com/bistroconsulting/bistro/icons"
	"github.com/bistroconsulting/bistro/motion"
	"github.com/bistroconsulting/bistro/ui"
)

// WidgetScript is the third-party form widget's loader.
const WidgetScript = "https://static.elfsight.com/platform/platform.js"

// Contact renders the contact page. With a widget id configured the form
// card hosts the widget; otherwise it renders the native form.
func Contact(f Frame, form ContactForm) g.Node {
	cp := f.Site.Contact
	var head []g.Node
	if f.Config.ContactWidgetID != "" {
		head = append(head, h.Script(h.Src(WidgetScript), h.Async()))
	}
	info := ui.NewReveal(motion.InView)
	formR := ui.NewReveal(motion.InView)
	cta := ui.NewReveal(motion.InView)

	return f.Document(f.meta("Contact", "/contact/"), OrganizationJsonLD(f.Config, f.Site), head,
		h.Div(h.Class("pt-40"),
			hero("pb-24 px-4 hero-gradient", cp.Hero),
		),
		info.Section("pb-24 px-4 section-gradient",
			h.Div(h.Class("max-w-7xl mx-auto"),
				h.Div(h.Class("grid md:grid-cols-2 lg:grid-cols-4 gap-8 mb-16"),
					g.Group(g.Map(cp.Channels, func(c content.Channel) g.Node {
						return info.Wrap(ui.NewCard(ui.CardElevated, "channel", "text-center h-full",
							iconTile(c.Icon, "w-16 h-16 rounded-3xl mx-auto mb-6", "w-8 h-8"),
							h.H3(h.Class("text-xl font-bold font-space mb-3 text-gray-800"), g.Text(c.Title)),
							h.P(h.Class("text-gray-700 font-semibold mb-2"), g.Text(c.Description)),
							g.If(c.Detail != "", h.P(h.Class("text-gray-500 text-sm"), g.Text(c.Detail))),
						))
					})),
				),
				h.Div(h.Class("grid md:grid-cols-2 gap-8"),
					g.Group(g.Map(cp.Benefits, func(it content.Item) g.Node {
						return info.Wrap(ui.NewCard(ui.CardElevated, "benefit", "h-full",
							h.Div(h.Class("flex items-start space-x-6"),
								iconTile(it.Icon, "w-14 h-14 rounded-2xl", "w-7 h-7"),
								h.Div(
									h.H3(h.Class("text-xl font-bold font-space mb-3 text-gray-800"), g.Text(it.Title)),
									h.P(h.Class("text-gray-600 leading-relaxed"), g.Text(it.Description)),
								),
							),
						))
					})),
				),
			),
		),
		formR.Section("pb-24 px-4",
			h.Div(h.Class("max-w-5xl mx-auto"),
				formR.Wrap(ui.NewCard(ui.CardElevated, "form", "gradient-bg text-white",
					h.Div(h.Class("text-center mb-10"),
						h.H2(h.Class("text-4xl md:text-5xl font-bold font-space mb-6 text-shadow"), g.Text(cp.FormTitle)),
						g.If(cp.FormLead != "", h.P(h.Class("text-xl opacity-95 leading-relaxed max-w-3xl mx-auto"), g.Text(cp.FormLead))),
					),
					h.Div(h.ID("contact-form"), h.Class("premium-glassmorphism rounded-3xl p-8 bg-white bg-opacity-20"),
						formBody(f, form),
					),
				)),
			),
		),
		cta.Section("py-24 px-4 section-gradient",
			h.Div(h.Class("max-w-5xl mx-auto"),
				cta.Wrap(ui.NewCard(ui.CardElevated, "cta", "text-center",
					h.H2(h.Class("text-4xl md:text-5xl font-bold font-space mb-8 text-gray-800"), ui.Heading(cp.CTA.Title, cp.CTA.Highlight)),
					h.P(h.Class("text-xl mb-10 text-gray-600 max-w-3xl mx-auto leading-relaxed"), g.Text(cp.CTA.Text)),
					h.Div(h.Class("grid md:grid-cols-2 gap-8 max-w-2xl mx-auto"),
						reach(icons.Phone, "Call Now", cp.Phone, "tel:"+cp.Phone, "Free consultation available"),
						reach(icons.Mail, "Email Us", cp.Email, "mailto:"+cp.Email, "24-hour response guarantee"),
					),
				)),
			),
		),
	)
}

func reach(icon, title, value, href, note string) g.Node {
	return h.Div(h.Class("text-center"),
		h.Div(h.Class("text-2xl font-bold gradient-text mb-2 flex items-center justify-center"),
			ui.Icon(icon, "w-6 h-6 mr-2 text-orange-500"), g.Text(title)),
		h.A(h.Href(href), h.Class("text-lg text-gray-700 font-semibold"), g.Text(value)),
		h.Div(h.Class("text-sm text-gray-500"), g.Text(note)),
	)
}

func formBody(f Frame, form ContactForm) g.Node {
	if id := f.Config.ContactWidgetID; id != "" {
		return h.Div(h.Class("elfsight-app-"+id), g.Attr("data-elfsight-app-lazy"))
	}
	if form.Sent {
		return h.Div(h.Class("text-center py-8"), h.Role("status"),
			ui.Icon(icons.Check, "w-12 h-12 mx-auto mb-4"),
			h.P(h.Class("text-2xl font-bold"), g.Text("Thanks! Your request is in.")),
			h.P(h.Class("mt-2 opacity-90"), g.Text("We'll get back to you within 24 hours.")),
		)
	}
	return ContactFormNode(form, planOptions(f.Site))
}

// ContactFormNode is the native consultation request form.
func ContactFormNode(form ContactForm, plans []string) g.Node {
	return g.El("form", h.Method("post"), h.Action("/contact/"), h.Class("space-y-6 text-left"), g.Attr("novalidate"),
		h.Input(h.Type("hidden"), h.Name("_csrf"), h.Value(form.CSRF)),
		h.Div(h.Class("grid md:grid-cols-2 gap-6"),
			field(form, "name", "Your name", "text", form.Name, true),
			field(form, "email", "Email", "email", form.Email, true),
		),
		h.Div(h.Class("grid md:grid-cols-2 gap-6"),
			field(form, "restaurant", "Restaurant", "text", form.Restaurant, false),
			planSelect(form, plans),
		),
		h.Div(
			g.El("label", g.Attr("for", "message"), h.Class("block font-semibold mb-2"), g.Text("How can we help?")),
			h.Textarea(h.ID("message"), h.Name("message"), g.Attr("rows", "5"), h.Required(),
				h.Class("w-full rounded-2xl px-4 py-3 text-gray-800"), g.Text(form.Message)),
			fieldError(form, "message"),
		),
		h.Div(h.Class("text-center"),
			ui.Button{Label: "Request Free Consultation", Variant: ui.ButtonSecondary, Size: ui.SizeLarge, Icon: icons.Calendar, Type: "submit"},
		),
	)
}

func field(form ContactForm, name, label, typ, value string, required bool) g.Node {
	return h.Div(
		g.El("label", g.Attr("for", name), h.Class("block font-semibold mb-2"), g.Text(label)),
		h.Input(h.ID(name), h.Name(name), h.Type(typ), h.Value(value),
			g.If(required, h.Required()),
			g.If(form.Errors[name] != "", h.Aria("invalid", "true")),
			h.Class("w-full rounded-2xl px-4 py-3 text-gray-800")),
		fieldError(form, name),
	)
}

func planSelect(form ContactForm, plans []string) g.Node {
	opts := []g.Node{h.Option(h.Value(""), g.Text("Not sure yet"))}
	for _, p := range plans {
		opts = append(opts, h.Option(h.Value(p), g.If(p == form.Plan, h.Selected()), g.Text(p)))
	}
	return h.Div(
		g.El("label", g.Attr("for", "plan"), h.Class("block font-semibold mb-2"), g.Text("Plan")),
		h.Select(h.ID("plan"), h.Name("plan"), h.Class("w-full rounded-2xl px-4 py-3 text-gray-800"), g.Group(opts)),
		fieldError(form, "plan"),
	)
}

func fieldError(form ContactForm, name string) g.Node {
	msg, ok := form.Errors[name]
	if !ok {
		return g.Group(nil)
	}
	return h.P(h.Class("mt-1 text-sm font-semibold text-yellow-200"), h.Data("error", name), g.Text(msg))
}
