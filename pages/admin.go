package pages

import (
	"strconv"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/bistroconsulting/bistro/ui"
)

// AdminLogin renders the password form. errMsg is shown above the form.
func AdminLogin(f Frame, csrf, errMsg string) g.Node {
	return f.Document(PageMeta{Title: "Admin | " + f.Config.Name}, "", adminHead(),
		h.Section(h.Class("pt-40 pb-24 px-4"),
			h.Div(h.Class("max-w-md mx-auto"),
				ui.Card{Variant: ui.CardElevated, NoHover: true, Kind: "login", Children: []g.Node{
					h.H1(h.Class("text-3xl font-bold font-space mb-6 text-gray-800"), g.Text("Admin")),
					g.If(errMsg != "", h.P(h.Class("mb-4 text-red-600 font-semibold"), h.Role("alert"), g.Text(errMsg))),
					g.El("form", h.Method("post"), h.Action("/admin/login/"), h.Class("space-y-4"),
						h.Input(h.Type("hidden"), h.Name("_csrf"), h.Value(csrf)),
						g.El("label", g.Attr("for", "password"), h.Class("block font-semibold"), g.Text("Password")),
						h.Input(h.ID("password"), h.Name("password"), h.Type("password"), h.Required(),
							g.Attr("autocomplete", "current-password"), h.Class("w-full rounded-2xl px-4 py-3 border border-gray-200")),
						ui.Button{Label: "Sign in", Type: "submit", Class: "w-full"},
					),
				}},
			),
		),
	)
}

// AdminDashboard renders inquiries and page-view counts.
func AdminDashboard(f Frame, d Dashboard) g.Node {
	return f.Document(PageMeta{Title: "Dashboard | " + f.Config.Name}, "", adminHead(),
		h.Section(h.Class("pt-32 pb-24 px-4"),
			h.Div(h.Class("max-w-6xl mx-auto space-y-10"),
				h.Div(h.Class("flex items-center justify-between"),
					h.H1(h.Class("text-4xl font-bold font-space text-gray-800"), g.Text("Dashboard")),
					g.El("form", h.Method("post"), h.Action("/admin/logout/"),
						h.Input(h.Type("hidden"), h.Name("_csrf"), h.Value(d.CSRF)),
						ui.Button{Label: "Sign out", Type: "submit", Variant: ui.ButtonOutline, Size: ui.SizeSmall},
					),
				),
				ui.Card{Variant: ui.CardElevated, NoHover: true, Kind: "views", Children: []g.Node{
					h.H2(h.Class("text-2xl font-bold mb-4"), g.Textf("Page views, last %d days", d.Days)),
					viewsTable(d.Views),
					h.P(h.Class("mt-4 text-sm text-gray-500"), g.Textf("Unique visitors: %d · Bot hits: %d", d.Visitors, d.Bots)),
				}},
				ui.Card{Variant: ui.CardElevated, NoHover: true, Kind: "inquiries", Children: []g.Node{
					h.H2(h.Class("text-2xl font-bold mb-4"), g.Textf("Inquiries (%d, %d open)", len(d.Inquiries), d.Open)),
					g.If(len(d.Inquiries) == 0, h.P(h.Class("text-gray-500"), g.Text("No inquiries yet."))),
					h.Div(h.Class("space-y-4"),
						g.Group(g.Map(d.Inquiries, func(in Inquiry) g.Node { return inquiryRow(in, d.CSRF) })),
					),
				}},
			),
		),
	)
}

func adminHead() []g.Node {
	return []g.Node{h.Meta(h.Name("robots"), h.Content("noindex, nofollow"))}
}

func viewsTable(rows []RouteViews) g.Node {
	if len(rows) == 0 {
		return h.P(h.Class("text-gray-500"), g.Text("No views recorded."))
	}
	return h.Table(h.Class("w-full text-left"),
		h.THead(h.Tr(h.Th(g.Text("Path")), h.Th(h.Class("text-right"), g.Text("Views")))),
		h.TBody(g.Group(g.Map(rows, func(r RouteViews) g.Node {
			return h.Tr(h.Data("path", r.Path),
				h.Td(h.Class("py-1 font-mono"), g.Text(r.Path)),
				h.Td(h.Class("py-1 text-right"), g.Text(strconv.Itoa(r.Views))),
			)
		}))),
	)
}

func inquiryRow(in Inquiry, csrf string) g.Node {
	id := strconv.FormatInt(in.ID, 10)
	state := "open"
	if in.Handled {
		state = "handled"
	}
	return h.Div(h.Class("border border-gray-200 rounded-2xl p-4"), h.Data("inquiry", id), h.Data("state", state),
		h.Div(h.Class("flex items-start justify-between gap-4"),
			h.Div(
				h.P(h.Class("font-bold"), g.Text(in.Name), g.Text(" · "),
					h.A(h.Href("mailto:"+in.Email), h.Class("text-orange-600"), g.Text(in.Email))),
				h.P(h.Class("text-sm text-gray-500"),
					g.Text(in.CreatedAt.Format("2006-01-02 15:04")),
					g.If(in.Restaurant != "", g.Text(" · "+in.Restaurant)),
					g.If(in.Plan != "", g.Text(" · "+in.Plan)),
				),
			),
			h.Div(h.Class("flex gap-2"),
				g.If(!in.Handled, g.El("form", h.Method("post"), h.Action("/admin/inquiries/"+id+"/handled/"),
					h.Input(h.Type("hidden"), h.Name("_csrf"), h.Value(csrf)),
					ui.Button{Label: "Mark handled", Type: "submit", Variant: ui.ButtonSecondary, Size: ui.SizeSmall},
				)),
				g.El("form", h.Method("post"), h.Action("/admin/inquiries/"+id+"/delete/"),
					h.Input(h.Type("hidden"), h.Name("_csrf"), h.Value(csrf)),
					ui.Button{Label: "Delete", Type: "submit", Variant: ui.ButtonOutline, Size: ui.SizeSmall},
				),
			),
		),
		h.P(h.Class("mt-3 whitespace-pre-line text-gray-700"), g.Text(in.Message)),
	)
}
