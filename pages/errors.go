package pages

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/bistroconsulting/bistro/icons"
	"github.com/bistroconsulting/bistro/ui"
)

// NotFound renders the styled 404 page.
func NotFound(f Frame) g.Node {
	return errorPage(f, "Page not found", "404",
		"The page you're looking for doesn't exist or has moved.")
}

// ServerError renders the styled 500 page.
func ServerError(f Frame) g.Node {
	return errorPage(f, "Something went wrong", "500",
		"We hit an unexpected problem. Please try again in a moment.")
}

func errorPage(f Frame, title, code, text string) g.Node {
	meta := f.meta(title, f.Path)
	return f.Document(meta, "", []g.Node{h.Meta(h.Name("robots"), h.Content("noindex"))},
		h.Section(h.Class("pt-40 pb-24 px-4 hero-gradient"),
			h.Div(h.Class("max-w-3xl mx-auto text-center"),
				ui.NewCard(ui.CardElevated, "error", "",
					h.P(h.Class("text-7xl font-bold font-space gradient-text mb-6"), g.Text(code)),
					h.H1(h.Class("text-4xl font-bold font-space mb-4 text-gray-800"), g.Text(title)),
					h.P(h.Class("text-lg text-gray-600 mb-10"), g.Text(text)),
					ui.Button{Label: "Back to home", Href: "/", Icon: icons.ArrowRight},
				),
			),
		),
	)
}
