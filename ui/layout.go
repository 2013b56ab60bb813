package ui

import (
	"fmt"
	"io"
	"time"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/bistroconsulting/bistro/icons"
	"github.com/bistroconsulting/bistro/motion"
)

// htmx is pinned and loaded with the digest published for the release, so
// a changed file on the CDN is refused by the browser.
const (
	htmxSrc       = "https://unpkg.com/htmx.org@2.0.4/dist/htmx.min.js"
	htmxIntegrity = "sha384-HGfztofotfshcF7+8n44JQL2oJmowVChPTg48S+jvZoztPfvwD79OC/LTtG6dMp+"
)

// Page is the document-level data every page supplies to Layout.
type Page struct {
	Title       string
	Description string
	Canonical   string
	OGType      string
	SiteName    string
	// JSONLD is a serialized schema.org document placed in the head.
	JSONLD string
	Nav    Navigation
	// Head holds extra head nodes, such as a third-party widget script.
	Head   []g.Node
	Footer Footer
}

// Footer is the contact strip at the bottom of every page.
type Footer struct {
	Brand   string
	Tagline string
	Phone   string
	Email   string
	Year    int
}

// Layout wraps children in the full document: head metadata, the animated
// background, the navigation bar and a fading main region.
func Layout(p Page, children ...g.Node) g.Node {
	ogType := p.OGType
	if ogType == "" {
		ogType = "website"
	}
	return g.Group([]g.Node{
		h.Doctype(
			h.HTML(h.Lang("en"),
				h.Head(
					h.Meta(h.Charset("utf-8")),
					h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
					g.El("title", g.Text(p.Title)),
					h.Meta(h.Name("description"), h.Content(p.Description)),
					g.If(p.Canonical != "", h.Link(h.Rel("canonical"), h.Href(p.Canonical))),
					h.Meta(g.Attr("property", "og:title"), h.Content(p.Title)),
					h.Meta(g.Attr("property", "og:description"), h.Content(p.Description)),
					h.Meta(g.Attr("property", "og:type"), h.Content(ogType)),
					g.If(p.SiteName != "", h.Meta(g.Attr("property", "og:site_name"), h.Content(p.SiteName))),
					g.If(p.Canonical != "", h.Meta(g.Attr("property", "og:url"), h.Content(p.Canonical))),
					h.Link(h.Rel("icon"), h.Href("/public/favicon.svg"), h.Type("image/svg+xml")),
					h.Link(h.Rel("stylesheet"), h.Href("/public/bistro.css")),
					h.Link(h.Rel("stylesheet"), h.Href("/public/site.css")),
					g.If(p.JSONLD != "", h.Script(h.Type("application/ld+json"), g.Raw(p.JSONLD))),
					h.Script(h.Src(htmxSrc), g.Attr("integrity", htmxIntegrity), g.Attr("crossorigin", "anonymous"), h.Defer()),
					h.Script(h.Src("/public/motion.js"), h.Defer()),
					g.Group(p.Head),
				),
				h.Body(h.Class("min-h-screen relative overflow-x-hidden"),
					Background(),
					p.Nav,
					h.Main(h.ID("main"), h.Class("relative z-10 pt-20"), Motion(motion.PageFade),
						g.Group(children),
					),
					p.Footer,
				),
			),
		),
	})
}

// Background is the decorative layer behind every page: gradient orbs plus
// a field of floating particles. Particle placement is a fixed function of
// the index so the markup is identical on every render.
func Background() g.Node {
	const particles = 20
	dots := make([]g.Node, 0, particles)
	for i := 0; i < particles; i++ {
		left := (i*37 + 11) % 100
		top := (i*53 + 7) % 100
		size := 4 + i%4*2
		dur := 15 + i%5*3
		delay := time.Duration(i%7) * 700 * time.Millisecond
		dots = append(dots, h.Span(
			h.Class("particle"),
			h.Style(fmt.Sprintf("left:%d%%;top:%d%%;width:%dpx;height:%dpx;animation-duration:%ds;animation-delay:%.1fs",
				left, top, size, size, dur, delay.Seconds())),
		))
	}
	return h.Div(h.Class("fixed inset-0 -z-10 pointer-events-none overflow-hidden"), h.Aria("hidden", "true"),
		h.Div(h.Class("bg-orb bg-orb-1")),
		h.Div(h.Class("bg-orb bg-orb-2")),
		h.Div(h.Class("bg-orb bg-orb-3")),
		g.Group(dots),
	)
}

func (f Footer) Render(w io.Writer) error {
	year := f.Year
	if year == 0 {
		year = time.Now().Year()
	}
	return h.Footer(h.Class("relative z-10 mt-24 premium-glassmorphism border-t border-white/20"),
		h.Div(h.Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8 py-12 grid md:grid-cols-3 gap-8 text-sm text-gray-600"),
			h.Div(
				h.P(h.Class("text-xl font-bold gradient-text"), g.Text(f.Brand)),
				g.If(f.Tagline != "", h.P(h.Class("mt-2"), g.Text(f.Tagline))),
			),
			h.Div(h.Class("space-y-2"),
				g.If(f.Email != "", h.A(h.Href("mailto:"+f.Email), h.Class("flex items-center hover:text-orange-600"),
					Icon(icons.Mail, "w-4 h-4 mr-2"), g.Text(f.Email))),
				g.If(f.Phone != "", h.P(h.Class("flex items-center"),
					Icon(icons.Phone, "w-4 h-4 mr-2"), g.Text(f.Phone))),
			),
			h.P(h.Class("md:text-right"), g.Textf("© %d %s. All rights reserved.", year, f.Brand)),
		),
	).Render(w)
}
