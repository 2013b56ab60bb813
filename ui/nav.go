package ui

import (
	"io"
	"net/url"
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/bistroconsulting/bistro/icons"
	"github.com/bistroconsulting/bistro/motion"
)

// MenuState is the mobile menu's open/closed flag. It is carried in the
// "menu" query parameter.
type MenuState int

const (
	MenuClosed MenuState = iota
	MenuOpen
)

// ParseMenu maps a query value to a MenuState.
func ParseMenu(v string) MenuState {
	if v == "open" {
		return MenuOpen
	}
	return MenuClosed
}

// Toggle flips the state in place.
func (m *MenuState) Toggle() {
	if *m == MenuOpen {
		*m = MenuClosed
		return
	}
	*m = MenuOpen
}

func (m MenuState) String() string {
	if m == MenuOpen {
		return "open"
	}
	return "closed"
}

// NavItem is one top-level route.
type NavItem struct {
	Name string
	Path string
}

// NavItems is the fixed navigation order.
var NavItems = []NavItem{
	{Name: "Home", Path: "/"},
	{Name: "About", Path: "/about/"},
	{Name: "Pricing", Path: "/pricing/"},
	{Name: "Contact", Path: "/contact/"},
}

// NormalizePath drops a trailing slash so "/about" and "/about/" compare
// equal. The root stays "/".
func NormalizePath(p string) string {
	if p == "" {
		return "/"
	}
	if len(p) > 1 {
		p = strings.TrimRight(p, "/")
		if p == "" {
			return "/"
		}
	}
	return p
}

// IsActive reports whether item is the page at path.
func IsActive(item NavItem, path string) bool {
	return NormalizePath(item.Path) == NormalizePath(path)
}

// ActiveItem returns the nav item for path, if any. Unknown paths have no
// active item.
func ActiveItem(path string) (NavItem, bool) {
	for _, it := range NavItems {
		if IsActive(it, path) {
			return it, true
		}
	}
	return NavItem{}, false
}

// Navigation is the fixed top bar.
type Navigation struct {
	Brand   string
	Current string
	Menu    MenuState
	// Self is the page's own path when it is not Current itself, such as
	// the yearly pricing page under the Pricing entry.
	Self string
}

// MenuButton is the mobile toggle. Activating it flips n.Menu.
func (n *Navigation) MenuButton() Button {
	icon := icons.Menu
	if n.Menu == MenuOpen {
		icon = icons.X
	}
	return Button{
		Label:   label(n.Menu),
		Icon:    icon,
		Variant: ButtonGlass,
		Size:    SizeSmall,
		OnClick: n.Menu.Toggle,
	}
}

// ToggleHref is the URL the menu button links to: the current page with
// the menu state it would have after one click.
func (n Navigation) ToggleHref() string {
	next := n
	btn := next.MenuButton()
	btn.Activate()
	return next.href(next.Menu)
}

func (n Navigation) href(m MenuState) string {
	path := n.Current
	if n.Self != "" {
		path = n.Self
	}
	if m == MenuOpen {
		return path + "?" + url.Values{"menu": {"open"}}.Encode()
	}
	return path
}

func (n Navigation) Render(w io.Writer) error {
	btn := n.MenuButton()
	btn.Href = n.ToggleHref()
	btn.Label = ""
	btn.Class = "md:hidden p-3 rounded-2xl"
	expanded, other := "false", icons.X
	if n.Menu == MenuOpen {
		expanded, other = "true", icons.Menu
	}
	// The link is the no-script fallback; motion.js opens the menu in place
	// and swaps in the icon held by the template.
	btn.Attrs = []g.Node{
		h.Aria("label", label(n.Menu)),
		h.Aria("expanded", expanded),
		h.Aria("controls", "mobile-menu"),
		h.Data("menu-toggle", ""),
		g.El("template", h.Data("menu-icon", ""), Icon(other, "w-5 h-5 mr-2.5")),
	}

	return h.Nav(
		h.Class("fixed top-0 left-0 right-0 z-50 premium-glassmorphism"),
		h.Data("menu", n.Menu.String()),
		Motion(motion.NavEntrance),
		h.Div(h.Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8"),
			h.Div(h.Class("flex justify-between items-center h-20"),
				h.A(h.Href("/"), h.Class("flex items-center space-x-3 group"), Motion(motion.LogoHover),
					h.Div(h.Class("w-12 h-12 gradient-bg rounded-2xl flex items-center justify-center premium-shadow"),
						Icon(icons.Utensils, "w-7 h-7 text-white"),
					),
					h.Span(h.Class("text-2xl font-bold gradient-text"), g.Text(n.Brand)),
				),
				h.Div(h.Class("hidden md:flex items-center space-x-10"),
					g.Group(g.Map(NavItems, n.desktopLink)),
				),
				btn,
			),
		),
		h.Div(h.ID("mobile-menu"), h.Class("md:hidden premium-glassmorphism border-t border-white/20"),
			g.If(n.Menu != MenuOpen, g.Attr("hidden")),
			h.Div(h.Class("px-4 pt-4 pb-6 space-y-2"),
				g.Group(mobileLinks(n.Current, n.Menu)),
			),
		),
	).Render(w)
}

func label(m MenuState) string {
	if m == MenuOpen {
		return "Close menu"
	}
	return "Open menu"
}

// IndicatorClass draws the active page's underline. Its data-layout-id lets
// motion.js slide it from the previous page's position.
const IndicatorClass = "absolute -bottom-2 left-0 right-0 h-1 gradient-bg rounded-full glow-active"

func (n Navigation) desktopLink(it NavItem) g.Node {
	active := IsActive(it, n.Current)
	class := "text-base font-medium transition-all duration-300 "
	if active {
		class += "text-orange-500 font-semibold"
	} else {
		class += "text-gray-700 hover:text-orange-500"
	}
	return h.A(h.Href(it.Path), h.Class("relative group py-2"),
		g.If(active, h.Aria("current", "page")),
		h.Span(h.Class(class), Motion(motion.LinkHover), g.Text(it.Name)),
		g.If(active, h.Span(h.Class(IndicatorClass),
			h.Data("layout-id", motion.ActiveIndicator.LayoutID), Motion(motion.ActiveIndicator))),
		h.Span(h.Class("absolute -bottom-2 left-0 right-0 h-1 bg-orange-500 rounded-full opacity-0 group-hover:opacity-50")),
	)
}

// mobileLinks renders the menu list. Links close the menu because they
// carry no menu parameter. The active link is only announced as the
// current page while the menu is open; motion.js moves aria-current to
// the data-active link when it opens the menu in place.
func mobileLinks(current string, m MenuState) []g.Node {
	nodes := make([]g.Node, 0, len(NavItems))
	for i, it := range NavItems {
		s, _ := motion.Schedule(motion.OnToggle, motion.MenuItem, i)
		active := IsActive(it, current)
		class := "block px-6 py-4 text-base font-semibold rounded-2xl transition-all duration-300 "
		if active {
			class += "gradient-bg text-white premium-shadow"
		} else {
			class += "text-gray-700 hover:text-orange-600 hover:bg-white/50"
		}
		nodes = append(nodes, h.A(h.Href(it.Path), h.Class(class),
			Motion(motion.MenuItem.WithDelay(s.Delay)),
			g.If(active, h.Data("active", "")),
			g.If(active && m == MenuOpen, h.Aria("current", "page")),
			g.Text(it.Name),
		))
	}
	return nodes
}
