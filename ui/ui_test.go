package ui

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"

	"github.com/bistroconsulting/bistro/icons"
	"github.com/bistroconsulting/bistro/motion"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	return b.String()
}

func TestValidateStyles(t *testing.T) {
	require.NoError(t, ValidateStyles())
}

func TestButtonStyleIncludesVariantAndSize(t *testing.T) {
	for _, v := range ButtonVariants {
		for _, s := range ButtonSizes {
			class, err := Button{Variant: v, Size: s}.Classes()
			require.NoError(t, err)
			assert.Contains(t, class, string(buttonStyles[v]))
			assert.Contains(t, class, string(sizeStyles[s]))
			assert.True(t, strings.HasPrefix(class, string(buttonBase)))
		}
	}
}

func TestButtonDefaults(t *testing.T) {
	class, err := Button{}.Classes()
	require.NoError(t, err)
	assert.Contains(t, class, "gradient-bg")
	assert.Contains(t, class, "px-7 py-3.5")
}

func TestUnknownVariantIsRenderError(t *testing.T) {
	var b strings.Builder
	err := Button{Label: "x", Variant: "neon"}.Render(&b)
	assert.True(t, errors.Is(err, ErrUnknownVariant))

	err = Card{Variant: "paper"}.Render(&b)
	assert.True(t, errors.Is(err, ErrUnknownVariant))

	_, err = ButtonSize("xl").Style()
	assert.True(t, errors.Is(err, ErrUnknownVariant))
}

func TestButtonActivate(t *testing.T) {
	clicks := 0
	b := Button{Label: "Go", OnClick: func() { clicks++ }}
	assert.True(t, b.Activate())
	assert.Equal(t, 1, clicks)

	b.Disabled = true
	assert.False(t, b.Activate())
	assert.Equal(t, 1, clicks)

	assert.False(t, Button{Label: "noop"}.Activate())
}

func TestDisabledButtonHasNoMotion(t *testing.T) {
	assert.Nil(t, Button{Disabled: true}.Presets())
	assert.Len(t, Button{}.Presets(), 2)

	out := render(t, Button{Label: "Send", Disabled: true, Type: "submit"})
	assert.Contains(t, out, "disabled")
	assert.Contains(t, out, "opacity-50 cursor-not-allowed")
	assert.NotContains(t, out, "data-motion")

	out = render(t, Button{Label: "Send"})
	assert.Contains(t, out, "button-hover")
	assert.Contains(t, out, "button-press")
	assert.Contains(t, out, `type="button"`)
}

func TestButtonLink(t *testing.T) {
	out := render(t, Button{Label: "Pricing", Href: "/pricing/", Icon: "calendar", Trailing: "arrow-right"})
	assert.True(t, strings.HasPrefix(out, `<a href="/pricing/"`), out)
	lead := strings.Index(out, `data-icon="calendar"`)
	label := strings.Index(out, "Pricing<")
	trail := strings.Index(out, `data-icon="arrow-right"`)
	assert.True(t, lead >= 0 && lead < label && label < trail, out)

	out = render(t, Button{Label: "Off", Href: "/x", Disabled: true})
	assert.NotContains(t, out, "href=")
	assert.Contains(t, out, `aria-disabled="true"`)
}

func TestCardHover(t *testing.T) {
	out := render(t, Card{Kind: "service", Children: []g.Node{g.Text("hi")}})
	assert.Contains(t, out, "premium-glassmorphism")
	assert.Contains(t, out, "rounded-3xl p-8")
	assert.Contains(t, out, "hover:glow-orange")
	assert.Contains(t, out, "card-lift")
	assert.Contains(t, out, `data-card="service"`)
	assert.Contains(t, out, "hi")

	out = render(t, Card{Variant: CardTestimonial, NoHover: true})
	assert.Contains(t, out, "testimonial-glassmorphism")
	assert.NotContains(t, out, "hover:glow-orange")
	assert.NotContains(t, out, "card-lift")
}

func TestNormalizePathAndActive(t *testing.T) {
	assert.Equal(t, "/", NormalizePath(""))
	assert.Equal(t, "/", NormalizePath("/"))
	assert.Equal(t, "/about", NormalizePath("/about/"))
	assert.Equal(t, "/about", NormalizePath("/about"))

	it, ok := ActiveItem("/pricing")
	require.True(t, ok)
	assert.Equal(t, "Pricing", it.Name)

	_, ok = ActiveItem("/menu")
	assert.False(t, ok)

	active := 0
	for _, it := range NavItems {
		if IsActive(it, "/contact/") {
			active++
		}
	}
	assert.Equal(t, 1, active)
}

func TestMenuToggle(t *testing.T) {
	m := ParseMenu("")
	assert.Equal(t, MenuClosed, m)
	m.Toggle()
	assert.Equal(t, MenuOpen, m)
	m.Toggle()
	assert.Equal(t, MenuClosed, m)
	assert.Equal(t, MenuOpen, ParseMenu("open"))
}

func TestNavigationToggleHref(t *testing.T) {
	n := Navigation{Brand: "Bistro", Current: "/about/"}
	assert.Equal(t, "/about/?menu=open", n.ToggleHref())
	assert.Equal(t, MenuClosed, n.Menu, "computing the link must not change the state")

	n.Menu = MenuOpen
	assert.Equal(t, "/about/", n.ToggleHref())

	n = Navigation{Current: "/pricing/", Self: "/pricing/yearly/"}
	assert.Equal(t, "/pricing/yearly/?menu=open", n.ToggleHref())
}

func TestNavigationRender(t *testing.T) {
	closed := render(t, Navigation{Brand: "Bistro", Current: "/pricing"})
	assert.Contains(t, closed, "Bistro")
	assert.Equal(t, 1, strings.Count(closed, `aria-current="page"`))
	assert.Contains(t, closed, `data-layout-id="activeTab"`)
	assert.Contains(t, closed, `aria-expanded="false"`)
	// The menu is in the page but hidden, so scripts can open it without
	// a round trip.
	assert.Contains(t, closed, `<div id="mobile-menu" class="md:hidden premium-glassmorphism border-t border-white/20" hidden>`)
	assert.Contains(t, closed, `data-menu-toggle`)
	assert.Contains(t, closed, `data-active`)

	open := render(t, Navigation{Brand: "Bistro", Current: "/pricing/", Menu: MenuOpen})
	assert.Contains(t, open, `<div id="mobile-menu" class="md:hidden premium-glassmorphism border-t border-white/20">`)
	assert.Contains(t, open, `aria-expanded="true"`)
	assert.Equal(t, 2, strings.Count(open, `aria-current="page"`))
	for _, it := range NavItems {
		assert.Contains(t, open, `href="`+it.Path+`"`)
	}
	// The 4th link lands 300ms after the first.
	assert.Contains(t, open, `&#34;delay&#34;:0.3`)

	unknown := render(t, Navigation{Brand: "Bistro", Current: "/nope"})
	assert.NotContains(t, unknown, `aria-current="page"`)
}

func TestActiveIndicatorIsAnUnderline(t *testing.T) {
	out := render(t, Navigation{Brand: "Bistro", Current: "/about/"})
	assert.Equal(t, 1, strings.Count(out, `data-layout-id="activeTab"`))
	assert.Contains(t, out, `<span class="`+IndicatorClass+`" data-layout-id="activeTab"`)
	assert.Contains(t, IndicatorClass, "-bottom-2")
	assert.Contains(t, IndicatorClass, "h-1")
	assert.NotContains(t, out, "absolute inset-0")
	assert.Contains(t, out, `&#34;layoutId&#34;:&#34;activeTab&#34;`)
}

func TestMenuButtonCarriesTheOtherIcon(t *testing.T) {
	closed := render(t, Navigation{Brand: "Bistro", Current: "/"})
	open := render(t, Navigation{Brand: "Bistro", Current: "/", Menu: MenuOpen})

	tpl := `<template data-menu-icon="">`
	assert.Contains(t, closed, tpl+icons.SVG(icons.X, "w-5 h-5 mr-2.5"))
	assert.Contains(t, open, tpl+icons.SVG(icons.Menu, "w-5 h-5 mr-2.5"))
}

func TestRevealNumbersItems(t *testing.T) {
	r := NewReveal(motion.InView)
	a := render(t, r.Item("a"))
	b := render(t, r.Item("b"))
	c := render(t, r.Wrap(g.Text("c")))
	assert.Equal(t, 3, r.Count())

	assert.NotContains(t, a, "delay")
	assert.Contains(t, b, `&#34;delay&#34;:0.15`)
	assert.Contains(t, c, `&#34;delay&#34;:0.3`)
	assert.Contains(t, a, `&#34;on&#34;:&#34;inview&#34;`)

	sec := render(t, r.Section("py-8"))
	assert.Contains(t, sec, "group-reveal")

	hero := NewReveal(motion.OnMount)
	assert.Contains(t, render(t, hero.Item("")), `&#34;on&#34;:&#34;mount&#34;`)
}

func TestBackgroundIsDeterministic(t *testing.T) {
	assert.Equal(t, render(t, Background()), render(t, Background()))
	assert.Equal(t, 20, strings.Count(render(t, Background()), `class="particle"`))
}

func TestLayoutAndComponent(t *testing.T) {
	page := Page{
		Title:       "Pricing | Bistro",
		Description: "Plans",
		Canonical:   "https://example.com/pricing/",
		JSONLD:      `{"@type":"Organization"}`,
		Nav:         Navigation{Brand: "Bistro", Current: "/pricing/"},
		Footer:      Footer{Brand: "Bistro", Email: "hi@example.com", Year: 2026},
	}
	var b strings.Builder
	err := Component(Layout(page, g.Text("body"))).Render(context.Background(), &b)
	require.NoError(t, err)
	out := b.String()

	assert.True(t, strings.HasPrefix(out, "<!doctype html>"), out[:20])
	assert.Contains(t, out, "<title>Pricing | Bistro</title>")
	assert.Contains(t, out, `rel="canonical" href="https://example.com/pricing/"`)
	assert.Contains(t, out, `application/ld+json`)
	assert.Contains(t, out, "page-fade")
	assert.Contains(t, out, `src="`+htmxSrc+`" integrity="`+htmxIntegrity+`" crossorigin="anonymous"`)
	assert.Contains(t, out, "© 2026 Bistro")
	assert.Contains(t, out, "body")
}
