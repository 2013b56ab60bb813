package pages

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"

	"github.com/bistroconsulting/bistro/content"
	"github.com/bistroconsulting/bistro/ui"
)

func frame(path string) Frame {
	return Frame{
		Site:   content.MustDefault(),
		Config: SiteConfig{Name: "Bistro", URL: "https://bistro.example", Description: "Restaurant growth consulting"},
		Path:   path,
	}
}

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	return b.String()
}

func count(s, kind string) int {
	return strings.Count(s, `data-card="`+kind+`"`)
}

func TestHomeCardCounts(t *testing.T) {
	out := render(t, Home(frame("/")))
	assert.Equal(t, 4, count(out, "stat"))
	assert.Equal(t, 4, count(out, "service"))
	assert.Equal(t, 4, count(out, "step"))
	assert.Equal(t, 3, count(out, "testimonial"))
	assert.Equal(t, 1, count(out, "cta"))
	assert.Contains(t, out, "<title>Bistro</title>")
	assert.Contains(t, out, "Book Consultation Now")
	assert.Contains(t, out, "Lotus Garden")
}

func TestHomeMarksOnlyHomeActive(t *testing.T) {
	out := render(t, Home(frame("/")))
	assert.Equal(t, 1, strings.Count(out, `aria-current="page"`))
	idx := strings.Index(out, `aria-current="page"`)
	assert.True(t, strings.LastIndex(out[:idx], `href="/"`) > strings.LastIndex(out[:idx], `href="/about/"`))
}

func TestAboutCards(t *testing.T) {
	out := render(t, About(frame("/about/")))
	assert.Equal(t, 4, count(out, "stat"))
	assert.Equal(t, 4, count(out, "value"))
	assert.Equal(t, 3, count(out, "expertise"))
	assert.Contains(t, out, "Personalized Approach")
	assert.Contains(t, out, "<title>About | Bistro</title>")
}

func TestPricingMonthly(t *testing.T) {
	out := render(t, Pricing(frame("/pricing/")))
	assert.Equal(t, 3, count(out, "plan"))
	assert.Contains(t, out, "$299")
	assert.Contains(t, out, "$799")
	assert.Contains(t, out, "$1,499")
	assert.NotContains(t, out, "Billed annually")
	assert.NotContains(t, out, "Save 15%")
	assert.Contains(t, out, `<a href="/pricing/yearly/" role="switch"`)
	assert.Contains(t, out, `hx-get="/pricing/yearly/?partial=plans"`)
	assert.Contains(t, out, `aria-checked="false"`)
}

func TestPricingYearly(t *testing.T) {
	f := frame("/pricing/")
	f.Billing = content.Yearly
	out := render(t, Pricing(f))

	assert.Contains(t, out, "$249")
	assert.Contains(t, out, "$665")
	assert.Contains(t, out, "$1,249")
	assert.Contains(t, out, "Billed annually ($2,990/year)")
	assert.Contains(t, out, "Billed annually ($14,990/year)")
	assert.Equal(t, 1, strings.Count(out, "Save 15%"))
	assert.Contains(t, out, `aria-checked="true"`)
	// The toggle leads back to monthly.
	assert.Contains(t, out, `<a href="/pricing/" role="switch"`)
}

func TestPopularPlanIsElevatedWithPrimaryButton(t *testing.T) {
	s := content.MustDefault()
	for _, p := range s.Pricing.Plans {
		out := render(t, PlanCard(p, content.Monthly))
		if p.Popular {
			assert.Contains(t, out, "duration-500 elevated-glassmorphism hover:glow-orange")
			assert.NotContains(t, out, "hover:elevated-glassmorphism")
			assert.Contains(t, out, "gradient-bg text-white hover:shadow-lg")
		} else {
			assert.Contains(t, out, "premium-glassmorphism hover:elevated-glassmorphism")
			assert.Contains(t, out, "border-2 border-orange-500 text-orange-500")
		}
	}
}

func TestBillingHref(t *testing.T) {
	assert.Equal(t, "/pricing/yearly/", BillingHref(content.Monthly))
	assert.Equal(t, "/pricing/", BillingHref(content.Yearly))

	b := content.Monthly
	BillingToggle(&b).Activate()
	BillingToggle(&b).Activate()
	assert.Equal(t, content.Monthly, b)
}

func TestPricingPartial(t *testing.T) {
	f := frame("/pricing/")
	f.Billing = content.Yearly
	n, ok := PricingPartial(f, PartialPlans)
	require.True(t, ok)
	out := render(t, n)
	assert.NotContains(t, out, "<html")
	assert.Contains(t, out, `id="plans"`)
	assert.Contains(t, out, `id="billing-toggle"`)
	assert.Contains(t, out, "$249")

	_, ok = PricingPartial(f, "faq")
	assert.False(t, ok)
}

func TestFAQAnswersRenderMarkdown(t *testing.T) {
	out := render(t, Pricing(frame("/pricing/")))
	assert.Contains(t, out, "<strong>30-60 days</strong>")
	assert.Contains(t, out, "<em>Basic</em>")
}

func TestContactWidget(t *testing.T) {
	f := frame("/contact/")
	f.Config.ContactWidgetID = "d1f06e03"
	out := render(t, Contact(f, ContactForm{}))
	assert.Contains(t, out, WidgetScript)
	assert.Contains(t, out, `class="elfsight-app-d1f06e03"`)
	assert.Contains(t, out, "data-elfsight-app-lazy")
	assert.NotContains(t, out, `action="/contact/"`)
	assert.Equal(t, 4, count(out, "channel"))
	assert.Equal(t, 2, count(out, "benefit"))
}

func TestContactNativeForm(t *testing.T) {
	form := ContactForm{
		Name:   "Ana",
		Plan:   "Growth Plan",
		CSRF:   "tok123",
		Errors: map[string]string{"email": "Enter a valid email address"},
	}
	out := render(t, Contact(frame("/contact/"), form))
	assert.NotContains(t, out, WidgetScript)
	assert.Contains(t, out, `action="/contact/"`)
	assert.Contains(t, out, `name="_csrf" value="tok123"`)
	assert.Contains(t, out, `value="Ana"`)
	assert.Contains(t, out, `<option value="Growth Plan" selected>`)
	assert.Contains(t, out, `data-error="email"`)
	assert.Contains(t, out, "Enter a valid email address")
	assert.Contains(t, out, `aria-invalid="true"`)
}

func TestContactSent(t *testing.T) {
	out := render(t, Contact(frame("/contact/"), ContactForm{Sent: true}))
	assert.Contains(t, out, "Thanks! Your request is in.")
	assert.NotContains(t, out, `action="/contact/"`)
}

func TestMenuOpenRendersMobileList(t *testing.T) {
	f := frame("/about/")
	f.Menu = ui.MenuOpen
	out := render(t, About(f))
	assert.Contains(t, out, `id="mobile-menu"`)
	assert.Contains(t, out, `href="/about/"`)
}

func TestErrorPages(t *testing.T) {
	out := render(t, NotFound(frame("/nope")))
	assert.Contains(t, out, "404")
	assert.Contains(t, out, "Page not found")
	assert.Contains(t, out, `content="noindex"`)
	assert.NotContains(t, out, `aria-current="page"`)

	out = render(t, ServerError(frame("/")))
	assert.Contains(t, out, "500")
}

func TestAdminDashboard(t *testing.T) {
	d := Dashboard{
		Days:     30,
		Bots:     7,
		Visitors: 4,
		Open:     1,
		CSRF:     "tok",
		Views: []RouteViews{
			{Path: "/", Views: 12},
			{Path: "/pricing/", Views: 5},
		},
		Inquiries: []Inquiry{
			{ID: 2, Name: "Ana", Email: "ana@example.com", Message: "Help", CreatedAt: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)},
			{ID: 1, Name: "Bo", Email: "bo@example.com", Message: "Hi", Handled: true},
		},
	}
	out := render(t, AdminDashboard(frame("/admin/"), d))
	assert.Contains(t, out, "Page views, last 30 days")
	assert.Contains(t, out, "Unique visitors: 4 · Bot hits: 7")
	assert.Contains(t, out, "Inquiries (2, 1 open)")
	assert.Contains(t, out, `action="/admin/inquiries/2/handled/"`)
	assert.NotContains(t, out, `action="/admin/inquiries/1/handled/"`)
	assert.Contains(t, out, `action="/admin/inquiries/1/delete/"`)
	assert.Contains(t, out, "2026-03-01 09:00")
}

func TestAdminLogin(t *testing.T) {
	out := render(t, AdminLogin(frame("/admin/"), "tok", "Invalid password"))
	assert.Contains(t, out, `action="/admin/login/"`)
	assert.Contains(t, out, "Invalid password")
	assert.Contains(t, out, "noindex, nofollow")
}

func TestOrganizationJsonLD(t *testing.T) {
	out := OrganizationJsonLD(SiteConfig{Name: "Bistro", URL: "https://bistro.example"}, content.MustDefault())
	assert.Contains(t, out, `"@type":"ProfessionalService"`)
	assert.Contains(t, out, `"url":"https://bistro.example/"`)
	assert.Contains(t, out, `"email":"hello@bistroconsulting.com"`)
}
