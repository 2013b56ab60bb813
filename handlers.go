package bistro

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/a-h/templ"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/bistroconsulting/bistro/content"
	"github.com/bistroconsulting/bistro/pages"
	"github.com/bistroconsulting/bistro/ui"
)

func (a *App) handleHome(c echo.Context) error {
	f, gen := a.cachedFrame(c)
	return a.renderCached(c, gen, cacheKey(f.Path, menuState(f)), func() templ.Component {
		return a.Views.Home(f)
	})
}

func (a *App) handleAbout(c echo.Context) error {
	f, gen := a.cachedFrame(c)
	return a.renderCached(c, gen, cacheKey(f.Path, menuState(f)), func() templ.Component {
		return a.Views.About(f)
	})
}

func (a *App) handlePricing(c echo.Context) error {
	return a.renderPricing(c, content.ParseBilling(c.QueryParam("billing")))
}

// handlePricingYearly serves the yearly state at its own path so a static
// export can carry it.
func (a *App) handlePricingYearly(c echo.Context) error {
	return a.renderPricing(c, content.Yearly)
}

func (a *App) renderPricing(c echo.Context, b content.Billing) error {
	f, gen := a.cachedFrame(c)
	f.Path = "/pricing/"
	f.Billing = b
	if b == content.Yearly {
		f.Self = pages.YearlyPath
	}
	// The same URL serves a fragment to htmx and the full page otherwise.
	c.Response().Header().Add(echo.HeaderVary, "HX-Request")

	if c.Request().Header.Get("HX-Request") == "true" {
		if partial := c.QueryParam("partial"); partial != "" {
			if cmp, ok := a.Views.PricingPartial(f, partial); ok {
				return Render(c, cmp)
			}
		}
	}

	key := cacheKey(f.Path, menuState(f))
	if b == content.Yearly {
		key = cacheKey(f.Self, menuState(f))
	}
	return a.renderCached(c, gen, key, func() templ.Component {
		return a.Views.Pricing(f)
	})
}

func (a *App) handleContact(c echo.Context) error {
	f, gen := a.cachedFrame(c)
	if a.Config.ContactWidgetID != "" {
		return a.renderCached(c, gen, cacheKey(f.Path, menuState(f)), func() templ.Component {
			return a.Views.Contact(f, pages.ContactForm{})
		})
	}
	form := pages.ContactForm{
		Plan: knownPlan(f.Site, c.QueryParam("plan")),
		CSRF: CsrfToken(c),
		Sent: c.QueryParam("sent") == "1",
	}
	return Render(c, a.Views.Contact(f, form))
}

func (a *App) handleContactSubmit(c echo.Context) error {
	if a.Config.ContactWidgetID != "" {
		return echo.ErrMethodNotAllowed
	}
	if !a.contactLimiter.Allow(c.RealIP()) {
		return c.String(http.StatusTooManyRequests, "Too many requests. Try again in a minute.")
	}

	in := Inquiry{
		Name:       strings.TrimSpace(c.FormValue("name")),
		Email:      strings.TrimSpace(c.FormValue("email")),
		Restaurant: strings.TrimSpace(c.FormValue("restaurant")),
		Plan:       strings.TrimSpace(c.FormValue("plan")),
		Message:    strings.TrimSpace(c.FormValue("message")),
	}
	f := a.frame(c)
	if errs := validateInquiry(in, f.Site); len(errs) > 0 {
		form := pages.ContactForm{
			Name:       in.Name,
			Email:      in.Email,
			Restaurant: in.Restaurant,
			Plan:       in.Plan,
			Message:    in.Message,
			Errors:     errs,
			CSRF:       CsrfToken(c),
		}
		return RenderStatus(c, http.StatusUnprocessableEntity, a.Views.Contact(f, form))
	}

	if err := a.Store.SaveInquiry(&in); err != nil {
		return err
	}
	a.Log.Info().Int64("id", in.ID).Str("plan", in.Plan).Msg("inquiry received")
	return c.Redirect(http.StatusSeeOther, "/contact/?sent=1")
}

// validateInquiry returns a message per invalid form field.
func validateInquiry(in Inquiry, site *content.Site) map[string]string {
	errs := map[string]string{}
	err := validatorInstance().Struct(in)
	var ves validator.ValidationErrors
	if errors.As(err, &ves) {
		for _, fe := range ves {
			name := strings.ToLower(fe.StructField())
			if _, seen := errs[name]; seen {
				continue
			}
			errs[name] = fieldMessage(name, fe)
		}
	}
	if in.Plan != "" && knownPlan(site, in.Plan) == "" {
		errs["plan"] = "Choose one of the listed plans"
	}
	return errs
}

func fieldMessage(field string, fe validator.FieldError) string {
	switch {
	case fe.Tag() == "required" && field == "name":
		return "Tell us your name"
	case fe.Tag() == "required" && field == "email":
		return "Enter your email address"
	case fe.Tag() == "required" && field == "message":
		return "Tell us a little about your restaurant"
	case fe.Tag() == "email":
		return "Enter a valid email address"
	case fe.Tag() == "max":
		return "Keep this under " + fe.Param() + " characters"
	}
	return "This field is invalid"
}

// knownPlan returns name if it is one of the site's plans, else "".
func knownPlan(site *content.Site, name string) string {
	if site == nil || name == "" {
		return ""
	}
	for _, p := range site.Pricing.Plans {
		if p.Name == name {
			return name
		}
	}
	return ""
}

func menuState(f pages.Frame) url.Values {
	v := url.Values{}
	if f.Menu == ui.MenuOpen {
		v.Set("menu", f.Menu.String())
	}
	return v
}

func handleFavicon(c echo.Context) error {
	return c.Redirect(http.StatusMovedPermanently, "/public/favicon.svg")
}

func (a *App) handleRobots(c echo.Context) error {
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	if a.Config.AdminEnabled() {
		b.WriteString("Disallow: /admin/\n")
	}
	b.WriteString("\nSitemap: " + strings.TrimRight(a.Config.URL, "/") + "/sitemap.xml\n")
	return c.String(http.StatusOK, b.String())
}

func (a *App) handleHealth(c echo.Context) error {
	if err := a.Store.Ping(); err != nil {
		a.Log.Error().Err(err).Msg("health check")
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	f := a.frame(c)
	var he *echo.HTTPError
	ok := errors.As(err, &he)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, a.Views.NotFound(f))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		a.Log.Error().Err(err).Str("uri", c.Request().RequestURI).Msg("server error")
		if rerr := RenderStatus(c, code, a.Views.ServerError(f)); rerr != nil {
			_ = c.String(code, http.StatusText(code))
		}
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
