package bistro

import (
	"crypto/subtle"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bistroconsulting/bistro/pages"
)

// dashboardDays is the page-view window shown on the dashboard.
const dashboardDays = 30

func (a *App) handleAdmin(c echo.Context) error {
	if !IsAdmin(c) {
		return Render(c, a.Views.AdminLogin(a.frame(c), CsrfToken(c), ""))
	}
	return a.renderAdminDashboard(c)
}

// handleAdminLogin counts only failed attempts against the limiter, so a
// correct password is never locked out by earlier successes.
func (a *App) handleAdminLogin(c echo.Context) error {
	ip := c.RealIP()
	if !a.loginLimiter.Check(ip) {
		return c.String(http.StatusTooManyRequests, "Too many login attempts. Try again later.")
	}
	pass := c.FormValue("password")
	if subtle.ConstantTimeCompare([]byte(pass), []byte(a.Config.AdminPassword)) == 1 {
		if err := setAdminSession(c); err != nil {
			return err
		}
		a.loginLimiter.Reset(ip)
		a.Log.Info().Str("ip", ip).Msg("admin login")
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	a.loginLimiter.Record(ip)
	a.Log.Warn().Str("ip", ip).Msg("admin login failed")
	return RenderStatus(c, http.StatusUnauthorized, a.Views.AdminLogin(a.frame(c), CsrfToken(c), "Invalid password"))
}

func handleAdminLogout(c echo.Context) error {
	if err := clearAdminSession(c); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/")
}

func (a *App) handleInquiryHandled(c echo.Context) error {
	return a.updateInquiry(c, "inquiry handled", a.Store.MarkHandled)
}

func (a *App) handleInquiryDelete(c echo.Context) error {
	return a.updateInquiry(c, "inquiry deleted", a.Store.DeleteInquiry)
}

func (a *App) updateInquiry(c echo.Context, msg string, op func(int64) error) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.ErrNotFound
	}
	in, err := a.Store.GetInquiry(id)
	if err != nil {
		if IsNotFound(err) {
			return echo.ErrNotFound
		}
		return err
	}
	if err := op(id); err != nil {
		if IsNotFound(err) {
			return echo.ErrNotFound
		}
		return err
	}
	a.Log.Info().Int64("id", in.ID).Str("email", in.Email).Str("plan", in.Plan).Msg(msg)
	return c.Redirect(http.StatusSeeOther, "/admin/")
}

func (a *App) renderAdminDashboard(c echo.Context) error {
	inquiries, err := a.Store.ListInquiries()
	if err != nil {
		return err
	}
	open, err := a.Store.CountOpen()
	if err != nil {
		return err
	}
	d := pages.Dashboard{
		Inquiries: inquiryViews(inquiries),
		Open:      open,
		Days:      dashboardDays,
		CSRF:      CsrfToken(c),
	}
	if a.Analytics != nil {
		since := time.Now().AddDate(0, 0, -dashboardDays)
		counts, err := a.Analytics.ViewsByPath(since)
		if err != nil {
			return err
		}
		for _, pc := range counts {
			d.Views = append(d.Views, pages.RouteViews{Path: pc.Path, Views: pc.Views})
		}
		if d.Visitors, err = a.Analytics.UniqueVisitors(since); err != nil {
			return err
		}
		if d.Bots, err = a.Analytics.BotCount(since); err != nil {
			return err
		}
	}
	return Render(c, a.Views.AdminDashboard(a.frame(c), d))
}
