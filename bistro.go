// Package bistro serves the Bistro consulting website: four server-rendered
// marketing pages, a contact form backed by SQLite, a small admin area and
// privacy-first page-view analytics.
//
// Pages are built by the pages package and handed to the App through the
// Views struct, so a site can replace any page while bistro keeps the
// handlers, middleware, caching and storage.
package bistro

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/bistroconsulting/bistro/analytics"
	"github.com/bistroconsulting/bistro/content"
	"github.com/bistroconsulting/bistro/pages"
	"github.com/bistroconsulting/bistro/ratelimit"
	"github.com/bistroconsulting/bistro/ui"
)

// Views holds the components the App renders. Nil fields fall back to the
// pages package.
type Views struct {
	Home           func(f pages.Frame) templ.Component
	About          func(f pages.Frame) templ.Component
	Pricing        func(f pages.Frame) templ.Component
	PricingPartial func(f pages.Frame, name string) (templ.Component, bool)
	Contact        func(f pages.Frame, form pages.ContactForm) templ.Component
	NotFound       func(f pages.Frame) templ.Component
	ServerError    func(f pages.Frame) templ.Component
	AdminLogin     func(f pages.Frame, csrf, errMsg string) templ.Component
	AdminDashboard func(f pages.Frame, d pages.Dashboard) templ.Component
}

// DefaultViews renders every page with the pages package.
func DefaultViews() Views {
	return Views{
		Home:    func(f pages.Frame) templ.Component { return ui.Component(pages.Home(f)) },
		About:   func(f pages.Frame) templ.Component { return ui.Component(pages.About(f)) },
		Pricing: func(f pages.Frame) templ.Component { return ui.Component(pages.Pricing(f)) },
		PricingPartial: func(f pages.Frame, name string) (templ.Component, bool) {
			n, ok := pages.PricingPartial(f, name)
			if !ok {
				return nil, false
			}
			return ui.Component(n), true
		},
		Contact: func(f pages.Frame, form pages.ContactForm) templ.Component {
			return ui.Component(pages.Contact(f, form))
		},
		NotFound:    func(f pages.Frame) templ.Component { return ui.Component(pages.NotFound(f)) },
		ServerError: func(f pages.Frame) templ.Component { return ui.Component(pages.ServerError(f)) },
		AdminLogin: func(f pages.Frame, csrf, errMsg string) templ.Component {
			return ui.Component(pages.AdminLogin(f, csrf, errMsg))
		},
		AdminDashboard: func(f pages.Frame, d pages.Dashboard) templ.Component {
			return ui.Component(pages.AdminDashboard(f, d))
		},
	}
}

func (v *Views) fill() {
	d := DefaultViews()
	if v.Home == nil {
		v.Home = d.Home
	}
	if v.About == nil {
		v.About = d.About
	}
	if v.Pricing == nil {
		v.Pricing = d.Pricing
	}
	if v.PricingPartial == nil {
		v.PricingPartial = d.PricingPartial
	}
	if v.Contact == nil {
		v.Contact = d.Contact
	}
	if v.NotFound == nil {
		v.NotFound = d.NotFound
	}
	if v.ServerError == nil {
		v.ServerError = d.ServerError
	}
	if v.AdminLogin == nil {
		v.AdminLogin = d.AdminLogin
	}
	if v.AdminDashboard == nil {
		v.AdminDashboard = d.AdminDashboard
	}
}

// Routes are the public pages, in navigation order.
var Routes = []string{"/", "/about/", "/pricing/", "/contact/"}

// App is the central bistro application. It wires together the store,
// cache, handlers, middleware, and views.
type App struct {
	Config    SiteConfig
	Echo      *echo.Echo
	Store     *Store
	Cache     *PageCache
	Views     Views
	Analytics *analytics.Store
	Log       zerolog.Logger

	site           atomic.Pointer[content.Site]
	loginLimiter   *ratelimit.Limiter
	contactLimiter *ratelimit.Limiter
	recorder       *analytics.Recorder
	stopCleanup    func()
	customRoutes   []func(*App)
	customLogger   bool
	logOutput      io.Writer
	initialized    bool
}

// New creates a bistro App with the given configuration and views.
func New(cfg SiteConfig, views Views, opts ...Option) *App {
	cfg.setDefaults()
	views.fill()

	a := &App{
		Config: cfg,
		Echo:   echo.New(),
		Views:  views,
		Log:    zerolog.Nop(),
	}
	a.Echo.HideBanner = true
	a.Echo.HidePort = true

	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Init validates the configuration, loads content, opens the store and
// registers middleware and routes. Start calls it; tests and the exporter
// call it directly and drive a.Echo with httptest.
func (a *App) Init() error {
	if a.initialized {
		return nil
	}
	if err := ui.ValidateStyles(); err != nil {
		return fmt.Errorf("bistro: %w", err)
	}
	if err := a.Config.Validate(); err != nil {
		return err
	}

	if !a.customLogger {
		l, err := NewLogger(a.Config.LogLevel, a.logOutput)
		if err != nil {
			return fmt.Errorf("bistro: logger: %w", err)
		}
		a.Log = l
	}

	if a.site.Load() == nil {
		s, err := a.loadContent()
		if err != nil {
			return err
		}
		a.site.Store(s)
	}

	store, err := NewStore(a.Config.DatabasePath)
	if err != nil {
		return fmt.Errorf("bistro: init store: %w", err)
	}
	a.Store = store

	a.Cache = NewPageCache(a.Config.PageCacheTTL)
	a.loginLimiter = ratelimit.New(5, time.Minute)
	a.contactLimiter = ratelimit.New(5, time.Minute)

	if a.Config.AnalyticsEnabled {
		as, err := analytics.NewStore(store.DB())
		if err != nil {
			return fmt.Errorf("bistro: init analytics: %w", err)
		}
		a.Analytics = as
		a.recorder = analytics.NewRecorder(as, Routes, hostOf(a.Config.URL), a.Log)
		a.stopCleanup = as.StartCleanupScheduler(365*24*time.Hour, 24*time.Hour, a.Log)
	}

	a.setupMiddleware()
	a.setupRoutes()
	for _, fn := range a.customRoutes {
		fn(a)
	}
	a.initialized = true
	return nil
}

func (a *App) loadContent() (*content.Site, error) {
	if a.Config.ContentFile != "" {
		s, err := content.LoadFile(a.Config.ContentFile)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
	return content.Default()
}

// Site returns the content currently served.
func (a *App) Site() *content.Site {
	return a.site.Load()
}

// SetSite swaps the served content and drops every cached page.
func (a *App) SetSite(s *content.Site) {
	a.site.Store(s)
	if a.Cache != nil {
		a.Cache.Invalidate()
	}
}

// Start initializes the app and serves until ctx is cancelled, then shuts
// the server down gracefully.
func (a *App) Start(ctx context.Context) error {
	if err := a.Init(); err != nil {
		return err
	}

	errc := make(chan error, 1)
	go func() {
		a.Log.Info().Str("addr", a.Config.Addr).Str("url", a.Config.URL).Msg("listening")
		errc <- a.Echo.Start(a.Config.Addr)
	}()

	select {
	case err := <-errc:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	a.Log.Info().Msg("shutting down")
	if err := a.Echo.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("bistro: shutdown: %w", err)
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	// Embedded assets are served under /public/ and take precedence over
	// the user's static dir.
	embeddedFS, _ := fs.Sub(EmbeddedAssets, "embedded")
	embeddedHandler := echo.WrapHandler(http.StripPrefix("/public/", http.FileServer(http.FS(embeddedFS))))
	for _, name := range AssetNames() {
		e.GET("/public/"+name, embeddedHandler)
	}
	e.Static("/public", a.Config.StaticDir)
	e.GET("/favicon.svg", handleFavicon)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/healthz", a.handleHealth)

	e.GET("/", a.handleHome)
	e.GET("/about/", a.handleAbout)
	e.GET("/pricing/", a.handlePricing)
	e.GET("/pricing/yearly/", a.handlePricingYearly)
	e.GET("/contact/", a.handleContact)
	e.POST("/contact/", a.handleContactSubmit)

	if a.Config.AdminEnabled() {
		e.GET("/admin/", a.handleAdmin)
		e.POST("/admin/login/", a.handleAdminLogin)
		e.POST("/admin/logout/", handleAdminLogout)
		admin := e.Group("/admin/inquiries", a.requireAdmin)
		admin.POST("/:id/handled/", a.handleInquiryHandled)
		admin.POST("/:id/delete/", a.handleInquiryDelete)
	}
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.stopCleanup != nil {
		a.stopCleanup()
		a.stopCleanup = nil
	}
	if a.recorder != nil {
		a.recorder.Close()
	}
	if a.loginLimiter != nil {
		a.loginLimiter.Stop()
	}
	if a.contactLimiter != nil {
		a.contactLimiter.Stop()
	}
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}

func hostOf(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return u.Hostname()
}
