package pages

import (
	"time"

	"github.com/bistroconsulting/bistro/content"
	"github.com/bistroconsulting/bistro/ui"
)

// SiteConfig holds the site-wide settings every page needs.
type SiteConfig struct {
	Name        string
	URL         string
	Description string
	// ContactWidgetID selects the third-party form widget on the contact
	// page. Empty means the native form.
	ContactWidgetID string
}

// PageMeta carries per-page OpenGraph and SEO metadata into the head.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string
}

// Frame is the request-scoped chrome: which page, and the UI state the
// query string carried.
type Frame struct {
	Site   *content.Site
	Config SiteConfig
	Path   string
	// Self is the page's own URL when it differs from the nav entry at
	// Path, as for the yearly pricing page.
	Self    string
	Menu    ui.MenuState
	Billing content.Billing
}

// ContactForm is the native contact form's state.
type ContactForm struct {
	Name       string
	Email      string
	Restaurant string
	Plan       string
	Message    string
	// Errors maps a field name to its message.
	Errors map[string]string
	CSRF   string
	Sent   bool
}

// Inquiry is a stored consultation request as the admin sees it.
type Inquiry struct {
	ID         int64
	Name       string
	Email      string
	Restaurant string
	Plan       string
	Message    string
	CreatedAt  time.Time
	Handled    bool
}

// RouteViews is a per-route page view count.
type RouteViews struct {
	Path  string
	Views int
}

// Dashboard is the admin overview.
type Dashboard struct {
	Inquiries []Inquiry
	// Open counts inquiries not yet marked handled.
	Open     int
	Views    []RouteViews
	Visitors int
	Bots     int
	Days     int
	CSRF     string
}
