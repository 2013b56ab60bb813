package bistro

import (
	"encoding/xml"
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// sitemapPriority ranks the home page above the rest.
var sitemapPriority = map[string]string{
	"/":         "1.0",
	"/pricing/": "0.9",
	"/contact/": "0.8",
	"/about/":   "0.7",
}

// buildSitemap lists the public routes as absolute URLs.
func buildSitemap(base string) sitemapURLSet {
	urls := make([]sitemapURL, 0, len(Routes))
	for _, r := range Routes {
		urls = append(urls, sitemapURL{
			Loc:        absoluteURL(base, r),
			ChangeFreq: "monthly",
			Priority:   sitemapPriority[r],
		})
	}
	return sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
}

func (a *App) handleSitemap(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(buildSitemap(a.Config.URL))
}

// absoluteURL resolves a site route against the configured base URL.
func absoluteURL(base, route string) string {
	u, err := url.Parse(base)
	if err != nil {
		return strings.TrimRight(base, "/") + route
	}
	u.Path = strings.TrimRight(u.Path, "/") + route
	return u.String()
}
