// Package analytics records privacy-first page views on the server side.
// IP addresses are never stored: visitors are identified by a salted hash
// that cannot be reversed without the per-installation salt.
package analytics

import (
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"strings"
	"time"
)

// View is a single human page view.
type View struct {
	ID        int64
	VisitorID string // salted hash of IP and User-Agent
	Path      string
	Browser   string
	OS        string
	Device    string // Desktop, Mobile, Tablet
	Referrer  string // domain or "Direct"
	Timestamp time.Time
}

// BotHit is a page fetched by a crawler.
type BotHit struct {
	ID        int64
	BotName   string
	IPHash    string
	Path      string
	Timestamp time.Time
}

// PathCount is the number of views one path received.
type PathCount struct {
	Path  string
	Views int
}

// HashIP creates a salted SHA-256 hash of an IP address.
func HashIP(salt, ip string) string {
	h := sha256.New()
	h.Write([]byte(salt + ip))
	return hex.EncodeToString(h.Sum(nil))[:16]
}

// VisitorID creates a salted visitor id from IP and User-Agent.
func VisitorID(salt, ip, userAgent string) string {
	h := sha256.New()
	h.Write([]byte(salt + ip + "|" + userAgent))
	return hex.EncodeToString(h.Sum(nil))[:16]
}

// ParseUserAgent extracts browser, OS, and device from a User-Agent string.
func ParseUserAgent(ua string) (browser, os, device string) {
	ua = strings.ToLower(ua)

	// More specific browsers first: Edge and Opera UAs also say "chrome".
	switch {
	case strings.Contains(ua, "firefox"):
		browser = "Firefox"
	case strings.Contains(ua, "opera") || strings.Contains(ua, "opr/"):
		browser = "Opera"
	case strings.Contains(ua, "edg"):
		browser = "Edge"
	case strings.Contains(ua, "chrome"):
		browser = "Chrome"
	case strings.Contains(ua, "safari"):
		browser = "Safari"
	default:
		browser = "Other"
	}

	// Android UAs contain "linux".
	switch {
	case strings.Contains(ua, "windows"):
		os = "Windows"
	case strings.Contains(ua, "android"):
		os = "Android"
	case strings.Contains(ua, "iphone") || strings.Contains(ua, "ipad"):
		os = "iOS"
	case strings.Contains(ua, "macintosh") || strings.Contains(ua, "mac os"):
		os = "macOS"
	case strings.Contains(ua, "linux"):
		os = "Linux"
	default:
		os = "Other"
	}

	// iPad UAs contain "mobile".
	switch {
	case strings.Contains(ua, "tablet") || strings.Contains(ua, "ipad"):
		device = "Tablet"
	case strings.Contains(ua, "mobile"):
		device = "Mobile"
	default:
		device = "Desktop"
	}

	return
}

var botMarkers = []string{
	"bot", "crawler", "spider", "crawl", "slurp", "scrape",
	"yandex", "baidu", "facebookexternalhit",
	"headlesschrome", "curl/", "wget/", "python-requests",
}

// IsBot reports whether the User-Agent is likely a crawler or script. An
// empty User-Agent counts as a bot.
func IsBot(ua string) bool {
	if strings.TrimSpace(ua) == "" {
		return true
	}
	ua = strings.ToLower(ua)
	for _, m := range botMarkers {
		if strings.Contains(ua, m) {
			return true
		}
	}
	return false
}

// botNames is checked in order; the generic markers come last.
var botNames = []struct{ pattern, name string }{
	{"googlebot", "Googlebot"},
	{"bingbot", "Bingbot"},
	{"yandex", "Yandex"},
	{"baidu", "Baidu"},
	{"duckduckbot", "DuckDuckBot"},
	{"applebot", "Applebot"},
	{"facebookexternalhit", "Facebook"},
	{"twitterbot", "Twitterbot"},
	{"linkedinbot", "LinkedIn"},
	{"ahrefsbot", "Ahrefs"},
	{"semrushbot", "SEMrush"},
	{"mj12bot", "Majestic"},
	{"dotbot", "Moz"},
	{"gptbot", "GPTBot"},
	{"slurp", "Yahoo Slurp"},
	{"headlesschrome", "Headless Chrome"},
	{"curl/", "curl"},
	{"wget/", "Wget"},
	{"python-requests", "Python"},
	{"crawler", "Generic Crawler"},
	{"spider", "Generic Spider"},
}

// ExtractBotName names the crawler behind a User-Agent.
func ExtractBotName(ua string) string {
	if strings.TrimSpace(ua) == "" {
		return "Empty User-Agent"
	}
	ua = strings.ToLower(ua)
	for _, b := range botNames {
		if strings.Contains(ua, b.pattern) {
			return b.name
		}
	}
	if strings.Contains(ua, "bot") {
		return "Other Bot"
	}
	return "Unknown"
}

var searchEngines = []struct{ marker, name string }{
	{"google.", "Google"},
	{"bing.", "Bing"},
	{"duckduckgo.", "DuckDuckGo"},
	{"yahoo.", "Yahoo"},
	{"ecosia.", "Ecosia"},
}

// CleanReferrer reduces a Referer header to a domain. Search engines are
// named, an empty value is "Direct" and a referrer from ownHost is
// "Internal".
func CleanReferrer(ref, ownHost string) string {
	if ref == "" {
		return "Direct"
	}
	u, err := url.Parse(ref)
	if err != nil || u.Host == "" {
		return "Other"
	}
	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	if ownHost != "" && host == strings.TrimPrefix(strings.ToLower(ownHost), "www.") {
		return "Internal"
	}
	for _, se := range searchEngines {
		if strings.Contains(host, se.marker) {
			return se.name
		}
	}
	return host
}
