// Package icons is the fixed set of stroke icons the site can reference by
// name. Names follow the lucide naming scheme.
package icons

import (
	"fmt"
	"html"
	"sort"
)

const (
	ArrowRight    = "arrow-right"
	Award         = "award"
	BarChart      = "bar-chart-3"
	Calendar      = "calendar"
	Check         = "check"
	Clock         = "clock"
	Coffee        = "coffee"
	Lightbulb     = "lightbulb"
	Mail          = "mail"
	MapPin        = "map-pin"
	Menu          = "menu"
	MessageCircle = "message-circle"
	Phone         = "phone"
	Smartphone    = "smartphone"
	Star          = "star"
	Target        = "target"
	TrendingUp    = "trending-up"
	Users         = "users"
	Utensils      = "utensils"
	X             = "x"
)

var paths = map[string]string{
	ArrowRight:    `<path d="M5 12h14"/><path d="m12 5 7 7-7 7"/>`,
	Award:         `<circle cx="12" cy="8" r="6"/><path d="M15.477 12.89 17 22l-5-3-5 3 1.523-9.11"/>`,
	BarChart:      `<path d="M3 3v18h18"/><path d="M18 17V9"/><path d="M13 17V5"/><path d="M8 17v-3"/>`,
	Calendar:      `<rect width="18" height="18" x="3" y="4" rx="2" ry="2"/><line x1="16" x2="16" y1="2" y2="6"/><line x1="8" x2="8" y1="2" y2="6"/><line x1="3" x2="21" y1="10" y2="10"/>`,
	Check:         `<path d="M20 6 9 17l-5-5"/>`,
	Clock:         `<circle cx="12" cy="12" r="10"/><polyline points="12 6 12 12 16 14"/>`,
	Coffee:        `<path d="M17 8h1a4 4 0 1 1 0 8h-1"/><path d="M3 8h14v9a4 4 0 0 1-4 4H7a4 4 0 0 1-4-4Z"/><line x1="6" x2="6" y1="2" y2="4"/><line x1="10" x2="10" y1="2" y2="4"/><line x1="14" x2="14" y1="2" y2="4"/>`,
	Lightbulb:     `<path d="M15 14c.2-1 .7-1.7 1.5-2.5 1-.9 1.5-2.2 1.5-3.5A6 6 0 0 0 6 8c0 1 .2 2.2 1.5 3.5.7.7 1.3 1.5 1.5 2.5"/><path d="M9 18h6"/><path d="M10 22h4"/>`,
	Mail:          `<rect width="20" height="16" x="2" y="4" rx="2"/><path d="m22 7-8.97 5.7a1.94 1.94 0 0 1-2.06 0L2 7"/>`,
	MapPin:        `<path d="M20 10c0 6-8 12-8 12s-8-6-8-12a8 8 0 0 1 16 0Z"/><circle cx="12" cy="10" r="3"/>`,
	Menu:          `<line x1="4" x2="20" y1="12" y2="12"/><line x1="4" x2="20" y1="6" y2="6"/><line x1="4" x2="20" y1="18" y2="18"/>`,
	MessageCircle: `<path d="M7.9 20A9 9 0 1 0 4 16.1L2 22Z"/>`,
	Phone:         `<path d="M22 16.92v3a2 2 0 0 1-2.18 2 19.79 19.79 0 0 1-8.63-3.07 19.5 19.5 0 0 1-6-6 19.79 19.79 0 0 1-3.07-8.67A2 2 0 0 1 4.11 2h3a2 2 0 0 1 2 1.72 12.84 12.84 0 0 0 .7 2.81 2 2 0 0 1-.45 2.11L8.09 9.91a16 16 0 0 0 6 6l1.27-1.27a2 2 0 0 1 2.11-.45 12.84 12.84 0 0 0 2.81.7A2 2 0 0 1 22 16.92z"/>`,
	Smartphone:    `<rect width="14" height="20" x="5" y="2" rx="2" ry="2"/><path d="M12 18h.01"/>`,
	Star:          `<polygon points="12 2 15.09 8.26 22 9.27 17 14.14 18.18 21.02 12 17.77 5.82 21.02 7 14.14 2 9.27 8.91 8.26 12 2"/>`,
	Target:        `<circle cx="12" cy="12" r="10"/><circle cx="12" cy="12" r="6"/><circle cx="12" cy="12" r="2"/>`,
	TrendingUp:    `<polyline points="22 7 13.5 15.5 8.5 10.5 2 17"/><polyline points="16 7 22 7 22 13"/>`,
	Users:         `<path d="M16 21v-2a4 4 0 0 0-4-4H6a4 4 0 0 0-4 4v2"/><circle cx="9" cy="7" r="4"/><path d="M22 21v-2a4 4 0 0 0-3-3.87"/><path d="M16 3.13a4 4 0 0 1 0 7.75"/>`,
	Utensils:      `<path d="M3 2v7c0 1.1.9 2 2 2h4a2 2 0 0 0 2-2V2"/><path d="M7 2v20"/><path d="M21 15V2a5 5 0 0 0-5 5v6c0 1.1.9 2 2 2h3Zm0 0v7"/>`,
	X:             `<path d="M18 6 6 18"/><path d="m6 6 12 12"/>`,
}

// Has reports whether name is a known icon.
func Has(name string) bool {
	_, ok := paths[name]
	return ok
}

// Names returns every known icon name, sorted.
func Names() []string {
	out := make([]string, 0, len(paths))
	for n := range paths {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// SVG returns the inline SVG markup for name with the given class. Unknown
// names render as an empty string.
func SVG(name, class string) string {
	p, ok := paths[name]
	if !ok {
		return ""
	}
	return fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" class="%s" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round" aria-hidden="true" data-icon="%s">%s</svg>`, html.EscapeString(class), name, p)
}
