package pages

import (
	"encoding/json"
	"net/url"
	"path"
	"strings"

	"github.com/bistroconsulting/bistro/content"
)

// buildURL joins path segments onto a base URL, ensuring a trailing slash.
func buildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// OrganizationJsonLD produces a Schema.org ProfessionalService block for
// the business behind the site.
func OrganizationJsonLD(cfg SiteConfig, site *content.Site) string {
	data := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "ProfessionalService",
		"name":     cfg.Name,
		"url":      buildURL(cfg.URL),
	}
	if cfg.Description != "" {
		data["description"] = cfg.Description
	}
	if site != nil {
		if site.Contact.Email != "" {
			data["email"] = site.Contact.Email
		}
		if site.Contact.Phone != "" {
			data["telephone"] = site.Contact.Phone
		}
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// OffersJsonLD lists the pricing plans as Schema.org offers.
func OffersJsonLD(cfg SiteConfig, plans []content.Plan) string {
	offers := make([]map[string]interface{}, 0, len(plans))
	for _, p := range plans {
		offers = append(offers, map[string]interface{}{
			"@type":         "Offer",
			"name":          p.Name,
			"description":   p.Subtitle,
			"price":         p.MonthlyPrice,
			"priceCurrency": "USD",
		})
	}
	b, err := json.Marshal(map[string]interface{}{
		"@context":        "https://schema.org",
		"@type":           "OfferCatalog",
		"name":            cfg.Name + " plans",
		"url":             buildURL(cfg.URL, "pricing"),
		"itemListElement": offers,
	})
	if err != nil {
		return "{}"
	}
	return string(b)
}

// planOptions is the plan select's choices.
func planOptions(site *content.Site) []string {
	if site == nil {
		return nil
	}
	out := make([]string, 0, len(site.Pricing.Plans))
	for _, p := range site.Pricing.Plans {
		out = append(out, p.Name)
	}
	return out
}
