package layouts

import "strings"

// SiteName is appended to every page title.
const SiteName = "CJR Solutions"

// DefaultDescription is used by pages that do not set their own.
const DefaultDescription = "CJR Solutions Enterprise S.A.C.: soluciones integrales de telecomunicaciones en el Perú. Mantenimiento de sites, energía, RF y microondas, fibra óptica y más."

// Meta describes a page for search engines and social previews.
type Meta struct {
	Title       string
	Description string
	// Path is the request path of the page, e.g. "/servicios".
	Path    string
	BaseURL string
	Image   string
}

// CalculateTitle handles the conditional logic for the page title.
func CalculateTitle(title string) string {
	if title != "" {
		return title + " - " + SiteName
	}
	return SiteName
}

// FullTitle is the document title.
func (m Meta) FullTitle() string {
	return CalculateTitle(m.Title)
}

// Summary is the description, or the site default.
func (m Meta) Summary() string {
	if m.Description != "" {
		return m.Description
	}
	return DefaultDescription
}

// Canonical is the absolute URL of the page.
func (m Meta) Canonical() string {
	path := m.Path
	if path == "" {
		path = "/"
	}
	return strings.TrimRight(m.BaseURL, "/") + path
}
