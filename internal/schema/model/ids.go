package model

import "strings"

// GraphIDs is the fixed set of canonical node identifiers derived from the
// normalized site URL. Site-wide nodes reference each other through these.
type GraphIDs struct {
	Organization       string
	Logo               string
	Website            string
	LocalBusiness      string
	LocalBusinessImage string
}

// BuildGraphIDs derives the canonical @id set. siteURL must already be
// normalized (trailing-slash-terminated); callers normalize once via
// NormalizeSiteURL.
func BuildGraphIDs(siteURL string) GraphIDs {
	return GraphIDs{
		Organization:       siteURL + "#org",
		Logo:               siteURL + "#logo",
		Website:            siteURL + "#website",
		LocalBusiness:      siteURL + "#lb-main",
		LocalBusinessImage: siteURL + "#lb-image",
	}
}

// NormalizeSiteURL trims the configured site URL, falls back to the home URL
// when blank, and guarantees exactly one trailing slash.
func NormalizeSiteURL(raw, homeURL string) string {
	u := strings.TrimSpace(raw)
	if u == "" {
		u = strings.TrimSpace(homeURL)
	}
	return strings.TrimRight(u, "/") + "/"
}

// WebPageID returns the page-scoped @id for the WebPage node.
func WebPageID(pageURL string) string {
	return pageURL + "#webpage"
}

// BreadcrumbID returns the page-scoped @id for the BreadcrumbList node.
func BreadcrumbID(pageURL string) string {
	return pageURL + "#breadcrumb"
}
