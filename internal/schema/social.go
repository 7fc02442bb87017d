package schema

import (
	"fmt"
	"strings"

	"github.com/aeokit/aeograph/internal/config"
)

// handleNetworks format a bare account handle into a profile URL.
var handleNetworks = map[string]string{
	"facebook":  "https://www.facebook.com/%s",
	"x":         "https://x.com/%s",
	"twitter":   "https://x.com/%s",
	"instagram": "https://www.instagram.com/%s/",
	"threads":   "https://www.threads.net/@%s",
	"tiktok":    "https://www.tiktok.com/@%s",
	"github":    "https://github.com/%s",
}

// urlNetworks accept an already well-formed URL and pass it through.
var urlNetworks = map[string]bool{
	"youtube":   true,
	"linkedin":  true,
	"wikipedia": true,
	"custom":    true,
}

// socialProfileURLs resolves the configured social links into sameAs URLs.
// Unknown networks and blank values are dropped.
func socialProfileURLs(links []config.SocialLink) []string {
	var out []string
	for _, link := range links {
		value := strings.TrimSpace(link.Value)
		if value == "" {
			continue
		}
		network := strings.ToLower(strings.TrimSpace(link.Network))

		if format, ok := handleNetworks[network]; ok {
			out = append(out, fmt.Sprintf(format, strings.TrimPrefix(value, "@")))
			continue
		}
		if urlNetworks[network] && strings.HasPrefix(value, "http") {
			out = append(out, value)
		}
	}
	return out
}
