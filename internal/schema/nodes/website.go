package nodes

import (
	"strings"

	"github.com/aeokit/aeograph/internal/schema/model"
)

// WebSite builds the site-wide WebSite node with its SearchAction. The
// publisher reference is included only when a publisher id resolved upstream.
func WebSite(name, siteURL, language, publisherID, searchTemplate string, ids model.GraphIDs) model.Node {
	if strings.TrimSpace(searchTemplate) == "" {
		searchTemplate = siteURL + "?s={search_term_string}"
	}

	n := model.Node{
		"@type":      "WebSite",
		"@id":        ids.Website,
		"name":       name,
		"url":        siteURL,
		"inLanguage": language,
		"potentialAction": model.Node{
			"@type": "SearchAction",
			"target": model.Node{
				"@type":       "EntryPoint",
				"urlTemplate": searchTemplate,
			},
			"query-input": "required name=search_term_string",
		},
	}
	if publisherID != "" {
		n["publisher"] = model.Ref(publisherID)
	}
	return n
}
