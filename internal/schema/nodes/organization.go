// Package nodes contains the per-type graph node builders. Every builder is a
// pure function of its explicit inputs and returns a nil Node when the node
// does not apply to the current configuration or page.
package nodes

import (
	"strings"

	"github.com/aeokit/aeograph/internal/schema/model"
)

// Organization builds the publisher Organization node. A blank name after
// trimming means no node.
func Organization(name, siteURL, logoURL string, ids model.GraphIDs, socialURLs []string) model.Node {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}

	n := model.Node{
		"@type": "Organization",
		"@id":   ids.Organization,
		"name":  name,
		"url":   siteURL,
	}
	if logoURL != "" {
		n["logo"] = model.Ref(ids.Logo)
		n["image"] = model.Ref(ids.Logo)
	}
	if len(socialURLs) > 0 {
		n["sameAs"] = socialURLs
	}
	return n
}

// LogoImage builds the ImageObject node the Organization's logo reference
// points at.
func LogoImage(logoURL string, ids model.GraphIDs) model.Node {
	if logoURL == "" {
		return nil
	}
	return model.Node{
		"@type": "ImageObject",
		"@id":   ids.Logo,
		"url":   logoURL,
	}
}
