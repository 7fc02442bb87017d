// Package validate checks an assembled graph against per-type completeness
// rules before it may be emitted. Errors block emission; warnings never do.
package validate

import (
	"fmt"
	"strings"

	"github.com/aeokit/aeograph/internal/schema/model"
)

// Validate extracts the @graph list (a bare node counts as a one-element
// graph), builds an @id lookup, and runs the independent per-type checks.
func Validate(graph model.Node) model.ValidationResult {
	result := model.ValidationResult{
		Errors:   []string{},
		Warnings: []string{},
		Schema:   graph,
	}

	nodesList := graphNodes(graph)
	lookup := map[string]model.Node{}
	for _, n := range nodesList {
		if id := n.ID(); id != "" {
			lookup[id] = n
		}
	}

	for _, n := range nodesList {
		switch {
		case n.HasType("WebSite"):
			checkWebSite(n, lookup, &result)
		case n.HasType("Organization"):
			checkOrganization(n, &result)
		case isLocalBusiness(n):
			checkLocalBusiness(n, &result)
		case isArticleFamily(n):
			checkArticle(n, &result)
		case n.HasType("Product"):
			checkProduct(n, &result)
		}
	}

	result.IsValid = len(result.Errors) == 0
	return result
}

func graphNodes(graph model.Node) []model.Node {
	raw, ok := graph["@graph"]
	if !ok {
		if len(graph) > 0 {
			return []model.Node{graph}
		}
		return nil
	}

	var out []model.Node
	switch list := raw.(type) {
	case []model.Node:
		out = list
	case []any:
		for _, item := range list {
			if n := asNode(item); n != nil {
				out = append(out, n)
			}
		}
	}
	return out
}

func asNode(v any) model.Node {
	switch n := v.(type) {
	case model.Node:
		return n
	case map[string]any:
		return model.Node(n)
	}
	return nil
}

func isLocalBusiness(n model.Node) bool {
	// Subtypes override @type, so a local business is recognized by its
	// canonical id fragment as well.
	if n.HasType("LocalBusiness") {
		return true
	}
	return strings.HasSuffix(n.ID(), "#lb-main")
}

func isArticleFamily(n model.Node) bool {
	return n.HasType("Article") || n.HasType("NewsArticle") || n.HasType("BlogPosting")
}

func stringField(n model.Node, key string) string {
	s, _ := n[key].(string)
	return strings.TrimSpace(s)
}

// resolveRef follows an {@id} reference through the lookup. Inline objects
// come back as-is; unresolvable references return nil.
func resolveRef(v any, lookup map[string]model.Node) model.Node {
	n := asNode(v)
	if n == nil {
		return nil
	}
	if id := n.ID(); id != "" && len(n) == 1 {
		return lookup[id]
	}
	return n
}

func checkWebSite(n model.Node, lookup map[string]model.Node, result *model.ValidationResult) {
	if stringField(n, "url") == "" {
		result.Errors = append(result.Errors, "WebSite: url is required")
	}
	if stringField(n, "inLanguage") == "" {
		result.Errors = append(result.Errors, "WebSite: inLanguage is required")
	}
	pub, ok := n["publisher"]
	if !ok {
		result.Errors = append(result.Errors, "WebSite: publisher is required")
		return
	}
	resolved := resolveRef(pub, lookup)
	if resolved == nil || stringField(resolved, "name") == "" {
		result.Errors = append(result.Errors, "WebSite: publisher.name is required")
	}
}

func checkOrganization(n model.Node, result *model.ValidationResult) {
	if stringField(n, "name") == "" {
		result.Errors = append(result.Errors, "Organization: name is required")
	}
	if stringField(n, "url") == "" {
		result.Errors = append(result.Errors, "Organization: url is required")
	}
	if _, hasLogo := n["logo"]; !hasLogo {
		if _, hasImage := n["image"]; !hasImage {
			result.Errors = append(result.Errors, "Organization: one of logo or image is required")
		}
	}
}

func checkLocalBusiness(n model.Node, result *model.ValidationResult) {
	if stringField(n, "name") == "" {
		result.Errors = append(result.Errors, "LocalBusiness: name is required")
	}

	addr := asNode(n["address"])
	addressField := func(key string) string {
		if addr == nil {
			return ""
		}
		return stringField(addr, key)
	}

	// streetAddress and addressLocality are recorded as both an error and a
	// warning. Downstream consumers read the warning entry, so the
	// duplication stays.
	if addressField("streetAddress") == "" {
		result.Errors = append(result.Errors, "LocalBusiness: streetAddress is required")
		result.Warnings = append(result.Warnings, "LocalBusiness: streetAddress is missing")
	}
	if addressField("addressLocality") == "" {
		result.Errors = append(result.Errors, "LocalBusiness: addressLocality is required")
		result.Warnings = append(result.Warnings, "LocalBusiness: addressLocality is missing")
	}
	if addressField("addressRegion") == "" {
		result.Errors = append(result.Errors, "LocalBusiness: addressRegion is required")
	}
	if addressField("postalCode") == "" {
		result.Errors = append(result.Errors, "LocalBusiness: postalCode is required")
	}
	if addressField("addressCountry") == "" {
		result.Errors = append(result.Errors, "LocalBusiness: addressCountry is required")
	}
	if stringField(n, "telephone") == "" {
		result.Errors = append(result.Errors, "LocalBusiness: telephone is required")
	}

	if _, ok := n["geo"]; !ok {
		result.Warnings = append(result.Warnings, "LocalBusiness: geo coordinates are recommended")
	}
	if _, ok := n["openingHoursSpecification"]; !ok {
		result.Warnings = append(result.Warnings, "LocalBusiness: openingHoursSpecification is recommended")
	}

	checkAreaServed(n, addressField("addressCountry"), result)

	_, hasGeo := n["geo"]
	_, hasMap := n["hasMap"]
	if (hasGeo || hasMap) && (addressField("streetAddress") == "" || addressField("addressLocality") == "") {
		result.Warnings = append(result.Warnings,
			"LocalBusiness: geo or map link present but the address is incomplete; autofill may fail")
	}
}

func checkAreaServed(n model.Node, country string, result *model.ValidationResult) {
	raw, ok := n["areaServed"]
	if !ok {
		return
	}

	var areas []model.Node
	switch list := raw.(type) {
	case []model.Node:
		areas = list
	case []any:
		for _, item := range list {
			if a := asNode(item); a != nil {
				areas = append(areas, a)
			}
		}
	case model.Node:
		areas = []model.Node{list}
	case map[string]any:
		areas = []model.Node{model.Node(list)}
	}

	for _, area := range areas {
		if strings.EqualFold(stringField(area, "identifier"), country) && country != "" {
			return
		}
	}
	result.Errors = append(result.Errors,
		fmt.Sprintf("LocalBusiness: no areaServed identifier matches the address country %q", country))
}

func checkArticle(n model.Node, result *model.ValidationResult) {
	typ := n.Type()[0]
	for _, key := range []string{"headline", "datePublished", "dateModified", "author", "mainEntityOfPage", "publisher", "image"} {
		if _, ok := n[key]; !ok {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %s is required", typ, key))
		}
	}
}

func checkProduct(n model.Node, result *model.ValidationResult) {
	if _, ok := n["brand"]; !ok {
		result.Errors = append(result.Errors, "Product: brand is required")
	}
	if _, ok := n["image"]; !ok {
		result.Errors = append(result.Errors, "Product: image is required")
	}

	offers := asNode(n["offers"])
	if offers == nil {
		result.Errors = append(result.Errors, "Product: offers is required")
		return
	}
	if stringField(offers, "price") == "" {
		result.Errors = append(result.Errors, "Product: offers.price is required")
	}
	if stringField(offers, "priceCurrency") == "" {
		result.Errors = append(result.Errors, "Product: offers.priceCurrency is required")
	}
	if stringField(offers, "availability") == "" {
		result.Errors = append(result.Errors, "Product: offers.availability is required")
	}
}
