package nodes

import (
	"strings"

	"github.com/aeokit/aeograph/internal/schema/model"
	"github.com/aeokit/aeograph/internal/schema/source"
)

// archiveListCap bounds archive item lists.
const archiveListCap = 10

// BreadcrumbList builds the breadcrumb trail node. Items with an empty label
// are skipped, not replaced; positions stay 1-indexed and sequential across
// the survivors.
func BreadcrumbList(crumbs []source.Crumb, pageURL string) model.Node {
	var items []model.Node
	position := 1
	for _, c := range crumbs {
		label := strings.TrimSpace(c.Label)
		if label == "" {
			continue
		}
		item := model.Node{
			"@type":    "ListItem",
			"position": position,
			"name":     label,
		}
		item.SetNonEmpty("item", c.URL)
		items = append(items, item)
		position++
	}
	if len(items) == 0 {
		return nil
	}
	return model.Node{
		"@type":           "BreadcrumbList",
		"@id":             model.BreadcrumbID(pageURL),
		"itemListElement": items,
	}
}

// ArchiveItemList builds the listing node for archive-style pages, capped at
// ten entries.
func ArchiveItemList(entries []source.ListEntry, name string) model.Node {
	var items []model.Node
	for _, e := range entries {
		if len(items) >= archiveListCap {
			break
		}
		if strings.TrimSpace(e.Title) == "" {
			continue
		}
		item := model.Node{
			"@type":    "ListItem",
			"position": len(items) + 1,
			"name":     e.Title,
		}
		item.SetNonEmpty("url", e.URL)
		items = append(items, item)
	}
	if len(items) == 0 {
		return nil
	}
	return model.Node{
		"@type":           "ItemList",
		"name":            name,
		"itemListElement": items,
	}
}

// Generic is the fallback content node for unrecognized schema types.
func Generic(typeName string, ctx model.PageContext) model.Node {
	if typeName == "" || ctx.URL == "" {
		return nil
	}
	return model.Node{
		"@type":            typeName,
		"name":             ctx.Title,
		"url":              ctx.URL,
		"mainEntityOfPage": model.Ref(model.WebPageID(ctx.URL)),
	}
}
