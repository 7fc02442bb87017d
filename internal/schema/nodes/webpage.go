package nodes

import (
	"github.com/aeokit/aeograph/internal/schema/model"
	"github.com/aeokit/aeograph/internal/schema/source"
)

// webPageSubtype maps each content classification to the extra WebPage
// subtype it carries. Absent entries emit a plain WebPage.
var webPageSubtype = map[model.ContentType]string{
	model.ContentFrontPage:       "HomePage",
	model.ContentBlogHome:        "CollectionPage",
	model.ContentCategory:        "CollectionPage",
	model.ContentTag:             "CollectionPage",
	model.ContentTaxonomy:        "CollectionPage",
	model.ContentArchive:         "CollectionPage",
	model.ContentPostTypeArchive: "CollectionPage",
	model.ContentDateArchive:     "CollectionPage",
	model.ContentSearch:          "SearchResultsPage",
	model.ContentAuthor:          "ProfilePage",
}

// WebPage builds the node for the page itself. An empty context URL means no
// node, which in turn skips the whole page subgraph. The @type collapses to a
// single string when exactly one type applies. breadcrumbID is empty when
// breadcrumbs are disabled for this page.
func WebPage(ctx model.PageContext, language string, primaryImage *source.Image, ids model.GraphIDs, breadcrumbID string) model.Node {
	if ctx.URL == "" {
		return nil
	}

	types := []string{"WebPage"}
	if extra, ok := webPageSubtype[ctx.ContentType]; ok {
		types = append(types, extra)
	}
	var typ any = types
	if len(types) == 1 {
		typ = types[0]
	}

	n := model.Node{
		"@type":    typ,
		"@id":      model.WebPageID(ctx.URL),
		"url":      ctx.URL,
		"name":     ctx.Title,
		"isPartOf": model.Ref(ids.Website),
	}
	n.SetNonEmpty("inLanguage", language)
	if breadcrumbID != "" {
		n["breadcrumb"] = model.Ref(breadcrumbID)
	}
	if primaryImage != nil && primaryImage.URL != "" {
		img := model.Node{
			"@type": "ImageObject",
			"url":   primaryImage.URL,
		}
		if primaryImage.Width > 0 {
			img["width"] = primaryImage.Width
		}
		if primaryImage.Height > 0 {
			img["height"] = primaryImage.Height
		}
		n["primaryImageOfPage"] = img
	}
	return n
}
