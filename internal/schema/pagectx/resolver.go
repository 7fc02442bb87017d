// Package pagectx resolves the identity of the page being rendered from the
// host CMS's current-request state.
package pagectx

import (
	"fmt"
	"strings"

	"github.com/aeokit/aeograph/internal/schema/model"
	"github.com/aeokit/aeograph/internal/schema/source"
)

// Resolve classifies the current request into a PageContext. Branches are
// checked in a fixed priority order and the first match wins: a front page
// that is also an archive resolves as front page only.
func Resolve(src source.ContentSource) model.PageContext {
	ctx := resolveRaw(src)

	if strings.TrimSpace(ctx.Title) == "" {
		ctx.Title = src.SiteName()
	}
	if strings.TrimSpace(ctx.URL) == "" {
		ctx.URL = src.HomeURL()
	}

	return applyPagination(ctx, src)
}

func resolveRaw(src source.ContentSource) model.PageContext {
	switch {
	case src.IsFrontPage():
		return resolveFrontPage(src)
	case src.IsBlogHome():
		return model.PageContext{
			ContentType: model.ContentBlogHome,
			Title:       src.SiteName(),
			URL:         src.CurrentURL(),
		}
	case src.IsSingular():
		return resolveSingular(src)
	case src.IsCategory() || src.IsTag() || src.IsTaxonomy():
		return resolveTermArchive(src)
	case src.IsAuthor():
		return model.PageContext{
			ContentType: model.ContentAuthor,
			Title:       src.AuthorDisplayName(),
			URL:         src.AuthorArchiveURL(),
		}
	case src.IsSearch():
		return resolveSearch(src)
	case src.IsPostTypeArchive():
		return model.PageContext{
			ContentType:  model.ContentPostTypeArchive,
			Title:        src.PostTypeLabel(),
			URL:          src.PostTypeArchiveURL(),
			PostTypeSlug: src.PostTypeSlug(),
		}
	case src.IsDateArchive():
		return resolveDateArchive(src)
	default:
		return model.PageContext{
			ContentType: model.ContentArchive,
			Title:       src.SiteName(),
			URL:         src.CurrentURL(),
		}
	}
}

func resolveFrontPage(src source.ContentSource) model.PageContext {
	ctx := model.PageContext{
		ContentType: model.ContentFrontPage,
		Title:       src.SiteName(),
		URL:         src.HomeURL(),
	}
	if post, ok := src.FrontPagePost(); ok {
		ctx.ContentID = post.ID
		if post.Title != "" {
			ctx.Title = post.Title
		}
		if post.URL != "" {
			ctx.URL = post.URL
		}
	}
	return ctx
}

func resolveSingular(src source.ContentSource) model.PageContext {
	ctx := model.PageContext{
		ContentType: model.ContentSingular,
		URL:         src.CurrentURL(),
	}
	if post, ok := src.CurrentPost(); ok {
		ctx.ContentID = post.ID
		ctx.Title = post.Title
		ctx.PostTypeSlug = post.TypeSlug
		if post.URL != "" {
			ctx.URL = post.URL
		}
	}
	return ctx
}

func resolveTermArchive(src source.ContentSource) model.PageContext {
	contentType := model.ContentTaxonomy
	switch {
	case src.IsCategory():
		contentType = model.ContentCategory
	case src.IsTag():
		contentType = model.ContentTag
	}

	ctx := model.PageContext{
		ContentType: contentType,
		URL:         src.CurrentURL(),
	}
	if term, ok := src.CurrentTerm(); ok {
		ctx.Title = term.Name
		ctx.TaxonomySlug = term.Taxonomy
		// Term-link resolution can fail on malformed rewrite rules; the
		// request URL is a safe substitute.
		if link, err := src.TermLink(term); err == nil && link != "" {
			ctx.URL = link
		}
	}
	return ctx
}

func resolveSearch(src source.ContentSource) model.PageContext {
	title := "Search results"
	if q := strings.TrimSpace(src.SearchQuery()); q != "" {
		title = fmt.Sprintf("Search results for %q", q)
	}
	return model.PageContext{
		ContentType: model.ContentSearch,
		Title:       title,
		URL:         src.CurrentURL(),
	}
}

func resolveDateArchive(src source.ContentSource) model.PageContext {
	ctx := model.PageContext{
		ContentType: model.ContentDateArchive,
		Title:       src.DateArchiveTitle(),
		URL:         src.CurrentURL(),
	}
	for _, granularity := range []string{"day", "month", "year"} {
		if link, err := src.DateArchiveURL(granularity); err == nil {
			ctx.URL = link
			break
		}
	}
	return ctx
}

// applyPagination rewrites the context URL for paginated requests: singular
// content appends /page/N/ for in-post page numbers, everything else moves to
// the canonical pagination URL of the paged archive.
func applyPagination(ctx model.PageContext, src source.ContentSource) model.PageContext {
	if ctx.ContentType == model.ContentSingular {
		if page := src.PageNumber(); page > 1 {
			ctx.URL = pagePathURL(ctx.URL, page)
		}
		return ctx
	}
	if paged := src.PagedNumber(); paged > 1 {
		ctx.URL = pagedArchiveURL(ctx.URL, paged)
	}
	return ctx
}

// pagePathURL is the in-post pagination form; singular permalinks have no
// query component to preserve.
func pagePathURL(base string, n int) string {
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return fmt.Sprintf("%spage/%d/", base, n)
}

// pagedArchiveURL keeps query-based archive URLs (search results) intact by
// carrying the page number as a paged parameter.
func pagedArchiveURL(base string, n int) string {
	if strings.Contains(base, "?") {
		return fmt.Sprintf("%s&paged=%d", base, n)
	}
	return pagePathURL(base, n)
}
