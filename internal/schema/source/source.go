// Package source defines the collaborator boundary between the graph core and
// the host CMS. The core never reads request state directly; everything it
// needs about the current render arrives through these interfaces.
package source

import "github.com/aeokit/aeograph/internal/schema/model"

// Post is the CMS view of one singular content item. Dates are ISO-8601
// strings as provided by the host; empty means unknown.
type Post struct {
	ID            int               `json:"id"`
	Title         string            `json:"title"`
	URL           string            `json:"url"`
	TypeSlug      string            `json:"type_slug"`
	Content       string            `json:"content"`
	Excerpt       string            `json:"excerpt"`
	Published     string            `json:"published"`
	Modified      string            `json:"modified"`
	AuthorName    string            `json:"author_name"`
	AuthorDisplay string            `json:"author_display"`
	Image         *Image            `json:"image,omitempty"`
	Meta          map[string]string `json:"meta,omitempty"`
	// SchemaType is the per-post schema override; "auto" or empty defers to
	// the content-type settings and the global default.
	SchemaType string `json:"schema_type,omitempty"`
}

// Term is a taxonomy term (category, tag, custom taxonomy).
type Term struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Taxonomy string `json:"taxonomy"`
}

// Image carries an attachment URL plus pixel dimensions when known.
type Image struct {
	URL    string `json:"url"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// Crumb is one breadcrumb trail entry as resolved by the host.
type Crumb struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// QA is one extracted question/answer pair.
type QA struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// ListEntry is one entry of an archive listing, in display order.
type ListEntry struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// ContentSource exposes the current-request state of the host CMS. Exactly one
// classification predicate set is expected to hold per request; the resolver
// checks them in a fixed priority order and the first match wins.
type ContentSource interface {
	IsNotFound() bool
	IsFrontPage() bool
	IsBlogHome() bool
	IsSingular() bool
	IsCategory() bool
	IsTag() bool
	IsTaxonomy() bool
	IsAuthor() bool
	IsSearch() bool
	IsPostTypeArchive() bool
	IsDateArchive() bool
	IsArchive() bool

	SiteName() string
	HomeURL() string
	// CurrentURL is the canonical URL of the request as the host sees it,
	// used both as archive fallback and when term-link resolution fails.
	CurrentURL() string
	BlogLanguage() string

	// FrontPagePost returns the configured static front page, if any.
	FrontPagePost() (*Post, bool)
	CurrentPost() (*Post, bool)
	CurrentTerm() (*Term, bool)
	TermLink(t *Term) (string, error)

	AuthorDisplayName() string
	AuthorArchiveURL() string
	SearchQuery() string
	PostTypeSlug() string
	PostTypeLabel() string
	PostTypeArchiveURL() string
	// DateArchiveURL resolves the archive link for the given granularity
	// ("day", "month" or "year"); an error means that granularity does not
	// apply to the current request.
	DateArchiveURL(granularity string) (string, error)
	DateArchiveTitle() string

	// PageNumber is the in-post pagination number ("page"), PagedNumber the
	// archive pagination number ("paged"); both 0 or 1 when unpaginated.
	PageNumber() int
	PagedNumber() int

	BreadcrumbTrail() []Crumb
	ArchiveEntries() []ListEntry

	// Currency is the commerce collaborator's shop currency, used when
	// product meta carries a price but no currency key.
	Currency() string
}

// FAQExtractor scrapes question/answer pairs out of the current content using
// two CSS class selectors.
type FAQExtractor interface {
	ExtractQA(questionSelector, answerSelector string) []QA
}

// ProductAdapter lets a commerce platform supply a complete Product node for a
// content item. A nil return falls through to the generic meta-based builder.
type ProductAdapter interface {
	ProductNode(contentID int, ctx model.PageContext) model.Node
}
