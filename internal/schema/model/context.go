package model

// ContentType classifies the page currently being rendered. It drives the
// WebPage subtype and which content-entity builder applies.
type ContentType string

const (
	ContentFrontPage       ContentType = "front_page"
	ContentBlogHome        ContentType = "blog_home"
	ContentSingular        ContentType = "singular"
	ContentCategory        ContentType = "category"
	ContentTag             ContentType = "tag"
	ContentTaxonomy        ContentType = "taxonomy"
	ContentAuthor          ContentType = "author"
	ContentSearch          ContentType = "search"
	ContentArchive         ContentType = "archive"
	ContentPostTypeArchive ContentType = "post_type_archive"
	ContentDateArchive     ContentType = "date_archive"
)

// PageContext is the resolved identity of the current page. URL and Title are
// never empty after resolution; the resolver falls back to the site home URL
// and site name.
type PageContext struct {
	URL          string      `json:"url"`
	Title        string      `json:"title"`
	ContentID    int         `json:"content_id,omitempty"`
	ContentType  ContentType `json:"content_type"`
	TaxonomySlug string      `json:"taxonomy_slug,omitempty"`
	PostTypeSlug string      `json:"post_type_slug,omitempty"`
}
