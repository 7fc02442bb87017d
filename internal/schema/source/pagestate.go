package source

import "fmt"

// PageState is a document-backed ContentSource: one JSON object describing the
// request the host is rendering. The HTTP surface binds the render payload to
// this type; tests construct it directly.
type PageState struct {
	NotFound        bool   `json:"not_found"`
	FrontPage       bool   `json:"front_page"`
	BlogHome        bool   `json:"blog_home"`
	Singular        bool   `json:"singular"`
	Category        bool   `json:"category"`
	Tag             bool   `json:"tag"`
	Taxonomy        bool   `json:"taxonomy"`
	Author          bool   `json:"author"`
	Search          bool   `json:"search"`
	PostTypeArch    bool   `json:"post_type_archive"`
	DateArch        bool   `json:"date_archive"`
	Archive         bool   `json:"archive"`
	Site            string `json:"site_name"`
	Home            string `json:"home_url"`
	URL             string `json:"current_url"`
	Language        string `json:"blog_language"`
	Query           string `json:"search_query"`
	Page            int    `json:"page"`
	Paged           int    `json:"paged"`
	FrontPost       *Post  `json:"front_page_post,omitempty"`
	Post            *Post  `json:"post,omitempty"`
	Term            *Term  `json:"term,omitempty"`
	TermURL         string `json:"term_url,omitempty"`
	TermLinkBroken  bool   `json:"term_link_broken,omitempty"`
	AuthorName      string `json:"author_name,omitempty"`
	AuthorURL       string `json:"author_url,omitempty"`
	PostTypeSlugV   string `json:"post_type_slug,omitempty"`
	PostTypeLabelV  string `json:"post_type_label,omitempty"`
	PostTypeURL     string `json:"post_type_url,omitempty"`
	DateLinks       map[string]string `json:"date_links,omitempty"`
	DateTitle       string            `json:"date_title,omitempty"`
	Crumbs          []Crumb           `json:"breadcrumbs,omitempty"`
	Entries         []ListEntry       `json:"archive_entries,omitempty"`
	ShopCurrency    string            `json:"shop_currency,omitempty"`
	QAPairs         []QA              `json:"qa_pairs,omitempty"`
}

var _ ContentSource = (*PageState)(nil)
var _ FAQExtractor = (*PageState)(nil)

func (p *PageState) IsNotFound() bool        { return p.NotFound }
func (p *PageState) IsFrontPage() bool       { return p.FrontPage }
func (p *PageState) IsBlogHome() bool        { return p.BlogHome }
func (p *PageState) IsSingular() bool        { return p.Singular }
func (p *PageState) IsCategory() bool        { return p.Category }
func (p *PageState) IsTag() bool             { return p.Tag }
func (p *PageState) IsTaxonomy() bool        { return p.Taxonomy }
func (p *PageState) IsAuthor() bool          { return p.Author }
func (p *PageState) IsSearch() bool          { return p.Search }
func (p *PageState) IsPostTypeArchive() bool { return p.PostTypeArch }
func (p *PageState) IsDateArchive() bool     { return p.DateArch }
func (p *PageState) IsArchive() bool         { return p.Archive }

func (p *PageState) SiteName() string     { return p.Site }
func (p *PageState) HomeURL() string      { return p.Home }
func (p *PageState) CurrentURL() string   { return p.URL }
func (p *PageState) BlogLanguage() string { return p.Language }

func (p *PageState) FrontPagePost() (*Post, bool) { return p.FrontPost, p.FrontPost != nil }
func (p *PageState) CurrentPost() (*Post, bool)   { return p.Post, p.Post != nil }
func (p *PageState) CurrentTerm() (*Term, bool)   { return p.Term, p.Term != nil }

func (p *PageState) TermLink(t *Term) (string, error) {
	if p.TermLinkBroken || p.TermURL == "" {
		return "", fmt.Errorf("no link for term %q", t.Name)
	}
	return p.TermURL, nil
}

func (p *PageState) AuthorDisplayName() string  { return p.AuthorName }
func (p *PageState) AuthorArchiveURL() string   { return p.AuthorURL }
func (p *PageState) SearchQuery() string        { return p.Query }
func (p *PageState) PostTypeSlug() string       { return p.PostTypeSlugV }
func (p *PageState) PostTypeLabel() string      { return p.PostTypeLabelV }
func (p *PageState) PostTypeArchiveURL() string { return p.PostTypeURL }

func (p *PageState) DateArchiveURL(granularity string) (string, error) {
	if u, ok := p.DateLinks[granularity]; ok && u != "" {
		return u, nil
	}
	return "", fmt.Errorf("no %s archive link", granularity)
}

func (p *PageState) DateArchiveTitle() string { return p.DateTitle }

func (p *PageState) PageNumber() int  { return p.Page }
func (p *PageState) PagedNumber() int { return p.Paged }

func (p *PageState) BreadcrumbTrail() []Crumb      { return p.Crumbs }
func (p *PageState) ArchiveEntries() []ListEntry   { return p.Entries }
func (p *PageState) Currency() string              { return p.ShopCurrency }

func (p *PageState) ExtractQA(questionSelector, answerSelector string) []QA {
	if questionSelector == "" || answerSelector == "" {
		return nil
	}
	return p.QAPairs
}
