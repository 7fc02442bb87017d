// Package schema assembles the schema.org JSON-LD graph for the page being
// rendered: context resolution, entity ids, node builders, opening-hours
// normalization and the final empty-branch stripping.
package schema

import (
	"strings"

	"github.com/aeokit/aeograph/internal/config"
	"github.com/aeokit/aeograph/internal/schema/hours"
	"github.com/aeokit/aeograph/internal/schema/model"
	"github.com/aeokit/aeograph/internal/schema/nodes"
	"github.com/aeokit/aeograph/internal/schema/pagectx"
	"github.com/aeokit/aeograph/internal/schema/source"
)

// EntityOrganization and EntityLocalBusiness are the two publisher identity
// settings.
const (
	EntityOrganization  = "Organization"
	EntityLocalBusiness = "LocalBusiness"
)

// Content types that carry an archive item list.
var archiveListTypes = map[model.ContentType]bool{
	model.ContentCategory: true,
	model.ContentTag:      true,
	model.ContentTaxonomy: true,
	model.ContentBlogHome: true,
	model.ContentSearch:   true,
	model.ContentArchive:  true,
}

// Builder assembles one graph per page render. Options and collaborators are
// read-only for the duration of a build; Build holds no state across calls.
type Builder struct {
	opts     *config.Options
	src      source.ContentSource
	faq      source.FAQExtractor
	commerce source.ProductAdapter
}

// BuildResult is the outcome of one assembly pass. Document is nil when no
// node applies; suppression bookkeeping is surfaced here instead of builder
// state.
type BuildResult struct {
	Document                model.Node
	Context                 model.PageContext
	LocalBusinessSuppressed bool
	LocalBusinessMissing    []string
}

// New creates a Builder. faq and commerce may be nil when the host offers no
// extraction or commerce collaborator.
func New(opts *config.Options, src source.ContentSource, faq source.FAQExtractor, commerce source.ProductAdapter) *Builder {
	return &Builder{opts: opts, src: src, faq: faq, commerce: commerce}
}

// Build runs the full pipeline and returns the @context/@graph document.
func (b *Builder) Build() BuildResult {
	siteURL := model.NormalizeSiteURL(b.opts.SiteURL, b.src.HomeURL())
	ids := model.BuildGraphIDs(siteURL)
	lang := resolveLanguage(b.opts, b.src.BlogLanguage())

	common, publisherID, result := b.buildCommon(siteURL, ids)
	graph := append(common, nodes.WebSite(b.siteName(), siteURL, lang, publisherID, b.opts.SearchURLTemplate, ids))

	if !b.src.IsNotFound() {
		pageNodes, ctx := b.buildPage(ids, lang, publisherID)
		result.Context = ctx
		graph = append(graph, pageNodes...)
	}

	merged := make([]model.Node, 0, len(graph))
	for _, n := range graph {
		if len(n) > 0 {
			merged = append(merged, n)
		}
	}
	if len(merged) == 0 {
		return result
	}

	doc := model.Node{
		"@context": "https://schema.org",
		"@graph":   merged,
	}
	if cleaned, ok := stripEmpty(doc); ok {
		result.Document = cleaned.(model.Node)
	}
	return result
}

func (b *Builder) siteName() string {
	if name := strings.TrimSpace(b.opts.CompanyName); name != "" {
		return name
	}
	return b.src.SiteName()
}

// buildCommon assembles the site-wide subgraph: the publisher identity,
// its logo image nodes and, when configured, the local business. The second
// return value is the publisher id downstream nodes reference.
func (b *Builder) buildCommon(siteURL string, ids model.GraphIDs) ([]model.Node, string, BuildResult) {
	var graph []model.Node
	var result BuildResult

	socials := socialProfileURLs(b.opts.SocialLinks)
	name := strings.TrimSpace(b.opts.CompanyName)

	var hasOrganization bool
	if b.opts.EntityType == EntityOrganization {
		org := nodes.Organization(name, siteURL, b.opts.LogoURL, ids, socials)
		if org != nil {
			hasOrganization = true
			graph = append(graph, org, nodes.LogoImage(b.opts.LogoURL, ids))
		}
	}

	if b.wantsLocalBusiness(hasOrganization) && name != "" {
		if missing := b.missingLocalBusinessFields(); b.opts.SkipLocalBusinessIfIncomplete && len(missing) > 0 {
			result.LocalBusinessSuppressed = true
			result.LocalBusinessMissing = missing
		} else {
			graph = append(graph,
				nodes.LocalBusiness(b.localBusinessInput(siteURL, ids, name, hasOrganization, socials)),
				nodes.LocalBusinessImage(b.opts.LogoURL, ids))
		}
	}

	publisherID := ""
	switch {
	case hasOrganization:
		publisherID = ids.Organization
	case b.graphHasLocalBusiness(graph):
		publisherID = ids.LocalBusiness
	}
	return graph, publisherID, result
}

// wantsLocalBusiness reports whether a local-business node applies: either
// the identity is LocalBusiness outright, or an Organization site also
// carries local-business data.
func (b *Builder) wantsLocalBusiness(hasOrganization bool) bool {
	if b.opts.EntityType == EntityLocalBusiness {
		return true
	}
	if !hasOrganization {
		return false
	}
	o := b.opts
	return o.Telephone != "" || o.Address != (config.Address{}) ||
		o.Geo != (config.Geo{}) || len(o.OpeningHours) > 0 || o.MapURL != ""
}

// missingLocalBusinessFields tracks each individually required field for the
// skip-when-incomplete flag.
func (b *Builder) missingLocalBusinessFields() []string {
	var missing []string
	if b.opts.Telephone == "" {
		missing = append(missing, "telephone")
	}
	if b.opts.Address.Street == "" {
		missing = append(missing, "streetAddress")
	}
	if b.opts.Address.Locality == "" {
		missing = append(missing, "addressLocality")
	}
	if b.opts.Address.Region == "" {
		missing = append(missing, "addressRegion")
	}
	if b.opts.Address.Country == "" {
		missing = append(missing, "addressCountry")
	}
	return missing
}

func (b *Builder) localBusinessInput(siteURL string, ids model.GraphIDs, name string, hasOrganization bool, socials []string) nodes.LocalBusinessInput {
	return nodes.LocalBusinessInput{
		IDs:             ids,
		SiteURL:         siteURL,
		Name:            name,
		Subtype:         b.opts.BusinessType,
		HasOrganization: hasOrganization,
		HasImage:        b.opts.LogoURL != "",
		SameAs:          socials,
		Telephone:       b.opts.Telephone,
		Address:         b.opts.Address,
		AreaServed:      b.opts.AreaServed,
		Geo:             b.opts.Geo,
		OpeningHours:    hours.Build(b.opts.OpeningHours, b.opts.HolidayEnabled, b.opts.HolidayMode),
		MapURL:          b.opts.MapURL,
		PriceRange:      b.opts.PriceRange,
		Payments:        b.opts.PaymentsAccepted,
		Reservations:    b.opts.AcceptsReservations,
	}
}

func (b *Builder) graphHasLocalBusiness(graph []model.Node) bool {
	for _, n := range graph {
		if n.ID() == "" {
			continue
		}
		if strings.HasSuffix(n.ID(), "#lb-main") {
			return true
		}
	}
	return false
}

// buildPage assembles the page-scoped subgraph: WebPage, breadcrumbs, archive
// item list and the dispatched content node.
func (b *Builder) buildPage(ids model.GraphIDs, lang, publisherID string) ([]model.Node, model.PageContext) {
	ctx := pagectx.Resolve(b.src)

	var breadcrumb model.Node
	if b.breadcrumbEnabled(ctx) {
		breadcrumb = nodes.BreadcrumbList(b.src.BreadcrumbTrail(), ctx.URL)
	}
	breadcrumbID := ""
	if breadcrumb != nil {
		breadcrumbID = breadcrumb.ID()
	}

	webpage := nodes.WebPage(ctx, lang, b.primaryImage(), ids, breadcrumbID)
	if webpage == nil {
		return nil, ctx
	}

	graph := []model.Node{webpage}
	if breadcrumb != nil {
		graph = append(graph, breadcrumb)
	}
	if archiveListTypes[ctx.ContentType] {
		if list := nodes.ArchiveItemList(b.src.ArchiveEntries(), ctx.Title); list != nil {
			graph = append(graph, list)
		}
	}
	if content := b.buildContent(ctx, lang, publisherID); content != nil {
		graph = append(graph, content)
	}
	return graph, ctx
}

func (b *Builder) primaryImage() *source.Image {
	if post, ok := b.src.CurrentPost(); ok {
		return post.Image
	}
	return nil
}

// breadcrumbEnabled resolves the per-content-type override, falling back to
// the global flag.
func (b *Builder) breadcrumbEnabled(ctx model.PageContext) bool {
	if ts, ok := b.typeSettings(ctx); ok && ts.BreadcrumbEnabled != nil {
		return *ts.BreadcrumbEnabled
	}
	return b.opts.BreadcrumbEnabled
}

func (b *Builder) faqEnabled(ctx model.PageContext) bool {
	if ts, ok := b.typeSettings(ctx); ok && ts.FAQEnabled != nil {
		return *ts.FAQEnabled
	}
	return b.opts.FAQEnabled
}

func (b *Builder) faqSelectors(ctx model.PageContext) (string, string) {
	question, answer := b.opts.FAQQuestionClass, b.opts.FAQAnswerClass
	if ts, ok := b.typeSettings(ctx); ok {
		if ts.FAQQuestionClass != "" {
			question = ts.FAQQuestionClass
		}
		if ts.FAQAnswerClass != "" {
			answer = ts.FAQAnswerClass
		}
	}
	return question, answer
}

func (b *Builder) typeSettings(ctx model.PageContext) (config.TypeSettings, bool) {
	slug := ctx.PostTypeSlug
	if slug == "" {
		slug = ctx.TaxonomySlug
	}
	if slug == "" {
		return config.TypeSettings{}, false
	}
	return b.opts.TypeSettingsFor(slug)
}

// contentSchemaType resolves which content model applies: an explicit
// per-post override outranks the per-type settings, which outrank the global
// default. A FAQPage resolution with FAQ disabled for this context falls back
// to the default model.
func (b *Builder) contentSchemaType(ctx model.PageContext) string {
	resolved := ""
	if post, ok := b.src.CurrentPost(); ok && post.SchemaType != "" && post.SchemaType != "auto" {
		resolved = post.SchemaType
	}
	if resolved == "" {
		if ts, ok := b.typeSettings(ctx); ok && ts.SchemaType != "" && ts.SchemaType != "auto" {
			resolved = ts.SchemaType
		}
	}
	if resolved == "" {
		resolved = b.opts.ContentModel
	}
	if resolved == "FAQPage" && !b.faqEnabled(ctx) {
		resolved = b.opts.ContentModel
	}
	return resolved
}

func (b *Builder) buildContent(ctx model.PageContext, lang, publisherID string) model.Node {
	schemaType := b.contentSchemaType(ctx)

	switch schemaType {
	case "Article", "BlogPosting", "NewsArticle":
		post, _ := b.src.CurrentPost()
		return nodes.Article(nodes.ArticleInput{
			Type:        schemaType,
			Post:        post,
			PageURL:     ctx.URL,
			PublisherID: publisherID,
			Language:    lang,
		})
	case "FAQPage":
		return b.buildFAQ(ctx, nodes.FAQPage)
	case "QAPage":
		return b.buildFAQ(ctx, nodes.QAPage)
	case "Product":
		return b.buildProduct(ctx)
	case "":
		return nil
	default:
		return nodes.Generic(schemaType, ctx)
	}
}

func (b *Builder) buildFAQ(ctx model.PageContext, build func([]source.QA, model.PageContext) model.Node) model.Node {
	if !b.faqEnabled(ctx) || b.faq == nil {
		return nil
	}
	question, answer := b.faqSelectors(ctx)
	if question == "" || answer == "" {
		return nil
	}
	return build(b.faq.ExtractQA(question, answer), ctx)
}

// buildProduct asks the commerce adapter first; a nil answer falls through to
// the generic meta-based builder.
func (b *Builder) buildProduct(ctx model.PageContext) model.Node {
	if b.commerce != nil {
		if n := b.commerce.ProductNode(ctx.ContentID, ctx); len(n) > 0 {
			return n
		}
	}
	post, _ := b.src.CurrentPost()
	return nodes.Product(nodes.ProductInput{
		Post:         post,
		Ctx:          ctx,
		ShopCurrency: b.src.Currency(),
	})
}
