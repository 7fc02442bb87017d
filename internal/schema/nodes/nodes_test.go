package nodes

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aeokit/aeograph/internal/config"
	"github.com/aeokit/aeograph/internal/schema/model"
	"github.com/aeokit/aeograph/internal/schema/source"
)

var testIDs = model.BuildGraphIDs("https://acme.test/")

func TestOrganization_BlankNameMeansNoNode(t *testing.T) {
	n := Organization("   ", "https://acme.test/", "", testIDs, nil)
	assert.Nil(t, n)
	_, hasType := n["@type"]
	assert.False(t, hasType)
}

func TestOrganization_LogoAndSocials(t *testing.T) {
	n := Organization("Acme", "https://acme.test/", "https://acme.test/logo.png", testIDs,
		[]string{"https://www.facebook.com/acme"})

	assert.Equal(t, "Organization", n["@type"])
	assert.Equal(t, "https://acme.test/#org", n["@id"])
	assert.Equal(t, model.Ref("https://acme.test/#logo"), n["logo"])
	assert.Equal(t, []string{"https://www.facebook.com/acme"}, n["sameAs"])
}

func TestLocalBusiness_SubtypeAndBackReferences(t *testing.T) {
	n := LocalBusiness(LocalBusinessInput{
		IDs:             testIDs,
		SiteURL:         "https://acme.test/",
		Name:            "Acme Store",
		Subtype:         "Restaurant",
		HasOrganization: true,
		Telephone:       "+81-3-0000-0000",
		Payments:        "cash, credit card, ,",
		Reservations:    true,
	})

	assert.Equal(t, "Restaurant", n["@type"])
	assert.Equal(t, model.Ref("https://acme.test/#org"), n["parentOrganization"])
	assert.Equal(t, model.Ref("https://acme.test/#org"), n["branchOf"])
	assert.Equal(t, []string{"cash", "credit card"}, n["paymentAccepted"])
	assert.Equal(t, true, n["acceptsReservations"])
}

func TestLocalBusiness_SameAsEmittedWhenConfigured(t *testing.T) {
	n := LocalBusiness(LocalBusinessInput{
		IDs:     testIDs,
		SiteURL: "https://acme.test/",
		Name:    "Acme Store",
		SameAs:  []string{"https://www.facebook.com/acme", "https://x.com/acme"},
	})

	assert.Equal(t, []string{"https://www.facebook.com/acme", "https://x.com/acme"}, n["sameAs"])

	n = LocalBusiness(LocalBusinessInput{IDs: testIDs, Name: "Acme Store"})
	_, ok := n["sameAs"]
	assert.False(t, ok)
}

func TestLocalBusiness_GeoDroppedWhenMalformed(t *testing.T) {
	cases := []config.Geo{
		{Latitude: "abc", Longitude: "139.69"},
		{Latitude: "91.0", Longitude: "139.69"},
		{Latitude: "35.68", Longitude: "181.0"},
		{Latitude: "", Longitude: ""},
	}
	for _, g := range cases {
		n := LocalBusiness(LocalBusinessInput{IDs: testIDs, Name: "Acme", Geo: g})
		_, ok := n["geo"]
		assert.False(t, ok, "geo %v should be dropped", g)
	}

	n := LocalBusiness(LocalBusinessInput{IDs: testIDs, Name: "Acme",
		Geo: config.Geo{Latitude: "35.68", Longitude: "139.69"}})
	geo, ok := n["geo"].(model.Node)
	assert.True(t, ok)
	assert.Equal(t, 35.68, geo["latitude"])
}

func TestWebSite_SearchActionAndPublisher(t *testing.T) {
	n := WebSite("Acme", "https://acme.test/", "ja-JP", "https://acme.test/#org", "", testIDs)

	action := n["potentialAction"].(model.Node)
	assert.Equal(t, "SearchAction", action["@type"])
	target := action["target"].(model.Node)
	assert.Equal(t, "https://acme.test/?s={search_term_string}", target["urlTemplate"])
	assert.Equal(t, "required name=search_term_string", action["query-input"])
	assert.Equal(t, model.Ref("https://acme.test/#org"), n["publisher"])

	n = WebSite("Acme", "https://acme.test/", "ja-JP", "", "", testIDs)
	_, ok := n["publisher"]
	assert.False(t, ok)
}

func TestWebPage_TypeTable(t *testing.T) {
	cases := []struct {
		contentType model.ContentType
		want        any
	}{
		{model.ContentSingular, "WebPage"},
		{model.ContentFrontPage, []string{"WebPage", "HomePage"}},
		{model.ContentCategory, []string{"WebPage", "CollectionPage"}},
		{model.ContentSearch, []string{"WebPage", "SearchResultsPage"}},
		{model.ContentAuthor, []string{"WebPage", "ProfilePage"}},
	}
	for _, tc := range cases {
		ctx := model.PageContext{URL: "https://acme.test/p/", Title: "T", ContentType: tc.contentType}
		n := WebPage(ctx, "ja-JP", nil, testIDs, "")
		assert.Equal(t, tc.want, n["@type"], "content type %s", tc.contentType)
	}
}

func TestWebPage_EmptyURLMeansNoNode(t *testing.T) {
	n := WebPage(model.PageContext{Title: "T"}, "ja-JP", nil, testIDs, "")
	assert.Nil(t, n)
}

func TestArticle_AllOrNothingGate(t *testing.T) {
	complete := func() ArticleInput {
		return ArticleInput{
			Type:        "BlogPosting",
			PageURL:     "https://acme.test/hello/",
			PublisherID: "https://acme.test/#org",
			Post: &source.Post{
				Title:      "Hello",
				AuthorName: "alice",
				Published:  "2024-01-01T00:00:00+09:00",
				Modified:   "2024-01-02T00:00:00+09:00",
				Excerpt:    "An excerpt.",
				Image:      &source.Image{URL: "https://acme.test/img.png"},
			},
		}
	}

	n := Article(complete())
	assert.Equal(t, "BlogPosting", n["@type"])
	assert.Equal(t, "Hello", n["headline"])

	in := complete()
	in.Post.AuthorName = ""
	in.Post.AuthorDisplay = ""
	assert.Nil(t, Article(in), "missing author must drop the node")

	in = complete()
	in.Post.Modified = ""
	assert.Nil(t, Article(in), "missing modified date must drop the node")

	in = complete()
	in.Post.Image = nil
	assert.Nil(t, Article(in), "missing image must drop the node")

	in = complete()
	in.PublisherID = ""
	assert.Nil(t, Article(in), "missing publisher must drop the node")
}

func TestArticle_AuthorDisplayNameFallback(t *testing.T) {
	in := ArticleInput{
		Type:        "Article",
		PageURL:     "https://acme.test/hello/",
		PublisherID: "https://acme.test/#org",
		Post: &source.Post{
			Title:         "Hello",
			AuthorDisplay: "Alice A.",
			Published:     "2024-01-01",
			Modified:      "2024-01-02",
			Content:       "Body text.",
			Image:         &source.Image{URL: "https://acme.test/img.png"},
		},
	}
	n := Article(in)
	author := n["author"].(model.Node)
	assert.Equal(t, "Alice A.", author["name"])
}

func TestArticle_HeadlineFallbackFromContent(t *testing.T) {
	in := ArticleInput{
		Type:        "Article",
		PageURL:     "https://acme.test/hello/",
		PublisherID: "https://acme.test/#org",
		Post: &source.Post{
			Title:      "",
			AuthorName: "alice",
			Published:  "2024-01-01",
			Modified:   "2024-01-02",
			Content:    "<p>one two three four five six seven eight nine ten eleven twelve thirteen</p>",
			Image:      &source.Image{URL: "https://acme.test/img.png"},
		},
	}
	n := Article(in)
	assert.Equal(t, "one two three four five six seven eight nine ten eleven twelve…", n["headline"])
}

func TestFAQPage_DropsBlankSidedPairs(t *testing.T) {
	ctx := model.PageContext{URL: "https://acme.test/faq/", Title: "FAQ"}
	pairs := []source.QA{
		{Question: "Q1", Answer: "A1"},
		{Question: "", Answer: "A2"},
		{Question: "Q3", Answer: "  "},
	}

	n := FAQPage(pairs, ctx)

	questions := n["mainEntity"].([]model.Node)
	assert.Len(t, questions, 1)
	assert.Equal(t, "Q1", questions[0]["name"])

	assert.Nil(t, FAQPage([]source.QA{{Question: "", Answer: ""}}, ctx))
}

func TestQAPage_SingleQuestion(t *testing.T) {
	ctx := model.PageContext{URL: "https://acme.test/q/", Title: "Q"}
	n := QAPage([]source.QA{{Question: "Why?", Answer: "Because."}}, ctx)

	main := n["mainEntity"].(model.Node)
	assert.Equal(t, "Question", main["@type"])
	assert.Equal(t, "Why?", main["name"])
}

func TestProduct_MetaKeyOrderAndCurrencyFallback(t *testing.T) {
	in := ProductInput{
		Ctx:          model.PageContext{URL: "https://acme.test/widget/"},
		ShopCurrency: "USD",
		Post: &source.Post{
			Title: "Widget",
			Meta: map[string]string{
				"_regular_price": "29.99",
				"_price":         "19.99",
				"_stock_status":  "instock",
			},
		},
	}

	n := Product(in)

	offers := n["offers"].(model.Node)
	assert.Equal(t, "19.99", offers["price"], "_price outranks _regular_price")
	assert.Equal(t, "USD", offers["priceCurrency"], "shop currency fills the gap")
	assert.Equal(t, "https://schema.org/InStock", offers["availability"])
}

func TestProduct_NoPriceMeansNoOffers(t *testing.T) {
	in := ProductInput{
		Ctx:  model.PageContext{URL: "https://acme.test/widget/"},
		Post: &source.Post{Title: "Widget", Meta: map[string]string{"brand": "Acme"}},
	}

	n := Product(in)

	_, ok := n["offers"]
	assert.False(t, ok)
	brand := n["brand"].(model.Node)
	assert.Equal(t, "Acme", brand["name"])
}

func TestProduct_AvailabilityVocabulary(t *testing.T) {
	for raw, want := range map[string]string{
		"instock":     "https://schema.org/InStock",
		"OutOfStock":  "https://schema.org/OutOfStock",
		"onbackorder": "https://schema.org/PreOrder",
		"backorder":   "https://schema.org/PreOrder",
	} {
		in := ProductInput{
			Ctx: model.PageContext{URL: "https://acme.test/w/"},
			Post: &source.Post{Title: "W", Meta: map[string]string{
				"price":        "10",
				"availability": raw,
			}},
		}
		offers := Product(in)["offers"].(model.Node)
		assert.Equal(t, want, offers["availability"], "raw %q", raw)
	}
}

func TestBreadcrumbList_SkipsEmptyLabelsKeepsSequence(t *testing.T) {
	crumbs := []source.Crumb{
		{Label: "Home", URL: "https://acme.test/"},
		{Label: "", URL: "https://acme.test/x/"},
		{Label: "News", URL: "https://acme.test/news/"},
	}

	n := BreadcrumbList(crumbs, "https://acme.test/news/item/")

	items := n["itemListElement"].([]model.Node)
	assert.Len(t, items, 2)
	assert.Equal(t, 1, items[0]["position"])
	assert.Equal(t, 2, items[1]["position"])
	assert.Equal(t, "News", items[1]["name"])
	assert.Equal(t, "https://acme.test/news/item/#breadcrumb", n["@id"])
}

func TestArchiveItemList_CapsAtTen(t *testing.T) {
	var entries []source.ListEntry
	for i := 0; i < 15; i++ {
		entries = append(entries, source.ListEntry{Title: "Post", URL: "https://acme.test/p/"})
	}

	n := ArchiveItemList(entries, "News")

	items := n["itemListElement"].([]model.Node)
	assert.Len(t, items, 10)
	assert.Equal(t, 10, items[9]["position"])
}

func TestGeneric_MinimalNode(t *testing.T) {
	ctx := model.PageContext{URL: "https://acme.test/p/", Title: "P"}
	n := Generic("CreativeWork", ctx)

	assert.Equal(t, "CreativeWork", n["@type"])
	assert.Equal(t, model.Ref("https://acme.test/p/#webpage"), n["mainEntityOfPage"])
}
