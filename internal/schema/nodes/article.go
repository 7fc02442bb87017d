package nodes

import (
	"regexp"
	"strings"

	"github.com/aeokit/aeograph/internal/schema/model"
	"github.com/aeokit/aeograph/internal/schema/source"
)

// ArticleInput carries everything the Article-family builder reads.
type ArticleInput struct {
	// Type is Article, BlogPosting or NewsArticle.
	Type        string
	Post        *source.Post
	PageURL     string
	PublisherID string
	Language    string
}

const headlineWordLimit = 12

// Article builds an Article-family node. The gate is all-or-nothing: a
// missing headline, author, date, body, publisher or image yields no node
// rather than a partially filled one.
func Article(in ArticleInput) model.Node {
	if in.Post == nil {
		return nil
	}
	p := in.Post

	headline := strings.TrimSpace(p.Title)
	if headline == "" {
		headline = leadingWords(p.Content, headlineWordLimit)
	}
	author := strings.TrimSpace(p.AuthorName)
	if author == "" {
		author = strings.TrimSpace(p.AuthorDisplay)
	}
	body := strings.TrimSpace(p.Excerpt)
	if body == "" {
		body = strings.TrimSpace(p.Content)
	}

	if headline == "" || author == "" ||
		p.Published == "" || p.Modified == "" ||
		body == "" || in.PublisherID == "" ||
		p.Image == nil || p.Image.URL == "" {
		return nil
	}

	n := model.Node{
		"@type":    in.Type,
		"headline": headline,
		"author": model.Node{
			"@type": "Person",
			"name":  author,
		},
		"datePublished":    p.Published,
		"dateModified":     p.Modified,
		"publisher":        model.Ref(in.PublisherID),
		"mainEntityOfPage": model.Ref(model.WebPageID(in.PageURL)),
		"image": model.Node{
			"@type": "ImageObject",
			"url":   p.Image.URL,
		},
	}
	if desc := strings.TrimSpace(p.Excerpt); desc != "" {
		n["description"] = desc
	}
	n.SetNonEmpty("inLanguage", in.Language)
	return n
}

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// leadingWords strips markup from content and returns its first limit words,
// ellipsized when truncated.
func leadingWords(content string, limit int) string {
	text := strings.TrimSpace(tagPattern.ReplaceAllString(content, " "))
	if text == "" {
		return ""
	}
	words := strings.Fields(text)
	if len(words) <= limit {
		return strings.Join(words, " ")
	}
	return strings.Join(words[:limit], " ") + "…"
}
