package nodes

import (
	"strings"

	"github.com/aeokit/aeograph/internal/schema/model"
	"github.com/aeokit/aeograph/internal/schema/source"
)

// Ordered candidate meta keys per product field. The first present key wins.
var (
	priceKeys        = []string{"price", "_price", "_regular_price", "product_price"}
	currencyKeys     = []string{"currency", "_currency", "price_currency"}
	availabilityKeys = []string{"availability", "_stock_status", "stock_status"}
	brandKeys        = []string{"brand", "_brand", "product_brand"}
	skuKeys          = []string{"sku", "_sku"}
	ratingValueKeys  = []string{"rating_value", "_wc_average_rating", "average_rating"}
	ratingCountKeys  = []string{"rating_count", "_wc_rating_count", "review_count"}
	reviewBodyKeys   = []string{"review_body", "review"}
	reviewAuthorKeys = []string{"review_author", "reviewer"}
)

// availabilityVocab normalizes stock-status strings to schema.org item
// availability values.
var availabilityVocab = map[string]string{
	"instock":     "https://schema.org/InStock",
	"outofstock":  "https://schema.org/OutOfStock",
	"onbackorder": "https://schema.org/PreOrder",
	"backorder":   "https://schema.org/PreOrder",
}

// ProductInput carries the generic product builder's inputs. ShopCurrency is
// the commerce collaborator's currency, used when the meta carries a price
// but no currency key.
type ProductInput struct {
	Post         *source.Post
	Ctx          model.PageContext
	ShopCurrency string
}

// Product builds a Product node from structured meta. Offers, aggregateRating
// and review sub-objects appear only when their minimum required fields are
// all present.
func Product(in ProductInput) model.Node {
	if in.Post == nil {
		return nil
	}
	p := in.Post

	name := strings.TrimSpace(p.Title)
	if name == "" {
		return nil
	}

	n := model.Node{
		"@type": "Product",
		"name":  name,
		"url":   in.Ctx.URL,
	}
	if desc := strings.TrimSpace(p.Excerpt); desc != "" {
		n["description"] = desc
	}
	if p.Image != nil && p.Image.URL != "" {
		n["image"] = p.Image.URL
	}
	if brand := metaFirst(p.Meta, brandKeys); brand != "" {
		n["brand"] = model.Node{"@type": "Brand", "name": brand}
	}
	n.SetNonEmpty("sku", metaFirst(p.Meta, skuKeys))

	if offers := productOffers(p.Meta, in.Ctx.URL, in.ShopCurrency); offers != nil {
		n["offers"] = offers
	}
	if rating := aggregateRating(p.Meta); rating != nil {
		n["aggregateRating"] = rating
	}
	if review := productReview(p.Meta); review != nil {
		n["review"] = review
	}
	return n
}

// productOffers requires a price; the currency falls back to the shop
// currency collaborator when no meta key supplies one.
func productOffers(meta map[string]string, url, shopCurrency string) model.Node {
	price := metaFirst(meta, priceKeys)
	if price == "" {
		return nil
	}
	currency := metaFirst(meta, currencyKeys)
	if currency == "" {
		currency = shopCurrency
	}

	offer := model.Node{
		"@type": "Offer",
		"price": price,
		"url":   url,
	}
	offer.SetNonEmpty("priceCurrency", currency)

	if raw := metaFirst(meta, availabilityKeys); raw != "" {
		if mapped, ok := availabilityVocab[strings.ToLower(strings.TrimSpace(raw))]; ok {
			offer["availability"] = mapped
		}
	}
	return offer
}

func aggregateRating(meta map[string]string) model.Node {
	value := metaFirst(meta, ratingValueKeys)
	count := metaFirst(meta, ratingCountKeys)
	if value == "" || count == "" {
		return nil
	}
	return model.Node{
		"@type":       "AggregateRating",
		"ratingValue": value,
		"reviewCount": count,
	}
}

func productReview(meta map[string]string) model.Node {
	body := metaFirst(meta, reviewBodyKeys)
	author := metaFirst(meta, reviewAuthorKeys)
	if body == "" || author == "" {
		return nil
	}
	return model.Node{
		"@type":      "Review",
		"reviewBody": body,
		"author":     model.Node{"@type": "Person", "name": author},
	}
}

func metaFirst(meta map[string]string, keys []string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(meta[k]); v != "" {
			return v
		}
	}
	return ""
}
