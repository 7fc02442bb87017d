package nodes

import (
	"strconv"
	"strings"

	"github.com/aeokit/aeograph/internal/config"
	"github.com/aeokit/aeograph/internal/schema/model"
)

// LocalBusinessInput carries every value the LocalBusiness builder reads. The
// orchestrator fills it from options and the hours builder.
type LocalBusinessInput struct {
	IDs             model.GraphIDs
	SiteURL         string
	Name            string
	Subtype         string
	HasOrganization bool
	HasImage        bool
	SameAs          []string
	Telephone       string
	Address         config.Address
	AreaServed      []string
	Geo             config.Geo
	OpeningHours    []model.OpeningHoursSpec
	MapURL          string
	PriceRange      string
	Payments        string
	Reservations    bool
}

// LocalBusiness builds the local-business node. The @type defaults to
// LocalBusiness and may be overridden by a configured subtype. When an
// Organization sibling exists the node back-references it.
func LocalBusiness(in LocalBusinessInput) model.Node {
	typ := "LocalBusiness"
	if in.Subtype != "" {
		typ = in.Subtype
	}

	n := model.Node{
		"@type": typ,
		"@id":   in.IDs.LocalBusiness,
		"name":  in.Name,
		"url":   in.SiteURL,
	}
	if in.HasOrganization {
		n["parentOrganization"] = model.Ref(in.IDs.Organization)
		n["branchOf"] = model.Ref(in.IDs.Organization)
	}
	if in.HasImage {
		n["image"] = model.Ref(in.IDs.LocalBusinessImage)
	}
	if len(in.SameAs) > 0 {
		n["sameAs"] = in.SameAs
	}
	n.SetNonEmpty("telephone", in.Telephone)

	if addr := postalAddress(in.Address); addr != nil {
		n["address"] = addr
	}
	if areas := areaServed(in.AreaServed); len(areas) > 0 {
		n["areaServed"] = areas
	}
	if geo := geoCoordinates(in.Geo); geo != nil {
		n["geo"] = geo
	}
	if len(in.OpeningHours) > 0 {
		specs := make([]model.Node, 0, len(in.OpeningHours))
		for _, s := range in.OpeningHours {
			specs = append(specs, s.Node())
		}
		n["openingHoursSpecification"] = specs
	}
	n.SetNonEmpty("hasMap", in.MapURL)
	n.SetNonEmpty("priceRange", in.PriceRange)

	if payments := splitPayments(in.Payments); len(payments) > 0 {
		n["paymentAccepted"] = payments
	}
	if in.Reservations {
		n["acceptsReservations"] = true
	}
	return n
}

func postalAddress(a config.Address) model.Node {
	if a.Street == "" && a.Locality == "" && a.Region == "" && a.Postal == "" && a.Country == "" {
		return nil
	}
	n := model.Node{"@type": "PostalAddress"}
	n.SetNonEmpty("streetAddress", a.Street)
	n.SetNonEmpty("addressLocality", a.Locality)
	n.SetNonEmpty("addressRegion", a.Region)
	n.SetNonEmpty("postalCode", a.Postal)
	n.SetNonEmpty("addressCountry", a.Country)
	return n
}

func areaServed(codes []string) []model.Node {
	var out []model.Node
	for _, code := range codes {
		code = strings.TrimSpace(code)
		if code == "" {
			continue
		}
		out = append(out, model.Node{
			"@type":      "Country",
			"identifier": code,
			"name":       code,
		})
	}
	return out
}

// geoCoordinates parses the configured latitude/longitude strings. Non-numeric
// or out-of-range coordinates drop the geo node silently.
func geoCoordinates(g config.Geo) model.Node {
	lat, err := strconv.ParseFloat(strings.TrimSpace(g.Latitude), 64)
	if err != nil || lat < -90 || lat > 90 {
		return nil
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(g.Longitude), 64)
	if err != nil || lng < -180 || lng > 180 {
		return nil
	}
	return model.Node{
		"@type":     "GeoCoordinates",
		"latitude":  lat,
		"longitude": lng,
	}
}

func splitPayments(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// LocalBusinessImage builds the ImageObject node the business image reference
// points at.
func LocalBusinessImage(imageURL string, ids model.GraphIDs) model.Node {
	if imageURL == "" {
		return nil
	}
	return model.Node{
		"@type": "ImageObject",
		"@id":   ids.LocalBusinessImage,
		"url":   imageURL,
	}
}
