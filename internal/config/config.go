package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type SocialLink struct {
	Network string `toml:"network" json:"network"`
	Value   string `toml:"value" json:"value"`
}

type Address struct {
	Street   string `toml:"street" json:"street"`
	Locality string `toml:"locality" json:"locality"`
	Region   string `toml:"region" json:"region"`
	Postal   string `toml:"postal" json:"postal"`
	Country  string `toml:"country" json:"country"`
}

type Geo struct {
	Latitude  string `toml:"latitude" json:"latitude"`
	Longitude string `toml:"longitude" json:"longitude"`
}

// HoursRange is one opens/closes pair.
type HoursRange struct {
	Opens  string `toml:"opens" json:"opens"`
	Closes string `toml:"closes" json:"closes"`
}

// HoursSlot is one raw opening-hours entry. It carries either a single
// opens/closes pair inline or a list of ranges under Slots.
type HoursSlot struct {
	DayKey string       `toml:"day_key" json:"day_key"`
	Opens  string       `toml:"opens" json:"opens"`
	Closes string       `toml:"closes" json:"closes"`
	Slots  []HoursRange `toml:"slots" json:"slots,omitempty"`
}

// TypeSettings are per-post-type / per-taxonomy overrides. SchemaType uses
// "auto"/empty to defer to the global default; the nil bool pointers defer to
// the global flags.
type TypeSettings struct {
	SchemaType        string `toml:"schema_type" json:"schema_type"`
	BreadcrumbEnabled *bool  `toml:"breadcrumb_enabled" json:"breadcrumb_enabled,omitempty"`
	FAQEnabled        *bool  `toml:"faq_enabled" json:"faq_enabled,omitempty"`
	FAQQuestionClass  string `toml:"faq_question_class" json:"faq_question_class"`
	FAQAnswerClass    string `toml:"faq_answer_class" json:"faq_answer_class"`
}

// Options is the flat site configuration the graph core reads. It is treated
// as immutable for the duration of one build.
type Options struct {
	SiteURL     string `toml:"site_url" json:"site_url"`
	CompanyName string `toml:"company_name" json:"company_name"`
	// EntityType selects the publisher identity: "Organization" or
	// "LocalBusiness".
	EntityType string `toml:"entity_type" json:"entity_type"`
	LogoURL    string `toml:"logo_url" json:"logo_url"`

	SocialLinks []SocialLink `toml:"social_links" json:"social_links"`

	Telephone           string   `toml:"telephone" json:"telephone"`
	Address             Address  `toml:"address" json:"address"`
	AreaServed          []string `toml:"area_served" json:"area_served"`
	Geo                 Geo      `toml:"geo" json:"geo"`
	MapURL              string   `toml:"map_url" json:"map_url"`
	PriceRange          string   `toml:"price_range" json:"price_range"`
	PaymentsAccepted    string   `toml:"payments_accepted" json:"payments_accepted"`
	AcceptsReservations bool     `toml:"accepts_reservations" json:"accepts_reservations"`
	// BusinessType overrides the default LocalBusiness @type with a subtype
	// such as "Restaurant" or "Dentist".
	BusinessType string `toml:"business_type" json:"business_type"`

	OpeningHours   []HoursSlot `toml:"opening_hours" json:"opening_hours"`
	HolidayEnabled bool        `toml:"holiday_enabled" json:"holiday_enabled"`
	// HolidayMode is one of "custom", "weekday", "weekend".
	HolidayMode string `toml:"holiday_mode" json:"holiday_mode"`

	// Languages is the configured site language list; the first entry wins.
	// Language is the legacy single-language option kept for old installs.
	Languages []string `toml:"languages" json:"languages"`
	Language  string   `toml:"language" json:"language"`

	// ContentModel is the global default content schema type ("Article",
	// "BlogPosting", "NewsArticle", ...).
	ContentModel string `toml:"content_model" json:"content_model"`
	// ContentTypeSettings is keyed by post-type or taxonomy slug.
	ContentTypeSettings map[string]TypeSettings `toml:"content_type_settings" json:"content_type_settings"`

	BreadcrumbEnabled bool   `toml:"breadcrumb_enabled" json:"breadcrumb_enabled"`
	FAQEnabled        bool   `toml:"faq_enabled" json:"faq_enabled"`
	FAQQuestionClass  string `toml:"faq_question_class" json:"faq_question_class"`
	FAQAnswerClass    string `toml:"faq_answer_class" json:"faq_answer_class"`

	SkipLocalBusinessIfIncomplete bool `toml:"skip_local_business_if_incomplete" json:"skip_local_business_if_incomplete"`

	// SearchURLTemplate is the site search endpoint; "{search_term_string}"
	// marks the query placeholder. Empty derives "?s={search_term_string}"
	// from the site URL.
	SearchURLTemplate string `toml:"search_url_template" json:"search_url_template"`
}

// TypeSettingsFor returns the override block for a post-type or taxonomy slug.
func (o *Options) TypeSettingsFor(slug string) (TypeSettings, bool) {
	ts, ok := o.ContentTypeSettings[slug]
	return ts, ok
}

func Load(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	var opts Options
	if err := toml.Unmarshal(data, &opts); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	return &opts, nil
}
