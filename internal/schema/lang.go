package schema

import (
	"strings"

	"golang.org/x/text/language"

	"github.com/aeokit/aeograph/internal/config"
)

// defaultLanguageTag is the final fallback when nothing resolves at all.
const defaultLanguageTag = "ja-JP"

// regionDefaults supplies a region for common language codes configured
// without one.
var regionDefaults = map[string]string{
	"ja": "JP",
	"en": "US",
	"de": "DE",
	"fr": "FR",
	"es": "ES",
	"it": "IT",
	"pt": "BR",
	"zh": "CN",
	"ko": "KR",
	"ru": "RU",
}

// resolveLanguage picks the site's primary language tag: first configured
// language, then the legacy single-language option, then the blog language,
// each normalized to ll-RR form.
func resolveLanguage(opts *config.Options, blogLanguage string) string {
	candidates := make([]string, 0, 3)
	if len(opts.Languages) > 0 {
		candidates = append(candidates, opts.Languages[0])
	}
	candidates = append(candidates, opts.Language, blogLanguage)

	for _, c := range candidates {
		if tag, ok := normalizeLanguageTag(c); ok {
			return tag
		}
	}
	return defaultLanguageTag
}

func normalizeLanguageTag(raw string) (string, bool) {
	raw = strings.ReplaceAll(strings.TrimSpace(raw), "_", "-")
	if raw == "" {
		return "", false
	}
	tag, err := language.Parse(raw)
	if err != nil {
		return "", false
	}
	base, conf := tag.Base()
	if conf == language.No {
		return "", false
	}

	if region, conf := tag.Region(); conf == language.Exact {
		return base.String() + "-" + region.String(), true
	}
	if rr, ok := regionDefaults[base.String()]; ok {
		return base.String() + "-" + rr, true
	}
	if region, conf := tag.Region(); conf > language.No {
		return base.String() + "-" + region.String(), true
	}
	return "", false
}
