// Package i18n defines the languages the product speaks and how request
// language values map onto them.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

var supportedTags = []language.Tag{
	language.Finnish,
	language.Swedish,
	language.English,
}

var matcher = language.NewMatcher(supportedTags)

// SupportedTags returns the supported language tags, default first.
func SupportedTags() []language.Tag {
	out := make([]language.Tag, len(supportedTags))
	copy(out, supportedTags)
	return out
}

// DefaultTag returns the default language tag.
func DefaultTag() language.Tag {
	return language.Finnish
}

// ParseTag parses value and reports whether it names a supported language.
// Regional variants collapse onto their base language.
func ParseTag(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return language.Und, false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return language.Und, false
	}
	base, _ := tag.Base()
	for _, supported := range supportedTags {
		supportedBase, _ := supported.Base()
		if base == supportedBase {
			return supported, true
		}
	}
	return language.Und, false
}

// MatchTags picks the best supported tag for an ordered preference list.
func MatchTags(tags []language.Tag) language.Tag {
	if len(tags) == 0 {
		return DefaultTag()
	}
	_, idx, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return DefaultTag()
	}
	return supportedTags[idx]
}

// Code returns the short language code used by the backend's localized
// fields ("fi", "sv", "en").
func Code(tag language.Tag) string {
	base, _ := tag.Base()
	return base.String()
}
