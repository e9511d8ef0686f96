// Package i18n resolves the request language and exposes catalog-backed
// printers to web handlers and templates.
package i18n

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	platformi18n "github.com/tilavaraus/tilavaraus-web/internal/platform/i18n"
	"github.com/tilavaraus/tilavaraus-web/internal/platform/i18n/catalog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// LangCookieName stores the user's language preference.
	LangCookieName = "tilavaraus_lang"
)

// Localizer provides translated strings.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// LanguageOption represents a supported language option in UI surfaces.
type LanguageOption struct {
	Tag    string
	Label  string
	URL    string
	Active bool
}

// Catalog messages register with x/text/message when the catalog package
// initializes; referencing Default keeps that dependency explicit.
var _ = catalog.Default()

// Printer returns a message printer for the supplied tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

// ResolveTag determines the best language tag for the request.
// The bool indicates whether the lang query param should be persisted as a cookie.
func ResolveTag(r *http.Request) (language.Tag, bool) {
	if r == nil {
		return platformi18n.DefaultTag(), false
	}
	if r.URL != nil {
		if langValue := strings.TrimSpace(r.URL.Query().Get(LangParam)); langValue != "" {
			if tag, ok := platformi18n.ParseTag(langValue); ok {
				return tag, true
			}
		}
	}
	if cookie, err := r.Cookie(LangCookieName); err == nil {
		if tag, ok := platformi18n.ParseTag(cookie.Value); ok {
			return tag, false
		}
	}
	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil {
			return platformi18n.MatchTags(tags), false
		}
	}
	return platformi18n.DefaultTag(), false
}

// SetLanguageCookie persists the selected language on the response.
func SetLanguageCookie(w http.ResponseWriter, tag language.Tag) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    platformi18n.Code(tag),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}

// ResolveLocalizer resolves the request language, persists an explicit
// ?lang= choice, and returns a printer with the short language code.
// resolveLanguage, when set, overrides request-derived resolution.
func ResolveLocalizer(w http.ResponseWriter, r *http.Request, resolveLanguage func(*http.Request) string) (Localizer, string) {
	tag, persist := ResolveTag(r)
	if persist {
		SetLanguageCookie(w, tag)
	}
	if resolveLanguage != nil && r != nil {
		if resolved, ok := platformi18n.ParseTag(resolveLanguage(r)); ok {
			tag = resolved
		}
	}
	return Printer(tag), platformi18n.Code(tag)
}

// NormalizeTag coerces unknown tags to the default supported language.
func NormalizeTag(value string) language.Tag {
	if tag, ok := platformi18n.ParseTag(value); ok {
		return tag
	}
	return platformi18n.DefaultTag()
}

// LanguageOptions lists the supported languages with switch URLs for the
// current page and the active selection marked.
func LanguageOptions(activeLang string, path string, rawQuery string, loc Localizer) []LanguageOption {
	active := NormalizeTag(activeLang)
	supported := platformi18n.SupportedTags()
	options := make([]LanguageOption, 0, len(supported))
	for _, tag := range supported {
		code := platformi18n.Code(tag)
		label := code
		if loc != nil {
			if resolved := strings.TrimSpace(loc.Sprintf("common.language." + code)); resolved != "" {
				label = resolved
			}
		}
		options = append(options, LanguageOption{
			Tag:    code,
			Label:  label,
			URL:    LanguageURL(path, rawQuery, code),
			Active: tag == active,
		})
	}
	return options
}

// LanguageURL returns the current URL with the language param updated.
func LanguageURL(path string, rawQuery string, tag string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		path = "/"
	}
	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		query = url.Values{}
	}
	query.Set(LangParam, tag)
	return (&url.URL{Path: path, RawQuery: query.Encode()}).String()
}
