// Package i18n holds the supported locale set, the per-request locale
// resolution rules and the translated message catalog. The active locale is
// threaded explicitly through context.Context; there is no mutable global
// "current language" state.
package i18n

import (
	"context"

	"golang.org/x/text/language"
)

// Locale is a supported display language code.
type Locale string

const (
	LocaleDE Locale = "de"
	LocaleEN Locale = "en"

	// DefaultLocale is the fallback when no source yields a supported value.
	DefaultLocale = LocaleDE
)

// SupportedLocales in presentation order. The first entry is the default.
var SupportedLocales = []Locale{LocaleDE, LocaleEN}

// FromString validates a raw code against the supported set.
func FromString(raw string) (Locale, bool) {
	for _, loc := range SupportedLocales {
		if string(loc) == raw {
			return loc, true
		}
	}
	return "", false
}

// MatchHeader picks the best supported locale from an Accept-Language
// header. Region subtags are stripped ("de-AT" counts as "de") and entries
// are considered in descending quality order; ties keep header order, which
// is what language.ParseAcceptLanguage already guarantees.
func MatchHeader(header string) (Locale, bool) {
	if header == "" {
		return "", false
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil {
		return "", false
	}
	for _, tag := range tags {
		base, _ := tag.Base()
		if loc, ok := FromString(base.String()); ok {
			return loc, true
		}
	}
	return "", false
}

type localeCtxKey struct{}

// WithLocale returns a child context carrying the resolved locale.
func WithLocale(ctx context.Context, loc Locale) context.Context {
	return context.WithValue(ctx, localeCtxKey{}, loc)
}

// FromContext returns the locale resolved for this request, or the default
// when none was attached.
func FromContext(ctx context.Context) Locale {
	if loc, ok := ctx.Value(localeCtxKey{}).(Locale); ok {
		return loc
	}
	return DefaultLocale
}
