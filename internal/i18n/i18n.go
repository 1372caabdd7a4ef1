// Package i18n looks up user-facing strings. Message keys are the English
// text itself, so an unknown language degrades to the key.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

const (
	MsgHardToRead = "This color combination may be hard for people to read."

	MsgTryDarkerBackground = "This color combination may be hard for people to read. Try using a darker background color and/or a brighter text color."

	MsgTryBrighterBackground = "This color combination may be hard for people to read. Try using a brighter background color and/or a darker text color."
)

var supported = []language.Tag{language.English, language.Japanese}

var translations = map[language.Tag]map[string]string{
	language.Japanese: {
		MsgHardToRead:            "この色の組み合わせは読みにくい可能性があります。",
		MsgTryDarkerBackground:   "この色の組み合わせは読みにくい可能性があります。背景色を暗くするか、文字色を明るくしてみてください。",
		MsgTryBrighterBackground: "この色の組み合わせは読みにくい可能性があります。背景色を明るくするか、文字色を暗くしてみてください。",
	},
}

var (
	builder = newCatalog()
	matcher = language.NewMatcher(supported)
)

func newCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for _, key := range []string{MsgHardToRead, MsgTryDarkerBackground, MsgTryBrighterBackground} {
		_ = b.SetString(language.English, key, key)
	}
	for tag, entries := range translations {
		for key, text := range entries {
			_ = b.SetString(tag, key, text)
		}
	}
	return b
}

// Translator resolves message keys for one language.
type Translator interface {
	T(key string) string
}

// Identity returns keys unchanged.
type Identity struct{}

func (Identity) T(key string) string { return key }

type printer struct {
	p *message.Printer
}

func (p *printer) T(key string) string {
	return p.p.Sprintf(key)
}

// New returns a Translator for lang, which may be a bare tag ("ja") or an
// Accept-Language value ("ja-JP,ja;q=0.9,en;q=0.8"). Empty or unsupported
// values fall back to English.
func New(lang string) Translator {
	tag := Match(lang)
	if tag == language.English {
		return Identity{}
	}
	return &printer{p: message.NewPrinter(tag, message.Catalog(builder))}
}

// Match picks the closest supported language for lang.
func Match(lang string) language.Tag {
	lang = strings.TrimSpace(lang)
	if lang == "" {
		return language.English
	}
	_, idx := language.MatchStrings(matcher, lang)
	return supported[idx]
}

// Supported lists the languages with a translation catalog.
func Supported() []string {
	out := make([]string, len(supported))
	for i, tag := range supported {
		out[i] = tag.String()
	}
	return out
}
