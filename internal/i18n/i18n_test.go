package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestNewEnglishIsIdentity(t *testing.T) {
	for _, lang := range []string{"", "en", "en-US", "fr", "zz"} {
		tr := New(lang)
		assert.Equal(t, MsgHardToRead, tr.T(MsgHardToRead), "lang=%q", lang)
		assert.Equal(t, "unknown key", tr.T("unknown key"), "lang=%q", lang)
	}
}

func TestNewJapanese(t *testing.T) {
	tr := New("ja-JP,ja;q=0.9,en;q=0.8")
	assert.Equal(t, "この色の組み合わせは読みにくい可能性があります。", tr.T(MsgHardToRead))
	assert.Contains(t, tr.T(MsgTryDarkerBackground), "背景色を暗く")
	assert.Contains(t, tr.T(MsgTryBrighterBackground), "背景色を明るく")
}

func TestMatch(t *testing.T) {
	assert.Equal(t, language.Japanese, Match("ja"))
	assert.Equal(t, language.English, Match("de-DE"))
	assert.Equal(t, language.English, Match(" "))
	assert.Equal(t, []string{"en", "ja"}, Supported())
}
