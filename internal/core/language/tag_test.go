package language_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	bcp47 "golang.org/x/text/language"

	"github.com/taibuivan/steamreviews/internal/core/language"
)

func TestTag(t *testing.T) {
	tests := []struct {
		lang     language.Language
		expected string
	}{
		{language.All, "und"},
		{language.English, "en"},
		{language.Greek, "el"},
		{language.Vietnamese, "vi"},
		{language.SimplifiedChinese, "zh-CN"},
		{language.PortugueseBrazilian, "pt-BR"},
		{language.SpanishLatAm, "es-419"},
	}

	for _, tt := range tests {
		t.Run(tt.lang.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.lang.Tag().String())
		})
	}

	assert.Equal(t, bcp47.Und, language.Language(250).Tag())
}

/*
TestNegotiate checks Accept-Language matching against the catalog.
*/
func TestNegotiate(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		expected language.Language
	}{
		{"empty", "", language.English},
		{"exact", "ja", language.Japanese},
		{"regional", "de-DE,de;q=0.9", language.German},
		{"quality_order", "fr;q=0.5, ko", language.Korean},
		{"traditional_chinese", "zh-TW", language.TraditionalChinese},
		{"unsupported", "sw", language.English},
		{"malformed", "a=b=c;;", language.English},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, language.Negotiate(tt.header))
		})
	}
}
