package language

import (
	"context"

	bcp47 "golang.org/x/text/language"
)

// Tag returns the BCP 47 tag closest to l. [All] maps to [bcp47.Und].
//
// Tags do not always agree with [Language.ShortCode]: Vietnamese is "vi" and
// Greek is "el", since Steam's codes for both are not valid subtags.
func (l Language) Tag() bcp47.Tag {
	if !l.Valid() {
		return bcp47.Und
	}
	return catalog[l].tag
}

// negotiable lists the languages a matcher may pick, English first so that it
// is the fallback when nothing matches.
var negotiable, matcher = newMatcher()

func newMatcher() ([]Language, bcp47.Matcher) {
	langs := []Language{English}
	for i := range catalog {
		l := Language(i)
		if l == All || l == English {
			continue
		}
		langs = append(langs, l)
	}

	tags := make([]bcp47.Tag, len(langs))
	for i, l := range langs {
		tags[i] = l.Tag()
	}
	return langs, bcp47.NewMatcher(tags)
}

// Negotiate picks the catalogued language that best serves an Accept-Language
// header value. It returns [English] when the header is empty, malformed, or
// names nothing Steam supports.
func Negotiate(acceptLanguage string) Language {
	preferred, _, err := bcp47.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(preferred) == 0 {
		return English
	}

	_, idx, confidence := matcher.Match(preferred...)
	if confidence == bcp47.No {
		return English
	}
	return negotiable[idx]
}

type contextKey struct{}

// NewContext returns a copy of ctx carrying the caller's preferred language.
func NewContext(ctx context.Context, l Language) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// FromContext returns the language stored by [NewContext]. The boolean is
// false when none was stored, which keeps [All] distinguishable from unset.
func FromContext(ctx context.Context) (Language, bool) {
	l, ok := ctx.Value(contextKey{}).(Language)
	return l, ok
}
