// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package language defines the closed catalog of languages understood by the
Steam review API and the codec that converts them to and from text.

Every [Language] has three string projections:

  - Wire form: the lowercase token Steam uses in queries and responses ("schinese").
  - Short code: a locale-style abbreviation ("zh-CN").
  - Native name: the language's name for itself ("简体中文").

[Parse] accepts any of the three and the wire form is the only rendering used
on the wire or in logs.

The catalog is not exhaustive: Valve adds languages from time to time, so
callers must not assume a switch over the constants covers every value.
*/
package language

import (
	"errors"
	"fmt"
)

// Language is a language listed by the Steam web API.
//
// The zero value is [All], which is also what Steam assumes when the language
// parameter is omitted. Values are ordered by declaration.
type Language uint8

// Source: https://partner.steamgames.com/doc/store/localization
const (
	All Language = iota
	Arabic
	Bulgarian
	SimplifiedChinese
	TraditionalChinese
	Czech
	Danish
	Dutch
	English
	Finnish
	French
	German
	Greek
	Hungarian
	Italian
	Japanese
	Korean
	Norwegian
	Polish
	Portuguese
	PortugueseBrazilian
	Romanian
	Russian
	SpanishSpain
	SpanishLatAm
	Swedish
	Thai
	Turkish
	Ukrainian
	Vietnamese
)

// ErrUnknownLanguage is returned when a string matches no projection of any
// catalogued language.
//
// It deliberately does not carry the offending input.
var ErrUnknownLanguage = errors.New("tried to parse an unlisted language; " +
	"please report it, Valve has probably added new languages since the catalog was last updated")

// Valid reports whether l is a catalogued language.
func (l Language) Valid() bool {
	return int(l) < len(catalog)
}

// WireForm returns the token Steam uses for l in queries and responses.
func (l Language) WireForm() string {
	if !l.Valid() {
		return ""
	}
	return catalog[l].wire
}

// ShortCode returns the locale-style code of l.
//
// Greek is "el el", embedded space included. That is what Steam publishes.
func (l Language) ShortCode() string {
	if !l.Valid() {
		return ""
	}
	return catalog[l].short
}

// NativeName returns the name of l written in l.
func (l Language) NativeName() string {
	if !l.Valid() {
		return ""
	}
	return catalog[l].native
}

// String implements [fmt.Stringer] using the wire form.
func (l Language) String() string {
	if !l.Valid() {
		return fmt.Sprintf("Language(%d)", uint8(l))
	}
	return catalog[l].wire
}

// Parse resolves s to a [Language].
//
// # Matching
//
// Wire forms are tried first, then native names, then short codes. Matching is
// exact: no case folding, no trimming. When a projection is shared the
// language declared first wins.
//
// # Native Names
//
// Native names are matched as proper UTF-8, e.g. "Français". Older clients
// that sent mangled names with "?" in place of non-ASCII bytes, such as
// "Fran??ais", are no longer recognised and must send the wire form instead.
func Parse(s string) (Language, error) {
	if l, ok := byWire[s]; ok {
		return l, nil
	}
	if l, ok := byNative[s]; ok {
		return l, nil
	}
	if l, ok := byShort[s]; ok {
		return l, nil
	}
	return All, ErrUnknownLanguage
}

// MustParse is like [Parse] but panics on an unknown token.
// It is meant for package-level variables and tests.
func MustParse(s string) Language {
	l, err := Parse(s)
	if err != nil {
		panic("language: MustParse(" + s + "): " + err.Error())
	}
	return l
}

// Languages returns every catalogued language in declaration order.
// The returned slice is a fresh copy.
func Languages() []Language {
	out := make([]Language, len(catalog))
	for i := range catalog {
		out[i] = Language(i)
	}
	return out
}
