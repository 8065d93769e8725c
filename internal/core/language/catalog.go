package language

import bcp47 "golang.org/x/text/language"

// entry holds every projection of one language. Adding a language means
// adding one entry here, at the index of its constant.
type entry struct {
	wire   string
	short  string
	native string
	tag    bcp47.Tag
}

var catalog = [...]entry{
	All:                 {wire: "all", short: "all", native: "All", tag: bcp47.Und},
	Arabic:              {wire: "arabic", short: "ar", native: "العربية", tag: bcp47.Arabic},
	Bulgarian:           {wire: "bulgarian", short: "bg", native: "български език", tag: bcp47.Bulgarian},
	SimplifiedChinese:   {wire: "schinese", short: "zh-CN", native: "简体中文", tag: bcp47.MustParse("zh-CN")},
	TraditionalChinese:  {wire: "tchinese", short: "zh-TW", native: "繁體中文", tag: bcp47.MustParse("zh-TW")},
	Czech:               {wire: "czech", short: "cs", native: "čeština", tag: bcp47.Czech},
	Danish:              {wire: "danish", short: "da", native: "Dansk", tag: bcp47.Danish},
	Dutch:               {wire: "dutch", short: "nl", native: "Nederlands", tag: bcp47.Dutch},
	English:             {wire: "english", short: "en", native: "English", tag: bcp47.English},
	Finnish:             {wire: "finnish", short: "fi", native: "Suomi", tag: bcp47.Finnish},
	French:              {wire: "french", short: "fr", native: "Français", tag: bcp47.French},
	German:              {wire: "german", short: "de", native: "Deutsch", tag: bcp47.German},
	Greek:               {wire: "greek", short: "el el", native: "Ελληνικά", tag: bcp47.Greek},
	Hungarian:           {wire: "hungarian", short: "hu", native: "Magyar", tag: bcp47.Hungarian},
	Italian:             {wire: "italian", short: "it", native: "Italiano", tag: bcp47.Italian},
	Japanese:            {wire: "japanese", short: "ja", native: "日本語", tag: bcp47.Japanese},
	Korean:              {wire: "koreana", short: "ko", native: "한국어", tag: bcp47.Korean},
	Norwegian:           {wire: "norwegian", short: "no", native: "Norsk", tag: bcp47.Norwegian},
	Polish:              {wire: "polish", short: "pl", native: "Polski", tag: bcp47.Polish},
	Portuguese:          {wire: "portuguese", short: "pt", native: "Português", tag: bcp47.EuropeanPortuguese},
	PortugueseBrazilian: {wire: "brazilian", short: "pt-BR", native: "Português-Brasil", tag: bcp47.BrazilianPortuguese},
	Romanian:            {wire: "romanian", short: "ro", native: "Română", tag: bcp47.Romanian},
	Russian:             {wire: "russian", short: "ru", native: "Русский", tag: bcp47.Russian},
	SpanishSpain:        {wire: "spanish", short: "es", native: "Español-España", tag: bcp47.EuropeanSpanish},
	SpanishLatAm:        {wire: "latam", short: "es-419", native: "Español-Latinoamérica", tag: bcp47.LatinAmericanSpanish},
	Swedish:             {wire: "swedish", short: "sv", native: "Svenska", tag: bcp47.Swedish},
	Thai:                {wire: "thai", short: "th", native: "ไทย", tag: bcp47.Thai},
	Turkish:             {wire: "turkish", short: "tr", native: "Türkçe", tag: bcp47.Turkish},
	Ukrainian:           {wire: "ukrainian", short: "uk", native: "Українська", tag: bcp47.Ukrainian},
	Vietnamese:          {wire: "vietnamese", short: "vn", native: "Tiếng Việt", tag: bcp47.Vietnamese},
}

// Reverse lookups, built once. First declaration wins on a shared key.
var (
	byWire   = index(func(e entry) string { return e.wire })
	byNative = index(func(e entry) string { return e.native })
	byShort  = index(func(e entry) string { return e.short })
)

func index(key func(entry) string) map[string]Language {
	m := make(map[string]Language, len(catalog))
	for i, e := range catalog {
		k := key(e)
		if _, taken := m[k]; taken {
			continue
		}
		m[k] = Language(i)
	}
	return m
}
