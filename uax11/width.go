package uax11

import (
	"unicode"
	"unicode/utf8"

	jj "github.com/cloudfoundry/jibber_jabber"
	"golang.org/x/text/language"
	"golang.org/x/text/width"
)

// Category is one of 6 char categories as defined in UAX#11.
type Category int8

// East_Asian_Width properties
const (
	N  Category = iota // Neutral (Not East Asian)
	A                  // East Asian Ambiguous
	W                  // East Asian Wide
	Na                 // East Asian Narrow
	H                  // East Asian Halfwidth
	F                  // East Asian Fullwidth
)

func (c Category) String() string {
	switch c {
	case N:
		return "N"
	case A:
		return "A"
	case W:
		return "W"
	case Na:
		return "Na"
	case H:
		return "H"
	case F:
		return "F"
	}
	return "?"
}

// WidthCategory returns the width category of a single rune as proposed by the UAX#11
// standard. Categories are looked up in the East Asian Width tables of
// golang.org/x/text/width.
//
// Returns one of N, A, Na, W, H, F.
//
func WidthCategory(r rune) Category {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianAmbiguous:
		return A
	case width.EastAsianWide:
		return W
	case width.EastAsianNarrow:
		return Na
	case width.EastAsianHalfwidth:
		return H
	case width.EastAsianFullwidth:
		return F
	}
	if unicode.Is(_CJK_Default_W, r) {
		return W
	}
	return N
}

// Context represents information about the typesetting environment.
//
// From UAX#11:
// The term context as used here includes extra information such as explicit
// markup, knowledge of the source code page, font information, or language and
// script identification
//
type Context struct {
	ForceEastAsian bool            // force East Asian context
	Script         language.Script // ISO 15924 script identifier
	Locale         string          // ISO 639/3166 locale string
	resolve        resolver
}

// EastAsianContext is a context for East Asian languages.
var EastAsianContext = makeEastAsianContext()

// LatinContext is a context for western languages.
var LatinContext = makeLatinContext()

func makeEastAsianContext() *Context {
	ctx := &Context{
		ForceEastAsian: true,
		Script:         language.MustParseScript("Hant"),
		Locale:         "zh-Hant",
		resolve:        resolveToWide,
	}
	return ctx
}

func makeLatinContext() *Context {
	ctx := &Context{
		ForceEastAsian: false,
		Script:         language.MustParseScript("Latn"),
		Locale:         "en-US",
		resolve:        resolveToNarrow,
	}
	return ctx
}

// IsEastAsian is true if ambiguous characters are wide in this context.
func (ctx *Context) IsEastAsian() bool {
	if ctx == nil {
		return false
	}
	return ctx.ForceEastAsian || ctx.resolver()(A) == W
}

// resolver returns the resolver of a context. Contexts created by clients
// as struct literals get their resolver from their locale. The context is not
// modified, so it may be shared between goroutines.
func (ctx *Context) resolver() resolver {
	if ctx.ForceEastAsian {
		return resolveToWide
	}
	if ctx.resolve != nil {
		return ctx.resolve
	}
	if ctx.Locale == "" {
		return resolveToNarrow
	}
	lang := language.Make(ctx.Locale)
	script, _ := lang.Script()
	return findResolver(script, lang)
}

// Resolved returns a copy of ctx with script and resolver derived from its
// locale, if they are not set yet. Clients should resolve contexts built as
// struct literals before measuring many strings with them.
func (ctx *Context) Resolved() *Context {
	if ctx == nil {
		return nil
	}
	c := *ctx
	if c.resolve == nil && c.Locale != "" {
		lang := language.Make(c.Locale)
		script, _ := lang.Script()
		c.Script = script
		c.resolve = findResolver(script, lang)
	}
	return &c
}

type resolver func(Category) Category

func resolveToNarrow(cat Category) Category {
	if cat == A {
		return Na
	}
	return cat
}

func resolveToWide(cat Category) Category {
	if cat == A {
		return W
	}
	return cat
}

func findResolver(script language.Script, lang language.Tag) resolver {
	scrcode := script.String()
	switch scrcode {
	case
		// East Asian
		"Bopo", "Hanb", "Hani", "Hans",
		"Hant", "Hang", "Hira", "Kana",
		"Jpan", "Kore",
		"Lana", "Kitl", "Kits", "Nkdb",
		"Nkgb", "Plrd":
		return resolveToWide
	}
	_, _, confidence := eaMatch.Match(lang)
	if confidence == language.No {
		return resolveToNarrow
	}
	return resolveToWide
}

var eaMatch = language.NewMatcher([]language.Tag{
	language.Chinese, // The first language is used as fallback.
	language.Japanese,
	language.Korean,
})

// ContextFromEnvironment creates a context from the locale of the user's
// environment. If the locale cannot be detected, "en-US" is assumed.
func ContextFromEnvironment() *Context {
	userLocale, err := jj.DetectIETF()
	if err != nil {
		T().Errorf(err.Error())
		userLocale = "en-US"
		T().Infof("UAX#11 sets default user locale %v", userLocale)
	} else {
		T().Infof("UAX#11 detected user locale %v", userLocale)
	}
	return ContextFromLocale(userLocale)
}

// ContextFromLocale creates a context for an IETF locale string like "zh-TW".
func ContextFromLocale(locale string) *Context {
	lang := language.Make(locale)
	script, _ := lang.Script()
	ctx := &Context{
		Script:  script,
		Locale:  locale,
		resolve: findResolver(script, lang),
	}
	return ctx
}

// RuneWidth returns the display width of a rune in terms of `en`s, where
// 1en stands for 1/2em, i.e. half a full width character.
// Combining marks, format characters and controls have width 0.
//
// If an empty context is given, LatinContext is assumed.
//
// Returns either 0, 1 (narrow character) or 2 (wide character).
func RuneWidth(r rune, context *Context) int {
	if r == utf8.RuneError || unicode.In(r, unicode.Mn, unicode.Me, unicode.Cf, unicode.Cc) {
		return 0
	}
	if context == nil {
		context = LatinContext
	}
	switch context.resolver()(WidthCategory(r)) {
	case W, F:
		return 2
	}
	return 1
}

// Width returns the width of a grapheme, given as a byte slice, in terms of
// `en`s. The width of a grapheme is the width of its first non-zero-width
// rune. If grphm is invalid or just a zero width rune, a width of 0 is returned.
//
// If an empty context is given, LatinContext is assumed.
//
// Returns either 0, 1 (narrow character) or 2 (wide character).
func Width(grphm []byte, context *Context) int {
	for len(grphm) > 0 {
		r, size := utf8.DecodeRune(grphm)
		if w := RuneWidth(r, context); w > 0 {
			return w
		}
		grphm = grphm[size:]
	}
	return 0
}

// StringWidth returns the fixed-width display length of a string, i.e. the
// sum of the widths of its runes.
//
// If an empty context is given, LatinContext is assumed.
func StringWidth(s string, context *Context) int {
	context = context.Resolved()
	w := 0
	for _, r := range s {
		w += RuneWidth(r, context)
	}
	return w
}

// ---------------------------------------------------------------------------

// UAX#11:
//  - The unassigned code points in the following blocks default to "W":
//         CJK Unified Ideographs Extension A: U+3400..U+4DBF
//         CJK Unified Ideographs:             U+4E00..U+9FFF
//         CJK Compatibility Ideographs:       U+F900..U+FAFF
//  - All undesignated code points in Planes 2 and 3, whether inside or
//      outside of allocated blocks, default to "W":
//         Plane 2:                            U+20000..U+2FFFD
//         Plane 3:                            U+30000..U+3FFFD
var _CJK_Default_W = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0x3400, 0x4dbf, 1},
		{0x4e00, 0x9fff, 1},
		{0xf900, 0xfaff, 1},
	},
	R32: []unicode.Range32{
		{0x20000, 0x2fffd, 1},
		{0x30000, 0x3fffd, 1},
	},
}
