/*
Package abbrev recognizes periods which do not end a sentence.

A period following an abbreviation, an initial or a day of the month is part
of the word it follows rather than a sentence terminator:

    I love the U.S.A. and Mon. Jan. 21st, 2015 was a fine day.

Matcher checks the tokens around a period against a small set of patterns.
These are heuristics, not grammar. Tokens are runs of characters between
whitespace; runs of ideographs, kana and hangul also end a token, as Chinese
and Japanese text embeds Latin words without spaces around them ("昨日、Mr.
Smithに会いました。"). Opening punctuation in front of a token is ignored.
To keep the work per period constant, tokens are considered up to
MaxTokenLen runes only.
*/
package abbrev

import (
	"strconv"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/emirpasic/gods/sets/hashset"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/width"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}

// MaxTokenLen is the maximum number of runes of a token to look at.
const MaxTokenLen = 24

// Rule names the pattern which caused a veto.
type Rule int8

// Rules for abbreviations, in order of testing.
const (
	None      Rule = iota // not an abbreviation
	Initials              // U.S.A.
	Listed                // e.g. Mon. Jan.
	ShortCaps             // J. Smith
	DateIdiom             // 21. 01. 2015
)

func (r Rule) String() string {
	switch r {
	case None:
		return "None"
	case Initials:
		return "Initials"
	case Listed:
		return "Listed"
	case ShortCaps:
		return "ShortCaps"
	case DateIdiom:
		return "DateIdiom"
	}
	return "Rule(?)"
}

// Abbreviations are stored lower case and without a trailing period.
var defaultAbbreviations = []string{
	// weekdays and months
	"mon", "tue", "tues", "thu", "thur", "thurs", "fri",
	"jan", "feb", "apr", "jun", "jul", "aug", "sep", "sept", "oct", "nov", "dec",
	// latin
	"e.g", "i.e", "cf", "vs", "viz", "approx", "ca",
	// titles
	"mr", "mrs", "ms", "dr", "prof", "sr", "sra", "srta", "jr", "st", "mt",
	"rev", "gen", "col", "lt", "sgt", "capt", "hr", "fr",
	// others
	"nr", "fig", "vol", "pp", "ud", "uds", "bzw", "z.b", "d.h",
	// cyrillic
	"г", "гг", "т.е", "т.д", "т.п", "ул", "им", "стр", "др",
}

// These are common words as well and count as abbreviations only if
// capitalized.
var capitalizedAbbreviations = []string{
	"sat", "sun", "wed", "mar",
}

var monthNames = []string{
	"jan", "feb", "mar", "apr", "may", "jun", "jul", "aug", "sep", "sept", "oct", "nov", "dec",
	"january", "february", "march", "april", "june", "july", "august",
	"september", "october", "november", "december",
	"januar", "februar", "märz", "mai", "juni", "juli", "oktober", "dezember",
	"janvier", "février", "mars", "avril", "juin", "juillet", "août",
	"septembre", "octobre", "novembre", "décembre",
	"enero", "febrero", "marzo", "abril", "mayo", "junio", "julio", "agosto",
	"septiembre", "octubre", "noviembre", "diciembre",
}

// Matcher checks periods for abbreviations. A Matcher is immutable after
// creation and may be shared between goroutines.
type Matcher struct {
	listed      *hashset.Set // case-insensitive abbreviations
	capitalized *hashset.Set // abbreviations which have to be capitalized
	months      *hashset.Set // month names and abbreviations
}

var defaultMatcher *Matcher
var defaultOnce sync.Once

// Default returns a matcher for the default abbreviation tables. It is
// created once and shared.
func Default() *Matcher {
	defaultOnce.Do(func() {
		defaultMatcher = New()
	})
	return defaultMatcher
}

// New creates a matcher for the default abbreviation tables, extended by
// clients' abbreviations. Extra abbreviations are matched case-insensitively;
// a trailing period is optional.
func New(extra ...string) *Matcher {
	m := &Matcher{
		listed:      hashset.New(),
		capitalized: hashset.New(),
		months:      hashset.New(),
	}
	for _, a := range defaultAbbreviations {
		m.listed.Add(a)
	}
	for _, a := range extra {
		if a = strings.TrimSuffix(strings.ToLower(strings.TrimSpace(a)), "."); a != "" {
			m.listed.Add(a)
		}
	}
	for _, a := range capitalizedAbbreviations {
		m.capitalized.Add(a)
	}
	for _, n := range monthNames {
		m.months.Add(n)
	}
	return m
}

// Match checks a period for being part of an abbreviation. before is the
// text in front of the period, after is the text following it.
// Returns the rule which matched, or None.
func (m *Matcher) Match(before, after string) Rule {
	tok := PrecedingToken(before)
	if tok == "" {
		return None
	}
	next := FollowingToken(after)
	rule := None
	switch {
	case isInitials(tok):
		rule = Initials
	case m.isListed(tok):
		rule = Listed
	case isShortCaps(tok) && startsUpper(next):
		rule = ShortCaps
	case isDay(tok) && m.continuesDate(after):
		rule = DateIdiom
	}
	if rule != None {
		CT().P("rule", rule).Debugf("abbrev: '%s.' before '%s' is no sentence end", tok, next)
	}
	return rule
}

func (m *Matcher) isListed(tok string) bool {
	lower := strings.ToLower(tok)
	if m.listed.Contains(lower) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(tok)
	return unicode.IsUpper(r) && m.capitalized.Contains(lower)
}

func (m *Matcher) isMonth(tok string) bool {
	tok = strings.TrimRightFunc(tok, unicode.IsPunct)
	return tok != "" && m.months.Contains(strings.ToLower(tok))
}

// continuesDate is true if text after the period of a day continues a
// date: "21. 01. 2015", "3. mai" or "3. März 2015". A capitalized month
// name has to be followed by a number, otherwise "March" in
// "The score was 3. March is coming soon." would swallow the boundary.
func (m *Matcher) continuesDate(after string) bool {
	next, rest := nextToken(after)
	if startsDigit(next) {
		return true
	}
	if !m.isMonth(next) {
		return false
	}
	if !startsUpper(next) {
		return true
	}
	following, _ := nextToken(rest)
	return startsDigit(following)
}

// --- Tokens -----------------------------------------------------------

// PrecedingToken returns the token at the end of text, i.e. the run of
// runes in front of a period up to a token break, without leading opening
// punctuation.
func PrecedingToken(text string) string {
	start, n := len(text), 0
	for start > 0 && n < MaxTokenLen {
		r, size := utf8.DecodeLastRuneInString(text[:start])
		if isTokenBreak(r) {
			break
		}
		start -= size
		n++
	}
	return strings.TrimLeftFunc(text[start:], isOpeningPunct)
}

// FollowingToken returns the first token of text, skipping leading
// whitespace and opening punctuation.
func FollowingToken(text string) string {
	tok, _ := nextToken(text)
	return tok
}

// nextToken splits off the first token of text and returns it together with
// the text following it.
func nextToken(text string) (string, string) {
	start, n := 0, 0
	for start < len(text) && n < MaxTokenLen {
		r, size := utf8.DecodeRuneInString(text[start:])
		if !unicode.IsSpace(r) {
			break
		}
		start += size
		n++
	}
	end := start
	for n = 0; end < len(text) && n < MaxTokenLen; n++ {
		r, size := utf8.DecodeRuneInString(text[end:])
		if isTokenBreak(r) {
			break
		}
		end += size
	}
	return strings.TrimLeftFunc(text[start:end], isOpeningPunct), text[end:]
}

// isTokenBreak is true for whitespace, for terminators other than the period
// and for runes of scripts which do not separate words by spaces.
func isTokenBreak(r rune) bool {
	if unicode.IsSpace(r) || r == '!' || r == '?' {
		return true
	}
	if unicode.In(r, unicode.Han, unicode.Hiragana, unicode.Katakana, unicode.Hangul) {
		return true
	}
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return true // ideographic punctuation
	}
	return false
}

func isOpeningPunct(r rune) bool {
	return unicode.In(r, unicode.Ps, unicode.Pi) || r == '"' || r == '\'' || r == '¿' || r == '¡'
}

// --- Patterns ---------------------------------------------------------

// isInitials matches dotted runs of single letters, e.g. "U.S.A" or "e.g".
func isInitials(tok string) bool {
	parts := strings.Split(tok, ".")
	if len(parts) < 2 {
		return false
	}
	for _, p := range parts {
		if utf8.RuneCountInString(p) != 1 {
			return false
		}
		if r, _ := utf8.DecodeRuneInString(p); !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// isShortCaps matches 1 or 2 upper case letters, except for the pronoun "I".
func isShortCaps(tok string) bool {
	if tok == "I" {
		return false
	}
	n := 0
	for _, r := range tok {
		if !unicode.IsUpper(r) {
			return false
		}
		n++
	}
	return n > 0 && n <= 2
}

// isDay matches a day of the month, e.g. "21" or "21st".
func isDay(tok string) bool {
	digits := strings.TrimRightFunc(tok, unicode.IsLetter)
	if digits == "" || len(digits) > 2 || len(tok)-len(digits) > 2 {
		return false
	}
	day, err := strconv.Atoi(digits)
	return err == nil && day >= 1 && day <= 31
}

func startsUpper(tok string) bool {
	r, _ := utf8.DecodeRuneInString(tok)
	return unicode.IsUpper(r)
}

func startsDigit(tok string) bool {
	r, _ := utf8.DecodeRuneInString(tok)
	return unicode.IsDigit(r)
}
