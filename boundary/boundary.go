/*
Package boundary decides which terminators end a sentence.

Every character which may end a sentence in some script is a candidate for a
sentence boundary. Classifier accepts a candidate if and only if

  - it is a terminator: . ! ? or a script variant of them (！？。؟ and others),
    or a single caret ^ (a doubled caret is an enclosure mark, not a terminator)
  - no quotation or parenthesis is open at its position
  - it is not the period of an abbreviation
  - it is not followed by another terminator; clusters like ?! break after
    their last member
  - for scripts with spaces between sentences, a narrow terminator is followed
    by whitespace or the end of the paragraph; for scripts without spaces,
    a narrow terminator is not followed by an ASCII letter or digit
  - for scripts without spaces, the rest of the paragraph is not just
    whitespace, which is trailing decoration of the last sentence
  - it does not end an ellipsis followed by a lower case word

Classifier implements interface parasplit.Classifier. The set of terminators
is a single table, extendable by clients; script-specific terminators are
members of the table rather than special cases.
*/
package boundary

import (
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/emirpasic/gods/sets/hashset"
	"github.com/npillmayer/parasplit"
	"github.com/npillmayer/parasplit/abbrev"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/width"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}

// DefaultTerminators are the runes which may end a sentence.
var DefaultTerminators = []rune{
	'.', '!', '?',
	'！', // ！ FULLWIDTH EXCLAMATION MARK
	'？', // ？ FULLWIDTH QUESTION MARK
	'。', // 。 IDEOGRAPHIC FULL STOP
	'｡', // ｡ HALFWIDTH IDEOGRAPHIC FULL STOP
	'．', // ． FULLWIDTH FULL STOP
	'؟', // ؟ ARABIC QUESTION MARK
	'۔', // ۔ ARABIC FULL STOP
	'।', // । DEVANAGARI DANDA
	'॥', // ॥ DEVANAGARI DOUBLE DANDA
	'‼', // ‼ DOUBLE EXCLAMATION MARK
	'⁇', // ⁇ DOUBLE QUESTION MARK
	'⁈', // ⁈ QUESTION EXCLAMATION MARK
	'⁉', // ⁉ EXCLAMATION QUESTION MARK
	'^',
}

// Veto is the reason for rejecting a candidate.
type Veto int8

// Reasons for rejecting a candidate, in order of testing.
const (
	NoVeto          Veto = iota // candidate is a boundary
	NotATerminator              // rune is not in the terminator set
	Enclosed                    // inside quotes or parentheses
	Cluster                     // another terminator follows
	Ellipsis                    // ellipsis continued by a lower case word
	NoSpaceFollows              // narrow terminator glued to the next word
	AlphanumFollows             // narrow terminator inside latin text within CJK
	Abbreviation                // period of an abbreviation
	TrailingFiller              // only whitespace follows (no-space scripts)
)

var vetoNames = [...]string{
	"NoVeto", "NotATerminator", "Enclosed", "Cluster", "Ellipsis",
	"NoSpaceFollows", "AlphanumFollows", "Abbreviation", "TrailingFiller",
}

func (v Veto) String() string {
	if v < 0 || int(v) >= len(vetoNames) {
		return "Veto(?)"
	}
	return vetoNames[v]
}

// Verdict is the result of classifying a candidate.
type Verdict struct {
	Penalty int         // parasplit.InfiniteMerits for a boundary
	Veto    Veto        // reason for rejecting the candidate
	Rule    abbrev.Rule // abbreviation rule, if Veto is Abbreviation
}

// IsBoundary is true if the verdict accepts a candidate.
func (v Verdict) IsBoundary() bool {
	return parasplit.IsBoundary(v.Penalty)
}

// Classifier decides if a terminator candidate is a sentence boundary.
// A Classifier is immutable after creation and may be shared between
// goroutines.
type Classifier struct {
	terminators *hashset.Set
	abbrevs     *abbrev.Matcher
	noSpaces    bool
}

var (
	defaultOnce      sync.Once
	defaultSpaced    *Classifier
	defaultNotSpaced *Classifier
)

// Default returns the shared classifier for the default terminators and
// abbreviations. noInterSentenceSpaces is true for scripts without spaces
// between sentences (Chinese, Japanese).
func Default(noInterSentenceSpaces bool) *Classifier {
	defaultOnce.Do(func() {
		defaultSpaced = New(false, abbrev.Default())
		defaultNotSpaced = New(true, abbrev.Default())
	})
	if noInterSentenceSpaces {
		return defaultNotSpaced
	}
	return defaultSpaced
}

// New creates a classifier for a spacing convention. The default terminator
// set is extended by extra terminators. If abbrevs is nil, the default
// abbreviation matcher is used.
func New(noInterSentenceSpaces bool, abbrevs *abbrev.Matcher, extra ...rune) *Classifier {
	if abbrevs == nil {
		abbrevs = abbrev.Default()
	}
	c := &Classifier{
		terminators: hashset.New(),
		abbrevs:     abbrevs,
		noSpaces:    noInterSentenceSpaces,
	}
	for _, r := range DefaultTerminators {
		c.terminators.Add(r)
	}
	for _, r := range extra {
		if !unicode.IsSpace(r) && r != utf8.RuneError {
			c.terminators.Add(r)
		}
	}
	return c
}

// IsTerminator is true if r is in the terminator set.
//
// Interface parasplit.Classifier
func (c *Classifier) IsTerminator(r rune) bool {
	return c.terminators.Contains(r)
}

// NoInterSentenceSpaces reports the spacing convention of the classifier.
//
// Interface parasplit.Classifier
func (c *Classifier) NoInterSentenceSpaces() bool {
	return c.noSpaces
}

// Penalty returns the penalty for breaking after a candidate.
//
// Interface parasplit.Classifier
func (c *Classifier) Penalty(cand parasplit.Candidate) int {
	return c.Classify(cand).Penalty
}

// Classify checks a candidate against all the rules and returns the verdict.
func (c *Classifier) Classify(cand parasplit.Candidate) Verdict {
	v := c.classify(cand)
	if v.Veto == NoVeto {
		v.Penalty = parasplit.InfiniteMerits
		CT().P("rune", cand.Rune).Debugf("boundary: accept %v", cand)
	} else {
		v.Penalty = parasplit.InfinitePenalty
		CT().P("veto", v.Veto).Debugf("boundary: reject %v", cand)
	}
	return v
}

func (c *Classifier) classify(cand parasplit.Candidate) Verdict {
	if !c.IsTerminator(cand.Rune) {
		return Verdict{Veto: NotATerminator}
	}
	if cand.Enclosed {
		return Verdict{Veto: Enclosed}
	}
	after := cand.After()
	next, _ := utf8.DecodeRuneInString(after)
	if after != "" && c.IsTerminator(next) {
		return Verdict{Veto: Cluster}
	}
	if cand.Rune == '.' && isEllipsis(cand.Before()) && startsLower(abbrev.FollowingToken(after)) {
		return Verdict{Veto: Ellipsis}
	}
	if !IsIdeographic(cand.Rune) && after != "" {
		if !c.noSpaces && !unicode.IsSpace(next) {
			return Verdict{Veto: NoSpaceFollows}
		}
		if c.noSpaces && next < utf8.RuneSelf && (unicode.IsLetter(next) || unicode.IsDigit(next)) {
			return Verdict{Veto: AlphanumFollows}
		}
	}
	if cand.Rune == '.' {
		if rule := c.abbrevs.Match(cand.Before(), after); rule != abbrev.None {
			return Verdict{Veto: Abbreviation, Rule: rule}
		}
	}
	if c.noSpaces && after != "" && strings.TrimSpace(after) == "" {
		return Verdict{Veto: TrailingFiller}
	}
	return Verdict{}
}

// IsIdeographic is true for terminators of East Asian width wide, fullwidth
// or halfwidth. These do not need whitespace to separate them from the
// following sentence.
func IsIdeographic(r rune) bool {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth, width.EastAsianHalfwidth:
		return true
	}
	return false
}

// isEllipsis is true if text ends with a period, i.e. the candidate period
// is the last one of at least two.
func isEllipsis(before string) bool {
	return strings.HasSuffix(before, ".")
}

func startsLower(tok string) bool {
	r, _ := utf8.DecodeRuneInString(tok)
	return unicode.IsLower(r)
}
