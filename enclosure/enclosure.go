/*
Package enclosure tracks quotations and parentheses in a paragraph.

A sentence terminator found inside a quotation or inside parentheses does not
end the sentence the quotation is embedded in:

    she said "Hey! George". Then she left.

has two sentences, not three. Tracker follows the nesting of enclosure marks
while a paragraph is scanned and lets a boundary classifier veto candidates
found while any enclosure is open.

Enclosure marks come in families. Marks of a family are paired in the way
UAX#9 pairs brackets (rule BD16): an opening mark is pushed onto a stack,
a closing mark pops the stack through the innermost matching opening mark,
and a closing mark without a matching opening mark is ignored. Symmetric
marks (straight double quotes, doubled carets) close a matching opening mark
if there is one and open a new enclosure otherwise.

An enclosure which is never closed stays open for the rest of the paragraph,
suppressing any further boundaries.
*/
package enclosure

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}

// MaxNesting is the maximum stack depth for enclosures, as BD16 of UAX#9 does
// for brackets. Opening marks beyond this depth are ignored.
const MaxNesting = 63

// Family is a family of enclosure marks.
type Family int8

// Enclosure families
const (
	DoubleQuotes Family = iota // "…"
	CurlyQuotes                // “…” „…“ „…”
	Guillemets                 // «…»
	CornerBrackets             // 「…」 『…』
	TitleBrackets              // 《…》 〈…〉 【…】
	Parentheses                // (…) （…） […] ［…］
	Carets                     // ^^…^^
	familyCount
)

func (f Family) String() string {
	switch f {
	case DoubleQuotes:
		return "DoubleQuotes"
	case CurlyQuotes:
		return "CurlyQuotes"
	case Guillemets:
		return "Guillemets"
	case CornerBrackets:
		return "CornerBrackets"
	case TitleBrackets:
		return "TitleBrackets"
	case Parentheses:
		return "Parentheses"
	case Carets:
		return "Carets"
	}
	return fmt.Sprintf("Family(%d)", int(f))
}

// caret stands for the doubled caret markup "^^". A single caret is not an
// enclosure mark.
const caret = '^'

// opening marks with their family and the marks which may close them
var openers = map[rune]struct {
	family  Family
	closers string
}{
	'"':      {DoubleQuotes, `"`},
	'\u201C': {CurlyQuotes, "\u201D"},       // “ ”
	'\u201E': {CurlyQuotes, "\u201C\u201D"}, // „ “ or „ ”
	'\u00AB': {Guillemets, "\u00BB"},        // « »
	'\u300C': {CornerBrackets, "\u300D"},    // 「 」
	'\u300E': {CornerBrackets, "\u300F"},    // 『 』
	'\uFF62': {CornerBrackets, "\uFF63"},    // ｢ ｣
	'\u300A': {TitleBrackets, "\u300B"},     // 《 》
	'\u3008': {TitleBrackets, "\u3009"},     // 〈 〉
	'\u3010': {TitleBrackets, "\u3011"},     // 【 】
	'(':      {Parentheses, ")"},
	'\uFF08': {Parentheses, "\uFF09"}, // （ ）
	'[':      {Parentheses, "]"},
	'\uFF3B': {Parentheses, "\uFF3D"}, // ［ ］
	caret:    {Carets, "^"},
}

// mark is an opening mark on the enclosure stack.
type mark struct {
	r       rune
	family  Family
	closers string
	pos     int // byte position in the paragraph
}

func (m mark) closedBy(r rune) bool {
	for _, c := range m.closers {
		if c == r {
			return true
		}
	}
	return false
}

// Tracker follows the nesting of enclosures while a paragraph is scanned.
// It implements interface parasplit.Tracker.
//
// A Tracker holds state for a single paragraph and is not safe for
// concurrent use. Clients call Reset before re-using it.
type Tracker struct {
	stack *arraystack.Stack // of marks
	depth [familyCount]int  // counter per family
}

// NewTracker creates a tracker with no open enclosures.
func NewTracker() *Tracker {
	return &Tracker{stack: arraystack.New()}
}

// Reset clears all open enclosures.
func (t *Tracker) Reset() {
	t.stack.Clear()
	t.depth = [familyCount]int{}
}

// Open is true as long as any enclosure family has a depth > 0.
func (t *Tracker) Open() bool {
	return !t.stack.Empty()
}

// Depth returns the nesting depth of a family of enclosures.
func (t *Tracker) Depth(f Family) int {
	if f < 0 || f >= familyCount {
		return 0
	}
	return t.depth[f]
}

// Observe inspects the rune at byte position pos of text. If it is an
// enclosure mark, the nesting state is updated and the number of bytes
// of the mark is returned. Doubled carets are a single mark of 2 bytes.
// For any other rune Observe returns 0.
//
// Interface parasplit.Tracker
func (t *Tracker) Observe(text string, pos int) int {
	if pos < 0 || pos >= len(text) {
		return 0
	}
	r, size := utf8.DecodeRuneInString(text[pos:])
	if r == caret {
		if pos+size >= len(text) || text[pos+size] != caret {
			return 0 // single caret
		}
		size++
	} else if r == '"' && isGershayim(text, pos) {
		return 0
	}
	if t.close(r, pos) {
		return size
	}
	if o, ok := openers[r]; ok {
		t.push(mark{r: r, family: o.family, closers: o.closers, pos: pos})
		return size
	}
	return 0
}

// isGershayim is true for a double quote between two Hebrew letters, as in
// acronyms (צה"ל). Compare UAX#29 word breaking rules WB7b and WB7c.
func isGershayim(text string, pos int) bool {
	before, _ := utf8.DecodeLastRuneInString(text[:pos])
	after, _ := utf8.DecodeRuneInString(text[pos+1:])
	return unicode.Is(unicode.Hebrew, before) && unicode.Is(unicode.Hebrew, after)
}

func (t *Tracker) push(m mark) {
	if t.stack.Size() >= MaxNesting {
		CT().Errorf("enclosure: nesting too deep, ignoring %#U at %d", m.r, m.pos)
		return
	}
	t.stack.Push(m)
	t.depth[m.family]++
	CT().P("family", m.family).Debugf("enclosure: open %#U at %d", m.r, m.pos)
}

// close checks for an opening mark on the enclosure stack matching a closing
// mark. It starts at the top of the stack and possibly skips unclosed
// opening marks, popping them as well.
func (t *Tracker) close(r rune, pos int) bool {
	if t.stack.Empty() {
		return false
	}
	marks := t.stack.Values() // LIFO order
	for i, v := range marks {
		if !v.(mark).closedBy(r) {
			continue
		}
		for j := 0; j <= i; j++ {
			top, _ := t.stack.Pop()
			t.depth[top.(mark).family]--
		}
		CT().P("family", v.(mark).family).Debugf("enclosure: close %#U at %d", r, pos)
		return true
	}
	return false
}
