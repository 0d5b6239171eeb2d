package parasplit

import "fmt"

// Classifier represents a logic to decide whether a terminator found in a
// paragraph ends a sentence. Classifiers are used by segmenters to supply
// breaking logic.
type Classifier interface {
	IsTerminator(rune) bool      // may r end a sentence in any script?
	Penalty(Candidate) int       // penalty for breaking after a candidate
	NoInterSentenceSpaces() bool // spacing convention of the paragraph
}

// Tracker represents a logic to follow the nesting of quotations and
// parentheses while a paragraph is scanned. Segmenters feed every position
// of a paragraph to a tracker and will ask it for the nesting state at
// terminator candidates.
type Tracker interface {
	// Observe inspects the text at byte position pos and returns the number
	// of bytes consumed as an enclosure mark, or 0 if there is none.
	Observe(text string, pos int) int
	// Open is true as long as any enclosure is open.
	Open() bool
	// Reset clears the tracker for the next paragraph.
	Reset()
}

// Candidate is a terminator found while scanning a paragraph, together with
// its context. Pos and Size are byte offsets into Text.
type Candidate struct {
	Text     string // the complete paragraph
	Pos      int    // position of the terminator
	Size     int    // size of the terminator in bytes
	Rune     rune   // the terminator
	Enclosed bool   // is any enclosure open at Pos?
}

// Before returns the text preceding the terminator.
func (c Candidate) Before() string {
	return c.Text[:c.Pos]
}

// After returns the text following the terminator.
func (c Candidate) After() string {
	return c.Text[c.Pos+c.Size:]
}

func (c Candidate) String() string {
	return fmt.Sprintf("[%#U at %d, enclosed=%v]", c.Rune, c.Pos, c.Enclosed)
}

// IsBoundary interprets a penalty. Only merits, i.e. negative penalties,
// signal a boundary. Zero is neutral and positive penalties work against a
// boundary.
func IsBoundary(p int) bool {
	return p < 0
}

// Bounded caps a penalty to the range InfiniteMerits…InfinitePenalty.
func Bounded(p int) int {
	if p > InfinitePenalty {
		p = InfinitePenalty
	} else if p < InfiniteMerits {
		p = InfiniteMerits
	}
	return p
}

// Span is a half-open byte range [From, To) of a paragraph.
type Span struct {
	From, To int
}

// Len returns the length of a span in bytes.
func (s Span) Len() int {
	return s.To - s.From
}

// IsEmpty is true for spans of zero length.
func (s Span) IsEmpty() bool {
	return s.To <= s.From
}

// Of returns the text covered by a span.
func (s Span) Of(text string) string {
	return text[s.From:s.To]
}

func (s Span) String() string {
	return fmt.Sprintf("[%d…%d)", s.From, s.To)
}
