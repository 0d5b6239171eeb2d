package segment

import (
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/parasplit"
)

// ideographicSpace is kept at the end of sentences of scripts without
// spaces between sentences, where it is decoration of the sentence.
const ideographicSpace = '　'

type scanState int8

const (
	inSentence scanState = iota // collecting runes of a sentence
	scanning                    // consuming whitespace after a boundary
)

// Scan splits text into spans of sentences. Every terminator rune is
// presented to cls as a candidate; if the penalty cls computes for it is a
// boundary, the current sentence ends after the terminator. The whitespace
// following a boundary separates the sentence from the next one.
//
// tr follows the nesting of enclosures, i.e. quotes and parentheses, and
// is consulted for every position of text. tr may be nil, which means that
// enclosures are not respected. It is reset before scanning starts.
//
// Spans are trimmed by Trim. Spans will never be empty; for text without
// any visible characters, Scan returns no spans at all.
func Scan(text string, cls parasplit.Classifier, tr parasplit.Tracker) []parasplit.Span {
	if tr != nil {
		tr.Reset()
	}
	noSpaces := cls.NoInterSentenceSpaces()
	var spans []parasplit.Span
	emit := func(from, to int) {
		if span := Trim(text, parasplit.Span{From: from, To: to}, noSpaces); !span.IsEmpty() {
			CT().P("span", span).Debugf("sentence = %q", span.Of(text))
			spans = append(spans, span)
		}
	}
	state, start := inSentence, 0
	for pos := 0; pos < len(text); {
		r, size := utf8.DecodeRuneInString(text[pos:])
		if state == scanning {
			if unicode.IsSpace(r) {
				pos += size
				continue
			}
			emit(start, pos)
			state, start = inSentence, pos
		}
		if tr != nil {
			if n := tr.Observe(text, pos); n > 0 {
				pos += n
				continue
			}
		}
		if cls.IsTerminator(r) {
			cand := parasplit.Candidate{
				Text:     text,
				Pos:      pos,
				Size:     size,
				Rune:     r,
				Enclosed: tr != nil && tr.Open(),
			}
			if p := cls.Penalty(cand); parasplit.IsBoundary(p) {
				state = scanning
			}
		}
		pos += size
	}
	emit(start, len(text))
	return spans
}

// Trim removes leading and trailing whitespace from a span. If
// noInterSentenceSpaces is set, trailing ideographic spaces are kept.
func Trim(text string, span parasplit.Span, noInterSentenceSpaces bool) parasplit.Span {
	for span.From < span.To {
		r, size := utf8.DecodeRuneInString(text[span.From:span.To])
		if !unicode.IsSpace(r) {
			break
		}
		span.From += size
	}
	for span.From < span.To {
		r, size := utf8.DecodeLastRuneInString(text[span.From:span.To])
		if !unicode.IsSpace(r) || (noInterSentenceSpaces && r == ideographicSpace) {
			break
		}
		span.To -= size
	}
	return span
}
