package segment

import (
	"sync"

	"github.com/npillmayer/parasplit"
)

// Paragraph is a piece of text to split into sentences. A paragraph is
// immutable; sentences are computed on first request and may be requested
// from multiple goroutines.
type Paragraph struct {
	text     string
	noSpaces bool
	cfg      config
	once     sync.Once
	spans    []parasplit.Span
}

// NewParagraph creates a paragraph for text. noInterSentenceSpaces is true
// for scripts which do not separate sentences by whitespace, like Chinese or
// Japanese.
func NewParagraph(text string, noInterSentenceSpaces bool, opts ...Option) *Paragraph {
	return newParagraph(text, noInterSentenceSpaces, makeConfig(opts))
}

func newParagraph(text string, noSpaces bool, cfg config) *Paragraph {
	return &Paragraph{
		text:     text,
		noSpaces: noSpaces,
		cfg:      cfg,
	}
}

// Text returns the text of the paragraph.
func (p *Paragraph) Text() string {
	return p.text
}

// NoInterSentenceSpaces reports the spacing convention of the paragraph.
func (p *Paragraph) NoInterSentenceSpaces() bool {
	return p.noSpaces
}

// Spans returns the byte ranges of the sentences of the paragraph.
func (p *Paragraph) Spans() []parasplit.Span {
	p.once.Do(p.segment)
	spans := make([]parasplit.Span, len(p.spans))
	copy(spans, p.spans)
	return spans
}

func (p *Paragraph) segment() {
	cls := p.cfg.classifierFor(p.noSpaces)
	tracker := borrowTracker()
	defer releaseTracker(tracker)
	spans := Scan(p.text, cls, tracker)
	p.spans = MergeShort(p.text, spans, p.cfg.minWidth, p.cfg.widthContext)
	CT().P("sentences", len(p.spans)).Debugf("paragraph segmented")
}

// Split returns the sentences of the paragraph, trimmed of whitespace at
// their edges. A paragraph without any sentence boundary is returned as a
// single sentence. An empty paragraph, or one consisting of whitespace only,
// results in a single empty sentence.
func (p *Paragraph) Split() []string {
	p.once.Do(p.segment)
	if len(p.spans) == 0 {
		return []string{""}
	}
	sentences := make([]string, len(p.spans))
	for i, span := range p.spans {
		sentences[i] = span.Of(p.text)
	}
	return sentences
}

// Spaces returns the whitespace between consecutive sentences, i.e. one string
// less than there are sentences. For scripts without spaces between sentences
// all of them are empty strings.
func (p *Paragraph) Spaces() []string {
	p.once.Do(p.segment)
	return Separators(p.text, p.spans, p.noSpaces)
}

// TrailingSpaces returns the whitespace following each sentence, including
// the whitespace at the end of the paragraph, i.e. one string per sentence.
func (p *Paragraph) TrailingSpaces() []string {
	p.once.Do(p.segment)
	if len(p.spans) == 0 {
		return []string{""}
	}
	return TrailingSpaces(p.text, p.spans, p.noSpaces)
}
