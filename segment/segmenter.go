package segment

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"unicode"

	"github.com/emirpasic/gods/lists/arraylist"
)

// A Segmenter receives a sequence of code-points from an io.RuneReader and
// segments it into sentences.
//
// Input is cut into paragraphs at blank lines. Every paragraph is split into
// sentences as Paragraph.Split does.
type Segmenter struct {
	reader          io.RuneReader   // where we get the next runes from
	noSpaces        bool            // spacing convention of the input
	cfg             config          // options for paragraphs
	queue           *arraylist.List // sentences of the current paragraph
	buffer          *bytes.Buffer   // collects the runes of a paragraph
	maxParagraphLen int             // maximum length allowed for paragraphs
	paragraphs      int             // number of paragraphs read so far
	current         sentence        // the most recent sentence
	err             error
	atEOF           bool
	inUse           bool // Next() has been called; buffer is in use.
}

type sentence struct {
	text      string
	space     string
	paragraph int
}

// MaxParagraphSize is the maximum size used to buffer a paragraph
// unless the user provides an explicit buffer with Segmenter.Buffer().
const MaxParagraphSize = 64 * 1024
const startBufSize = 4096 // Size of initial allocation for buffer.

// ErrTooLong flags a buffer overflow.
// ErrNotInitialized is returned if a segmenters Next-function is called without
// first setting an input source.
var (
	ErrTooLong        = errors.New("sentence segmenter: paragraph too long for buffer")
	ErrNotInitialized = errors.New("sentence segmenter not initialized; must call Init(...) first")
)

// NewSegmenter creates a new Segmenter for a spacing convention.
// noInterSentenceSpaces is true for scripts which do not separate sentences
// by whitespace, like Chinese or Japanese.
//
// Before using newly created segmenters, clients will have to call Init(...)
// on them, i.e. initialize them for a rune reader.
func NewSegmenter(noInterSentenceSpaces bool, opts ...Option) *Segmenter {
	s := &Segmenter{
		noSpaces: noInterSentenceSpaces,
		cfg:      makeConfig(opts),
	}
	s.cfg.classifier = s.cfg.classifierFor(noInterSentenceSpaces)
	return s
}

// Init initializes a Segmenter with an io.RuneReader to read from.
// s is either a newly created segmenter to be initialized, or we may
// re-initializes a segmenter already in use.
func (s *Segmenter) Init(reader io.RuneReader) {
	if reader == nil {
		reader = strings.NewReader("")
	}
	s.reader = reader
	if s.queue == nil {
		s.queue = arraylist.New()
		s.buffer = bytes.NewBuffer(make([]byte, 0, startBufSize))
		s.maxParagraphLen = MaxParagraphSize
	} else {
		s.queue.Clear()
		s.buffer.Reset()
	}
	s.atEOF = false
	s.inUse = false
	s.err = nil
	s.paragraphs = 0
	s.current = sentence{}
}

// Buffer sets the initial buffer to use when reading paragraphs and the
// maximum size of buffer that may be allocated during segmenting.
// The maximum paragraph size is the larger of max and cap(buf).
//
// By default, Segmenter uses an internal buffer and sets the maximum paragraph
// size to MaxParagraphSize.
//
// Buffer panics if it is called after scanning has started. Clients will have
// to call Init(...) again to permit re-setting the buffer.
func (s *Segmenter) Buffer(buf []byte, max int) {
	if s.inUse {
		panic("segment.Buffer: buffer already in use; cannot be re-set")
	}
	s.buffer = bytes.NewBuffer(buf[:0])
	if max < cap(buf) {
		max = cap(buf)
	}
	s.maxParagraphLen = max
}

// Err returns the first non-EOF error that was encountered by the
// Segmenter.
func (s *Segmenter) Err() error {
	if s.err == io.EOF {
		return nil
	}
	return s.err
}

// setErr() records the first error encountered.
func (s *Segmenter) setErr(err error) {
	if s.err == nil || s.err == io.EOF {
		s.err = err
	}
}

// Next advances the Segmenter to the next sentence, which will then be
// available through the Text() method. It returns false when the segmenting
// stops, either by reaching the end of the input or an error.
// After Next() returns false, the Err() method will return any error
// that occurred during scanning, except for io.EOF.
// For the latter case Err() will return nil.
func (s *Segmenter) Next() bool {
	if s.reader == nil || s.queue == nil {
		s.setErr(ErrNotInitialized)
		return false
	}
	s.inUse = true
	for s.queue.Empty() {
		if s.atEOF || s.err != nil {
			s.current = sentence{}
			return false
		}
		if err := s.readParagraph(); err != nil {
			s.setErr(err)
		}
	}
	v, _ := s.queue.Get(0)
	s.queue.Remove(0)
	s.current = v.(sentence)
	CT().P("paragraph", s.current.paragraph).Debugf("Next() = %q", s.current.text)
	return true
}

// Text returns the most recent sentence generated by a call to Next().
func (s *Segmenter) Text() string {
	return s.current.text
}

// Bytes returns the most recent sentence generated by a call to Next()
// as a newly allocated byte slice.
func (s *Segmenter) Bytes() []byte {
	return []byte(s.current.text)
}

// Space returns the whitespace between the most recent sentence and the
// next sentence of the same paragraph. For the last sentence of a paragraph,
// and for scripts without spaces between sentences, Space returns "".
func (s *Segmenter) Space() string {
	return s.current.space
}

// ParagraphIndex returns the 0-based index of the paragraph the most recent
// sentence belongs to.
func (s *Segmenter) ParagraphIndex() int {
	return s.current.paragraph
}

// readParagraph reads runes up to the next blank line or the end of input
// and queues the sentences of the paragraph read.
func (s *Segmenter) readParagraph() error {
	s.buffer.Reset()
	lineStart := 0       // buffer position of the current line
	lineHasText := false // any visible rune in the current line?
	hasText := false     // any visible rune in previous lines?
	for {
		r, _, err := s.reader.ReadRune()
		if err != nil {
			s.atEOF = true
			s.enqueue(s.buffer.String())
			if err == io.EOF {
				return nil
			}
			CT().Errorf("ReadRune() error: %s", err)
			return err
		}
		s.buffer.WriteRune(r)
		if s.buffer.Len() > s.maxParagraphLen {
			s.atEOF = true
			return ErrTooLong
		}
		if r != '\n' {
			lineHasText = lineHasText || !unicode.IsSpace(r)
			continue
		}
		if !lineHasText && hasText { // blank line ends paragraph
			s.enqueue(string(s.buffer.Bytes()[:lineStart]))
			return nil
		}
		hasText = hasText || lineHasText
		lineHasText = false
		lineStart = s.buffer.Len()
	}
}

func (s *Segmenter) enqueue(text string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	p := newParagraph(text, s.noSpaces, s.cfg)
	sentences, spaces := p.Split(), p.Spaces()
	for i, sent := range sentences {
		st := sentence{text: sent, paragraph: s.paragraphs}
		if i < len(spaces) {
			st.space = spaces[i]
		}
		s.queue.Add(st)
	}
	s.paragraphs++
}
