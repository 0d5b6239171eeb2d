// Package bench provides evaluation utilities for sentence boundary detection
// against gold corpora.
//
// A gold corpus is a text file with one sentence per line and paragraphs
// separated by blank lines. Header lines at the top of the file start with
// "#" and may set the spacing convention of the corpus:
//
//	# Name: Japanese samples
//	# NoSpaces: true
//
// Corpus files may be compressed with zstd (".zst") or xz (".xz").
package bench

import (
	"bufio"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
	"github.com/zeebo/blake3"
)

// ErrEmptyCorpus is returned for corpora without any paragraph.
var ErrEmptyCorpus = errors.New("corpus has no paragraphs")

// Paragraph is a gold paragraph, i.e. a text together with its sentences.
type Paragraph struct {
	Text       string
	Sentences  []string
	Boundaries []int // byte offsets of sentence ends, except the last one
}

// Corpus is a collection of gold paragraphs.
type Corpus struct {
	Name       string
	NoSpaces   bool
	Digest     string // BLAKE3 of the uncompressed corpus text
	Paragraphs []Paragraph
}

// Sentences returns the number of sentences in the corpus.
func (c Corpus) Sentences() int {
	n := 0
	for _, p := range c.Paragraphs {
		n += len(p.Sentences)
	}
	return n
}

// ParseCorpus parses the text of a gold corpus.
func ParseCorpus(name, text string) (Corpus, error) {
	sum := blake3.Sum256([]byte(text))
	c := Corpus{Name: name, Digest: hex.EncodeToString(sum[:])}
	scanner := bufio.NewScanner(strings.NewReader(text))
	var sentences []string
	inHeader := true
	lineNo := 0

	flush := func() {
		if len(sentences) > 0 {
			c.Paragraphs = append(c.Paragraphs, makeParagraph(sentences, c.NoSpaces))
			sentences = nil
		}
	}

	for scanner.Scan() {
		line := scanner.Text()
		lineNo++
		if inHeader && strings.HasPrefix(line, "#") {
			if err := c.parseHeader(strings.TrimPrefix(line, "#")); err != nil {
				return Corpus{}, fmt.Errorf("%s:%d: %w", name, lineNo, err)
			}
			continue
		}
		inHeader = false
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		sentences = append(sentences, strings.TrimSpace(line))
	}
	if err := scanner.Err(); err != nil {
		return Corpus{}, fmt.Errorf("scan corpus: %w", err)
	}
	flush()

	if len(c.Paragraphs) == 0 {
		return Corpus{}, fmt.Errorf("%s: %w", name, ErrEmptyCorpus)
	}
	return c, nil
}

func (c *Corpus) parseHeader(line string) error {
	line = strings.TrimSpace(line)
	if value, ok := strings.CutPrefix(line, "Name:"); ok {
		c.Name = strings.TrimSpace(value)
	} else if value, ok := strings.CutPrefix(line, "NoSpaces:"); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("parse NoSpaces: %w", err)
		}
		c.NoSpaces = b
	}
	return nil
}

// makeParagraph joins gold sentences to the text of a paragraph, with a
// single space between sentences unless noSpaces is set.
func makeParagraph(sentences []string, noSpaces bool) Paragraph {
	sep := " "
	if noSpaces {
		sep = ""
	}
	p := Paragraph{Sentences: sentences}
	var b strings.Builder
	for i, s := range sentences {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(s)
		if i < len(sentences)-1 {
			p.Boundaries = append(p.Boundaries, b.Len())
		}
	}
	p.Text = b.String()
	return p
}

// LoadCorpus loads a gold corpus file. The corpus is named after the file
// unless its header says otherwise. Files ending in ".zst" or ".xz" are
// decompressed.
func LoadCorpus(path string) (Corpus, error) {
	f, err := os.Open(path)
	if err != nil {
		return Corpus{}, fmt.Errorf("open corpus: %w", err)
	}
	defer f.Close()

	base := filepath.Base(path)
	var r io.Reader = f
	switch ext := filepath.Ext(base); ext {
	case ".zst":
		zr, err := zstd.NewReader(f)
		if err != nil {
			return Corpus{}, fmt.Errorf("zstd reader: %w", err)
		}
		defer zr.Close()
		r = zr
		base = strings.TrimSuffix(base, ext)
	case ".xz":
		xr, err := xz.NewReader(f)
		if err != nil {
			return Corpus{}, fmt.Errorf("xz reader: %w", err)
		}
		r = xr
		base = strings.TrimSuffix(base, ext)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return Corpus{}, fmt.Errorf("read corpus: %w", err)
	}
	return ParseCorpus(strings.TrimSuffix(base, filepath.Ext(base)), string(data))
}
