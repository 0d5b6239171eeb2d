package segment

import (
	"github.com/npillmayer/parasplit"
	"github.com/npillmayer/parasplit/abbrev"
	"github.com/npillmayer/parasplit/boundary"
	"github.com/npillmayer/parasplit/uax11"
)

// Option configures paragraphs and segmenters.
type Option func(*config)

type config struct {
	minWidth      int
	abbreviations []string
	terminators   []rune
	classifier    parasplit.Classifier
	widthContext  *uax11.Context
}

func defaultConfig() config {
	return config{
		minWidth:     DefaultMinWidth,
		widthContext: uax11.LatinContext,
	}
}

func makeConfig(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithMinWidth sets the display width below which sentences are merged with
// their successors. A width of 0 switches merging off.
func WithMinWidth(w int) Option {
	return func(c *config) {
		if w < 0 {
			w = 0
		}
		c.minWidth = w
	}
}

// WithAbbreviations adds abbreviations to the default table. Abbreviations
// are given without the final period, e.g. "approx" or "z.B".
func WithAbbreviations(abbrevs ...string) Option {
	return func(c *config) {
		c.abbreviations = append(c.abbreviations, abbrevs...)
	}
}

// WithTerminators adds runes to the set of sentence terminators.
func WithTerminators(terminators ...rune) Option {
	return func(c *config) {
		c.terminators = append(c.terminators, terminators...)
	}
}

// WithClassifier replaces the boundary classifier. The spacing convention
// of cls should match the one given to NewParagraph or NewSegmenter.
// WithAbbreviations and WithTerminators have no effect on a custom classifier.
func WithClassifier(cls parasplit.Classifier) Option {
	return func(c *config) {
		c.classifier = cls
	}
}

// WithWidthContext sets the UAX#11 context for measuring sentence widths.
// The context decides about the width of East Asian ambiguous characters.
// It is resolved once here; paragraphs never modify it.
func WithWidthContext(ctx *uax11.Context) Option {
	resolved := ctx.Resolved()
	return func(c *config) {
		if resolved != nil {
			c.widthContext = resolved
		}
	}
}

// classifierFor returns the classifier to use for a spacing convention.
func (c *config) classifierFor(noInterSentenceSpaces bool) parasplit.Classifier {
	if c.classifier != nil {
		return c.classifier
	}
	if len(c.abbreviations) == 0 && len(c.terminators) == 0 {
		return boundary.Default(noInterSentenceSpaces)
	}
	var abbrevs *abbrev.Matcher
	if len(c.abbreviations) > 0 {
		abbrevs = abbrev.New(c.abbreviations...)
	}
	c.classifier = boundary.New(noInterSentenceSpaces, abbrevs, c.terminators...)
	return c.classifier
}
