// Package main provides the CLI entry point for parasplit, a rule-based
// splitter of paragraphs into sentences.
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/npillmayer/parasplit/internal/bench"
	"github.com/npillmayer/parasplit/internal/config"
	"github.com/npillmayer/parasplit/segment"
	"github.com/npillmayer/parasplit/uax11"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

// CLI defines the command-line interface using Kong
var CLI struct {
	Config   string `name:"config" short:"c" help:"Tuning file (default: ~/.config/parasplit/config.toml)" type:"path"`
	NoSpaces bool   `name:"no-spaces" xor:"spacing" help:"Input does not separate sentences by spaces (Chinese, Japanese)"`
	Spaced   bool   `name:"spaced" xor:"spacing" help:"Input separates sentences by spaces"`
	JSON     bool   `name:"json" help:"Output JSON"`
	Trace    bool   `name:"trace" help:"Trace segmentation decisions to stderr"`

	// Subcommands
	Split   SplitCmd   `cmd:"" help:"Split paragraphs into sentences, one per line"`
	Spaces  SpacesCmd  `cmd:"" help:"Print the whitespace between sentences of a paragraph"`
	Explain ExplainCmd `cmd:"" help:"Explain the decision for every terminator of a paragraph"`
	Eval    EvalCmd    `cmd:"" help:"Evaluate against gold corpora (one sentence per line)"`
}

// env is what commands need from global flags and configuration.
type env struct {
	cfg      config.Config
	width    *uax11.Context // nil measures as Latin text
	noSpaces bool
	out      io.Writer
	json     bool
}

func (e *env) options() []segment.Option {
	return e.cfg.Options()
}

// SplitCmd prints sentences.
type SplitCmd struct {
	File string `arg:"" optional:"" help:"Input file (default: stdin)"`
}

type sentenceJSON struct {
	Paragraph int    `json:"paragraph"`
	Text      string `json:"text"`
	Space     string `json:"space"`
}

func (c *SplitCmd) Run(e *env) error {
	in, closer, err := openInput(c.File)
	if err != nil {
		return err
	}
	defer closer()
	seg := segment.NewSegmenter(e.noSpaces, e.options()...)
	seg.Init(in)
	var sentences []sentenceJSON
	last := 0
	for seg.Next() {
		if e.json {
			sentences = append(sentences, sentenceJSON{seg.ParagraphIndex(), seg.Text(), seg.Space()})
			continue
		}
		if seg.ParagraphIndex() != last {
			fmt.Fprintln(e.out)
			last = seg.ParagraphIndex()
		}
		fmt.Fprintln(e.out, seg.Text())
	}
	if err := seg.Err(); err != nil {
		return fmt.Errorf("split: %w", err)
	}
	if e.json {
		return writeJSON(e.out, sentences)
	}
	return nil
}

// SpacesCmd prints the separators between sentences.
type SpacesCmd struct {
	Text []string `arg:"" optional:"" help:"Paragraph text (default: stdin)"`
}

func (c *SpacesCmd) Run(e *env) error {
	text, err := argsOrStdin(c.Text)
	if err != nil {
		return err
	}
	p := segment.NewParagraph(text, e.noSpaces, e.options()...)
	if e.json {
		return writeJSON(e.out, map[string][]string{
			"sentences": p.Split(),
			"spaces":    p.Spaces(),
			"trailing":  p.TrailingSpaces(),
		})
	}
	for _, s := range p.Spaces() {
		fmt.Fprintf(e.out, "%q\n", s)
	}
	return nil
}

// EvalCmd evaluates against gold corpora.
type EvalCmd struct {
	Gold      []string `arg:"" required:"" help:"Gold corpus files (.txt, .zst or .xz)" type:"existingfile"`
	Tolerance int      `name:"tolerance" short:"t" default:"0" help:"Boundary match tolerance in bytes"`
	Misses    bool     `name:"misses" help:"List paragraphs which were not split correctly"`

	PrecisionWeight float64 `name:"precision-weight" default:"1.0" help:"Weight of precision in the weighted score"`
	RecallWeight    float64 `name:"recall-weight" default:"1.0" help:"Weight of recall in the weighted score"`
}

func (c *EvalCmd) Run(e *env) error {
	if c.PrecisionWeight < 0 || c.RecallWeight < 0 {
		return fmt.Errorf("eval: weights must not be negative")
	}
	cfg := bench.DefaultConfig()
	cfg.Tolerance = c.Tolerance
	cfg.PrecisionWeight = c.PrecisionWeight
	cfg.RecallWeight = c.RecallWeight
	type report struct {
		Digest  string        `json:"digest"`
		Metrics bench.Metrics `json:"metrics"`
	}
	results := make(map[string]report)
	for _, path := range c.Gold {
		corpus, err := bench.LoadCorpus(path)
		if err != nil {
			return fmt.Errorf("eval: %w", err)
		}
		res := bench.Run(corpus, cfg, e.options()...)
		results[corpus.Name] = report{Digest: corpus.Digest, Metrics: res.Metrics}
		if e.json {
			continue
		}
		fmt.Fprintf(e.out, "%-30s %s %4d sentences  %v\n", corpus.Name, corpus.Digest[:12],
			corpus.Sentences(), res.Metrics)
		if c.Misses {
			for _, miss := range res.Misses {
				fmt.Fprintf(e.out, "  want %q\n  have %q\n", miss.Paragraph.Sentences, miss.Predicted)
			}
		}
	}
	if e.json {
		return writeJSON(e.out, results)
	}
	return nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("parasplit"),
		kong.Description("Rule-based splitting of paragraphs into sentences"),
		kong.UsageOnError(),
	)

	gtrace.CoreTracer = gologadapter.New()
	if CLI.Trace {
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	} else {
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	}

	cfg, err := config.Load(CLI.Config)
	ctx.FatalIfErrorf(err)

	e := &env{cfg: cfg, width: cfg.WidthContext().Resolved(), out: os.Stdout, json: CLI.JSON}
	switch {
	case CLI.NoSpaces:
		e.noSpaces = true
	case CLI.Spaced:
		e.noSpaces = false
	default:
		e.noSpaces = cfg.NoInterSentenceSpaces(e.width)
	}

	err = ctx.Run(e)
	ctx.FatalIfErrorf(err)
}

func openInput(path string) (io.RuneReader, func(), error) {
	if path == "" || path == "-" {
		return newRuneReader(os.Stdin), func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open input: %w", err)
	}
	return newRuneReader(f), func() { f.Close() }, nil
}

func newRuneReader(r io.Reader) io.RuneReader {
	return bufio.NewReader(r)
}

func argsOrStdin(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
