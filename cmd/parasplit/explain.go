package main

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/npillmayer/parasplit"
	"github.com/npillmayer/parasplit/abbrev"
	"github.com/npillmayer/parasplit/boundary"
	"github.com/npillmayer/parasplit/enclosure"
	"github.com/npillmayer/parasplit/segment"
	"github.com/npillmayer/parasplit/uax11"
)

// ExplainCmd lists the verdict for every terminator candidate.
type ExplainCmd struct {
	Text []string `arg:"" optional:"" help:"Paragraph text (default: stdin)"`
}

// decision is the verdict for a single terminator candidate.
type decision struct {
	Pos      int    `json:"pos"`
	Rune     string `json:"rune"`
	Enclosed bool   `json:"enclosed"`
	Boundary bool   `json:"boundary"`
	Veto     string `json:"veto,omitempty"`
	Rule     string `json:"rule,omitempty"`
}

type sentenceWidth struct {
	Text  string `json:"text"`
	Width int    `json:"width"`
}

func (c *ExplainCmd) Run(e *env) error {
	text, err := argsOrStdin(c.Text)
	if err != nil {
		return err
	}
	cls := classifierFor(e)
	decisions := explain(text, cls)
	p := segment.NewParagraph(text, e.noSpaces, e.options()...)
	var widths []sentenceWidth
	for _, s := range p.Split() {
		widths = append(widths, sentenceWidth{s, uax11.StringWidth(s, e.width)})
	}
	if e.json {
		return writeJSON(e.out, map[string]interface{}{
			"candidates": decisions,
			"sentences":  widths,
		})
	}
	printDecisions(e.out, decisions)
	fmt.Fprintln(e.out)
	for _, w := range widths {
		fmt.Fprintf(e.out, "%3d  %s\n", w.Width, w.Text)
	}
	return nil
}

func classifierFor(e *env) *boundary.Classifier {
	var abbrevs *abbrev.Matcher
	if len(e.cfg.Segmenter.Abbreviations) > 0 {
		abbrevs = abbrev.New(e.cfg.Segmenter.Abbreviations...)
	}
	return boundary.New(e.noSpaces, abbrevs, []rune(e.cfg.Segmenter.Terminators)...)
}

// explain walks through text the way segment.Scan does and collects the
// verdict of cls for every terminator.
func explain(text string, cls *boundary.Classifier) []decision {
	tracker := enclosure.NewTracker()
	var decisions []decision
	for pos := 0; pos < len(text); {
		if n := tracker.Observe(text, pos); n > 0 {
			pos += n
			continue
		}
		r, size := utf8.DecodeRuneInString(text[pos:])
		if cls.IsTerminator(r) {
			cand := parasplit.Candidate{Text: text, Pos: pos, Size: size, Rune: r, Enclosed: tracker.Open()}
			v := cls.Classify(cand)
			d := decision{Pos: pos, Rune: string(r), Enclosed: cand.Enclosed, Boundary: v.IsBoundary()}
			if !d.Boundary {
				d.Veto = v.Veto.String()
			}
			if v.Rule != abbrev.None {
				d.Rule = v.Rule.String()
			}
			decisions = append(decisions, d)
		}
		pos += size
	}
	return decisions
}

func printDecisions(w io.Writer, decisions []decision) {
	for _, d := range decisions {
		verdict := "break"
		if !d.Boundary {
			verdict = "no break: " + d.Veto
			if d.Rule != "" {
				verdict += " (" + d.Rule + ")"
			}
		}
		fmt.Fprintf(w, "%5d  %s  %s\n", d.Pos, d.Rune, verdict)
	}
}
