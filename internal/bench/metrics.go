package bench

import (
	"fmt"

	"github.com/npillmayer/parasplit/segment"
)

// Config holds evaluation parameters. The weights balance precision
// against recall in Metrics.WeightedScore.
type Config struct {
	Tolerance       int // byte match tolerance
	PrecisionWeight float64
	RecallWeight    float64
}

// DefaultConfig returns default evaluation configuration.
func DefaultConfig() Config {
	return Config{
		Tolerance:       0,
		PrecisionWeight: 1.0,
		RecallWeight:    1.0,
	}
}

// Metrics holds evaluation results.
type Metrics struct {
	TruePositives  int
	FalsePositives int
	FalseNegatives int
	Precision      float64
	Recall         float64
	F1             float64
	WeightedScore  float64
}

func (m Metrics) String() string {
	return fmt.Sprintf("TP=%d FP=%d FN=%d P=%.3f R=%.3f F1=%.3f W=%.3f",
		m.TruePositives, m.FalsePositives, m.FalseNegatives, m.Precision, m.Recall, m.F1, m.WeightedScore)
}

// Evaluate compares predicted boundaries against ground truth.
// Uses greedy left-to-right matching within tolerance.
func Evaluate(predicted, truth []int, cfg Config) Metrics {
	matched := make([]bool, len(truth))
	tp := 0

	for _, p := range predicted {
		for i, t := range truth {
			if matched[i] {
				continue
			}
			diff := p - t
			if diff < 0 {
				diff = -diff
			}
			if diff <= cfg.Tolerance {
				matched[i] = true
				tp++
				break
			}
		}
	}

	return score(tp, len(predicted)-tp, len(truth)-tp, cfg)
}

func score(tp, fp, fn int, cfg Config) Metrics {
	m := Metrics{
		TruePositives:  tp,
		FalsePositives: fp,
		FalseNegatives: fn,
	}

	if tp+fp > 0 {
		m.Precision = float64(tp) / float64(tp+fp)
	}
	if tp+fn > 0 {
		m.Recall = float64(tp) / float64(tp+fn)
	}
	if m.Precision+m.Recall > 0 {
		m.F1 = 2 * m.Precision * m.Recall / (m.Precision + m.Recall)
	}

	wp := cfg.PrecisionWeight
	wr := cfg.RecallWeight
	if wp+wr > 0 {
		m.WeightedScore = (wp*m.Precision + wr*m.Recall) / (wp + wr)
	}

	return m
}

// Miss is a gold paragraph the segmenter did not split correctly.
type Miss struct {
	Paragraph Paragraph
	Predicted []string
}

// Result is the evaluation of a corpus.
type Result struct {
	Metrics Metrics
	Misses  []Miss
}

// Run segments every paragraph of a corpus and evaluates the boundaries
// found against the gold boundaries. Counts are accumulated over the whole
// corpus before scores are computed.
func Run(c Corpus, cfg Config, opts ...segment.Option) Result {
	var tp, fp, fn int
	var misses []Miss
	for _, gold := range c.Paragraphs {
		p := segment.NewParagraph(gold.Text, c.NoSpaces, opts...)
		spans := p.Spans()
		var predicted []int
		for i := 0; i+1 < len(spans); i++ {
			predicted = append(predicted, spans[i].To)
		}
		m := Evaluate(predicted, gold.Boundaries, cfg)
		tp += m.TruePositives
		fp += m.FalsePositives
		fn += m.FalseNegatives
		if m.FalsePositives > 0 || m.FalseNegatives > 0 {
			misses = append(misses, Miss{Paragraph: gold, Predicted: p.Split()})
		}
	}
	return Result{Metrics: score(tp, fp, fn, cfg), Misses: misses}
}
