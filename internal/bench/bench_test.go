package bench

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/npillmayer/parasplit/segment"
	"github.com/ulikunitz/xz"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name      string
		predicted []int
		truth     []int
		tolerance int
		wantTP    int
		wantFP    int
		wantFN    int
	}{
		{
			name:      "perfect match",
			predicted: []int{10, 20, 30},
			truth:     []int{10, 20, 30},
			tolerance: 0,
			wantTP:    3,
		},
		{
			name:      "within tolerance",
			predicted: []int{11, 19, 31},
			truth:     []int{10, 20, 30},
			tolerance: 2,
			wantTP:    3,
		},
		{
			name:      "false positive",
			predicted: []int{10, 15, 20},
			truth:     []int{10, 20},
			tolerance: 0,
			wantTP:    2,
			wantFP:    1,
		},
		{
			name:      "false negative",
			predicted: []int{10},
			truth:     []int{10, 20},
			tolerance: 0,
			wantTP:    1,
			wantFN:    1,
		},
		{
			name: "nothing to find",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Tolerance = tt.tolerance
			m := Evaluate(tt.predicted, tt.truth, cfg)
			if m.TruePositives != tt.wantTP || m.FalsePositives != tt.wantFP || m.FalseNegatives != tt.wantFN {
				t.Errorf("Evaluate() = %v, want TP=%d FP=%d FN=%d", m, tt.wantTP, tt.wantFP, tt.wantFN)
			}
		})
	}
}

func TestScores(t *testing.T) {
	m := Evaluate([]int{10, 15}, []int{10, 20}, DefaultConfig())
	if m.Precision != 0.5 || m.Recall != 0.5 || m.F1 != 0.5 {
		t.Errorf("unexpected scores %v", m)
	}
	if m.WeightedScore != 0.5 {
		t.Errorf("WeightedScore = %f, want 0.5", m.WeightedScore)
	}
	cfg := DefaultConfig()
	cfg.PrecisionWeight = 3
	m = Evaluate([]int{10}, []int{10, 20}, cfg)
	if m.WeightedScore != 0.875 {
		t.Errorf("WeightedScore = %f, want 0.875 for P=1 R=0.5 weighted 3:1", m.WeightedScore)
	}
}

func TestParseCorpus(t *testing.T) {
	c, err := ParseCorpus("inline", "# NoSpaces: false\n\nOne sentence.  Not split here.\nTwo.\n\n\nThree.\n")
	if err != nil {
		t.Fatalf("ParseCorpus: %v", err)
	}
	if len(c.Paragraphs) != 2 {
		t.Fatalf("expected 2 paragraphs, have %d", len(c.Paragraphs))
	}
	p := c.Paragraphs[0]
	if p.Text != "One sentence.  Not split here. Two." {
		t.Errorf("Text = %q", p.Text)
	}
	if len(p.Boundaries) != 1 || p.Boundaries[0] != len("One sentence.  Not split here.") {
		t.Errorf("Boundaries = %v", p.Boundaries)
	}
	if c.Sentences() != 3 {
		t.Errorf("Sentences() = %d, want 3", c.Sentences())
	}

	if _, err := ParseCorpus("empty", "# Name: nothing\n\n"); !errors.Is(err, ErrEmptyCorpus) {
		t.Errorf("expected ErrEmptyCorpus, have %v", err)
	}
	if _, err := ParseCorpus("bad", "# NoSpaces: perhaps\nText.\n"); err == nil {
		t.Error("expected error for bad NoSpaces header")
	}
}

func TestRunCorpora(t *testing.T) {
	for _, name := range []string{"latin.txt", "cjk.txt"} {
		c, err := LoadCorpus(filepath.Join("testdata", name))
		if err != nil {
			t.Fatalf("LoadCorpus(%s): %v", name, err)
		}
		res := Run(c, DefaultConfig())
		t.Logf("%s: %v", c.Name, res.Metrics)
		for _, miss := range res.Misses {
			t.Errorf("%s: expected %q, have %q", c.Name, miss.Paragraph.Sentences, miss.Predicted)
		}
		if res.Metrics.F1 != 1.0 {
			t.Errorf("%s: F1 = %f, want 1.0", c.Name, res.Metrics.F1)
		}
	}
}

func TestRunWithoutMerging(t *testing.T) {
	c, err := ParseCorpus("short", "Go.\nStop.\nNow we wait for the bus.\n")
	if err != nil {
		t.Fatal(err)
	}
	merged := Run(c, DefaultConfig())
	if merged.Metrics.FalseNegatives != 1 {
		t.Errorf("expected merging to lose one boundary, have %v", merged.Metrics)
	}
	unmerged := Run(c, DefaultConfig(), segment.WithMinWidth(0))
	if unmerged.Metrics.F1 != 1.0 {
		t.Errorf("expected all boundaries without merging, have %v", unmerged.Metrics)
	}
}

func TestLoadCompressedCorpus(t *testing.T) {
	plain, err := LoadCorpus(filepath.Join("testdata", "latin.txt"))
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(filepath.Join("testdata", "latin.txt"))
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()

	compressors := map[string]func(io.Writer) (io.WriteCloser, error){
		"latin.txt.zst": func(w io.Writer) (io.WriteCloser, error) { return zstd.NewWriter(w) },
		"latin.txt.xz":  func(w io.Writer) (io.WriteCloser, error) { return xz.NewWriter(w) },
	}
	for name, compress := range compressors {
		path := filepath.Join(dir, name)
		f, err := os.Create(path)
		if err != nil {
			t.Fatal(err)
		}
		w, err := compress(f)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if _, err := w.Write(data); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if err := w.Close(); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		f.Close()

		c, err := LoadCorpus(path)
		if err != nil {
			t.Fatalf("LoadCorpus(%s): %v", name, err)
		}
		if c.Digest != plain.Digest {
			t.Errorf("%s: digest %s differs from %s", name, c.Digest, plain.Digest)
		}
		if len(c.Paragraphs) != len(plain.Paragraphs) {
			t.Errorf("%s: %d paragraphs, want %d", name, len(c.Paragraphs), len(plain.Paragraphs))
		}
	}
}

func TestCorpusDigest(t *testing.T) {
	a, _ := ParseCorpus("a", "One.\nTwo.\n")
	b, _ := ParseCorpus("b", "One.\nTwo.\n")
	c, _ := ParseCorpus("c", "One.\nThree.\n")
	if a.Digest != b.Digest || len(a.Digest) != 64 {
		t.Errorf("expected equal 64-digit digests, have %q and %q", a.Digest, b.Digest)
	}
	if a.Digest == c.Digest {
		t.Error("expected different digests for different texts")
	}
}
