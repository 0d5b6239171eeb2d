package segment

import (
	"reflect"
	"testing"

	"github.com/npillmayer/parasplit"
	"github.com/npillmayer/parasplit/boundary"
	"github.com/npillmayer/parasplit/enclosure"
	"github.com/npillmayer/parasplit/uax11"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
)

func texts(text string, spans []parasplit.Span) []string {
	s := make([]string, len(spans))
	for i, span := range spans {
		s[i] = span.Of(text)
	}
	return s
}

func TestScanWithoutTracker(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	text := `She said "Hey! George". Then she left.`
	spans := Scan(text, boundary.Default(false), nil)
	expected := []string{`She said "Hey!`, `George".`, "Then she left."}
	if have := texts(text, spans); !reflect.DeepEqual(have, expected) {
		t.Errorf("expected %q, have %q", expected, have)
	}
	spans = Scan(text, boundary.Default(false), enclosure.NewTracker())
	expected = []string{`She said "Hey! George".`, "Then she left."}
	if have := texts(text, spans); !reflect.DeepEqual(have, expected) {
		t.Errorf("expected %q, have %q", expected, have)
	}
}

func TestScanSpans(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	text := "  One. Two!\n\tThree  "
	spans := Scan(text, boundary.Default(false), enclosure.NewTracker())
	expected := []parasplit.Span{{From: 2, To: 6}, {From: 7, To: 11}, {From: 13, To: 18}}
	if !reflect.DeepEqual(spans, expected) {
		t.Errorf("expected spans %v, have %v", expected, spans)
	}
	if len(Scan("", boundary.Default(false), nil)) != 0 {
		t.Errorf("expected no spans for empty text")
	}
}

func TestTrim(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	text := "　 ネイト！　\n"
	all := parasplit.Span{From: 0, To: len(text)}
	if s := Trim(text, all, false).Of(text); s != "ネイト！" {
		t.Errorf("expected all whitespace to be trimmed, have %q", s)
	}
	if s := Trim(text, all, true).Of(text); s != "ネイト！　" {
		t.Errorf("expected trailing ideographic space to be kept, have %q", s)
	}
	if !Trim(" \t ", parasplit.Span{From: 0, To: 3}, false).IsEmpty() {
		t.Errorf("expected blank span to be trimmed to empty")
	}
}

func TestMergeShort(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	text := "No. No. Absolutely not. Ok."
	spans := Scan(text, boundary.Default(false), nil)
	if len(spans) != 4 {
		t.Fatalf("expected 4 raw spans, have %v", spans)
	}
	merged := MergeShort(text, spans, DefaultMinWidth, nil)
	expected := []string{"No. No. Absolutely not.", "Ok."}
	if have := texts(text, merged); !reflect.DeepEqual(have, expected) {
		t.Errorf("expected %q, have %q", expected, have)
	}
	if n := len(MergeShort(text, spans, 0, nil)); n != 4 {
		t.Errorf("expected merging to be switched off, have %d spans", n)
	}
	text = "你叫什麼名字？你住在哪裡？"
	spans = Scan(text, boundary.Default(true), nil)
	if n := len(MergeShort(text, spans, DefaultMinWidth, uax11.LatinContext)); n != 2 {
		t.Errorf("expected wide sentences not to be merged, have %d spans", n)
	}
}

func TestSeparators(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	text := "First sentence.  Second sentence.\nThird sentence. "
	spans := Scan(text, boundary.Default(false), nil)
	seps := Separators(text, spans, false)
	if expected := []string{"  ", "\n"}; !reflect.DeepEqual(seps, expected) {
		t.Errorf("expected separators %q, have %q", expected, seps)
	}
	if seps = Separators(text, spans, true); !reflect.DeepEqual(seps, []string{"", ""}) {
		t.Errorf("expected empty separators, have %q", seps)
	}
	trailing := TrailingSpaces(text, spans, false)
	if expected := []string{"  ", "\n", " "}; !reflect.DeepEqual(trailing, expected) {
		t.Errorf("expected trailing spaces %q, have %q", expected, trailing)
	}
	if seps = Separators(text, nil, false); len(seps) != 0 {
		t.Errorf("expected no separators without spans, have %q", seps)
	}
}
