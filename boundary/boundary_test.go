package boundary

import (
	"strings"
	"testing"

	"github.com/npillmayer/parasplit"
	"github.com/npillmayer/parasplit/abbrev"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
)

// candidate creates a candidate for the terminator marked by '|' in text;
// the marker is removed.
func candidate(text string, enclosed bool) parasplit.Candidate {
	pos := strings.Index(text, "|")
	text = text[:pos] + text[pos+1:]
	r := []rune(text[pos:])[0]
	return parasplit.Candidate{Text: text, Pos: pos, Size: len(string(r)), Rune: r, Enclosed: enclosed}
}

func TestClassify(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tests := []struct {
		text     string
		noSpaces bool
		enclosed bool
		veto     Veto
	}{
		{"Hi, I'm first|. I'm second.", false, false, NoVeto},
		{"I'm second|.", false, false, NoVeto},
		{"Hi|, there", false, false, NotATerminator},
		{"Hey|! George", false, true, Enclosed},
		{"Really|?! Yes.", false, false, Cluster},
		{"Really?|! Yes.", false, false, NoVeto},
		{"Well..|. maybe not.", false, false, Ellipsis},
		{"Well..|. Maybe not.", false, false, NoVeto},
		{"about|.me is fine.", false, false, NoSpaceFollows},
		{"pi is 3|.14 roughly.", false, false, NoSpaceFollows},
		{"e.g|. Kevin", false, false, Abbreviation},
		{"我的名字是內特|！我今年24歲。", true, false, NoVeto},
		{"我的名字是內特|！我今年24歲。", false, false, NoVeto},
		{"我住在Boulder|.com裡", true, false, AlphanumFollows},
		{"私の名前はネイトです|！　", true, false, TrailingFiller},
		{"私の名前はネイトです|！", true, false, NoVeto},
		{"ما اسمك|؟ أنا", false, false, NoVeto},
		{"^Hello there|. My", false, false, NoVeto},
		{"|^Hello there.", false, false, NoSpaceFollows},
		{"My name is Chris.|^", false, false, NoVeto},
	}
	for _, test := range tests {
		cls := Default(test.noSpaces)
		v := cls.Classify(candidate(test.text, test.enclosed))
		if v.Veto != test.veto {
			t.Errorf("%q: expected veto %s, have %s", test.text, test.veto, v.Veto)
		}
		if v.IsBoundary() != (test.veto == NoVeto) {
			t.Errorf("%q: penalty %d does not match veto %s", test.text, v.Penalty, v.Veto)
		}
	}
}

func TestAbbreviationRule(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	v := Default(false).Classify(candidate("I love the U.S.A|., it is so cool!", false))
	if v.Veto != NoSpaceFollows {
		t.Errorf("expected period before comma to need a space, have %s", v.Veto)
	}
	v = Default(false).Classify(candidate("Agent J|. Smith", false))
	if v.Veto != Abbreviation || v.Rule != abbrev.ShortCaps {
		t.Errorf("expected short caps abbreviation, have %s/%s", v.Veto, v.Rule)
	}
}

func TestTerminators(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	cls := Default(false)
	for _, r := range "。！？｡．؟۔।॥‼⁇⁈⁉^" {
		if !cls.IsTerminator(r) {
			t.Errorf("expected %#U to be a terminator", r)
		}
	}
	if cls.IsTerminator(';') || cls.IsTerminator('…') {
		t.Errorf("unexpected terminator")
	}
	custom := New(false, nil, ';', ' ')
	if !custom.IsTerminator(';') || custom.IsTerminator(' ') {
		t.Errorf("expected ';' but not ' ' to be added as terminator")
	}
	if Default(true) == Default(false) || !Default(true).NoInterSentenceSpaces() {
		t.Errorf("expected distinct default classifiers per spacing convention")
	}
	if !IsIdeographic('。') || !IsIdeographic('｡') || IsIdeographic('.') || IsIdeographic('؟') {
		t.Errorf("unexpected ideographic classification")
	}
	if p := cls.Penalty(candidate("Done|.", false)); p != parasplit.InfiniteMerits {
		t.Errorf("expected merits for a boundary, have %d", p)
	}
}
