package parasplit

import "testing"

func TestPenalties(t *testing.T) {
	tests := []struct {
		p        int
		boundary bool
	}{
		{InfiniteMerits, true},
		{-5, true},
		{0, false},
		{1, false},
		{500, false},
		{999, false},
		{InfinitePenalty, false},
		{5000, false},
	}
	for _, test := range tests {
		if IsBoundary(test.p) != test.boundary {
			t.Errorf("expected IsBoundary(%d) to be %v", test.p, test.boundary)
		}
	}
	if Bounded(-3000) != InfiniteMerits || Bounded(3000) != InfinitePenalty || Bounded(7) != 7 {
		t.Errorf("penalties not bounded correctly")
	}
}

func TestCandidate(t *testing.T) {
	c := Candidate{Text: "Hi. Ho.", Pos: 2, Size: 1, Rune: '.'}
	if c.Before() != "Hi" || c.After() != " Ho." {
		t.Errorf("unexpected context %q|%q", c.Before(), c.After())
	}
	s := Span{From: 4, To: 7}
	if s.Of(c.Text) != "Ho." || s.Len() != 3 || s.IsEmpty() {
		t.Errorf("unexpected span %v", s)
	}
	if !(Span{From: 3, To: 3}).IsEmpty() {
		t.Errorf("expected empty span")
	}
}
