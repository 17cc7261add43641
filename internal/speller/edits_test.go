package speller

import "testing"

func TestEdits1_CandidateCount(t *testing.T) {
	// len deletions + len-1 transpositions + 26*len alterations +
	// 26*(len+1) insertions
	tests := []struct {
		word string
		want int
	}{
		{"", 26},
		{"a", 1 + 0 + 26 + 52},
		{"cat", 3 + 2 + 78 + 104},
		{"spelling", 8 + 7 + 208 + 234},
	}
	s := New()
	for _, tt := range tests {
		if got := len(s.edits1(tt.word)); got != tt.want {
			t.Errorf("edits1(%q) produced %d candidates, want %d", tt.word, got, tt.want)
		}
	}
}

func TestEdits1_ContainsEachEditKind(t *testing.T) {
	s := New()
	edits := make(map[string]bool)
	for _, e := range s.edits1("cat") {
		edits[e] = true
	}

	for _, want := range []string{
		"at",   // deletion
		"act",  // transposition
		"cut",  // alteration
		"cart", // insertion
		"cat",  // no-op alteration is permitted
	} {
		if !edits[want] {
			t.Errorf("edits1(%q) is missing %q", "cat", want)
		}
	}
}

func TestEdits1_RuneBoundaries(t *testing.T) {
	s := New()
	// the tokenizer keeps multi-byte runes out of the table, but the
	// generator itself must never slice mid-rune
	for _, e := range s.edits1("héllo") {
		for _, r := range e {
			if r == '�' {
				t.Fatalf("edits1 produced invalid UTF-8 in %q", e)
			}
		}
	}
}
