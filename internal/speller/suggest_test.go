package speller_test

import (
	"testing"

	"github.com/trknhr/spellfix/internal/speller"
)

func TestSuggest_ExactMatchStandsAlone(t *testing.T) {
	s := speller.New()
	s.Train("spelling spelling spellings")

	results := s.Suggest("spelling", 10)
	if len(results) != 1 {
		t.Fatalf("expected a single exact suggestion, got %d: %+v", len(results), results)
	}
	if results[0].Text != "spelling" || results[0].Source != "exact" || results[0].Score != 2 {
		t.Errorf("unexpected exact suggestion: %+v", results[0])
	}
}

func TestSuggest_RanksByCountThenText(t *testing.T) {
	s := speller.New()
	s.Train("cat cat cat bat bat rat")

	results := s.Suggest("zat", 10)
	if len(results) != 3 {
		t.Fatalf("expected 3 suggestions, got %d: %+v", len(results), results)
	}
	want := []struct {
		text  string
		score float64
	}{
		{"cat", 3},
		{"bat", 2},
		{"rat", 1},
	}
	for i, w := range want {
		if results[i].Text != w.text || results[i].Score != w.score {
			t.Errorf("result %d = %+v, want %s/%v", i, results[i], w.text, w.score)
		}
		if results[i].Source != "edit1" {
			t.Errorf("result %d has source %q, want edit1", i, results[i].Source)
		}
	}
}

func TestSuggest_FallsBackToDistance2(t *testing.T) {
	s := speller.New()
	s.Train("spelling")

	results := s.Suggest("spullang", 10)
	if len(results) == 0 {
		t.Fatal("expected distance-2 suggestions, got none")
	}
	if results[0].Text != "spelling" || results[0].Source != "edit2" {
		t.Errorf("unexpected top suggestion: %+v", results[0])
	}
}

func TestSuggest_HonorsLimit(t *testing.T) {
	s := speller.New()
	s.Train("cat bat rat mat hat sat")

	results := s.Suggest("zat", 3)
	if len(results) != 3 {
		t.Errorf("expected 3 suggestions with limit 3, got %d", len(results))
	}
}

func TestSuggest_UnknownWordYieldsNothing(t *testing.T) {
	s := speller.New()
	s.Train("spelling")

	if results := s.Suggest("qqxxzzvv", 10); len(results) != 0 {
		t.Errorf("expected no suggestions, got %+v", results)
	}
}
