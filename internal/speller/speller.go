package speller

import (
	"regexp"
	"strings"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// Speller is a Norvig-style spell corrector: a word frequency table built
// from a training corpus plus a bounded edit-distance search over it.
type Speller struct {
	Counts map[string]int

	letters []rune
	wordRe  *regexp.Regexp
}

func New() *Speller {
	return &Speller{
		Counts:  make(map[string]int),
		letters: []rune(alphabet),
		wordRe:  regexp.MustCompile(`[a-z]+`),
	}
}

// Train accumulates word counts from text. It lowercases the input and
// counts every maximal alphabetic run; everything else is discarded.
// Repeated calls add to the existing counts.
func (s *Speller) Train(text string) {
	for _, w := range s.wordRe.FindAllString(strings.ToLower(text), -1) {
		s.Counts[w]++
	}
}

// AddEntry adds count directly to a word, e.g. from a pre-counted frequency
// dictionary or the custom word store. Words with characters outside the
// alphabet are ignored so the table only ever holds lowercase alphabetic keys.
func (s *Speller) AddEntry(word string, count int) {
	word = strings.ToLower(word)
	if word == "" || count <= 0 {
		return
	}
	for _, r := range word {
		if r < 'a' || r > 'z' {
			return
		}
	}
	s.Counts[word] += count
}

func (s *Speller) Known(word string) bool {
	_, ok := s.Counts[word]
	return ok
}

func (s *Speller) Count(word string) int {
	return s.Counts[word]
}

// Correct returns the best-guess correction for word. Candidates are ranked
// in strict tiers: an exact match always wins, then edit-distance-1 matches,
// then edit-distance-2. Within a tier the highest count wins; equal counts
// are broken by the lexicographically smaller word. If nothing within
// distance 2 is known the input comes back unchanged.
func (s *Speller) Correct(word string) string {
	if s.Known(word) {
		return word
	}

	edits := s.edits1(word)
	if best, ok := s.bestCandidate(edits); ok {
		return best
	}

	var edits2 []string
	for _, e := range edits {
		edits2 = append(edits2, s.edits1(e)...)
	}
	if best, ok := s.bestCandidate(edits2); ok {
		return best
	}

	return word
}

func (s *Speller) bestCandidate(candidates []string) (string, bool) {
	var best string
	var bestCount int
	found := false
	for _, c := range candidates {
		n, ok := s.Counts[c]
		if !ok {
			continue
		}
		if !found || n > bestCount || (n == bestCount && c < best) {
			best = c
			bestCount = n
			found = true
		}
	}
	return best, found
}
