package speller

import "sort"

type Suggestion struct {
	Text   string
	Score  float64
	Source string
}

// Suggest returns ranked correction candidates for word. Tiers are never
// interleaved: a known word yields only itself, edit-distance-1 matches are
// returned without falling through to distance 2, and distance 2 is searched
// only when distance 1 found nothing. limit <= 0 means no limit.
func (s *Speller) Suggest(word string, limit int) []Suggestion {
	if s.Known(word) {
		return []Suggestion{{Text: word, Score: float64(s.Counts[word]), Source: "exact"}}
	}

	edits := s.edits1(word)
	if results := s.rank(edits, "edit1", limit); len(results) > 0 {
		return results
	}

	var edits2 []string
	for _, e := range edits {
		edits2 = append(edits2, s.edits1(e)...)
	}
	return s.rank(edits2, "edit2", limit)
}

func (s *Speller) rank(candidates []string, source string, limit int) []Suggestion {
	seen := make(map[string]bool)
	var results []Suggestion
	for _, c := range candidates {
		n, ok := s.Counts[c]
		if !ok || seen[c] {
			continue
		}
		seen[c] = true
		results = append(results, Suggestion{Text: c, Score: float64(n), Source: source})
	}

	// count DESC, then lexicographic for a stable order
	sort.Slice(results, func(i, j int) bool {
		if results[i].Score == results[j].Score {
			return results[i].Text < results[j].Text
		}
		return results[i].Score > results[j].Score
	})

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}
