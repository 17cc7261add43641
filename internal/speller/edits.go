package speller

// edits1 returns every string reachable from word by exactly one deletion,
// transposition, alteration or insertion. The output may contain duplicates;
// ranking is a max over table lookups so they only cost time, not
// correctness. Indexing is over runes, not bytes, so a word that slipped
// past the tokenizer with a multi-byte character never splits mid-rune.
func (s *Speller) edits1(word string) []string {
	r := []rune(word)
	n := len(r)
	edits := make([]string, 0, n*(2*len(s.letters)+2)+len(s.letters))

	// deletion
	for i := 0; i < n; i++ {
		edits = append(edits, string(r[:i])+string(r[i+1:]))
	}

	// transposition of adjacent runes
	for i := 0; i+1 < n; i++ {
		t := make([]rune, n)
		copy(t, r)
		t[i], t[i+1] = t[i+1], t[i]
		edits = append(edits, string(t))
	}

	// alteration
	for i := 0; i < n; i++ {
		for _, c := range s.letters {
			edits = append(edits, string(r[:i])+string(c)+string(r[i+1:]))
		}
	}

	// insertion, including before the first and after the last rune
	for i := 0; i <= n; i++ {
		for _, c := range s.letters {
			edits = append(edits, string(r[:i])+string(c)+string(r[i:]))
		}
	}

	return edits
}
