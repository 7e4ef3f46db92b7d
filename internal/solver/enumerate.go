package solver

// FreqTable counts letter occurrences across a candidate list. Repeated
// letters within one word each count.
type FreqTable [26]int

// Of returns the tally for letter c.
func (t *FreqTable) Of(c byte) int {
	return t[c-'a']
}

func (t *FreqTable) add(word string) {
	for i := 0; i < len(word); i++ {
		t[word[i]-'a']++
	}
}

// Enumerate walks words in order and keeps those that still match cons,
// tallying letter frequencies over the survivors as it goes. An empty
// result is not an error; with an exhausted constraint state it is the
// only possible outcome.
func Enumerate(words []string, cons Constraints) ([]string, FreqTable) {
	var freq FreqTable
	candidates := make([]string, 0, len(words))
	for _, w := range words {
		if !cons.Match(w) {
			continue
		}
		candidates = append(candidates, w)
		freq.add(w)
	}
	return candidates, freq
}
