// Package strategy turns the constraint solver into a guessing player:
// scorers rank candidate words, a Strategy couples a scorer with
// optional forced openings, and Solve drives a full game against a
// known answer.
package strategy

import (
	"sort"

	"lukechampine.com/frand"

	"github.com/domino14/wordle_explorer/internal/solver"
)

// A Scorer rates how attractive a candidate guess is. freq holds letter
// tallies over the current candidate pool and untried the letters not
// yet played this game. Higher is better.
type Scorer interface {
	Score(freq *solver.FreqTable, untried solver.LetterSet, word string) float64
}

// MaxInfo favors words whose letters are common among the remaining
// candidates and not yet tried, weighted toward words with more
// distinct letters. Repeated letters only count once.
type MaxInfo struct{}

func (MaxInfo) Score(freq *solver.FreqTable, untried solver.LetterSet, word string) float64 {
	var seen solver.LetterSet
	sum := 0
	for i := 0; i < len(word); i++ {
		c := word[i]
		if seen.Has(c) {
			continue
		}
		seen = seen.With(c)
		if untried.Has(c) {
			sum += freq.Of(c)
		}
	}
	return float64(sum * seen.Count())
}

// Random scores every word with a fresh random value, giving a uniform
// pick among candidates. Useful as a baseline for comparing scorers.
type Random struct{}

func (Random) Score(freq *solver.FreqTable, untried solver.LetterSet, word string) float64 {
	return frand.Float64()
}

// Scored is a ranked candidate.
type Scored struct {
	Word  string
	Score float64
}

// Rank scores every word and sorts descending, breaking score ties
// alphabetically so equal-scoring runs come out in a stable order.
func Rank(words []string, freq *solver.FreqTable, untried solver.LetterSet, sc Scorer) []Scored {
	ranked := make([]Scored, len(words))
	for i, w := range words {
		ranked[i] = Scored{Word: w, Score: sc.Score(freq, untried, w)}
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Word < ranked[j].Word
	})
	return ranked
}
