package strategy

import (
	"errors"
	"fmt"

	"github.com/domino14/wordle_explorer/internal/solver"
)

var (
	// ErrNilScorer is returned when a strategy is built without a
	// delegate scorer.
	ErrNilScorer = errors.New("strategy needs a scorer")
	// ErrThreshold is returned for an abort threshold outside [0, 1].
	ErrThreshold = errors.New("abort threshold must be between 0 and 1")
)

// Strategy is a fully configured player: a scorer, an optional run of
// forced opening words, and an optional early-abort threshold for the
// openings. Build one with New; the zero value has no scorer and will
// not play.
type Strategy struct {
	Name     string
	Scorer   Scorer
	Openings []string

	// AbortThreshold, when set, stops playing forced openings as soon
	// as the candidate pool has shrunk below (1 - threshold) of the
	// corpus. 0.8 means "abort once 80% of the corpus is eliminated".
	AbortThreshold *float64
}

// New validates and builds a strategy. Every opening must be a valid
// word and the threshold, when given, must lie in [0, 1].
func New(name string, sc Scorer, openings []string, abortThreshold *float64) (Strategy, error) {
	if sc == nil {
		return Strategy{}, fmt.Errorf("%s: %w", name, ErrNilScorer)
	}
	if abortThreshold != nil && (*abortThreshold < 0 || *abortThreshold > 1) {
		return Strategy{}, fmt.Errorf("%s: %v: %w", name, *abortThreshold, ErrThreshold)
	}
	for _, w := range openings {
		if err := solver.ValidateWord(w); err != nil {
			return Strategy{}, fmt.Errorf("%s: opening %w", name, err)
		}
	}
	st := Strategy{
		Name:           name,
		Scorer:         sc,
		Openings:       append([]string(nil), openings...),
		AbortThreshold: abortThreshold,
	}
	return st, nil
}

// abortOpenings reports whether the remaining forced openings should be
// skipped because the pool already shrank past the threshold.
func (st Strategy) abortOpenings(remaining, corpusLen int) bool {
	if st.AbortThreshold == nil {
		return false
	}
	return float64(remaining) < (1-*st.AbortThreshold)*float64(corpusLen)
}
