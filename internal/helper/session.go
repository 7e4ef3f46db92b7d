// Package helper tracks an in-progress game being played elsewhere.
// The player types each guess with the tile colors their game showed,
// and the session narrows the candidate pool and ranks what to try
// next.
package helper

import (
	"fmt"
	"strings"

	"github.com/domino14/wordle_explorer/internal/lexicon"
	"github.com/domino14/wordle_explorer/internal/solver"
	"github.com/domino14/wordle_explorer/internal/strategy"
)

// Session is one game's worth of accumulated constraints. Not safe for
// concurrent use; the server wraps each request in a fresh session.
type Session struct {
	corpus *lexicon.Corpus
	scorer strategy.Scorer
	cons   solver.Constraints
	tried  solver.LetterSet
	moves  []solver.Move
}

func NewSession(corpus *lexicon.Corpus) *Session {
	return &Session{
		corpus: corpus,
		scorer: strategy.MaxInfo{},
		cons:   solver.NewConstraints(),
	}
}

// Guess records a played word with the tile marks the game reported
// (five of g/y/x) and narrows the constraints.
func (s *Session) Guess(word, marks string) (solver.Move, error) {
	word = strings.ToLower(strings.TrimSpace(word))
	fb, err := solver.ParseFeedback(marks)
	if err != nil {
		return solver.Move{}, err
	}
	solved, after, err := solver.Apply(word, fb, s.cons)
	if err != nil {
		return solver.Move{}, err
	}
	candidates, _ := solver.Enumerate(s.corpus.Words(), after)
	move := solver.Move{
		Guess:     word,
		Feedback:  fb.String(),
		Before:    s.cons,
		After:     after,
		Remaining: len(candidates),
		Exhausted: after.Exhausted(),
		Solved:    solved,
	}
	s.moves = append(s.moves, move)
	s.cons = after
	s.tried = s.tried.WithLetters(word)
	return move, nil
}

// Ranked returns the remaining candidates, best guess first.
func (s *Session) Ranked() []strategy.Scored {
	candidates, freq := solver.Enumerate(s.corpus.Words(), s.cons)
	return strategy.Rank(candidates, &freq, s.tried.Complement(), s.scorer)
}

// Moves returns the guesses so far.
func (s *Session) Moves() []solver.Move {
	return s.moves
}

func (s *Session) Constraints() solver.Constraints {
	return s.cons
}

// Solved reports whether the last guess hit the answer.
func (s *Session) Solved() bool {
	return len(s.moves) > 0 && s.moves[len(s.moves)-1].Solved
}

// Reset starts the session over for a new game on the same corpus.
func (s *Session) Reset() {
	s.cons = solver.NewConstraints()
	s.tried = 0
	s.moves = nil
}

// FormatRanked renders up to limit candidates one per line, confirmed
// past answers in uppercase, with a possibility count underneath.
// limit <= 0 shows everything.
func (s *Session) FormatRanked(limit int) string {
	ranked := s.Ranked()
	shown := ranked
	if limit > 0 && len(ranked) > limit {
		shown = ranked[:limit]
	}
	var sb strings.Builder
	for _, r := range shown {
		word := r.Word
		if s.corpus.Confirmed(word) {
			word = strings.ToUpper(word)
		}
		sb.WriteString(word)
		sb.WriteByte('\n')
	}
	if len(shown) < len(ranked) {
		fmt.Fprintf(&sb, "(...%d more)\n", len(ranked)-len(shown))
	}
	unconfirmed := 0
	for _, r := range ranked {
		if !s.corpus.Confirmed(r.Word) {
			unconfirmed++
		}
	}
	plural := "y"
	if len(ranked) != 1 {
		plural = "ies"
	}
	fmt.Fprintf(&sb, "\n%d possibilit%s (%d unconfirmed)", len(ranked), plural, unconfirmed)
	return sb.String()
}
