package solver

import (
	"fmt"
	"strings"
)

// Tile is the feedback mark for a single guess position.
type Tile byte

const (
	// TileAbsent means the letter does not appear in the answer.
	TileAbsent Tile = iota
	// TilePresent means the letter appears in the answer but not here.
	TilePresent
	// TileExact means the letter is correct at this position.
	TileExact
)

// Feedback is the per-position marking of a full guess.
type Feedback [WordLength]Tile

// AllExact reports whether every tile is an exact match, i.e. the guess
// was the answer.
func (f Feedback) AllExact() bool {
	for _, t := range f {
		if t != TileExact {
			return false
		}
	}
	return true
}

// String renders feedback as five marks: g (exact), y (present),
// x (absent).
func (f Feedback) String() string {
	var sb strings.Builder
	for _, t := range f {
		switch t {
		case TileExact:
			sb.WriteByte('g')
		case TilePresent:
			sb.WriteByte('y')
		default:
			sb.WriteByte('x')
		}
	}
	return sb.String()
}

// ParseFeedback reads a five-character mark string as typed in by a
// player copying tiles off their screen: g/y/x, case-insensitive.
func ParseFeedback(marks string) (Feedback, error) {
	var f Feedback
	if len(marks) != WordLength {
		return f, fmt.Errorf("feedback %q: need exactly %d marks of g/y/x", marks, WordLength)
	}
	for i := 0; i < len(marks); i++ {
		switch marks[i] {
		case 'g', 'G':
			f[i] = TileExact
		case 'y', 'Y':
			f[i] = TilePresent
		case 'x', 'X':
			f[i] = TileAbsent
		default:
			return Feedback{}, fmt.Errorf("feedback %q: bad mark %q, want g/y/x", marks, marks[i])
		}
	}
	return f, nil
}

// Classify marks each guess position against the answer. A position is
// exact when the letters agree, present when the guessed letter occurs
// anywhere else in the answer, absent otherwise. Repeated guess letters
// are each classified independently, so a letter the answer holds once
// can be marked present twice. That keeps classification consistent
// with how Apply narrows constraints; see the Apply comment.
func Classify(guess, answer string) (Feedback, error) {
	var f Feedback
	if err := ValidateWord(guess); err != nil {
		return f, err
	}
	if err := ValidateWord(answer); err != nil {
		return f, err
	}
	for i := 0; i < WordLength; i++ {
		switch {
		case guess[i] == answer[i]:
			f[i] = TileExact
		case strings.IndexByte(answer, guess[i]) >= 0:
			f[i] = TilePresent
		default:
			f[i] = TileAbsent
		}
	}
	return f, nil
}

// Apply narrows cons with the feedback for guess, processing positions
// left to right. Exact collapses the position to that letter and clears
// it from the unplaced set. Present records the letter as unplaced and
// removes it from this position only. Absent removes the letter from
// every position and from the unplaced set.
//
// The rule is deliberately letter-by-letter and does not track how many
// copies of a letter the answer holds. Feedback for a word with
// repeated letters can therefore over-narrow, and externally supplied
// tile marks can even empty a position's set. Callers must treat an
// exhausted state as a stop signal, not an invariant violation.
//
// The returned bool reports whether the guess solved the puzzle.
func Apply(guess string, f Feedback, cons Constraints) (bool, Constraints, error) {
	if err := ValidateWord(guess); err != nil {
		return false, cons, err
	}
	next := cons
	for i := 0; i < WordLength; i++ {
		g := guess[i]
		switch f[i] {
		case TileExact:
			next.possible[i] = bit(g)
			next.unplaced = next.unplaced.Without(g)
		case TilePresent:
			next.possible[i] = next.possible[i].Without(g)
			next.unplaced = next.unplaced.With(g)
		case TileAbsent:
			for p := range next.possible {
				next.possible[p] = next.possible[p].Without(g)
			}
			next.unplaced = next.unplaced.Without(g)
		}
	}
	return f.AllExact(), next, nil
}

// Evaluate classifies guess against a known answer and applies the
// resulting feedback to cons. It is the solve-loop form of the
// Classify/Apply pair; interactive callers that only have tile marks
// use ParseFeedback plus Apply instead.
func Evaluate(guess, answer string, cons Constraints) (bool, Constraints, error) {
	f, err := Classify(guess, answer)
	if err != nil {
		return false, cons, err
	}
	return Apply(guess, f, cons)
}
