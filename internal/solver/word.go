package solver

import (
	"errors"
	"fmt"
)

// WordLength is the puzzle word length.
const WordLength = 5

// ErrInvalidWord is returned when a word is not exactly five lowercase
// ASCII letters.
var ErrInvalidWord = errors.New("word must be exactly five lowercase letters")

// ValidateWord checks that w is usable as a guess or an answer.
func ValidateWord(w string) error {
	if len(w) != WordLength {
		return fmt.Errorf("%q: %w", w, ErrInvalidWord)
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'a' || w[i] > 'z' {
			return fmt.Errorf("%q: %w", w, ErrInvalidWord)
		}
	}
	return nil
}
