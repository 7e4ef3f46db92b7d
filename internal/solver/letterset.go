// Package solver implements the constraint model for five-letter word
// puzzles: per-position letter sets, guess feedback, constraint
// narrowing, and candidate enumeration over a word corpus.
package solver

import (
	"math/bits"
	"strings"
)

// LetterSet is a set of lowercase letters packed into a bitmask.
// Bit 0 is 'a', bit 25 is 'z'.
type LetterSet uint32

// AllLetters has every letter of the alphabet set.
const AllLetters LetterSet = 1<<26 - 1

func bit(c byte) LetterSet {
	return 1 << (c - 'a')
}

func (s LetterSet) Has(c byte) bool {
	return s&bit(c) != 0
}

func (s LetterSet) With(c byte) LetterSet {
	return s | bit(c)
}

func (s LetterSet) Without(c byte) LetterSet {
	return s &^ bit(c)
}

// WithLetters adds every letter of word to the set.
func (s LetterSet) WithLetters(word string) LetterSet {
	for i := 0; i < len(word); i++ {
		s = s.With(word[i])
	}
	return s
}

func (s LetterSet) Count() int {
	return bits.OnesCount32(uint32(s))
}

func (s LetterSet) Empty() bool {
	return s == 0
}

// Complement returns the letters of the alphabet not in s.
func (s LetterSet) Complement() LetterSet {
	return ^s & AllLetters
}

// String renders the member letters in alphabetical order.
func (s LetterSet) String() string {
	var sb strings.Builder
	for c := byte('a'); c <= 'z'; c++ {
		if s.Has(c) {
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

// LetterSetOf builds a set from the letters of s. Characters outside
// 'a'..'z' are ignored.
func LetterSetOf(s string) LetterSet {
	var ls LetterSet
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= 'a' && c <= 'z' {
			ls = ls.With(c)
		}
	}
	return ls
}
