package solver

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Constraints tracks what is still known to be possible about the
// answer: one candidate letter set per position, plus the letters known
// to be in the answer whose position has not been pinned down yet.
//
// The zero value is unusable; start from NewConstraints. All narrowing
// operations return a new value and leave the receiver untouched.
type Constraints struct {
	possible [WordLength]LetterSet
	unplaced LetterSet
}

// NewConstraints returns the open state: every letter possible at every
// position and nothing known to be unplaced.
func NewConstraints() Constraints {
	var c Constraints
	for i := range c.possible {
		c.possible[i] = AllLetters
	}
	return c
}

// Possible returns the candidate letter set for position pos (0-based).
func (c Constraints) Possible(pos int) LetterSet {
	return c.possible[pos]
}

// Unplaced returns the letters known to be in the answer but not yet
// tied to a position.
func (c Constraints) Unplaced() LetterSet {
	return c.unplaced
}

// Exhausted reports whether any position has run out of candidate
// letters. Once that happens no corpus word can match, so a solve loop
// must stop rather than keep narrowing.
func (c Constraints) Exhausted() bool {
	for _, s := range c.possible {
		if s.Empty() {
			return true
		}
	}
	return false
}

// Pinned returns the letters at positions that have collapsed to a
// single candidate, in position order. Unresolved positions render as
// '.'.
func (c Constraints) Pinned() string {
	var sb strings.Builder
	for _, s := range c.possible {
		if s.Count() == 1 {
			sb.WriteString(s.String())
		} else {
			sb.WriteByte('.')
		}
	}
	return sb.String()
}

// Match reports whether word is still admissible: each letter must be
// possible at its position and every unplaced letter must occur
// somewhere in the word.
func (c Constraints) Match(word string) bool {
	if len(word) != WordLength {
		return false
	}
	for i := 0; i < WordLength; i++ {
		if !c.possible[i].Has(word[i]) {
			return false
		}
	}
	return c.unplaced&^LetterSetOf(word) == 0
}

// Pattern renders the per-position sets as a regular-expression style
// character-class string, e.g. "s[ao][iou]r.". Collapsed positions
// render as the bare letter, untouched positions as '.'.
func (c Constraints) Pattern() string {
	var sb strings.Builder
	for _, s := range c.possible {
		switch s.Count() {
		case 26:
			sb.WriteByte('.')
		case 1:
			sb.WriteString(s.String())
		case 0:
			sb.WriteString("[]")
		default:
			sb.WriteByte('[')
			sb.WriteString(s.String())
			sb.WriteByte(']')
		}
	}
	return sb.String()
}

// Equal reports whether two constraint states are identical.
func (c Constraints) Equal(o Constraints) bool {
	return c == o
}

type constraintsJSON struct {
	Positions [WordLength]string `json:"positions"`
	Unplaced  string             `json:"unplaced"`
}

// MarshalJSON encodes each position's set and the unplaced set as
// strings of letters, which keeps stored traces readable.
func (c Constraints) MarshalJSON() ([]byte, error) {
	var cj constraintsJSON
	for i, s := range c.possible {
		cj.Positions[i] = s.String()
	}
	cj.Unplaced = c.unplaced.String()
	return json.Marshal(cj)
}

func (c *Constraints) UnmarshalJSON(data []byte) error {
	var cj constraintsJSON
	if err := json.Unmarshal(data, &cj); err != nil {
		return err
	}
	for i, p := range cj.Positions {
		for j := 0; j < len(p); j++ {
			if p[j] < 'a' || p[j] > 'z' {
				return fmt.Errorf("position %d: bad letter %q", i, p[j])
			}
		}
		c.possible[i] = LetterSetOf(p)
	}
	c.unplaced = LetterSetOf(cj.Unplaced)
	return nil
}
