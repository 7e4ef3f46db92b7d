package solver

import (
	"testing"

	"github.com/matryer/is"
)

func TestLetterSetBasics(t *testing.T) {
	is := is.New(t)
	s := LetterSetOf("arose")
	is.Equal(s.Count(), 5)
	is.True(s.Has('a'))
	is.True(s.Has('e'))
	is.True(!s.Has('b'))
	is.Equal(s.String(), "aeors")

	s = s.Without('a')
	is.True(!s.Has('a'))
	is.Equal(s.Count(), 4)

	s = s.With('a').With('a')
	is.Equal(s.Count(), 5)
}

func TestLetterSetComplement(t *testing.T) {
	is := is.New(t)
	is.Equal(LetterSet(0).Complement(), AllLetters)
	is.Equal(AllLetters.Complement(), LetterSet(0))

	tried := LetterSet(0).WithLetters("until").WithLetters("arose")
	untried := tried.Complement()
	is.Equal(untried.Count(), 26-10)
	is.True(untried.Has('b'))
	is.True(!untried.Has('u'))
	is.True(!untried.Has('e'))
}

func TestLetterSetOfIgnoresNonLetters(t *testing.T) {
	is := is.New(t)
	is.Equal(LetterSetOf("a-z!"), LetterSetOf("az"))
	is.Equal(LetterSetOf(""), LetterSet(0))
}
