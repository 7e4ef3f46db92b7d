package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var miniCorpus = []string{"arose", "cider", "sooty", "until"}

func TestEnumerateOpenState(t *testing.T) {
	candidates, freq := Enumerate(miniCorpus, NewConstraints())
	assert.Equal(t, miniCorpus, candidates)
	// sooty's repeated o counts twice.
	assert.Equal(t, 3, freq.Of('o'))
	assert.Equal(t, 2, freq.Of('r'))
	assert.Equal(t, 1, freq.Of('a'))
	assert.Equal(t, 0, freq.Of('z'))
}

func TestEnumerateAfterMiss(t *testing.T) {
	_, cons, err := Evaluate("until", "arose", NewConstraints())
	assert.Nil(t, err)
	candidates, freq := Enumerate(miniCorpus, cons)
	assert.Equal(t, []string{"arose"}, candidates)
	assert.Equal(t, 1, freq.Of('a'))
	assert.Equal(t, 1, freq.Of('o'))
	assert.Equal(t, 0, freq.Of('u'))
}

func TestEnumerateExhaustedStateIsEmpty(t *testing.T) {
	cons := NewConstraints()
	cons.possible[2] = 0
	candidates, freq := Enumerate(miniCorpus, cons)
	assert.Empty(t, candidates)
	assert.Equal(t, FreqTable{}, freq)
}

func TestEnumeratePreservesCorpusOrder(t *testing.T) {
	cons := NewConstraints()
	cons.unplaced = LetterSetOf("o")
	candidates, _ := Enumerate(miniCorpus, cons)
	assert.Equal(t, []string{"arose", "sooty"}, candidates)
}
