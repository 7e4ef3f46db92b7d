package explorer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/domino14/wordle_explorer/internal/stores"
)

func row(start, answer string, moves int, solved, exhausted bool) stores.ResultRow {
	return stores.ResultRow{
		Strategy:  "test",
		StartWord: start,
		Answer:    answer,
		Moves:     moves,
		Solved:    solved,
		Exhausted: exhausted,
		Trace:     []byte("[]"),
	}
}

func TestSummarize(t *testing.T) {
	rows := []stores.ResultRow{
		row("until", "arose", 3, true, false),
		row("until", "cider", 5, true, false),
		row("arose", "cider", 2, true, false),
		row("arose", "sooty", 6, false, false),
		row("cider", "arose", 6, false, false),
		row("cider", "sooty", 6, false, true),
	}
	sum := Summarize("test", rows, 100)

	assert.Equal(t, "test", sum.Strategy)
	assert.Equal(t, 6, sum.TotalGames)
	assert.Equal(t, 3, sum.TotalSolved)
	assert.Equal(t, 3, sum.TotalUnsolved)
	assert.Equal(t, 1, sum.TotalErrors)
	assert.Equal(t, 28, sum.TotalMoves)
	assert.InDelta(t, 10.0/3.0, sum.MeanMoves, 1e-9)
	assert.Equal(t, 3.0, sum.MedianMoves)

	// cider solved nothing so it only shows up as a non-solution.
	assert.Equal(t, []StartScore{{"arose", 2}, {"until", 4}}, sum.BestStarts)
	assert.Equal(t, []StartScore{{"until", 4}, {"arose", 2}}, sum.WorstStarts)
	assert.Equal(t,
		[]StartMisses{{"arose", 1}, {"cider", 2}},
		sum.NonSolutions)
}

func TestSummarizeKeepsLeaderboardTies(t *testing.T) {
	rows := []stores.ResultRow{
		row("arose", "merit", 2, true, false),
		row("until", "pound", 2, true, false),
		row("sooty", "shake", 3, true, false),
	}
	sum := Summarize("test", rows, 1)

	// The two averages of 2 tie at the leaderboard cutoff; both stay.
	assert.Equal(t, []StartScore{{"arose", 2}, {"until", 2}}, sum.BestStarts)
	assert.Equal(t, []StartScore{{"sooty", 3}}, sum.WorstStarts)
}

func TestSummarizeEmpty(t *testing.T) {
	sum := Summarize("test", nil, 100)
	assert.Equal(t, 0, sum.TotalGames)
	assert.Equal(t, 0.0, sum.MeanMoves)
	assert.Equal(t, 0.0, sum.MedianMoves)
	assert.Empty(t, sum.BestStarts)
	assert.Empty(t, sum.NonSolutions)
}

func TestMedian(t *testing.T) {
	assert.Equal(t, 3.0, median([]int{5, 3, 2}))
	assert.Equal(t, 3.5, median([]int{2, 3, 4, 6}))
	assert.Equal(t, 0.0, median(nil))
}
