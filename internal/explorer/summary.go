package explorer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/domino14/wordle_explorer/internal/fairheap"
	"github.com/domino14/wordle_explorer/internal/stores"
)

// Summary aggregates one strategy's full batch run.
type Summary struct {
	Strategy      string        `json:"strategy"`
	TotalGames    int           `json:"total_games"`
	TotalSolved   int           `json:"total_solved"`
	TotalUnsolved int           `json:"total_unsolved"`
	TotalErrors   int           `json:"total_errors"`
	TotalMoves    int           `json:"total_moves"`
	MeanMoves     float64       `json:"mean_moves"`
	MedianMoves   float64       `json:"median_moves"`
	BestStarts    []StartScore  `json:"best_starting_words"`
	WorstStarts   []StartScore  `json:"worst_starting_words"`
	NonSolutions  []StartMisses `json:"non_solution_starts"`
}

// StartScore is a starting word with its average move count over the
// answers it solved.
type StartScore struct {
	Word     string  `json:"word"`
	AvgMoves float64 `json:"avg_moves"`
}

// StartMisses is a starting word with the number of answers it failed
// to reach.
type StartMisses struct {
	Word   string `json:"word"`
	Misses int    `json:"misses"`
}

// String renders the summary as compact lines fit for a terminal or a
// chat bot.
func (s *Summary) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: %d/%d solved", s.Strategy, s.TotalSolved, s.TotalGames)
	if s.TotalErrors > 0 {
		fmt.Fprintf(&sb, " (%d erroneous exhaustions)", s.TotalErrors)
	}
	fmt.Fprintf(&sb, ", mean %.2f moves, median %.1f", s.MeanMoves, s.MedianMoves)
	if len(s.BestStarts) > 0 {
		sb.WriteString("\nbest starts:")
		for _, b := range s.BestStarts {
			fmt.Fprintf(&sb, " %s (%.2f)", b.Word, b.AvgMoves)
		}
	}
	if len(s.WorstStarts) > 0 {
		sb.WriteString("\nworst starts:")
		for _, b := range s.WorstStarts {
			fmt.Fprintf(&sb, " %s (%.2f)", b.Word, b.AvgMoves)
		}
	}
	if len(s.NonSolutions) > 0 {
		sb.WriteString("\nsometimes unsolved:")
		for _, n := range s.NonSolutions {
			fmt.Fprintf(&sb, " %s (%d)", n.Word, n.Misses)
		}
	}
	return sb.String()
}

type startTally struct {
	solved int
	moves  int
	misses int
}

// Summarize computes a strategy's summary from its result rows. The
// best/worst leaderboards hold about keep entries each; ties at the
// cutoff are kept whole rather than split arbitrarily.
//
// Mean and median are over solved games only. Starting words that
// solved nothing appear in NonSolutions but stay off the leaderboards,
// since they have no average to rank by.
func Summarize(strategyName string, rows []stores.ResultRow, keep int) *Summary {
	sum := &Summary{Strategy: strategyName}
	perStart := make(map[string]*startTally)
	var solvedMoves []int

	for _, r := range rows {
		t := perStart[r.StartWord]
		if t == nil {
			t = &startTally{}
			perStart[r.StartWord] = t
		}
		sum.TotalGames++
		sum.TotalMoves += r.Moves
		if r.Exhausted {
			sum.TotalErrors++
		}
		if r.Solved {
			sum.TotalSolved++
			solvedMoves = append(solvedMoves, r.Moves)
			t.solved++
			t.moves += r.Moves
		} else {
			sum.TotalUnsolved++
			t.misses++
		}
	}

	if len(solvedMoves) > 0 {
		total := 0
		for _, m := range solvedMoves {
			total += m
		}
		sum.MeanMoves = float64(total) / float64(len(solvedMoves))
		sum.MedianMoves = median(solvedMoves)
	}

	best := fairheap.New[string](keep)
	worst := fairheap.New[string](keep)
	for start, t := range perStart {
		if t.misses > 0 {
			sum.NonSolutions = append(sum.NonSolutions,
				StartMisses{Word: start, Misses: t.misses})
		}
		if t.solved == 0 {
			continue
		}
		avg := float64(t.moves) / float64(t.solved)
		// Low averages are good, so the best-starts heap keeps the
		// highest negated averages.
		best.Push(start, -avg)
		worst.Push(start, avg)
	}
	sort.Slice(sum.NonSolutions, func(i, j int) bool {
		return sum.NonSolutions[i].Word < sum.NonSolutions[j].Word
	})

	for _, e := range best.SortedList() {
		sum.BestStarts = append(sum.BestStarts,
			StartScore{Word: e.Item, AvgMoves: -e.Score})
	}
	sort.Slice(sum.BestStarts, func(i, j int) bool {
		if sum.BestStarts[i].AvgMoves != sum.BestStarts[j].AvgMoves {
			return sum.BestStarts[i].AvgMoves < sum.BestStarts[j].AvgMoves
		}
		return sum.BestStarts[i].Word < sum.BestStarts[j].Word
	})
	for _, e := range worst.SortedList() {
		sum.WorstStarts = append(sum.WorstStarts,
			StartScore{Word: e.Item, AvgMoves: e.Score})
	}
	sort.Slice(sum.WorstStarts, func(i, j int) bool {
		if sum.WorstStarts[i].AvgMoves != sum.WorstStarts[j].AvgMoves {
			return sum.WorstStarts[i].AvgMoves > sum.WorstStarts[j].AvgMoves
		}
		return sum.WorstStarts[i].Word < sum.WorstStarts[j].Word
	})
	return sum
}

func median(xs []int) float64 {
	sorted := append([]int(nil), xs...)
	sort.Ints(sorted)
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n%2 == 1 {
		return float64(sorted[n/2])
	}
	return float64(sorted[n/2-1]+sorted[n/2]) / 2
}
