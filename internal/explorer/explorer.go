// Package explorer runs strategies exhaustively over the corpus: every
// (strategy, starting word, answer) pairing gets solved, stored, and
// rolled up into per-strategy summaries.
package explorer

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/wordle_explorer/internal/drill"
	"github.com/domino14/wordle_explorer/internal/lexicon"
	"github.com/domino14/wordle_explorer/internal/stores"
	"github.com/domino14/wordle_explorer/internal/strategy"
)

// Explorer exhaustively analyzes strategies. Strategies that already
// have stored results are skipped, so an interrupted run picks up where
// it left off.
type Explorer struct {
	Corpus   *lexicon.Corpus
	Registry *strategy.Registry
	Store    *Store

	// Drill, when set, gets seeded with the answers each strategy
	// failed to solve.
	Drill *drill.Store

	// Workers bounds concurrent solve loops; values below one mean one.
	Workers int

	// KeepStarts is the soft size of the best/worst leaderboards.
	KeepStarts int

	// Strategies restricts the run to these registered names. Empty
	// means every registered strategy.
	Strategies []string
}

func (e *Explorer) workers() int {
	if e.Workers < 1 {
		return 1
	}
	return e.Workers
}

// Run analyzes each strategy in turn: solve all pairings, summarize,
// and optionally seed the drill deck.
func (e *Explorer) Run(ctx context.Context) error {
	names := e.Strategies
	if len(names) == 0 {
		names = e.Registry.Names()
	}
	for _, name := range names {
		st, err := e.Registry.Get(name)
		if err != nil {
			return err
		}
		done, err := e.Store.HasResults(ctx, st.Name)
		if err != nil {
			return err
		}
		if done {
			log.Info().Str("strategy", st.Name).Msg("already-analyzed")
		} else {
			start := time.Now()
			if err := e.runStrategy(ctx, st); err != nil {
				return err
			}
			log.Info().Str("strategy", st.Name).
				Dur("elapsed", time.Since(start)).Msg("strategy-analyzed")
		}
		if err := e.summarize(ctx, st.Name); err != nil {
			return err
		}
	}
	return nil
}

// runStrategy fans starting words out across workers. Each worker
// solves every answer for its start and ships the rows to a single
// writer goroutine, keeping the database out of the hot loop.
func (e *Explorer) runStrategy(ctx context.Context, st strategy.Strategy) error {
	words := e.Corpus.Words()
	rowCh := make(chan []stores.ResultRow, 4)
	writeDone := make(chan error, 1)
	go func() {
		for batch := range rowCh {
			if err := e.Store.SaveResults(ctx, batch); err != nil {
				writeDone <- err
				for range rowCh {
				}
				return
			}
		}
		writeDone <- nil
	}()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers())
	for i, start := range words {
		g.Go(func() error {
			rows := make([]stores.ResultRow, 0, len(words))
			for _, answer := range words {
				if err := gctx.Err(); err != nil {
					return err
				}
				res, err := st.Solve(e.Corpus, answer, strategy.FixedStart(start))
				if errors.Is(err, strategy.ErrNotApplicable) {
					// This start conflicts with the strategy's
					// openings, for every answer.
					return nil
				}
				if err != nil {
					return err
				}
				row, err := toRow(res)
				if err != nil {
					return err
				}
				rows = append(rows, row)
			}
			select {
			case rowCh <- rows:
			case <-gctx.Done():
				return gctx.Err()
			}
			if (i+1)%100 == 0 {
				log.Debug().Str("strategy", st.Name).
					Int("starts-done", i+1).Int("total", len(words)).Msg("progress")
			}
			return nil
		})
	}
	err := g.Wait()
	close(rowCh)
	werr := <-writeDone
	if err != nil {
		return err
	}
	return werr
}

func (e *Explorer) summarize(ctx context.Context, strategyName string) error {
	existing, err := e.Store.Summary(ctx, strategyName)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}
	rows, err := e.Store.Results(ctx,
		[]Clause{NewWhereEqualsClause("strategy", strategyName)}, 0)
	if err != nil {
		return err
	}
	sum := Summarize(strategyName, rows, e.KeepStarts)
	if err := e.Store.SaveSummary(ctx, sum); err != nil {
		return err
	}
	log.Info().Str("strategy", strategyName).
		Int("solved", sum.TotalSolved).
		Int("unsolved", sum.TotalUnsolved).
		Float64("mean-moves", sum.MeanMoves).Msg("summary-saved")

	if e.Drill != nil {
		return e.seedDrill(ctx, strategyName)
	}
	return nil
}

// seedDrill adds each answer the strategy failed on to the drill deck,
// weighted by how many starting words failed to reach it.
func (e *Explorer) seedDrill(ctx context.Context, strategyName string) error {
	rows, err := e.Store.Results(ctx, []Clause{
		NewWhereEqualsClause("strategy", strategyName),
		NewWhereEqualsClause("solved", false),
	}, 0)
	if err != nil {
		return err
	}
	missed := make(map[string]int)
	for _, r := range rows {
		missed[r.Answer]++
	}
	for answer, count := range missed {
		if err := e.Drill.Seed(ctx, answer, strategyName, count); err != nil {
			return err
		}
	}
	if len(missed) > 0 {
		log.Info().Str("strategy", strategyName).
			Int("words", len(missed)).Msg("drill-seeded")
	}
	return nil
}

func toRow(res strategy.Result) (stores.ResultRow, error) {
	trace, err := json.Marshal(res.Trace)
	if err != nil {
		return stores.ResultRow{}, err
	}
	exhausted := false
	if n := len(res.Trace); n > 0 {
		exhausted = res.Trace[n-1].Exhausted
	}
	return stores.ResultRow{
		Strategy:  res.Strategy,
		StartWord: res.Start,
		Answer:    res.Answer,
		Moves:     res.Moves(),
		Solved:    res.Solved(),
		Exhausted: exhausted,
		Trace:     trace,
	}, nil
}
