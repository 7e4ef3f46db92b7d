// The batch runner: every strategy plays every starting word against
// every answer, and the results land in the sqlite store.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/wordle_explorer/config"
	"github.com/domino14/wordle_explorer/internal/drill"
	"github.com/domino14/wordle_explorer/internal/explorer"
	"github.com/domino14/wordle_explorer/internal/lexicon"
	"github.com/domino14/wordle_explorer/internal/stores"
	"github.com/domino14/wordle_explorer/internal/strategy"
)

func main() {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("")
	}
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if strings.ToLower(cfg.LogLevel) == "debug" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Info().Interface("config", cfg).Msg("explorer-started")

	corpus, err := lexicon.Load(cfg.DataPath)
	if err != nil {
		log.Fatal().Err(err).Msg("loading-corpus")
	}
	log.Info().Int("corpus-size", corpus.Len()).Msg("corpus-loaded")

	db, err := stores.Open(cfg.DBPath, cfg.MigrationsPath)
	if err != nil {
		log.Fatal().Err(err).Msg("opening-db")
	}
	defer db.Close()

	registry := strategy.Default()
	var strategies []string
	if cfg.Strategies != "" {
		strategies = strings.Split(cfg.Strategies, ",")
	}
	exp := &explorer.Explorer{
		Corpus:     corpus,
		Registry:   registry,
		Store:      explorer.NewStore(db),
		Workers:    cfg.Workers,
		KeepStarts: cfg.KeepStarts,
		Strategies: strategies,
	}
	if cfg.SeedDrill {
		exp.Drill = drill.NewStore(db)
	}

	ctx := context.Background()
	start := time.Now()
	if err := exp.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("run-failed")
	}
	log.Info().Dur("elapsed", time.Since(start)).Msg("explorer-done")

	names := strategies
	if len(names) == 0 {
		names = registry.Names()
	}
	for _, name := range names {
		sum, err := exp.Store.Summary(ctx, name)
		if err != nil {
			log.Fatal().Err(err).Msg("loading-summary")
		}
		if sum != nil {
			fmt.Println(sum)
			fmt.Println()
		}
	}
}
