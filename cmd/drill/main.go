// A small CLI for the drill deck: list what is due, score a review,
// or add a word by hand.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/namsral/flag"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/wordle_explorer/internal/drill"
	"github.com/domino14/wordle_explorer/internal/stores"
)

// Use more specific env var names here to avoid colliding with other
// env vars user might have on their system.
var LogLevel = os.Getenv("DRILL_LOG_LEVEL")

type Config struct {
	dbPath         string
	migrationsPath string
	limit          int
	score          int
	misses         int

	command string
	word    string
}

func (c *Config) Load(args []string) error {
	fs := flag.NewFlagSet("drill", flag.ContinueOnError)

	fs.StringVar(&c.dbPath, "db-path", "wordle.db", "path of the sqlite results database")
	fs.StringVar(&c.migrationsPath, "migrations-path", "file://db/migrations",
		"source URL of the database migrations")
	fs.IntVar(&c.limit, "limit", 10, "how many due cards to list")
	fs.IntVar(&c.score, "score", 0, "review score, 1 (forgot) to 4 (easy)")
	fs.IntVar(&c.misses, "misses", 1, "miss count when adding a card")

	if err := fs.Parse(args); err != nil {
		return err
	}
	c.command = fs.Arg(0)
	c.word = fs.Arg(1)
	return nil
}

func main() {
	cfg := &Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("")
	}
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	if strings.ToLower(LogLevel) == "debug" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	db, err := stores.Open(cfg.dbPath, cfg.migrationsPath)
	if err != nil {
		log.Fatal().Err(err).Msg("opening-db")
	}
	defer db.Close()
	store := drill.NewStore(db)
	ctx := context.Background()

	switch cfg.command {
	case "", "due":
		listDue(ctx, store, cfg.limit)
	case "review":
		if cfg.word == "" {
			log.Fatal().Msg("usage: drill -score N review <word>")
		}
		next, err := store.Review(ctx, cfg.word, cfg.score)
		if err != nil {
			log.Fatal().Err(err).Msg("")
		}
		fmt.Printf("%s rescheduled for %s\n", cfg.word, next.Format(time.RFC3339))
	case "add":
		if cfg.word == "" {
			log.Fatal().Msg("usage: drill add <word>")
		}
		if err := store.Seed(ctx, cfg.word, "manual", cfg.misses); err != nil {
			log.Fatal().Err(err).Msg("")
		}
		fmt.Printf("%s added to the deck\n", cfg.word)
	default:
		log.Fatal().Msgf("unknown command %q", cfg.command)
	}
}

func listDue(ctx context.Context, store *drill.Store, limit int) {
	cards, err := store.Due(ctx, limit)
	if err != nil {
		log.Fatal().Err(err).Msg("")
	}
	total, due, err := store.Counts(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("")
	}
	if len(cards) == 0 {
		fmt.Printf("nothing due (%d cards in the deck)\n", total)
		return
	}
	for _, c := range cards {
		fmt.Printf("%s  missed %d  reps %d  retrievability %.2f\n",
			c.Word, c.Misses, c.Reps, c.Retrievability)
	}
	fmt.Printf("\u001b[32m%d due of %d cards\033[0m\n", due, total)
}
