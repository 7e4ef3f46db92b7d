// Imports the legacy solution-matrix CSVs (one per strategy: starting
// words as rows, answers as columns, cells holding the solved game
// length or NULL) into the results table.
package main

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/namsral/flag"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/wordle_explorer/internal/explorer"
	"github.com/domino14/wordle_explorer/internal/stores"
)

const batchSize = 1024

type Config struct {
	dbPath         string
	migrationsPath string
	strategyName   string

	csvPath string
}

func (c *Config) Load(args []string) error {
	fs := flag.NewFlagSet("importshards", flag.ContinueOnError)

	fs.StringVar(&c.dbPath, "db-path", "wordle.db", "path of the sqlite results database")
	fs.StringVar(&c.migrationsPath, "migrations-path", "file://db/migrations",
		"source URL of the database migrations")
	fs.StringVar(&c.strategyName, "strategy", "",
		"strategy name for the imported rows, instead of deriving it from the file name")

	if err := fs.Parse(args); err != nil {
		return err
	}
	c.csvPath = fs.Arg(0)
	return nil
}

// importMatrix reads the matrix CSV and upserts one result row per
// cell. Legacy data has no traces, so unsolved cells come through with
// zero moves and an empty trace.
func importMatrix(ctx context.Context, store *explorer.Store, strategyName string, r io.Reader) (int, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		return 0, err
	}
	answers := header[1:]

	batch := make([]stores.ResultRow, 0, batchSize)
	imported := 0
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := store.SaveResults(ctx, batch); err != nil {
			return err
		}
		imported += len(batch)
		batch = batch[:0]
		return nil
	}

	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return imported, err
		}
		start := record[0]
		for i, cell := range record[1:] {
			row := stores.ResultRow{
				Strategy:  strategyName,
				StartWord: start,
				Answer:    answers[i],
				Trace:     []byte("[]"),
			}
			// The matrix holds float-formatted lengths because of the
			// NULL cells.
			if cell != "NULL" && cell != "" {
				moves, err := strconv.ParseFloat(cell, 64)
				if err != nil {
					return imported, err
				}
				row.Moves = int(moves)
				row.Solved = true
			}
			batch = append(batch, row)
			if len(batch) >= batchSize {
				if err := flush(); err != nil {
					return imported, err
				}
			}
		}
	}
	return imported, flush()
}

func main() {
	cfg := &Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("")
	}
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	if cfg.csvPath == "" {
		log.Fatal().Msg("usage: importshards [-strategy name] <matrix.csv>")
	}
	name := cfg.strategyName
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(cfg.csvPath), "_solution_matrix.csv")
	}

	db, err := stores.Open(cfg.dbPath, cfg.migrationsPath)
	if err != nil {
		log.Fatal().Err(err).Msg("opening-db")
	}
	defer db.Close()

	f, err := os.Open(cfg.csvPath)
	if err != nil {
		log.Fatal().Err(err).Msg("")
	}
	defer f.Close()

	n, err := importMatrix(context.Background(), explorer.NewStore(db), name, f)
	if err != nil {
		log.Fatal().Err(err).Msg("import-failed")
	}
	log.Info().Int("rows", n).Str("strategy", name).Msg("imported")
}
