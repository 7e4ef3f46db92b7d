package main

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/wordle_explorer/internal/explorer"
	"github.com/domino14/wordle_explorer/internal/stores"
)

func TestImportMatrix(t *testing.T) {
	is := is.New(t)
	db, err := stores.Open(
		filepath.Join(t.TempDir(), "test.db"), "file://../../db/migrations")
	is.NoErr(err)
	t.Cleanup(func() { db.Close() })
	store := explorer.NewStore(db)
	ctx := context.Background()

	matrix := ",arose,cider\n" +
		"until,4.0,NULL\n" +
		"sooty,3.0,2.0\n"
	n, err := importMatrix(ctx, store, "legacy-maxinfo", strings.NewReader(matrix))
	is.NoErr(err)
	is.Equal(n, 4)

	rows, err := store.Results(ctx,
		[]explorer.Clause{explorer.NewWhereEqualsClause("strategy", "legacy-maxinfo")}, 0)
	is.NoErr(err)
	is.Equal(len(rows), 4)

	// Rows come back ordered by start word then answer.
	is.Equal(rows[0].StartWord, "sooty")
	is.Equal(rows[0].Answer, "arose")
	is.Equal(rows[0].Moves, 3)
	is.True(rows[0].Solved)

	is.Equal(rows[3].StartWord, "until")
	is.Equal(rows[3].Answer, "cider")
	is.Equal(rows[3].Moves, 0)
	is.True(!rows[3].Solved)
}
