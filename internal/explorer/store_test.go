package explorer

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domino14/wordle_explorer/internal/stores"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := stores.Open(
		filepath.Join(t.TempDir(), "test.db"), "file://../../db/migrations")
	require.Nil(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func seedRows(t *testing.T, s *Store) {
	t.Helper()
	err := s.SaveResults(context.Background(), []stores.ResultRow{
		row("until", "arose", 2, true, false),
		row("until", "cider", 4, true, false),
		row("until", "sooty", 6, false, true),
		row("arose", "cider", 3, true, false),
	})
	require.Nil(t, err)
}

func TestSaveAndQueryResults(t *testing.T) {
	s := NewStore(testDB(t))
	ctx := context.Background()
	seedRows(t, s)

	rows, err := s.Results(ctx, nil, 0)
	assert.Nil(t, err)
	assert.Len(t, rows, 4)
	// Ordered by strategy, start, answer.
	assert.Equal(t, "arose", rows[0].StartWord)
	assert.Equal(t, "cider", rows[0].Answer)
	assert.Equal(t, []byte("[]"), rows[0].Trace)

	rows, err = s.Results(ctx, []Clause{
		NewWhereEqualsClause("start_word", "until"),
		NewWhereEqualsClause("solved", true),
	}, 0)
	assert.Nil(t, err)
	assert.Len(t, rows, 2)

	rows, err = s.Results(ctx, []Clause{
		NewWhereInClause("answer", []string{"arose", "sooty"}),
	}, 0)
	assert.Nil(t, err)
	assert.Len(t, rows, 2)

	rows, err = s.Results(ctx, []Clause{
		NewWhereBetweenClause("moves", 3, 6),
	}, 0)
	assert.Nil(t, err)
	assert.Len(t, rows, 3)

	rows, err = s.Results(ctx, nil, 2)
	assert.Nil(t, err)
	assert.Len(t, rows, 2)
}

func TestSaveResultsUpserts(t *testing.T) {
	s := NewStore(testDB(t))
	ctx := context.Background()
	seedRows(t, s)
	seedRows(t, s)

	rows, err := s.Results(ctx, nil, 0)
	assert.Nil(t, err)
	assert.Len(t, rows, 4)
}

func TestHasResults(t *testing.T) {
	s := NewStore(testDB(t))
	ctx := context.Background()

	has, err := s.HasResults(ctx, "test")
	assert.Nil(t, err)
	assert.False(t, has)

	seedRows(t, s)
	has, err = s.HasResults(ctx, "test")
	assert.Nil(t, err)
	assert.True(t, has)

	has, err = s.HasResults(ctx, "other")
	assert.Nil(t, err)
	assert.False(t, has)
}

func TestSummaryRoundTrip(t *testing.T) {
	s := NewStore(testDB(t))
	ctx := context.Background()

	// A missing summary is not an error.
	sum, err := s.Summary(ctx, "test")
	assert.Nil(t, err)
	assert.Nil(t, sum)

	seedRows(t, s)
	rows, err := s.Results(ctx, nil, 0)
	require.Nil(t, err)
	want := Summarize("test", rows, 100)
	require.Nil(t, s.SaveSummary(ctx, want))

	got, err := s.Summary(ctx, "test")
	assert.Nil(t, err)
	assert.Equal(t, want, got)

	names, err := s.SummarizedStrategies(ctx)
	assert.Nil(t, err)
	assert.Equal(t, []string{"test"}, names)
}
