package explorer

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/domino14/wordle_explorer/internal/stores"
)

const resultsQuery = `
SELECT strategy, start_word, answer, moves, solved, exhausted, trace
FROM results
WHERE %s
ORDER BY strategy, start_word, answer
%s`

// Store persists batch results and their summaries.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// SaveResults upserts a batch of rows in one transaction.
func (s *Store) SaveResults(ctx context.Context, rows []stores.ResultRow) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR REPLACE INTO results
		(strategy, start_word, answer, moves, solved, exhausted, trace)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for _, r := range rows {
		_, err = stmt.ExecContext(ctx,
			r.Strategy, r.StartWord, r.Answer, r.Moves, r.Solved, r.Exhausted, r.Trace)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

// HasResults reports whether any rows exist for a strategy, which is
// how resumed runs know to skip it.
func (s *Store) HasResults(ctx context.Context, strategyName string) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx,
		`SELECT 1 FROM results WHERE strategy = ? LIMIT 1`, strategyName).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	return err == nil, err
}

// Results returns rows matching the clauses, optionally limited.
// limit <= 0 means no limit.
func (s *Store) Results(ctx context.Context, clauses []Clause, limit int) ([]stores.ResultRow, error) {
	tail := ""
	if limit > 0 {
		tail = fmt.Sprintf("LIMIT %d", limit)
	}
	query, bindParams := renderQuery(resultsQuery, clauses, tail)
	rows, err := s.db.QueryContext(ctx, query, bindParams...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []stores.ResultRow
	for rows.Next() {
		var r stores.ResultRow
		err = rows.Scan(&r.Strategy, &r.StartWord, &r.Answer,
			&r.Moves, &r.Solved, &r.Exhausted, &r.Trace)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// SaveSummary upserts the JSON-encoded summary for a strategy.
func (s *Store) SaveSummary(ctx context.Context, sum *Summary) error {
	data, err := json.Marshal(sum)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO summaries (strategy, summary) VALUES (?, ?)`,
		sum.Strategy, data)
	return err
}

// Summary loads a strategy's summary. A missing summary is not an
// error; it returns nil.
func (s *Store) Summary(ctx context.Context, strategyName string) (*Summary, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT summary FROM summaries WHERE strategy = ?`, strategyName).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var sum Summary
	if err := json.Unmarshal(data, &sum); err != nil {
		return nil, err
	}
	return &sum, nil
}

// SummarizedStrategies lists the strategies that have stored summaries.
func (s *Store) SummarizedStrategies(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT strategy FROM summaries ORDER BY strategy`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
