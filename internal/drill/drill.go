// Package drill keeps a spaced-repetition deck of troublesome words.
// Words get seeded from batch runs (answers a strategy kept failing) or
// added by hand, and come due for review on an FSRS schedule.
package drill

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/open-spaced-repetition/go-fsrs/v3"
	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/domino14/wordle_explorer/internal/solver"
	"github.com/domino14/wordle_explorer/internal/stores"
)

const JustReviewedInterval = time.Second * 10

var (
	ErrCardNotFound = errors.New("no drill card for that word")
	ErrJustReviewed = errors.New("this card was just reviewed")
)

type nower interface {
	Now() time.Time
}

// RealNower returns the actual current time.
type RealNower struct{}

func (r RealNower) Now() time.Time {
	return time.Now()
}

// Store reads and schedules drill cards.
type Store struct {
	db    *sql.DB
	Nower nower
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db, Nower: RealNower{}}
}

func fsrsParams() fsrs.Parameters {
	params := fsrs.DefaultParam()
	params.EnableShortTerm = false
	params.EnableFuzz = true
	params.MaximumInterval = 365 * 5
	return params
}

// CardInfo is a deck card as shown to reviewers.
type CardInfo struct {
	Word           string    `json:"word"`
	NextScheduled  time.Time `json:"next_scheduled"`
	Misses         int       `json:"misses"`
	Reps           int       `json:"reps"`
	Lapses         int       `json:"lapses"`
	Retrievability float64   `json:"retrievability"`
}

// Seed puts word in the deck, or bumps its miss count if it is already
// there. source names where the miss came from (a strategy name, or
// "manual"). New cards come due immediately.
func (s *Store) Seed(ctx context.Context, word, source string, misses int) error {
	if err := solver.ValidateWord(word); err != nil {
		return err
	}
	if misses < 1 {
		misses = 1
	}
	now := s.Nower.Now()
	seedEntry := stores.ReviewLog{
		SeedLog: &stores.SeedLog{SeededDate: now, Strategy: source, Misses: misses},
	}

	var cardJSON, logJSON []byte
	var existing int
	row := s.db.QueryRowContext(ctx,
		`SELECT fsrs_card, review_log, misses FROM drill_cards WHERE word = ?`, word)
	err := row.Scan(&cardJSON, &logJSON, &existing)
	if errors.Is(err, sql.ErrNoRows) {
		card := stores.Card{Card: fsrs.NewCard()}
		card.Due = now
		cardJSON, err = json.Marshal(card)
		if err != nil {
			return err
		}
		logJSON, err = json.Marshal([]stores.ReviewLog{seedEntry})
		if err != nil {
			return err
		}
		_, err = s.db.ExecContext(ctx,
			`INSERT INTO drill_cards (word, fsrs_card, review_log, misses, next_scheduled)
			 VALUES (?, ?, ?, ?, ?)`,
			word, cardJSON, logJSON, misses, card.Due.UTC())
		return err
	}
	if err != nil {
		return err
	}

	var logs []stores.ReviewLog
	if err := json.Unmarshal(logJSON, &logs); err != nil {
		return err
	}
	logs = append(logs, seedEntry)
	logJSON, err = json.Marshal(logs)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`UPDATE drill_cards SET misses = misses + ?, review_log = ? WHERE word = ?`,
		misses, logJSON, word)
	return err
}

// Due returns up to limit cards whose review time has arrived, soonest
// first.
func (s *Store) Due(ctx context.Context, limit int) ([]CardInfo, error) {
	now := s.Nower.Now()
	rows, err := s.db.QueryContext(ctx,
		`SELECT word, fsrs_card, misses, next_scheduled FROM drill_cards
		 WHERE next_scheduled <= ? ORDER BY next_scheduled LIMIT ?`, now.UTC(), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	f := fsrs.NewFSRS(fsrsParams())
	var infos []CardInfo
	for rows.Next() {
		var (
			info     CardInfo
			cardJSON []byte
		)
		if err := rows.Scan(&info.Word, &cardJSON, &info.Misses, &info.NextScheduled); err != nil {
			return nil, err
		}
		var card stores.Card
		if err := json.Unmarshal(cardJSON, &card); err != nil {
			return nil, err
		}
		info.Reps = int(card.Reps)
		info.Lapses = int(card.Lapses)
		info.Retrievability = f.GetRetrievability(card.Card, now)
		infos = append(infos, info)
	}
	return infos, rows.Err()
}

// Card returns a single card's info, or ErrCardNotFound.
func (s *Store) Card(ctx context.Context, word string) (CardInfo, error) {
	now := s.Nower.Now()
	var (
		info     CardInfo
		cardJSON []byte
	)
	row := s.db.QueryRowContext(ctx,
		`SELECT word, fsrs_card, misses, next_scheduled FROM drill_cards WHERE word = ?`, word)
	err := row.Scan(&info.Word, &cardJSON, &info.Misses, &info.NextScheduled)
	if errors.Is(err, sql.ErrNoRows) {
		return CardInfo{}, fmt.Errorf("%s: %w", word, ErrCardNotFound)
	}
	if err != nil {
		return CardInfo{}, err
	}
	var card stores.Card
	if err := json.Unmarshal(cardJSON, &card); err != nil {
		return CardInfo{}, err
	}
	f := fsrs.NewFSRS(fsrsParams())
	info.Reps = int(card.Reps)
	info.Lapses = int(card.Lapses)
	info.Retrievability = f.GetRetrievability(card.Card, now)
	return info, nil
}

// Review scores a due card from 1 (forgot) to 4 (easy) and reschedules
// it. The new due time is returned.
func (s *Store) Review(ctx context.Context, word string, score int) (time.Time, error) {
	if score < 1 || score > 4 {
		return time.Time{}, fmt.Errorf("invalid score %d", score)
	}
	now := s.Nower.Now()

	var cardJSON, logJSON []byte
	row := s.db.QueryRowContext(ctx,
		`SELECT fsrs_card, review_log FROM drill_cards WHERE word = ?`, word)
	err := row.Scan(&cardJSON, &logJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, fmt.Errorf("%s: %w", word, ErrCardNotFound)
	}
	if err != nil {
		return time.Time{}, err
	}
	var card stores.Card
	if err := json.Unmarshal(cardJSON, &card); err != nil {
		return time.Time{}, err
	}
	var revlog []stores.ReviewLog
	if err := json.Unmarshal(logJSON, &revlog); err != nil {
		return time.Time{}, err
	}
	if last := lastReviewTime(revlog); !last.IsZero() && now.Sub(last) < JustReviewedInterval {
		return time.Time{}, ErrJustReviewed
	}

	params := fsrsParams()
	f := fsrs.NewFSRS(params)
	schedulingCards := f.Repeat(card.Card, now)
	rating := fsrs.Rating(score)
	card.Card = schedulingCards[rating].Card
	rlog := schedulingCards[rating].ReviewLog
	furtherFuzzDueDate(params, now, &card.Card)

	revlog = append(revlog, stores.ReviewLog{ReviewLog: rlog})
	cardJSON, err = json.Marshal(card)
	if err != nil {
		return time.Time{}, err
	}
	logJSON, err = json.Marshal(revlog)
	if err != nil {
		return time.Time{}, err
	}
	_, err = s.db.ExecContext(ctx,
		`UPDATE drill_cards SET fsrs_card = ?, review_log = ?, next_scheduled = ? WHERE word = ?`,
		cardJSON, logJSON, card.Due.UTC(), word)
	if err != nil {
		return time.Time{}, err
	}
	log.Info().Str("word", word).Int("score", score).
		Str("next-scheduled", card.Due.String()).Msg("card-scored")
	return card.Due, nil
}

// Counts reports the deck size and how many cards are currently due.
func (s *Store) Counts(ctx context.Context) (total, due int, err error) {
	now := s.Nower.Now()
	row := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(next_scheduled <= ?), 0) FROM drill_cards`, now.UTC())
	err = row.Scan(&total, &due)
	return total, due, err
}

// lastReviewTime finds the most recent genuine review, skipping seed
// entries.
func lastReviewTime(revlog []stores.ReviewLog) time.Time {
	for i := len(revlog) - 1; i >= 0; i-- {
		if revlog[i].SeedLog == nil {
			return revlog[i].Review
		}
	}
	return time.Time{}
}

// The fsrs library fuzzes only by day, so reviews bunch up at the same
// hour they were last asked. Spread them by a few random hours as well.
func furtherFuzzDueDate(params fsrs.Parameters, now time.Time, card *fsrs.Card) {
	if !params.EnableFuzz || params.EnableShortTerm {
		return
	}
	fuzzFactor := 21600 // 6 hours
	if card.Due.Sub(now) > (time.Hour * 720) {
		fuzzFactor = 86400
	}
	d := int64(frand.Intn(fuzzFactor)) - int64(fuzzFactor)/2
	card.Due = card.Due.Add(time.Duration(d) * time.Second)
}
