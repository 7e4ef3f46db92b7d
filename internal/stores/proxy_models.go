package stores

import (
	"time"

	"github.com/open-spaced-repetition/go-fsrs/v3"
)

// ResultRow is one stored solve: a (strategy, starting word, answer)
// triple with its outcome and the JSON-encoded move trace.
type ResultRow struct {
	Strategy  string
	StartWord string
	Answer    string
	Moves     int
	Solved    bool
	Exhausted bool
	Trace     []byte
}

// Card wraps the fsrs card so the stored JSON stays ours to extend.
type Card struct {
	fsrs.Card
}

// ReviewLog carries an optional seed record alongside the fsrs log, for
// cards that entered the deck from a batch run rather than a review.
type ReviewLog struct {
	fsrs.ReviewLog
	SeedLog *SeedLog `json:"seed_log,omitempty"`
}

// SeedLog records why a word went into the drill deck.
type SeedLog struct {
	SeededDate time.Time `json:"seeded_date"`
	Strategy   string    `json:"strategy"`
	Misses     int       `json:"misses"`
}
