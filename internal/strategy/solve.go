package strategy

import (
	"errors"
	"fmt"

	"github.com/domino14/wordle_explorer/internal/lexicon"
	"github.com/domino14/wordle_explorer/internal/solver"
)

// MaxMoves is the game's guess budget.
const MaxMoves = 6

// ErrNotApplicable is returned when a strategy with forced openings is
// asked to start with a different word. It marks "no result", not a
// failure; batch runs skip such pairings.
var ErrNotApplicable = errors.New("strategy cannot play that starting word")

// StartingMove says how a game opens: with a caller-chosen fixed word,
// or delegated to the strategy's own ranking.
type StartingMove struct {
	word string
}

// FixedStart forces the first guess to be word.
func FixedStart(word string) StartingMove {
	return StartingMove{word: word}
}

// DelegateStart lets the strategy pick its own first guess.
func DelegateStart() StartingMove {
	return StartingMove{}
}

// Fixed returns the forced word and whether one was set.
func (m StartingMove) Fixed() (string, bool) {
	return m.word, m.word != ""
}

func (m StartingMove) String() string {
	if m.word == "" {
		return "delegate"
	}
	return m.word
}

// Outcome is the terminal state of a solve.
type Outcome int

const (
	// OutcomeSolved means the answer was guessed within the move budget.
	OutcomeSolved Outcome = iota + 1
	// OutcomeExhausted means the solve stopped without the answer:
	// the move budget ran out, a position's letter set emptied, or no
	// corpus word matched the constraints.
	OutcomeExhausted
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSolved:
		return "solved"
	case OutcomeExhausted:
		return "exhausted"
	}
	return "unknown"
}

// Result is a finished game.
type Result struct {
	Strategy string        `json:"strategy"`
	Answer   string        `json:"answer"`
	Start    string        `json:"start"`
	Trace    []solver.Move `json:"trace"`
	Outcome  Outcome       `json:"outcome"`
}

func (r Result) Solved() bool {
	return r.Outcome == OutcomeSolved
}

// Moves is how many guesses were played.
func (r Result) Moves() int {
	return len(r.Trace)
}

// Solve plays a full game against a known answer. The returned error is
// ErrNotApplicable when start conflicts with the strategy's openings;
// any other error means bad input.
func (st Strategy) Solve(corpus *lexicon.Corpus, answer string, start StartingMove) (Result, error) {
	return st.solveFrom(corpus, answer, start, solver.NewConstraints())
}

// solveFrom runs the game loop from an arbitrary constraint state.
// Split out from Solve so tests can drive it from poisoned states.
func (st Strategy) solveFrom(corpus *lexicon.Corpus, answer string, start StartingMove, initial solver.Constraints) (Result, error) {
	if err := solver.ValidateWord(answer); err != nil {
		return Result{}, err
	}

	cons := initial
	var tried solver.LetterSet
	openIdx := 0

	var first string
	if len(st.Openings) > 0 {
		if w, fixed := start.Fixed(); fixed && w != st.Openings[0] {
			return Result{}, fmt.Errorf("%s opens with %s, not %s: %w",
				st.Name, st.Openings[0], w, ErrNotApplicable)
		}
		first = st.Openings[0]
		openIdx = 1
	} else if w, fixed := start.Fixed(); fixed {
		if err := solver.ValidateWord(w); err != nil {
			return Result{}, err
		}
		first = w
	} else {
		candidates, freq := solver.Enumerate(corpus.Words(), cons)
		if len(candidates) == 0 {
			return Result{Strategy: st.Name, Answer: answer, Outcome: OutcomeExhausted}, nil
		}
		first = Rank(candidates, &freq, tried.Complement(), st.Scorer)[0].Word
	}

	trace := make([]solver.Move, 0, MaxMoves)
	finish := func(o Outcome) (Result, error) {
		return Result{
			Strategy: st.Name,
			Answer:   answer,
			Start:    first,
			Trace:    trace,
			Outcome:  o,
		}, nil
	}

	next := first
	for {
		fb, err := solver.Classify(next, answer)
		if err != nil {
			return Result{}, err
		}
		solved, after, err := solver.Apply(next, fb, cons)
		if err != nil {
			return Result{}, err
		}
		candidates, freq := solver.Enumerate(corpus.Words(), after)
		trace = append(trace, solver.Move{
			Guess:     next,
			Feedback:  fb.String(),
			Before:    cons,
			After:     after,
			Remaining: len(candidates),
			Exhausted: after.Exhausted(),
			Solved:    solved,
		})
		tried = tried.WithLetters(next)
		cons = after

		if solved {
			return finish(OutcomeSolved)
		}
		if after.Exhausted() || len(trace) >= MaxMoves {
			return finish(OutcomeExhausted)
		}
		// Forced openings are played out before consulting the pool,
		// unless the abort threshold says they stopped paying off.
		if openIdx < len(st.Openings) && !st.abortOpenings(len(candidates), corpus.Len()) {
			next = st.Openings[openIdx]
			openIdx++
			continue
		}
		if len(candidates) == 0 {
			return finish(OutcomeExhausted)
		}
		next = Rank(candidates, &freq, tried.Complement(), st.Scorer)[0].Word
	}
}
