package strategy

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domino14/wordle_explorer/internal/lexicon"
	"github.com/domino14/wordle_explorer/internal/solver"
)

func testCorpus(t *testing.T, words ...string) *lexicon.Corpus {
	t.Helper()
	c, err := lexicon.New(words, nil)
	require.Nil(t, err)
	return c
}

func maxInfo(t *testing.T) Strategy {
	t.Helper()
	st, err := New("maxinfo", MaxInfo{}, nil, nil)
	require.Nil(t, err)
	return st
}

func guesses(r Result) []string {
	out := make([]string, len(r.Trace))
	for i, m := range r.Trace {
		out[i] = m.Guess
	}
	return out
}

func TestSolveFixedStart(t *testing.T) {
	corpus := testCorpus(t, "arose", "until", "sooty", "cider")
	res, err := maxInfo(t).Solve(corpus, "arose", FixedStart("until"))
	assert.Nil(t, err)
	assert.Equal(t, OutcomeSolved, res.Outcome)
	assert.True(t, res.Solved())

	// until eliminates everything but the answer, so two moves do it.
	assert.Equal(t, []string{"until", "arose"}, guesses(res))
	assert.Equal(t, "until", res.Start)
	assert.Equal(t, "xxxxx", res.Trace[0].Feedback)
	assert.Equal(t, 1, res.Trace[0].Remaining)
	assert.Equal(t, "ggggg", res.Trace[1].Feedback)
	assert.True(t, res.Trace[1].Solved)
}

func TestSolveDelegateStart(t *testing.T) {
	corpus := testCorpus(t, "arose", "until", "sooty", "cider")
	res, err := maxInfo(t).Solve(corpus, "cider", DelegateStart())
	assert.Nil(t, err)
	assert.Equal(t, OutcomeSolved, res.Outcome)
	// arose is the top-scored opener over this corpus.
	assert.Equal(t, []string{"arose", "cider"}, guesses(res))
	assert.Equal(t, "arose", res.Start)
}

func TestSolveWithOpenings(t *testing.T) {
	corpus := testCorpus(t, "shade", "point", "arose", "until")
	st, err := New("openings", MaxInfo{}, []string{"shade", "point"}, nil)
	require.Nil(t, err)

	res, err := st.Solve(corpus, "point", DelegateStart())
	assert.Nil(t, err)
	assert.Equal(t, OutcomeSolved, res.Outcome)
	assert.Equal(t, []string{"shade", "point"}, guesses(res))
	assert.False(t, res.Trace[0].Solved)
	assert.True(t, res.Trace[1].Solved)
}

func TestSolveOpeningsNotApplicable(t *testing.T) {
	corpus := testCorpus(t, "shade", "point")
	st, err := New("openings", MaxInfo{}, []string{"shade", "point"}, nil)
	require.Nil(t, err)

	// The matching fixed start is fine.
	res, err := st.Solve(corpus, "point", FixedStart("shade"))
	assert.Nil(t, err)
	assert.True(t, res.Solved())

	// Any other fixed start yields no result at all.
	_, err = st.Solve(corpus, "point", FixedStart("arose"))
	assert.True(t, errors.Is(err, ErrNotApplicable))
}

func TestSolveAbortThreshold(t *testing.T) {
	corpus := testCorpus(t, "arose", "cider", "shade", "sooty")

	// Without an effective abort the second opening still gets played
	// even though one candidate is left after the first guess.
	st, err := New("patient", MaxInfo{}, []string{"arose", "sooty"}, fptr(0.9))
	require.Nil(t, err)
	res, err := st.Solve(corpus, "cider", DelegateStart())
	assert.Nil(t, err)
	assert.Equal(t, []string{"arose", "sooty", "cider"}, guesses(res))

	// With a 0.5 threshold the pool (1 of 4) is below half the corpus,
	// so the openings are abandoned for the ranked pick.
	st, err = New("hasty", MaxInfo{}, []string{"arose", "sooty"}, fptr(0.5))
	require.Nil(t, err)
	res, err = st.Solve(corpus, "cider", DelegateStart())
	assert.Nil(t, err)
	assert.Equal(t, []string{"arose", "cider"}, guesses(res))
}

func TestSolveRunsOutOfMoves(t *testing.T) {
	// Six same-scored siblings outrank the answer alphabetically, so
	// the budget runs out with the pool still holding it.
	corpus := testCorpus(t,
		"balls", "calls", "falls", "galls", "halls", "malls", "walls")
	res, err := maxInfo(t).Solve(corpus, "walls", FixedStart("balls"))
	assert.Nil(t, err)
	assert.Equal(t, OutcomeExhausted, res.Outcome)
	assert.Equal(t, MaxMoves, res.Moves())
	assert.Equal(t,
		[]string{"balls", "calls", "falls", "galls", "halls", "malls"},
		guesses(res))
	last := res.Trace[len(res.Trace)-1]
	assert.False(t, last.Solved)
	assert.Equal(t, 1, last.Remaining)
}

func TestSolveAnswerOutsideCorpus(t *testing.T) {
	corpus := testCorpus(t, "arose")
	res, err := maxInfo(t).Solve(corpus, "until", FixedStart("arose"))
	assert.Nil(t, err)
	assert.Equal(t, OutcomeExhausted, res.Outcome)
	assert.Equal(t, 1, res.Moves())
	assert.Equal(t, 0, res.Trace[0].Remaining)
	assert.False(t, res.Trace[0].Exhausted)
}

func poisonedState(t *testing.T) solver.Constraints {
	t.Helper()
	// Tile marks with a doubled letter reported exact-then-absent empty
	// out the pinned position.
	fb, err := solver.ParseFeedback("gxxxx")
	require.Nil(t, err)
	_, cons, err := solver.Apply("sassy", fb, solver.NewConstraints())
	require.Nil(t, err)
	require.True(t, cons.Exhausted())
	return cons
}

func TestSolveFromExhaustedStateStops(t *testing.T) {
	corpus := testCorpus(t, "arose", "cider", "until")
	res, err := maxInfo(t).solveFrom(corpus, "cider", FixedStart("arose"), poisonedState(t))
	assert.Nil(t, err)
	assert.Equal(t, OutcomeExhausted, res.Outcome)
	assert.Equal(t, 1, res.Moves())
	assert.True(t, res.Trace[0].Exhausted)
}

func TestSolveFromExhaustedStateDelegate(t *testing.T) {
	corpus := testCorpus(t, "arose", "cider", "until")
	res, err := maxInfo(t).solveFrom(corpus, "cider", DelegateStart(), poisonedState(t))
	assert.Nil(t, err)
	assert.Equal(t, OutcomeExhausted, res.Outcome)
	assert.Equal(t, 0, res.Moves())
}

func TestSolveRejectsBadInput(t *testing.T) {
	corpus := testCorpus(t, "arose")
	_, err := maxInfo(t).Solve(corpus, "arise!", DelegateStart())
	assert.True(t, errors.Is(err, solver.ErrInvalidWord))
	_, err = maxInfo(t).Solve(corpus, "arose", FixedStart("bad"))
	assert.True(t, errors.Is(err, solver.ErrInvalidWord))
}

func TestSolveRandomStrategyTerminates(t *testing.T) {
	corpus := testCorpus(t, "arose", "until", "sooty", "cider")
	st, err := New("random", Random{}, nil, nil)
	require.Nil(t, err)
	for i := 0; i < 20; i++ {
		res, err := st.Solve(corpus, "sooty", DelegateStart())
		assert.Nil(t, err)
		assert.LessOrEqual(t, res.Moves(), MaxMoves)
		assert.NotEqual(t, Outcome(0), res.Outcome)
	}
}

func TestStartingMoveString(t *testing.T) {
	assert.Equal(t, "delegate", DelegateStart().String())
	assert.Equal(t, "arose", FixedStart("arose").String())
}
