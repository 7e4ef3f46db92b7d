package solveserver

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/domino14/wordle_explorer/internal/helper"
	"github.com/domino14/wordle_explorer/internal/strategy"
)

// Useful for chat bots

const (
	defaultCandidateLimit = 20
)

func writeError(w http.ResponseWriter, err string) {
	w.WriteHeader(400)
	w.Write([]byte(err))
}

// PlainTextHandler serves bot-friendly plain text queries, dispatched
// on the method query parameter.
func (s *Server) PlainTextHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method, ok := r.URL.Query()["method"]
		if !ok || len(method[0]) < 1 {
			writeError(w, "method required")
			return
		}
		switch method[0] {
		case "candidates":
			s.candidates(w, r)
		case "solve":
			s.solve(w, r)
		case "stats":
			s.stats(w, r)
		default:
			writeError(w, "method not found")
		}
	})
}

// candidates replays a game in progress (comma-separated guesses and
// their tile marks) and writes the ranked remaining words.
func (s *Server) candidates(w http.ResponseWriter, r *http.Request) {
	guesses, ok := r.URL.Query()["guesses"]
	if !ok || len(guesses[0]) < 1 {
		writeError(w, "guesses required")
		return
	}
	marks, ok := r.URL.Query()["marks"]
	if !ok || len(marks[0]) < 1 {
		writeError(w, "marks required")
		return
	}
	words := strings.Split(guesses[0], ",")
	tiles := strings.Split(marks[0], ",")
	if len(words) != len(tiles) {
		writeError(w, "need one marks entry per guess")
		return
	}
	limit := defaultCandidateLimit
	if l, ok := r.URL.Query()["limit"]; ok && len(l[0]) > 0 {
		n, err := strconv.Atoi(l[0])
		if err != nil {
			writeError(w, "bad limit")
			return
		}
		limit = n
	}

	sess := helper.NewSession(s.Corpus())
	for i := range words {
		if _, err := sess.Guess(words[i], tiles[i]); err != nil {
			writeError(w, err.Error())
			return
		}
	}
	if sess.Solved() {
		moves := sess.Moves()
		w.Write([]byte("solved: " + moves[len(moves)-1].Guess))
		return
	}
	w.Write([]byte(sess.FormatRanked(limit)))
}

// solve plays a strategy against a known answer and writes the trace.
func (s *Server) solve(w http.ResponseWriter, r *http.Request) {
	defer timeTrack(time.Now(), "solve")
	answer, ok := r.URL.Query()["answer"]
	if !ok || len(answer[0]) < 1 {
		writeError(w, "answer required")
		return
	}
	stratName, ok := r.URL.Query()["strategy"]
	if !ok || len(stratName[0]) < 1 {
		stratName = []string{"maxinfo"}
	}
	st, err := s.registry.Get(stratName[0])
	if err != nil {
		writeError(w, err.Error())
		return
	}
	start := strategy.DelegateStart()
	if sw, ok := r.URL.Query()["start"]; ok && len(sw[0]) > 0 {
		start = strategy.FixedStart(strings.ToLower(sw[0]))
	}

	res, err := st.Solve(s.Corpus(), strings.ToLower(answer[0]), start)
	if err != nil {
		writeError(w, err.Error())
		return
	}
	var sb strings.Builder
	for _, m := range res.Trace {
		fmt.Fprintf(&sb, "%s %s (%d left)\n", m.Guess, m.Feedback, m.Remaining)
	}
	if res.Solved() {
		fmt.Fprintf(&sb, "solved in %d", res.Moves())
	} else {
		fmt.Fprintf(&sb, "exhausted after %d", res.Moves())
	}
	w.Write([]byte(sb.String()))
}

// stats writes the stored batch summary for a strategy.
func (s *Server) stats(w http.ResponseWriter, r *http.Request) {
	name, ok := r.URL.Query()["strategy"]
	if !ok || len(name[0]) < 1 {
		writeError(w, "strategy required")
		return
	}
	sum, err := s.results.Summary(r.Context(), name[0])
	if err != nil {
		writeError(w, err.Error())
		return
	}
	if sum == nil {
		w.Write([]byte("no summary for " + name[0]))
		return
	}
	w.Write([]byte(sum.String()))
}
