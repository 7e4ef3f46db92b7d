package solveserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/domino14/wordle_explorer/internal/auth"
	"github.com/domino14/wordle_explorer/internal/drill"
	"github.com/domino14/wordle_explorer/internal/lexicon"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

type wordsRequest struct {
	Action string `json:"action"`
	Word   string `json:"word"`
}

// WordsHandler edits the word lists (add, drop, confirm) and reloads
// the corpus. Mount it behind the auth middleware.
func (s *Server) WordsHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeJSONError(w, http.StatusMethodNotAllowed, "POST only")
			return
		}
		var req wordsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSONError(w, http.StatusBadRequest, "bad request body")
			return
		}
		var err error
		switch req.Action {
		case "add":
			err = lexicon.Add(s.dataPath, req.Word)
		case "drop":
			err = lexicon.Drop(s.dataPath, req.Word)
		case "confirm":
			err = lexicon.Confirm(s.dataPath, req.Word)
		default:
			writeJSONError(w, http.StatusBadRequest, "action must be add, drop or confirm")
			return
		}
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err := s.ReloadCorpus(); err != nil {
			writeJSONError(w, http.StatusInternalServerError, err.Error())
			return
		}
		username := "anonymous"
		if u := auth.UserFromContext(r.Context()); u != nil {
			username = u.Username
		}
		log.Info().Str("user", username).Str("action", req.Action).
			Str("word", req.Word).Msg("word-list-edited")
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"status":      "ok",
			"corpus_size": s.Corpus().Len(),
		})
	})
}

// DrillDueHandler lists cards due for review.
func (s *Server) DrillDueHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limit := 10
		if l, ok := r.URL.Query()["limit"]; ok && len(l[0]) > 0 {
			n, err := strconv.Atoi(l[0])
			if err != nil || n < 1 {
				writeJSONError(w, http.StatusBadRequest, "bad limit")
				return
			}
			limit = n
		}
		cards, err := s.drill.Due(r.Context(), limit)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err.Error())
			return
		}
		if cards == nil {
			cards = []drill.CardInfo{}
		}
		total, due, err := s.drill.Counts(r.Context())
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"cards": cards,
			"total": total,
			"due":   due,
		})
	})
}

type reviewRequest struct {
	Word  string `json:"word"`
	Score int    `json:"score"`
}

// DrillReviewHandler scores a card and reschedules it.
func (s *Server) DrillReviewHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeJSONError(w, http.StatusMethodNotAllowed, "POST only")
			return
		}
		var req reviewRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSONError(w, http.StatusBadRequest, "bad request body")
			return
		}
		next, err := s.drill.Review(r.Context(), req.Word, req.Score)
		switch {
		case errors.Is(err, drill.ErrCardNotFound):
			writeJSONError(w, http.StatusNotFound, err.Error())
		case err != nil:
			writeJSONError(w, http.StatusBadRequest, err.Error())
		default:
			writeJSON(w, http.StatusOK, map[string]interface{}{"next_scheduled": next})
		}
	})
}

type addCardRequest struct {
	Word   string `json:"word"`
	Misses int    `json:"misses"`
}

// DrillAddHandler puts a word in the drill deck by hand.
func (s *Server) DrillAddHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeJSONError(w, http.StatusMethodNotAllowed, "POST only")
			return
		}
		var req addCardRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSONError(w, http.StatusBadRequest, "bad request body")
			return
		}
		if err := s.drill.Seed(r.Context(), req.Word, "manual", req.Misses); err != nil {
			writeJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		card, err := s.drill.Card(r.Context(), req.Word)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, card)
	})
}
