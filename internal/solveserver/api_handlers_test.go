package solveserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/justinas/alice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domino14/wordle_explorer/internal/auth"
	"github.com/domino14/wordle_explorer/internal/drill"
)

func postJSON(h http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return do(h, req)
}

func TestWordsHandler(t *testing.T) {
	srv := testServer(t)
	h := srv.WordsHandler()

	w := postJSON(h, "/api/words", `{"action":"add","word":"merit"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Status     string `json:"status"`
		CorpusSize int    `json:"corpus_size"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, 6, resp.CorpusSize)
	assert.True(t, srv.Corpus().Contains("merit"))

	w = postJSON(h, "/api/words", `{"action":"drop","word":"merit"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, srv.Corpus().Contains("merit"))

	w = postJSON(h, "/api/words", `{"action":"confirm","word":"arose"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, srv.Corpus().Confirmed("arose"))
}

func TestWordsHandlerRejectsBadRequests(t *testing.T) {
	srv := testServer(t)
	h := srv.WordsHandler()

	w := do(h, httptest.NewRequest("GET", "/api/words", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)

	w = postJSON(h, "/api/words", `{"action":"vaporize","word":"merit"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(h, "/api/words", `{"action":"add","word":"xyz"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(h, "/api/words", `not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWordsHandlerBehindAuth(t *testing.T) {
	srv := testServer(t)
	secret := []byte("test-secret")
	h := alice.New(auth.Middleware(secret)).Then(srv.WordsHandler())

	w := postJSON(h, "/api/words", `{"action":"add","word":"merit"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, srv.Corpus().Contains("merit"))

	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256,
		jwt.MapClaims{"usn": "cesar"}).SignedString(secret)
	require.NoError(t, err)
	req := httptest.NewRequest("POST", "/api/words",
		strings.NewReader(`{"action":"add","word":"merit"}`))
	req.Header.Set("Authorization", "Bearer "+tok)
	w = do(h, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, srv.Corpus().Contains("merit"))
}

func TestDrillHandlers(t *testing.T) {
	srv := testServer(t)

	w := do(srv.DrillDueHandler(), httptest.NewRequest("GET", "/api/drill/due", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	var dueResp struct {
		Cards []drill.CardInfo `json:"cards"`
		Total int              `json:"total"`
		Due   int              `json:"due"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dueResp))
	assert.Equal(t, 0, dueResp.Total)
	assert.Len(t, dueResp.Cards, 0)

	w = postJSON(srv.DrillAddHandler(), "/api/drill/add", `{"word":"lymph","misses":2}`)
	assert.Equal(t, http.StatusOK, w.Code)
	var card drill.CardInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &card))
	assert.Equal(t, "lymph", card.Word)
	assert.Equal(t, 2, card.Misses)

	w = do(srv.DrillDueHandler(), httptest.NewRequest("GET", "/api/drill/due", nil))
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dueResp))
	assert.Equal(t, 1, dueResp.Total)
	assert.Equal(t, 1, dueResp.Due)
	require.Len(t, dueResp.Cards, 1)
	assert.Equal(t, "lymph", dueResp.Cards[0].Word)

	w = postJSON(srv.DrillReviewHandler(), "/api/drill/review", `{"word":"lymph","score":3}`)
	assert.Equal(t, http.StatusOK, w.Code)
	var reviewResp struct {
		NextScheduled time.Time `json:"next_scheduled"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reviewResp))
	assert.True(t, reviewResp.NextScheduled.After(time.Now()))

	w = do(srv.DrillDueHandler(), httptest.NewRequest("GET", "/api/drill/due", nil))
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dueResp))
	assert.Equal(t, 1, dueResp.Total)
	assert.Equal(t, 0, dueResp.Due)
	assert.Len(t, dueResp.Cards, 0)
}

func TestDrillReviewErrors(t *testing.T) {
	srv := testServer(t)

	w := postJSON(srv.DrillReviewHandler(), "/api/drill/review", `{"word":"zonal","score":3}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = postJSON(srv.DrillAddHandler(), "/api/drill/add", `{"word":"zonal","misses":1}`)
	require.Equal(t, http.StatusOK, w.Code)
	w = postJSON(srv.DrillReviewHandler(), "/api/drill/review", `{"word":"zonal","score":9}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(srv.DrillReviewHandler(), httptest.NewRequest("GET", "/api/drill/review", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
