// Package solveserver implements the HTTP service: a plain-text query
// endpoint for bots, JSON endpoints for the drill deck, and guarded
// word-list maintenance.
package solveserver

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/domino14/wordle_explorer/internal/drill"
	"github.com/domino14/wordle_explorer/internal/explorer"
	"github.com/domino14/wordle_explorer/internal/lexicon"
	"github.com/domino14/wordle_explorer/internal/strategy"
)

// Server holds the service's shared state. The corpus is reloaded in
// place after word-list edits, so all access goes through Corpus().
type Server struct {
	mu       sync.RWMutex
	corpus   *lexicon.Corpus
	registry *strategy.Registry
	results  *explorer.Store
	drill    *drill.Store
	dataPath string
}

func NewServer(corpus *lexicon.Corpus, registry *strategy.Registry,
	results *explorer.Store, drillStore *drill.Store, dataPath string) *Server {
	return &Server{
		corpus:   corpus,
		registry: registry,
		results:  results,
		drill:    drillStore,
		dataPath: dataPath,
	}
}

func (s *Server) Corpus() *lexicon.Corpus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.corpus
}

// ReloadCorpus re-reads the word lists from the data path, picking up
// list edits without a restart.
func (s *Server) ReloadCorpus() error {
	corpus, err := lexicon.Load(s.dataPath)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.corpus = corpus
	s.mu.Unlock()
	log.Info().Int("corpus-size", corpus.Len()).Msg("corpus-reloaded")
	return nil
}

func timeTrack(start time.Time, name string) {
	elapsed := time.Since(start)
	log.Info().Msgf("%s took %s", name, elapsed)
}
