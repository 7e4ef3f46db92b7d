// solverd serves the corpus and solver over HTTP: a plain-text query
// endpoint for chat bots, drill deck endpoints, and token-guarded
// word-list maintenance.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/wordle_explorer/config"
	"github.com/domino14/wordle_explorer/internal/auth"
	"github.com/domino14/wordle_explorer/internal/drill"
	"github.com/domino14/wordle_explorer/internal/explorer"
	"github.com/domino14/wordle_explorer/internal/lexicon"
	"github.com/domino14/wordle_explorer/internal/solveserver"
	"github.com/domino14/wordle_explorer/internal/stores"
	"github.com/domino14/wordle_explorer/internal/strategy"
)

const (
	GracefulShutdownTimeout = 10 * time.Second
)

func main() {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("")
	}
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if strings.ToLower(cfg.LogLevel) == "debug" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Info().Str("bind-addr", cfg.BindAddr).Msg("solverd-started")

	corpus, err := lexicon.Load(cfg.DataPath)
	if err != nil {
		log.Fatal().Err(err).Msg("loading-corpus")
	}
	log.Info().Int("corpus-size", corpus.Len()).Msg("corpus-loaded")

	db, err := stores.Open(cfg.DBPath, cfg.MigrationsPath)
	if err != nil {
		log.Fatal().Err(err).Msg("opening-db")
	}
	defer db.Close()

	server := solveserver.NewServer(corpus, strategy.Default(),
		explorer.NewStore(db), drill.NewStore(db), cfg.DataPath)

	if cfg.SecretKey == "" {
		log.Warn().Msg("no secret key set; maintenance endpoints accept unsigned tokens")
	}
	chain := alice.New(
		hlog.NewHandler(log.Logger),
		hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
			hlog.FromRequest(r).Info().
				Str("method", r.Method).
				Stringer("url", r.URL).
				Int("status", status).
				Int("size", size).
				Dur("duration", duration).
				Msg("request")
		}),
		hlog.RemoteAddrHandler("ip"),
		hlog.RequestIDHandler("req_id", "Request-Id"),
	)
	authChain := chain.Append(auth.Middleware([]byte(cfg.SecretKey)))

	mux := http.NewServeMux()
	mux.Handle("/txt", chain.Then(server.PlainTextHandler()))
	mux.Handle("/api/drill/due", chain.Then(server.DrillDueHandler()))
	mux.Handle("/api/words", authChain.Then(server.WordsHandler()))
	mux.Handle("/api/drill/review", authChain.Then(server.DrillReviewHandler()))
	mux.Handle("/api/drill/add", authChain.Then(server.DrillAddHandler()))

	srv := &http.Server{
		Addr:    cfg.BindAddr,
		Handler: mux,
	}
	idleConnsClosed := make(chan struct{})

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		// We received an interrupt signal, shut down.
		log.Info().Msg("got quit signal...")
		ctx, cancel := context.WithTimeout(context.Background(), GracefulShutdownTimeout)

		if err := srv.Shutdown(ctx); err != nil {
			// Error from closing listeners, or context timeout:
			log.Error().Msgf("HTTP server Shutdown: %v", err)
		}
		cancel()
		close(idleConnsClosed)
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("")
	}
	<-idleConnsClosed
	log.Info().Msg("server gracefully shutting down")
}
