package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/memodeck/memodeck/internal/api"
	"github.com/memodeck/memodeck/internal/config"
	"github.com/memodeck/memodeck/internal/repository/sqlite"
	"github.com/memodeck/memodeck/internal/services"
)

func main() {
	cfg := config.Load()

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	if cfg.PrettyLog {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	log.Info().Msg("memodeck server starting")
	log.Debug().
		Str("addr", cfg.Addr).
		Str("db_path", cfg.DBPath).
		Str("log_level", cfg.LogLevel).
		Msg("configuration loaded")

	db, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	defer db.Close()

	deckRepo := sqlite.NewDeckRepository(db)
	cardRepo := sqlite.NewCardRepository(db)
	progressRepo := sqlite.NewProgressRepository(db)
	statsRepo := sqlite.NewStatsRepository(db)
	gamifyRepo := sqlite.NewGamifyRepository(db)

	gamifyService := services.NewGamifyService(gamifyRepo)
	deckService := services.NewDeckService(deckRepo, gamifyService)
	cardService := services.NewCardService(cardRepo, deckRepo, progressRepo, gamifyService)
	studyService := services.NewStudyService(cardRepo, progressRepo, statsRepo, gamifyService)
	statsService := services.NewStatsService(statsRepo, progressRepo, cardRepo, cfg.HistoryLimit)

	srv := api.NewServer(deckService, cardService, studyService, statsService, gamifyService)

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.Addr).Msg("HTTP server listening")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info().Str("signal", sig.String()).Msg("initiating graceful shutdown")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("memodeck server stopped")
}
