package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/nbecerra-cpu/actas-sas-duelegal/internal/api"
	"github.com/nbecerra-cpu/actas-sas-duelegal/internal/config"
	"github.com/nbecerra-cpu/actas-sas-duelegal/internal/drafting"
	"github.com/nbecerra-cpu/actas-sas-duelegal/internal/drive"
	"github.com/nbecerra-cpu/actas-sas-duelegal/internal/pipeline"
)

func main() {
	// Optional .env for local development; the environment wins.
	_ = godotenv.Load()

	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize clients. Drafting and Drive are optional integrations.
	var stats *drafting.Stats
	var lucia *drafting.LucIAClient
	if cfg.AnthropicAPIKey != "" {
		stats = drafting.NewStats(time.Hour)
		lucia = drafting.NewLucIAClient(cfg.AnthropicAPIKey, cfg.AnthropicModel, stats)
	} else {
		log.Warn("ANTHROPIC_API_KEY not set, drafting disabled")
	}

	dr := drive.NewClient(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURI)
	if !dr.Configured() {
		log.Warn("google drive credentials not set, upload disabled")
	}

	// Initialize pipeline.
	orch := pipeline.NewOrchestrator(cfg, lucia, dr, log)
	orch.Start(ctx)

	// Initialize HTTP server.
	srv := api.NewServer(orch, dr, stats, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		orch.Stop()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)

		if lucia != nil {
			lucia.Close()
		}
		dr.Close()
	}()

	log.Info("starting acta generator", "port", cfg.Port)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
