package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"moodtunes/discovery"
	"moodtunes/discovery/youtube"
	"moodtunes/server"
	"moodtunes/shared/config"
	"moodtunes/shared/logging"
	"moodtunes/shared/monitoring"
	"moodtunes/shared/sentiment"

	"github.com/robfig/cron/v3"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logging.Setup(cfg.Server.Env)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	gateway, err := youtube.NewGateway(ctx, cfg.YouTube.APIKey)
	if err != nil {
		log.Fatalf("Failed to create YouTube gateway: %v", err)
	}

	// Scorer selection happens once, here, not per call.
	scorer := sentiment.New()
	slog.Info("sentiment scorer selected", "scorer", scorer.Name())

	monitor := monitoring.NewMonitor()
	orchestrator := discovery.NewOrchestrator(scorer, gateway)
	srv := server.New(cfg, orchestrator, monitor)

	// Prevent overlapping heartbeat runs
	heartbeat := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))
	if _, err := heartbeat.AddFunc(cfg.Discovery.HeartbeatSchedule, func() {
		slog.Info("heartbeat",
			"healthy", monitor.IsHealthy(),
			"status", monitor.GetStatusSummary())
	}); err != nil {
		log.Fatalf("Failed to schedule heartbeat: %v", err)
	}
	heartbeat.Start()

	httpServer := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: srv.Router(),
	}

	go func() {
		<-ctx.Done()
		slog.Info("shutting down")
		heartbeat.Stop()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}()

	slog.Info("server listening",
		"port", cfg.Server.Port,
		"env", cfg.Server.Env,
		"default_language", cfg.Discovery.DefaultLanguage)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("Server error: %v", err)
	}
}
