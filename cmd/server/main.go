package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"

	web "trainbook/internal/adapters/http"
	"trainbook/internal/adapters/http/perf"
	"trainbook/internal/adapters/storage"
	trainingStore "trainbook/internal/adapters/storage/training"
	"trainbook/internal/application/orchestrators"
	"trainbook/internal/config"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	setupLogging(cfg.LogLevel)

	// All data lives in memory. The collection starts empty and is gone at
	// process exit unless exported through /export.
	memStore := trainingStore.NewMemoryStore()

	// Performance instrumentation: wrap the store with timing, create collector
	collector := perf.NewCollector(cfg.PerfRingSize)
	timedStore := storage.NewTimedStore(memStore, collector)

	stores := &web.Stores{
		TrainingStore: timedStore,
	}

	// Seed synthetic data for development only
	if cfg.Env != "production" {
		seedDeps := orchestrators.SeedSyntheticDeps{TrainingStore: timedStore}
		if err := orchestrators.ExecuteSeedSynthetic(context.Background(), seedDeps); err != nil {
			log.Fatalf("failed to seed synthetic data: %v", err)
		}
		log.Println("Synthetic seed data loaded (dev mode)")
	}

	// Create HTTP handler with middleware (pass collector for timing + dashboard)
	mux := web.NewMux(cfg, stores, collector)

	log.Printf("Trainbook %s starting on %s (env=%s)", version, cfg.Addr, cfg.Env)

	if err := http.ListenAndServe(cfg.Addr, mux); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// setupLogging installs a text slog handler at the configured level.
func setupLogging(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}
