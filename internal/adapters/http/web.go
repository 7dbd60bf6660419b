package web

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"net/http"
	"time"

	"trainbook/internal/adapters/http/middleware"
	"trainbook/internal/adapters/http/perf"
	trainingStore "trainbook/internal/adapters/storage/training"
	"trainbook/internal/config"
)

// Stores holds all storage dependencies.
type Stores struct {
	TrainingStore trainingStore.Store
}

// loadCSRFKey decodes the configured CSRF secret (hex-encoded, 32 bytes).
// In production, the key MUST be set. In development, a random key is generated per startup.
func loadCSRFKey(cfg *config.Config) []byte {
	if cfg.CSRFKey != "" {
		key, err := hex.DecodeString(cfg.CSRFKey)
		if err != nil || len(key) != 32 {
			log.Fatal("csrf_key must be 64 hex characters (32 bytes)")
		}
		return key
	}
	if cfg.Env == "production" {
		log.Fatal("csrf_key is required in production")
	}
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		log.Fatalf("failed to generate CSRF key: %v", err)
	}
	log.Println("WARNING: using random CSRF key (tokens won't survive restart). Set TRAINBOOK_CSRF_KEY for production.")
	return key
}

// Global stores instance (set by NewMux)
var stores *Stores

// Global templates directory (set by NewMux)
var templatesDir = "internal/adapters/http/templates"

// Global perf collector (set by NewMux)
var perfCollector *perf.Collector

// NewMux wires HTTP handlers for the app.
func NewMux(cfg *config.Config, s *Stores, collector *perf.Collector) http.Handler {
	stores = s
	perfCollector = collector
	if cfg.TemplatesDir != "" {
		templatesDir = cfg.TemplatesDir
	}

	mux := http.NewServeMux()
	registerRoutes(mux)

	// CSRF key: 32-byte hex-encoded secret
	csrfKey := loadCSRFKey(cfg)

	// Rate limiter: configurable requests per second per IP (OWASP A04)
	limiter := middleware.NewRateLimiter(cfg.RateLimitPerSecond, time.Second)

	// Apply middleware: Timing -> CSRF -> SecurityHeaders -> RateLimit -> Mux
	return middleware.Chain(mux,
		middleware.SecurityHeaders,
		middleware.CSRF(csrfKey),
		middleware.RateLimit(limiter),
		middleware.Timing(collector),
	)
}
