package main

import (
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"pet-lost-and-found/internal/adapters/storage/postgres"
	"pet-lost-and-found/internal/auth"
	"pet-lost-and-found/internal/config"
	"pet-lost-and-found/internal/platform/logger"
	"pet-lost-and-found/internal/router"
	"pet-lost-and-found/internal/uploads"
)

func main() {
	// .env es opcional; en producción las vars vienen del entorno.
	_ = godotenv.Load()

	log := logger.NewFromEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Error("invalid configuration", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	photos, err := uploads.NewDisk(cfg.Uploads.Dir)
	if err != nil {
		log.Error("cannot prepare uploads dir", map[string]any{"dir": cfg.Uploads.Dir, "error": err.Error()})
		os.Exit(1)
	}

	opts := router.Options{
		Tokens: auth.NewTokens(cfg.Auth),
		Photos: photos,
		Log:    log,
	}

	// Si Postgres no responde arrancamos igual con repos in-memory (modo dev).
	if db, err := postgres.Open(cfg.DB.URL); err != nil {
		log.Warn("postgres unavailable, using in-memory storage", map[string]any{"error": err.Error()})
	} else {
		opts.DB = db
		defer db.Close()
	}

	addr := ":" + cfg.Server.Port

	srv := &http.Server{
		Addr:         addr,
		Handler:      router.NewRouter(opts),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", map[string]any{"addr": addr})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}
