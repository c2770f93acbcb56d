package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/veritia/trustsearch/internal/config"
	"github.com/veritia/trustsearch/internal/corpus"
	logpkg "github.com/veritia/trustsearch/internal/logger"
	chiTransport "github.com/veritia/trustsearch/internal/transport/chi"
	healthuc "github.com/veritia/trustsearch/internal/usecase/health"
	optionsuc "github.com/veritia/trustsearch/internal/usecase/options"
	searchuc "github.com/veritia/trustsearch/internal/usecase/search"
	suggestuc "github.com/veritia/trustsearch/internal/usecase/suggest"
	"github.com/veritia/trustsearch/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.New(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting trustsearch API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
	)

	// The corpus is the whole data layer: static, in memory, loaded once.
	store := corpus.Demo()
	logger.Info("Corpus loaded",
		zap.Int("documents", store.Size()),
		zap.Int("sources", len(store.Sources())),
	)

	// Create use case services
	searchSvc := searchuc.New(store)
	suggestSvc := suggestuc.New(store, cfg.Suggest.DefaultLimit, cfg.Suggest.MaxLimit)
	optionsSvc := optionsuc.New(store)
	healthSvc := healthuc.New(store)

	// Create chi server
	server := chiTransport.NewServer(searchSvc, suggestSvc, optionsSvc, healthSvc, cfg.Search, logger)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      server.Router(),
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Forced shutdown", zap.Error(err))
	}
	logger.Info("Server stopped")
}
