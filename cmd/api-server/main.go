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

	"github.com/autoflow/autoflow/pkg/apiserver"
	"github.com/autoflow/autoflow/pkg/config"
	"github.com/autoflow/autoflow/pkg/executor"
	"github.com/autoflow/autoflow/pkg/store/memory"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if cfg.Database.URL != "" || cfg.Redis.URL != "" {
		logger.Warn("DATABASE_URL/REDIS_URL are set but durable storage is not implemented; records are kept in memory")
	}

	store := memory.NewStore()
	simulator := executor.NewSimulator(store, logger, cfg.Execution.Delay)
	server := apiserver.NewServer(store, simulator, cfg, logger)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      server.Router(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.ReadTimeout * 2,
	}

	go func() {
		logger.Info("Starting API server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Server.Env))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	simulator.Shutdown()
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Logging.Format == "console" || cfg.Server.Env == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
