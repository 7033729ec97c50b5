package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"evm_chains/internal/infrastructure/configloader"
	"evm_chains/internal/infrastructure/restapi"
	"evm_chains/internal/pkg/logger"
	"evm_chains/internal/pkg/utils"
	"evm_chains/pkg/evmchains"

	"github.com/gin-gonic/gin"
	slogzap "github.com/samber/slog-zap/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const defaultConfigPath = "config/config.yml"

func main() {
	// Bootstrap logger for failures before the config is known.
	tempZapLogger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "CRITICAL: failed to initialize bootstrap logger: %v\n", err)
		os.Exit(1)
	}

	cfgPath := utils.GetEnv("CONFIG_PATH", defaultConfigPath)
	cfg, err := configloader.Load(cfgPath)
	if err != nil {
		tempZapLogger.Fatal("Failed to load configuration", zap.String("path", cfgPath), zap.Error(err))
	}

	zapLogger, err := newZapLogger(cfg.Logging)
	if err != nil {
		tempZapLogger.Fatal("Failed to initialize zap logger", zap.Error(err))
	}
	defer zapLogger.Sync() //nolint:errcheck

	slogLevel, ok := logger.ParseLevel(cfg.Logging.Level)
	logger.SetHandler(slogzap.Option{Level: slogLevel, Logger: zapLogger}.NewZapHandler())
	if !ok {
		logger.Warn("Invalid log level in config, defaulting to INFO", "level", cfg.Logging.Level)
	}
	logger.Info("Configuration loaded", "path", cfgPath)

	appLogger := logger.NewSlogAdapter()

	registry, err := evmchains.Default()
	if err != nil {
		logger.Fatal("Failed to load embedded chain dataset", "error", err)
	}

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}

	metrics := restapi.NewMetrics()
	metrics.SetChainsLoaded(registry.Len())

	handler := restapi.NewChainHandler(registry, cfg, metrics, appLogger)
	router := restapi.SetupRouter(handler, cfg, metrics, appLogger)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSeconds) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeoutSeconds) * time.Second,
	}

	go func() {
		logger.Info("Starting HTTP server", "address", srv.Addr, "chains", registry.Len())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start HTTP server", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down HTTP server")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("HTTP server forced to shutdown", "error", err)
		return
	}
	logger.Info("HTTP server stopped")
}

func newZapLogger(cfg configloader.LoggingConfig) (*zap.Logger, error) {
	zapCfg := zap.NewProductionConfig()
	if cfg.Development {
		zapCfg = zap.NewDevelopmentConfig()
	}
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	return zapCfg.Build()
}
