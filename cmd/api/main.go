package main

import (
	"context"
	"time"

	"speed-hrm/internal/app"
	"speed-hrm/internal/bootstrap"
	"speed-hrm/internal/config"
	"speed-hrm/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	logger := newLogger(cfg)
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	if cfg.JWTSecret == "" {
		logger.Fatal("JWT_SECRET is required")
	}

	r := gin.Default()

	// build dependency + routes
	cleanup, err := app.BuildApp(context.Background(), r, cfg)
	if err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}

	bootstrap.StartHTTPServer(
		r,
		bootstrap.ServerConfig{
			Port:            cfg.Port,
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    10 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: cfg.ShutdownTimeout,
		},
		bootstrap.NewZapEventLogger(logger),
		cleanup,
	)
}

func newLogger(cfg config.Config) *zap.Logger {
	build := zap.NewDevelopment
	if cfg.IsProduction() {
		build = zap.NewProduction
	}
	logger, err := build()
	if err != nil {
		panic(err)
	}
	return logger
}
