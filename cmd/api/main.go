package main

import (
	"time"

	"github.com/FurowKick/phone-directory/internal/app"
	"github.com/FurowKick/phone-directory/internal/bootstrap"
	"github.com/FurowKick/phone-directory/internal/config"
	"github.com/FurowKick/phone-directory/internal/shared/apperror"
	"github.com/FurowKick/phone-directory/internal/shared/audit"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config failed", zap.Error(err))
	}

	apperror.Init()
	r := gin.New()
	r.Use(gin.Recovery())

	auditLogger := audit.NewStdoutLogger()
	if err := app.BuildApp(r, cfg, auditLogger); err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}

	bootstrap.StartHTTPServer(
		r,
		bootstrap.ServerConfig{
			Port:         cfg.HTTP.Port,
			ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeout) * time.Second,
			WriteTimeout: time.Duration(cfg.HTTP.WriteTimeout) * time.Second,
			IdleTimeout:  time.Duration(cfg.HTTP.IdleTimeout) * time.Second,
		},
		auditLogger,
	)
}
