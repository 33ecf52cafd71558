package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go-geoattend/internal/app"
	"go-geoattend/internal/bootstrap"
	"go-geoattend/internal/config"
	"go-geoattend/internal/shared/apperror"

	"github.com/ardanlabs/conf"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		if errors.Is(err, conf.ErrHelpWanted) {
			fmt.Println(config.Usage(&cfg))
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	logger.Info("starting api", zap.String("config", config.String(&cfg)))

	apperror.Init()
	r := gin.Default()

	// build dependency + routes
	cleanup, err := app.BuildApp(r, cfg)
	if err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}
	defer cleanup()

	auditLogger := bootstrap.NewZapAuditLogger(logger)
	auditLogger.Log(context.Background(), bootstrap.AuditLog{
		Action:  "SERVER_START",
		Message: "Server is starting",
		Meta: map[string]any{
			"port": cfg.Web.Port,
		},
	})

	bootstrap.StartHTTPServer(
		r,
		bootstrap.ServerConfig{
			Port:            cfg.Web.Port,
			ReadTimeout:     cfg.Web.ReadTimeout,
			WriteTimeout:    cfg.Web.WriteTimeout,
			IdleTimeout:     cfg.Web.IdleTimeout,
			ShutdownTimeout: cfg.Web.ShutdownTimeout,
		},
		auditLogger,
	)
}
