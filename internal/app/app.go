package app

import (
	"errors"
	"net/http"

	"go-geoattend/internal/branch"
	"go-geoattend/internal/checkin"
	"go-geoattend/internal/config"
	"go-geoattend/internal/employee"
	"go-geoattend/internal/evidence"
	"go-geoattend/internal/messaging/kafka"
	"go-geoattend/internal/middleware"
	"go-geoattend/internal/policy"
	"go-geoattend/internal/shared/connection"
	"go-geoattend/internal/shared/counter"
	"go-geoattend/internal/shift"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

// BuildApp connects the infrastructure and mounts every route on router.
// The returned cleanup closes the connections.
func BuildApp(router *gin.Engine, cfg config.Config) (func(), error) {
	logger := zap.L().Named("app")

	if cfg.Auth.JWTSecret == "" {
		return nil, errors.New("GEOATTEND_AUTH_JWT_SECRET is required")
	}

	gormDB, err := connection.ConnectGORMWithRetry(postgresConfig(cfg), cfg.DB.MaxRetries)
	if err != nil {
		return nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}

	if cfg.DB.AutoMigrate {
		if err := migrate(gormDB); err != nil {
			_ = sqlDB.Close()
			return nil, err
		}
		logger.Info("schema migrated")
	}

	redisClient, err := connection.ConnectRedisWithRetry(cfg.Redis.Addr, cfg.Redis.MaxRetries)
	if err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	cleanup := func() {
		_ = redisClient.Close()
		_ = sqlDB.Close()
	}

	router.Use(
		middleware.RequestID(),
		middleware.RateLimitByIP(rate.Limit(cfg.RateLimit.IPRPS), cfg.RateLimit.IPBurst),
		middleware.RequestTimeout(cfg.Web.WriteTimeout),
	)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.Static(cfg.Evidence.BaseURL, cfg.Evidence.Dir)

	if err := registerModules(router, cfg, sqlDB, gormDB, redisClient, logger); err != nil {
		cleanup()
		return nil, err
	}

	return cleanup, nil
}

func postgresConfig(cfg config.Config) connection.PostgresConfig {
	return connection.PostgresConfig{
		Host:     cfg.DB.Host,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		Name:     cfg.DB.Name,
		Port:     cfg.DB.Port,
		SSLMode:  cfg.DB.SSLMode,
	}
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&policy.Company{},
		&policy.Department{},
		&policy.Project{},
		&branch.Branch{},
		&employee.Employee{},
		&shift.Type{},
		&shift.Assignment{},
		&evidence.File{},
		&checkin.Checkin{},
		&counter.Record{},
		&kafka.OutboxRecord{},
	)
}
