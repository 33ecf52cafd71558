package app

import (
	"database/sql"

	"go-geoattend/internal/branch"
	"go-geoattend/internal/checkin"
	"go-geoattend/internal/config"
	"go-geoattend/internal/employee"
	"go-geoattend/internal/evidence"
	"go-geoattend/internal/messaging/kafka"
	"go-geoattend/internal/middleware"
	"go-geoattend/internal/policy"
	"go-geoattend/internal/rbac"
	"go-geoattend/internal/rbac/infra"
	"go-geoattend/internal/shared/counter"
	"go-geoattend/internal/shift"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	cfg config.Config,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	logger *zap.Logger,
) error {
	timeout := cfg.Attendance.DependencyTimeout

	// --- Repositories ---
	branchRepo := branch.NewRepository(gormDB)
	checkinRepo := checkin.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	evidenceRepo := evidence.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	policyRepo := policy.NewRepository(gormDB)
	shiftRepo := shift.NewRepository(gormDB)
	evidenceStore := evidence.NewDiskStore(cfg.Evidence.Dir, cfg.Evidence.BaseURL)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(cfg.RBAC.Model, cfg.RBAC.Policy)
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(enforcer, logger)

	// --- Services ---
	employeeService := employee.NewService(employeeRepo, logger)
	policyService := policy.NewService(policyRepo, branchRepo, employeeService, timeout, logger)
	evidenceService := evidence.NewService(evidenceRepo, evidenceStore, evidence.Config{
		MaxBytes:     cfg.Evidence.MaxBytes,
		LinkOptional: cfg.Evidence.LinkOptional,
	}, logger)
	shiftService := shift.NewService(shiftRepo, logger)
	checkinService := checkin.NewService(checkin.Deps{
		DB:        db,
		Repo:      checkinRepo,
		Employees: employeeService,
		Policies:  policyService,
		Evidence:  evidenceService,
		Shifts:    shiftService,
		Counter:   counterRepo,
		Outbox:    outboxRepo,
		Timeout:   timeout,
	}, logger)

	// --- Handlers ---
	checkinHandler := checkin.NewHandlerWithRedis(checkinService, rbacService, rdb)
	evidenceHandler := evidence.NewHandler(evidenceService, employeeService)
	policyHandler := policy.NewHandler(policyService, rbacService)
	rbacHandler := rbac.NewHandler(rbacService)

	// --- Routes Registration ---
	auth := []gin.HandlerFunc{
		middleware.AuthMiddleware(cfg.Auth.JWTSecret),
		middleware.ExtractUserID(),
		middleware.ContextLogger(logger),
		middleware.RateLimitByUser(rate.Limit(cfg.RateLimit.RPS), cfg.RateLimit.Burst),
	}

	api := router.Group("/api/v1")
	{
		checkin.RegisterRoutes(api, checkinHandler, rbacService, rdb, auth...)
		evidence.RegisterRoutes(api, evidenceHandler, rbacService, auth...)
		policy.RegisterRoutes(api, policyHandler, rbacService, auth...)
		rbac.RegisterRoutes(api, rbacHandler, auth...)
	}

	return nil
}
