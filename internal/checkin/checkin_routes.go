package checkin

import (
	"go-geoattend/internal/domain"
	"go-geoattend/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	rdb *redis.Client,
	auth ...gin.HandlerFunc,
) {
	checkins := r.Group("/checkins")
	checkins.Use(auth...)
	{
		checkins.GET("", middleware.RBACAuthorize(rbacService, domain.ResourceCheckin, domain.ActionRead), handler.List)
		checkins.GET("/export", middleware.RBACAuthorize(rbacService, domain.ResourceCheckin, domain.ActionExport), handler.Export)
		checkins.POST(
			"",
			middleware.RBACAuthorize(rbacService, domain.ResourceCheckin, domain.ActionCreate),
			middleware.Idempotency(rdb),
			handler.Create,
		)
	}
}
