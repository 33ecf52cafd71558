package policy

import (
	"go-geoattend/internal/domain"
	"go-geoattend/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService, auth ...gin.HandlerFunc) {
	attendance := r.Group("/attendance")
	attendance.Use(auth...)
	{
		attendance.GET("/configuration",
			middleware.RBACAuthorize(rbacService, domain.ResourceConfiguration, domain.ActionRead),
			h.GetConfiguration,
		)
	}
}
