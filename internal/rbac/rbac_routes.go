package rbac

import (
	"go-geoattend/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, auth ...gin.HandlerFunc) {
	group := r.Group("/rbac")
	group.Use(auth...)
	{
		group.POST("/enforce", handler.Enforce)
		group.POST("/reload", middleware.RoleMiddleware("ADMIN", "SUPER_ADMIN"), handler.Reload)
	}
}
