package evidence

import (
	"go-geoattend/internal/domain"
	"go-geoattend/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService, auth ...gin.HandlerFunc) {
	evidence := r.Group("/evidence")
	evidence.Use(auth...)
	{
		evidence.POST("",
			middleware.RBACAuthorize(rbacService, domain.ResourceEvidence, domain.ActionCreate),
			h.Upload,
		)
	}
}
