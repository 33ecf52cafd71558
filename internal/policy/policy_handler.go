package policy

import (
	"go-geoattend/internal/domain"
	"go-geoattend/internal/employee"
	"go-geoattend/internal/middleware"
	"go-geoattend/internal/shared/apperror"
	"go-geoattend/internal/shared/response"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
	rbac    middleware.RBACService
}

func NewHandler(service Service, rbac middleware.RBACService) *Handler {
	return &Handler{service: service, rbac: rbac}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// GetConfiguration returns the branch geofence and the evidence/location
// rules the mobile client must satisfy before posting a check-in.
func (h *Handler) GetConfiguration(c *gin.Context) {
	target := strings.TrimSpace(c.Query("employee_id"))

	if err := middleware.AuthorizeOnBehalf(c, h.rbac, target, domain.ResourceCheckin, domain.ActionReadAny); err != nil {
		writeServiceError(c, err)
		return
	}

	ref := employee.Ref{
		CompanyID:  c.GetString("company_id"),
		EmployeeID: target,
		UserID:     c.GetString("user_id_validated"),
	}
	if ref.EmployeeID == "" {
		ref.EmployeeID = c.GetString("employee_id")
	}

	cfg, err := h.service.ResolveForEmployee(c.Request.Context(), ref)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, mapToResponse(cfg), nil)
}
