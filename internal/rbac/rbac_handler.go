package rbac

import (
	"go-geoattend/internal/domain"
	"go-geoattend/internal/shared/apperror"
	"go-geoattend/internal/shared/response"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

type CheckPermissionRequest struct {
	Resource string `json:"resource" binding:"required"`
	Action   string `json:"action" binding:"required"`
}

// Enforce lets a client ask which actions the caller may take, e.g. to
// hide the "record for someone else" button.
func (h *Handler) Enforce(c *gin.Context) {
	var req CheckPermissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	allowed, err := h.service.Enforce(domain.EnforceRequest{
		EmployeeID: c.GetString("employee_id"),
		CompanyID:  c.GetString("company_id"),
		Role:       c.GetString("role"),
		Resource:   strings.TrimSpace(req.Resource),
		Action:     strings.TrimSpace(req.Action),
	})
	if err != nil {
		response.Error(c, http.StatusInternalServerError, apperror.CodeInternalError, "authorization check failed", nil)
		return
	}

	response.Success(c, http.StatusOK, domain.EnforceResponse{Allowed: allowed}, nil)
}

// Reload re-reads the policy file after grants were edited on disk.
func (h *Handler) Reload(c *gin.Context) {
	if err := h.service.Reload(); err != nil {
		response.Error(c, http.StatusInternalServerError, apperror.CodeInternalError, "policy reload failed", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"reloaded": true}, nil)
}
