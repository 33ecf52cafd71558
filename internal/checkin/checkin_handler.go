package checkin

import (
	"encoding/json"
	"fmt"
	"go-geoattend/internal/domain"
	"go-geoattend/internal/middleware"
	"go-geoattend/internal/shared/apperror"
	"go-geoattend/internal/shared/response"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const idempotencyTTL = 24 * time.Hour

type Handler struct {
	service Service
	rbac    middleware.RBACService
	rdb     *redis.Client
}

func NewHandler(service Service, rbac middleware.RBACService) *Handler {
	return &Handler{service: service, rbac: rbac}
}

func NewHandlerWithRedis(service Service, rbac middleware.RBACService, rdb *redis.Client) *Handler {
	return &Handler{service: service, rbac: rbac, rdb: rdb}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// target returns the employee the request acts on, defaulting to the
// caller, after checking the permission needed to act on someone else.
func (h *Handler) target(c *gin.Context, requested, action string) (string, error) {
	requested = strings.TrimSpace(requested)
	if err := middleware.AuthorizeOnBehalf(c, h.rbac, requested, domain.ResourceCheckin, action); err != nil {
		return "", err
	}
	if requested == "" {
		requested = c.GetString("employee_id")
	}
	return requested, nil
}

func (h *Handler) Create(c *gin.Context) {
	lockKey := c.GetString(middleware.IdempotencyLockKey)
	cacheKey := c.GetString(middleware.IdempotencyCacheKey)

	if h.rdb != nil && lockKey != "" {
		defer h.rdb.Del(c.Request.Context(), lockKey)
	}

	var req RecordEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	employeeID, err := h.target(c, req.EmployeeID, domain.ActionRecordAny)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	req.EmployeeID = employeeID
	req.UserID = c.GetString("user_id_validated")
	req.CompanyID = c.GetString("company_id")

	resp, err := h.service.RecordEvent(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	if h.rdb != nil && cacheKey != "" {
		if payload, marshalErr := json.Marshal(resp); marshalErr == nil {
			_ = h.rdb.Set(c.Request.Context(), cacheKey, payload, idempotencyTTL).Err()
		}
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) bindListRequest(c *gin.Context) (ListEventsRequest, bool) {
	var req ListEventsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return req, false
	}

	employeeID, err := h.target(c, req.EmployeeID, domain.ActionReadAny)
	if err != nil {
		writeServiceError(c, err)
		return req, false
	}
	req.EmployeeID = employeeID
	req.UserID = c.GetString("user_id_validated")
	req.CompanyID = c.GetString("company_id")
	return req, true
}

func (h *Handler) List(c *gin.Context) {
	req, ok := h.bindListRequest(c)
	if !ok {
		return
	}

	resp, err := h.service.ListEvents(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	meta := response.NewPaginationMeta(resp.TotalCount, resp.Offset, resp.Limit)
	response.Success(c, http.StatusOK, resp, &meta)
}

func (h *Handler) Export(c *gin.Context) {
	req, ok := h.bindListRequest(c)
	if !ok {
		return
	}

	file, err := h.service.Export(c.Request.Context(), req, c.DefaultQuery("format", ExportXLSX))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Name))
	c.Data(http.StatusOK, file.ContentType, file.Data)
}
