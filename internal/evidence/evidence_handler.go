package evidence

import (
	"go-geoattend/internal/employee"
	employeeerrors "go-geoattend/internal/employee/errors"
	"go-geoattend/internal/shared/apperror"
	"go-geoattend/internal/shared/response"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	service   Service
	employees employee.Service
}

func NewHandler(service Service, employees employee.Service) *Handler {
	return &Handler{service: service, employees: employees}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// Upload stores a photo for the caller so a later check-in can refer to it
// by id.
func (h *Handler) Upload(c *gin.Context) {
	var req UploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	ctx := c.Request.Context()
	emp, err := h.employees.Resolve(ctx, employee.Ref{
		CompanyID:  c.GetString("company_id"),
		EmployeeID: c.GetString("employee_id"),
		UserID:     c.GetString("user_id_validated"),
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if !emp.IsActive() {
		writeServiceError(c, employeeerrors.ErrEmployeeInactive)
		return
	}

	companyID, err := uuid.Parse(c.GetString("company_id"))
	if emp.CompanyID != nil {
		companyID, err = *emp.CompanyID, nil
	}
	if err != nil {
		writeServiceError(c, apperror.InvalidField("Company ID"))
		return
	}

	f, err := h.service.Upload(ctx, companyID, emp.ID, Kind(req.Kind), req.Photo)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, mapToResponse(f), nil)
}
