package middleware

import (
	"go-geoattend/internal/domain"
	"go-geoattend/internal/shared/apperror"
	"go-geoattend/internal/shared/response"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ContextKey string

const (
	ContextEmployeeID ContextKey = "employee_id"
	ContextCompanyID  ContextKey = "company_id"
	ContextRole       ContextKey = "role"
)

// RBACService is satisfied by anything that can answer an EnforceRequest.
type RBACService interface {
	Enforce(req domain.EnforceRequest) (bool, error)
}

func enforceRequest(c *gin.Context, resource, action string) domain.EnforceRequest {
	return domain.EnforceRequest{
		EmployeeID: c.GetString(string(ContextEmployeeID)),
		CompanyID:  c.GetString(string(ContextCompanyID)),
		Role:       c.GetString(string(ContextRole)),
		Resource:   resource,
		Action:     action,
	}
}

func RBACAuthorize(service RBACService, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(string(ContextCompanyID)) == "" {
			response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "missing auth context", nil)
			c.Abort()
			return
		}

		allowed, err := service.Enforce(enforceRequest(c, resource, action))
		if err != nil {
			response.Error(c, http.StatusInternalServerError, apperror.CodeInternalError, "authorization check failed", nil)
			c.Abort()
			return
		}

		if !allowed {
			response.Error(c, http.StatusForbidden, apperror.CodeForbidden,
				apperror.ErrForbidden.Message,
				gin.H{"required": resource + ":" + action},
			)
			c.Abort()
			return
		}
		c.Next()
	}
}

// AuthorizeOnBehalf checks the extra permission needed when the caller
// targets another employee's records. Acting on oneself is always allowed.
func AuthorizeOnBehalf(c *gin.Context, service RBACService, targetEmployeeID, resource, action string) error {
	if targetEmployeeID == "" || targetEmployeeID == c.GetString(string(ContextEmployeeID)) {
		return nil
	}

	allowed, err := service.Enforce(enforceRequest(c, resource, action))
	if err != nil {
		return apperror.Wrap(err, apperror.CodeInternalError, "authorization check failed", http.StatusInternalServerError)
	}
	if !allowed {
		return apperror.ErrForbidden.WithDetails(gin.H{"required": resource + ":" + action})
	}
	return nil
}
