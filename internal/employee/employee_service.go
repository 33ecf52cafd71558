package employee

import (
	"context"

	employeeerrors "go-geoattend/internal/employee/errors"
	"go-geoattend/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Resolve(ctx context.Context, ref Ref) (*Employee, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{repo: repo, logger: l}
}

// Resolve looks the employee up by id, or by the linked user when no id is
// given, always inside ref.CompanyID. An employee of another company is
// reported as not found. Activity is not checked here; callers decide what
// inactive means.
func (s *service) Resolve(ctx context.Context, ref Ref) (*Employee, error) {
	rid := contextutil.GetRequestID(ctx)

	var (
		emp *Employee
		err error
	)

	if _, parseErr := uuid.Parse(ref.CompanyID); parseErr != nil {
		s.logger.Warn("employee lookup without company",
			zap.String("request_id", rid),
			zap.String("company_id", ref.CompanyID),
		)
		return nil, employeeerrors.ErrEmployeeNotFound
	}

	switch {
	case ref.EmployeeID != "":
		if _, parseErr := uuid.Parse(ref.EmployeeID); parseErr != nil {
			s.logger.Warn("invalid employee id",
				zap.String("request_id", rid),
				zap.String("employee_id", ref.EmployeeID),
			)
			return nil, employeeerrors.ErrInvalidEmployeeID
		}
		emp, err = s.repo.FindByIDAndCompany(ctx, ref.CompanyID, ref.EmployeeID)
	case ref.UserID != "":
		emp, err = s.repo.FindByUserIDAndCompany(ctx, ref.CompanyID, ref.UserID)
	default:
		return nil, employeeerrors.ErrEmployeeRefMissing
	}

	if err != nil {
		mapped := mapRepositoryError(err)
		if mapped == employeeerrors.ErrEmployeeNotFound {
			s.logger.Warn("employee not found",
				zap.String("request_id", rid),
				zap.String("employee_id", ref.EmployeeID),
				zap.String("user_id", ref.UserID),
				zap.String("company_id", ref.CompanyID),
			)
		} else {
			s.logger.Error("failed to load employee",
				zap.String("request_id", rid),
				zap.Error(err),
			)
		}
		return nil, mapped
	}

	return emp, nil
}
