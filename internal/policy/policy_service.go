package policy

import (
	"context"
	"time"

	"go-geoattend/internal/branch"
	brancherrors "go-geoattend/internal/branch/errors"
	"go-geoattend/internal/employee"
	policyerrors "go-geoattend/internal/policy/errors"
	"go-geoattend/internal/shared/apperror"
	"go-geoattend/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const DefaultDependencyTimeout = 5 * time.Second

// configurationSteps is the number of sequential store calls one
// configuration lookup makes: employee, settings switch, settings, branch.
const configurationSteps = 4

// Configuration is everything an attendance decision needs about the
// employee's organization, resolved in one pass.
type Configuration struct {
	Employee  *employee.Employee
	CompanyID uuid.UUID
	Policy    AttendancePolicy
	Branch    *branch.Branch
	Geofence  branch.Geofence
}

//go:generate mockgen -source=policy_service.go -destination=mock/policy_service_mock.go -package=mock
type Service interface {
	Resolve(ctx context.Context, emp *employee.Employee) (AttendancePolicy, error)
	ResolveConfiguration(ctx context.Context, emp *employee.Employee) (*Configuration, error)
	ResolveForEmployee(ctx context.Context, ref employee.Ref) (*Configuration, error)
}

type service struct {
	repo      Repository
	branches  branch.Repository
	employees employee.Service
	timeout   time.Duration
	sf        *singleflight.Group
	logger    *zap.Logger
}

func NewService(
	repo Repository,
	branches branch.Repository,
	employees employee.Service,
	timeout time.Duration,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("policy.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("policy.service")
	}
	if timeout <= 0 {
		timeout = DefaultDependencyTimeout
	}
	return &service{
		repo:      repo,
		branches:  branches,
		employees: employees,
		timeout:   timeout,
		sf:        &singleflight.Group{},
		logger:    l,
	}
}

func (s *service) Resolve(ctx context.Context, emp *employee.Employee) (AttendancePolicy, error) {
	rid := contextutil.GetRequestID(ctx)

	if emp.CompanyID == nil || *emp.CompanyID == uuid.Nil {
		s.logger.Warn("employee has no company",
			zap.String("request_id", rid),
			zap.String("employee_id", emp.ID.String()),
		)
		return AttendancePolicy{}, policyerrors.ErrMissingCompany
	}
	companyID := emp.CompanyID.String()

	useDepartment, err := s.useDepartmentSettings(ctx, companyID)
	if err != nil {
		s.logger.Error("failed to read company settings switch",
			zap.String("request_id", rid),
			zap.String("company_id", companyID),
			zap.Error(err),
		)
		return AttendancePolicy{}, err
	}

	var pol AttendancePolicy
	if useDepartment {
		pol, err = s.resolveFromDepartment(ctx, companyID, emp)
	} else {
		pol, err = s.resolveFromProject(ctx, companyID, emp)
	}
	if err != nil {
		s.logger.Warn("attendance policy resolution failed",
			zap.String("request_id", rid),
			zap.String("employee_id", emp.ID.String()),
			zap.Bool("use_department_settings", useDepartment),
			zap.Error(err),
		)
		return AttendancePolicy{}, err
	}

	s.logger.Debug("attendance policy resolved",
		zap.String("request_id", rid),
		zap.String("employee_id", emp.ID.String()),
		zap.String("source", string(pol.Source.Kind)),
		zap.String("source_id", pol.Source.ID.String()),
	)

	return pol, nil
}

func (s *service) resolveFromDepartment(ctx context.Context, companyID string, emp *employee.Employee) (AttendancePolicy, error) {
	if emp.DepartmentID == nil || *emp.DepartmentID == uuid.Nil {
		return AttendancePolicy{}, policyerrors.ErrMissingDepartmentForDepartment
	}

	dept, err := s.departmentSettings(ctx, companyID, emp.DepartmentID.String())
	if err != nil {
		return AttendancePolicy{}, err
	}

	// a linked project never stands in for an unconfigured department
	if !dept.Flags.AnyConfigured() {
		return AttendancePolicy{}, policyerrors.ErrDepartmentPolicyNotConfigured
	}

	return newPolicy(dept.Flags, Source{
		Kind:           SourceDepartment,
		ID:             dept.Department.ID,
		Name:           dept.Department.Name,
		DepartmentID:   dept.Department.ID,
		DepartmentName: dept.Department.Name,
	}), nil
}

func (s *service) resolveFromProject(ctx context.Context, companyID string, emp *employee.Employee) (AttendancePolicy, error) {
	if emp.DepartmentID == nil || *emp.DepartmentID == uuid.Nil {
		return AttendancePolicy{}, policyerrors.ErrMissingDepartmentForProject
	}

	dept, err := s.departmentSettings(ctx, companyID, emp.DepartmentID.String())
	if err != nil {
		return AttendancePolicy{}, err
	}

	if dept.Department.ProjectID == nil || *dept.Department.ProjectID == uuid.Nil {
		return AttendancePolicy{}, policyerrors.ErrMissingProject
	}

	proj, err := s.projectSettings(ctx, companyID, dept.Department.ProjectID.String())
	if err != nil {
		return AttendancePolicy{}, err
	}

	if !proj.Flags.AnyConfigured() {
		return AttendancePolicy{}, policyerrors.ErrProjectPolicyNotConfigured
	}

	return newPolicy(proj.Flags, Source{
		Kind:           SourceProject,
		ID:             proj.Project.ID,
		Name:           proj.Project.Name,
		DepartmentID:   dept.Department.ID,
		DepartmentName: dept.Department.Name,
	}), nil
}

func (s *service) ResolveConfiguration(ctx context.Context, emp *employee.Employee) (*Configuration, error) {
	pol, err := s.Resolve(ctx, emp)
	if err != nil {
		return nil, apperror.AtStep("resolve_settings", err)
	}

	b, fence, err := s.resolveBranch(ctx, emp)
	if err != nil {
		return nil, apperror.AtStep("resolve_branch", err)
	}

	return &Configuration{
		Employee:  emp,
		CompanyID: *emp.CompanyID,
		Policy:    pol,
		Branch:    b,
		Geofence:  fence,
	}, nil
}

// ResolveForEmployee coalesces concurrent lookups for the same reference.
// Results are never cached beyond the in-flight call. The shared lookup
// runs detached from any one caller, bounded by the service timeout per
// step; each caller still stops waiting when its own context ends.
func (s *service) ResolveForEmployee(ctx context.Context, ref employee.Ref) (*Configuration, error) {
	key := ref.CompanyID + "|" + ref.EmployeeID + "|" + ref.UserID

	ch := s.sf.DoChan(key, func() (interface{}, error) {
		sharedCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), configurationSteps*s.timeout)
		defer cancel()

		emp, err := s.resolveEmployee(sharedCtx, ref)
		if err != nil {
			return nil, apperror.AtStep("resolve_employee", err)
		}
		return s.ResolveConfiguration(sharedCtx, emp)
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		s.logger.Warn("caller left before configuration lookup finished",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.String("key", key),
			zap.Error(ctx.Err()),
		)
		return nil, apperror.AtStep("resolve_employee", ctx.Err())
	case res = <-ch:
	}
	if res.Err != nil {
		return nil, res.Err
	}

	if res.Shared {
		s.logger.Debug("configuration lookup shared",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.String("key", key),
		)
	}

	cfg := *res.Val.(*Configuration)
	return &cfg, nil
}

func (s *service) resolveBranch(ctx context.Context, emp *employee.Employee) (*branch.Branch, branch.Geofence, error) {
	if emp.BranchID == nil || *emp.BranchID == uuid.Nil {
		return nil, branch.Geofence{}, brancherrors.ErrMissingBranch
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	b, err := s.branches.FindByID(callCtx, emp.BranchID.String())
	if err != nil {
		return nil, branch.Geofence{}, mapNotFound(err, brancherrors.ErrBranchNotFound)
	}

	fence, ok := b.Geofence()
	if !ok {
		s.logger.Warn("branch geofence not configured",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.String("branch_id", b.ID.String()),
		)
		return nil, branch.Geofence{}, brancherrors.BranchNotConfigured(b.DisplayName())
	}

	return b, fence, nil
}

func (s *service) resolveEmployee(ctx context.Context, ref employee.Ref) (*employee.Employee, error) {
	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.employees.Resolve(callCtx, ref)
}

func (s *service) useDepartmentSettings(ctx context.Context, companyID string) (bool, error) {
	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.repo.UseDepartmentSettings(callCtx, companyID)
}

func (s *service) departmentSettings(ctx context.Context, companyID, departmentID string) (*DepartmentSettings, error) {
	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	dept, err := s.repo.GetDepartmentSettings(callCtx, companyID, departmentID)
	if err != nil {
		return nil, mapNotFound(err, policyerrors.ErrDepartmentNotFound)
	}
	return dept, nil
}

func (s *service) projectSettings(ctx context.Context, companyID, projectID string) (*ProjectSettings, error) {
	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	proj, err := s.repo.GetProjectSettings(callCtx, companyID, projectID)
	if err != nil {
		return nil, mapNotFound(err, policyerrors.ErrProjectNotFound)
	}
	return proj, nil
}
