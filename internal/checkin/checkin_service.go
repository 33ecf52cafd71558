package checkin

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	checkinerrors "go-geoattend/internal/checkin/errors"
	"go-geoattend/internal/domain"
	"go-geoattend/internal/employee"
	employeeerrors "go-geoattend/internal/employee/errors"
	"go-geoattend/internal/events"
	"go-geoattend/internal/evidence"
	"go-geoattend/internal/geofence"
	"go-geoattend/internal/messaging/kafka"
	"go-geoattend/internal/policy"
	"go-geoattend/internal/shared/apperror"
	"go-geoattend/internal/shared/contextutil"
	"go-geoattend/internal/shared/counter"
	"go-geoattend/internal/shift"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Pipeline steps, reported on failures.
const (
	StepResolveEmployee           = "resolve_employee"
	StepValidateActive            = "validate_active"
	StepValidateLogType           = "validate_log_type"
	StepResolveSettings           = "resolve_settings"
	StepValidateGeofence          = "validate_geofence"
	StepValidateLocationEvidence  = "validate_location_evidence"
	StepValidateBiometricEvidence = "validate_biometric_evidence"
	StepValidateTimestamp         = "validate_timestamp"
	StepCheckDailyUniqueness      = "check_daily_uniqueness"
	StepResolveShift              = "resolve_shift"
	StepPersistEvent              = "persist_event"
	StepAttachLocationEvidence    = "attach_location_evidence"
	StepAttachBiometricEvidence   = "attach_biometric_evidence"
	StepListEvents                = "list_events"
)

const (
	checkinCounter    = "checkin_number"
	defaultListLimit  = 100
	aggregateCheckin  = "employee_checkin"
	statusRecorded    = "success"
	defaultCallBudget = 5 * time.Second
)

//go:generate mockgen -source=checkin_service.go -destination=mock/checkin_service_mock.go -package=mock
type Service interface {
	RecordEvent(ctx context.Context, req RecordEventRequest) (*RecordEventResponse, error)
	ListEvents(ctx context.Context, req ListEventsRequest) (*ListEventsResponse, error)
	Export(ctx context.Context, req ListEventsRequest, format string) (*ExportFile, error)
}

// Deps are the collaborators of the check-in service. Outbox may be nil,
// in which case no event is queued.
type Deps struct {
	DB        *sql.DB
	Repo      Repository
	Employees employee.Service
	Policies  policy.Service
	Evidence  evidence.Service
	Shifts    shift.Service
	Counter   counter.Repository
	Outbox    kafka.OutboxRepository
	Timeout   time.Duration
	Now       func() time.Time
}

type service struct {
	db        *sql.DB
	repo      Repository
	employees employee.Service
	policies  policy.Service
	evidence  evidence.Service
	shifts    shift.Service
	counter   counter.Repository
	outbox    kafka.OutboxRepository
	guard     *Guard
	timeout   time.Duration
	now       func() time.Time
	logger    *zap.Logger
}

func NewService(deps Deps, logger ...*zap.Logger) Service {
	l := zap.L().Named("checkin.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("checkin.service")
	}
	if deps.Timeout <= 0 {
		deps.Timeout = defaultCallBudget
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	return &service{
		db:        deps.DB,
		repo:      deps.Repo,
		employees: deps.Employees,
		policies:  deps.Policies,
		evidence:  deps.Evidence,
		shifts:    deps.Shifts,
		counter:   deps.Counter,
		outbox:    deps.Outbox,
		guard:     NewGuard(deps.Repo, deps.Timeout),
		timeout:   deps.Timeout,
		now:       deps.Now,
		logger:    l,
	}
}

// RecordEvent runs the attendance decision for one IN or OUT event and
// stores it. Nothing is written before every check has passed; evidence
// that fails to attach afterwards only produces warnings.
func (s *service) RecordEvent(ctx context.Context, req RecordEventRequest) (*RecordEventResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("record event requested",
		zap.String("request_id", rid),
		zap.String("employee_id", req.EmployeeID),
		zap.String("user_id", req.UserID),
		zap.String("log_type", req.LogType),
	)

	emp, err := s.resolveEmployee(ctx, employee.Ref{CompanyID: req.CompanyID, EmployeeID: req.EmployeeID, UserID: req.UserID})
	if err != nil {
		return nil, s.fail(ctx, StepResolveEmployee, err)
	}

	if !emp.IsActive() {
		return nil, s.fail(ctx, StepValidateActive, employeeerrors.ErrEmployeeInactive)
	}

	logType, ok := domain.ParseLogType(req.LogType)
	if !ok {
		return nil, s.fail(ctx, StepValidateLogType, checkinerrors.ErrInvalidLogType)
	}

	cfg, err := s.policies.ResolveConfiguration(ctx, emp)
	if err != nil {
		return nil, s.fail(ctx, StepResolveSettings, err)
	}

	var distance *float64
	if geofence.Applies(logType, cfg.Policy) {
		d, err := geofence.Validate(req.Latitude, req.Longitude, cfg.Geofence, logType)
		if err != nil {
			return nil, s.fail(ctx, StepValidateGeofence, err)
		}
		distance = &d
	}

	location, err := s.prepareEvidence(ctx, emp.ID, evidence.Requirement{
		Kind:     evidence.KindLocation,
		Required: cfg.Policy.RequireLocationPhoto,
		LogType:  logType,
	}, evidence.Input{Payload: req.LocationPhoto, ReferenceID: req.LocationPhotoID})
	if err != nil {
		return nil, s.fail(ctx, StepValidateLocationEvidence, err)
	}

	biometric, err := s.prepareEvidence(ctx, emp.ID, evidence.Requirement{
		Kind:     evidence.KindBiometric,
		Required: cfg.Policy.RequireBiometricPhoto,
		LogType:  logType,
	}, evidence.Input{Payload: req.ClientBiometricPhoto, ReferenceID: req.ClientBiometricPhotoID})
	if err != nil {
		return nil, s.fail(ctx, StepValidateBiometricEvidence, err)
	}

	at, err := ParseTimestamp(req.Timestamp, s.now())
	if err != nil {
		return nil, s.fail(ctx, StepValidateTimestamp, err)
	}

	if err := s.guard.CheckUnique(ctx, emp.ID, logType, at); err != nil {
		return nil, s.fail(ctx, StepCheckDailyUniqueness, err)
	}

	info, err := s.resolveShift(ctx, emp.ID, at)
	if err != nil {
		return nil, s.fail(ctx, StepResolveShift, err)
	}

	day, _ := DayWindow(at)
	row := &Checkin{
		ID:             uuid.New(),
		CompanyID:      cfg.CompanyID,
		EmployeeID:     emp.ID,
		EmployeeName:   emp.DisplayName(),
		LogType:        logType,
		Time:           at,
		EventDate:      day,
		Latitude:       req.Latitude.Ptr(),
		Longitude:      req.Longitude.Ptr(),
		DeviceID:       req.DeviceID,
		Notes:          req.Notes,
		DistanceMeters: distance,
		PolicySource:   string(cfg.Policy.Source.Kind),
		PolicySourceID: &cfg.Policy.Source.ID,
	}
	if info != nil {
		row.ShiftName = &info.Name
		row.ShiftStart = &info.Start
		row.ShiftEnd = &info.End
	}

	if err := s.persist(ctx, row); err != nil {
		return nil, s.fail(ctx, StepPersistEvent, err)
	}

	resp := buildResponse(emp, row)

	owner := evidence.Owner{
		CompanyID:  row.CompanyID,
		EmployeeID: row.EmployeeID,
		CheckinID:  row.ID,
		At:         s.now().UTC(),
	}
	var photos Photos
	if f, warning := s.attach(ctx, StepAttachLocationEvidence, row, location, owner); f != nil {
		photos.LocationID, photos.LocationURL = &f.ID, &f.FileURL
		resp.LocationPhotoID, resp.LocationPhotoURL = uuidString(&f.ID), &f.FileURL
	} else if warning != "" {
		resp.Warnings = append(resp.Warnings, warning)
	}
	if f, warning := s.attach(ctx, StepAttachBiometricEvidence, row, biometric, owner); f != nil {
		photos.BiometricID, photos.BiometricURL = &f.ID, &f.FileURL
		resp.ClientBiometricPhotoID, resp.ClientBiometricPhotoURL = uuidString(&f.ID), &f.FileURL
	} else if warning != "" {
		resp.Warnings = append(resp.Warnings, warning)
	}
	s.linkPhotos(ctx, row.ID, photos)

	s.logger.Info("attendance event recorded",
		zap.String("request_id", rid),
		zap.String("checkin_id", row.ID.String()),
		zap.String("number", row.Number),
		zap.String("employee_id", emp.ID.String()),
		zap.String("log_type", string(logType)),
		zap.String("policy_source", row.PolicySource),
		zap.Int("warnings", len(resp.Warnings)),
	)
	return resp, nil
}

// fail tags err with the step it came from and logs it once.
func (s *service) fail(ctx context.Context, step string, err error) error {
	err = apperror.AtStep(step, err)

	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		return err
	}

	// the request logger already carries request and user ids
	log := contextutil.GetLogger(ctx, s.logger.With(
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("user_id", contextutil.GetUserID(ctx)),
	))
	fields := []zap.Field{
		zap.String("step", appErr.Step),
		zap.String("code", appErr.Code),
		zap.Error(err),
	}
	if appErr.HTTPStatus >= 500 {
		log.Error("record event failed", fields...)
	} else {
		log.Warn("record event rejected", fields...)
	}
	return err
}

func (s *service) resolveEmployee(ctx context.Context, ref employee.Ref) (*employee.Employee, error) {
	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.employees.Resolve(callCtx, ref)
}

func (s *service) prepareEvidence(ctx context.Context, employeeID uuid.UUID, req evidence.Requirement, in evidence.Input) (*evidence.Prepared, error) {
	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.evidence.Prepare(callCtx, employeeID, req, in)
}

func (s *service) resolveShift(ctx context.Context, employeeID uuid.UUID, at time.Time) (*shift.Info, error) {
	if s.shifts == nil {
		return nil, nil
	}
	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.shifts.Resolve(callCtx, employeeID, at)
}

// persist numbers the event and writes it together with its outbox row.
func (s *service) persist(ctx context.Context, row *Checkin) error {
	rid := contextutil.GetRequestID(ctx)
	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	seq, err := s.counter.GetNextValue(callCtx, row.CompanyID.String(), checkinCounter)
	if err != nil {
		return err
	}
	row.Number = fmt.Sprintf("CKIN-%06d", seq)

	tx, err := s.db.BeginTx(callCtx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Create(callCtx, row); err != nil {
		return mapPersistError(err, row.LogType, row.Time)
	}

	if s.outbox != nil {
		event := events.CheckinRecordedEvent{
			EventType:      events.CheckinRecordedEventType,
			RequestID:      rid,
			CheckinID:      row.ID.String(),
			Number:         row.Number,
			CompanyID:      row.CompanyID.String(),
			EmployeeID:     row.EmployeeID.String(),
			LogType:        string(row.LogType),
			Time:           row.Time.Format(TimeLayout),
			DistanceMeters: row.DistanceMeters,
			PolicySource:   row.PolicySource,
			PolicySourceID: row.PolicySourceID.String(),
			OccurredAt:     s.now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return err
		}

		if err := s.outbox.WithTx(tx).Create(callCtx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: aggregateCheckin,
			AggregateID:   row.ID.String(),
			EventType:     event.EventType,
			Topic:         events.CheckinRecordedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// attach links one piece of evidence to a stored event. A failure leaves
// the event in place and yields a warning for the client instead.
func (s *service) attach(ctx context.Context, step string, row *Checkin, p *evidence.Prepared, owner evidence.Owner) (*evidence.File, string) {
	if p == nil {
		return nil, ""
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	f, err := s.evidence.Attach(callCtx, p, owner)
	if err != nil || f == nil {
		s.logger.Warn("evidence not attached, event kept",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.String("step", step),
			zap.String("checkin_id", row.ID.String()),
			zap.String("kind", string(p.Kind)),
			zap.Error(err),
		)
		return nil, fmt.Sprintf("%s could not be saved. The %s was recorded without it.",
			p.Kind.Label(), row.LogType.Hyphenated())
	}
	return f, ""
}

func (s *service) linkPhotos(ctx context.Context, id uuid.UUID, photos Photos) {
	if photos.Empty() {
		return
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	// the evidence rows already point at the event
	if err := s.repo.SetPhotos(callCtx, id, photos); err != nil {
		s.logger.Warn("failed to store photo links on event",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.String("checkin_id", id.String()),
			zap.Error(err),
		)
	}
}

func buildResponse(emp *employee.Employee, row *Checkin) *RecordEventResponse {
	resp := &RecordEventResponse{
		CheckinID:    row.ID.String(),
		Number:       row.Number,
		EmployeeID:   emp.Code(),
		EmployeeName: row.EmployeeName,
		LogType:      string(row.LogType),
		Time:         row.Time.Format(TimeLayout),
		Latitude:     row.Latitude,
		Longitude:    row.Longitude,
		DeviceID:     row.DeviceID,
		Shift:        row.ShiftName,
		ShiftStart:   formatTime(row.ShiftStart),
		ShiftEnd:     formatTime(row.ShiftEnd),
		Status:       statusRecorded,
		PolicySource: row.PolicySource,
	}
	if row.DistanceMeters != nil {
		d := geofence.RoundMeters(*row.DistanceMeters)
		resp.DistanceFromBranchMeters = &d
	}
	return resp
}

// ListEvents returns the employee's events, newest first.
func (s *service) ListEvents(ctx context.Context, req ListEventsRequest) (*ListEventsResponse, error) {
	emp, err := s.resolveEmployee(ctx, employee.Ref{CompanyID: req.CompanyID, EmployeeID: req.EmployeeID, UserID: req.UserID})
	if err != nil {
		return nil, apperror.AtStep(StepResolveEmployee, err)
	}

	filter, err := buildListFilter(emp.ID, req)
	if err != nil {
		return nil, err
	}

	records, total, err := s.list(ctx, filter)
	if err != nil {
		s.logger.Error("list events failed",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.String("employee_id", emp.ID.String()),
			zap.Error(err),
		)
		return nil, apperror.AtStep(StepListEvents, err)
	}

	return &ListEventsResponse{
		Records:    records,
		TotalCount: total,
		Limit:      filter.Limit,
		Offset:     filter.Offset,
		HasMore:    int64(filter.Offset+filter.Limit) < total,
	}, nil
}

func (s *service) list(ctx context.Context, filter ListFilter) ([]EventRecord, int64, error) {
	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	rows, total, err := s.repo.List(callCtx, filter)
	if err != nil {
		return nil, 0, err
	}

	records := make([]EventRecord, len(rows))
	for i, r := range rows {
		records[i] = mapToRecord(r)
	}
	return records, total, nil
}
