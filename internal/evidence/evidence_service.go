package evidence

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go-geoattend/internal/domain"
	evidenceerrors "go-geoattend/internal/evidence/errors"
	"go-geoattend/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Config struct {
	MaxBytes int64
	// LinkOptional links supplied evidence even when the policy does not
	// require it.
	LinkOptional bool
}

type Requirement struct {
	Kind     Kind
	Required bool
	LogType  domain.LogType
}

// Input is what the client sent for one evidence kind. Payload wins when
// both are present.
type Input struct {
	Payload     string
	ReferenceID string
}

func (in Input) Empty() bool {
	return in.Payload == "" && in.ReferenceID == ""
}

// Prepared is validated evidence waiting for an event id.
type Prepared struct {
	Kind      Kind
	payload   *decoded
	reference *File
}

// IsReference reports whether the evidence was uploaded beforehand.
func (p *Prepared) IsReference() bool {
	return p != nil && p.reference != nil
}

// Owner identifies the event evidence is attached to.
type Owner struct {
	CompanyID  uuid.UUID
	EmployeeID uuid.UUID
	CheckinID  uuid.UUID
	At         time.Time
}

//go:generate mockgen -source=evidence_service.go -destination=mock/evidence_service_mock.go -package=mock
type Service interface {
	Prepare(ctx context.Context, employeeID uuid.UUID, req Requirement, in Input) (*Prepared, error)
	Attach(ctx context.Context, p *Prepared, owner Owner) (*File, error)
	Upload(ctx context.Context, companyID, employeeID uuid.UUID, kind Kind, payload string) (*File, error)
}

type service struct {
	repo   Repository
	blobs  Store
	cfg    Config
	now    func() time.Time
	logger *zap.Logger
}

func NewService(repo Repository, store Store, cfg Config, logger ...*zap.Logger) Service {
	l := zap.L().Named("evidence.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("evidence.service")
	}
	if cfg.MaxBytes <= 0 {
		cfg.MaxBytes = DefaultMaxBytes
	}
	return &service{
		repo:   repo,
		blobs:  store,
		cfg:    cfg,
		now:    time.Now,
		logger: l,
	}
}

// Prepare validates one evidence kind without writing anything. It returns
// nil when there is nothing to link.
func (s *service) Prepare(ctx context.Context, employeeID uuid.UUID, req Requirement, in Input) (*Prepared, error) {
	rid := contextutil.GetRequestID(ctx)

	if in.Empty() {
		if req.Required {
			s.logger.Warn("required evidence missing",
				zap.String("request_id", rid),
				zap.String("kind", string(req.Kind)),
			)
			return nil, evidenceerrors.ErrEvidenceRequired.
				WithMessage(fmt.Sprintf("%s is required. Please upload %s before %s.",
					req.Kind.Label(), strings.ToLower(req.Kind.Label()), req.LogType.Hyphenated())).
				WithDetails(map[string]string{"kind": string(req.Kind), "action": req.LogType.Action()})
		}
		return nil, nil
	}

	if !req.Required && !s.cfg.LinkOptional {
		s.logger.Debug("optional evidence ignored",
			zap.String("request_id", rid),
			zap.String("kind", string(req.Kind)),
		)
		return nil, nil
	}

	if in.Payload != "" {
		d, err := decodePayload(in.Payload, s.cfg.MaxBytes)
		if err != nil {
			s.logger.Warn("evidence payload rejected",
				zap.String("request_id", rid),
				zap.String("kind", string(req.Kind)),
				zap.Error(err),
			)
			return nil, err
		}
		return &Prepared{Kind: req.Kind, payload: d}, nil
	}

	ref, err := s.lookupReference(ctx, employeeID, req.Kind, in.ReferenceID)
	if err != nil {
		s.logger.Warn("evidence reference rejected",
			zap.String("request_id", rid),
			zap.String("kind", string(req.Kind)),
			zap.String("reference_id", in.ReferenceID),
			zap.Error(err),
		)
		return nil, err
	}
	return &Prepared{Kind: req.Kind, reference: ref}, nil
}

func (s *service) lookupReference(ctx context.Context, employeeID uuid.UUID, kind Kind, id string) (*File, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, evidenceerrors.ErrEvidenceNotFound
	}

	f, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	// another employee's upload is indistinguishable from a missing one
	if f.EmployeeID != employeeID {
		return nil, evidenceerrors.ErrEvidenceNotFound
	}
	if f.Kind != kind {
		return nil, evidenceerrors.ErrWrongKind
	}
	if f.CheckinID != nil {
		return nil, evidenceerrors.ErrAlreadyAttached
	}
	return f, nil
}

// Attach stores a prepared payload, or re-links a referenced upload, to
// the event.
func (s *service) Attach(ctx context.Context, p *Prepared, owner Owner) (*File, error) {
	if p == nil {
		return nil, nil
	}

	if p.reference != nil {
		if err := s.repo.AttachToCheckin(ctx, p.reference.ID, owner.CheckinID, owner.At); err != nil {
			return nil, err
		}
		f := *p.reference
		f.CheckinID = &owner.CheckinID
		f.AttachedAt = &owner.At
		return &f, nil
	}

	return s.persist(ctx, owner.CompanyID, owner.EmployeeID, p.Kind, p.payload, &owner)
}

// Upload stores a photo ahead of the check-in and returns its reference.
func (s *service) Upload(ctx context.Context, companyID, employeeID uuid.UUID, kind Kind, payload string) (*File, error) {
	if !kind.Valid() {
		return nil, evidenceerrors.ErrInvalidKind
	}

	d, err := decodePayload(payload, s.cfg.MaxBytes)
	if err != nil {
		return nil, err
	}

	f, err := s.persist(ctx, companyID, employeeID, kind, d, nil)
	if err != nil {
		s.logger.Error("failed to store evidence",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Info("evidence uploaded",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("evidence_id", f.ID.String()),
		zap.String("kind", string(kind)),
		zap.Int64("size_bytes", f.SizeBytes),
	)
	return f, nil
}

func (s *service) persist(ctx context.Context, companyID, employeeID uuid.UUID, kind Kind, d *decoded, owner *Owner) (*File, error) {
	id := uuid.New()
	now := s.now().UTC()
	name := fmt.Sprintf("%s_photo_%s_%s_%s.%s", kind, employeeID, now.Format("20060102_150405"), id.String()[:8], d.ext)
	folder := now.Format("2006/01")

	storagePath, url, err := s.blobs.Put(ctx, folder, name, d.data)
	if err != nil {
		return nil, err
	}

	f := &File{
		ID:          id,
		CompanyID:   companyID,
		EmployeeID:  employeeID,
		Kind:        kind,
		FileName:    name,
		FileURL:     url,
		ContentType: d.contentType,
		SizeBytes:   int64(len(d.data)),
		StoragePath: storagePath,
	}
	if owner != nil {
		f.CheckinID = &owner.CheckinID
		f.AttachedAt = &owner.At
	}
	if err := s.repo.Create(ctx, f); err != nil {
		// orphaned blob; the row is the source of truth
		if delErr := s.blobs.Delete(ctx, storagePath); delErr != nil {
			s.logger.Warn("failed to remove orphaned evidence file",
				zap.String("path", storagePath),
				zap.Error(delErr),
			)
		}
		return nil, err
	}
	return f, nil
}
