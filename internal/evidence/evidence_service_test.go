package evidence_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"image"
	"image/png"
	"strings"
	"testing"
	"time"

	"go-geoattend/internal/domain"
	"go-geoattend/internal/evidence"
	evidenceerrors "go-geoattend/internal/evidence/errors"
	evidenceMock "go-geoattend/internal/evidence/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	service evidence.Service
	repo    *evidenceMock.MockRepository
	store   *evidenceMock.MockStore
}

func setupServiceTest(t *testing.T, cfg evidence.Config) *serviceDeps {
	ctrl := gomock.NewController(t)

	repo := evidenceMock.NewMockRepository(ctrl)
	store := evidenceMock.NewMockStore(ctrl)

	return &serviceDeps{
		service: evidence.NewService(repo, store, cfg),
		repo:    repo,
		store:   store,
	}
}

func samplePNG(t *testing.T) string {
	t.Helper()
	var buf bytes.Buffer
	assert.NoError(t, png.Encode(&buf, image.NewGray(image.Rect(0, 0, 1, 1))))
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestEvidenceService_Prepare(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()
	required := evidence.Requirement{Kind: evidence.KindLocation, Required: true, LogType: domain.LogTypeIn}
	optional := evidence.Requirement{Kind: evidence.KindBiometric, LogType: domain.LogTypeOut}

	t.Run("required and missing", func(t *testing.T) {
		deps := setupServiceTest(t, evidence.Config{LinkOptional: true})

		p, err := deps.service.Prepare(ctx, employeeID, required, evidence.Input{})

		assert.Nil(t, p)
		assert.ErrorIs(t, err, evidenceerrors.ErrEvidenceRequired)
		assert.EqualError(t, err, "Location photo is required. Please upload location photo before check-in.")
	})

	t.Run("biometric required on check-out", func(t *testing.T) {
		deps := setupServiceTest(t, evidence.Config{})
		req := evidence.Requirement{Kind: evidence.KindBiometric, Required: true, LogType: domain.LogTypeOut}

		_, err := deps.service.Prepare(ctx, employeeID, req, evidence.Input{})

		assert.ErrorIs(t, err, evidenceerrors.ErrEvidenceRequired)
		assert.Contains(t, err.Error(), "before check-out")
	})

	t.Run("not required and missing", func(t *testing.T) {
		deps := setupServiceTest(t, evidence.Config{LinkOptional: true})

		p, err := deps.service.Prepare(ctx, employeeID, optional, evidence.Input{})

		assert.NoError(t, err)
		assert.Nil(t, p)
	})

	t.Run("optional payload is linked", func(t *testing.T) {
		deps := setupServiceTest(t, evidence.Config{LinkOptional: true})

		p, err := deps.service.Prepare(ctx, employeeID, optional, evidence.Input{Payload: samplePNG(t)})

		assert.NoError(t, err)
		assert.NotNil(t, p)
		assert.Equal(t, evidence.KindBiometric, p.Kind)
		assert.False(t, p.IsReference())
	})

	t.Run("optional payload ignored when linking is off", func(t *testing.T) {
		deps := setupServiceTest(t, evidence.Config{LinkOptional: false})

		p, err := deps.service.Prepare(ctx, employeeID, optional, evidence.Input{Payload: "garbage"})

		assert.NoError(t, err)
		assert.Nil(t, p)
	})

	t.Run("invalid payload", func(t *testing.T) {
		deps := setupServiceTest(t, evidence.Config{})

		_, err := deps.service.Prepare(ctx, employeeID, required, evidence.Input{Payload: "%%%"})

		assert.ErrorIs(t, err, evidenceerrors.ErrInvalidBase64)
	})

	t.Run("payload wins over reference", func(t *testing.T) {
		deps := setupServiceTest(t, evidence.Config{})

		p, err := deps.service.Prepare(ctx, employeeID, required, evidence.Input{
			Payload:     samplePNG(t),
			ReferenceID: uuid.NewString(),
		})

		assert.NoError(t, err)
		assert.False(t, p.IsReference())
	})

	t.Run("reference resolves", func(t *testing.T) {
		deps := setupServiceTest(t, evidence.Config{})
		f := &evidence.File{ID: uuid.New(), EmployeeID: employeeID, Kind: evidence.KindLocation}
		deps.repo.EXPECT().FindByID(gomock.Any(), f.ID.String()).Return(f, nil)

		p, err := deps.service.Prepare(ctx, employeeID, required, evidence.Input{ReferenceID: f.ID.String()})

		assert.NoError(t, err)
		assert.True(t, p.IsReference())
	})

	t.Run("reference malformed", func(t *testing.T) {
		deps := setupServiceTest(t, evidence.Config{})

		_, err := deps.service.Prepare(ctx, employeeID, required, evidence.Input{ReferenceID: "abc"})

		assert.ErrorIs(t, err, evidenceerrors.ErrEvidenceNotFound)
	})

	t.Run("reference missing", func(t *testing.T) {
		deps := setupServiceTest(t, evidence.Config{})
		id := uuid.NewString()
		deps.repo.EXPECT().FindByID(gomock.Any(), id).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Prepare(ctx, employeeID, required, evidence.Input{ReferenceID: id})

		assert.ErrorIs(t, err, evidenceerrors.ErrEvidenceNotFound)
	})

	t.Run("reference owned by someone else", func(t *testing.T) {
		deps := setupServiceTest(t, evidence.Config{})
		f := &evidence.File{ID: uuid.New(), EmployeeID: uuid.New(), Kind: evidence.KindLocation}
		deps.repo.EXPECT().FindByID(gomock.Any(), f.ID.String()).Return(f, nil)

		_, err := deps.service.Prepare(ctx, employeeID, required, evidence.Input{ReferenceID: f.ID.String()})

		assert.ErrorIs(t, err, evidenceerrors.ErrEvidenceNotFound)
	})

	t.Run("reference of the other kind", func(t *testing.T) {
		deps := setupServiceTest(t, evidence.Config{})
		f := &evidence.File{ID: uuid.New(), EmployeeID: employeeID, Kind: evidence.KindBiometric}
		deps.repo.EXPECT().FindByID(gomock.Any(), f.ID.String()).Return(f, nil)

		_, err := deps.service.Prepare(ctx, employeeID, required, evidence.Input{ReferenceID: f.ID.String()})

		assert.ErrorIs(t, err, evidenceerrors.ErrWrongKind)
	})

	t.Run("reference already attached", func(t *testing.T) {
		deps := setupServiceTest(t, evidence.Config{})
		checkinID := uuid.New()
		f := &evidence.File{ID: uuid.New(), EmployeeID: employeeID, Kind: evidence.KindLocation, CheckinID: &checkinID}
		deps.repo.EXPECT().FindByID(gomock.Any(), f.ID.String()).Return(f, nil)

		_, err := deps.service.Prepare(ctx, employeeID, required, evidence.Input{ReferenceID: f.ID.String()})

		assert.ErrorIs(t, err, evidenceerrors.ErrAlreadyAttached)
	})

	t.Run("reference lookup fails", func(t *testing.T) {
		deps := setupServiceTest(t, evidence.Config{})
		id := uuid.NewString()
		deps.repo.EXPECT().FindByID(gomock.Any(), id).Return(nil, context.DeadlineExceeded)

		_, err := deps.service.Prepare(ctx, employeeID, required, evidence.Input{ReferenceID: id})

		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestEvidenceService_Attach(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()
	owner := evidence.Owner{
		CompanyID:  uuid.New(),
		EmployeeID: employeeID,
		CheckinID:  uuid.New(),
		At:         time.Date(2026, 10, 16, 8, 0, 0, 0, time.UTC),
	}
	req := evidence.Requirement{Kind: evidence.KindLocation, Required: true, LogType: domain.LogTypeIn}

	t.Run("nil prepared is a no-op", func(t *testing.T) {
		deps := setupServiceTest(t, evidence.Config{})

		f, err := deps.service.Attach(ctx, nil, owner)

		assert.NoError(t, err)
		assert.Nil(t, f)
	})

	t.Run("payload is stored and linked", func(t *testing.T) {
		deps := setupServiceTest(t, evidence.Config{})
		p, err := deps.service.Prepare(ctx, employeeID, req, evidence.Input{Payload: samplePNG(t)})
		assert.NoError(t, err)

		deps.store.EXPECT().
			Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, folder, name string, data []byte) (string, string, error) {
				assert.True(t, strings.HasPrefix(name, "location_photo_"+employeeID.String()))
				assert.True(t, strings.HasSuffix(name, ".png"))
				return "/data/" + folder + "/" + name, "/files/evidence/" + folder + "/" + name, nil
			})
		deps.repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, f *evidence.File) error {
				assert.Equal(t, owner.CheckinID, *f.CheckinID)
				assert.Equal(t, "image/png", f.ContentType)
				return nil
			})

		f, err := deps.service.Attach(ctx, p, owner)

		assert.NoError(t, err)
		assert.Equal(t, evidence.KindLocation, f.Kind)
		assert.Contains(t, f.FileURL, "/files/evidence/")
	})

	t.Run("row failure removes the blob", func(t *testing.T) {
		deps := setupServiceTest(t, evidence.Config{})
		p, _ := deps.service.Prepare(ctx, employeeID, req, evidence.Input{Payload: samplePNG(t)})

		deps.store.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("/data/x.png", "/files/x.png", nil)
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
		deps.store.EXPECT().Delete(gomock.Any(), "/data/x.png").Return(nil)

		f, err := deps.service.Attach(ctx, p, owner)

		assert.Error(t, err)
		assert.Nil(t, f)
	})

	t.Run("reference is re-linked", func(t *testing.T) {
		deps := setupServiceTest(t, evidence.Config{})
		ref := &evidence.File{ID: uuid.New(), EmployeeID: employeeID, Kind: evidence.KindLocation, FileURL: "/files/a.png"}
		deps.repo.EXPECT().FindByID(gomock.Any(), ref.ID.String()).Return(ref, nil)
		p, _ := deps.service.Prepare(ctx, employeeID, req, evidence.Input{ReferenceID: ref.ID.String()})

		deps.repo.EXPECT().AttachToCheckin(gomock.Any(), ref.ID, owner.CheckinID, owner.At).Return(nil)

		f, err := deps.service.Attach(ctx, p, owner)

		assert.NoError(t, err)
		assert.Equal(t, ref.ID, f.ID)
		assert.Equal(t, owner.CheckinID, *f.CheckinID)
		assert.Nil(t, ref.CheckinID)
	})

	t.Run("reference raced by another event", func(t *testing.T) {
		deps := setupServiceTest(t, evidence.Config{})
		ref := &evidence.File{ID: uuid.New(), EmployeeID: employeeID, Kind: evidence.KindLocation}
		deps.repo.EXPECT().FindByID(gomock.Any(), ref.ID.String()).Return(ref, nil)
		p, _ := deps.service.Prepare(ctx, employeeID, req, evidence.Input{ReferenceID: ref.ID.String()})

		deps.repo.EXPECT().AttachToCheckin(gomock.Any(), ref.ID, owner.CheckinID, owner.At).Return(evidenceerrors.ErrAlreadyAttached)

		_, err := deps.service.Attach(ctx, p, owner)

		assert.ErrorIs(t, err, evidenceerrors.ErrAlreadyAttached)
	})
}

func TestEvidenceService_Upload(t *testing.T) {
	ctx := context.Background()
	companyID, employeeID := uuid.New(), uuid.New()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t, evidence.Config{})
		deps.store.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("/data/b.png", "/files/b.png", nil)
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		f, err := deps.service.Upload(ctx, companyID, employeeID, evidence.KindBiometric, samplePNG(t))

		assert.NoError(t, err)
		assert.Equal(t, companyID, f.CompanyID)
		assert.Nil(t, f.CheckinID)
		assert.Equal(t, "/files/b.png", f.FileURL)
	})

	t.Run("invalid kind", func(t *testing.T) {
		deps := setupServiceTest(t, evidence.Config{})

		_, err := deps.service.Upload(ctx, companyID, employeeID, evidence.Kind("selfie"), samplePNG(t))

		assert.ErrorIs(t, err, evidenceerrors.ErrInvalidKind)
	})

	t.Run("store failure", func(t *testing.T) {
		deps := setupServiceTest(t, evidence.Config{})
		deps.store.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("", "", errors.New("disk full"))

		_, err := deps.service.Upload(ctx, companyID, employeeID, evidence.KindLocation, samplePNG(t))

		assert.EqualError(t, err, "disk full")
	})
}
