package evidence_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-geoattend/internal/employee"
	employeeerrors "go-geoattend/internal/employee/errors"
	"go-geoattend/internal/evidence"
	evidenceerrors "go-geoattend/internal/evidence/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	uploadFn func(ctx context.Context, companyID, employeeID uuid.UUID, kind evidence.Kind, payload string) (*evidence.File, error)
}

func (f *fakeService) Prepare(ctx context.Context, employeeID uuid.UUID, req evidence.Requirement, in evidence.Input) (*evidence.Prepared, error) {
	return nil, nil
}
func (f *fakeService) Attach(ctx context.Context, p *evidence.Prepared, owner evidence.Owner) (*evidence.File, error) {
	return nil, nil
}
func (f *fakeService) Upload(ctx context.Context, companyID, employeeID uuid.UUID, kind evidence.Kind, payload string) (*evidence.File, error) {
	return f.uploadFn(ctx, companyID, employeeID, kind, payload)
}

type fakeEmployees struct {
	emp *employee.Employee
	err error
	ref employee.Ref
}

func (f *fakeEmployees) Resolve(ctx context.Context, ref employee.Ref) (*employee.Employee, error) {
	f.ref = ref
	return f.emp, f.err
}

const uploaderCompanyID = "c0ffee00-0000-4000-8000-000000000001"

type envelope struct {
	OK    bool                  `json:"ok"`
	Data  evidence.FileResponse `json:"data"`
	Error struct {
		Code string `json:"code"`
	} `json:"error"`
}

func postUpload(h *evidence.Handler, body string) (*httptest.ResponseRecorder, envelope) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("company_id", uploaderCompanyID)
	c.Set("user_id_validated", "user-1")
	c.Request = httptest.NewRequest(http.MethodPost, "/evidence", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Upload(c)

	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func TestHandler_Upload(t *testing.T) {
	gin.SetMode(gin.TestMode)

	companyID := uuid.New()
	emp := &employee.Employee{ID: uuid.New(), CompanyID: &companyID, Status: employee.StatusActive}

	t.Run("created", func(t *testing.T) {
		svc := &fakeService{uploadFn: func(ctx context.Context, cid, eid uuid.UUID, kind evidence.Kind, payload string) (*evidence.File, error) {
			assert.Equal(t, companyID, cid)
			assert.Equal(t, emp.ID, eid)
			assert.Equal(t, evidence.KindBiometric, kind)
			return &evidence.File{ID: uuid.New(), Kind: kind, FileURL: "/files/evidence/b.png"}, nil
		}}
		employees := &fakeEmployees{emp: emp}
		h := evidence.NewHandler(svc, employees)

		w, env := postUpload(h, `{"kind":"biometric","photo":"aGVsbG8="}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, uploaderCompanyID, employees.ref.CompanyID)
		assert.True(t, env.OK)
		assert.Equal(t, "/files/evidence/b.png", env.Data.FileURL)
	})

	t.Run("unknown kind", func(t *testing.T) {
		h := evidence.NewHandler(&fakeService{}, &fakeEmployees{emp: emp})

		w, env := postUpload(h, `{"kind":"selfie","photo":"aGVsbG8="}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "INVALID_INPUT", env.Error.Code)
	})

	t.Run("inactive employee", func(t *testing.T) {
		inactive := *emp
		inactive.Status = employee.StatusInactive
		h := evidence.NewHandler(&fakeService{}, &fakeEmployees{emp: &inactive})

		w, env := postUpload(h, `{"kind":"location","photo":"aGVsbG8="}`)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, employeeerrors.ErrEmployeeInactive.Code, env.Error.Code)
	})

	t.Run("bad image", func(t *testing.T) {
		svc := &fakeService{uploadFn: func(ctx context.Context, cid, eid uuid.UUID, kind evidence.Kind, payload string) (*evidence.File, error) {
			return nil, evidenceerrors.ErrUnsupportedImage
		}}
		h := evidence.NewHandler(svc, &fakeEmployees{emp: emp})

		w, env := postUpload(h, `{"kind":"location","photo":"aGVsbG8="}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "INVALID_EVIDENCE", env.Error.Code)
	})
}
