package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-geoattend/internal/domain"
	"go-geoattend/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

const testSecret = "test-secret"

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := token.SignedString([]byte(testSecret))
	assert.NoError(t, err)
	return s
}

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func() *gin.Engine {
		r := gin.New()
		r.GET("/me", middleware.AuthMiddleware(testSecret), func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"user_id":     c.GetString("user_id"),
				"employee_id": c.GetString("employee_id"),
				"role":        c.GetString("role"),
			})
		})
		return r
	}

	t.Run("valid token", func(t *testing.T) {
		token := signToken(t, jwt.MapClaims{
			"user_id":     "user-1",
			"employee_id": "emp-1",
			"company_id":  "company-1",
			"role":        "hr",
			"exp":         time.Now().Add(time.Hour).Unix(),
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		newRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"user_id":"user-1","employee_id":"emp-1","role":"HR"}`, w.Body.String())
	})

	t.Run("missing token", func(t *testing.T) {
		w := httptest.NewRecorder()
		newRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		token := signToken(t, jwt.MapClaims{
			"user_id":    "user-1",
			"company_id": "company-1",
			"exp":        time.Now().Add(-time.Hour).Unix(),
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		newRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "TOKEN_EXPIRED")
	})

	t.Run("missing company claim", func(t *testing.T) {
		token := signToken(t, jwt.MapClaims{"user_id": "user-1"})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		newRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Company ID not found in token")
	})
}

func TestIdempotency(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(handler gin.HandlerFunc, mw gin.HandlerFunc) *gin.Engine {
		r := gin.New()
		r.POST("/checkins", func(c *gin.Context) {
			c.Set("user_id_validated", "user-1")
			c.Next()
		}, mw, handler)
		return r
	}

	cacheKey := "idemp:/checkins:user-1:key-1"

	t.Run("replays cached response", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectGet(cacheKey).SetVal(`{"checkin_id":"CKIN-000001"}`)

		called := false
		r := newRouter(func(c *gin.Context) { called = true }, middleware.Idempotency(rdb))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/checkins", nil)
		req.Header.Set("Idempotency-Key", "key-1")
		r.ServeHTTP(w, req)

		assert.False(t, called)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "true", w.Header().Get("Idempotent-Replay"))
		assert.Contains(t, w.Body.String(), "CKIN-000001")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("concurrent duplicate is rejected", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(cacheKey+":lock", "locked", 30*time.Second).SetVal(false)

		r := newRouter(func(c *gin.Context) {}, middleware.Idempotency(rdb))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/checkins", nil)
		req.Header.Set("Idempotency-Key", "key-1")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("first request passes keys to handler", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(cacheKey+":lock", "locked", 30*time.Second).SetVal(true)

		var gotCache, gotLock string
		r := newRouter(func(c *gin.Context) {
			gotCache = c.GetString(middleware.IdempotencyCacheKey)
			gotLock = c.GetString(middleware.IdempotencyLockKey)
			c.Status(http.StatusCreated)
		}, middleware.Idempotency(rdb))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/checkins", nil)
		req.Header.Set("Idempotency-Key", "key-1")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, cacheKey, gotCache)
		assert.Equal(t, cacheKey+":lock", gotLock)
	})

	t.Run("no key skips redis", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()

		r := newRouter(func(c *gin.Context) { c.Status(http.StatusCreated) }, middleware.Idempotency(rdb))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/checkins", nil))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRequestTimeout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/slow", middleware.RequestTimeout(50*time.Millisecond), func(c *gin.Context) {
		deadline, ok := c.Request.Context().Deadline()
		assert.True(t, ok)
		assert.WithinDuration(t, time.Now().Add(50*time.Millisecond), deadline, 50*time.Millisecond)
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/slow", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestRateLimitByUser(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.POST("/checkins", func(c *gin.Context) {
		c.Set("user_id", "user-1")
		c.Next()
	}, middleware.RateLimitByUser(rate.Limit(1), 1), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})

	w1 := httptest.NewRecorder()
	r.ServeHTTP(w1, httptest.NewRequest(http.MethodPost, "/checkins", nil))
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, httptest.NewRequest(http.MethodPost, "/checkins", nil))

	assert.Equal(t, http.StatusCreated, w1.Code)
	assert.Equal(t, http.StatusTooManyRequests, w2.Code)
}

type fakeRBAC struct {
	enforceFn func(req domain.EnforceRequest) (bool, error)
}

func (f *fakeRBAC) Enforce(req domain.EnforceRequest) (bool, error) {
	return f.enforceFn(req)
}

func TestAuthorizeOnBehalf(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newCtx := func() *gin.Context {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil).WithContext(context.Background())
		c.Set("employee_id", "emp-1")
		c.Set("company_id", "company-1")
		c.Set("role", "EMPLOYEE")
		return c
	}

	t.Run("self needs no check", func(t *testing.T) {
		svc := &fakeRBAC{enforceFn: func(domain.EnforceRequest) (bool, error) {
			t.Fatal("enforce must not be called")
			return false, nil
		}}

		assert.NoError(t, middleware.AuthorizeOnBehalf(newCtx(), svc, "emp-1", "checkin", "record_any"))
		assert.NoError(t, middleware.AuthorizeOnBehalf(newCtx(), svc, "", "checkin", "record_any"))
	})

	t.Run("other employee denied", func(t *testing.T) {
		svc := &fakeRBAC{enforceFn: func(req domain.EnforceRequest) (bool, error) {
			assert.Equal(t, "EMPLOYEE", req.Role)
			assert.Equal(t, "record_any", req.Action)
			return false, nil
		}}

		err := middleware.AuthorizeOnBehalf(newCtx(), svc, "emp-2", "checkin", "record_any")
		assert.Error(t, err)
	})

	t.Run("enforcer failure", func(t *testing.T) {
		svc := &fakeRBAC{enforceFn: func(domain.EnforceRequest) (bool, error) {
			return false, errors.New("policy not loaded")
		}}

		err := middleware.AuthorizeOnBehalf(newCtx(), svc, "emp-2", "checkin", "read_any")
		assert.Error(t, err)
	})
}
