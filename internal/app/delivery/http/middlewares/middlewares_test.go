package middlewares

import (
	"context"
	"medcalc-service/internal/app/config"
	"medcalc-service/internal/app/models"
	"medcalc-service/internal/app/services/core/auth"
	"medcalc-service/internal/pkg/constvars"
	"medcalc-service/internal/pkg/exceptions"
	"medcalc-service/internal/pkg/utils"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubAuthUsecase struct {
	auth.AuthUsecase
	sessions map[string]*models.Session
}

func (s *stubAuthUsecase) ResolveSession(ctx context.Context, token string) (*models.Session, error) {
	session, ok := s.sessions[token]
	if !ok {
		return nil, exceptions.ErrTokenInvalid(nil)
	}
	return session, nil
}

func newTestMiddlewares() *Middlewares {
	authUsecase := &stubAuthUsecase{sessions: map[string]*models.Session{
		"user-token":  {SessionID: "s-user", UserID: "1"},
		"admin-token": {SessionID: "s-admin", UserID: "2", IsAdmin: true},
	}}
	return NewMiddlewares(zap.NewNop(), authUsecase, &config.InternalConfig{})
}

func sessionEcho() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(utils.GetSessionID(r.Context())))
	})
}

func TestAuthenticate(t *testing.T) {
	m := newTestMiddlewares()
	handler := m.Authenticate(sessionEcho())

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{name: "valid token", header: "Bearer user-token", wantStatus: http.StatusOK, wantBody: "s-user"},
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "not bearer", header: "Basic abc", wantStatus: http.StatusUnauthorized},
		{name: "unknown token", header: "Bearer nope", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/results/history", nil)
			if tt.header != "" {
				req.Header.Set(constvars.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	m := newTestMiddlewares()
	handler := m.Authenticate(m.RequireAdmin(sessionEcho()))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/statistics", nil)
	req.Header.Set(constvars.HeaderAuthorization, "Bearer user-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/admin/statistics", nil)
	req.Header.Set(constvars.HeaderAuthorization, "Bearer admin-token")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "s-admin", rec.Body.String())
}

func TestRequestIDMiddleware(t *testing.T) {
	m := newTestMiddlewares()
	handler := m.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(utils.GetRequestID(r.Context())))
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(constvars.HeaderXRequestID, "client-id")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, "client-id", rec.Body.String())
	assert.Equal(t, "client-id", rec.Header().Get(constvars.HeaderXRequestID))

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, rec.Body.String())
	assert.Equal(t, rec.Body.String(), rec.Header().Get(constvars.HeaderXRequestID))
}

func TestErrorHandler_RecoversPanic(t *testing.T) {
	m := newTestMiddlewares()
	handler := m.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRateLimiter_BlocksAfterBurst(t *testing.T) {
	current := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(2, time.Minute, 5*time.Minute, zap.NewNop())
	limiter.now = func() time.Time { return current }
	handler := limiter.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	send := func(remoteAddr string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
		req.RemoteAddr = remoteAddr
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusNoContent, send("10.0.0.1:5000").Code)
	assert.Equal(t, http.StatusNoContent, send("10.0.0.1:5001").Code)
	blocked := send("10.0.0.1:5002")
	assert.Equal(t, http.StatusTooManyRequests, blocked.Code)
	assert.NotEmpty(t, blocked.Header().Get(constvars.HeaderRetryAfter))
	assert.Equal(t, http.StatusNoContent, send("10.0.0.2:5000").Code)

	current = current.Add(2 * time.Minute)
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1:5003").Code)

	current = current.Add(4 * time.Minute)
	assert.Equal(t, http.StatusNoContent, send("10.0.0.1:5004").Code)
}
