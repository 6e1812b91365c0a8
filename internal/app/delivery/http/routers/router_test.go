package routers

import (
	"bytes"
	"context"
	"medcalc-service/internal/app/config"
	"medcalc-service/internal/app/delivery/http/controllers"
	"medcalc-service/internal/app/delivery/http/middlewares"
	"medcalc-service/internal/app/models"
	"medcalc-service/internal/app/services/core/admin"
	"medcalc-service/internal/app/services/core/questionnaires"
	"medcalc-service/internal/pkg/dto/requests"
	"medcalc-service/internal/pkg/dto/responses"
	"medcalc-service/internal/pkg/exceptions"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockAuthUsecase struct {
	mock.Mock
}

func (m *MockAuthUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	args := m.Called(ctx, request)
	response, _ := args.Get(0).(*responses.Login)
	return response, args.Error(1)
}

func (m *MockAuthUsecase) Register(ctx context.Context, request *requests.Register) error {
	return m.Called(ctx, request).Error(0)
}

func (m *MockAuthUsecase) ResolveSession(ctx context.Context, token string) (*models.Session, error) {
	args := m.Called(ctx, token)
	session, _ := args.Get(0).(*models.Session)
	return session, args.Error(1)
}

func (m *MockAuthUsecase) CheckAuthState(ctx context.Context, sessionID string) (*responses.AuthState, error) {
	args := m.Called(ctx, sessionID)
	state, _ := args.Get(0).(*responses.AuthState)
	return state, args.Error(1)
}

func (m *MockAuthUsecase) GetProfile(ctx context.Context, sessionID string) (*models.User, error) {
	args := m.Called(ctx, sessionID)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *MockAuthUsecase) UpdateProfile(ctx context.Context, sessionID string, request *requests.UpdateProfile) (*models.User, error) {
	args := m.Called(ctx, sessionID, request)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *MockAuthUsecase) ChangePassword(ctx context.Context, request *requests.ChangePassword) error {
	return m.Called(ctx, request).Error(0)
}

func (m *MockAuthUsecase) LinkTelegram(ctx context.Context, sessionID string, request *requests.LinkTelegram) (*models.User, error) {
	args := m.Called(ctx, sessionID, request)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *MockAuthUsecase) Logout(ctx context.Context, sessionID string) error {
	return m.Called(ctx, sessionID).Error(0)
}

type stubQuestionnaireUsecase struct {
	questionnaires.QuestionnaireUsecase
}

func (s *stubQuestionnaireUsecase) GetCurrentSession(ctx context.Context, sessionID string) *models.SessionSnapshot {
	return &models.SessionSnapshot{State: models.SessionStateEmpty, Answers: models.AnswerMap{}}
}

func (s *stubQuestionnaireUsecase) SubmitQuestionnaire(ctx context.Context, sessionID string, request *requests.SubmitQuestionnaire) (*responses.SubmitResult, error) {
	return nil, &exceptions.IncompleteAnswersError{QuestionnaireCode: "phq9", Missing: []string{"1", "9"}}
}

type stubAdminUsecase struct {
	admin.AdminUsecase
}

func (s *stubAdminUsecase) FetchStatistics(ctx context.Context) (*models.Statistics, error) {
	return &models.Statistics{TotalUsers: 3}, nil
}

func newTestRouter(authUsecase *MockAuthUsecase) *chi.Mux {
	logger := zap.NewNop()
	internalConfig := &config.InternalConfig{
		App: config.App{
			EndpointPrefix:     "api",
			Version:            "v1",
			CorsAllowedOrigins: []string{"*"},
			MaxRequests:        1000,
		},
	}

	router := chi.NewRouter()
	SetupRoutes(
		router,
		logger,
		internalConfig,
		middlewares.NewMiddlewares(logger, authUsecase, internalConfig),
		middlewares.NewRateLimiter(5, time.Minute, time.Minute, logger),
		controllers.NewAuthController(logger, authUsecase),
		controllers.NewQuestionnaireController(logger, &stubQuestionnaireUsecase{}),
		controllers.NewResultController(logger, nil),
		controllers.NewAdminController(logger, &stubAdminUsecase{}),
		controllers.NewNotificationController(logger, nil),
		controllers.NewPreferencesController(logger, nil),
		controllers.NewFormController(logger),
	)
	return router
}

func withSessions(authUsecase *MockAuthUsecase) {
	authUsecase.On("ResolveSession", mock.Anything, "user-token").Return(&models.Session{SessionID: "s1", UserID: "1"}, nil)
	authUsecase.On("ResolveSession", mock.Anything, "admin-token").Return(&models.Session{SessionID: "s2", UserID: "2", IsAdmin: true}, nil)
	authUsecase.On("ResolveSession", mock.Anything, mock.Anything).Return(nil, exceptions.ErrSessionNotFound("x"))
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRouter_Login(t *testing.T) {
	authUsecase := new(MockAuthUsecase)
	authUsecase.On("Login", mock.Anything, mock.MatchedBy(func(request *requests.Login) bool {
		return request.Email == "user@example.com"
	})).Return(&responses.Login{Token: "jwt"}, nil)
	router := newTestRouter(authUsecase)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewBufferString(`{"email":" User@Example.com ","password":"secret1"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeResponse(t, rec)
	assert.Equal(t, true, body["success"])
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestRouter_LoginValidation(t *testing.T) {
	router := newTestRouter(new(MockAuthUsecase))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewBufferString(`{"email":"not-an-email"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_ProtectedRoutesNeedToken(t *testing.T) {
	authUsecase := new(MockAuthUsecase)
	withSessions(authUsecase)
	router := newTestRouter(authUsecase)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/questionnaires/session", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/questionnaires/session", nil)
	req.Header.Set("Authorization", "Bearer user-token")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_SubmitIncompleteListsMissing(t *testing.T) {
	authUsecase := new(MockAuthUsecase)
	withSessions(authUsecase)
	router := newTestRouter(authUsecase)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/questionnaires/session/submit", nil)
	req.Header.Set("Authorization", "Bearer user-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := decodeResponse(t, rec)
	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, []interface{}{"1", "9"}, data["missing"])
}

func TestRouter_AdminRoutesNeedAdmin(t *testing.T) {
	authUsecase := new(MockAuthUsecase)
	withSessions(authUsecase)
	router := newTestRouter(authUsecase)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/statistics", nil)
	req.Header.Set("Authorization", "Bearer user-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/admin/statistics", nil)
	req.Header.Set("Authorization", "Bearer admin-token")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_ValidateForm(t *testing.T) {
	router := newTestRouter(new(MockAuthUsecase))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/forms/validate", bytes.NewBufferString(`{
		"fields": [{"name": "email", "label": "Email", "rules": ["required", "email"]}],
		"values": {"email": ""}
	}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	data := decodeResponse(t, rec)["data"].(map[string]interface{})
	assert.Equal(t, false, data["valid"])
	assert.Equal(t, "Email обязательно", data["errors"].(map[string]interface{})["email"])
}
