package auth

import (
	"context"
	"errors"
	"medcalc-service/internal/app/config"
	"medcalc-service/internal/app/models"
	"medcalc-service/internal/app/services/shared/tokenstore"
	"medcalc-service/internal/pkg/constvars"
	"medcalc-service/internal/pkg/dto/requests"
	"medcalc-service/internal/pkg/exceptions"
	"medcalc-service/internal/pkg/utils"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockAuthAPI struct {
	mock.Mock
}

func (m *MockAuthAPI) Login(ctx context.Context, request *requests.Login) (*models.AuthTokens, error) {
	args := m.Called(ctx, request)
	tokens, _ := args.Get(0).(*models.AuthTokens)
	return tokens, args.Error(1)
}

func (m *MockAuthAPI) Register(ctx context.Context, request *requests.Register) error {
	return m.Called(ctx, request).Error(0)
}

func (m *MockAuthAPI) GetProfile(ctx context.Context) (*models.User, error) {
	args := m.Called(ctx)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *MockAuthAPI) UpdateProfile(ctx context.Context, request *requests.UpdateProfile) error {
	return m.Called(ctx, request).Error(0)
}

func (m *MockAuthAPI) ChangePassword(ctx context.Context, request *requests.ChangePassword) error {
	return m.Called(ctx, request).Error(0)
}

func (m *MockAuthAPI) LinkTelegram(ctx context.Context, request *requests.LinkTelegram) error {
	return m.Called(ctx, request).Error(0)
}

func (m *MockAuthAPI) Logout(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// memorySessionRepository keeps sessions in a map.
type memorySessionRepository struct {
	sessions  map[string]models.Session
	deleted   []string
	saveErr   error
	deleteErr error
}

func newMemorySessionRepository() *memorySessionRepository {
	return &memorySessionRepository{sessions: map[string]models.Session{}}
}

func (r *memorySessionRepository) Create(ctx context.Context, session *models.Session, ttl time.Duration) error {
	r.sessions[session.SessionID] = *session
	return nil
}

func (r *memorySessionRepository) Find(ctx context.Context, sessionID string) (*models.Session, error) {
	session, ok := r.sessions[sessionID]
	if !ok {
		return nil, exceptions.ErrSessionNotFound(sessionID)
	}
	return &session, nil
}

func (r *memorySessionRepository) Save(ctx context.Context, session *models.Session) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	if _, ok := r.sessions[session.SessionID]; !ok {
		return exceptions.ErrSessionNotFound(session.SessionID)
	}
	r.sessions[session.SessionID] = *session
	return nil
}

func (r *memorySessionRepository) Delete(ctx context.Context, sessionID string) error {
	r.deleted = append(r.deleted, sessionID)
	if r.deleteErr != nil {
		return r.deleteErr
	}
	delete(r.sessions, sessionID)
	return nil
}

type recordingScope struct {
	removed []string
}

func (s *recordingScope) Remove(sessionID string) {
	s.removed = append(s.removed, sessionID)
}

func newUsecase(t *testing.T, api *MockAuthAPI, repository *memorySessionRepository, scopes ...SessionScoped) AuthUsecase {
	sealer, err := tokenstore.NewSecretboxSealer("0123456789abcdef0123456789abcdef")
	require.NoError(t, err)

	internalConfig := &config.InternalConfig{
		JWT: config.JWT{Secret: "test-secret", ExpTimeInHour: 1},
	}
	return NewAuthUsecase(api, repository, sealer, internalConfig, zap.NewNop(), scopes...)
}

func TestLogin_CreatesSessionAndToken(t *testing.T) {
	api := new(MockAuthAPI)
	api.On("Login", mock.Anything, mock.Anything).Return(&models.AuthTokens{
		AccessToken:  "access",
		RefreshToken: "refresh",
		User:         &models.User{ID: "7", Email: "a@b.co", IsAdmin: true},
	}, nil)
	repository := newMemorySessionRepository()
	usecase := newUsecase(t, api, repository)

	response, err := usecase.Login(context.Background(), &requests.Login{Email: "a@b.co", Password: "secret1"})
	require.NoError(t, err)
	assert.True(t, response.IsAdmin)
	assert.Equal(t, "7", response.User.ID)

	sessionID, err := utils.ParseSessionJWT(response.Token, "test-secret")
	require.NoError(t, err)

	session, err := repository.Find(context.Background(), sessionID)
	require.NoError(t, err)
	assert.Equal(t, "7", session.UserID)
	assert.True(t, session.IsAdmin)
	assert.NotContains(t, session.SealedTokens, "access")

	resolved, err := usecase.ResolveSession(context.Background(), response.Token)
	require.NoError(t, err)
	assert.Equal(t, sessionID, resolved.SessionID)
	api.AssertNotCalled(t, "GetProfile", mock.Anything)
}

func TestLogin_FetchesProfileWhenTokensCarryNoUser(t *testing.T) {
	api := new(MockAuthAPI)
	api.On("Login", mock.Anything, mock.Anything).Return(&models.AuthTokens{AccessToken: "access", RefreshToken: "refresh"}, nil)
	api.On("GetProfile", mock.Anything).Return(&models.User{ID: "8", Email: "c@d.co"}, nil)

	usecase := newUsecase(t, api, newMemorySessionRepository())

	response, err := usecase.Login(context.Background(), &requests.Login{Email: "c@d.co", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "8", response.User.ID)
	assert.False(t, response.IsAdmin)
}

func TestLogin_KeepsTokensRefreshedWhileFetchingProfile(t *testing.T) {
	api := new(MockAuthAPI)
	repository := newMemorySessionRepository()
	api.On("Login", mock.Anything, mock.Anything).Return(&models.AuthTokens{AccessToken: "access", RefreshToken: "refresh"}, nil)
	api.On("GetProfile", mock.Anything).
		Run(func(args mock.Arguments) {
			sessionID := args.Get(0).(context.Context).Value(constvars.CONTEXT_SESSION_ID_KEY).(string)
			stored := repository.sessions[sessionID]
			stored.SealedTokens = "refreshed"
			repository.sessions[sessionID] = stored
		}).
		Return(&models.User{ID: "8", Email: "c@d.co"}, nil)

	response, err := newUsecase(t, api, repository).Login(context.Background(), &requests.Login{Email: "c@d.co", Password: "secret1"})
	require.NoError(t, err)

	sessionID, err := utils.ParseSessionJWT(response.Token, "test-secret")
	require.NoError(t, err)
	session, err := repository.Find(context.Background(), sessionID)
	require.NoError(t, err)
	assert.Equal(t, "refreshed", session.SealedTokens)
	assert.Equal(t, "8", session.UserID)
	assert.Equal(t, "c@d.co", session.Email)
}

func TestLogin_SaveFailureDropsSession(t *testing.T) {
	api := new(MockAuthAPI)
	api.On("Login", mock.Anything, mock.Anything).Return(&models.AuthTokens{
		AccessToken:  "access",
		RefreshToken: "refresh",
		User:         &models.User{ID: "7", Email: "a@b.co"},
	}, nil)
	repository := newMemorySessionRepository()
	repository.saveErr = exceptions.ErrRedisSet(errors.New("connection reset"))

	_, err := newUsecase(t, api, repository).Login(context.Background(), &requests.Login{Email: "a@b.co", Password: "secret1"})

	require.Error(t, err)
	assert.Len(t, repository.deleted, 1)
	assert.Empty(t, repository.sessions)
}

func TestLogin_ProfileFailureReportsProfileErrorWhenCleanupFails(t *testing.T) {
	api := new(MockAuthAPI)
	api.On("Login", mock.Anything, mock.Anything).Return(&models.AuthTokens{AccessToken: "access", RefreshToken: "refresh"}, nil)
	api.On("GetProfile", mock.Anything).
		Return(nil, exceptions.ErrUpstreamStatus(http.StatusBadGateway, "down", http.MethodGet, "/auth/profile"))
	repository := newMemorySessionRepository()
	repository.deleteErr = errors.New("connection reset")

	_, err := newUsecase(t, api, repository).Login(context.Background(), &requests.Login{Email: "a@b.co", Password: "secret1"})

	assert.True(t, errors.Is(err, exceptions.ErrKindFetch))
	assert.Len(t, repository.deleted, 1)
}

func TestLogin_RejectedCredentialsKeepUpstreamMessage(t *testing.T) {
	api := new(MockAuthAPI)
	api.On("Login", mock.Anything, mock.Anything).
		Return(nil, exceptions.ErrUpstreamStatus(http.StatusUnauthorized, "Неверный email или пароль", http.MethodPost, "/auth/login"))
	repository := newMemorySessionRepository()

	_, err := newUsecase(t, api, repository).Login(context.Background(), &requests.Login{Email: "a@b.co", Password: "x"})

	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, http.StatusUnauthorized, customErr.StatusCode)
	assert.Equal(t, "Неверный email или пароль", customErr.ClientMessage)
	assert.Empty(t, repository.sessions)
}

func TestResolveSession_RejectsForeignTokens(t *testing.T) {
	usecase := newUsecase(t, new(MockAuthAPI), newMemorySessionRepository())

	token, _, err := utils.GenerateSessionJWT("s1", "other-secret", time.Hour)
	require.NoError(t, err)

	_, err = usecase.ResolveSession(context.Background(), token)
	assert.True(t, errors.Is(err, exceptions.ErrKindUnauthorized))
}

func TestCheckAuthState(t *testing.T) {
	repository := newMemorySessionRepository()
	repository.sessions["s1"] = models.Session{SessionID: "s1", IsAdmin: true, User: &models.User{ID: "1"}}
	usecase := newUsecase(t, new(MockAuthAPI), repository)

	state, err := usecase.CheckAuthState(context.Background(), "s1")
	require.NoError(t, err)
	assert.True(t, state.IsAuthenticated)
	assert.True(t, state.IsAdmin)

	state, err = usecase.CheckAuthState(context.Background(), "gone")
	require.NoError(t, err)
	assert.False(t, state.IsAuthenticated)
}

func TestUpdateProfile_MergesIntoStoredUser(t *testing.T) {
	api := new(MockAuthAPI)
	api.On("UpdateProfile", mock.Anything, mock.Anything).Return(nil)

	repository := newMemorySessionRepository()
	repository.sessions["s1"] = models.Session{SessionID: "s1", User: &models.User{ID: "1", Email: "a@b.co", FullName: "Old", Phone: "+79990000000"}}
	usecase := newUsecase(t, api, repository)

	name := "Иван Петров"
	user, err := usecase.UpdateProfile(context.Background(), "s1", &requests.UpdateProfile{FullName: &name})
	require.NoError(t, err)
	assert.Equal(t, "Иван Петров", user.FullName)
	assert.Equal(t, "+79990000000", user.Phone)
	assert.Equal(t, "Иван Петров", repository.sessions["s1"].User.FullName)
}

func TestUpdateProfile_FailureLeavesStoredUser(t *testing.T) {
	api := new(MockAuthAPI)
	api.On("UpdateProfile", mock.Anything, mock.Anything).
		Return(exceptions.ErrUpstreamStatus(http.StatusBadRequest, "bad phone", http.MethodPut, "/profile/update"))

	repository := newMemorySessionRepository()
	repository.sessions["s1"] = models.Session{SessionID: "s1", User: &models.User{ID: "1", Phone: "+7"}}

	phone := "x"
	_, err := newUsecase(t, api, repository).UpdateProfile(context.Background(), "s1", &requests.UpdateProfile{Phone: &phone})
	require.Error(t, err)
	assert.Equal(t, "+7", repository.sessions["s1"].User.Phone)
}

func TestLinkTelegram_StoresUsername(t *testing.T) {
	api := new(MockAuthAPI)
	api.On("LinkTelegram", mock.Anything, mock.Anything).Return(nil)

	repository := newMemorySessionRepository()
	repository.sessions["s1"] = models.Session{SessionID: "s1", User: &models.User{ID: "1"}}

	user, err := newUsecase(t, api, repository).LinkTelegram(context.Background(), "s1", &requests.LinkTelegram{TelegramUsername: "ivan", VerificationCode: "123"})
	require.NoError(t, err)
	assert.Equal(t, "ivan", user.TelegramUsername)
	assert.Equal(t, "ivan", repository.sessions["s1"].User.TelegramUsername)
}

func TestLogout_IsBestEffortUpstream(t *testing.T) {
	api := new(MockAuthAPI)
	api.On("Logout", mock.Anything).Return(exceptions.ErrSendHTTPRequest(errors.New("down")))

	repository := newMemorySessionRepository()
	repository.sessions["s1"] = models.Session{SessionID: "s1"}
	scope := &recordingScope{}

	err := newUsecase(t, api, repository, scope).Logout(context.Background(), "s1")
	require.NoError(t, err)
	assert.Empty(t, repository.sessions)
	assert.Equal(t, []string{"s1"}, scope.removed)
}
