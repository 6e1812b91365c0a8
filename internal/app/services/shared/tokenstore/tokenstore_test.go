package tokenstore

import (
	"context"
	"encoding/base64"
	"errors"
	"medcalc-service/internal/app/models"
	"medcalc-service/internal/pkg/exceptions"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testKey = "0123456789abcdef0123456789abcdef"

type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Create(ctx context.Context, session *models.Session, ttl time.Duration) error {
	args := m.Called(ctx, session, ttl)
	return args.Error(0)
}

func (m *MockSessionRepository) Find(ctx context.Context, sessionID string) (*models.Session, error) {
	args := m.Called(ctx, sessionID)
	if session, ok := args.Get(0).(*models.Session); ok {
		return session, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSessionRepository) Save(ctx context.Context, session *models.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepository) Delete(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func TestSecretboxSealer_RoundTrip(t *testing.T) {
	sealer, err := NewSecretboxSealer(testKey)
	require.NoError(t, err)

	sealed, err := sealer.Seal(&models.Tokens{AccessToken: "access", RefreshToken: "refresh"})
	require.NoError(t, err)
	assert.NotContains(t, sealed, "access")

	tokens, err := sealer.Open(sealed)
	require.NoError(t, err)
	assert.Equal(t, "access", tokens.AccessToken)
	assert.Equal(t, "refresh", tokens.RefreshToken)
}

func TestSecretboxSealer_AcceptsBase64Key(t *testing.T) {
	_, err := NewSecretboxSealer(base64.StdEncoding.EncodeToString([]byte(testKey)))
	assert.NoError(t, err)

	_, err = NewSecretboxSealer("short")
	assert.Error(t, err)
}

func TestSecretboxSealer_RejectsTamperedOrForeignBoxes(t *testing.T) {
	sealer, _ := NewSecretboxSealer(testKey)
	other, _ := NewSecretboxSealer(strings.Repeat("z", 32))

	sealed, err := sealer.Seal(&models.Tokens{AccessToken: "access"})
	require.NoError(t, err)

	_, err = other.Open(sealed)
	assert.True(t, errors.Is(err, exceptions.ErrKindUnauthorized))

	_, err = sealer.Open("not-base64!")
	assert.Error(t, err)

	_, err = sealer.Open(base64.RawURLEncoding.EncodeToString([]byte("tiny")))
	assert.Error(t, err)
}

func TestTokenStore_UpdateAccessTokenKeepsRefreshToken(t *testing.T) {
	sealer, _ := NewSecretboxSealer(testKey)
	sealed, _ := sealer.Seal(&models.Tokens{AccessToken: "old", RefreshToken: "refresh"})

	repository := new(MockSessionRepository)
	repository.On("Find", mock.Anything, "s1").Return(&models.Session{SessionID: "s1", SealedTokens: sealed}, nil)

	var saved *models.Session
	repository.On("Save", mock.Anything, mock.AnythingOfType("*models.Session")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*models.Session) }).
		Return(nil)

	store := NewTokenStore(repository, sealer, zap.NewNop())

	err := store.UpdateAccessToken(context.Background(), "s1", "new")
	require.NoError(t, err)
	require.NotNil(t, saved)

	tokens, err := sealer.Open(saved.SealedTokens)
	require.NoError(t, err)
	assert.Equal(t, "new", tokens.AccessToken)
	assert.Equal(t, "refresh", tokens.RefreshToken)
	repository.AssertExpectations(t)
}

func TestTokenStore_GetTokensUnknownSession(t *testing.T) {
	repository := new(MockSessionRepository)
	repository.On("Find", mock.Anything, "missing").Return(nil, exceptions.ErrSessionNotFound("missing"))

	sealer, _ := NewSecretboxSealer(testKey)
	store := NewTokenStore(repository, sealer, zap.NewNop())

	_, err := store.GetTokens(context.Background(), "missing")
	assert.True(t, errors.Is(err, exceptions.ErrKindUnauthorized))
}
