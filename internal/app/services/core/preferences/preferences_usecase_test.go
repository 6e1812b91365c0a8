package preferences

import (
	"context"
	"errors"
	"medcalc-service/internal/app/models"
	"medcalc-service/internal/pkg/dto/requests"
	"medcalc-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockPreferencesRepository struct {
	mock.Mock
}

func (m *MockPreferencesRepository) FindByUserID(ctx context.Context, userID string) (*models.Preferences, error) {
	args := m.Called(ctx, userID)
	preferences, _ := args.Get(0).(*models.Preferences)
	return preferences, args.Error(1)
}

func (m *MockPreferencesRepository) Upsert(ctx context.Context, preferences *models.Preferences) error {
	return m.Called(ctx, preferences).Error(0)
}

func TestUpdatePreferences_MergesFields(t *testing.T) {
	stored := models.DefaultPreferences("u1")
	stored.UserPreferences = map[string]interface{}{"language": "ru", "reminder": "09:00"}

	repository := new(MockPreferencesRepository)
	repository.On("FindByUserID", mock.Anything, "u1").Return(stored, nil)
	repository.On("Upsert", mock.Anything, mock.Anything).Return(nil)
	uc := NewPreferencesUsecase(repository, zap.NewNop())

	dark := models.ThemeModeDark
	preferences, err := uc.UpdatePreferences(context.Background(), "u1", &requests.UpdatePreferences{
		ThemeMode:       &dark,
		UserPreferences: map[string]interface{}{"reminder": nil, "font": "large"},
	})
	require.NoError(t, err)
	assert.Equal(t, models.ThemeModeDark, preferences.ThemeMode)
	assert.True(t, preferences.NotificationsEnabled)
	assert.Equal(t, map[string]interface{}{"language": "ru", "font": "large"}, preferences.UserPreferences)
}

func TestUpdatePreferences_RejectsUnknownTheme(t *testing.T) {
	repository := new(MockPreferencesRepository)
	uc := NewPreferencesUsecase(repository, zap.NewNop())

	sepia := "sepia"
	_, err := uc.UpdatePreferences(context.Background(), "u1", &requests.UpdatePreferences{ThemeMode: &sepia})
	assert.ErrorIs(t, err, exceptions.ErrKindValidation)
	repository.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestUpdatePreferences_SaveFailure(t *testing.T) {
	repository := new(MockPreferencesRepository)
	repository.On("FindByUserID", mock.Anything, "u1").Return(models.DefaultPreferences("u1"), nil)
	repository.On("Upsert", mock.Anything, mock.Anything).Return(exceptions.ErrMongoDBUpsertDocument(errors.New("timeout")))
	uc := NewPreferencesUsecase(repository, zap.NewNop())

	off := false
	_, err := uc.UpdatePreferences(context.Background(), "u1", &requests.UpdatePreferences{NotificationsEnabled: &off})
	assert.ErrorIs(t, err, exceptions.ErrKindStorage)
}
