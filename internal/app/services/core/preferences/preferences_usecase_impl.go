package preferences

import (
	"context"
	"medcalc-service/internal/app/contracts"
	"medcalc-service/internal/app/models"
	"medcalc-service/internal/pkg/constvars"
	"medcalc-service/internal/pkg/dto/requests"
	"medcalc-service/internal/pkg/exceptions"
	"medcalc-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type preferencesUsecase struct {
	PreferencesRepository contracts.PreferencesRepository
	Log                   *zap.Logger
}

func NewPreferencesUsecase(preferencesRepository contracts.PreferencesRepository, logger *zap.Logger) PreferencesUsecase {
	return &preferencesUsecase{
		PreferencesRepository: preferencesRepository,
		Log:                   logger,
	}
}

func (uc *preferencesUsecase) GetPreferences(ctx context.Context, userID string) (*models.Preferences, error) {
	preferences, err := uc.PreferencesRepository.FindByUserID(ctx, userID)
	if err != nil {
		uc.Log.Error("preferencesUsecase.GetPreferences error",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingUserIDKey, userID),
			zap.Error(err),
		)
		return nil, err
	}
	return preferences, nil
}

// UpdatePreferences merges the given fields into what is stored. Keys of
// user_preferences are merged one by one; a null value removes the key.
func (uc *preferencesUsecase) UpdatePreferences(ctx context.Context, userID string, request *requests.UpdatePreferences) (*models.Preferences, error) {
	requestID := utils.GetRequestID(ctx)
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	uc.Log.Info("preferencesUsecase.UpdatePreferences called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	preferences, err := uc.PreferencesRepository.FindByUserID(ctx, userID)
	if err != nil {
		uc.Log.Error("preferencesUsecase.UpdatePreferences error finding preferences",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if request.NotificationsEnabled != nil {
		preferences.NotificationsEnabled = *request.NotificationsEnabled
	}
	if request.ThemeMode != nil {
		preferences.ThemeMode = *request.ThemeMode
	}
	if len(request.UserPreferences) > 0 {
		if preferences.UserPreferences == nil {
			preferences.UserPreferences = make(map[string]interface{}, len(request.UserPreferences))
		}
		for key, value := range request.UserPreferences {
			if value == nil {
				delete(preferences.UserPreferences, key)
				continue
			}
			preferences.UserPreferences[key] = value
		}
	}

	if err := uc.PreferencesRepository.Upsert(ctx, preferences); err != nil {
		uc.Log.Error("preferencesUsecase.UpdatePreferences error saving preferences",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("preferencesUsecase.UpdatePreferences succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPreferenceThemeKey, preferences.ThemeMode),
	)
	return preferences, nil
}
