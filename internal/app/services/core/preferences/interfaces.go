package preferences

import (
	"context"
	"medcalc-service/internal/app/models"
	"medcalc-service/internal/pkg/dto/requests"
)

type PreferencesUsecase interface {
	GetPreferences(ctx context.Context, userID string) (*models.Preferences, error)
	UpdatePreferences(ctx context.Context, userID string, request *requests.UpdatePreferences) (*models.Preferences, error)
}
