package contracts

import (
	"context"
	"medcalc-service/internal/app/models"
)

type PreferencesRepository interface {
	FindByUserID(ctx context.Context, userID string) (*models.Preferences, error)
	Upsert(ctx context.Context, preferences *models.Preferences) error
}
