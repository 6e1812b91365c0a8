package preferences

import (
	"context"
	"errors"
	"medcalc-service/internal/app/contracts"
	"medcalc-service/internal/app/models"
	"medcalc-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PreferencesMongoRepository struct {
	Collection *mongo.Collection
}

func NewPreferencesMongoRepository(db *mongo.Database, collectionName string) contracts.PreferencesRepository {
	return &PreferencesMongoRepository{
		Collection: db.Collection(collectionName),
	}
}

// FindByUserID returns the stored preferences or the defaults when the user
// has never saved any.
func (r *PreferencesMongoRepository) FindByUserID(ctx context.Context, userID string) (*models.Preferences, error) {
	var preferences models.Preferences
	err := r.Collection.FindOne(ctx, bson.M{"_id": userID}).Decode(&preferences)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.DefaultPreferences(userID), nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &preferences, nil
}

func (r *PreferencesMongoRepository) Upsert(ctx context.Context, preferences *models.Preferences) error {
	preferences.SetUpdatedAt()
	filter := bson.M{"_id": preferences.UserID}
	update := bson.M{
		"$set": bson.M{
			"notificationsEnabled": preferences.NotificationsEnabled,
			"themeMode":            preferences.ThemeMode,
			"userPreferences":      preferences.UserPreferences,
			"updatedAt":            preferences.UpdatedAt,
		},
		"$setOnInsert": bson.M{
			"createdAt": time.Now(),
		},
	}

	_, err := r.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return exceptions.ErrMongoDBUpsertDocument(err)
	}
	return nil
}
