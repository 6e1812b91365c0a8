package models

const (
	ThemeModeLight  = "light"
	ThemeModeDark   = "dark"
	ThemeModeSystem = "system"
)

// Preferences replaces the settings the mobile client used to keep on the
// device. Stored per user in MongoDB.
type Preferences struct {
	UserID               string                 `json:"user_id" bson:"_id"`
	NotificationsEnabled bool                   `json:"notifications_enabled" bson:"notificationsEnabled"`
	ThemeMode            string                 `json:"theme_mode" bson:"themeMode"`
	UserPreferences      map[string]interface{} `json:"user_preferences,omitempty" bson:"userPreferences,omitempty"`
	TimeModel            `bson:",inline"`
}

func DefaultPreferences(userID string) *Preferences {
	return &Preferences{
		UserID:               userID,
		NotificationsEnabled: true,
		ThemeMode:            ThemeModeSystem,
	}
}
