package requests

type UpdatePreferences struct {
	NotificationsEnabled *bool                  `json:"notifications_enabled,omitempty"`
	ThemeMode            *string                `json:"theme_mode,omitempty" validate:"omitempty,oneof=light dark system"`
	UserPreferences      map[string]interface{} `json:"user_preferences,omitempty"`
}
