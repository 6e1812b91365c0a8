package responses

import (
	"medcalc-service/internal/app/models"
	"time"
)

type Login struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      *models.User `json:"user"`
	IsAdmin   bool         `json:"is_admin"`
}

type AuthState struct {
	IsAuthenticated bool         `json:"is_authenticated"`
	IsAdmin         bool         `json:"is_admin"`
	User            *models.User `json:"user,omitempty"`
}
