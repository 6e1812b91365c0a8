package contracts

import (
	"context"
	"medcalc-service/internal/app/models"
	"time"
)

// SessionRepository persists BFF login sessions.
type SessionRepository interface {
	Create(ctx context.Context, session *models.Session, ttl time.Duration) error
	Find(ctx context.Context, sessionID string) (*models.Session, error)
	Save(ctx context.Context, session *models.Session) error
	Delete(ctx context.Context, sessionID string) error
}

// TokenSealer encrypts scoring API tokens before they are stored.
type TokenSealer interface {
	Seal(tokens *models.Tokens) (string, error)
	Open(sealed string) (*models.Tokens, error)
}

// TokenStore hands the scoring API client the credentials of a session.
type TokenStore interface {
	GetTokens(ctx context.Context, sessionID string) (*models.Tokens, error)
	UpdateAccessToken(ctx context.Context, sessionID, accessToken string) error
}
