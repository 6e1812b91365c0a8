package auth

import (
	"context"
	"medcalc-service/internal/app/models"
	"medcalc-service/internal/pkg/dto/requests"
	"medcalc-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	Login(ctx context.Context, request *requests.Login) (*responses.Login, error)
	Register(ctx context.Context, request *requests.Register) error
	ResolveSession(ctx context.Context, token string) (*models.Session, error)
	CheckAuthState(ctx context.Context, sessionID string) (*responses.AuthState, error)
	GetProfile(ctx context.Context, sessionID string) (*models.User, error)
	UpdateProfile(ctx context.Context, sessionID string, request *requests.UpdateProfile) (*models.User, error)
	ChangePassword(ctx context.Context, request *requests.ChangePassword) error
	LinkTelegram(ctx context.Context, sessionID string, request *requests.LinkTelegram) (*models.User, error)
	Logout(ctx context.Context, sessionID string) error
}

// SessionScoped is state kept per BFF session that must go away on logout.
type SessionScoped interface {
	Remove(sessionID string)
}
