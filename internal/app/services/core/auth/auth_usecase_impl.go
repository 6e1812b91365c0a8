package auth

import (
	"context"
	"errors"
	"medcalc-service/internal/app/config"
	"medcalc-service/internal/app/contracts"
	"medcalc-service/internal/app/models"
	"medcalc-service/internal/pkg/constvars"
	"medcalc-service/internal/pkg/dto/requests"
	"medcalc-service/internal/pkg/dto/responses"
	"medcalc-service/internal/pkg/exceptions"
	"medcalc-service/internal/pkg/utils"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type authUsecase struct {
	AuthAPI           contracts.AuthAPI
	SessionRepository contracts.SessionRepository
	Sealer            contracts.TokenSealer
	InternalConfig    *config.InternalConfig
	SessionScoped     []SessionScoped
	Log               *zap.Logger
}

func NewAuthUsecase(
	authAPI contracts.AuthAPI,
	sessionRepository contracts.SessionRepository,
	sealer contracts.TokenSealer,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
	sessionScoped ...SessionScoped,
) AuthUsecase {
	return &authUsecase{
		AuthAPI:           authAPI,
		SessionRepository: sessionRepository,
		Sealer:            sealer,
		InternalConfig:    internalConfig,
		SessionScoped:     sessionScoped,
		Log:               logger,
	}
}

func (uc *authUsecase) sessionTTL() time.Duration {
	return time.Duration(uc.InternalConfig.JWT.ExpTimeInHour) * time.Hour
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, request.Email),
	)

	tokens, err := uc.AuthAPI.Login(ctx, request)
	if err != nil {
		uc.Log.Error("authUsecase.Login error from scoring API",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSubmitResource(err, constvars.ResourceSession)
	}

	sealed, err := uc.Sealer.Seal(&models.Tokens{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	})
	if err != nil {
		uc.Log.Error("authUsecase.Login error sealing tokens",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	now := time.Now()
	ttl := uc.sessionTTL()
	session := &models.Session{
		SessionID:    uuid.NewString(),
		SealedTokens: sealed,
		CreatedAt:    now,
		ExpiresAt:    now.Add(ttl),
	}
	err = uc.SessionRepository.Create(ctx, session, ttl)
	if err != nil {
		return nil, err
	}

	user := tokens.User
	if user == nil {
		sessionCtx := context.WithValue(ctx, constvars.CONTEXT_SESSION_ID_KEY, session.SessionID)
		user, err = uc.AuthAPI.GetProfile(sessionCtx)
		if err != nil {
			uc.Log.Error("authUsecase.Login error fetching profile",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			uc.discardSession(ctx, session.SessionID)
			return nil, exceptions.ErrFetchResource(err, constvars.ResourceProfile)
		}
	}

	// GetProfile may have refreshed the tokens stored under the session, so
	// the user is written onto the stored copy rather than the local one.
	err = uc.updateSessionUser(ctx, session.SessionID, func(stored *models.Session) {
		stored.User = user
		stored.IsAdmin = user.IsAdmin
	})
	if err != nil {
		uc.discardSession(ctx, session.SessionID)
		return nil, err
	}

	token, expiresAt, err := utils.GenerateSessionJWT(session.SessionID, uc.InternalConfig.JWT.Secret, ttl)
	if err != nil {
		uc.Log.Error("authUsecase.Login error generating session token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		uc.discardSession(ctx, session.SessionID)
		return nil, err
	}

	uc.Log.Info("authUsecase.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, session.SessionID),
		zap.String(constvars.LoggingUserIDKey, user.ID),
	)
	return &responses.Login{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user,
		IsAdmin:   user.IsAdmin,
	}, nil
}

func (uc *authUsecase) Register(ctx context.Context, request *requests.Register) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.Register called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, request.Email),
	)

	err := uc.AuthAPI.Register(ctx, request)
	if err != nil {
		uc.Log.Error("authUsecase.Register error from scoring API",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrSubmitResource(err, constvars.ResourceProfile)
	}

	uc.Log.Info("authUsecase.Register succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}

// ResolveSession verifies a BFF session token and loads its session.
func (uc *authUsecase) ResolveSession(ctx context.Context, token string) (*models.Session, error) {
	sessionID, err := utils.ParseSessionJWT(token, uc.InternalConfig.JWT.Secret)
	if err != nil {
		return nil, err
	}
	return uc.SessionRepository.Find(ctx, sessionID)
}

// CheckAuthState reports whether the session still exists. A missing
// session is a signed-out state, not an error.
func (uc *authUsecase) CheckAuthState(ctx context.Context, sessionID string) (*responses.AuthState, error) {
	session, err := uc.SessionRepository.Find(ctx, sessionID)
	if errors.Is(err, exceptions.ErrKindUnauthorized) {
		return &responses.AuthState{}, nil
	}
	if err != nil {
		return nil, err
	}

	return &responses.AuthState{
		IsAuthenticated: true,
		IsAdmin:         session.IsAdmin,
		User:            session.User,
	}, nil
}

// GetProfile reads the profile from the scoring API and refreshes the copy
// kept in the session.
func (uc *authUsecase) GetProfile(ctx context.Context, sessionID string) (*models.User, error) {
	requestID := utils.GetRequestID(ctx)
	user, err := uc.AuthAPI.GetProfile(ctx)
	if err != nil {
		uc.Log.Error("authUsecase.GetProfile error from scoring API",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrFetchResource(err, constvars.ResourceProfile)
	}

	err = uc.updateSessionUser(ctx, sessionID, func(session *models.Session) {
		session.User = user
		session.IsAdmin = user.IsAdmin
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateProfile sends the changes and merges them into the stored user; the
// scoring API does not echo the updated profile.
func (uc *authUsecase) UpdateProfile(ctx context.Context, sessionID string, request *requests.UpdateProfile) (*models.User, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.UpdateProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	err := uc.AuthAPI.UpdateProfile(ctx, request)
	if err != nil {
		uc.Log.Error("authUsecase.UpdateProfile error from scoring API",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSubmitResource(err, constvars.ResourceProfile)
	}

	var user *models.User
	err = uc.updateSessionUser(ctx, sessionID, func(session *models.Session) {
		if session.User == nil {
			session.User = &models.User{ID: session.UserID, Email: session.Email}
		}
		session.User.Merge(models.ProfileChanges{
			FullName:    request.FullName,
			Phone:       request.Phone,
			DateOfBirth: request.DateOfBirth,
			Gender:      request.Gender,
		})
		user = session.User
	})
	if err != nil {
		return nil, err
	}

	uc.Log.Info("authUsecase.UpdateProfile succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return user, nil
}

func (uc *authUsecase) ChangePassword(ctx context.Context, request *requests.ChangePassword) error {
	err := uc.AuthAPI.ChangePassword(ctx, request)
	if err != nil {
		uc.Log.Error("authUsecase.ChangePassword error from scoring API",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
		return exceptions.ErrSubmitResource(err, constvars.ResourceProfile)
	}
	return nil
}

func (uc *authUsecase) LinkTelegram(ctx context.Context, sessionID string, request *requests.LinkTelegram) (*models.User, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.LinkTelegram called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTelegramUsernameKey, request.TelegramUsername),
	)

	err := uc.AuthAPI.LinkTelegram(ctx, request)
	if err != nil {
		uc.Log.Error("authUsecase.LinkTelegram error from scoring API",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSubmitResource(err, constvars.ResourceProfile)
	}

	var user *models.User
	err = uc.updateSessionUser(ctx, sessionID, func(session *models.Session) {
		if session.User == nil {
			session.User = &models.User{ID: session.UserID, Email: session.Email}
		}
		session.User.TelegramUsername = request.TelegramUsername
		user = session.User
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Logout tells the scoring API on a best-effort basis, then drops the
// session and all state kept for it.
func (uc *authUsecase) Logout(ctx context.Context, sessionID string) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	err := uc.AuthAPI.Logout(ctx)
	if err != nil {
		uc.Log.Warn("authUsecase.Logout scoring API logout failed, continuing",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	for _, scoped := range uc.SessionScoped {
		scoped.Remove(sessionID)
	}

	err = uc.SessionRepository.Delete(ctx, sessionID)
	if err != nil {
		return err
	}

	uc.Log.Info("authUsecase.Logout succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)
	return nil
}

// discardSession drops a session whose login did not complete.
func (uc *authUsecase) discardSession(ctx context.Context, sessionID string) {
	err := uc.SessionRepository.Delete(ctx, sessionID)
	if err != nil {
		uc.Log.Error("authUsecase.discardSession error deleting session",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingSessionIDKey, sessionID),
			zap.Error(err),
		)
	}
}

// updateSessionUser reads the stored session right before writing it so
// that only the user fields change and tokens refreshed meanwhile survive.
func (uc *authUsecase) updateSessionUser(ctx context.Context, sessionID string, update func(session *models.Session)) error {
	session, err := uc.SessionRepository.Find(ctx, sessionID)
	if err != nil {
		return err
	}

	update(session)
	if session.User != nil {
		session.UserID = session.User.ID
		session.Email = session.User.Email
	}

	err = uc.SessionRepository.Save(ctx, session)
	if err != nil {
		uc.Log.Error("authUsecase.updateSessionUser error saving session",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingSessionIDKey, sessionID),
			zap.Error(err),
		)
		return err
	}
	return nil
}
