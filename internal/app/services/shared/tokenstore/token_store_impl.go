package tokenstore

import (
	"context"
	"medcalc-service/internal/app/contracts"
	"medcalc-service/internal/app/models"
	"medcalc-service/internal/pkg/constvars"
	"medcalc-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// tokenStore keeps the scoring API tokens sealed inside the BFF session.
type tokenStore struct {
	SessionRepository contracts.SessionRepository
	Sealer            contracts.TokenSealer
	Log               *zap.Logger
}

func NewTokenStore(sessionRepository contracts.SessionRepository, sealer contracts.TokenSealer, logger *zap.Logger) contracts.TokenStore {
	return &tokenStore{
		SessionRepository: sessionRepository,
		Sealer:            sealer,
		Log:               logger,
	}
}

func (s *tokenStore) GetTokens(ctx context.Context, sessionID string) (*models.Tokens, error) {
	session, err := s.SessionRepository.Find(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	tokens, err := s.Sealer.Open(session.SealedTokens)
	if err != nil {
		s.Log.Error("tokenStore.GetTokens error opening sealed tokens",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingSessionIDKey, sessionID),
			zap.Error(err),
		)
		return nil, err
	}
	return tokens, nil
}

func (s *tokenStore) UpdateAccessToken(ctx context.Context, sessionID, accessToken string) error {
	requestID := utils.GetRequestID(ctx)
	session, err := s.SessionRepository.Find(ctx, sessionID)
	if err != nil {
		return err
	}

	tokens, err := s.Sealer.Open(session.SealedTokens)
	if err != nil {
		return err
	}
	tokens.AccessToken = accessToken

	session.SealedTokens, err = s.Sealer.Seal(tokens)
	if err != nil {
		return err
	}

	err = s.SessionRepository.Save(ctx, session)
	if err != nil {
		s.Log.Error("tokenStore.UpdateAccessToken error saving session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, sessionID),
			zap.Error(err),
		)
		return err
	}

	s.Log.Info("tokenStore.UpdateAccessToken succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)
	return nil
}
