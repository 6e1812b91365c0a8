package sessionstore

import (
	"context"
	"medcalc-service/internal/app/contracts"
	"medcalc-service/internal/app/models"
	"medcalc-service/internal/pkg/constvars"
	"medcalc-service/internal/pkg/exceptions"
	"medcalc-service/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type sessionRepository struct {
	RedisRepository contracts.RedisRepository
	Log             *zap.Logger
}

func NewSessionRepository(redisRepository contracts.RedisRepository, logger *zap.Logger) contracts.SessionRepository {
	return &sessionRepository{
		RedisRepository: redisRepository,
		Log:             logger,
	}
}

func sessionKey(sessionID string) string {
	return constvars.RedisKeySession + sessionID
}

func (r *sessionRepository) Create(ctx context.Context, session *models.Session, ttl time.Duration) error {
	requestID := utils.GetRequestID(ctx)
	err := r.RedisRepository.Set(ctx, sessionKey(session.SessionID), session, ttl)
	if err != nil {
		r.Log.Error("sessionRepository.Create error storing session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, session.SessionID),
			zap.Error(err),
		)
		return err
	}

	r.Log.Info("sessionRepository.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, session.SessionID),
		zap.Duration(constvars.LoggingDurationKey, ttl),
	)
	return nil
}

func (r *sessionRepository) Find(ctx context.Context, sessionID string) (*models.Session, error) {
	data, err := r.RedisRepository.Get(ctx, sessionKey(sessionID))
	if err != nil {
		r.Log.Error("sessionRepository.Find error reading session",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingSessionIDKey, sessionID),
			zap.Error(err),
		)
		return nil, err
	}
	if data == "" {
		return nil, exceptions.ErrSessionNotFound(sessionID)
	}

	session := new(models.Session)
	err = json.Unmarshal([]byte(data), session)
	if err != nil {
		return nil, exceptions.ErrRedisGet(err)
	}
	return session, nil
}

// Save rewrites a session and keeps the expiry it was created with.
func (r *sessionRepository) Save(ctx context.Context, session *models.Session) error {
	key := sessionKey(session.SessionID)
	ttl, err := r.RedisRepository.TTL(ctx, key)
	if err != nil {
		return err
	}
	if ttl <= 0 {
		return exceptions.ErrSessionNotFound(session.SessionID)
	}

	return r.RedisRepository.Set(ctx, key, session, ttl)
}

func (r *sessionRepository) Delete(ctx context.Context, sessionID string) error {
	err := r.RedisRepository.Delete(ctx, sessionKey(sessionID))
	if err != nil {
		r.Log.Error("sessionRepository.Delete error",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingSessionIDKey, sessionID),
			zap.Error(err),
		)
		return err
	}
	return nil
}
