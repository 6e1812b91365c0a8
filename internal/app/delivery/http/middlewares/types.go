package middlewares

import (
	"medcalc-service/internal/app/config"
	"medcalc-service/internal/app/services/core/auth"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	AuthUsecase    auth.AuthUsecase
	InternalConfig *config.InternalConfig
}

func NewMiddlewares(logger *zap.Logger, authUsecase auth.AuthUsecase, internalConfig *config.InternalConfig) *Middlewares {
	return &Middlewares{
		Log:            logger,
		AuthUsecase:    authUsecase,
		InternalConfig: internalConfig,
	}
}
