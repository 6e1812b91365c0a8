package utils

import (
	"context"
	"medcalc-service/internal/app/models"
	"medcalc-service/internal/pkg/constvars"
)

func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string); ok {
		return requestID
	}
	return ""
}

func GetSessionID(ctx context.Context) string {
	if sessionID, ok := ctx.Value(constvars.CONTEXT_SESSION_ID_KEY).(string); ok {
		return sessionID
	}
	return ""
}

// GetSessionData returns the BFF session the authentication middleware
// resolved for the request, or nil.
func GetSessionData(ctx context.Context) *models.Session {
	if session, ok := ctx.Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session); ok {
		return session
	}
	return nil
}
