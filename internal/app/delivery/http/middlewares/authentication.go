package middlewares

import (
	"context"
	"medcalc-service/internal/pkg/constvars"
	"medcalc-service/internal/pkg/exceptions"
	"medcalc-service/internal/pkg/utils"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// Authenticate resolves the BFF session from the bearer token and puts its
// id and data on the request context.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if !strings.HasPrefix(authHeader, constvars.AuthorizationBearerPrefix) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}
		token := strings.TrimSpace(strings.TrimPrefix(authHeader, constvars.AuthorizationBearerPrefix))
		if token == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		session, err := m.AuthUsecase.ResolveSession(r.Context(), token)
		if err != nil {
			m.Log.Info("Middlewares.Authenticate rejected request",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
				zap.Error(err),
			)
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_ID_KEY, session.SessionID)
		ctx = context.WithValue(ctx, constvars.CONTEXT_SESSION_DATA_KEY, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin must run after Authenticate.
func (m *Middlewares) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session := utils.GetSessionData(r.Context())
		if session == nil || !session.IsAdmin {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrNotAdmin())
			return
		}
		next.ServeHTTP(w, r)
	})
}
