package middlewares

import (
	"medcalc-service/internal/pkg/exceptions"
	"medcalc-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/httprate"
)

// CreateRateLimiter limits every client IP to App.MaxRequests per second.
func (m *Middlewares) CreateRateLimiter() func(next http.Handler) http.Handler {
	return httprate.Limit(
		m.InternalConfig.App.MaxRequests,
		time.Second,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTooManyRequests(r.RemoteAddr))
		}),
	)
}
