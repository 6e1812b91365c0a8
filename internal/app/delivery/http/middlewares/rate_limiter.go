package middlewares

import (
	"medcalc-service/internal/pkg/constvars"
	"medcalc-service/internal/pkg/exceptions"
	"medcalc-service/internal/pkg/utils"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RateLimiter allows each IP a burst of requests per period and blocks an
// IP that exceeds it for blockTime.
type RateLimiter struct {
	limiters  map[string]*rate.Limiter
	blocked   map[string]time.Time
	mu        sync.Mutex
	requests  int
	per       time.Duration
	blockTime time.Duration
	log       *zap.Logger
	now       func() time.Time
}

func NewRateLimiter(requests int, per, blockTime time.Duration, logger *zap.Logger) *RateLimiter {
	return &RateLimiter{
		limiters:  make(map[string]*rate.Limiter),
		blocked:   make(map[string]time.Time),
		requests:  requests,
		per:       per,
		blockTime: blockTime,
		log:       logger,
		now:       time.Now,
	}
}

func clientIP(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

func (r *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ip := clientIP(req)
		now := r.now()

		r.mu.Lock()
		if blockedUntil, found := r.blocked[ip]; found {
			if now.Before(blockedUntil) {
				r.mu.Unlock()
				r.reject(w, req, ip, blockedUntil.Sub(now))
				return
			}
			delete(r.blocked, ip)
			delete(r.limiters, ip)
		}

		limiter, exists := r.limiters[ip]
		if !exists {
			limiter = rate.NewLimiter(rate.Every(r.per/time.Duration(max(r.requests, 1))), r.requests)
			r.limiters[ip] = limiter
		}

		if !limiter.AllowN(now, 1) {
			r.blocked[ip] = now.Add(r.blockTime)
			r.mu.Unlock()
			r.reject(w, req, ip, r.blockTime)
			return
		}
		r.mu.Unlock()

		next.ServeHTTP(w, req)
	})
}

func (r *RateLimiter) reject(w http.ResponseWriter, req *http.Request, ip string, retryAfter time.Duration) {
	r.log.Warn("RateLimiter.Limit blocked request",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(req.Context())),
		zap.String(constvars.LoggingRemoteAddrKey, ip),
		zap.String(constvars.LoggingEndpointKey, req.URL.Path),
	)
	w.Header().Set(constvars.HeaderRetryAfter, strconv.Itoa(int(retryAfter.Seconds())+1))
	utils.BuildErrorResponse(r.log, w, exceptions.ErrTooManyRequests(ip))
}

// Prune forgets IPs that are neither blocked nor have used their limiter
// recently.
func (r *RateLimiter) Prune() {
	now := r.now()
	r.mu.Lock()
	defer r.mu.Unlock()

	for ip, blockedUntil := range r.blocked {
		if now.After(blockedUntil) {
			delete(r.blocked, ip)
		}
	}
	for ip, limiter := range r.limiters {
		if _, isBlocked := r.blocked[ip]; isBlocked {
			continue
		}
		if limiter.TokensAt(now) >= float64(r.requests) {
			delete(r.limiters, ip)
		}
	}
}
