package middleware

import (
	"net/http"
	"sync"
	"time"

	"instant_offer/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const limiterIdleTTL = 10 * time.Minute

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per client IP.
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*limiterEntry
	limit    rate.Limit
	burst    int
	now      func() time.Time
	logger   *zap.Logger
}

// NewRateLimiter allows perMinute requests per IP with the given burst.
func NewRateLimiter(perMinute, burst int, logger *zap.Logger) *RateLimiter {
	if logger == nil {
		logger = zap.NewNop()
	}
	if perMinute <= 0 {
		perMinute = 60
	}
	if burst <= 0 {
		burst = 1
	}
	return &RateLimiter{
		limiters: make(map[string]*limiterEntry),
		limit:    rate.Every(time.Minute / time.Duration(perMinute)),
		burst:    burst,
		now:      time.Now,
		logger:   logger,
	}
}

func (s *RateLimiter) getLimiter(ip string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	e, ok := s.limiters[ip]
	if !ok {
		e = &limiterEntry{limiter: rate.NewLimiter(s.limit, s.burst)}
		s.limiters[ip] = e
		s.evictIdle(now)
	}
	e.lastSeen = now
	return e.limiter
}

// evictIdle drops buckets not touched within limiterIdleTTL. Callers hold mu.
func (s *RateLimiter) evictIdle(now time.Time) {
	for ip, e := range s.limiters {
		if now.Sub(e.lastSeen) > limiterIdleTTL {
			delete(s.limiters, ip)
		}
	}
}

// Middleware rejects requests over the per-IP allowance with 429.
func (s *RateLimiter) Middleware() gin.HandlerFunc {
	tooMany := pkg.NewDomainErrorSimple("RATE_LIMITED", "Rate limit exceeded. Try again later.", http.StatusTooManyRequests)
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !s.getLimiter(ip).Allow() {
			s.logger.Warn("[http][ratelimit] rate limit exceeded", zap.String("ip", ip), zap.String("path", c.FullPath()))
			c.AbortWithStatusJSON(tooMany.HTTPStatus, tooMany.ToHTTPError())
			return
		}
		c.Next()
	}
}
