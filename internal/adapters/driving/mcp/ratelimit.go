package mcp

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/taskmgr/internal/core/domain"
	"github.com/custodia-labs/taskmgr/internal/logger"
)

// RateLimitConfig holds rate limiting configuration for the HTTP transport.
type RateLimitConfig struct {
	// RequestsPerSecond is the sustained rate limit. Zero disables limiting.
	RequestsPerSecond float64
	// BurstSize is the maximum burst size.
	BurstSize int
}

// RateLimitConfigFrom converts MCP settings into a limiter configuration.
func RateLimitConfigFrom(s domain.MCPSettings) RateLimitConfig {
	return RateLimitConfig{
		RequestsPerSecond: s.RateLimit,
		BurstSize:         s.Burst,
	}
}

// RateLimiter rejects HTTP requests once the token bucket is empty.
type RateLimiter struct {
	mu      sync.Mutex
	limiter *rate.Limiter
	cfg     RateLimitConfig
	now     func() time.Time
}

// NewRateLimiter creates a rate limiter with the given configuration.
func NewRateLimiter(cfg RateLimitConfig) *RateLimiter {
	limit := rate.Limit(cfg.RequestsPerSecond)
	if cfg.RequestsPerSecond <= 0 {
		limit = rate.Inf
	}
	return &RateLimiter{
		limiter: rate.NewLimiter(limit, cfg.BurstSize),
		cfg:     cfg,
		now:     time.Now,
	}
}

// Allow checks if a request can be served immediately.
func (r *RateLimiter) Allow() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.limiter.AllowN(r.now(), 1)
}

// RetryAfter returns the whole seconds a client should wait for a token.
func (r *RateLimiter) RetryAfter() int {
	if r.cfg.RequestsPerSecond <= 0 {
		return 0
	}
	secs := int(1 / r.cfg.RequestsPerSecond)
	if secs < 1 {
		secs = 1
	}
	return secs
}

// Middleware wraps next, answering 429 Too Many Requests when the bucket
// is empty.
func (r *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if !r.Allow() {
			logger.Debug("mcp: rate limited %s %s", req.Method, req.URL.Path)
			w.Header().Set("Retry-After", strconv.Itoa(r.RetryAfter()))
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, req)
	})
}
