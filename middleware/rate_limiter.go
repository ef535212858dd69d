package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/Ayush5112006/dduhack-sub002/config"
	"github.com/Ayush5112006/dduhack-sub002/metrics"

	"github.com/gin-gonic/gin"
)

// RateLimiter throttles per client IP with two token buckets: a generous
// one for reads and a tighter one for mutating requests. Deadline minutes
// concentrate registration and submission writes, which is where the store
// needs protecting.
type RateLimiter struct {
	visitors map[string]*visitor
	mu       sync.Mutex
	cfg      config.RateLimitConfig
	interval time.Duration // Refill interval
}

type visitor struct {
	tokens      int
	lastUpdated time.Time
}

func NewRateLimiter(cfg config.RateLimitConfig) *RateLimiter {
	return &RateLimiter{
		visitors: make(map[string]*visitor),
		cfg:      cfg,
		interval: time.Minute,
	}
}

func (rl *RateLimiter) limits(method string) (rate int, burst int) {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return rl.cfg.WritePerMinute, rl.cfg.WriteBurst
	default:
		return rl.cfg.ReadPerMinute, rl.cfg.ReadBurst
	}
}

// tierKey separates the read and write buckets of one client
func tierKey(ip, method string) string {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return "write:" + ip
	default:
		return "read:" + ip
	}
}

func (rl *RateLimiter) Allow(ip, method string) bool {
	rate, burst := rl.limits(method)
	key := tierKey(ip, method)

	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, exists := rl.visitors[key]
	if !exists {
		v = &visitor{
			tokens:      burst,
			lastUpdated: time.Now(),
		}
		rl.visitors[key] = v
	}

	// Refill tokens
	now := time.Now()
	elapsed := now.Sub(v.lastUpdated)
	refill := int(elapsed / rl.interval)
	if refill > 0 {
		v.tokens += refill * rate
		if v.tokens > burst {
			v.tokens = burst
		}
		v.lastUpdated = now
	}

	if v.tokens > 0 {
		v.tokens--
		return true
	}

	return false
}

func RateLimiterMiddleware(rl *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !rl.Allow(ip, c.Request.Method) {
			metrics.RateLimiterRejections.WithLabelValues(ip).Inc()

			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many requests. Please try again later.",
			})
			return
		}
		c.Next()
	}
}
