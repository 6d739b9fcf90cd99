package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/shoppulse/internal/domain/dto"
)

type client struct {
	windowStart time.Time
	count       int
}

type rateLimiter struct {
	mu      sync.Mutex
	clients map[string]*client
	limit   int
	window  time.Duration
	now     func() time.Time
}

// RateLimiter allows up to limit requests per client IP in each fixed window
// and answers 429 beyond that.
//
// Behavior:
//   - The first request from an IP opens a window of the given length.
//   - Requests past limit inside that window are aborted with 429, a
//     dto.ErrorResponse body and Retry-After in whole seconds.
//   - A non-positive limit disables the middleware.
//   - State is process local; several replicas each count on their own.
//
// Parameters:
//   - limit: requests allowed per IP per window.
//   - window: length of the fixed window.
//
// Example:
//
//	router.Use(middleware.RateLimiter(120, time.Minute))
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	rl := &rateLimiter{
		clients: make(map[string]*client),
		limit:   limit,
		window:  window,
		now:     time.Now,
	}
	return rl.handle
}

func (rl *rateLimiter) handle(c *gin.Context) {
	if rl.limit <= 0 {
		c.Next()
		return
	}

	if !rl.allow(c.ClientIP()) {
		c.Header("Retry-After", retryAfter(rl.window))
		c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.NewErrorResponse("rate limit exceeded", nil))
		return
	}
	c.Next()
}

func (rl *rateLimiter) allow(ip string) bool {
	now := rl.now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	cl, ok := rl.clients[ip]
	if !ok || now.Sub(cl.windowStart) >= rl.window {
		rl.clients[ip] = &client{windowStart: now, count: 1}
		rl.sweepLocked(now)
		return true
	}
	cl.count++
	return cl.count <= rl.limit
}

// sweepLocked drops clients whose window is over.
func (rl *rateLimiter) sweepLocked(now time.Time) {
	for ip, cl := range rl.clients {
		if now.Sub(cl.windowStart) >= rl.window {
			delete(rl.clients, ip)
		}
	}
}

// retryAfter renders d as RFC 9110 delay-seconds, rounded up, at least 1.
func retryAfter(d time.Duration) string {
	secs := int(math.Ceil(d.Seconds()))
	if secs < 1 {
		secs = 1
	}
	return strconv.Itoa(secs)
}
