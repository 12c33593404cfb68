package common

import (
	"strings"
	"time"

	"github.com/amirasaad/alphaquantum/pkg/config"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// RateLimiter limits requests per client. A nil or empty config falls
// back to 100 requests per minute.
func RateLimiter(cfg *config.RateLimit) fiber.Handler {
	maxRequests, window := 100, time.Minute
	if cfg != nil && cfg.MaxRequests > 0 {
		maxRequests = cfg.MaxRequests
	}
	if cfg != nil && cfg.Window > 0 {
		window = cfg.Window
	}
	return limiter.New(limiter.Config{
		Max:        maxRequests,
		Expiration: window,
		KeyGenerator: clientKey,
		LimitReached: func(c *fiber.Ctx) error {
			return ProblemDetailsJSON(c, "Too Many Requests", nil, "Rate limit exceeded", fiber.StatusTooManyRequests)
		},
	})
}

// clientKey takes the first X-Forwarded-For hop, then X-Real-IP, then the
// peer address.
func clientKey(c *fiber.Ctx) string {
	if fwd := c.Get(fiber.HeaderXForwardedFor); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		return strings.TrimSpace(first)
	}
	if real := c.Get("X-Real-IP"); real != "" {
		return real
	}
	return c.IP()
}
