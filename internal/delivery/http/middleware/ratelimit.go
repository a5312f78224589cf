package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/geo-directory-service/internal/config"
	"github.com/geo-directory-service/internal/pkg/errors"
	"github.com/geo-directory-service/internal/pkg/utils"
	"go.uber.org/zap"
)

// RateLimiter - скользящее окно на клиентский IP, общий бюджет для всех маршрутов.
// storage == nil - счётчики в памяти процесса.
func RateLimiter(cfg config.RateLimitConfig, storage fiber.Storage, logger *zap.Logger) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:               cfg.Max,
		Expiration:        cfg.Window,
		LimiterMiddleware: limiter.SlidingWindow{},
		Storage:           storage,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			logger.Warn("Rate limit exceeded",
				zap.String("ip", c.IP()),
				zap.String("path", c.Path()),
			)
			return utils.SendError(c, errors.ErrTooManyRequests)
		},
	})
}
