package middleware_test

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/geo-directory-service/internal/delivery/http/middleware"
)

func TestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	app := fiber.New()
	app.Use(middleware.Logger(zap.New(core)))
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/missing", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNotFound) })

	t.Run("generates request id", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/ok?x=1", nil))
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Header.Get(middleware.HeaderRequestID))

		entries := logs.TakeAll()
		require.Len(t, entries, 1)
		assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
		assert.Equal(t, "/ok", entries[0].ContextMap()["path"])
		assert.Equal(t, "x=1", entries[0].ContextMap()["query"])
	})

	t.Run("keeps client request id", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/ok", nil)
		req.Header.Set(middleware.HeaderRequestID, "abc-123")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, "abc-123", resp.Header.Get(middleware.HeaderRequestID))
		logs.TakeAll()
	})

	t.Run("client errors logged as warn", func(t *testing.T) {
		_, err := app.Test(httptest.NewRequest("GET", "/missing", nil))
		require.NoError(t, err)

		entries := logs.TakeAll()
		require.Len(t, entries, 1)
		assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
		assert.EqualValues(t, 404, entries[0].ContextMap()["status"])
	})
}
