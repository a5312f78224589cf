package http

import (
	"context"
	stderrors "errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberutils "github.com/gofiber/fiber/v2/utils"
	"github.com/geo-directory-service/internal/config"
	"github.com/geo-directory-service/internal/delivery/http/handler"
	"github.com/geo-directory-service/internal/delivery/http/middleware"
	"github.com/geo-directory-service/internal/pkg/errors"
	"github.com/geo-directory-service/internal/pkg/utils"
	"github.com/geo-directory-service/internal/usecase/dto"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"
)

// HealthChecker - зависимость, состояние которой отражает /health
type HealthChecker interface {
	Health(ctx context.Context) error
}

// CompositeHealth - /health здоров, только если отвечают все зависимости
type CompositeHealth []HealthChecker

func (h CompositeHealth) Health(ctx context.Context) error {
	for _, c := range h {
		if err := c.Health(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	rateLimiter fiber.Handler
	health      HealthChecker

	// Handlers
	countryHandler *handler.CountryHandler
	stateHandler   *handler.StateHandler
	cityHandler    *handler.CityHandler
}

// NewServer - создание нового HTTP сервера. rateLimiter применяется ко всем маршрутам
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	rateLimiter fiber.Handler,
	health HealthChecker,
	countryHandler *handler.CountryHandler,
	stateHandler *handler.StateHandler,
	cityHandler *handler.CityHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Geo Directory Service",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:            app,
		config:         cfg,
		logger:         logger,
		rateLimiter:    rateLimiter,
		health:         health,
		countryHandler: countryHandler,
		stateHandler:   stateHandler,
		cityHandler:    cityHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS(s.config.CORS.AllowOrigins))
	if s.rateLimiter != nil {
		s.app.Use(s.rateLimiter)
	}
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	s.app.Get("/health", s.healthCheck)

	// Countries
	s.app.Get("/countries", s.countryHandler.List)
	s.app.Get("/countries/search", s.countryHandler.Search)
	s.app.Get("/country", s.countryHandler.GetSummary)

	// States
	s.app.Get("/states/search", s.stateHandler.Search)
	s.app.Get("/states/by-country", s.stateHandler.ListByCountry)

	// Cities
	s.app.Get("/cities/search", s.cityHandler.Search)
	s.app.Get("/cities/by-state", s.cityHandler.ListByState)
}

func (s *Server) healthCheck(c *fiber.Ctx) error {
	status := "healthy"
	code := fiber.StatusOK

	if s.health != nil {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()

		if err := s.health.Health(ctx); err != nil {
			s.logger.Warn("Health check failed", zap.Error(err))
			status = "unhealthy"
			code = fiber.StatusServiceUnavailable
		}
	}

	return c.Status(code).JSON(dto.HealthResponse{
		Status: status,
		Time:   time.Now(),
	})
}

// App - доступ к fiber.App (для тестов через app.Test)
func (s *Server) App() *fiber.App {
	return s.app
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - кастомный обработчик ошибок
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var appErr *errors.AppError
		if stderrors.As(err, &appErr) {
			return utils.SendError(c, appErr)
		}

		code := fiber.StatusInternalServerError
		message := "Internal server error"

		var fe *fiber.Error
		if stderrors.As(err, &fe) {
			code = fe.Code
			message = fe.Message
		}

		if code >= fiber.StatusInternalServerError {
			logger.Error("HTTP Error",
				zap.String("path", c.Path()),
				zap.Int("status", code),
				zap.Error(err),
			)
		}

		return c.Status(code).JSON(utils.ErrorResponse{
			Error: errors.New(errorCode(code), message, code),
		})
	}
}

// errorCode: 404 -> NOT_FOUND, 405 -> METHOD_NOT_ALLOWED
func errorCode(status int) string {
	text := fiberutils.StatusMessage(status)
	return strings.ToUpper(strings.ReplaceAll(text, " ", "_"))
}
