package app

import (
	"context"
	"log/slog"
	"net"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	slogfiber "github.com/samber/slog-fiber"
	"go.uber.org/multierr"

	pkgErrors "github.com/SlavaShagalov/rentx/internal/pkg/errors"
	"github.com/SlavaShagalov/rentx/internal/pkg/validation"
)

const apiPrefix = "/api/v1"

type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// Delivery is an HTTP module mounted under /api/v1.
type Delivery interface {
	HealthChecker

	AddHandlers(router fiber.Router)
}

type FiberApp struct {
	app    *fiber.App
	config WebConfig
	logger *slog.Logger
}

// NewFiberApp mounts deliveries under /api/v1. /manage/health reports every
// delivery and every extra checker.
func NewFiberApp(
	config WebConfig,
	deliveries []Delivery,
	checkers []HealthChecker,
	logger *slog.Logger,
	middlewares ...fiber.Handler,
) *FiberApp {
	app := fiber.New(fiber.Config{
		ReadTimeout:           config.ReadTimeout,
		WriteTimeout:          config.WriteTimeout,
		DisableStartupMessage: true,
		ErrorHandler:          NewErrorHandler(logger),
	})

	app.Use(slogfiber.New(logger))
	for _, mw := range middlewares {
		app.Use(mw)
	}

	app.Get("/manage/health", func(ctx *fiber.Ctx) error {
		var err error
		for _, d := range deliveries {
			err = multierr.Append(err, d.HealthCheck(ctx.UserContext()))
		}
		for _, c := range checkers {
			err = multierr.Append(err, c.HealthCheck(ctx.UserContext()))
		}
		if err != nil {
			logger.Error("health check failed", slog.String("error", err.Error()))
			return ctx.SendStatus(fiber.StatusServiceUnavailable)
		}
		return ctx.SendStatus(fiber.StatusOK)
	})

	api := app.Group(apiPrefix)
	for _, d := range deliveries {
		d.AddHandlers(api)
	}

	return &FiberApp{
		app:    app,
		config: config,
		logger: logger,
	}
}

func (a *FiberApp) Start() error {
	return a.app.Listen(net.JoinHostPort(a.config.Host, a.config.Port))
}

func (a *FiberApp) Shutdown(ctx context.Context) error {
	return a.app.ShutdownWithContext(ctx)
}

// App exposes the underlying fiber app, used by tests.
func (a *FiberApp) App() *fiber.App {
	return a.app
}

type errorResponse struct {
	Message string                  `json:"message"`
	Errors  []validation.FieldError `json:"errors,omitempty"`
}

// NewErrorHandler maps domain errors returned by handlers to HTTP responses.
func NewErrorHandler(logger *slog.Logger) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		var fieldErrors validation.Errors
		if errors.As(err, &fieldErrors) {
			return ctx.Status(fiber.StatusBadRequest).JSON(errorResponse{
				Message: "validation failed",
				Errors:  fieldErrors,
			})
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(errorResponse{Message: fiberErr.Message})
		}

		code, message := pkgErrors.ToHTTP(err)
		if code >= fiber.StatusInternalServerError {
			logger.Error("request failed",
				slog.String("method", ctx.Method()),
				slog.String("path", ctx.Path()),
				slog.String("error", err.Error()),
			)
		}

		return ctx.Status(code).JSON(errorResponse{Message: message})
	}
}
