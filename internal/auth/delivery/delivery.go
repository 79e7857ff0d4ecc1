package delivery

import (
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"github.com/SlavaShagalov/rentx/internal/auth/usecase"
	"github.com/SlavaShagalov/rentx/internal/pkg/app"
	pkgErrors "github.com/SlavaShagalov/rentx/internal/pkg/errors"
	"github.com/SlavaShagalov/rentx/internal/pkg/validation"
)

type Delivery struct {
	useCase   UseCase
	auth      fiber.Handler
	validator *validation.Validator
	logger    *slog.Logger
}

func New(useCase UseCase, auth fiber.Handler, validator *validation.Validator, logger *slog.Logger) *Delivery {
	return &Delivery{
		useCase:   useCase,
		auth:      auth,
		validator: validator,
		logger:    logger,
	}
}

func (d *Delivery) HealthCheck(ctx context.Context) error {
	return d.useCase.HealthCheck(ctx)
}

func (d *Delivery) AddHandlers(router fiber.Router) {
	sessions := router.Group("/sessions")
	sessions.Post("", d.signin)
	sessions.Post("/refresh", d.refresh)
	sessions.Delete("", d.auth, d.logout)
}

func (d *Delivery) signin(ctx *fiber.Ctx) error {
	var dto SignInDTO
	if err := ctx.BodyParser(&dto); err != nil {
		d.logger.Debug("bad sign in body", slog.String("error", err.Error()))
		return errors.Wrap(pkgErrors.ErrInvalidRequest, err.Error())
	}
	if err := d.validator.Struct(dto); err != nil {
		return err
	}

	result, err := d.useCase.Authenticate(ctx.UserContext(), usecase.AuthenticateParams{
		Email:    dto.Email,
		Password: dto.Password,
	})
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusOK).JSON(NewSessionResponse(result))
}

func (d *Delivery) refresh(ctx *fiber.Ctx) error {
	var dto RefreshDTO
	if err := ctx.BodyParser(&dto); err != nil {
		return errors.Wrap(pkgErrors.ErrInvalidRequest, err.Error())
	}
	if err := d.validator.Struct(dto); err != nil {
		return err
	}

	result, err := d.useCase.Refresh(ctx.UserContext(), dto.RefreshToken)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusOK).JSON(NewSessionResponse(result))
}

func (d *Delivery) logout(ctx *fiber.Ctx) error {
	claims, ok := app.ClaimsFromCtx(ctx)
	if !ok {
		return pkgErrors.ErrUnauthorized
	}

	if err := d.useCase.Logout(ctx.UserContext(), claims); err != nil {
		return err
	}

	return ctx.SendStatus(fiber.StatusNoContent)
}
