package delivery

import (
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"github.com/SlavaShagalov/rentx/internal/pkg/app"
	pkgErrors "github.com/SlavaShagalov/rentx/internal/pkg/errors"
	"github.com/SlavaShagalov/rentx/internal/pkg/validation"
	"github.com/SlavaShagalov/rentx/internal/users/usecase"
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
	users := router.Group("/users")
	users.Post("", d.create)
	users.Get("/profile", d.auth, d.profile)
}

func (d *Delivery) create(ctx *fiber.Ctx) error {
	var dto CreateUserDTO
	if err := ctx.BodyParser(&dto); err != nil {
		d.logger.Debug("bad create user body", slog.String("error", err.Error()))
		return errors.Wrap(pkgErrors.ErrInvalidRequest, err.Error())
	}
	if err := d.validator.Struct(dto); err != nil {
		return err
	}

	user, err := d.useCase.Create(ctx.UserContext(), usecase.CreateUserParams{
		Name:          dto.Name,
		Email:         dto.Email,
		Password:      dto.Password,
		DriverLicense: dto.DriverLicense,
	})
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(NewUserResponse(user))
}

func (d *Delivery) profile(ctx *fiber.Ctx) error {
	claims, ok := app.ClaimsFromCtx(ctx)
	if !ok {
		return pkgErrors.ErrUnauthorized
	}

	user, err := d.useCase.GetByID(ctx.UserContext(), claims.UserID)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusOK).JSON(NewUserResponse(user))
}
