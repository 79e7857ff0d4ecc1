package delivery

import (
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/SlavaShagalov/rentx/internal/pkg/app"
	pkgErrors "github.com/SlavaShagalov/rentx/internal/pkg/errors"
	"github.com/SlavaShagalov/rentx/internal/pkg/validation"
	"github.com/SlavaShagalov/rentx/internal/rentals/usecase"
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
	rentals := router.Group("/rentals", d.auth)
	rentals.Post("", d.create)
	rentals.Get("/user", d.listByUser)
	rentals.Post("/:id/devolution", d.devolution)
	rentals.Get("/:id/events", app.AdminOnly(), d.events)
}

func (d *Delivery) create(ctx *fiber.Ctx) error {
	claims, ok := app.ClaimsFromCtx(ctx)
	if !ok {
		return pkgErrors.ErrUnauthorized
	}

	var dto CreateRentalDTO
	if err := ctx.BodyParser(&dto); err != nil {
		d.logger.Debug("bad create rental body", slog.String("error", err.Error()))
		return errors.Wrap(pkgErrors.ErrInvalidRequest, err.Error())
	}
	if err := d.validator.Struct(dto); err != nil {
		return err
	}

	rental, err := d.useCase.Create(ctx.UserContext(), usecase.CreateRentalParams{
		UserID:             claims.UserID,
		CarID:              uuid.MustParse(dto.CarID),
		ExpectedReturnDate: dto.ExpectedReturnDate.UTC(),
	})
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(NewRentalResponse(rental))
}

func (d *Delivery) devolution(ctx *fiber.Ctx) error {
	claims, ok := app.ClaimsFromCtx(ctx)
	if !ok {
		return pkgErrors.ErrUnauthorized
	}

	rentalID, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return errors.Wrap(pkgErrors.ErrRentalNotFound, err.Error())
	}

	rental, err := d.useCase.Devolution(ctx.UserContext(), rentalID, claims.UserID)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusOK).JSON(NewRentalResponse(rental))
}

func (d *Delivery) listByUser(ctx *fiber.Ctx) error {
	claims, ok := app.ClaimsFromCtx(ctx)
	if !ok {
		return pkgErrors.ErrUnauthorized
	}

	rentals, err := d.useCase.ListByUser(ctx.UserContext(), claims.UserID)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusOK).JSON(NewRentalsResponse(rentals))
}

func (d *Delivery) events(ctx *fiber.Ctx) error {
	rentalID, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return errors.Wrap(pkgErrors.ErrRentalNotFound, err.Error())
	}

	events, err := d.useCase.Events(ctx.UserContext(), rentalID)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusOK).JSON(events)
}
