package delivery

import (
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/SlavaShagalov/rentx/internal/cars/usecase"
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
	admin := app.AdminOnly()

	categories := router.Group("/categories")
	categories.Post("", d.auth, admin, d.createCategory)
	categories.Get("", d.listCategories)

	specifications := router.Group("/specifications")
	specifications.Post("", d.auth, admin, d.createSpecification)
	specifications.Get("", d.listSpecifications)

	cars := router.Group("/cars")
	cars.Post("", d.auth, admin, d.createCar)
	cars.Get("/available", d.listAvailable)
	cars.Get("/:id", d.getCar)
	cars.Post("/:id/specifications", d.auth, admin, d.addSpecifications)
}

func (d *Delivery) createCategory(ctx *fiber.Ctx) error {
	var dto CreateCategoryDTO
	if err := d.parse(ctx, &dto); err != nil {
		return err
	}

	category, err := d.useCase.CreateCategory(ctx.UserContext(), usecase.CreateCategoryParams{
		Name:        dto.Name,
		Description: dto.Description,
	})
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(NewCategoryResponse(category))
}

func (d *Delivery) listCategories(ctx *fiber.Ctx) error {
	categories, err := d.useCase.ListCategories(ctx.UserContext())
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusOK).JSON(mapSlice(categories, NewCategoryResponse))
}

func (d *Delivery) createSpecification(ctx *fiber.Ctx) error {
	var dto CreateSpecificationDTO
	if err := d.parse(ctx, &dto); err != nil {
		return err
	}

	specification, err := d.useCase.CreateSpecification(ctx.UserContext(), usecase.CreateSpecificationParams{
		Name:        dto.Name,
		Description: dto.Description,
	})
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(NewSpecificationResponse(specification))
}

func (d *Delivery) listSpecifications(ctx *fiber.Ctx) error {
	specifications, err := d.useCase.ListSpecifications(ctx.UserContext())
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusOK).JSON(mapSlice(specifications, NewSpecificationResponse))
}

func (d *Delivery) createCar(ctx *fiber.Ctx) error {
	var dto CreateCarDTO
	if err := d.parse(ctx, &dto); err != nil {
		return err
	}

	params := usecase.CreateCarParams{
		Name:         dto.Name,
		Description:  dto.Description,
		DailyRate:    dto.DailyRate,
		LicensePlate: dto.LicensePlate,
		FineAmount:   dto.FineAmount,
		Brand:        dto.Brand,
	}
	if dto.CategoryID != "" {
		params.CategoryID = uuid.NullUUID{UUID: uuid.MustParse(dto.CategoryID), Valid: true}
	}

	car, err := d.useCase.CreateCar(ctx.UserContext(), params)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(NewCarResponse(car))
}

func (d *Delivery) listAvailable(ctx *fiber.Ctx) error {
	filter := usecase.ListFilter{
		Brand: ctx.Query("brand"),
		Name:  ctx.Query("name"),
	}
	if raw := ctx.Query("category_id"); raw != "" {
		categoryID, err := uuid.Parse(raw)
		if err != nil {
			return errors.Wrap(pkgErrors.ErrInvalidRequest, "category_id: "+err.Error())
		}
		filter.CategoryID = uuid.NullUUID{UUID: categoryID, Valid: true}
	}

	cars, err := d.useCase.ListAvailable(ctx.UserContext(), filter)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusOK).JSON(mapSlice(cars, NewCarResponse))
}

func (d *Delivery) getCar(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return errors.Wrap(pkgErrors.ErrCarNotFound, err.Error())
	}

	car, err := d.useCase.GetCar(ctx.UserContext(), id)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusOK).JSON(NewCarResponse(car))
}

func (d *Delivery) addSpecifications(ctx *fiber.Ctx) error {
	carID, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return errors.Wrap(pkgErrors.ErrCarNotFound, err.Error())
	}

	var dto AddSpecificationsDTO
	if err = d.parse(ctx, &dto); err != nil {
		return err
	}

	ids := make([]uuid.UUID, 0, len(dto.SpecificationIDs))
	for _, raw := range dto.SpecificationIDs {
		ids = append(ids, uuid.MustParse(raw))
	}

	car, err := d.useCase.AddSpecifications(ctx.UserContext(), carID, ids)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(NewCarResponse(car))
}

func (d *Delivery) parse(ctx *fiber.Ctx, dto any) error {
	if err := ctx.BodyParser(dto); err != nil {
		d.logger.Debug("bad request body", slog.String("path", ctx.Path()), slog.String("error", err.Error()))
		return errors.Wrap(pkgErrors.ErrInvalidRequest, err.Error())
	}
	return d.validator.Struct(dto)
}
