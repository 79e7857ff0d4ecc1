package usecase

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/SlavaShagalov/rentx/internal/models"
	pkgErrors "github.com/SlavaShagalov/rentx/internal/pkg/errors"
)

type UseCase struct {
	repo   Repository
	logger *slog.Logger
}

func New(repo Repository, logger *slog.Logger) *UseCase {
	return &UseCase{
		repo:   repo,
		logger: logger,
	}
}

func (u *UseCase) HealthCheck(ctx context.Context) error {
	return u.repo.HealthCheck(ctx)
}

func (u *UseCase) CreateCategory(ctx context.Context, params CreateCategoryParams) (models.Category, error) {
	return u.repo.CreateCategory(ctx, params)
}

func (u *UseCase) ListCategories(ctx context.Context) ([]models.Category, error) {
	return u.repo.ListCategories(ctx)
}

func (u *UseCase) CreateSpecification(ctx context.Context, params CreateSpecificationParams) (models.Specification, error) {
	return u.repo.CreateSpecification(ctx, params)
}

func (u *UseCase) ListSpecifications(ctx context.Context) ([]models.Specification, error) {
	return u.repo.ListSpecifications(ctx)
}

// CreateCar registers a car as available. The category, when given, must exist.
func (u *UseCase) CreateCar(ctx context.Context, params CreateCarParams) (models.Car, error) {
	if params.CategoryID.Valid {
		if _, err := u.repo.GetCategoryByID(ctx, params.CategoryID.UUID); err != nil {
			return models.Car{}, err
		}
	}

	car, err := u.repo.CreateCar(ctx, params)
	if err != nil {
		return models.Car{}, err
	}

	u.logger.Info("car created",
		slog.String("car_id", car.ID.String()),
		slog.String("license_plate", car.LicensePlate),
	)

	return car, nil
}

func (u *UseCase) GetCar(ctx context.Context, id uuid.UUID) (models.Car, error) {
	return u.repo.GetCarByID(ctx, id)
}

func (u *UseCase) ListAvailable(ctx context.Context, filter ListFilter) ([]models.Car, error) {
	return u.repo.ListAvailableCars(ctx, filter)
}

// AddSpecifications links specifications to a car and returns the updated car.
func (u *UseCase) AddSpecifications(ctx context.Context, carID uuid.UUID, specificationIDs []uuid.UUID) (models.Car, error) {
	if _, err := u.repo.GetCarByID(ctx, carID); err != nil {
		return models.Car{}, err
	}

	ids := unique(specificationIDs)
	found, err := u.repo.GetSpecificationsByIDs(ctx, ids)
	if err != nil {
		return models.Car{}, err
	}
	if len(found) != len(ids) {
		return models.Car{}, errors.Wrapf(pkgErrors.ErrSpecificationNotFound, "found %d of %d", len(found), len(ids))
	}

	if err = u.repo.AddSpecifications(ctx, carID, ids); err != nil {
		return models.Car{}, err
	}

	return u.repo.GetCarByID(ctx, carID)
}

func unique(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	result := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}
