package delivery

import (
	"context"

	"github.com/google/uuid"

	"github.com/SlavaShagalov/rentx/internal/cars/usecase"
	"github.com/SlavaShagalov/rentx/internal/models"
	"github.com/SlavaShagalov/rentx/internal/pkg/app"
)

type UseCase interface {
	app.HealthChecker

	CreateCategory(ctx context.Context, params usecase.CreateCategoryParams) (models.Category, error)
	ListCategories(ctx context.Context) ([]models.Category, error)

	CreateSpecification(ctx context.Context, params usecase.CreateSpecificationParams) (models.Specification, error)
	ListSpecifications(ctx context.Context) ([]models.Specification, error)

	CreateCar(ctx context.Context, params usecase.CreateCarParams) (models.Car, error)
	GetCar(ctx context.Context, id uuid.UUID) (models.Car, error)
	ListAvailable(ctx context.Context, filter usecase.ListFilter) ([]models.Car, error)
	AddSpecifications(ctx context.Context, carID uuid.UUID, specificationIDs []uuid.UUID) (models.Car, error)
}
