package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/SlavaShagalov/rentx/internal/models"
)

type CreateCategoryParams struct {
	Name        string
	Description string
}

type CreateSpecificationParams struct {
	Name        string
	Description string
}

type CreateCarParams struct {
	Name         string
	Description  string
	DailyRate    int64
	LicensePlate string
	FineAmount   int64
	Brand        string
	CategoryID   uuid.NullUUID
}

// ListFilter narrows available cars; zero fields match everything.
type ListFilter struct {
	Brand      string
	Name       string
	CategoryID uuid.NullUUID
}

type Repository interface {
	HealthCheck(ctx context.Context) error

	CreateCategory(ctx context.Context, params CreateCategoryParams) (models.Category, error)
	GetCategoryByID(ctx context.Context, id uuid.UUID) (models.Category, error)
	ListCategories(ctx context.Context) ([]models.Category, error)

	CreateSpecification(ctx context.Context, params CreateSpecificationParams) (models.Specification, error)
	ListSpecifications(ctx context.Context) ([]models.Specification, error)
	GetSpecificationsByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Specification, error)

	CreateCar(ctx context.Context, params CreateCarParams) (models.Car, error)
	GetCarByID(ctx context.Context, id uuid.UUID) (models.Car, error)
	ListAvailableCars(ctx context.Context, filter ListFilter) ([]models.Car, error)
	AddSpecifications(ctx context.Context, carID uuid.UUID, specificationIDs []uuid.UUID) error
}
