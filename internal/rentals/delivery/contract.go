package delivery

import (
	"context"

	"github.com/google/uuid"

	"github.com/SlavaShagalov/rentx/internal/models"
	"github.com/SlavaShagalov/rentx/internal/pkg/app"
	"github.com/SlavaShagalov/rentx/internal/rentals/usecase"
)

type UseCase interface {
	app.HealthChecker

	Create(ctx context.Context, params usecase.CreateRentalParams) (models.Rental, error)
	Devolution(ctx context.Context, rentalID, userID uuid.UUID) (models.Rental, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Rental, error)
	Events(ctx context.Context, rentalID uuid.UUID) ([]models.RentalEvent, error)
}
