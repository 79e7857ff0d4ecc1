package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/SlavaShagalov/rentx/internal/models"
)

type CreateRentalParams struct {
	UserID             uuid.UUID
	CarID              uuid.UUID
	ExpectedReturnDate time.Time
}

type CreateParams struct {
	UserID             uuid.UUID
	CarID              uuid.UUID
	StartDate          time.Time
	ExpectedReturnDate time.Time
}

type CloseParams struct {
	RentalID uuid.UUID
	CarID    uuid.UUID
	EndDate  time.Time
	Total    int64
}

// Repository persists rentals. Create and Close also flip the car
// availability in the same transaction.
type Repository interface {
	HealthCheck(ctx context.Context) error

	Create(ctx context.Context, params CreateParams) (models.Rental, error)
	GetByID(ctx context.Context, id uuid.UUID) (models.Rental, error)
	FindOpenByCar(ctx context.Context, carID uuid.UUID) (models.Rental, error)
	FindOpenByUser(ctx context.Context, userID uuid.UUID) (models.Rental, error)
	Close(ctx context.Context, params CloseParams) (models.Rental, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Rental, error)
}

type CarRepository interface {
	GetCarByID(ctx context.Context, id uuid.UUID) (models.Car, error)
}

type EventRepository interface {
	ListByRental(ctx context.Context, rentalID uuid.UUID) ([]models.RentalEvent, error)
}

type Publisher interface {
	Publish(ctx context.Context, event models.RentalEvent) error
}
