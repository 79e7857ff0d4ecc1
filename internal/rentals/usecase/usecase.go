package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/SlavaShagalov/rentx/internal/models"
	"github.com/SlavaShagalov/rentx/internal/pkg/clock"
	pkgErrors "github.com/SlavaShagalov/rentx/internal/pkg/errors"
)

const MinRentalDuration = 24 * time.Hour

type UseCase struct {
	repo      Repository
	cars      CarRepository
	events    EventRepository
	publisher Publisher
	clock     clock.Clock
	logger    *slog.Logger
}

func New(
	repo Repository,
	cars CarRepository,
	events EventRepository,
	publisher Publisher,
	clk clock.Clock,
	logger *slog.Logger,
) *UseCase {
	return &UseCase{
		repo:      repo,
		cars:      cars,
		events:    events,
		publisher: publisher,
		clock:     clk,
		logger:    logger,
	}
}

func (u *UseCase) HealthCheck(ctx context.Context) error {
	return u.repo.HealthCheck(ctx)
}

// Create opens a rental starting now. Neither the car nor the user may
// already have an open rental.
func (u *UseCase) Create(ctx context.Context, params CreateRentalParams) (models.Rental, error) {
	if _, err := u.cars.GetCarByID(ctx, params.CarID); err != nil {
		return models.Rental{}, err
	}

	if err := u.ensureNoOpenRental(ctx, u.repo.FindOpenByCar, params.CarID, pkgErrors.ErrCarUnavailable); err != nil {
		return models.Rental{}, err
	}
	if err := u.ensureNoOpenRental(ctx, u.repo.FindOpenByUser, params.UserID, pkgErrors.ErrUserHasOpenRental); err != nil {
		return models.Rental{}, err
	}

	now := u.clock.Now()
	if clock.HoursBetween(now, params.ExpectedReturnDate) < int(MinRentalDuration.Hours()) {
		return models.Rental{}, pkgErrors.ErrInvalidReturnDate
	}

	rental, err := u.repo.Create(ctx, CreateParams{
		UserID:             params.UserID,
		CarID:              params.CarID,
		StartDate:          now,
		ExpectedReturnDate: params.ExpectedReturnDate,
	})
	if err != nil {
		return models.Rental{}, err
	}

	u.logger.Info("rental created",
		slog.String("rental_id", rental.ID.String()),
		slog.String("car_id", rental.CarID.String()),
		slog.String("user_id", rental.UserID.String()),
	)
	u.publish(ctx, rental, models.RentalCreated)

	return rental, nil
}

// Devolution closes an open rental of userID and charges it.
func (u *UseCase) Devolution(ctx context.Context, rentalID, userID uuid.UUID) (models.Rental, error) {
	rental, err := u.repo.GetByID(ctx, rentalID)
	if err != nil {
		return models.Rental{}, err
	}
	if rental.UserID != userID {
		return models.Rental{}, errors.Wrap(pkgErrors.ErrRentalNotFound, "rental of another user")
	}
	if !rental.IsOpen() {
		return models.Rental{}, pkgErrors.ErrRentalClosed
	}

	car, err := u.cars.GetCarByID(ctx, rental.CarID)
	if err != nil {
		return models.Rental{}, err
	}

	now := u.clock.Now()
	total := Total(rental, car, now)
	closed, err := u.repo.Close(ctx, CloseParams{
		RentalID: rental.ID,
		CarID:    rental.CarID,
		EndDate:  now,
		Total:    total,
	})
	if err != nil {
		return models.Rental{}, err
	}

	u.logger.Info("rental closed",
		slog.String("rental_id", closed.ID.String()),
		slog.Int64("total", total),
	)
	u.publish(ctx, closed, models.RentalClosed)

	return closed, nil
}

func (u *UseCase) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Rental, error) {
	return u.repo.ListByUser(ctx, userID)
}

// Events returns the recorded history of a rental.
func (u *UseCase) Events(ctx context.Context, rentalID uuid.UUID) ([]models.RentalEvent, error) {
	if _, err := u.repo.GetByID(ctx, rentalID); err != nil {
		return nil, err
	}
	return u.events.ListByRental(ctx, rentalID)
}

// Total charges each whole day at the daily rate, one day at least,
// plus the fine for each whole day past the expected return.
func Total(rental models.Rental, car models.Car, returnedAt time.Time) int64 {
	days := clock.DaysBetween(rental.StartDate, returnedAt)
	if days < 1 {
		days = 1
	}
	total := int64(days) * car.DailyRate

	if delay := clock.DaysBetween(rental.ExpectedReturnDate, returnedAt); delay > 0 {
		total += int64(delay) * car.FineAmount
	}

	return total
}

func (u *UseCase) ensureNoOpenRental(
	ctx context.Context,
	find func(context.Context, uuid.UUID) (models.Rental, error),
	id uuid.UUID,
	conflict error,
) error {
	_, err := find(ctx, id)
	switch {
	case err == nil:
		return conflict
	case errors.Is(err, pkgErrors.ErrRentalNotFound):
		return nil
	default:
		return err
	}
}

func (u *UseCase) publish(ctx context.Context, rental models.Rental, kind models.RentalEventKind) {
	event := models.RentalEvent{
		ID:         uuid.New(),
		RentalID:   rental.ID,
		CarID:      rental.CarID,
		UserID:     rental.UserID,
		Kind:       kind,
		Total:      rental.Total,
		OccurredAt: u.clock.Now(),
	}

	if err := u.publisher.Publish(ctx, event); err != nil {
		u.logger.Warn("failed to publish rental event",
			slog.String("rental_id", rental.ID.String()),
			slog.String("kind", string(kind)),
			slog.String("error", err.Error()),
		)
	}
}
