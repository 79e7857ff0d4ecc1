package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/SlavaShagalov/rentx/internal/models"
	pkgErrors "github.com/SlavaShagalov/rentx/internal/pkg/errors"
	"github.com/SlavaShagalov/rentx/internal/rentals/usecase"
)

// MemoryRepository keeps rentals and the cars they touch in memory.
// It serves as both the rental store and the car lookup.
// It is safe for concurrent use.
type MemoryRepository struct {
	mu      sync.RWMutex
	cars    map[uuid.UUID]models.Car
	rentals map[uuid.UUID]models.Rental
}

func NewMemoryRepository(cars ...models.Car) *MemoryRepository {
	r := &MemoryRepository{
		cars:    make(map[uuid.UUID]models.Car, len(cars)),
		rentals: make(map[uuid.UUID]models.Rental),
	}
	for _, car := range cars {
		r.cars[car.ID] = car
	}
	return r
}

func (r *MemoryRepository) HealthCheck(context.Context) error {
	return nil
}

func (r *MemoryRepository) GetCarByID(_ context.Context, id uuid.UUID) (models.Car, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	car, ok := r.cars[id]
	if !ok {
		return models.Car{}, pkgErrors.ErrCarNotFound
	}
	return car, nil
}

func (r *MemoryRepository) Create(_ context.Context, params usecase.CreateParams) (models.Rental, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	car, ok := r.cars[params.CarID]
	if !ok {
		return models.Rental{}, pkgErrors.ErrCarNotFound
	}
	for _, rental := range r.rentals {
		if !rental.IsOpen() {
			continue
		}
		if rental.CarID == params.CarID {
			return models.Rental{}, pkgErrors.ErrCarUnavailable
		}
		if rental.UserID == params.UserID {
			return models.Rental{}, pkgErrors.ErrUserHasOpenRental
		}
	}

	now := time.Now().UTC()
	rental := models.Rental{
		ID:                 uuid.New(),
		CarID:              params.CarID,
		UserID:             params.UserID,
		StartDate:          params.StartDate,
		ExpectedReturnDate: params.ExpectedReturnDate,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	r.rentals[rental.ID] = rental

	car.Available = false
	r.cars[car.ID] = car

	return rental, nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id uuid.UUID) (models.Rental, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rental, ok := r.rentals[id]
	if !ok {
		return models.Rental{}, pkgErrors.ErrRentalNotFound
	}
	return rental, nil
}

func (r *MemoryRepository) FindOpenByCar(_ context.Context, carID uuid.UUID) (models.Rental, error) {
	return r.findOpen(func(rental models.Rental) bool { return rental.CarID == carID })
}

func (r *MemoryRepository) FindOpenByUser(_ context.Context, userID uuid.UUID) (models.Rental, error) {
	return r.findOpen(func(rental models.Rental) bool { return rental.UserID == userID })
}

func (r *MemoryRepository) Close(_ context.Context, params usecase.CloseParams) (models.Rental, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rental, ok := r.rentals[params.RentalID]
	if !ok {
		return models.Rental{}, pkgErrors.ErrRentalNotFound
	}
	if !rental.IsOpen() {
		return models.Rental{}, pkgErrors.ErrRentalClosed
	}
	car, ok := r.cars[params.CarID]
	if !ok {
		return models.Rental{}, pkgErrors.ErrCarNotFound
	}

	endDate, total := params.EndDate, params.Total
	rental.EndDate = &endDate
	rental.Total = &total
	rental.UpdatedAt = time.Now().UTC()
	r.rentals[rental.ID] = rental

	car.Available = true
	r.cars[car.ID] = car

	return rental, nil
}

func (r *MemoryRepository) ListByUser(_ context.Context, userID uuid.UUID) ([]models.Rental, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]models.Rental, 0)
	for _, rental := range r.rentals {
		if rental.UserID == userID {
			result = append(result, rental)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].StartDate.After(result[j].StartDate)
	})

	return result, nil
}

func (r *MemoryRepository) findOpen(match func(models.Rental) bool) (models.Rental, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, rental := range r.rentals {
		if rental.IsOpen() && match(rental) {
			return rental, nil
		}
	}
	return models.Rental{}, pkgErrors.ErrRentalNotFound
}
