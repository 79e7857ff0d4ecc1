package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/SlavaShagalov/rentx/internal/models"
	pkgErrors "github.com/SlavaShagalov/rentx/internal/pkg/errors"
	"github.com/SlavaShagalov/rentx/internal/users/usecase"
)

// MemoryRepository is an in-memory user store for tests and local runs.
// It is safe for concurrent use.
type MemoryRepository struct {
	mu      sync.RWMutex
	byID    map[uuid.UUID]models.User
	byEmail map[string]uuid.UUID
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byID:    make(map[uuid.UUID]models.User),
		byEmail: make(map[string]uuid.UUID),
	}
}

func (r *MemoryRepository) HealthCheck(context.Context) error {
	return nil
}

func (r *MemoryRepository) Create(_ context.Context, params usecase.CreateParams) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[params.Email]; ok {
		return models.User{}, pkgErrors.ErrUserAlreadyExists
	}

	user := models.User{
		ID:            uuid.New(),
		Name:          params.Name,
		Email:         params.Email,
		Password:      params.HashedPassword,
		DriverLicense: params.DriverLicense,
		CreatedAt:     time.Now().UTC(),
	}
	r.byID[user.ID] = user
	r.byEmail[user.Email] = user.ID

	return user, nil
}

func (r *MemoryRepository) GetByEmail(_ context.Context, email string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return models.User{}, pkgErrors.ErrUserNotFound
	}
	return r.byID[id], nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id uuid.UUID) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[id]
	if !ok {
		return models.User{}, pkgErrors.ErrUserNotFound
	}
	return user, nil
}
