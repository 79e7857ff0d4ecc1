package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/SlavaShagalov/rentx/internal/auth/usecase"
	"github.com/SlavaShagalov/rentx/internal/models"
	pkgErrors "github.com/SlavaShagalov/rentx/internal/pkg/errors"
)

// MemoryRepository keeps refresh tokens in memory.
// It is safe for concurrent use.
type MemoryRepository struct {
	mu     sync.Mutex
	tokens map[uuid.UUID]models.UserToken
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{tokens: make(map[uuid.UUID]models.UserToken)}
}

func (r *MemoryRepository) HealthCheck(context.Context) error {
	return nil
}

func (r *MemoryRepository) Create(_ context.Context, params usecase.CreateTokenParams) (models.UserToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	userToken := models.UserToken{
		ID:           uuid.New(),
		UserID:       params.UserID,
		RefreshToken: params.RefreshToken,
		ExpiresAt:    params.ExpiresAt,
		CreatedAt:    time.Now().UTC(),
	}
	r.tokens[userToken.ID] = userToken

	return userToken, nil
}

func (r *MemoryRepository) GetByRefreshToken(_ context.Context, refreshToken string) (models.UserToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, userToken := range r.tokens {
		if userToken.RefreshToken == refreshToken {
			return userToken, nil
		}
	}

	return models.UserToken{}, pkgErrors.ErrInvalidRefreshToken
}

func (r *MemoryRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tokens[id]; !ok {
		return errors.Wrap(pkgErrors.ErrInvalidRefreshToken, "already used")
	}
	delete(r.tokens, id)
	return nil
}

func (r *MemoryRepository) DeleteByUserID(_ context.Context, userID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, userToken := range r.tokens {
		if userToken.UserID == userID {
			delete(r.tokens, id)
		}
	}
	return nil
}

// Len is the number of stored tokens.
func (r *MemoryRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.tokens)
}
