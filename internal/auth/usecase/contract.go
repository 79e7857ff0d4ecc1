package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/SlavaShagalov/rentx/internal/models"
)

type AuthenticateParams struct {
	Email    string
	Password string
}

type AuthResult struct {
	User         models.User
	AccessToken  string
	RefreshToken string
	ExpiresIn    time.Duration
}

type CreateTokenParams struct {
	UserID       uuid.UUID
	RefreshToken string
	ExpiresAt    time.Time
}

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (models.User, error)
}

type Repository interface {
	HealthCheck(ctx context.Context) error

	Create(ctx context.Context, params CreateTokenParams) (models.UserToken, error)
	GetByRefreshToken(ctx context.Context, refreshToken string) (models.UserToken, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}

type TokenManager interface {
	Generate(user models.User) (string, error)
	TTL() time.Duration
}

type Revoker interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
}
