package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/SlavaShagalov/rentx/internal/models"
)

type CreateUserParams struct {
	Name          string
	Email         string
	Password      string
	DriverLicense string
}

type CreateParams struct {
	Name           string
	Email          string
	HashedPassword string
	DriverLicense  string
}

type Repository interface {
	HealthCheck(ctx context.Context) error

	Create(ctx context.Context, params CreateParams) (models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (models.User, error)
}
