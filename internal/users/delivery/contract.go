package delivery

import (
	"context"

	"github.com/google/uuid"

	"github.com/SlavaShagalov/rentx/internal/models"
	"github.com/SlavaShagalov/rentx/internal/pkg/app"
	"github.com/SlavaShagalov/rentx/internal/users/usecase"
)

type UseCase interface {
	app.HealthChecker

	Create(ctx context.Context, params usecase.CreateUserParams) (models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (models.User, error)
}
