package delivery

import (
	"context"

	"github.com/SlavaShagalov/rentx/internal/auth/usecase"
	"github.com/SlavaShagalov/rentx/internal/models"
	"github.com/SlavaShagalov/rentx/internal/pkg/app"
)

type UseCase interface {
	app.HealthChecker

	Authenticate(ctx context.Context, params usecase.AuthenticateParams) (usecase.AuthResult, error)
	Refresh(ctx context.Context, refreshToken string) (usecase.AuthResult, error)
	Logout(ctx context.Context, claims models.AccessClaims) error
}
