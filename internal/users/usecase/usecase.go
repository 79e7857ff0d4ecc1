package usecase

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/SlavaShagalov/rentx/internal/models"
	pkgErrors "github.com/SlavaShagalov/rentx/internal/pkg/errors"
	pkgHasher "github.com/SlavaShagalov/rentx/internal/pkg/hasher"
)

type UseCase struct {
	repo   Repository
	logger *slog.Logger
	hasher pkgHasher.Hasher
}

func New(repo Repository, logger *slog.Logger, hasher pkgHasher.Hasher) *UseCase {
	return &UseCase{
		repo:   repo,
		logger: logger,
		hasher: hasher,
	}
}

func (u *UseCase) HealthCheck(ctx context.Context) error {
	return u.repo.HealthCheck(ctx)
}

// Create registers a new user. Emails are unique.
func (u *UseCase) Create(ctx context.Context, params CreateUserParams) (models.User, error) {
	_, err := u.repo.GetByEmail(ctx, params.Email)
	if !errors.Is(err, pkgErrors.ErrUserNotFound) {
		if err != nil {
			return models.User{}, err
		}
		return models.User{}, pkgErrors.ErrUserAlreadyExists
	}

	hashedPassword, err := u.hasher.GetHashedPassword(ctx, params.Password)
	if err != nil {
		return models.User{}, errors.Wrap(pkgErrors.ErrGetHashedPassword, err.Error())
	}

	user, err := u.repo.Create(ctx, CreateParams{
		Name:           params.Name,
		Email:          params.Email,
		HashedPassword: hashedPassword,
		DriverLicense:  params.DriverLicense,
	})
	if err != nil {
		return models.User{}, err
	}

	u.logger.Info("user created", slog.String("user_id", user.ID.String()))

	return user, nil
}

func (u *UseCase) GetByID(ctx context.Context, id uuid.UUID) (models.User, error) {
	return u.repo.GetByID(ctx, id)
}
