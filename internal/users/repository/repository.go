package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/SlavaShagalov/rentx/internal/models"
	pkgErrors "github.com/SlavaShagalov/rentx/internal/pkg/errors"
	"github.com/SlavaShagalov/rentx/internal/users/usecase"
	"github.com/SlavaShagalov/rentx/pkg/sqlxutils"
)

const userColumns = `id, name, email, password, driver_license, is_admin, created_at`

type SqlxRepository struct {
	db     *sqlx.DB
	logger *slog.Logger
}

func NewSqlxRepository(db *sqlx.DB, logger *slog.Logger) *SqlxRepository {
	return &SqlxRepository{
		db:     db,
		logger: logger,
	}
}

func (r *SqlxRepository) HealthCheck(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *SqlxRepository) Create(ctx context.Context, params usecase.CreateParams) (models.User, error) {
	const createCmd = `
	INSERT INTO users (id, name, email, password, driver_license)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING ` + userColumns + `;`

	var user models.User
	err := sqlxutils.Get(ctx, r.db, &user, createCmd,
		uuid.New(), params.Name, params.Email, params.HashedPassword, params.DriverLicense)
	if err != nil {
		if _, ok := sqlxutils.UniqueViolation(err); ok {
			return models.User{}, pkgErrors.ErrUserAlreadyExists
		}

		r.logger.Error("failed to create user", slog.String("error", err.Error()))
		return models.User{}, errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	return user, nil
}

func (r *SqlxRepository) GetByEmail(ctx context.Context, email string) (models.User, error) {
	const getByEmailCmd = `
	SELECT ` + userColumns + `
	FROM users
	WHERE email = $1;`

	return r.get(ctx, getByEmailCmd, email)
}

func (r *SqlxRepository) GetByID(ctx context.Context, id uuid.UUID) (models.User, error) {
	const getByIDCmd = `
	SELECT ` + userColumns + `
	FROM users
	WHERE id = $1;`

	return r.get(ctx, getByIDCmd, id)
}

func (r *SqlxRepository) get(ctx context.Context, query string, arg any) (models.User, error) {
	var user models.User
	err := sqlxutils.Get(ctx, r.db, &user, query, arg)
	if err != nil {
		if sqlxutils.IsNoRows(err) {
			return models.User{}, pkgErrors.ErrUserNotFound
		}

		r.logger.Error("failed to get user", slog.String("error", err.Error()))
		return models.User{}, errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	return user, nil
}
