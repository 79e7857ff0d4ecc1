package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/SlavaShagalov/rentx/internal/auth/usecase"
	"github.com/SlavaShagalov/rentx/internal/models"
	pkgErrors "github.com/SlavaShagalov/rentx/internal/pkg/errors"
	"github.com/SlavaShagalov/rentx/pkg/sqlxutils"
)

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

func (r *SqlxRepository) Create(ctx context.Context, params usecase.CreateTokenParams) (models.UserToken, error) {
	const createCmd = `
	INSERT INTO users_tokens (id, user_id, refresh_token, expires_at)
	VALUES ($1, $2, $3, $4)
	RETURNING id, user_id, refresh_token, expires_at, created_at;`

	var userToken models.UserToken
	err := sqlxutils.Get(ctx, r.db, &userToken, createCmd, uuid.New(), params.UserID, params.RefreshToken, params.ExpiresAt)
	if err != nil {
		r.logger.Error("failed to create user token", slog.String("error", err.Error()))
		return models.UserToken{}, errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	return userToken, nil
}

func (r *SqlxRepository) GetByRefreshToken(ctx context.Context, refreshToken string) (models.UserToken, error) {
	const getCmd = `
	SELECT id, user_id, refresh_token, expires_at, created_at
	FROM users_tokens
	WHERE refresh_token = $1;`

	var userToken models.UserToken
	err := sqlxutils.Get(ctx, r.db, &userToken, getCmd, refreshToken)
	if err != nil {
		if sqlxutils.IsNoRows(err) {
			return models.UserToken{}, pkgErrors.ErrInvalidRefreshToken
		}

		r.logger.Error("failed to get user token", slog.String("error", err.Error()))
		return models.UserToken{}, errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	return userToken, nil
}

// Delete removes the token. It fails with ErrInvalidRefreshToken when the
// token is already gone, so a refresh token is consumed at most once.
func (r *SqlxRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const deleteCmd = `DELETE FROM users_tokens WHERE id = $1;`

	res, err := r.db.ExecContext(ctx, deleteCmd, id)
	if err != nil {
		r.logger.Error("failed to delete user token", slog.String("error", err.Error()))
		return errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(pkgErrors.ErrDb, err.Error())
	}
	if affected == 0 {
		return errors.Wrap(pkgErrors.ErrInvalidRefreshToken, "already used")
	}

	return nil
}

func (r *SqlxRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	const deleteCmd = `DELETE FROM users_tokens WHERE user_id = $1;`

	if _, err := r.db.ExecContext(ctx, deleteCmd, userID); err != nil {
		r.logger.Error("failed to delete user tokens", slog.String("error", err.Error()))
		return errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	return nil
}
