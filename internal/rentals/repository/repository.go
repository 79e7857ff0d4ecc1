package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/SlavaShagalov/rentx/internal/models"
	pkgErrors "github.com/SlavaShagalov/rentx/internal/pkg/errors"
	"github.com/SlavaShagalov/rentx/internal/rentals/usecase"
	"github.com/SlavaShagalov/rentx/pkg/sqlxutils"
)

const (
	rentalColumns = `id, car_id, user_id, start_date, end_date, expected_return_date, total, created_at, updated_at`

	openCarConstraint  = "rentals_open_car_idx"
	openUserConstraint = "rentals_open_user_idx"
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

func (r *SqlxRepository) Create(ctx context.Context, params usecase.CreateParams) (models.Rental, error) {
	const createCmd = `
	INSERT INTO rentals (id, car_id, user_id, start_date, expected_return_date)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING ` + rentalColumns + `;`

	var rental models.Rental
	err := sqlxutils.InTx(ctx, r.db, func(tx *sqlx.Tx) error {
		err := sqlxutils.Get(ctx, tx, &rental, createCmd,
			uuid.New(), params.CarID, params.UserID, params.StartDate, params.ExpectedReturnDate,
		)
		if err != nil {
			return err
		}
		return setAvailable(ctx, tx, params.CarID, false)
	})
	if err != nil {
		if constraint, ok := sqlxutils.UniqueViolation(err); ok {
			switch constraint {
			case openCarConstraint:
				return models.Rental{}, pkgErrors.ErrCarUnavailable
			case openUserConstraint:
				return models.Rental{}, pkgErrors.ErrUserHasOpenRental
			}
		}
		if errors.Is(err, pkgErrors.ErrCarNotFound) {
			return models.Rental{}, err
		}
		return models.Rental{}, r.dbError("create rental", err)
	}

	return rental, nil
}

func (r *SqlxRepository) GetByID(ctx context.Context, id uuid.UUID) (models.Rental, error) {
	const getCmd = `
	SELECT ` + rentalColumns + `
	FROM rentals
	WHERE id = $1;`

	return r.getOne(ctx, "get rental", getCmd, id)
}

func (r *SqlxRepository) FindOpenByCar(ctx context.Context, carID uuid.UUID) (models.Rental, error) {
	const findCmd = `
	SELECT ` + rentalColumns + `
	FROM rentals
	WHERE car_id = $1 AND end_date IS NULL;`

	return r.getOne(ctx, "find open rental by car", findCmd, carID)
}

func (r *SqlxRepository) FindOpenByUser(ctx context.Context, userID uuid.UUID) (models.Rental, error) {
	const findCmd = `
	SELECT ` + rentalColumns + `
	FROM rentals
	WHERE user_id = $1 AND end_date IS NULL;`

	return r.getOne(ctx, "find open rental by user", findCmd, userID)
}

func (r *SqlxRepository) Close(ctx context.Context, params usecase.CloseParams) (models.Rental, error) {
	const closeCmd = `
	UPDATE rentals
	SET end_date   = $2,
	    total      = $3,
	    updated_at = now()
	WHERE id = $1 AND end_date IS NULL
	RETURNING ` + rentalColumns + `;`

	var rental models.Rental
	err := sqlxutils.InTx(ctx, r.db, func(tx *sqlx.Tx) error {
		err := sqlxutils.Get(ctx, tx, &rental, closeCmd, params.RentalID, params.EndDate, params.Total)
		if err != nil {
			if sqlxutils.IsNoRows(err) {
				return pkgErrors.ErrRentalClosed
			}
			return err
		}
		return setAvailable(ctx, tx, params.CarID, true)
	})
	if err != nil {
		if errors.Is(err, pkgErrors.ErrRentalClosed) || errors.Is(err, pkgErrors.ErrCarNotFound) {
			return models.Rental{}, err
		}
		return models.Rental{}, r.dbError("close rental", err)
	}

	return rental, nil
}

func (r *SqlxRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Rental, error) {
	const listCmd = `
	SELECT ` + rentalColumns + `
	FROM rentals
	WHERE user_id = $1
	ORDER BY start_date DESC;`

	rentals := make([]models.Rental, 0)
	if err := sqlxutils.Select(ctx, r.db, &rentals, listCmd, userID); err != nil {
		return nil, r.dbError("list rentals", err)
	}

	return rentals, nil
}

func (r *SqlxRepository) getOne(ctx context.Context, op, query string, arg any) (models.Rental, error) {
	var rental models.Rental
	if err := sqlxutils.Get(ctx, r.db, &rental, query, arg); err != nil {
		if sqlxutils.IsNoRows(err) {
			return models.Rental{}, pkgErrors.ErrRentalNotFound
		}
		return models.Rental{}, r.dbError(op, err)
	}

	return rental, nil
}

func (r *SqlxRepository) dbError(op string, err error) error {
	r.logger.Error("failed to "+op, slog.String("error", err.Error()))
	return errors.Wrap(pkgErrors.ErrDb, err.Error())
}

func setAvailable(ctx context.Context, tx *sqlx.Tx, carID uuid.UUID, available bool) error {
	const updateCmd = `
	UPDATE cars
	SET available = $2
	WHERE id = $1;`

	res, err := tx.ExecContext(ctx, updateCmd, carID, available)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return pkgErrors.ErrCarNotFound
	}

	return nil
}
