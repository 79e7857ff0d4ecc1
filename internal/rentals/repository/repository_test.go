package repository

import (
	"context"
	"io"
	"log/slog"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgErrors "github.com/SlavaShagalov/rentx/internal/pkg/errors"
	"github.com/SlavaShagalov/rentx/internal/rentals/usecase"
)

var columns = []string{"id", "car_id", "user_id", "start_date", "end_date", "expected_return_date", "total", "created_at", "updated_at"}

func newRepo(t *testing.T) (*SqlxRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewSqlxRepository(sqlx.NewDb(db, "postgres"), logger), mock
}

func TestSqlxRepository_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	params := usecase.CreateParams{
		UserID:             uuid.New(),
		CarID:              uuid.New(),
		StartDate:          now,
		ExpectedReturnDate: now.Add(48 * time.Hour),
	}

	t.Run("inserts and reserves car", func(t *testing.T) {
		repo, mock := newRepo(t)
		id := uuid.New()

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO rentals")).
			WithArgs(sqlmock.AnyArg(), params.CarID, params.UserID, params.StartDate, params.ExpectedReturnDate).
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow(id.String(), params.CarID.String(), params.UserID.String(), now, nil, params.ExpectedReturnDate, nil, now, now))
		mock.ExpectExec(regexp.QuoteMeta("UPDATE cars")).
			WithArgs(params.CarID, false).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		rental, err := repo.Create(ctx, params)
		require.NoError(t, err)
		assert.Equal(t, id, rental.ID)
		assert.True(t, rental.IsOpen())
		assert.Nil(t, rental.Total)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	constraints := map[string]error{
		"rentals_open_car_idx":  pkgErrors.ErrCarUnavailable,
		"rentals_open_user_idx": pkgErrors.ErrUserHasOpenRental,
	}
	for constraint, want := range constraints {
		t.Run(constraint, func(t *testing.T) {
			repo, mock := newRepo(t)

			mock.ExpectBegin()
			mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO rentals")).
				WillReturnError(&pq.Error{Code: "23505", Constraint: constraint})
			mock.ExpectRollback()

			_, err := repo.Create(ctx, params)
			assert.ErrorIs(t, err, want)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}

	t.Run("missing car rolls back", func(t *testing.T) {
		repo, mock := newRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO rentals")).
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow(uuid.NewString(), params.CarID.String(), params.UserID.String(), now, nil, now, nil, now, now))
		mock.ExpectExec(regexp.QuoteMeta("UPDATE cars")).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		_, err := repo.Create(ctx, params)
		assert.ErrorIs(t, err, pkgErrors.ErrCarNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSqlxRepository_Close(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 3, 10, 0, 0, 0, time.UTC)
	params := usecase.CloseParams{RentalID: uuid.New(), CarID: uuid.New(), EndDate: now, Total: 200}

	t.Run("closes and frees car", func(t *testing.T) {
		repo, mock := newRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta("UPDATE rentals")).
			WithArgs(params.RentalID, params.EndDate, params.Total).
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow(params.RentalID.String(), params.CarID.String(), uuid.NewString(), now.Add(-48*time.Hour), now, now, int64(200), now, now))
		mock.ExpectExec(regexp.QuoteMeta("UPDATE cars")).
			WithArgs(params.CarID, true).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		rental, err := repo.Close(ctx, params)
		require.NoError(t, err)
		assert.False(t, rental.IsOpen())
		require.NotNil(t, rental.Total)
		assert.Equal(t, int64(200), *rental.Total)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("already closed", func(t *testing.T) {
		repo, mock := newRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta("UPDATE rentals")).
			WillReturnRows(sqlmock.NewRows(columns))
		mock.ExpectRollback()

		_, err := repo.Close(ctx, params)
		assert.ErrorIs(t, err, pkgErrors.ErrRentalClosed)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSqlxRepository_FindOpenByCar(t *testing.T) {
	repo, mock := newRepo(t)
	carID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE car_id = $1 AND end_date IS NULL")).
		WithArgs(carID).
		WillReturnRows(sqlmock.NewRows(columns))

	_, err := repo.FindOpenByCar(context.Background(), carID)
	assert.ErrorIs(t, err, pkgErrors.ErrRentalNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSqlxRepository_ListByUser(t *testing.T) {
	repo, mock := newRepo(t)
	userID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY start_date DESC")).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(uuid.NewString(), uuid.NewString(), userID.String(), now, nil, now, nil, now, now))

	rentals, err := repo.ListByUser(context.Background(), userID)
	require.NoError(t, err)
	assert.Len(t, rentals, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}
