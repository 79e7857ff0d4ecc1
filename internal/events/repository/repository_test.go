package repository

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SlavaShagalov/rentx/internal/models"
	pkgErrors "github.com/SlavaShagalov/rentx/internal/pkg/errors"
)

func newRepo(t *testing.T) (*SqlxRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewSqlxRepository(sqlx.NewDb(db, "postgres"), logger), mock
}

func TestSqlxRepository_Save(t *testing.T) {
	event := models.RentalEvent{
		ID:         uuid.New(),
		RentalID:   uuid.New(),
		CarID:      uuid.New(),
		UserID:     uuid.New(),
		Kind:       models.RentalCreated,
		OccurredAt: time.Now(),
	}

	t.Run("ok", func(t *testing.T) {
		repo, mock := newRepo(t)

		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO rental_events")).
			WithArgs(event.ID, event.RentalID, event.CarID, event.UserID, "rental.created", nil, event.OccurredAt).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.Save(context.Background(), event))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("db error", func(t *testing.T) {
		repo, mock := newRepo(t)

		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO rental_events")).
			WillReturnError(errors.New("connection reset"))

		assert.ErrorIs(t, repo.Save(context.Background(), event), pkgErrors.ErrDb)
	})
}

func TestSqlxRepository_ListByRental(t *testing.T) {
	repo, mock := newRepo(t)
	rentalID := uuid.New()
	total := int64(280)

	mock.ExpectQuery(regexp.QuoteMeta("FROM rental_events")).
		WithArgs(rentalID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "rental_id", "car_id", "user_id", "kind", "total", "occurred_at"}).
			AddRow(uuid.NewString(), rentalID.String(), uuid.NewString(), uuid.NewString(), "rental.created", nil, time.Now()).
			AddRow(uuid.NewString(), rentalID.String(), uuid.NewString(), uuid.NewString(), "rental.closed", total, time.Now()))

	events, err := repo.ListByRental(context.Background(), rentalID)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, models.RentalClosed, events[1].Kind)
	require.NotNil(t, events[1].Total)
	assert.Equal(t, total, *events[1].Total)
	assert.NoError(t, mock.ExpectationsWereMet())
}
