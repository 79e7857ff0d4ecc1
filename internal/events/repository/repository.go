package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

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

// Save stores event once; redelivered events are ignored.
func (r *SqlxRepository) Save(ctx context.Context, event models.RentalEvent) error {
	const saveCmd = `
	INSERT INTO rental_events (id, rental_id, car_id, user_id, kind, total, occurred_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	ON CONFLICT (id) DO NOTHING;`

	_, err := r.db.ExecContext(ctx, saveCmd,
		event.ID, event.RentalID, event.CarID, event.UserID, string(event.Kind), event.Total, event.OccurredAt,
	)
	if err != nil {
		r.logger.Error("failed to save rental event",
			slog.String("event_id", event.ID.String()),
			slog.String("error", err.Error()),
		)
		return errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	return nil
}

func (r *SqlxRepository) ListByRental(ctx context.Context, rentalID uuid.UUID) ([]models.RentalEvent, error) {
	const listCmd = `
	SELECT id, rental_id, car_id, user_id, kind, total, occurred_at
	FROM rental_events
	WHERE rental_id = $1
	ORDER BY occurred_at;`

	events := make([]models.RentalEvent, 0)
	if err := sqlxutils.Select(ctx, r.db, &events, listCmd, rentalID); err != nil {
		r.logger.Error("failed to list rental events", slog.String("error", err.Error()))
		return nil, errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	return events, nil
}
