package models

import (
	"time"

	"github.com/google/uuid"
)

type Rental struct {
	ID                 uuid.UUID  `db:"id"`
	CarID              uuid.UUID  `db:"car_id"`
	UserID             uuid.UUID  `db:"user_id"`
	StartDate          time.Time  `db:"start_date"`
	EndDate            *time.Time `db:"end_date"`
	ExpectedReturnDate time.Time  `db:"expected_return_date"`
	Total              *int64     `db:"total"`
	CreatedAt          time.Time  `db:"created_at"`
	UpdatedAt          time.Time  `db:"updated_at"`
}

// IsOpen reports whether the car has not been returned yet.
func (r Rental) IsOpen() bool {
	return r.EndDate == nil
}

type RentalEventKind string

const (
	RentalCreated RentalEventKind = "rental.created"
	RentalClosed  RentalEventKind = "rental.closed"
)

type RentalEvent struct {
	ID         uuid.UUID       `db:"id" json:"id"`
	RentalID   uuid.UUID       `db:"rental_id" json:"rental_id"`
	CarID      uuid.UUID       `db:"car_id" json:"car_id"`
	UserID     uuid.UUID       `db:"user_id" json:"user_id"`
	Kind       RentalEventKind `db:"kind" json:"kind"`
	Total      *int64          `db:"total" json:"total,omitempty"`
	OccurredAt time.Time       `db:"occurred_at" json:"occurred_at"`
}
