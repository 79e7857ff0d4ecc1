package models

import (
	"time"

	"github.com/google/uuid"
)

type Category struct {
	ID          uuid.UUID `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
}

type Specification struct {
	ID          uuid.UUID `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
}

type Car struct {
	ID             uuid.UUID     `db:"id"`
	Name           string        `db:"name"`
	Description    string        `db:"description"`
	DailyRate      int64         `db:"daily_rate"`
	Available      bool          `db:"available"`
	LicensePlate   string        `db:"license_plate"`
	FineAmount     int64         `db:"fine_amount"`
	Brand          string        `db:"brand"`
	CategoryID     uuid.NullUUID `db:"category_id"`
	CreatedAt      time.Time     `db:"created_at"`
	Specifications []Specification
}
