package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID            uuid.UUID `db:"id"`
	Name          string    `db:"name"`
	Email         string    `db:"email"`
	Password      string    `db:"password"`
	DriverLicense string    `db:"driver_license"`
	IsAdmin       bool      `db:"is_admin"`
	CreatedAt     time.Time `db:"created_at"`
}

// UserToken is a stored refresh token.
type UserToken struct {
	ID           uuid.UUID `db:"id"`
	UserID       uuid.UUID `db:"user_id"`
	RefreshToken string    `db:"refresh_token"`
	ExpiresAt    time.Time `db:"expires_at"`
	CreatedAt    time.Time `db:"created_at"`
}
