package models

import (
	"time"

	"github.com/google/uuid"
)

// AccessClaims is what a validated access token tells about its bearer.
type AccessClaims struct {
	TokenID   string
	UserID    uuid.UUID
	IsAdmin   bool
	ExpiresAt time.Time
}
