package hasher

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher(t *testing.T) {
	ctx := context.Background()
	h := NewBcryptHasher(bcrypt.MinCost)

	hashed, err := h.GetHashedPassword(ctx, "valid_password")
	require.NoError(t, err)
	assert.NotEqual(t, "valid_password", hashed)

	assert.NoError(t, h.CompareHashAndPassword(ctx, hashed, "valid_password"))
	assert.ErrorIs(t, h.CompareHashAndPassword(ctx, hashed, "invalid_password"), bcrypt.ErrMismatchedHashAndPassword)
}

func TestNewBcryptHasher_FallsBackToDefaultCost(t *testing.T) {
	h := NewBcryptHasher(100)
	assert.Equal(t, DefaultCost, h.cost)
}
