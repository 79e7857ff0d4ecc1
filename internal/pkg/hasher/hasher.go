package hasher

import (
	"context"

	"golang.org/x/crypto/bcrypt"
)

const DefaultCost = 8

type Hasher interface {
	GetHashedPassword(ctx context.Context, password string) (string, error)
	CompareHashAndPassword(ctx context.Context, hashedPassword, password string) error
}

type BcryptHasher struct {
	cost int
}

func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) GetHashedPassword(_ context.Context, password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (h *BcryptHasher) CompareHashAndPassword(_ context.Context, hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}
