package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRental_IsOpen(t *testing.T) {
	var rental Rental
	assert.True(t, rental.IsOpen())

	now := time.Now()
	rental.EndDate = &now
	assert.False(t, rental.IsOpen())
}
