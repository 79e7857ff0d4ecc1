package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestToHTTP(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"plain sentinel", ErrCarUnavailable, http.StatusConflict, "car is unavailable"},
		{"wrapped with pkg/errors", errors.Wrap(ErrWrongLoginOrPassword, "bcrypt mismatch"), http.StatusUnauthorized, "email or password incorrect"},
		{"wrapped with fmt", fmt.Errorf("lookup: %w", ErrRentalNotFound), http.StatusNotFound, "rental not found"},
		{"db error hides details", errors.Wrap(ErrDb, "connection refused"), http.StatusInternalServerError, "internal server error"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "internal server error"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			code, message := ToHTTP(test.err)
			assert.Equal(t, test.code, code)
			assert.Equal(t, test.message, message)
		})
	}
}
