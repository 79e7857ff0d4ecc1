package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

var httpCodes = map[error]int{
	ErrDb:                         http.StatusInternalServerError,
	ErrInvalidRequest:             http.StatusBadRequest,
	ErrUnauthorized:               http.StatusUnauthorized,
	ErrForbidden:                  http.StatusForbidden,
	ErrGetHashedPassword:          http.StatusInternalServerError,
	ErrUserNotFound:               http.StatusNotFound,
	ErrUserAlreadyExists:          http.StatusConflict,
	ErrWrongLoginOrPassword:       http.StatusUnauthorized,
	ErrInvalidRefreshToken:        http.StatusUnauthorized,
	ErrTokenRevoked:               http.StatusUnauthorized,
	ErrCarNotFound:                http.StatusNotFound,
	ErrCarAlreadyExists:           http.StatusConflict,
	ErrCategoryNotFound:           http.StatusNotFound,
	ErrCategoryAlreadyExists:      http.StatusConflict,
	ErrSpecificationNotFound:      http.StatusNotFound,
	ErrSpecificationAlreadyExists: http.StatusConflict,
	ErrRentalNotFound:             http.StatusNotFound,
	ErrRentalClosed:               http.StatusConflict,
	ErrCarUnavailable:             http.StatusConflict,
	ErrUserHasOpenRental:          http.StatusConflict,
	ErrInvalidReturnDate:          http.StatusBadRequest,
}

// ToHTTP returns the status code and the public message for err.
// Unknown errors become 500 with a generic message.
func ToHTTP(err error) (int, string) {
	cause := errors.Cause(err)
	if code, ok := httpCodes[cause]; ok {
		if code == http.StatusInternalServerError {
			return code, "internal server error"
		}
		return code, cause.Error()
	}

	for target, code := range httpCodes {
		if errors.Is(err, target) {
			if code == http.StatusInternalServerError {
				return code, "internal server error"
			}
			return code, target.Error()
		}
	}

	return http.StatusInternalServerError, "internal server error"
}
