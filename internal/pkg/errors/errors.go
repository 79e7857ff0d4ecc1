package errors

import "github.com/pkg/errors"

var (
	ErrDb                = errors.New("database error")
	ErrInvalidRequest    = errors.New("invalid request")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrForbidden         = errors.New("forbidden")
	ErrGetHashedPassword = errors.New("failed to get hashed password")

	// users & auth
	ErrUserNotFound         = errors.New("user not found")
	ErrUserAlreadyExists    = errors.New("user already exists")
	ErrWrongLoginOrPassword = errors.New("email or password incorrect")
	ErrInvalidRefreshToken  = errors.New("invalid refresh token")
	ErrTokenRevoked         = errors.New("token revoked")

	// cars
	ErrCarNotFound                = errors.New("car not found")
	ErrCarAlreadyExists           = errors.New("car already exists")
	ErrCategoryNotFound           = errors.New("category not found")
	ErrCategoryAlreadyExists      = errors.New("category already exists")
	ErrSpecificationNotFound      = errors.New("specification not found")
	ErrSpecificationAlreadyExists = errors.New("specification already exists")

	// rentals
	ErrRentalNotFound    = errors.New("rental not found")
	ErrRentalClosed      = errors.New("rental already closed")
	ErrCarUnavailable    = errors.New("car is unavailable")
	ErrUserHasOpenRental = errors.New("there is a rental in progress for user")
	ErrInvalidReturnDate = errors.New("invalid return time")
)
