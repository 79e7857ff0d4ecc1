package delivery

import (
	"time"

	"github.com/SlavaShagalov/rentx/internal/models"
)

type CreateUserDTO struct {
	Name          string `json:"name" validate:"required,max=255"`
	Email         string `json:"email" validate:"required,email,max=255"`
	Password      string `json:"password" validate:"required,min=6,max=72"`
	DriverLicense string `json:"driver_license" validate:"required,max=64"`
}

type UserResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	DriverLicense string    `json:"driver_license"`
	IsAdmin       bool      `json:"is_admin"`
	CreatedAt     time.Time `json:"created_at"`
}

func NewUserResponse(user models.User) UserResponse {
	return UserResponse{
		ID:            user.ID.String(),
		Name:          user.Name,
		Email:         user.Email,
		DriverLicense: user.DriverLicense,
		IsAdmin:       user.IsAdmin,
		CreatedAt:     user.CreatedAt,
	}
}
