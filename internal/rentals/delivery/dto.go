package delivery

import (
	"time"

	"github.com/SlavaShagalov/rentx/internal/models"
)

type CreateRentalDTO struct {
	CarID              string    `json:"car_id" validate:"required,uuid"`
	ExpectedReturnDate time.Time `json:"expected_return_date" validate:"required"`
}

type RentalResponse struct {
	ID                 string     `json:"id"`
	CarID              string     `json:"car_id"`
	UserID             string     `json:"user_id"`
	StartDate          time.Time  `json:"start_date"`
	EndDate            *time.Time `json:"end_date"`
	ExpectedReturnDate time.Time  `json:"expected_return_date"`
	Total              *int64     `json:"total"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

func NewRentalResponse(rental models.Rental) RentalResponse {
	return RentalResponse{
		ID:                 rental.ID.String(),
		CarID:              rental.CarID.String(),
		UserID:             rental.UserID.String(),
		StartDate:          rental.StartDate,
		EndDate:            rental.EndDate,
		ExpectedReturnDate: rental.ExpectedReturnDate,
		Total:              rental.Total,
		CreatedAt:          rental.CreatedAt,
		UpdatedAt:          rental.UpdatedAt,
	}
}

func NewRentalsResponse(rentals []models.Rental) []RentalResponse {
	result := make([]RentalResponse, 0, len(rentals))
	for _, rental := range rentals {
		result = append(result, NewRentalResponse(rental))
	}
	return result
}
