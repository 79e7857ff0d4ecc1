package delivery

import (
	"time"

	"github.com/SlavaShagalov/rentx/internal/models"
)

type CreateCategoryDTO struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description" validate:"max=1024"`
}

type CreateSpecificationDTO struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description" validate:"max=1024"`
}

type CreateCarDTO struct {
	Name         string `json:"name" validate:"required,max=255"`
	Description  string `json:"description" validate:"max=1024"`
	DailyRate    int64  `json:"daily_rate" validate:"gt=0"`
	LicensePlate string `json:"license_plate" validate:"required,max=32"`
	FineAmount   int64  `json:"fine_amount" validate:"gte=0"`
	Brand        string `json:"brand" validate:"required,max=255"`
	CategoryID   string `json:"category_id" validate:"omitempty,uuid"`
}

type AddSpecificationsDTO struct {
	SpecificationIDs []string `json:"specifications_id" validate:"required,min=1,dive,uuid"`
}

type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewCategoryResponse(category models.Category) CategoryResponse {
	return CategoryResponse{
		ID:          category.ID.String(),
		Name:        category.Name,
		Description: category.Description,
		CreatedAt:   category.CreatedAt,
	}
}

type SpecificationResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewSpecificationResponse(specification models.Specification) SpecificationResponse {
	return SpecificationResponse{
		ID:          specification.ID.String(),
		Name:        specification.Name,
		Description: specification.Description,
		CreatedAt:   specification.CreatedAt,
	}
}

type CarResponse struct {
	ID             string                  `json:"id"`
	Name           string                  `json:"name"`
	Description    string                  `json:"description"`
	DailyRate      int64                   `json:"daily_rate"`
	Available      bool                    `json:"available"`
	LicensePlate   string                  `json:"license_plate"`
	FineAmount     int64                   `json:"fine_amount"`
	Brand          string                  `json:"brand"`
	CategoryID     *string                 `json:"category_id"`
	CreatedAt      time.Time               `json:"created_at"`
	Specifications []SpecificationResponse `json:"specifications,omitempty"`
}

func NewCarResponse(car models.Car) CarResponse {
	resp := CarResponse{
		ID:           car.ID.String(),
		Name:         car.Name,
		Description:  car.Description,
		DailyRate:    car.DailyRate,
		Available:    car.Available,
		LicensePlate: car.LicensePlate,
		FineAmount:   car.FineAmount,
		Brand:        car.Brand,
		CreatedAt:    car.CreatedAt,
	}
	if car.CategoryID.Valid {
		categoryID := car.CategoryID.UUID.String()
		resp.CategoryID = &categoryID
	}
	for _, specification := range car.Specifications {
		resp.Specifications = append(resp.Specifications, NewSpecificationResponse(specification))
	}
	return resp
}

func mapSlice[T, R any](items []T, fn func(T) R) []R {
	result := make([]R, 0, len(items))
	for _, item := range items {
		result = append(result, fn(item))
	}
	return result
}
