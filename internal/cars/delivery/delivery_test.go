package delivery_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SlavaShagalov/rentx/internal/cars/delivery"
	"github.com/SlavaShagalov/rentx/internal/cars/mocks"
	"github.com/SlavaShagalov/rentx/internal/cars/usecase"
	"github.com/SlavaShagalov/rentx/internal/models"
	"github.com/SlavaShagalov/rentx/internal/pkg/app"
	pkgErrors "github.com/SlavaShagalov/rentx/internal/pkg/errors"
	"github.com/SlavaShagalov/rentx/internal/pkg/token"
	"github.com/SlavaShagalov/rentx/internal/pkg/validation"
)

type noRevocations struct{}

func (noRevocations) IsRevoked(context.Context, string) (bool, error) { return false, nil }

type testEnv struct {
	app        *fiber.App
	uc         *mocks.MockUseCase
	adminToken string
	userToken  string
}

func setup(t *testing.T) testEnv {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockUseCase(ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	manager := token.NewManager("secret", "rentx", time.Hour)

	d := delivery.New(uc, app.NewAuth(manager, noRevocations{}, logger), validation.New(), logger)

	fiberApp := fiber.New(fiber.Config{ErrorHandler: app.NewErrorHandler(logger)})
	d.AddHandlers(fiberApp.Group("/api/v1"))

	adminToken, err := manager.Generate(models.User{ID: uuid.New(), IsAdmin: true})
	require.NoError(t, err)
	userToken, err := manager.Generate(models.User{ID: uuid.New()})
	require.NoError(t, err)

	return testEnv{app: fiberApp, uc: uc, adminToken: adminToken, userToken: userToken}
}

func (e testEnv) do(t *testing.T, method, path, body, bearer string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	if bearer != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+bearer)
	}

	resp, err := e.app.Test(req)
	require.NoError(t, err)

	return resp
}

func TestDelivery_CreateCategory(t *testing.T) {
	body := `{"name":"SUV","description":"Sport utility vehicle"}`

	t.Run("admin", func(t *testing.T) {
		env := setup(t)
		env.uc.EXPECT().CreateCategory(gomock.Any(), usecase.CreateCategoryParams{Name: "SUV", Description: "Sport utility vehicle"}).
			Return(models.Category{ID: uuid.New(), Name: "SUV"}, nil)

		resp := env.do(t, http.MethodPost, "/api/v1/categories", body, env.adminToken)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("not admin", func(t *testing.T) {
		env := setup(t)

		resp := env.do(t, http.MethodPost, "/api/v1/categories", body, env.userToken)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("anonymous", func(t *testing.T) {
		env := setup(t)

		resp := env.do(t, http.MethodPost, "/api/v1/categories", body, "")
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("duplicate", func(t *testing.T) {
		env := setup(t)
		env.uc.EXPECT().CreateCategory(gomock.Any(), gomock.Any()).Return(models.Category{}, pkgErrors.ErrCategoryAlreadyExists)

		resp := env.do(t, http.MethodPost, "/api/v1/categories", body, env.adminToken)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})
}

func TestDelivery_CreateCar(t *testing.T) {
	categoryID := uuid.New()

	t.Run("created", func(t *testing.T) {
		env := setup(t)
		env.uc.EXPECT().CreateCar(gomock.Any(), usecase.CreateCarParams{
			Name:         "Audi A3",
			DailyRate:    140,
			LicensePlate: "ABC-1234",
			FineAmount:   100,
			Brand:        "Audi",
			CategoryID:   uuid.NullUUID{UUID: categoryID, Valid: true},
		}).Return(models.Car{
			ID:           uuid.New(),
			Name:         "Audi A3",
			Available:    true,
			LicensePlate: "ABC-1234",
			CategoryID:   uuid.NullUUID{UUID: categoryID, Valid: true},
		}, nil)

		body := `{"name":"Audi A3","daily_rate":140,"license_plate":"ABC-1234","fine_amount":100,"brand":"Audi","category_id":"` + categoryID.String() + `"}`
		resp := env.do(t, http.MethodPost, "/api/v1/cars", body, env.adminToken)
		defer resp.Body.Close()
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var got delivery.CarResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		assert.True(t, got.Available)
		require.NotNil(t, got.CategoryID)
		assert.Equal(t, categoryID.String(), *got.CategoryID)
	})

	t.Run("invalid", func(t *testing.T) {
		env := setup(t)

		resp := env.do(t, http.MethodPost, "/api/v1/cars", `{"name":"Audi A3","daily_rate":0,"category_id":"nope"}`, env.adminToken)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestDelivery_ListAvailable(t *testing.T) {
	categoryID := uuid.New()

	t.Run("filters", func(t *testing.T) {
		env := setup(t)
		env.uc.EXPECT().ListAvailable(gomock.Any(), usecase.ListFilter{
			Brand:      "Audi",
			CategoryID: uuid.NullUUID{UUID: categoryID, Valid: true},
		}).Return([]models.Car{{ID: uuid.New(), Brand: "Audi", Available: true}}, nil)

		resp := env.do(t, http.MethodGet, "/api/v1/cars/available?brand=Audi&category_id="+categoryID.String(), "", "")
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var got []delivery.CarResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		assert.Len(t, got, 1)
	})

	t.Run("bad category id", func(t *testing.T) {
		env := setup(t)

		resp := env.do(t, http.MethodGet, "/api/v1/cars/available?category_id=42", "", "")
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestDelivery_AddSpecifications(t *testing.T) {
	env := setup(t)
	carID, specID := uuid.New(), uuid.New()

	env.uc.EXPECT().AddSpecifications(gomock.Any(), carID, []uuid.UUID{specID}).
		Return(models.Car{ID: carID, Specifications: []models.Specification{{ID: specID, Name: "ABS"}}}, nil)

	resp := env.do(t, http.MethodPost, "/api/v1/cars/"+carID.String()+"/specifications",
		`{"specifications_id":["`+specID.String()+`"]}`, env.adminToken)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var got delivery.CarResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Len(t, got.Specifications, 1)
	assert.Equal(t, "ABS", got.Specifications[0].Name)
}

func TestDelivery_GetCarNotFound(t *testing.T) {
	env := setup(t)
	id := uuid.New()

	env.uc.EXPECT().GetCar(gomock.Any(), id).Return(models.Car{}, pkgErrors.ErrCarNotFound)

	resp := env.do(t, http.MethodGet, "/api/v1/cars/"+id.String(), "", "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
