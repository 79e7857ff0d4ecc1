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
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SlavaShagalov/rentx/internal/auth/delivery"
	"github.com/SlavaShagalov/rentx/internal/auth/mocks"
	"github.com/SlavaShagalov/rentx/internal/auth/usecase"
	"github.com/SlavaShagalov/rentx/internal/models"
	"github.com/SlavaShagalov/rentx/internal/pkg/app"
	pkgErrors "github.com/SlavaShagalov/rentx/internal/pkg/errors"
	"github.com/SlavaShagalov/rentx/internal/pkg/token"
	"github.com/SlavaShagalov/rentx/internal/pkg/validation"
)

type noRevocations struct{}

func (noRevocations) IsRevoked(context.Context, string) (bool, error) { return false, nil }

func setup(t *testing.T) (*fiber.App, *mocks.MockUseCase, *token.Manager) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockUseCase(ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	manager := token.NewManager("secret", "rentx", time.Hour)

	d := delivery.New(uc, app.NewAuth(manager, noRevocations{}, logger), validation.New(), logger)

	fiberApp := fiber.New(fiber.Config{ErrorHandler: app.NewErrorHandler(logger)})
	d.AddHandlers(fiberApp.Group("/api/v1"))

	return fiberApp, uc, manager
}

func post(t *testing.T, fiberApp *fiber.App, path, body string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := fiberApp.Test(req)
	require.NoError(t, err)

	return resp
}

func TestDelivery_SignIn(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		fiberApp, uc, _ := setup(t)

		uc.EXPECT().Authenticate(gomock.Any(), usecase.AuthenticateParams{
			Email:    "valid_email@email.com",
			Password: "valid_password",
		}).Return(usecase.AuthResult{
			User:         models.User{Name: "valid_name", Email: "valid_email@email.com", Password: "hash"},
			AccessToken:  "access",
			RefreshToken: "refresh",
			ExpiresIn:    24 * time.Hour,
		}, nil)

		resp := post(t, fiberApp, "/api/v1/sessions", `{"email":"valid_email@email.com","password":"valid_password"}`)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var got delivery.SessionResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		assert.Equal(t, "access", got.Token)
		assert.Equal(t, "refresh", got.RefreshToken)
		assert.Equal(t, "Bearer", got.TokenType)
		assert.Equal(t, 86400, got.ExpiresIn)
		assert.Equal(t, delivery.SessionUser{Name: "valid_name", Email: "valid_email@email.com"}, got.User)
	})

	t.Run("wrong credentials", func(t *testing.T) {
		fiberApp, uc, _ := setup(t)

		uc.EXPECT().Authenticate(gomock.Any(), gomock.Any()).
			Return(usecase.AuthResult{}, errors.Wrap(pkgErrors.ErrWrongLoginOrPassword, "mismatch"))

		resp := post(t, fiberApp, "/api/v1/sessions", `{"email":"valid_email@email.com","password":"invalid_password"}`)
		defer resp.Body.Close()
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

		var got struct {
			Message string `json:"message"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		assert.Equal(t, "email or password incorrect", got.Message)
	})

	t.Run("not an email", func(t *testing.T) {
		fiberApp, uc, _ := setup(t)

		uc.EXPECT().Authenticate(gomock.Any(), usecase.AuthenticateParams{
			Email:    "not-an-email",
			Password: "valid_password",
		}).Return(usecase.AuthResult{}, errors.Wrap(pkgErrors.ErrWrongLoginOrPassword, "user not found"))

		resp := post(t, fiberApp, "/api/v1/sessions", `{"email":"not-an-email","password":"valid_password"}`)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("malformed json", func(t *testing.T) {
		fiberApp, _, _ := setup(t)

		resp := post(t, fiberApp, "/api/v1/sessions", `{"email":`)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestDelivery_Refresh(t *testing.T) {
	fiberApp, uc, _ := setup(t)

	uc.EXPECT().Refresh(gomock.Any(), "stale").Return(usecase.AuthResult{}, pkgErrors.ErrInvalidRefreshToken)

	resp := post(t, fiberApp, "/api/v1/sessions/refresh", `{"refresh_token":"stale"}`)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestDelivery_Logout(t *testing.T) {
	fiberApp, uc, manager := setup(t)
	user := models.User{ID: uuid.New()}

	signed, err := manager.Generate(user)
	require.NoError(t, err)

	uc.EXPECT().Logout(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, claims models.AccessClaims) error {
			assert.Equal(t, user.ID, claims.UserID)
			return nil
		})

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/sessions", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+signed)

	resp, err := fiberApp.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}
