package usecase_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"golang.org/x/crypto/bcrypt"

	authRepository "github.com/SlavaShagalov/rentx/internal/auth/repository"
	"github.com/SlavaShagalov/rentx/internal/auth/revocation"
	"github.com/SlavaShagalov/rentx/internal/auth/usecase"
	"github.com/SlavaShagalov/rentx/internal/models"
	"github.com/SlavaShagalov/rentx/internal/pkg/clock"
	pkgErrors "github.com/SlavaShagalov/rentx/internal/pkg/errors"
	pkgHasher "github.com/SlavaShagalov/rentx/internal/pkg/hasher"
	"github.com/SlavaShagalov/rentx/internal/pkg/token"
	usersRepository "github.com/SlavaShagalov/rentx/internal/users/repository"
	usersUseCase "github.com/SlavaShagalov/rentx/internal/users/usecase"
)

var validUser = usersUseCase.CreateUserParams{
	Name:          "valid_name",
	Email:         "valid_email@email.com",
	Password:      "valid_password",
	DriverLicense: "valid_driver_license",
}

type AuthenticateSuite struct {
	suite.Suite

	ctx         context.Context
	clock       *clock.Manual
	tokens      *token.Manager
	tokensRepo  *authRepository.MemoryRepository
	revocations *revocation.MemoryStore
	createUser  *usersUseCase.UseCase
	auth        *usecase.UseCase
}

func (s *AuthenticateSuite) BeforeEach(t provider.T) {
	t.Epic("accounts")
	t.Feature("authenticate user")

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	hasher := pkgHasher.NewBcryptHasher(bcrypt.MinCost)
	users := usersRepository.NewMemoryRepository()

	s.ctx = context.Background()
	s.clock = clock.NewManual(time.Now().UTC())
	s.tokens = token.NewManager("secret", "rentx", 24*time.Hour)
	s.tokensRepo = authRepository.NewMemoryRepository()
	s.revocations = revocation.NewMemoryStore()
	s.createUser = usersUseCase.New(users, logger, hasher)
	s.auth = usecase.New(users, s.tokensRepo, s.tokens, s.revocations, hasher, s.clock, 30*24*time.Hour, logger)
}

func (s *AuthenticateSuite) TestAuthenticate(t provider.T) {
	t.Title("should be able to authenticate an user")

	var user models.User
	t.WithNewStep("create user", func(sCtx provider.StepCtx) {
		var err error
		user, err = s.createUser.Create(s.ctx, validUser)
		sCtx.Require().NoError(err)
	})

	result, err := s.auth.Authenticate(s.ctx, usecase.AuthenticateParams{
		Email:    validUser.Email,
		Password: validUser.Password,
	})
	t.Require().NoError(err)
	t.Require().NotEmpty(result.AccessToken)
	t.Require().NotEmpty(result.RefreshToken)
	t.Require().Equal(validUser.Name, result.User.Name)
	t.Require().Equal(24*time.Hour, result.ExpiresIn)

	claims, err := s.tokens.Parse(result.AccessToken)
	t.Require().NoError(err)
	t.Require().Equal(user.ID, claims.UserID)
	t.Require().Equal(1, s.tokensRepo.Len())
}

func (s *AuthenticateSuite) TestNonexistentUser(t provider.T) {
	t.Title("should not be able to authenticate a nonexistent user")

	_, err := s.auth.Authenticate(s.ctx, usecase.AuthenticateParams{
		Email:    "invalid_email@email.com",
		Password: "invalid_password",
	})
	t.Require().ErrorIs(err, pkgErrors.ErrWrongLoginOrPassword)
}

func (s *AuthenticateSuite) TestIncorrectPassword(t provider.T) {
	t.Title("should not be able to authenticate with incorrect password")

	_, err := s.createUser.Create(s.ctx, validUser)
	t.Require().NoError(err)

	_, err = s.auth.Authenticate(s.ctx, usecase.AuthenticateParams{
		Email:    validUser.Email,
		Password: "invalid_password",
	})
	t.Require().ErrorIs(err, pkgErrors.ErrWrongLoginOrPassword)
}

func (s *AuthenticateSuite) TestIncorrectEmail(t provider.T) {
	t.Title("should not be able to authenticate with incorrect email")

	_, err := s.createUser.Create(s.ctx, validUser)
	t.Require().NoError(err)

	_, err = s.auth.Authenticate(s.ctx, usecase.AuthenticateParams{
		Email:    "invalid_email@email.com",
		Password: validUser.Password,
	})
	t.Require().ErrorIs(err, pkgErrors.ErrWrongLoginOrPassword)
}

func (s *AuthenticateSuite) TestRefreshRotatesToken(t provider.T) {
	t.Title("refresh token is single use")

	_, err := s.createUser.Create(s.ctx, validUser)
	t.Require().NoError(err)

	first, err := s.auth.Authenticate(s.ctx, usecase.AuthenticateParams{Email: validUser.Email, Password: validUser.Password})
	t.Require().NoError(err)

	second, err := s.auth.Refresh(s.ctx, first.RefreshToken)
	t.Require().NoError(err)
	t.Require().NotEqual(first.RefreshToken, second.RefreshToken)
	t.Require().Equal(validUser.Email, second.User.Email)

	_, err = s.auth.Refresh(s.ctx, first.RefreshToken)
	t.Require().ErrorIs(err, pkgErrors.ErrInvalidRefreshToken)
}

func (s *AuthenticateSuite) TestRefreshExpired(t provider.T) {
	t.Title("expired refresh token is rejected")

	_, err := s.createUser.Create(s.ctx, validUser)
	t.Require().NoError(err)

	result, err := s.auth.Authenticate(s.ctx, usecase.AuthenticateParams{Email: validUser.Email, Password: validUser.Password})
	t.Require().NoError(err)

	s.clock.Add(31 * 24 * time.Hour)

	_, err = s.auth.Refresh(s.ctx, result.RefreshToken)
	t.Require().ErrorIs(err, pkgErrors.ErrInvalidRefreshToken)
	t.Require().Equal(0, s.tokensRepo.Len())
}

func (s *AuthenticateSuite) TestLogout(t provider.T) {
	t.Title("logout revokes the access token and drops refresh tokens")

	_, err := s.createUser.Create(s.ctx, validUser)
	t.Require().NoError(err)

	result, err := s.auth.Authenticate(s.ctx, usecase.AuthenticateParams{Email: validUser.Email, Password: validUser.Password})
	t.Require().NoError(err)

	claims, err := s.tokens.Parse(result.AccessToken)
	t.Require().NoError(err)

	t.Require().NoError(s.auth.Logout(s.ctx, claims))

	revoked, err := s.revocations.IsRevoked(s.ctx, claims.TokenID)
	t.Require().NoError(err)
	t.Require().True(revoked)
	t.Require().Equal(0, s.tokensRepo.Len())

	_, err = s.auth.Refresh(s.ctx, result.RefreshToken)
	t.Require().ErrorIs(err, pkgErrors.ErrInvalidRefreshToken)
}

func TestAuthenticateSuite(t *testing.T) {
	suite.RunSuite(t, new(AuthenticateSuite))
}
