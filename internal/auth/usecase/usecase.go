package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"

	"github.com/SlavaShagalov/rentx/internal/models"
	"github.com/SlavaShagalov/rentx/internal/pkg/clock"
	pkgErrors "github.com/SlavaShagalov/rentx/internal/pkg/errors"
	pkgHasher "github.com/SlavaShagalov/rentx/internal/pkg/hasher"
	"github.com/SlavaShagalov/rentx/internal/pkg/token"
)

type UseCase struct {
	users      UserRepository
	repo       Repository
	tokens     TokenManager
	revoker    Revoker
	hasher     pkgHasher.Hasher
	clock      clock.Clock
	refreshTTL time.Duration
	logger     *slog.Logger
}

func New(
	users UserRepository,
	repo Repository,
	tokens TokenManager,
	revoker Revoker,
	hasher pkgHasher.Hasher,
	clk clock.Clock,
	refreshTTL time.Duration,
	logger *slog.Logger,
) *UseCase {
	return &UseCase{
		users:      users,
		repo:       repo,
		tokens:     tokens,
		revoker:    revoker,
		hasher:     hasher,
		clock:      clk,
		refreshTTL: refreshTTL,
		logger:     logger,
	}
}

func (u *UseCase) HealthCheck(ctx context.Context) error {
	return u.repo.HealthCheck(ctx)
}

// Authenticate checks the credentials and issues a token pair. Unknown email
// and wrong password fail with the same error.
func (u *UseCase) Authenticate(ctx context.Context, params AuthenticateParams) (AuthResult, error) {
	user, err := u.users.GetByEmail(ctx, params.Email)
	if err != nil {
		if errors.Is(err, pkgErrors.ErrUserNotFound) {
			return AuthResult{}, pkgErrors.ErrWrongLoginOrPassword
		}
		return AuthResult{}, err
	}

	if err = u.hasher.CompareHashAndPassword(ctx, user.Password, params.Password); err != nil {
		return AuthResult{}, errors.Wrap(pkgErrors.ErrWrongLoginOrPassword, err.Error())
	}

	return u.issue(ctx, user)
}

// Refresh exchanges a refresh token for a new pair. The old refresh token is
// consumed.
func (u *UseCase) Refresh(ctx context.Context, refreshToken string) (AuthResult, error) {
	stored, err := u.repo.GetByRefreshToken(ctx, refreshToken)
	if err != nil {
		return AuthResult{}, err
	}

	if err = u.repo.Delete(ctx, stored.ID); err != nil {
		return AuthResult{}, err
	}

	if !u.clock.Now().Before(stored.ExpiresAt) {
		return AuthResult{}, errors.Wrap(pkgErrors.ErrInvalidRefreshToken, "expired")
	}

	user, err := u.users.GetByID(ctx, stored.UserID)
	if err != nil {
		if errors.Is(err, pkgErrors.ErrUserNotFound) {
			return AuthResult{}, errors.Wrap(pkgErrors.ErrInvalidRefreshToken, "user is gone")
		}
		return AuthResult{}, err
	}

	return u.issue(ctx, user)
}

// Logout drops every refresh token of the caller and denylists the access
// token until it would have expired anyway.
func (u *UseCase) Logout(ctx context.Context, claims models.AccessClaims) error {
	if err := u.repo.DeleteByUserID(ctx, claims.UserID); err != nil {
		return err
	}

	ttl := claims.ExpiresAt.Sub(u.clock.Now())
	if ttl <= 0 {
		return nil
	}

	if err := u.revoker.Revoke(ctx, claims.TokenID, ttl); err != nil {
		return errors.Wrap(err, "revoke access token")
	}

	u.logger.Info("user logged out", slog.String("user_id", claims.UserID.String()))

	return nil
}

func (u *UseCase) issue(ctx context.Context, user models.User) (AuthResult, error) {
	accessToken, err := u.tokens.Generate(user)
	if err != nil {
		return AuthResult{}, err
	}

	refreshToken, err := token.NewRefreshToken()
	if err != nil {
		return AuthResult{}, err
	}

	_, err = u.repo.Create(ctx, CreateTokenParams{
		UserID:       user.ID,
		RefreshToken: refreshToken,
		ExpiresAt:    u.clock.Now().Add(u.refreshTTL),
	})
	if err != nil {
		return AuthResult{}, err
	}

	return AuthResult{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    u.tokens.TTL(),
	}, nil
}
