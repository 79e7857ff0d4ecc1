package app

import (
	"context"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"github.com/SlavaShagalov/rentx/internal/models"
	pkgErrors "github.com/SlavaShagalov/rentx/internal/pkg/errors"
)

type ctxKey string

const claimsKey ctxKey = "claims"

type TokenParser interface {
	Parse(tokenString string) (models.AccessClaims, error)
}

type RevocationChecker interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// NewAuth create auth middleware. The bearer token must be valid and not
// revoked; its claims are stored in the request context.
func NewAuth(parser TokenParser, revoked RevocationChecker, logger *slog.Logger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		header := ctx.Get(fiber.HeaderAuthorization)
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			return errors.Wrap(pkgErrors.ErrUnauthorized, "missing bearer token")
		}

		claims, err := parser.Parse(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			logger.Debug("reject token", slog.String("error", err.Error()))
			return err
		}

		isRevoked, err := revoked.IsRevoked(ctx.UserContext(), claims.TokenID)
		if err != nil {
			return err
		}
		if isRevoked {
			return pkgErrors.ErrTokenRevoked
		}

		ctx.Locals(string(claimsKey), claims)
		ctx.SetUserContext(context.WithValue(ctx.UserContext(), claimsKey, claims))

		return ctx.Next()
	}
}

// AdminOnly must run after NewAuth.
func AdminOnly() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		claims, ok := ClaimsFromCtx(ctx)
		if !ok {
			return pkgErrors.ErrUnauthorized
		}
		if !claims.IsAdmin {
			return errors.Wrap(pkgErrors.ErrForbidden, "admin role required")
		}

		return ctx.Next()
	}
}

func ClaimsFromCtx(ctx *fiber.Ctx) (models.AccessClaims, bool) {
	claims, ok := ctx.Locals(string(claimsKey)).(models.AccessClaims)
	return claims, ok
}

func ClaimsFromContext(ctx context.Context) (models.AccessClaims, bool) {
	claims, ok := ctx.Value(claimsKey).(models.AccessClaims)
	return claims, ok
}
