package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/fixpoint/repairdesk/internal/api/handler"
	"github.com/fixpoint/repairdesk/internal/core/domain"
	"github.com/fixpoint/repairdesk/internal/core/ports"
	"github.com/fixpoint/repairdesk/internal/core/token"
)

// Auth verifies the bearer token, rejects revoked tokens, resolves the
// account behind it and injects a request-scoped principal into the context.
// Every failure here is a 401: missing, malformed, expired, revoked and
// unknown-subject tokens are all the same "not authenticated" outcome.
func Auth(issuer *token.Issuer, users ports.AuthRepository, revoker ports.TokenRevoker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := issuer.Verify(parts[1])
			if err != nil {
				switch err {
				case token.ErrExpired:
					return echo.NewHTTPError(http.StatusUnauthorized, "token expired")
				default:
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
				}
			}

			revoked, err := revoker.IsRevoked(c.Request().Context(), claims.TokenID)
			if err != nil {
				return err
			}
			if revoked {
				return echo.NewHTTPError(http.StatusUnauthorized, "token revoked")
			}

			user, err := users.FindByID(c.Request().Context(), claims.UserID)
			if err != nil {
				// Token subject no longer resolves to an account.
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(handler.PrincipalKey, &domain.Principal{
				UserID:  user.ID,
				Email:   user.Email,
				Role:    user.Role,
				TokenID: claims.TokenID,
			})

			return next(c)
		}
	}
}
