package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fixpoint/repairdesk/internal/api/handler"
	"github.com/fixpoint/repairdesk/internal/core/domain"
)

// RequireRole grants access only to principals whose role is in allowedRoles.
// A missing principal is 401 (the Auth middleware did not run or rejected the
// caller); a present principal with the wrong role is 403. The two are never
// conflated.
func RequireRole(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, _ := c.Get(handler.PrincipalKey).(*domain.Principal)
			if principal == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
			}
			if _, ok := allowed[principal.Role]; !ok {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}

// RequirePermission grants access when the principal's effective permission
// set, expanded from its role, contains p.
func RequirePermission(p domain.Permission) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, _ := c.Get(handler.PrincipalKey).(*domain.Principal)
			if principal == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
			}
			if !domain.HasPermission(principal.Role, p) {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
