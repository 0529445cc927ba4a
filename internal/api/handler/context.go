package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/fixpoint/repairdesk/internal/core/domain"
)

// PrincipalKey is the echo context key under which the auth middleware stores
// the request-scoped principal.
const PrincipalKey = "principal"

// ctxPrincipal extracts the principal injected by the auth middleware.
// Its presence proves the middleware ran; a protected handler reached without
// one is a wiring bug surfaced as 401, never 500.
func ctxPrincipal(c echo.Context) (*domain.Principal, error) {
	principal, _ := c.Get(PrincipalKey).(*domain.Principal)
	if principal == nil {
		return nil, domain.ErrUnauthenticated
	}
	return principal, nil
}
