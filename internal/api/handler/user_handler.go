package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fixpoint/repairdesk/internal/api/envelope"
	"github.com/fixpoint/repairdesk/internal/core/ports"
)

// UserHandler serves the authenticated user's own account.
type UserHandler struct {
	authService ports.AuthService
}

func NewUserHandler(authService ports.AuthService) *UserHandler {
	return &UserHandler{authService: authService}
}

// Profile returns the caller's account.
//
// @Summary      Get own profile
// @Tags         user
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  envelope.Envelope
// @Failure      401  {object}  envelope.Envelope
// @Router       /user/profile [get]
func (h *UserHandler) Profile(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	user, err := h.authService.Profile(c.Request().Context(), principal.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, envelope.Success(http.StatusOK, "profile", map[string]any{"user": user}))
}

// UpdateProfile changes the caller's name and phone. Email and password keys
// in the payload are ignored.
//
// @Summary      Update own profile
// @Tags         user
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body      updateProfileRequest  true  "Profile fields"
// @Success      200   {object}  envelope.Envelope
// @Failure      422   {object}  envelope.Envelope
// @Router       /user/profile [put]
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	user, err := h.authService.UpdateProfile(c.Request().Context(), principal.UserID, ports.UpdateProfileInput{
		Name:  req.Name,
		Phone: req.Phone,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, envelope.Success(http.StatusOK, "profile updated", map[string]any{"user": user}))
}

// ChangePassword sets a new password after verifying the current one.
//
// @Summary      Change own password
// @Tags         user
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body      changePasswordRequest  true  "Current and new password"
// @Success      200   {object}  envelope.Envelope
// @Failure      422   {object}  envelope.Envelope
// @Router       /user/password [put]
func (h *UserHandler) ChangePassword(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	if err := h.authService.ChangePassword(c.Request().Context(), principal.UserID, req.OldPassword, req.Password); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, envelope.Success(http.StatusOK, "password updated", nil))
}
