package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fixpoint/repairdesk/internal/api/envelope"
	"github.com/fixpoint/repairdesk/internal/api/metrics"
	"github.com/fixpoint/repairdesk/internal/core/domain"
	"github.com/fixpoint/repairdesk/internal/core/ports"
)

type AuthHandler struct {
	authService  ports.AuthService
	resetService ports.ResetService
}

func NewAuthHandler(authService ports.AuthService, resetService ports.ResetService) *AuthHandler {
	return &AuthHandler{authService: authService, resetService: resetService}
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  envelope.Envelope
// @Failure      422   {object}  envelope.Envelope
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	user, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
	})
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.Inc()
	return c.JSON(http.StatusCreated, envelope.Success(http.StatusCreated, "account created", map[string]any{"user": user}))
}

// Login authenticates a user and returns a bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  envelope.Envelope
// @Failure      400   {object}  envelope.Envelope
// @Failure      401   {object}  envelope.Envelope
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	res, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		// An unknown email and a wrong password are distinct outcomes,
		// each keyed to its own field.
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			metrics.LoginsTotal.WithLabelValues("unknown_email").Inc()
			return c.JSON(http.StatusBadRequest, envelope.Error(http.StatusBadRequest, "login failed",
				map[string][]string{"email": {"no account exists with this email"}}))
		case errors.Is(err, domain.ErrInvalidCredentials):
			metrics.LoginsTotal.WithLabelValues("bad_password").Inc()
			return c.JSON(http.StatusUnauthorized, envelope.Error(http.StatusUnauthorized, "login failed",
				map[string][]string{"password": {"the password is incorrect"}}))
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, envelope.Success(http.StatusOK, "login successful", loginResponse{
		User:      res.User,
		Token:     res.Token,
		ExpiresIn: res.ExpiresIn,
	}))
}

// Logout revokes the presented bearer token.
//
// @Summary      Logout
// @Tags         auth
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  envelope.Envelope
// @Failure      401  {object}  envelope.Envelope
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	if err := h.authService.Logout(c.Request().Context(), principal); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, envelope.Success(http.StatusOK, "logged out", nil))
}

// RequestReset starts a password reset for the given email.
//
// @Summary      Request a password reset
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      resetRequestRequest  true  "Account email"
// @Success      200   {object}  envelope.Envelope
// @Router       /auth/reset-password [post]
func (h *AuthHandler) RequestReset(c echo.Context) error {
	var req resetRequestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	if err := h.resetService.Request(c.Request().Context(), req.Email); err != nil {
		return err
	}

	metrics.ResetsRequestedTotal.Inc()
	return c.JSON(http.StatusOK, envelope.Success(http.StatusOK, "password reset email sent", nil))
}

// ConsumeReset redeems a reset token and sets a new password.
//
// @Summary      Consume a password reset token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      resetConsumeRequest  true  "Reset token and new password"
// @Success      200   {object}  envelope.Envelope
// @Failure      422   {object}  envelope.Envelope
// @Router       /auth/reset-password [put]
func (h *AuthHandler) ConsumeReset(c echo.Context) error {
	var req resetConsumeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	if err := h.resetService.Consume(c.Request().Context(), req.Email, req.Token, req.Password); err != nil {
		metrics.ResetsConsumedTotal.WithLabelValues("failure").Inc()
		return err
	}

	metrics.ResetsConsumedTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, envelope.Success(http.StatusOK, "password has been reset", nil))
}
