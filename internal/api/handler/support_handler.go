package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fixpoint/repairdesk/internal/api/envelope"
	"github.com/fixpoint/repairdesk/internal/core/ports"
)

type supportRequest struct {
	Name    string `json:"name"    validate:"required,min=2,max=120"`
	Email   string `json:"email"   validate:"required,email"`
	Subject string `json:"subject" validate:"required,min=2,max=191"`
	Message string `json:"message" validate:"required,min=10,max=4000"`
}

// SupportHandler serves the public contact form and its admin listing.
type SupportHandler struct {
	support ports.SupportService
}

func NewSupportHandler(support ports.SupportService) *SupportHandler {
	return &SupportHandler{support: support}
}

// @Summary  Submit a support request
// @Tags     support
// @Accept   json
// @Produce  json
// @Param    body  body      supportRequest  true  "Support request"
// @Success  201   {object}  envelope.Envelope
// @Failure  422   {object}  envelope.Envelope
// @Router   /support-request [post]
func (h *SupportHandler) Create(c echo.Context) error {
	var req supportRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	request, err := h.support.Create(c.Request().Context(), ports.SupportInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, envelope.Success(http.StatusCreated, "support request received", map[string]any{"support_request": request}))
}

// @Summary   List support requests
// @Tags      support
// @Security  BearerAuth
// @Produce   json
// @Success   200  {object}  envelope.Envelope
// @Failure   403  {object}  envelope.Envelope
// @Router    /support-request [get]
func (h *SupportHandler) List(c echo.Context) error {
	requests, err := h.support.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, envelope.Success(http.StatusOK, "support requests", map[string]any{"support_requests": requests}))
}
