package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fixpoint/repairdesk/internal/api/envelope"
	"github.com/fixpoint/repairdesk/internal/api/metrics"
	"github.com/fixpoint/repairdesk/internal/core/domain"
	"github.com/fixpoint/repairdesk/internal/core/ports"
)

// RepairHandler serves the repair-request resource. The whole resource is
// admin-gated in the router.
type RepairHandler struct {
	repairs ports.RepairService
}

func NewRepairHandler(repairs ports.RepairService) *RepairHandler {
	return &RepairHandler{repairs: repairs}
}

// @Summary   File a repair request
// @Tags      repair
// @Security  BearerAuth
// @Accept    json
// @Produce   json
// @Param     body  body      createRepairRequest  true  "Repair request details"
// @Success   201   {object}  envelope.Envelope
// @Failure   422   {object}  envelope.Envelope
// @Router    /repair-request [post]
func (h *RepairHandler) Create(c echo.Context) error {
	var req createRepairRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	request, err := h.repairs.Create(c.Request().Context(), ports.CreateRepairInput{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		DeviceBrand:   req.DeviceBrand,
		DeviceModel:   req.DeviceModel,
		Problem:       req.Problem,
		ImagePaths:    req.Images,
	})
	if err != nil {
		return err
	}

	metrics.RepairRequestsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, envelope.Success(http.StatusCreated, "repair request created", map[string]any{"repair_request": request}))
}

// @Summary   List repair requests
// @Tags      repair
// @Security  BearerAuth
// @Produce   json
// @Success   200  {object}  envelope.Envelope
// @Failure   403  {object}  envelope.Envelope
// @Router    /repair-request [get]
func (h *RepairHandler) List(c echo.Context) error {
	requests, err := h.repairs.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, envelope.Success(http.StatusOK, "repair requests", map[string]any{"repair_requests": requests}))
}

// @Summary   Get a repair request
// @Tags      repair
// @Security  BearerAuth
// @Produce   json
// @Param     id   path      string  true  "Repair request ID"
// @Success   200  {object}  envelope.Envelope
// @Failure   404  {object}  envelope.Envelope
// @Router    /repair-request/{id} [get]
func (h *RepairHandler) Get(c echo.Context) error {
	request, err := h.repairs.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, envelope.Success(http.StatusOK, "repair request", map[string]any{"repair_request": request}))
}

// @Summary   Update a repair request's status or quote
// @Tags      repair
// @Security  BearerAuth
// @Accept    json
// @Produce   json
// @Param     id    path      string               true  "Repair request ID"
// @Param     body  body      updateRepairRequest  true  "New status and optional quote"
// @Success   200   {object}  envelope.Envelope
// @Failure   404   {object}  envelope.Envelope
// @Router    /repair-request/{id} [put]
func (h *RepairHandler) Update(c echo.Context) error {
	var req updateRepairRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	request, err := h.repairs.Update(c.Request().Context(), c.Param("id"), ports.UpdateRepairInput{
		Status:     domain.RepairStatus(req.Status),
		QuoteCents: req.QuoteCents,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, envelope.Success(http.StatusOK, "repair request updated", map[string]any{"repair_request": request}))
}

// @Summary   Delete a repair request
// @Tags      repair
// @Security  BearerAuth
// @Produce   json
// @Param     id   path      string  true  "Repair request ID"
// @Success   200  {object}  envelope.Envelope
// @Failure   404  {object}  envelope.Envelope
// @Router    /repair-request/{id} [delete]
func (h *RepairHandler) Delete(c echo.Context) error {
	if err := h.repairs.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, envelope.Success(http.StatusOK, "repair request deleted", nil))
}
