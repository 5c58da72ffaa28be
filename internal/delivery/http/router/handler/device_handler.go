package handler

import (
	"log/slog"
	"net/http"

	"chime/internal/delivery/http/response"
	"chime/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DeviceHandler holds dependencies for device and permission handlers.
type DeviceHandler struct {
	uc     usecase.DeviceUsecase
	logger *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler.
func NewDeviceHandler(uc usecase.DeviceUsecase, logger *slog.Logger) *DeviceHandler {
	return &DeviceHandler{
		uc:     uc,
		logger: logger,
	}
}

// RegisterDevice handles a device registering its push token and the
// notification permission it currently holds.
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	var input *usecase.RegisterDeviceInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid device input")
	}
	if input.DeviceID == "" {
		return response.BadRequest(c, "INVALID_INPUT", "device_id is required")
	}

	device, err := h.uc.RegisterDevice(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, device, "Device registered successfully")
}

// RequestPermission triggers an explicit notification permission request.
func (h *DeviceHandler) RequestPermission(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	state, err := h.uc.RequestPermission(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"permission": string(state)}, "")
}

// ResyncPermission re-reads the authoritative permission state.
func (h *DeviceHandler) ResyncPermission(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	state, err := h.uc.ResyncPermission(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"permission": string(state)}, "")
}
