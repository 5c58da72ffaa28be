// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"chime/internal/delivery/http/middleware"
	"chime/internal/delivery/http/response"
	"chime/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AlarmHandler holds dependencies for alarm-related handlers.
type AlarmHandler struct {
	uc     usecase.AlarmUsecase
	logger *slog.Logger
}

// NewAlarmHandler is the constructor for AlarmHandler, injected by Fx.
func NewAlarmHandler(uc usecase.AlarmUsecase, logger *slog.Logger) *AlarmHandler {
	return &AlarmHandler{
		uc:     uc,
		logger: logger,
	}
}

// AddAlarm handles the alarm creation request.
func (h *AlarmHandler) AddAlarm(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	var input *usecase.AddAlarmInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid alarm input")
	}
	if input.RecordID == uuid.Nil || input.TriggerAt.IsZero() {
		return response.BadRequest(c, "INVALID_INPUT", "record_id and trigger_at are required")
	}

	alarm, err := h.uc.AddAlarm(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, alarm, "Alarm created successfully")
}

// DeleteAlarm handles the alarm deletion request.
func (h *AlarmHandler) DeleteAlarm(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	alarmID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid alarm ID")
	}

	if err := h.uc.DeleteAlarm(c.Request().Context(), userID, alarmID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Alarm deleted successfully")
}

// GetAlarmsForRecord handles listing the alarms attached to a record.
func (h *AlarmHandler) GetAlarmsForRecord(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	recordID, err := uuid.Parse(c.Param("recordId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid record ID")
	}

	alarms, err := h.uc.GetAlarmsForRecord(c.Request().Context(), userID, recordID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, alarms, "")
}

// MarkAsDone handles marking an alarm's underlying task as completed.
func (h *AlarmHandler) MarkAsDone(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	alarmID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid alarm ID")
	}

	alarm, err := h.uc.MarkAsDone(c.Request().Context(), userID, alarmID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, alarm, "Alarm marked as done")
}

// NearestAlarms handles the nearest-alarm read model request.
func (h *AlarmHandler) NearestAlarms(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	nearest, err := h.uc.NearestAlarms(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nearest, "")
}

// userIDFromContext reads the user ID the auth middleware stored on the
// context.
func userIDFromContext(c echo.Context) (uuid.UUID, error) {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, "User identity missing from request")
	}

	return userID, nil
}
