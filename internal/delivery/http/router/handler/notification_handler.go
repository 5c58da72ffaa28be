package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"chime/internal/delivery/http/response"
	"chime/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// NotificationHandler holds dependencies for notification-history handlers.
type NotificationHandler struct {
	uc     usecase.AlarmUsecase
	logger *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler.
func NewNotificationHandler(uc usecase.AlarmUsecase, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetHistory handles listing the user's notification records, newest first.
func (h *NotificationHandler) GetHistory(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	limit := defaultHistoryLimit
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid limit parameter")
		}
		limit = min(parsed, maxHistoryLimit)
	}

	offset := 0
	if raw := c.QueryParam("offset"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid offset parameter")
		}
		offset = parsed
	}

	records, err := h.uc.GetNotificationHistory(c.Request().Context(), userID, limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, records, "")
}
