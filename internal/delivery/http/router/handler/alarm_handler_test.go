package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"chime/internal/delivery/http/middleware"
	"chime/internal/domain/entity"
	"chime/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAlarmUsecase lets each test override only the method it exercises.
type stubAlarmUsecase struct {
	addAlarm      func(ctx context.Context, userID uuid.UUID, input *usecase.AddAlarmInput) (*entity.Alarm, error)
	deleteAlarm   func(ctx context.Context, userID, alarmID uuid.UUID) error
	nearestAlarms func(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]time.Time, error)
}

func (s *stubAlarmUsecase) AddAlarm(ctx context.Context, userID uuid.UUID, input *usecase.AddAlarmInput) (*entity.Alarm, error) {
	return s.addAlarm(ctx, userID, input)
}

func (s *stubAlarmUsecase) DeleteAlarm(ctx context.Context, userID, alarmID uuid.UUID) error {
	return s.deleteAlarm(ctx, userID, alarmID)
}

func (s *stubAlarmUsecase) GetAlarmsForRecord(context.Context, uuid.UUID, uuid.UUID) ([]*entity.Alarm, error) {
	return nil, nil
}

func (s *stubAlarmUsecase) MarkAsDone(context.Context, uuid.UUID, uuid.UUID) (*entity.Alarm, error) {
	return nil, nil
}

func (s *stubAlarmUsecase) NearestAlarms(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]time.Time, error) {
	return s.nearestAlarms(ctx, userID)
}

func (s *stubAlarmUsecase) GetNotificationHistory(context.Context, uuid.UUID, int, int) ([]*entity.NotificationRecord, error) {
	return nil, nil
}

func newAlarmTestContext(t *testing.T, method, target, body string, userID uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != uuid.Nil {
		c.Set(middleware.ContextKeyUserID, userID)
	}

	return c, rec
}

func TestAlarmHandler_AddAlarm_Success(t *testing.T) {
	userID := uuid.New()
	recordID := uuid.New()

	uc := &stubAlarmUsecase{
		addAlarm: func(_ context.Context, gotUser uuid.UUID, input *usecase.AddAlarmInput) (*entity.Alarm, error) {
			assert.Equal(t, userID, gotUser)
			assert.Equal(t, recordID, input.RecordID)

			return &entity.Alarm{ID: uuid.New(), UserID: gotUser, RecordID: input.RecordID}, nil
		},
	}
	h := NewAlarmHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	body := `{"record_id":"` + recordID.String() + `","collection":"records","label":"吃藥","trigger_at":"2026-09-01T08:00:00Z"}`
	c, rec := newAlarmTestContext(t, http.MethodPost, "/alarms", body, userID)

	require.NoError(t, h.AddAlarm(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), recordID.String())
}

func TestAlarmHandler_AddAlarm_MissingRequiredFields(t *testing.T) {
	h := NewAlarmHandler(&stubAlarmUsecase{}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec := newAlarmTestContext(t, http.MethodPost, "/alarms", `{"label":"no record"}`, uuid.New())

	require.NoError(t, h.AddAlarm(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "record_id and trigger_at are required")
}

func TestAlarmHandler_AddAlarm_Unauthenticated(t *testing.T) {
	h := NewAlarmHandler(&stubAlarmUsecase{}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, _ := newAlarmTestContext(t, http.MethodPost, "/alarms", `{}`, uuid.Nil)

	err := h.AddAlarm(c)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestAlarmHandler_DeleteAlarm_InvalidID(t *testing.T) {
	h := NewAlarmHandler(&stubAlarmUsecase{}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec := newAlarmTestContext(t, http.MethodDelete, "/alarms/not-a-uuid", "", uuid.New())
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, h.DeleteAlarm(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAlarmHandler_DeleteAlarm_Success(t *testing.T) {
	userID := uuid.New()
	alarmID := uuid.New()

	uc := &stubAlarmUsecase{
		deleteAlarm: func(_ context.Context, gotUser, gotAlarm uuid.UUID) error {
			assert.Equal(t, userID, gotUser)
			assert.Equal(t, alarmID, gotAlarm)

			return nil
		},
	}
	h := NewAlarmHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec := newAlarmTestContext(t, http.MethodDelete, "/alarms/"+alarmID.String(), "", userID)
	c.SetParamNames("id")
	c.SetParamValues(alarmID.String())

	require.NoError(t, h.DeleteAlarm(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAlarmHandler_NearestAlarms_Success(t *testing.T) {
	userID := uuid.New()
	recordID := uuid.New()
	triggerAt := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)

	uc := &stubAlarmUsecase{
		nearestAlarms: func(context.Context, uuid.UUID) (map[uuid.UUID]time.Time, error) {
			return map[uuid.UUID]time.Time{recordID: triggerAt}, nil
		},
	}
	h := NewAlarmHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec := newAlarmTestContext(t, http.MethodGet, "/alarms/nearest", "", userID)

	require.NoError(t, h.NearestAlarms(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), recordID.String())
}
