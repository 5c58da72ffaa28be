package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"chime/internal/domain/entity"
	domainerrors "chime/internal/domain/errors"
	"chime/internal/domain/repository"
	mockRepo "chime/internal/mocks/repository"
	mockSvc "chime/internal/mocks/service"
	"chime/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestAlarmService(t *testing.T) (
	usecase.AlarmUsecase,
	*mockRepo.MockAlarmRepository,
	*mockRepo.MockNotificationRepository,
	*mockSvc.MockRemoteStore,
	*NearestIndex,
) {
	alarmRepo := mockRepo.NewMockAlarmRepository(t)
	recordRepo := mockRepo.NewMockNotificationRepository(t)
	remoteStore := mockSvc.NewMockRemoteStore(t)
	nearest := NewNearestIndex()
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	svc := NewAlarmService(logger, alarmRepo, recordRepo, remoteStore, nearest)

	return svc, alarmRepo, recordRepo, remoteStore, nearest
}

func TestAlarmService_AddAlarm_Success(t *testing.T) {
	svc, alarmRepo, _, remoteStore, nearest := createTestAlarmService(t)

	ctx := context.Background()
	userID := uuid.New()
	recordID := uuid.New()
	triggerAt := time.Now().Add(time.Hour)

	var created *entity.Alarm
	alarmRepo.EXPECT().
		CreateAlarm(ctx, mock.MatchedBy(func(alarm *entity.Alarm) bool {
			created = alarm
			return alarm.UserID == userID && alarm.RecordID == recordID && !alarm.Fired
		})).
		Return(nil)
	remoteStore.EXPECT().SaveAlarm(ctx, mock.Anything).Return(nil)
	alarmRepo.EXPECT().
		FindPendingAlarms(ctx, userID).
		RunAndReturn(func(context.Context, uuid.UUID) ([]*entity.Alarm, error) {
			return []*entity.Alarm{created}, nil
		})

	alarm, err := svc.AddAlarm(ctx, userID, &usecase.AddAlarmInput{
		RecordID:   recordID,
		Collection: "records",
		Label:      "吃藥",
		TriggerAt:  triggerAt,
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, alarm.ID)
	assert.Equal(t, userID, alarm.UserID)
	assert.True(t, alarm.TriggerAt.Equal(triggerAt))

	// The read model picked up the new alarm.
	nearestAt, ok := nearest.Nearest(userID, recordID)
	require.True(t, ok)
	assert.True(t, nearestAt.Equal(triggerAt))
}

func TestAlarmService_AddAlarm_ClientSuppliedID(t *testing.T) {
	svc, alarmRepo, _, remoteStore, _ := createTestAlarmService(t)

	ctx := context.Background()
	userID := uuid.New()
	clientID := uuid.New()

	alarmRepo.EXPECT().
		CreateAlarm(ctx, mock.MatchedBy(func(alarm *entity.Alarm) bool {
			return alarm.ID == clientID
		})).
		Return(nil)
	remoteStore.EXPECT().SaveAlarm(ctx, mock.Anything).Return(nil)
	alarmRepo.EXPECT().FindPendingAlarms(ctx, userID).Return([]*entity.Alarm{}, nil)

	alarm, err := svc.AddAlarm(ctx, userID, &usecase.AddAlarmInput{
		ID:        &clientID,
		RecordID:  uuid.New(),
		Label:     "回診",
		TriggerAt: time.Now().Add(time.Hour),
	})

	require.NoError(t, err)
	assert.Equal(t, clientID, alarm.ID)
}

func TestAlarmService_AddAlarm_MirrorFailureTolerated(t *testing.T) {
	svc, alarmRepo, _, remoteStore, _ := createTestAlarmService(t)

	ctx := context.Background()
	userID := uuid.New()

	alarmRepo.EXPECT().CreateAlarm(ctx, mock.Anything).Return(nil)
	// The local write committed; a failed mirror is logged and swallowed.
	remoteStore.EXPECT().SaveAlarm(ctx, mock.Anything).Return(errors.New("firestore unavailable"))
	alarmRepo.EXPECT().FindPendingAlarms(ctx, userID).Return([]*entity.Alarm{}, nil)

	alarm, err := svc.AddAlarm(ctx, userID, &usecase.AddAlarmInput{
		RecordID:  uuid.New(),
		Label:     "量血壓",
		TriggerAt: time.Now().Add(time.Hour),
	})

	require.NoError(t, err)
	assert.NotNil(t, alarm)
}

func TestAlarmService_AddAlarm_CreateError(t *testing.T) {
	svc, alarmRepo, _, _, _ := createTestAlarmService(t)

	ctx := context.Background()
	userID := uuid.New()

	alarmRepo.EXPECT().CreateAlarm(ctx, mock.Anything).Return(errors.New("db error"))

	alarm, err := svc.AddAlarm(ctx, userID, &usecase.AddAlarmInput{
		RecordID:  uuid.New(),
		TriggerAt: time.Now().Add(time.Hour),
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create alarm")
	assert.Nil(t, alarm)
}

func TestAlarmService_AddAlarm_IdentityRequired(t *testing.T) {
	svc, _, _, _, _ := createTestAlarmService(t)

	alarm, err := svc.AddAlarm(context.Background(), uuid.Nil, &usecase.AddAlarmInput{
		RecordID:  uuid.New(),
		TriggerAt: time.Now().Add(time.Hour),
	})

	assert.ErrorIs(t, err, domainerrors.ErrIdentityRequired)
	assert.Nil(t, alarm)
}

func TestAlarmService_DeleteAlarm_Success(t *testing.T) {
	svc, alarmRepo, _, remoteStore, _ := createTestAlarmService(t)

	ctx := context.Background()
	userID := uuid.New()
	alarmID := uuid.New()

	alarmRepo.EXPECT().
		FindAlarmByID(ctx, alarmID).
		Return(&entity.Alarm{ID: alarmID, UserID: userID}, nil)
	alarmRepo.EXPECT().DeleteAlarm(ctx, alarmID).Return(nil)
	remoteStore.EXPECT().DeleteAlarm(ctx, alarmID).Return(nil)
	alarmRepo.EXPECT().FindPendingAlarms(ctx, userID).Return([]*entity.Alarm{}, nil)

	err := svc.DeleteAlarm(ctx, userID, alarmID)

	require.NoError(t, err)
}

func TestAlarmService_DeleteAlarm_NotFound(t *testing.T) {
	svc, alarmRepo, _, _, _ := createTestAlarmService(t)

	ctx := context.Background()
	userID := uuid.New()
	alarmID := uuid.New()

	alarmRepo.EXPECT().FindAlarmByID(ctx, alarmID).Return(nil, repository.ErrAlarmNotFound)

	err := svc.DeleteAlarm(ctx, userID, alarmID)

	assert.ErrorIs(t, err, domainerrors.ErrAlarmNotFound)
}

func TestAlarmService_DeleteAlarm_NotOwner(t *testing.T) {
	svc, alarmRepo, _, _, _ := createTestAlarmService(t)

	ctx := context.Background()
	userID := uuid.New()
	alarmID := uuid.New()

	alarmRepo.EXPECT().
		FindAlarmByID(ctx, alarmID).
		Return(&entity.Alarm{ID: alarmID, UserID: uuid.New()}, nil)

	err := svc.DeleteAlarm(ctx, userID, alarmID)

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestAlarmService_DeleteAlarm_MirrorFailureTolerated(t *testing.T) {
	svc, alarmRepo, _, remoteStore, _ := createTestAlarmService(t)

	ctx := context.Background()
	userID := uuid.New()
	alarmID := uuid.New()

	alarmRepo.EXPECT().
		FindAlarmByID(ctx, alarmID).
		Return(&entity.Alarm{ID: alarmID, UserID: userID}, nil)
	alarmRepo.EXPECT().DeleteAlarm(ctx, alarmID).Return(nil)
	remoteStore.EXPECT().DeleteAlarm(ctx, alarmID).Return(errors.New("firestore unavailable"))
	alarmRepo.EXPECT().FindPendingAlarms(ctx, userID).Return([]*entity.Alarm{}, nil)

	err := svc.DeleteAlarm(ctx, userID, alarmID)

	require.NoError(t, err)
}

func TestAlarmService_GetAlarmsForRecord(t *testing.T) {
	svc, alarmRepo, _, _, _ := createTestAlarmService(t)

	ctx := context.Background()
	userID := uuid.New()
	recordID := uuid.New()
	expected := []*entity.Alarm{{ID: uuid.New(), UserID: userID, RecordID: recordID}}

	alarmRepo.EXPECT().FindAlarmsByRecord(ctx, userID, recordID).Return(expected, nil)

	alarms, err := svc.GetAlarmsForRecord(ctx, userID, recordID)

	require.NoError(t, err)
	assert.Equal(t, expected, alarms)
}

func TestAlarmService_MarkAsDone_Success(t *testing.T) {
	svc, alarmRepo, _, remoteStore, _ := createTestAlarmService(t)

	ctx := context.Background()
	userID := uuid.New()
	alarmID := uuid.New()

	alarmRepo.EXPECT().
		FindAlarmByID(ctx, alarmID).
		Return(&entity.Alarm{ID: alarmID, UserID: userID, TriggerAt: time.Now().Add(time.Hour)}, nil)
	alarmRepo.EXPECT().MarkDone(ctx, alarmID, mock.Anything).Return(nil)
	remoteStore.EXPECT().
		SaveAlarm(ctx, mock.MatchedBy(func(alarm *entity.Alarm) bool {
			return alarm.DoneAt != nil
		})).
		Return(nil)
	alarmRepo.EXPECT().FindPendingAlarms(ctx, userID).Return([]*entity.Alarm{}, nil)

	alarm, err := svc.MarkAsDone(ctx, userID, alarmID)

	require.NoError(t, err)
	require.NotNil(t, alarm.DoneAt)
	// Done is a completion mark, not a claim: the fired flag is untouched.
	assert.False(t, alarm.Fired)
}

func TestAlarmService_MarkAsDone_NotOwner(t *testing.T) {
	svc, alarmRepo, _, _, _ := createTestAlarmService(t)

	ctx := context.Background()
	userID := uuid.New()
	alarmID := uuid.New()

	alarmRepo.EXPECT().
		FindAlarmByID(ctx, alarmID).
		Return(&entity.Alarm{ID: alarmID, UserID: uuid.New()}, nil)

	alarm, err := svc.MarkAsDone(ctx, userID, alarmID)

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	assert.Nil(t, alarm)
}

func TestAlarmService_MarkAsDone_NotFound(t *testing.T) {
	svc, alarmRepo, _, _, _ := createTestAlarmService(t)

	ctx := context.Background()
	userID := uuid.New()
	alarmID := uuid.New()

	alarmRepo.EXPECT().FindAlarmByID(ctx, alarmID).Return(nil, repository.ErrAlarmNotFound)

	alarm, err := svc.MarkAsDone(ctx, userID, alarmID)

	assert.ErrorIs(t, err, domainerrors.ErrAlarmNotFound)
	assert.Nil(t, alarm)
}

func TestAlarmService_NearestAlarms_ServesWarmSnapshot(t *testing.T) {
	svc, _, _, _, nearest := createTestAlarmService(t)

	ctx := context.Background()
	userID := uuid.New()
	recordID := uuid.New()
	triggerAt := time.Now().Add(time.Hour)

	// Warm index: no repository call expected.
	nearest.Recompute(userID, []*entity.Alarm{
		{ID: uuid.New(), UserID: userID, RecordID: recordID, TriggerAt: triggerAt},
	})

	snapshot, err := svc.NearestAlarms(ctx, userID)

	require.NoError(t, err)
	require.Len(t, snapshot, 1)
	assert.True(t, snapshot[recordID].Equal(triggerAt))
}

func TestAlarmService_NearestAlarms_PerUserIsolation(t *testing.T) {
	svc, alarmRepo, _, _, nearest := createTestAlarmService(t)

	ctx := context.Background()
	userA := uuid.New()
	userB := uuid.New()
	recordA := uuid.New()
	recordB := uuid.New()

	// User A's slice is warm from a mutation. User B's read must not be
	// served from it; B gets its own recompute from the store.
	nearest.Recompute(userA, []*entity.Alarm{
		{ID: uuid.New(), UserID: userA, RecordID: recordA, TriggerAt: time.Now().Add(time.Hour)},
	})

	triggerB := time.Now().Add(2 * time.Hour)
	alarmRepo.EXPECT().
		FindPendingAlarms(ctx, userB).
		Return([]*entity.Alarm{
			{ID: uuid.New(), UserID: userB, RecordID: recordB, TriggerAt: triggerB},
		}, nil)

	snapshot, err := svc.NearestAlarms(ctx, userB)

	require.NoError(t, err)
	require.Len(t, snapshot, 1)
	assert.NotContains(t, snapshot, recordA)
	assert.True(t, snapshot[recordB].Equal(triggerB))
}

func TestAlarmService_NearestAlarms_EmptyPendingSetStaysWarm(t *testing.T) {
	svc, alarmRepo, _, _, _ := createTestAlarmService(t)

	ctx := context.Background()
	userID := uuid.New()

	// A user with zero pending alarms is recomputed once, not on every read.
	alarmRepo.EXPECT().FindPendingAlarms(ctx, userID).Return([]*entity.Alarm{}, nil).Once()

	snapshot, err := svc.NearestAlarms(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, snapshot)

	snapshot, err = svc.NearestAlarms(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, snapshot)
}

func TestAlarmService_NearestAlarms_LazyRecompute(t *testing.T) {
	svc, alarmRepo, _, _, _ := createTestAlarmService(t)

	ctx := context.Background()
	userID := uuid.New()
	recordID := uuid.New()
	early := time.Now().Add(30 * time.Minute)
	late := time.Now().Add(2 * time.Hour)

	// Cold index: a fresh process rebuilds from the store before answering.
	alarmRepo.EXPECT().
		FindPendingAlarms(ctx, userID).
		Return([]*entity.Alarm{
			{ID: uuid.New(), UserID: userID, RecordID: recordID, TriggerAt: late},
			{ID: uuid.New(), UserID: userID, RecordID: recordID, TriggerAt: early},
		}, nil)

	snapshot, err := svc.NearestAlarms(ctx, userID)

	require.NoError(t, err)
	require.Len(t, snapshot, 1)
	assert.True(t, snapshot[recordID].Equal(early))
}

func TestAlarmService_GetNotificationHistory(t *testing.T) {
	svc, _, recordRepo, _, _ := createTestAlarmService(t)

	ctx := context.Background()
	userID := uuid.New()
	expected := []*entity.NotificationRecord{{ID: uuid.New(), UserID: userID}}

	recordRepo.EXPECT().FindRecordsByUser(ctx, userID, 20, 0).Return(expected, nil)

	records, err := svc.GetNotificationHistory(ctx, userID, 20, 0)

	require.NoError(t, err)
	assert.Equal(t, expected, records)
}

func TestAlarmService_GetNotificationHistory_Error(t *testing.T) {
	svc, _, recordRepo, _, _ := createTestAlarmService(t)

	ctx := context.Background()
	userID := uuid.New()

	recordRepo.EXPECT().FindRecordsByUser(ctx, userID, 20, 0).Return(nil, errors.New("db error"))

	records, err := svc.GetNotificationHistory(ctx, userID, 20, 0)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to find notification history")
	assert.Nil(t, records)
}
