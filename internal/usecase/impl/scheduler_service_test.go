package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"chime/internal/domain/entity"
	"chime/internal/domain/repository"
	"chime/internal/domain/service"
	mockRepo "chime/internal/mocks/repository"
	mockSvc "chime/internal/mocks/service"
	"chime/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// stubTxManager runs the transaction function directly against the supplied
// repositories, without any real transaction semantics. Good enough for
// single-observer tests; the concurrency tests use memAlarmStore instead.
type stubTxManager struct {
	factory *stubTxFactory
	err     error
}

type stubTxFactory struct {
	alarmRepo  repository.AlarmRepository
	recordRepo repository.NotificationRepository
}

func (f *stubTxFactory) NewAlarmRepository() repository.AlarmRepository {
	return f.alarmRepo
}

func (f *stubTxFactory) NewNotificationRepository() repository.NotificationRepository {
	return f.recordRepo
}

func (m *stubTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	if m.err != nil {
		return m.err
	}

	return fn(m.factory)
}

type schedulerTestDeps struct {
	txManager   *stubTxManager
	alarmRepo   *mockRepo.MockAlarmRepository
	recordRepo  *mockRepo.MockNotificationRepository
	notifier    *mockSvc.MockNotifier
	remoteStore *mockSvc.MockRemoteStore
	publisher   *mockSvc.MockEventPublisher
	nearest     *NearestIndex
}

func createTestSchedulerService(t *testing.T) (usecase.SchedulerUsecase, *schedulerTestDeps) {
	deps := &schedulerTestDeps{
		alarmRepo:   mockRepo.NewMockAlarmRepository(t),
		recordRepo:  mockRepo.NewMockNotificationRepository(t),
		notifier:    mockSvc.NewMockNotifier(t),
		remoteStore: mockSvc.NewMockRemoteStore(t),
		publisher:   mockSvc.NewMockEventPublisher(t),
		nearest:     NewNearestIndex(),
	}
	deps.txManager = &stubTxManager{
		factory: &stubTxFactory{alarmRepo: deps.alarmRepo, recordRepo: deps.recordRepo},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	svc := NewSchedulerService(
		logger,
		deps.txManager,
		deps.alarmRepo,
		deps.recordRepo,
		deps.notifier,
		deps.remoteStore,
		deps.publisher,
		deps.nearest,
	)

	return svc, deps
}

func newDueAlarm(userID uuid.UUID, triggerAt time.Time) *entity.Alarm {
	return &entity.Alarm{
		ID:         uuid.New(),
		UserID:     userID,
		RecordID:   uuid.New(),
		Collection: "records",
		Label:      "吃藥",
		Note:       "飯後半小時",
		TriggerAt:  triggerAt,
	}
}

func TestSchedulerService_RunTick_FiresDueAlarm(t *testing.T) {
	svc, deps := createTestSchedulerService(t)

	ctx := context.Background()
	userID := uuid.New()
	now := time.Now()
	alarm := newDueAlarm(userID, now.Add(-time.Minute))

	deps.alarmRepo.EXPECT().FindDueAlarms(ctx, userID, now).Return([]*entity.Alarm{alarm}, nil)
	deps.alarmRepo.EXPECT().FindAlarmByIDForUpdate(ctx, alarm.ID).Return(alarm, nil)
	deps.alarmRepo.EXPECT().MarkFired(ctx, alarm.ID).Return(nil)

	deps.notifier.EXPECT().
		Send(ctx, userID, "鬧鐘提醒:吃藥", mock.MatchedBy(func(opts *service.SendOptions) bool {
			return opts.Body == alarm.Note &&
				opts.Data["alarm_id"] == alarm.ID.String() &&
				opts.Data["record_id"] == alarm.RecordID.String()
		})).
		Return(&service.Receipt{Tier: "fcm", MessageID: "msg-1"}, nil)

	deps.recordRepo.EXPECT().
		CreateNotificationRecord(ctx, mock.MatchedBy(func(record *entity.NotificationRecord) bool {
			return record.UserID == userID &&
				record.RecordID == alarm.RecordID &&
				record.Title == "鬧鐘提醒:吃藥" &&
				record.Body == alarm.Note
		})).
		Return(nil)
	deps.remoteStore.EXPECT().SaveNotificationRecord(ctx, mock.Anything).Return(nil)

	deps.alarmRepo.EXPECT().DeleteAlarm(ctx, alarm.ID).Return(nil)
	deps.remoteStore.EXPECT().DeleteAlarm(ctx, alarm.ID).Return(nil)

	deps.publisher.EXPECT().
		PublishAlarmFired(ctx, mock.MatchedBy(func(event *service.AlarmFiredEvent) bool {
			return event.AlarmID == alarm.ID.String() &&
				event.UserID == userID.String() &&
				event.RecordID == alarm.RecordID.String()
		})).
		Return(nil)

	deps.alarmRepo.EXPECT().FindPendingAlarms(ctx, userID).Return([]*entity.Alarm{}, nil)

	fired, err := svc.RunTick(ctx, userID, now)

	require.NoError(t, err)
	assert.Equal(t, 1, fired)
}

func TestSchedulerService_RunTick_NoDueAlarms(t *testing.T) {
	svc, deps := createTestSchedulerService(t)

	ctx := context.Background()
	userID := uuid.New()
	now := time.Now()

	deps.alarmRepo.EXPECT().FindDueAlarms(ctx, userID, now).Return([]*entity.Alarm{}, nil)

	fired, err := svc.RunTick(ctx, userID, now)

	require.NoError(t, err)
	assert.Equal(t, 0, fired)
}

func TestSchedulerService_RunTick_FindDueError(t *testing.T) {
	svc, deps := createTestSchedulerService(t)

	ctx := context.Background()
	userID := uuid.New()
	now := time.Now()

	deps.alarmRepo.EXPECT().FindDueAlarms(ctx, userID, now).Return(nil, errors.New("db error"))

	fired, err := svc.RunTick(ctx, userID, now)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to find due alarms")
	assert.Equal(t, 0, fired)
}

func TestSchedulerService_RunTick_LostRaceOnReRead(t *testing.T) {
	svc, deps := createTestSchedulerService(t)

	ctx := context.Background()
	userID := uuid.New()
	now := time.Now()
	alarm := newDueAlarm(userID, now.Add(-time.Minute))

	// The due scan saw the alarm unfired, but by claim time another observer
	// has flipped the flag. The re-read under lock must prevent a second fire.
	claimedCopy := *alarm
	claimedCopy.Fired = true

	deps.alarmRepo.EXPECT().FindDueAlarms(ctx, userID, now).Return([]*entity.Alarm{alarm}, nil)
	deps.alarmRepo.EXPECT().FindAlarmByIDForUpdate(ctx, alarm.ID).Return(&claimedCopy, nil)

	fired, err := svc.RunTick(ctx, userID, now)

	require.NoError(t, err)
	assert.Equal(t, 0, fired)
}

func TestSchedulerService_RunTick_LostRaceOnMarkFired(t *testing.T) {
	svc, deps := createTestSchedulerService(t)

	ctx := context.Background()
	userID := uuid.New()
	now := time.Now()
	alarm := newDueAlarm(userID, now.Add(-time.Minute))

	deps.alarmRepo.EXPECT().FindDueAlarms(ctx, userID, now).Return([]*entity.Alarm{alarm}, nil)
	deps.alarmRepo.EXPECT().FindAlarmByIDForUpdate(ctx, alarm.ID).Return(alarm, nil)
	deps.alarmRepo.EXPECT().MarkFired(ctx, alarm.ID).Return(repository.ErrAlarmAlreadyClaimed)

	fired, err := svc.RunTick(ctx, userID, now)

	require.NoError(t, err)
	assert.Equal(t, 0, fired)
}

func TestSchedulerService_RunTick_AlarmAlreadyDeleted(t *testing.T) {
	svc, deps := createTestSchedulerService(t)

	ctx := context.Background()
	userID := uuid.New()
	now := time.Now()
	alarm := newDueAlarm(userID, now.Add(-time.Minute))

	deps.alarmRepo.EXPECT().FindDueAlarms(ctx, userID, now).Return([]*entity.Alarm{alarm}, nil)
	deps.alarmRepo.EXPECT().FindAlarmByIDForUpdate(ctx, alarm.ID).Return(nil, repository.ErrAlarmNotFound)

	fired, err := svc.RunTick(ctx, userID, now)

	require.NoError(t, err)
	assert.Equal(t, 0, fired)
}

func TestSchedulerService_RunTick_ClaimTransactionFailure(t *testing.T) {
	svc, deps := createTestSchedulerService(t)

	ctx := context.Background()
	userID := uuid.New()
	now := time.Now()
	alarm := newDueAlarm(userID, now.Add(-time.Minute))

	deps.alarmRepo.EXPECT().FindDueAlarms(ctx, userID, now).Return([]*entity.Alarm{alarm}, nil)
	deps.txManager.err = errors.New("deadlock detected")

	// The failed claim leaves the alarm unfired for the next tick; the tick
	// itself still succeeds.
	fired, err := svc.RunTick(ctx, userID, now)

	require.NoError(t, err)
	assert.Equal(t, 0, fired)
}

func TestSchedulerService_RunTick_DeliveryFailureStillRemovesAlarm(t *testing.T) {
	svc, deps := createTestSchedulerService(t)

	ctx := context.Background()
	userID := uuid.New()
	now := time.Now()
	alarm := newDueAlarm(userID, now.Add(-time.Minute))

	deps.alarmRepo.EXPECT().FindDueAlarms(ctx, userID, now).Return([]*entity.Alarm{alarm}, nil)
	deps.alarmRepo.EXPECT().FindAlarmByIDForUpdate(ctx, alarm.ID).Return(alarm, nil)
	deps.alarmRepo.EXPECT().MarkFired(ctx, alarm.ID).Return(nil)

	// Delivery fails; the claim is not given back. The record is written, the
	// alarm is removed, the event is published: at most once, never retried.
	deps.notifier.EXPECT().
		Send(ctx, userID, mock.Anything, mock.Anything).
		Return(nil, errors.New("every tier failed"))

	deps.recordRepo.EXPECT().CreateNotificationRecord(ctx, mock.Anything).Return(nil)
	deps.remoteStore.EXPECT().SaveNotificationRecord(ctx, mock.Anything).Return(nil)
	deps.alarmRepo.EXPECT().DeleteAlarm(ctx, alarm.ID).Return(nil)
	deps.remoteStore.EXPECT().DeleteAlarm(ctx, alarm.ID).Return(nil)
	deps.publisher.EXPECT().PublishAlarmFired(ctx, mock.Anything).Return(nil)
	deps.alarmRepo.EXPECT().FindPendingAlarms(ctx, userID).Return([]*entity.Alarm{}, nil)

	fired, err := svc.RunTick(ctx, userID, now)

	require.NoError(t, err)
	assert.Equal(t, 1, fired)
}

func TestSchedulerService_RunTick_PermissionSkippedStillRemovesAlarm(t *testing.T) {
	svc, deps := createTestSchedulerService(t)

	ctx := context.Background()
	userID := uuid.New()
	now := time.Now()
	alarm := newDueAlarm(userID, now.Add(-time.Minute))

	deps.alarmRepo.EXPECT().FindDueAlarms(ctx, userID, now).Return([]*entity.Alarm{alarm}, nil)
	deps.alarmRepo.EXPECT().FindAlarmByIDForUpdate(ctx, alarm.ID).Return(alarm, nil)
	deps.alarmRepo.EXPECT().MarkFired(ctx, alarm.ID).Return(nil)

	// Permission not granted: the notifier skips with (nil, nil). The rest of
	// the pipeline is unchanged.
	deps.notifier.EXPECT().Send(ctx, userID, mock.Anything, mock.Anything).Return(nil, nil)

	deps.recordRepo.EXPECT().CreateNotificationRecord(ctx, mock.Anything).Return(nil)
	deps.remoteStore.EXPECT().SaveNotificationRecord(ctx, mock.Anything).Return(nil)
	deps.alarmRepo.EXPECT().DeleteAlarm(ctx, alarm.ID).Return(nil)
	deps.remoteStore.EXPECT().DeleteAlarm(ctx, alarm.ID).Return(nil)
	deps.publisher.EXPECT().PublishAlarmFired(ctx, mock.Anything).Return(nil)
	deps.alarmRepo.EXPECT().FindPendingAlarms(ctx, userID).Return([]*entity.Alarm{}, nil)

	fired, err := svc.RunTick(ctx, userID, now)

	require.NoError(t, err)
	assert.Equal(t, 1, fired)
}

func TestSchedulerService_RunTick_RecordPersistFailureSkipsMirror(t *testing.T) {
	svc, deps := createTestSchedulerService(t)

	ctx := context.Background()
	userID := uuid.New()
	now := time.Now()
	alarm := newDueAlarm(userID, now.Add(-time.Minute))

	deps.alarmRepo.EXPECT().FindDueAlarms(ctx, userID, now).Return([]*entity.Alarm{alarm}, nil)
	deps.alarmRepo.EXPECT().FindAlarmByIDForUpdate(ctx, alarm.ID).Return(alarm, nil)
	deps.alarmRepo.EXPECT().MarkFired(ctx, alarm.ID).Return(nil)
	deps.notifier.EXPECT().
		Send(ctx, userID, mock.Anything, mock.Anything).
		Return(&service.Receipt{Tier: "webhook"}, nil)

	// Local record write fails: nothing to mirror, but the alarm is still
	// removed and the event still published.
	deps.recordRepo.EXPECT().CreateNotificationRecord(ctx, mock.Anything).Return(errors.New("disk full"))
	deps.alarmRepo.EXPECT().DeleteAlarm(ctx, alarm.ID).Return(nil)
	deps.remoteStore.EXPECT().DeleteAlarm(ctx, alarm.ID).Return(nil)
	deps.publisher.EXPECT().PublishAlarmFired(ctx, mock.Anything).Return(nil)
	deps.alarmRepo.EXPECT().FindPendingAlarms(ctx, userID).Return([]*entity.Alarm{}, nil)

	fired, err := svc.RunTick(ctx, userID, now)

	require.NoError(t, err)
	assert.Equal(t, 1, fired)
}

func TestSchedulerService_RunTick_NotYetDueAlarmUntouched(t *testing.T) {
	svc, deps := createTestSchedulerService(t)

	ctx := context.Background()
	userID := uuid.New()
	now := time.Now()

	// The due query is the single gate. A future alarm never reaches the
	// claim path because the store does not return it.
	deps.alarmRepo.EXPECT().FindDueAlarms(ctx, userID, now).Return([]*entity.Alarm{}, nil)

	fired, err := svc.RunTick(ctx, userID, now)

	require.NoError(t, err)
	assert.Equal(t, 0, fired)
}

// memAlarmStore is a mutex-serialized in-memory alarm store used to exercise
// the claim protocol under real contention. Execute holds the store lock for
// the whole transaction, mimicking the row-lock serialization the protocol
// gets from the database.
type memAlarmStore struct {
	mu     sync.Mutex
	alarms map[uuid.UUID]*entity.Alarm
}

func newMemAlarmStore(alarms ...*entity.Alarm) *memAlarmStore {
	store := &memAlarmStore{alarms: make(map[uuid.UUID]*entity.Alarm, len(alarms))}
	for _, alarm := range alarms {
		store.alarms[alarm.ID] = alarm
	}

	return store
}

func (s *memAlarmStore) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return fn(&memTxFactory{store: s})
}

type memTxFactory struct{ store *memAlarmStore }

func (f *memTxFactory) NewAlarmRepository() repository.AlarmRepository {
	return &memTxAlarmRepo{store: f.store}
}

func (f *memTxFactory) NewNotificationRepository() repository.NotificationRepository {
	return nil
}

// memTxAlarmRepo accesses the store without locking; the transaction already
// holds the lock. Only the claim-path methods are implemented.
type memTxAlarmRepo struct {
	repository.AlarmRepository
	store *memAlarmStore
}

func (r *memTxAlarmRepo) FindAlarmByIDForUpdate(_ context.Context, id uuid.UUID) (*entity.Alarm, error) {
	alarm, ok := r.store.alarms[id]
	if !ok {
		return nil, repository.ErrAlarmNotFound
	}

	copied := *alarm

	return &copied, nil
}

func (r *memTxAlarmRepo) MarkFired(_ context.Context, id uuid.UUID) error {
	alarm, ok := r.store.alarms[id]
	if !ok || alarm.Fired {
		return repository.ErrAlarmAlreadyClaimed
	}

	alarm.Fired = true

	return nil
}

// memAlarmRepo is the non-transactional view, locking per call.
type memAlarmRepo struct {
	repository.AlarmRepository
	store *memAlarmStore
}

func (r *memAlarmRepo) FindDueAlarms(_ context.Context, userID uuid.UUID, now time.Time) ([]*entity.Alarm, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var due []*entity.Alarm
	for _, alarm := range r.store.alarms {
		if alarm.UserID == userID && alarm.Due(now) {
			copied := *alarm
			due = append(due, &copied)
		}
	}

	return due, nil
}

func (r *memAlarmRepo) FindPendingAlarms(_ context.Context, userID uuid.UUID) ([]*entity.Alarm, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var pending []*entity.Alarm
	for _, alarm := range r.store.alarms {
		if alarm.UserID == userID && !alarm.Fired && !alarm.Done() {
			copied := *alarm
			pending = append(pending, &copied)
		}
	}

	return pending, nil
}

func (r *memAlarmRepo) DeleteAlarm(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	delete(r.store.alarms, id)

	return nil
}

// Counting fakes for the side-effect collaborators. Mock expectations don't
// compose well with nondeterministic interleavings, so these just count.
type countingRecordRepo struct {
	repository.NotificationRepository
	created atomic.Int64
}

func (r *countingRecordRepo) CreateNotificationRecord(_ context.Context, _ *entity.NotificationRecord) error {
	r.created.Add(1)

	return nil
}

type countingNotifier struct{ sends atomic.Int64 }

func (n *countingNotifier) Send(_ context.Context, _ uuid.UUID, _ string, _ *service.SendOptions) (*service.Receipt, error) {
	n.sends.Add(1)

	return &service.Receipt{Tier: "fcm", MessageID: "msg"}, nil
}

type countingRemoteStore struct {
	service.RemoteStore
	recordSaves  atomic.Int64
	alarmDeletes atomic.Int64
}

func (s *countingRemoteStore) SaveNotificationRecord(_ context.Context, _ *entity.NotificationRecord) error {
	s.recordSaves.Add(1)

	return nil
}

func (s *countingRemoteStore) DeleteAlarm(_ context.Context, _ uuid.UUID) error {
	s.alarmDeletes.Add(1)

	return nil
}

type countingPublisher struct{ events atomic.Int64 }

func (p *countingPublisher) PublishAlarmFired(_ context.Context, _ *service.AlarmFiredEvent) error {
	p.events.Add(1)

	return nil
}

func (p *countingPublisher) Close() error { return nil }

func TestSchedulerService_ConcurrentObservers_ExactlyOnce(t *testing.T) {
	const observers = 8
	const alarmCount = 5

	userID := uuid.New()
	now := time.Now()

	alarms := make([]*entity.Alarm, 0, alarmCount)
	for i := 0; i < alarmCount; i++ {
		alarms = append(alarms, newDueAlarm(userID, now.Add(-time.Duration(i+1)*time.Minute)))
	}
	store := newMemAlarmStore(alarms...)
	alarmRepo := &memAlarmRepo{store: store}

	notifier := &countingNotifier{}
	recordRepo := &countingRecordRepo{}
	remoteStore := &countingRemoteStore{}
	publisher := &countingPublisher{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	// Each observer gets its own service instance, as separate processes
	// would; they share only the store.
	ctx := context.Background()
	var wg sync.WaitGroup
	var totalFired atomic.Int64
	for i := 0; i < observers; i++ {
		svc := NewSchedulerService(
			logger, store, alarmRepo, recordRepo, notifier, remoteStore, publisher, NewNearestIndex(),
		)

		wg.Add(1)
		go func() {
			defer wg.Done()

			fired, err := svc.RunTick(ctx, userID, now)
			assert.NoError(t, err)
			totalFired.Add(int64(fired))
		}()
	}
	wg.Wait()

	// Every alarm fired exactly once across all observers combined.
	assert.Equal(t, int64(alarmCount), totalFired.Load())
	assert.Equal(t, int64(alarmCount), notifier.sends.Load())
	assert.Equal(t, int64(alarmCount), recordRepo.created.Load())
	assert.Equal(t, int64(alarmCount), publisher.events.Load())
	assert.Equal(t, int64(alarmCount), remoteStore.alarmDeletes.Load())

	store.mu.Lock()
	remaining := len(store.alarms)
	store.mu.Unlock()
	assert.Equal(t, 0, remaining)
}

func TestSchedulerService_RepeatedTicks_Idempotent(t *testing.T) {
	userID := uuid.New()
	now := time.Now()
	alarm := newDueAlarm(userID, now.Add(-time.Minute))

	store := newMemAlarmStore(alarm)
	alarmRepo := &memAlarmRepo{store: store}
	notifier := &countingNotifier{}
	recordRepo := &countingRecordRepo{}
	remoteStore := &countingRemoteStore{}
	publisher := &countingPublisher{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewSchedulerService(
		logger, store, alarmRepo, recordRepo, notifier, remoteStore, publisher, NewNearestIndex(),
	)

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		_, err := svc.RunTick(ctx, userID, now)
		require.NoError(t, err)
	}

	// The first tick fires and deletes the alarm; later ticks find nothing.
	assert.Equal(t, int64(1), notifier.sends.Load())
	assert.Equal(t, int64(1), recordRepo.created.Load())
	assert.Equal(t, int64(1), publisher.events.Load())
}
