package scheduler

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"chime/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingUsecase records every RunTick invocation and signals on a channel.
type recordingUsecase struct {
	mu    sync.Mutex
	users []uuid.UUID
	ticks chan uuid.UUID
}

func newRecordingUsecase() *recordingUsecase {
	return &recordingUsecase{ticks: make(chan uuid.UUID, 32)}
}

func (u *recordingUsecase) RunTick(_ context.Context, userID uuid.UUID, _ time.Time) (int, error) {
	u.mu.Lock()
	u.users = append(u.users, userID)
	u.mu.Unlock()
	u.ticks <- userID

	return 0, nil
}

func (u *recordingUsecase) tickCount() int {
	u.mu.Lock()
	defer u.mu.Unlock()

	return len(u.users)
}

// fakeIdentity is a hand-driven identity source.
type fakeIdentity struct {
	mu      sync.RWMutex
	current uuid.UUID
	changes chan uuid.UUID
}

func newFakeIdentity(userID uuid.UUID) *fakeIdentity {
	return &fakeIdentity{current: userID, changes: make(chan uuid.UUID, 8)}
}

func (f *fakeIdentity) Current() (uuid.UUID, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return f.current, f.current != uuid.Nil
}

func (f *fakeIdentity) Changes() <-chan uuid.UUID {
	return f.changes
}

func (f *fakeIdentity) set(userID uuid.UUID) {
	f.mu.Lock()
	f.current = userID
	f.mu.Unlock()
	f.changes <- userID
}

func newTestServer(uc *recordingUsecase, identity *fakeIdentity, interval time.Duration) *schedulerServer {
	return &schedulerServer{
		cfg:      &config.Config{},
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		uc:       uc,
		identity: identity,
		interval: interval,
	}
}

func waitForTick(t *testing.T, uc *recordingUsecase) uuid.UUID {
	t.Helper()

	select {
	case userID := <-uc.ticks:
		return userID
	case <-time.After(2 * time.Second):
		t.Fatal("expected a scheduler tick")

		return uuid.Nil
	}
}

func TestSchedulerServer_Serve_ImmediateFirstTick(t *testing.T) {
	userID := uuid.New()
	uc := newRecordingUsecase()
	identity := newFakeIdentity(userID)

	// A long interval proves the first tick does not wait for the ticker.
	srv := newTestServer(uc, identity, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = srv.Serve(ctx)
	}()

	got := waitForTick(t, uc)
	assert.Equal(t, userID, got)

	cancel()
	<-done
	assert.Equal(t, 1, uc.tickCount())
}

func TestSchedulerServer_Serve_PeriodicTicks(t *testing.T) {
	userID := uuid.New()
	uc := newRecordingUsecase()
	identity := newFakeIdentity(userID)

	srv := newTestServer(uc, identity, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = srv.Serve(ctx)
	}()

	// Immediate tick plus at least two interval ticks.
	waitForTick(t, uc)
	waitForTick(t, uc)
	waitForTick(t, uc)

	cancel()
	<-done
}

func TestSchedulerServer_Serve_IdleWithoutIdentity(t *testing.T) {
	uc := newRecordingUsecase()
	identity := newFakeIdentity(uuid.Nil)

	srv := newTestServer(uc, identity, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = srv.Serve(ctx)
	}()

	// Several intervals pass with no identity: no ticks.
	time.Sleep(50 * time.Millisecond)
	cancel()
	<-done

	assert.Equal(t, 0, uc.tickCount())
}

func TestSchedulerServer_Serve_ArmsOnIdentityChange(t *testing.T) {
	uc := newRecordingUsecase()
	identity := newFakeIdentity(uuid.Nil)

	srv := newTestServer(uc, identity, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = srv.Serve(ctx)
	}()

	userID := uuid.New()
	identity.set(userID)

	// Arming triggers an immediate tick for the new identity.
	got := waitForTick(t, uc)
	assert.Equal(t, userID, got)

	cancel()
	<-done
}

func TestSchedulerServer_Serve_ReArmsForNewIdentity(t *testing.T) {
	firstUser := uuid.New()
	uc := newRecordingUsecase()
	identity := newFakeIdentity(firstUser)

	srv := newTestServer(uc, identity, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = srv.Serve(ctx)
	}()

	require.Equal(t, firstUser, waitForTick(t, uc))

	secondUser := uuid.New()
	identity.set(secondUser)
	require.Equal(t, secondUser, waitForTick(t, uc))

	cancel()
	<-done
}

func TestSchedulerServer_Serve_DisarmsOnClear(t *testing.T) {
	userID := uuid.New()
	uc := newRecordingUsecase()
	identity := newFakeIdentity(userID)

	srv := newTestServer(uc, identity, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = srv.Serve(ctx)
	}()

	waitForTick(t, uc)
	identity.set(uuid.Nil)

	// Drain anything already in flight, then confirm silence.
	time.Sleep(30 * time.Millisecond)
	for len(uc.ticks) > 0 {
		<-uc.ticks
	}
	before := uc.tickCount()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, before, uc.tickCount())

	cancel()
	<-done
}
