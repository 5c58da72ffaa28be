package identity

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"chime/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewSource_ConfiguredIdentity(t *testing.T) {
	userID := uuid.New()
	cfg := &config.Config{Scheduler: &config.SchedulerConfig{UserID: userID.String()}}

	src, err := NewSource(cfg, newDiscardLogger())
	require.NoError(t, err)

	current, ok := src.Current()
	assert.True(t, ok)
	assert.Equal(t, userID, current)
}

func TestNewSource_NoIdentityStartsIdle(t *testing.T) {
	src, err := NewSource(&config.Config{}, newDiscardLogger())
	require.NoError(t, err)

	_, ok := src.Current()
	assert.False(t, ok)
}

func TestNewSource_InvalidIdentity(t *testing.T) {
	cfg := &config.Config{Scheduler: &config.SchedulerConfig{UserID: "not-a-uuid"}}

	_, err := NewSource(cfg, newDiscardLogger())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid scheduler.userId")
}

func TestSource_Set_NotifiesWatcher(t *testing.T) {
	src, err := NewSource(&config.Config{}, newDiscardLogger())
	require.NoError(t, err)
	source := src.(*Source)

	userID := uuid.New()
	source.Set(userID)

	select {
	case got := <-src.Changes():
		assert.Equal(t, userID, got)
	case <-time.After(time.Second):
		t.Fatal("expected an identity change notification")
	}

	current, ok := src.Current()
	assert.True(t, ok)
	assert.Equal(t, userID, current)
}

func TestSource_Set_ClearDisarms(t *testing.T) {
	userID := uuid.New()
	cfg := &config.Config{Scheduler: &config.SchedulerConfig{UserID: userID.String()}}
	src, err := NewSource(cfg, newDiscardLogger())
	require.NoError(t, err)
	source := src.(*Source)

	source.Set(uuid.Nil)

	select {
	case got := <-src.Changes():
		assert.Equal(t, uuid.Nil, got)
	case <-time.After(time.Second):
		t.Fatal("expected a clear notification")
	}

	_, ok := src.Current()
	assert.False(t, ok)
}

func TestSource_Set_UnchangedIdentityIsNoop(t *testing.T) {
	userID := uuid.New()
	cfg := &config.Config{Scheduler: &config.SchedulerConfig{UserID: userID.String()}}
	src, err := NewSource(cfg, newDiscardLogger())
	require.NoError(t, err)
	source := src.(*Source)

	source.Set(userID)

	select {
	case <-src.Changes():
		t.Fatal("unchanged identity must not notify")
	default:
	}
}
