// Package impl contains the concrete implementations of the use case layer.
package impl

import (
	"maps"
	"sync"
	"time"

	"chime/internal/domain/entity"

	"github.com/google/uuid"
)

// NearestIndex is the derived read model mapping, per user, each record to the
// earliest pending trigger time among its alarms. Each user's slice is
// recomputed from that user's committed alarm set after every mutation, never
// patched incrementally, so it can't drift from the store. Keying by user
// keeps one user's recompute from replacing another user's snapshot.
//
// Reads are served from the in-memory snapshot (pull model); Subscribe offers
// a push model for reactive consumers.
type NearestIndex struct {
	mu          sync.RWMutex
	nearest     map[uuid.UUID]map[uuid.UUID]time.Time
	subscribers map[uuid.UUID][]chan map[uuid.UUID]time.Time
}

// NewNearestIndex is the constructor for NearestIndex.
func NewNearestIndex() *NearestIndex {
	return &NearestIndex{
		nearest:     make(map[uuid.UUID]map[uuid.UUID]time.Time),
		subscribers: make(map[uuid.UUID][]chan map[uuid.UUID]time.Time),
	}
}

// Recompute rebuilds one user's index from that user's full pending alarm
// set: minimum TriggerAt per RecordID among alarms that are neither fired nor
// done. An empty set still marks the user's index as computed.
func (idx *NearestIndex) Recompute(userID uuid.UUID, alarms []*entity.Alarm) {
	nearest := make(map[uuid.UUID]time.Time, len(alarms))
	for _, alarm := range alarms {
		if alarm.Fired || alarm.Done() {
			continue
		}
		if current, ok := nearest[alarm.RecordID]; !ok || alarm.TriggerAt.Before(current) {
			nearest[alarm.RecordID] = alarm.TriggerAt
		}
	}

	idx.mu.Lock()
	idx.nearest[userID] = nearest
	subscribers := idx.subscribers[userID]
	idx.mu.Unlock()

	for _, subscriber := range subscribers {
		select {
		case subscriber <- maps.Clone(nearest):
		default:
			// The buffer holds a stale snapshot the subscriber has not read
			// yet. Drain it and put the fresh one in its place so the next
			// receive always sees the latest state.
			select {
			case <-subscriber:
			default:
			}
			select {
			case subscriber <- maps.Clone(nearest):
			default:
			}
		}
	}
}

// Snapshot returns a copy of one user's index. ok is false when the user's
// index has never been computed, which tells the caller to recompute from the
// store before serving.
func (idx *NearestIndex) Snapshot(userID uuid.UUID) (map[uuid.UUID]time.Time, bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	nearest, ok := idx.nearest[userID]

	return maps.Clone(nearest), ok
}

// Nearest returns the earliest pending trigger time for a user's record.
func (idx *NearestIndex) Nearest(userID, recordID uuid.UUID) (time.Time, bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	triggerAt, ok := idx.nearest[userID][recordID]

	return triggerAt, ok
}

// Subscribe registers a push consumer for one user. Each recompute of that
// user's index delivers a full snapshot on the returned channel.
func (idx *NearestIndex) Subscribe(userID uuid.UUID) <-chan map[uuid.UUID]time.Time {
	subscriber := make(chan map[uuid.UUID]time.Time, 1)

	idx.mu.Lock()
	idx.subscribers[userID] = append(idx.subscribers[userID], subscriber)
	idx.mu.Unlock()

	return subscriber
}
