package liveness

import (
	"sync/atomic"
	"time"
)

// Tracker holds the epoch-minute of the last poll attempt. One writer (the
// engine loop) and one reader (the probe server) share it.
type Tracker struct {
	lastAttempt atomic.Int64
}

func NewTracker() *Tracker {
	return &Tracker{}
}

// RecordAttempt stores the minute of the attempt that just finished,
// successful or not.
func (t *Tracker) RecordAttempt(nowMinute int64) {
	t.lastAttempt.Store(nowMinute)
}

func (t *Tracker) MinutesSince(nowMinute int64) int64 {
	return nowMinute - t.lastAttempt.Load()
}

// EpochMinute converts a time to whole minutes since the Unix epoch.
func EpochMinute(t time.Time) int64 {
	return t.Unix() / 60
}
