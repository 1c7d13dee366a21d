package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

type countingSnapshotter struct {
	calls atomic.Int32
	err   error
}

func (c *countingSnapshotter) EnsureMonthlySnapshot(context.Context) (bool, error) {
	c.calls.Add(1)
	return c.err == nil, c.err
}

type onboarded bool

func (o onboarded) IsOnboarded() bool { return bool(o) }

func TestSnapshotWorker_SkipsWithoutUser(t *testing.T) {
	snap := &countingSnapshotter{}
	w := NewSnapshotWorker(snap, onboarded(false), time.Hour, zerolog.Nop())

	w.RunOnce()
	assert.Equal(t, int32(0), snap.calls.Load())
}

func TestSnapshotWorker_RunOnce(t *testing.T) {
	snap := &countingSnapshotter{}
	w := NewSnapshotWorker(snap, onboarded(true), time.Hour, zerolog.Nop())

	w.RunOnce()
	assert.Equal(t, int32(1), snap.calls.Load())

	snap.err = errors.New("redis down")
	w.RunOnce()
	assert.Equal(t, int32(2), snap.calls.Load())
}

func TestSnapshotWorker_StartStop(t *testing.T) {
	snap := &countingSnapshotter{}
	w := NewSnapshotWorker(snap, onboarded(true), 10*time.Millisecond, zerolog.Nop())

	w.Start()
	assert.Eventually(t, func() bool { return snap.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
	w.Stop()

	n := snap.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, n, snap.calls.Load())
}
