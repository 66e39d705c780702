package app

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeCanceller struct {
	calls atomic.Int32
	err   error
}

func (f *fakeCanceller) CancelStalePending(_ context.Context, _ time.Time) (int, error) {
	f.calls.Add(1)
	return 0, f.err
}

func TestHousekeeper_RunsImmediatelyAndOnTick(t *testing.T) {
	fake := &fakeCanceller{}
	h := NewHousekeeper(fake, 10*time.Millisecond, zap.NewNop())

	h.Start(context.Background())
	require.Eventually(t, func() bool { return fake.calls.Load() >= 3 }, time.Second, 5*time.Millisecond)

	h.Stop()
	stopped := fake.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, stopped, fake.calls.Load())

	// Повторный Stop не паникует
	h.Stop()
}

func TestHousekeeper_StopsOnContextCancel(t *testing.T) {
	fake := &fakeCanceller{err: errors.New("storage down")}
	h := NewHousekeeper(fake, time.Hour, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	h.Start(ctx)
	require.Eventually(t, func() bool { return fake.calls.Load() == 1 }, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-h.done:
	case <-time.After(time.Second):
		t.Fatal("housekeeper did not stop")
	}
}

func TestNewLogger(t *testing.T) {
	logger := NewLogger("production", "warn")
	assert.False(t, logger.Core().Enabled(zap.InfoLevel))
	assert.True(t, logger.Core().Enabled(zap.WarnLevel))

	dev := NewLogger("development", "")
	assert.True(t, dev.Core().Enabled(zap.DebugLevel))

	assert.Panics(t, func() { NewLogger("development", "loud") })
}
