package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeEnqueuer struct {
	mu    sync.Mutex
	calls []int
	err   error
}

func (f *fakeEnqueuer) EnqueueAuditCleanup(retentionDays int) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, retentionDays)
	if f.err != nil {
		return "", f.err
	}
	return "task-1", nil
}

func TestValidateSchedule(t *testing.T) {
	assert.NoError(t, ValidateSchedule("0 3 * * *"))
	assert.Error(t, ValidateSchedule("every night"))
	assert.Error(t, ValidateSchedule("0 0 3 * * *"))
}

func TestAuditCleanupScheduler_StartStop(t *testing.T) {
	s := NewAuditCleanupScheduler(&fakeEnqueuer{}, "0 3 * * *", 30, zap.NewNop())

	require.NoError(t, s.Start(context.Background()))
	assert.True(t, s.IsRunning())

	next := s.NextRunTime()
	require.NotNil(t, next)
	assert.Equal(t, 3, next.Hour())

	// A second start is a no-op
	require.NoError(t, s.Start(context.Background()))

	s.Stop()
	assert.False(t, s.IsRunning())
	assert.Nil(t, s.NextRunTime())

	require.NoError(t, s.Start(context.Background()))
	assert.True(t, s.IsRunning())
	s.Stop()
}

func TestAuditCleanupScheduler_InvalidSchedule(t *testing.T) {
	s := NewAuditCleanupScheduler(&fakeEnqueuer{}, "nope", 30, nil)

	err := s.Start(context.Background())
	require.Error(t, err)
	assert.False(t, s.IsRunning())
}

func TestAuditCleanupScheduler_StopsWithContext(t *testing.T) {
	s := NewAuditCleanupScheduler(&fakeEnqueuer{}, "0 3 * * *", 30, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, s.Start(ctx))
	cancel()

	assert.Eventually(t, func() bool { return !s.IsRunning() }, time.Second, 10*time.Millisecond)
}

func TestAuditCleanupScheduler_RunNow(t *testing.T) {
	enqueuer := &fakeEnqueuer{}
	s := NewAuditCleanupScheduler(enqueuer, "0 3 * * *", 14, zap.NewNop())

	id, err := s.RunNow()
	require.NoError(t, err)
	assert.Equal(t, "task-1", id)
	assert.Equal(t, []int{14}, enqueuer.calls)
}

func TestAuditCleanupScheduler_EnqueueFailureIsLogged(t *testing.T) {
	enqueuer := &fakeEnqueuer{err: errors.New("queue closed")}
	s := NewAuditCleanupScheduler(enqueuer, "0 3 * * *", 30, zap.NewNop())

	s.enqueue()

	assert.Equal(t, []int{30}, enqueuer.calls)
}
