package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// CleanupEnqueuer hands an audit sweep to the task queue.
type CleanupEnqueuer interface {
	EnqueueAuditCleanup(retentionDays int) (string, error)
}

// AuditCleanupScheduler periodically queues removal of expired audit events.
type AuditCleanupScheduler struct {
	enqueuer      CleanupEnqueuer
	schedule      string
	retentionDays int
	logger        *zap.Logger

	cron       *cron.Cron
	entryID    cron.EntryID
	mu         sync.RWMutex
	isRunning  bool
	cancelFunc context.CancelFunc
}

func newParser() cron.Parser {
	return cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
}

// ValidateSchedule checks a five-field cron expression.
func ValidateSchedule(schedule string) error {
	_, err := newParser().Parse(schedule)
	return err
}

// NewAuditCleanupScheduler creates a new scheduler instance
func NewAuditCleanupScheduler(enqueuer CleanupEnqueuer, schedule string, retentionDays int, logger *zap.Logger) *AuditCleanupScheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuditCleanupScheduler{
		enqueuer:      enqueuer,
		schedule:      schedule,
		retentionDays: retentionDays,
		logger:        logger.Named("audit_cleanup"),
		cron:          cron.New(cron.WithParser(newParser())),
	}
}

// Start registers the job and begins ticking. It stops by itself when ctx
// is cancelled.
func (s *AuditCleanupScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	if err := ValidateSchedule(s.schedule); err != nil {
		return fmt.Errorf("invalid cron schedule '%s': %w", s.schedule, err)
	}

	if s.entryID == 0 {
		entryID, err := s.cron.AddFunc(s.schedule, s.enqueue)
		if err != nil {
			return fmt.Errorf("failed to schedule audit cleanup: %w", err)
		}
		s.entryID = entryID
	}

	var cancelCtx context.Context
	cancelCtx, s.cancelFunc = context.WithCancel(ctx)

	s.cron.Start()
	s.isRunning = true

	s.logger.Info("scheduler started",
		zap.String("schedule", s.schedule),
		zap.Int("retention_days", s.retentionDays),
		zap.Time("next_run", s.cron.Entry(s.entryID).Next),
	)

	go func() {
		<-cancelCtx.Done()
		s.Stop()
	}()

	return nil
}

// Stop gracefully stops the scheduler
func (s *AuditCleanupScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	// Stop accepting new jobs and wait for running jobs to complete
	ctx := s.cron.Stop()
	<-ctx.Done()

	if s.cancelFunc != nil {
		s.cancelFunc()
		s.cancelFunc = nil
	}
	s.isRunning = false

	s.logger.Info("scheduler stopped")
}

// RunNow queues a sweep immediately.
func (s *AuditCleanupScheduler) RunNow() (string, error) {
	return s.enqueuer.EnqueueAuditCleanup(s.retentionDays)
}

// IsRunning returns whether the scheduler is active
func (s *AuditCleanupScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// NextRunTime returns when the next sweep will be queued
func (s *AuditCleanupScheduler) NextRunTime() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning {
		return nil
	}

	next := s.cron.Entry(s.entryID).Next
	return &next
}

func (s *AuditCleanupScheduler) enqueue() {
	taskID, err := s.enqueuer.EnqueueAuditCleanup(s.retentionDays)
	if err != nil {
		s.logger.Error("failed to queue audit cleanup", zap.Error(err))
		return
	}
	s.logger.Info("queued audit cleanup", zap.String("task_id", taskID))
}
