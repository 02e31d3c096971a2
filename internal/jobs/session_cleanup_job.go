package jobs

import (
	"context"
	"log/slog"
	"time"

	"console/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// SessionCleanupJob removes expired console sessions. Runs every minute so a
// stale token never outlives its expiry by much.
type SessionCleanupJob struct {
	sessions ports.SessionStore
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewSessionCleanupJob creates a job that purges expired sessions.
func NewSessionCleanupJob(sessions ports.SessionStore, logger *slog.Logger) *SessionCleanupJob {
	return &SessionCleanupJob{
		sessions: sessions,
		cron:     cron.New(),
		logger:   logger.With("component", "session_cleanup_job"),
	}
}

// Start begins the session cleanup job to run every minute.
func (j *SessionCleanupJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		purged, purgeErr := j.sessions.PurgeExpired(ctx, time.Now().UTC())
		if purgeErr != nil {
			j.logger.ErrorContext(ctx, "Session cleanup job failed", "error", purgeErr)
			return
		}
		if purged > 0 {
			j.logger.InfoContext(ctx, "Purged expired sessions", "count", purged)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Session cleanup job started (running every minute)")
	return nil
}

// Stop stops the session cleanup job.
func (j *SessionCleanupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Session cleanup job stopped")
}
