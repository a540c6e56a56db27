package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/younivent/platform/internal/core/domain"
	"github.com/younivent/platform/internal/core/i18n"
	"github.com/younivent/platform/internal/core/ports"
)

const defaultJobDuration = 2 * time.Second

// JobService executes the simulated long-running operations (export,
// send-email, save-edit). Each run is guarded by the action tracker so a job
// cannot be re-triggered while still in flight, and its outcome is surfaced
// through the notification broadcaster in the user's language.
type JobService struct {
	tracker  ports.ActionTracker
	notifier ports.Notifier
	prefs    ports.PreferenceService
	log      zerolog.Logger
}

func NewJobService(tracker ports.ActionTracker, notifier ports.Notifier, prefs ports.PreferenceService, log zerolog.Logger) *JobService {
	return &JobService{tracker: tracker, notifier: notifier, prefs: prefs, log: log}
}

// Run satisfies ports.JobRunner. The in-tree implementation simulates work
// with a fixed delay and always succeeds once started; failures can only come
// from cancellation or the single-flight guard.
func (s *JobService) Run(ctx context.Context, job ports.JobInput) error {
	if !KnownJob(job.Name) {
		return domain.ErrUnknownJob
	}

	duration := job.Duration
	if duration <= 0 {
		duration = defaultJobDuration
	}

	lang := s.prefs.Language(ctx, job.UserID)
	err := s.tracker.Run(ctx, job.Key, func(ctx context.Context) error {
		t := time.NewTimer(duration)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			return nil
		}
	})
	if err != nil {
		s.log.Error().Err(err).Str("job", job.Name).Str("key", job.Key).Msg("job failed")
		s.notifier.Error(job.UserID, i18n.T(lang, "notifications.action_failed"), job.Name)
		return err
	}

	s.notifier.Success(job.UserID, i18n.T(lang, "notifications.job_done"), job.Name)
	s.log.Info().Str("job", job.Name).Str("key", job.Key).Msg("job completed")
	return nil
}

// KnownJob reports whether name is one of the supported job kinds.
func KnownJob(name string) bool {
	switch name {
	case ports.JobExport, ports.JobSendEmail, ports.JobSaveEdit:
		return true
	}
	return false
}
