package ports

import (
	"context"
	"time"
)

// Job names the simulated long-running operations the dashboard can trigger.
const (
	JobExport    = "export"
	JobSendEmail = "send-email"
	JobSaveEdit  = "save-edit"
)

// JobInput describes one enqueued job. Key shards the job onto a worker and
// doubles as the ActionTracker key, so re-triggering a job that is still
// running is rejected.
type JobInput struct {
	Key      string
	Name     string
	UserID   string
	Duration time.Duration
}

// JobRunner executes a single job. The in-tree runner simulates work with a
// fixed delay and always succeeds; the interface leaves room for runners
// that genuinely fail.
type JobRunner interface {
	Run(ctx context.Context, job JobInput) error
}

// JobDispatcher accepts jobs for asynchronous execution.
type JobDispatcher interface {
	Enqueue(job JobInput)
	EnqueueBatch(jobs []JobInput)
}
