package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/younivent/platform/internal/core/ports"
)

type recordingRunner struct {
	mu   sync.Mutex
	runs []ports.JobInput
	done chan struct{}
}

func newRecordingRunner(expected int) *recordingRunner {
	return &recordingRunner{done: make(chan struct{}, expected)}
}

func (r *recordingRunner) Run(_ context.Context, job ports.JobInput) error {
	r.mu.Lock()
	r.runs = append(r.runs, job)
	r.mu.Unlock()
	r.done <- struct{}{}
	return nil
}

func (r *recordingRunner) wait(t *testing.T, n int) []ports.JobInput {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case <-r.done:
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for job %d of %d", i+1, n)
		}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]ports.JobInput, len(r.runs))
	copy(out, r.runs)
	return out
}

func TestDispatcher_RunsEnqueuedJobs(t *testing.T) {
	runner := newRecordingRunner(2)
	d := NewDispatcher(2, runner, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Enqueue(ports.JobInput{Key: "export:u-1", Name: ports.JobExport, UserID: "u-1"})
	d.Enqueue(ports.JobInput{Key: "send-email:u-2", Name: ports.JobSendEmail, UserID: "u-2"})

	runs := runner.wait(t, 2)
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
}

func TestDispatcher_SameKeySameWorkerInOrder(t *testing.T) {
	runner := newRecordingRunner(3)
	d := NewDispatcher(4, runner, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.EnqueueBatch([]ports.JobInput{
		{Key: "export:u-1", Name: ports.JobExport, UserID: "a"},
		{Key: "export:u-1", Name: ports.JobExport, UserID: "b"},
		{Key: "export:u-1", Name: ports.JobExport, UserID: "c"},
	})

	runs := runner.wait(t, 3)
	if runs[0].UserID != "a" || runs[1].UserID != "b" || runs[2].UserID != "c" {
		t.Fatalf("per-key ordering violated: %+v", runs)
	}
}

func TestDispatcher_ShardIndexDeterministic(t *testing.T) {
	d := NewDispatcher(4, newRecordingRunner(0), zerolog.Nop())
	for _, key := range []string{"export:u-1", "send-email:u-2", "save-edit:u-3"} {
		first := d.shardIndex(key)
		for i := 0; i < 10; i++ {
			if d.shardIndex(key) != first {
				t.Fatalf("shard index for %q is not stable", key)
			}
		}
	}
}

func TestDispatcher_DefaultsWorkerCount(t *testing.T) {
	d := NewDispatcher(0, newRecordingRunner(0), zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Fatalf("expected %d workers, got %d", defaultWorkers, len(d.workers))
	}
}
