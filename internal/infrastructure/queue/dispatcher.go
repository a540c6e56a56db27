package queue

import (
	"context"
	"errors"
	"hash/fnv"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/younivent/platform/internal/api/metrics"
	"github.com/younivent/platform/internal/core/domain"
	"github.com/younivent/platform/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 64
)

// Dispatcher routes simulated jobs to a fixed set of workers using consistent
// hashing on the job key, so repeated triggers of the same job land on the
// same worker in order.
type Dispatcher struct {
	workers []chan ports.JobInput
	runner  ports.JobRunner
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, runner ports.JobRunner, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.JobInput, numWorkers),
		runner:  runner,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.JobInput, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue hands the job to the worker that owns its key. It returns as soon
// as the job is buffered and blocks when that worker's channel is full.
func (d *Dispatcher) Enqueue(job ports.JobInput) {
	idx := d.shardIndex(job.Key)
	d.workers[idx] <- job
	metrics.JobsQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
}

// EnqueueBatch enqueues multiple jobs preserving per-key ordering.
func (d *Dispatcher) EnqueueBatch(jobs []ports.JobInput) {
	for _, j := range jobs {
		d.Enqueue(j)
	}
}

// shardIndex maps a job key deterministically to a worker index.
func (d *Dispatcher) shardIndex(key string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.JobInput) {
	workerID := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-ch:
			if !ok {
				return
			}
			metrics.JobsQueueDepth.WithLabelValues(workerID).Set(float64(len(ch)))

			start := time.Now()
			err := d.runner.Run(ctx, job)
			metrics.JobDuration.WithLabelValues(job.Name).Observe(time.Since(start).Seconds())

			switch {
			case err == nil:
				metrics.JobsTotal.WithLabelValues(job.Name, "ok").Inc()
			case errors.Is(err, domain.ErrActionInFlight):
				metrics.JobsTotal.WithLabelValues(job.Name, "rejected").Inc()
				d.log.Debug().Str("key", job.Key).Int("worker_id", id).Msg("job rejected, already in flight")
			default:
				metrics.JobsTotal.WithLabelValues(job.Name, "error").Inc()
				d.log.Error().Err(err).Str("key", job.Key).Int("worker_id", id).Msg("job execution failed")
			}
		}
	}
}
