package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/niverapp/event-system/internal/core/ports"
	"github.com/niverapp/event-system/internal/metrics"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes activity entries to a fixed set of workers using
// consistent hashing on the actor, guaranteeing per-actor ordering in the
// audit feed.
type Dispatcher struct {
	workers []chan ports.ActivityInput
	service ports.ActivityService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.ActivityService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.ActivityInput, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.ActivityInput, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends an entry to the worker responsible for its actor. The send
// never blocks: when the worker's buffer is full the entry is dropped and
// counted, so request handlers cannot stall on the audit trail.
func (d *Dispatcher) Enqueue(entry ports.ActivityInput) {
	i := d.shardIndex(entry.Actor)
	select {
	case d.workers[i] <- entry:
		metrics.ActivityQueueDepth.WithLabelValues(strconv.Itoa(i)).Set(float64(len(d.workers[i])))
	default:
		metrics.ActivityErrorsTotal.Inc()
		d.log.Warn().
			Str("actor", entry.Actor).
			Str("action", entry.Action).
			Int("worker_id", i).
			Msg("activity entry dropped, worker queue full")
	}
}

// shardIndex maps an actor deterministically to a worker index.
func (d *Dispatcher) shardIndex(actor string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(actor))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.ActivityInput) {
	workerID := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case entry, ok := <-ch:
			if !ok {
				return
			}
			start := time.Now()
			if err := d.service.Record(ctx, entry); err != nil {
				metrics.ActivityErrorsTotal.Inc()
				d.log.Error().Err(err).
					Str("actor", entry.Actor).
					Str("action", entry.Action).
					Int("worker_id", id).
					Msg("activity recording failed")
			}
			metrics.ActivityProcessingDuration.Observe(time.Since(start).Seconds())
			metrics.ActivityQueueDepth.WithLabelValues(workerID).Set(float64(len(ch)))
		}
	}
}
