package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/quicknote/notes-api/internal/api/metrics"
	"github.com/quicknote/notes-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes note lifecycle events to a fixed set of workers using
// consistent hashing on the note id, guaranteeing per-note event ordering in
// the activity trail.
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

// Enqueue sends an event to the worker responsible for its note. If that
// worker's buffer is full the event is dropped and counted; recording the
// trail must never block a request. The depth gauge is owned by the worker
// side, so producers never touch it.
func (d *Dispatcher) Enqueue(in ports.ActivityInput) {
	idx := d.shardIndex(in.NoteID)
	select {
	case d.workers[idx] <- in:
	default:
		metrics.ActivityErrorsTotal.WithLabelValues("queue_full").Inc()
		d.log.Warn().Str("note_id", in.NoteID).Int("worker_id", idx).Msg("activity queue full, event dropped")
	}
}

// shardIndex maps a note id deterministically to a worker index.
func (d *Dispatcher) shardIndex(noteID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(noteID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.ActivityInput) {
	worker := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case in, ok := <-ch:
			if !ok {
				return
			}
			metrics.ActivityQueueDepth.WithLabelValues(worker).Set(float64(len(ch)))
			if err := d.service.Process(ctx, in); err != nil {
				d.log.Error().Err(err).
					Str("note_id", in.NoteID).
					Int("worker_id", id).
					Msg("activity processing failed")
			}
		}
	}
}
