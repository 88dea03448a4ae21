package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/bookstore/identity-service/internal/api/metrics"
	"github.com/bookstore/identity-service/internal/core/domain"
	"github.com/bookstore/identity-service/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes auth events to a fixed set of workers using consistent
// hashing on the subject email, so a user's registration is published before
// any of their later logins. Delivery is best-effort: publish failures are
// logged and counted, and a full queue drops the event rather than block the
// request that produced it.
type Dispatcher struct {
	workers   []chan domain.AuthEvent
	publisher ports.EventPublisher
	log       zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, publisher ports.EventPublisher, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers:   make([]chan domain.AuthEvent, numWorkers),
		publisher: publisher,
		log:       log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.AuthEvent, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue hands an event to the worker responsible for its email. The call
// never blocks: when the worker's buffer is full the event is dropped, which
// the publish contract explicitly allows.
func (d *Dispatcher) Enqueue(event domain.AuthEvent) {
	i := d.shardIndex(event.Email)
	select {
	case d.workers[i] <- event:
		metrics.EventsQueueDepth.WithLabelValues(strconv.Itoa(i)).Set(float64(len(d.workers[i])))
	default:
		metrics.EventsDroppedTotal.Inc()
		d.log.Warn().
			Str("topic", event.Topic()).
			Str("email", event.Email).
			Msg("event queue full, dropping event")
	}
}

// shardIndex maps an email deterministically to a worker index.
func (d *Dispatcher) shardIndex(email string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(email))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.AuthEvent) {
	gauge := metrics.EventsQueueDepth.WithLabelValues(strconv.Itoa(id))
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			gauge.Set(float64(len(ch)))

			topic := event.Topic()
			if err := d.publisher.Publish(ctx, topic, event.Payload()); err != nil {
				metrics.EventsFailedTotal.WithLabelValues(topic).Inc()
				d.log.Error().Err(err).
					Str("topic", topic).
					Str("email", event.Email).
					Int("worker_id", id).
					Msg("event publish failed")
				continue
			}
			metrics.EventsPublishedTotal.WithLabelValues(topic).Inc()
		}
	}
}
