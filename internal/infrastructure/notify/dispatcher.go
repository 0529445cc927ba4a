// Package notify delivers notifications off the request path. Handlers and
// services enqueue plain ports.Notification values; a pool of workers renders
// and sends them through the configured Sender.
package notify

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/fixpoint/repairdesk/internal/api/metrics"
	"github.com/fixpoint/repairdesk/internal/core/ports"
)

const (
	defaultWorkers = 4
	queueBuffer    = 256
	sendTimeout    = 30 * time.Second
)

// Sender performs the actual delivery for a single notification.
type Sender interface {
	Send(ctx context.Context, n ports.Notification) error
}

// Dispatcher implements ports.Notifier with a buffered queue and a fixed
// worker pool, so dispatch never blocks an HTTP response on delivery.
type Dispatcher struct {
	queue   chan ports.Notification
	sender  Sender
	workers int
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers delivery workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, sender Sender, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	return &Dispatcher{
		queue:   make(chan ports.Notification, queueBuffer),
		sender:  sender,
		workers: numWorkers,
		log:     log,
	}
}

// Start launches the worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i := 0; i < d.workers; i++ {
		go d.runWorker(ctx)
	}
}

// Enqueue queues a notification for delivery. The call blocks only when the
// buffer is full.
func (d *Dispatcher) Enqueue(n ports.Notification) {
	d.queue <- n
}

func (d *Dispatcher) runWorker(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case n := <-d.queue:
			d.deliver(ctx, n)
		}
	}
}

func (d *Dispatcher) deliver(ctx context.Context, n ports.Notification) {
	sendCtx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	if err := d.sender.Send(sendCtx, n); err != nil {
		metrics.NotificationsTotal.WithLabelValues(string(n.Channel), "error").Inc()
		d.log.Error().Err(err).Str("channel", string(n.Channel)).Str("to", n.To).Msg("notification delivery failed")
		return
	}

	metrics.NotificationsTotal.WithLabelValues(string(n.Channel), "sent").Inc()
	d.log.Debug().Str("channel", string(n.Channel)).Str("to", n.To).Msg("notification delivered")
}
