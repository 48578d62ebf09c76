package audit

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/BruksfildServices01/agenda-negocios/internal/metrics"
)

// Dispatcher writes events from a background worker. Events are dropped,
// not queued without bound, when the buffer is full or after Close.
type Dispatcher struct {
	logger *Logger
	queue  chan Event
	done   chan struct{}

	mu     sync.RWMutex
	closed bool
}

func NewDispatcher(logger *Logger, size int) *Dispatcher {
	if size <= 0 {
		size = 100
	}
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, size),
		done:   make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)
	for ev := range d.queue {
		// o contexto da requisição já terminou aqui
		d.logger.Record(context.Background(), ev)
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	// handlers outliving the server shutdown land here
	if d.closed {
		metrics.AuditDropped.Inc()
		log.Warn().Str("action", ev.Action).Msg("audit dispatcher closed, dropping event")
		return
	}

	select {
	case d.queue <- ev:
	default:
		metrics.AuditDropped.Inc()
		log.Warn().Str("action", ev.Action).Msg("audit queue full, dropping event")
	}
}

func (d *Dispatcher) Record(_ context.Context, ev Event) {
	d.Dispatch(ev)
}

// Close stops accepting events and waits for the queue to drain.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()
	<-d.done
}

var (
	_ Recorder = (*Logger)(nil)
	_ Recorder = (*Dispatcher)(nil)
)
