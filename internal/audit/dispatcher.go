package audit

import (
	"context"
	"log/slog"
	"sync"
)

const queueSize = 100

// Dispatcher writes audit events from a single background worker. A full
// queue drops the event; requests never wait on the audit trail.
type Dispatcher struct {
	logger *Logger
	log    *slog.Logger
	queue  chan Event

	closeOnce sync.Once
	done      chan struct{}
}

func NewDispatcher(logger *Logger, log *slog.Logger) *Dispatcher {
	if log == nil {
		log = slog.Default()
	}

	d := &Dispatcher{
		logger: logger,
		log:    log,
		queue:  make(chan Event, queueSize),
		done:   make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		if err := d.logger.Log(context.Background(), ev); err != nil {
			d.log.Error("audit write failed", "action", ev.Action, "err", err)
		}
	}
}

// Dispatch is a no-op on a nil Dispatcher.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}

	select {
	case d.queue <- ev:
	default:
		d.log.Warn("audit queue full, dropping event", "action", ev.Action)
	}
}

// Close drains the queue and stops the worker. Dispatch must not be called
// after Close.
func (d *Dispatcher) Close() {
	if d == nil {
		return
	}
	d.closeOnce.Do(func() {
		close(d.queue)
	})
	<-d.done
}
