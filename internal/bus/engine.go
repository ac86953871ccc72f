// Package bus is the in-process event engine for the live-capture
// path. Handlers run one at a time on the dispatch goroutine, so the
// core stays single-threaded.
package bus

import (
	"context"
	"sync/atomic"

	"github.com/yanun0323/errors"
)

var (
	ErrQueueFull   = errors.New("event queue full")
	ErrQueueClosed = errors.New("event queue closed")
)

// EventType routes an event to its registered handlers.
type EventType uint8

const (
	EventLog EventType = iota + 1
	EventContract
	EventRawSnapshot
)

// Event is the unit passed through the engine.
type Event struct {
	Type EventType
	Data any
}

// Engine is a bounded, non-blocking event dispatcher.
type Engine struct {
	ch       chan Event
	handlers map[EventType][]func(Event)
	closed   uint32
}

// NewEngine allocates an engine with the given queue capacity.
func NewEngine(capacity int) *Engine {
	if capacity <= 0 {
		capacity = 1
	}
	return &Engine{
		ch:       make(chan Event, capacity),
		handlers: make(map[EventType][]func(Event)),
	}
}

// Register attaches a handler for one event type. Call before Run;
// registration is not synchronized with dispatch.
func (e *Engine) Register(t EventType, handler func(Event)) {
	if handler == nil {
		return
	}
	e.handlers[t] = append(e.handlers[t], handler)
}

// TryPublish enqueues an event without blocking.
func (e *Engine) TryPublish(event Event) error {
	if atomic.LoadUint32(&e.closed) != 0 {
		return ErrQueueClosed
	}
	select {
	case e.ch <- event:
		return nil
	default:
		return ErrQueueFull
	}
}

// Close stops the engine from accepting new events.
func (e *Engine) Close() {
	if atomic.CompareAndSwapUint32(&e.closed, 0, 1) {
		close(e.ch)
	}
}

// Run dispatches events until the context is done or the engine is
// closed and drained. Each handler runs to completion before the next
// event is taken.
func (e *Engine) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-e.ch:
			if !ok {
				return
			}
			for _, handler := range e.handlers[event.Type] {
				handler(event)
			}
		}
	}
}
