package eventz

import "context"

// Emitter is the write side of a hub. It broadcasts events to the listeners
// registered through the paired Receiver.
type Emitter struct {
	hub *hub
}

// Emit delivers data to every listener registered for key, synchronously and
// on the calling goroutine.
//
// Order of delivery:
//  1. Persistent listeners, in registration order
//  2. One-shot listeners, in registration order, each removed just before it runs
//
// The listener set is snapshotted when Emit starts. Listeners registered
// during the emission are not invoked by it. Persistent listeners removed
// during the emission still run in this pass; one-shot listeners removed
// during the emission do not, so a one-shot listener never runs twice.
//
// The first listener to return an error stops the emission: later listeners
// are skipped, one-shot listeners not yet reached stay registered, and Emit
// returns the error wrapped with the event key. Panics are not recovered.
//
// ctx is handed to each listener as is. Emit never inspects it.
//
// Emitting an event with no listeners is a no-op.
func (e *Emitter) Emit(ctx context.Context, key Key, data any) error {
	h := e.hub

	h.mu.Lock()
	persistent := h.persistent.snapshot(key)
	once := h.once.snapshot(key)
	h.lastEmit = h.clock.Now()
	h.mu.Unlock()

	h.emitted.Add(1)

	for _, e := range persistent {
		if err := h.deliver(ctx, key, e.handler, data); err != nil {
			return err
		}
	}

	for _, e := range once {
		if !h.claim(key, e) {
			continue
		}
		if err := h.deliver(ctx, key, e.handler, data); err != nil {
			return err
		}
	}

	return nil
}

// Metrics returns a snapshot of the hub's counters.
func (e *Emitter) Metrics() Metrics {
	return e.hub.snapshotMetrics()
}

// deliver invokes a single listener and records the outcome.
func (h *hub) deliver(ctx context.Context, key Key, l handler, data any) error {
	if err := l.invoke(ctx, key, data); err != nil {
		h.failed.Add(1)
		h.logger.Debug("listener failed", "event", key, "error", err)
		return wrapListenerError(err, key)
	}
	h.delivered.Add(1)
	return nil
}
