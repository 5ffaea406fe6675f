package eventz

import "time"

// Metrics provides observability data for a hub.
// Counters are read atomically; listener counts and LastEmit under the hub lock.
type Metrics struct {
	// Throughput Counters
	Emitted   int64 // Emit calls, including those with no listeners
	Delivered int64 // Listener invocations that returned nil
	Failed    int64 // Listener invocations that returned an error

	// Registration Metrics
	PersistentListeners int64 // Outstanding persistent registrations
	OneShotListeners    int64 // Outstanding one-shot registrations
	Events              int64 // Distinct events with at least one registration

	// LastEmit is the clock time of the most recent Emit, zero if none.
	LastEmit time.Time
}

func (h *hub) snapshotMetrics() Metrics {
	h.mu.Lock()
	persistent := h.persistent.size()
	once := h.once.size()
	events := len(h.persistent)
	for key := range h.once {
		if _, ok := h.persistent[key]; !ok {
			events++
		}
	}
	lastEmit := h.lastEmit
	h.mu.Unlock()

	return Metrics{
		Emitted:             h.emitted.Load(),
		Delivered:           h.delivered.Load(),
		Failed:              h.failed.Load(),
		PersistentListeners: int64(persistent),
		OneShotListeners:    int64(once),
		Events:              int64(events),
		LastEmit:            lastEmit,
	}
}
