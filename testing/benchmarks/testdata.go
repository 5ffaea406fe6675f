package benchmarks

import (
	"context"
	"math/rand"
	"time"

	"github.com/zoobzio/eventz"
)

// TestEvent represents realistic event data for benchmarking
type TestEvent struct {
	ID        int
	Timestamp int64
	Payload   []byte
	Type      string
}

// benchEvent is the event every benchmark emits
var benchEvent = eventz.NewEvent[TestEvent]("test.event")

// generateRealisticEvents creates events with realistic size distribution
func generateRealisticEvents(n int) []TestEvent {
	events := make([]TestEvent, n)
	types := []string{"user.action", "order.created", "payment.processed", "system.alert"}

	for i := range events {
		events[i] = TestEvent{
			ID:        i,
			Timestamp: time.Now().UnixNano(),
			Type:      types[rand.Intn(len(types))],
			Payload:   make([]byte, 256+rand.Intn(768)), // 256-1024 bytes, realistic distribution
		}
		// Fill payload with data to prevent compiler optimization
		for j := range events[i].Payload {
			events[i].Payload[j] = byte(i + j)
		}
	}
	return events
}

// noopListener returns a listener doing minimal work on the payload
func noopListener(index int) *eventz.Listener[TestEvent] {
	return eventz.Listen(func(ctx context.Context, evt TestEvent) error {
		_ = len(evt.Payload) + index + evt.ID
		return nil
	})
}
