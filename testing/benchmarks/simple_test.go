package benchmarks

import (
	"context"
	"testing"

	"github.com/zoobzio/eventz"
)

// Simple test to verify benchmark compilation and basic functionality
func TestBenchmarkSetup(t *testing.T) {
	emitter, receiver := eventz.New()

	// Register a simple listener
	delivered := 0
	benchEvent.On(receiver, eventz.Listen(func(ctx context.Context, evt TestEvent) error {
		delivered++
		return nil
	}))

	// Generate test events
	events := generateRealisticEvents(10)
	if len(events) != 10 {
		t.Errorf("Expected 10 events, got %d", len(events))
	}

	// Emit events
	for _, event := range events {
		if err := benchEvent.Emit(context.Background(), emitter, event); err != nil {
			t.Fatal(err)
		}
	}

	if delivered != 10 {
		t.Errorf("Expected 10 deliveries, got %d", delivered)
	}
}
