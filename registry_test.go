package eventz

import (
	"context"
	"testing"
)

func newTestHandler() handler {
	return Listen(func(ctx context.Context, n int) error { return nil })
}

func TestRegistryRemoveFirst(t *testing.T) {
	r := make(registry)
	a, b := newTestHandler(), newTestHandler()

	r.add("k", a)
	r.add("k", b)
	r.add("k", a)

	if !r.removeFirst("k", a) {
		t.Fatal("Expected removal of first occurrence")
	}
	if got := r["k"]; len(got) != 2 || got[0].handler != b || got[1].handler != a {
		t.Errorf("Expected [b a] after removing first a, got %v", got)
	}

	if r.removeFirst("k", newTestHandler()) {
		t.Error("Removing an unregistered handler should report false")
	}
	if r.removeFirst("missing", a) {
		t.Error("Removing from an unknown key should report false")
	}
}

func TestRegistryRemoveEntryMatchesRegistration(t *testing.T) {
	r := make(registry)
	a := newTestHandler()

	first := r.add("k", a)
	second := r.add("k", a)
	if first == second {
		t.Fatal("Each registration should get its own entry")
	}

	if !r.removeEntry("k", second) {
		t.Fatal("Expected removal of the second registration")
	}
	if got := r["k"]; len(got) != 1 || got[0] != first {
		t.Errorf("Expected only the first registration left, got %v", got)
	}
	if r.removeEntry("k", second) {
		t.Error("Removing an entry twice should report false")
	}

	// A fresh registration of the same handler is a different entry
	r.removeEntry("k", first)
	r.add("k", a)
	if r.removeEntry("k", first) {
		t.Error("A stale entry should not match a new registration")
	}
	if len(r["k"]) != 1 {
		t.Errorf("Expected the new registration to remain, got %d", len(r["k"]))
	}
}

func TestRegistryPrunesEmptyKeys(t *testing.T) {
	r := make(registry)
	a := newTestHandler()

	r.add("k", a)
	r.removeFirst("k", a)

	if _, ok := r["k"]; ok {
		t.Error("Empty key should be deleted from the registry")
	}
}

func TestRegistrySnapshotIsIndependent(t *testing.T) {
	r := make(registry)
	a, b := newTestHandler(), newTestHandler()

	r.add("k", a)
	r.add("k", b)

	snap := r.snapshot("k")
	r.removeFirst("k", a)
	r.add("k", newTestHandler())

	if len(snap) != 2 || snap[0].handler != a || snap[1].handler != b {
		t.Errorf("Snapshot should not change with the registry, got %v", snap)
	}
	if r.snapshot("missing") != nil {
		t.Error("Snapshot of unknown key should be nil")
	}
}

func TestRegistrySizeAndRemoveKey(t *testing.T) {
	r := make(registry)
	r.add("a", newTestHandler())
	r.add("a", newTestHandler())
	r.add("b", newTestHandler())

	if r.size() != 3 {
		t.Errorf("Expected size 3, got %d", r.size())
	}
	if n := r.removeKey("a"); n != 2 {
		t.Errorf("Expected 2 removed, got %d", n)
	}
	if n := r.removeKey("a"); n != 0 {
		t.Errorf("Expected 0 removed on second call, got %d", n)
	}
	if r.size() != 1 {
		t.Errorf("Expected size 1, got %d", r.size())
	}
}
