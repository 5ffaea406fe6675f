package eventz

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/zoobzio/clockz"
)

// Option configures a hub during creation.
type Option func(*config)

// config holds internal configuration for hub creation.
type config struct {
	clock  clockz.Clock // Time abstraction for deterministic testing
	logger hclog.Logger
}

// WithClock sets the clock used to timestamp emissions in Metrics.
// Default is clockz.RealClock. Use clockz.FakeClock for deterministic testing.
func WithClock(clock clockz.Clock) Option {
	return func(c *config) {
		c.clock = clock
	}
}

// WithLogger sets the logger for registration and emission tracing.
// Default is a null logger.
//
// Registrations and removals are logged at Trace, clears and listener
// failures at Debug. Listener errors are always returned to the caller of
// Emit, so they are never logged above Debug.
func WithLogger(logger hclog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// registryKind selects one of the two registries.
type registryKind int

const (
	kindPersistent registryKind = iota
	kindOnce
)

func (k registryKind) String() string {
	if k == kindOnce {
		return "once"
	}
	return "on"
}

// hub owns the persistent and one-shot registries shared by an Emitter and
// its Receiver.
//
// Thread Safety:
// A single mutex guards both registries. It is never held while a listener
// runs, so listeners may subscribe, unsubscribe and emit re-entrantly.
type hub struct {
	mu         sync.Mutex
	persistent registry
	once       registry
	lastEmit   time.Time

	clock  clockz.Clock
	logger hclog.Logger

	// Counters updated atomically, outside the lock
	emitted   atomic.Int64
	delivered atomic.Int64
	failed    atomic.Int64
}

// New creates an isolated hub and returns its two handles.
//
// Example:
//
//	emitter, receiver := eventz.New()
//
//	// With options
//	emitter, receiver := eventz.New(
//	    eventz.WithLogger(hclog.New(&hclog.LoggerOptions{Name: "orders"})),
//	    eventz.WithClock(clockz.RealClock),
//	)
func New(opts ...Option) (*Emitter, *Receiver) {
	cfg := config{
		clock:  clockz.RealClock,
		logger: hclog.NewNullLogger(),
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	h := &hub{
		persistent: make(registry),
		once:       make(registry),
		clock:      cfg.clock,
		logger:     cfg.logger,
	}

	return &Emitter{hub: h}, &Receiver{hub: h}
}

// registry returns the registry of the given kind. Callers hold h.mu.
func (h *hub) registry(kind registryKind) registry {
	if kind == kindOnce {
		return h.once
	}
	return h.persistent
}

// subscribe appends b to the registry of the given kind.
// A binding without a listener registers nothing and yields an inert
// Subscription.
func (h *hub) subscribe(kind registryKind, b Binding) *Subscription {
	if b.handler == nil {
		return &Subscription{key: b.key, kind: kind}
	}

	h.mu.Lock()
	h.registry(kind).add(b.key, b.handler)
	h.mu.Unlock()

	h.logger.Trace("listener registered", "event", b.key, "kind", kind)

	return &Subscription{
		hub:     h,
		kind:    kind,
		key:     b.key,
		handler: b.handler,
	}
}

// remove drops the first occurrence of b from both registries.
func (h *hub) remove(b Binding) int {
	h.mu.Lock()
	removed := 0
	if h.persistent.removeFirst(b.key, b.handler) {
		removed++
	}
	if h.once.removeFirst(b.key, b.handler) {
		removed++
	}
	h.mu.Unlock()

	h.logger.Trace("listener removed", "event", b.key, "removed", removed)
	return removed
}

// removeKey drops every listener of both kinds for key.
func (h *hub) removeKey(key Key) int {
	h.mu.Lock()
	removed := h.persistent.removeKey(key) + h.once.removeKey(key)
	h.mu.Unlock()

	h.logger.Debug("event cleared", "event", key, "removed", removed)
	return removed
}

// clear empties both registries.
func (h *hub) clear() int {
	h.mu.Lock()
	removed := h.persistent.size() + h.once.size()
	h.persistent = make(registry)
	h.once = make(registry)
	h.mu.Unlock()

	h.logger.Debug("all events cleared", "removed", removed)
	return removed
}

// claim removes the one-shot registration e from the live registry.
// A false result means e was already removed and must not run.
func (h *hub) claim(key Key, e *entry) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.once.removeEntry(key, e)
}

// count returns the registrations outstanding for key.
func (h *hub) count(key Key) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.persistent[key]) + len(h.once[key])
}
