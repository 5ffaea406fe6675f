package eventz

// Subscription is the handle returned by Receiver.On and Receiver.Once.
// It removes the registration it was issued for.
//
// A Subscription remembers its event, its registry (persistent or one-shot)
// and its listener. Unsubscribe removes the first occurrence of that listener
// from that registry for that event.
//
// Thread Safety:
// Subscription methods are safe for concurrent use.
//
// Example:
//
//	sub := OrderPlaced.On(receiver, notify)
//
//	// Later, stop receiving
//	sub.Unsubscribe()
type Subscription struct {
	hub     *hub
	kind    registryKind
	key     Key
	handler handler

	// done is set by the first Unsubscribe call that removes a registration.
	// Guarded by hub.mu.
	done bool
}

// Unsubscribe removes this registration. Future emissions will not invoke it;
// an invocation already in progress is not interrupted.
//
// Once a call has removed a registration, later calls are silent no-ops.
// If the listener is not registered, because Off, Remove, Clear or a
// one-shot delivery got there first, the call removes nothing and the
// handle stays usable: should the same listener be registered again
// under the same event and kind, a later call removes that registration.
//
// Reports whether this call removed a registration.
func (s *Subscription) Unsubscribe() bool {
	if s == nil || s.hub == nil {
		return false
	}

	h := s.hub
	h.mu.Lock()
	if s.done {
		h.mu.Unlock()
		return false
	}
	removed := h.registry(s.kind).removeFirst(s.key, s.handler)
	if removed {
		s.done = true
	}
	h.mu.Unlock()

	h.logger.Trace("listener unsubscribed", "event", s.key, "kind", s.kind, "removed", removed)
	return removed
}

// Key returns the event the subscription was issued for.
func (s *Subscription) Key() Key {
	return s.key
}

// Once reports whether the subscription is for a one-shot listener.
func (s *Subscription) Once() bool {
	return s.kind == kindOnce
}
