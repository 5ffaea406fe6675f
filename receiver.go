package eventz

// Receiver is the read side of a hub. It manages the listener registrations
// that the paired Emitter delivers to.
type Receiver struct {
	hub *hub
}

// On registers b's listener as a persistent listener for b's event.
// The listener runs on every emission until it is removed.
//
// The same listener may be registered any number of times; each registration
// is independent, runs once per emission and yields its own Subscription.
func (r *Receiver) On(b Binding) *Subscription {
	return r.hub.subscribe(kindPersistent, b)
}

// Once registers b's listener as a one-shot listener for b's event.
// It runs on the first emission after registration at most, and is then
// removed even if the returned Subscription is never used.
func (r *Receiver) Once(b Binding) *Subscription {
	return r.hub.subscribe(kindOnce, b)
}

// Off removes listeners by event.
//
// With no keys it empties both registries, like Clear. Otherwise it removes
// every listener, persistent and one-shot, registered for each key; other
// events are untouched.
//
// Returns the number of registrations removed.
func (r *Receiver) Off(keys ...Key) int {
	if len(keys) == 0 {
		return r.hub.clear()
	}
	removed := 0
	for _, key := range keys {
		removed += r.hub.removeKey(key)
	}
	return removed
}

// Remove removes the first occurrence of b's listener from the persistent
// and from the one-shot registry for b's event, at most one of each.
// Removing a listener that is not registered is a no-op.
//
// Listeners are matched by pointer. A different *Listener wrapping the same
// function is not removed.
//
// Returns the number of registrations removed: 0, 1 or 2.
func (r *Receiver) Remove(b Binding) int {
	return r.hub.remove(b)
}

// Clear removes every listener for every event.
// Returns the number of registrations removed.
func (r *Receiver) Clear() int {
	return r.hub.clear()
}

// Connect registers each binding as a persistent listener, in argument order.
// Subscriptions are not returned; pair with Disconnect using the same bindings.
//
//	bindings := []eventz.Binding{Created.Bind(onCreated), Deleted.Bind(onDeleted)}
//	receiver.Connect(bindings...)
//	defer receiver.Disconnect(bindings...)
func (r *Receiver) Connect(bindings ...Binding) {
	for _, b := range bindings {
		r.hub.subscribe(kindPersistent, b)
	}
}

// Disconnect calls Remove for each binding, in argument order.
func (r *Receiver) Disconnect(bindings ...Binding) {
	for _, b := range bindings {
		r.hub.remove(b)
	}
}

// Len returns the number of registrations, persistent and one-shot,
// outstanding for key.
func (r *Receiver) Len(key Key) int {
	return r.hub.count(key)
}

// Metrics returns a snapshot of the hub's counters.
func (r *Receiver) Metrics() Metrics {
	return r.hub.snapshotMetrics()
}
