package eventz

import "slices"

// entry is a single registration. Registering the same listener twice
// yields two entries, so each registration has its own identity.
type entry struct {
	handler handler
}

// registry maps event keys to registrations in registration order.
// Duplicates are allowed. Keys whose sequence empties are deleted so
// the map only holds events with outstanding listeners.
//
// registry is not safe for concurrent use; the hub guards it.
type registry map[Key][]*entry

func (r registry) add(key Key, h handler) *entry {
	e := &entry{handler: h}
	r[key] = append(r[key], e)
	return e
}

// removeFirst removes the first registration of h under key.
// It reports whether anything was removed.
func (r registry) removeFirst(key Key, h handler) bool {
	return r.removeAt(key, slices.IndexFunc(r[key], func(e *entry) bool {
		return e.handler == h
	}))
}

// removeEntry removes exactly the registration e under key.
// It reports whether e was still registered.
func (r registry) removeEntry(key Key, e *entry) bool {
	return r.removeAt(key, slices.Index(r[key], e))
}

func (r registry) removeAt(key Key, i int) bool {
	if i < 0 {
		return false
	}
	es := r[key]
	if len(es) == 1 {
		delete(r, key)
		return true
	}
	r[key] = slices.Delete(es, i, i+1)
	return true
}

// removeKey drops every registration under key and returns how many there were.
func (r registry) removeKey(key Key) int {
	n := len(r[key])
	delete(r, key)
	return n
}

// snapshot returns a copy of the registrations under key.
func (r registry) snapshot(key Key) []*entry {
	return slices.Clone(r[key])
}

// size returns the total number of registrations.
func (r registry) size() int {
	n := 0
	for _, es := range r {
		n += len(es)
	}
	return n
}
