package eventz

import "github.com/pkg/errors"

// Emission Errors
//
// The hub itself has no failure modes: removing an absent listener and
// emitting an event nobody listens to are silent no-ops. Errors surface only
// from listener invocation.

// ErrPayloadType is returned from Emit when a payload does not match the
// payload type a listener was declared with. This happens when two Event
// declarations share a key with different payload types, or when the dynamic
// Emitter.Emit is called with the wrong type.
//
// Like any listener error it stops the emission.
var ErrPayloadType = errors.New("payload type mismatch")

// wrapListenerError attaches the event key to an error returned by a listener.
// errors.Is and errors.Cause still reach the listener's original error.
func wrapListenerError(err error, key Key) error {
	if errors.Is(err, ErrPayloadType) {
		return err
	}
	return errors.Wrapf(err, "listener for %q", key)
}
