// Package eventz provides a typed, synchronous, in-process event emitter.
//
// A hub is created as a matched pair of handles:
//   - Emitter broadcasts named events with typed payloads
//   - Receiver registers and unregisters listeners for those events
//
// Both handles view the same registries. There is no global state; every call
// to New yields an isolated hub.
//
// Basic Usage:
//
//	// Declare events once, usually as package variables
//	var UserCreated = eventz.NewEvent[User]("user.created")
//
//	emitter, receiver := eventz.New()
//
//	welcome := eventz.Listen(func(ctx context.Context, u User) error {
//		return sendWelcomeEmail(ctx, u)
//	})
//	sub := UserCreated.On(receiver, welcome)
//	defer sub.Unsubscribe()
//
//	if err := UserCreated.Emit(ctx, emitter, newUser); err != nil {
//		return err
//	}
//
// One-shot listeners:
//
//	UserCreated.Once(receiver, eventz.Listen(func(ctx context.Context, u User) error {
//		log.Printf("first user: %s", u.Name)
//		return nil
//	}))
//
// Bulk registration:
//
//	bindings := []eventz.Binding{
//		UserCreated.Bind(welcome),
//		UserDeleted.Bind(farewell),
//	}
//	receiver.Connect(bindings...)
//	defer receiver.Disconnect(bindings...)
//
// Delivery Semantics:
//
// Emit runs every listener synchronously on the caller's goroutine before it
// returns, persistent listeners first and then one-shot listeners, each group
// in registration order. The listener set is snapshotted when Emit starts, so
// listeners added during an emission wait for the next one. A one-shot listener
// is removed immediately before it is invoked and never runs twice.
//
// Listeners are not isolated from each other. The first listener to return an
// error stops the emission and Emit returns that error. Panics are not
// recovered. Callers that need isolation wrap their own listeners.
package eventz

import (
	"context"
	"reflect"

	"github.com/pkg/errors"
)

// Key represents an event name used in registration and emission.
// Keys are compared with exact string equality.
//
// Prefer declaring typed events with NewEvent and using their Key:
//
//	var OrderPlaced = eventz.NewEvent[Order]("order.placed")
//
//	receiver.Off(OrderPlaced.Key())
type Key = string

// Void is the payload type for events that carry no data.
//
//	var Shutdown = eventz.NewEvent[eventz.Void]("shutdown")
//	Shutdown.Emit(ctx, emitter, eventz.Void{})
type Void = struct{}

// Event is a typed event declaration. It binds a Key to the payload type T
// so that listeners and emissions for the key agree at compile time.
// Event has no runtime state of its own; the registries are keyed by name.
type Event[T any] struct {
	key Key
}

// NewEvent declares an event named key carrying payloads of type T.
func NewEvent[T any](key Key) Event[T] {
	return Event[T]{key: key}
}

// Key returns the event name.
func (e Event[T]) Key() Key {
	return e.key
}

// Bind pairs a listener with this event for use with Receiver.On,
// Receiver.Connect and friends. A nil listener yields a binding that
// registers nothing.
func (e Event[T]) Bind(l *Listener[T]) Binding {
	if l == nil {
		return Binding{key: e.key}
	}
	return Binding{key: e.key, handler: l}
}

// On registers l as a persistent listener for this event.
func (e Event[T]) On(r *Receiver, l *Listener[T]) *Subscription {
	return r.On(e.Bind(l))
}

// Once registers l as a one-shot listener for this event.
func (e Event[T]) Once(r *Receiver, l *Listener[T]) *Subscription {
	return r.Once(e.Bind(l))
}

// Remove removes the first occurrence of l from both registries for this event.
func (e Event[T]) Remove(r *Receiver, l *Listener[T]) int {
	return r.Remove(e.Bind(l))
}

// Off removes every listener registered for this event.
func (e Event[T]) Off(r *Receiver) int {
	return r.Off(e.key)
}

// Emit delivers data to every listener registered for this event.
func (e Event[T]) Emit(ctx context.Context, em *Emitter, data T) error {
	return em.Emit(ctx, e.key, data)
}

// Listener is a callback registered against an event. The *Listener value is
// the listener's identity: removal by Receiver.Remove and Receiver.Disconnect
// matches pointers, never behaviour. Keep the pointer if you intend to remove
// the listener later.
type Listener[T any] struct {
	fn func(context.Context, T) error
}

// Listen wraps fn as a Listener. Each call returns a distinct identity.
func Listen[T any](fn func(ctx context.Context, data T) error) *Listener[T] {
	return &Listener[T]{fn: fn}
}

// invoke satisfies handler. A nil payload is delivered as the zero value of T.
func (l *Listener[T]) invoke(ctx context.Context, key Key, data any) error {
	if l == nil || l.fn == nil {
		return nil
	}
	v, ok := data.(T)
	if !ok && data != nil {
		return errors.Wrapf(ErrPayloadType, "event %q: got %T, want %s", key, data, reflect.TypeFor[T]())
	}
	return l.fn(ctx, v)
}

// handler is the type-erased form of a listener stored in the registries.
// Implementations must be comparable; *Listener[T] compares by pointer.
type handler interface {
	invoke(ctx context.Context, key Key, data any) error
}

// Binding pairs an event key with a listener. Bindings are created with
// Event.Bind and passed to Receiver methods.
type Binding struct {
	key     Key
	handler handler
}

// Key returns the event name of the binding.
func (b Binding) Key() Key {
	return b.key
}
