package engine

import (
	"errors"
	"slices"
	"time"
)

// Listener receives dispatched events.
type Listener func(Event)

// Subscription identifies a registered listener or entity.
type Subscription uint64

// anyKind subscribes a listener to every event.
const anyKind EventKind = -1

type listenerEntry struct {
	id   Subscription
	kind EventKind
	fn   Listener
}

// Dispatcher delivers events to listeners in registration order.
//
// Listeners may subscribe and unsubscribe while an event is being
// dispatched; the change takes effect with the next Dispatch. A Dispatcher
// is not safe for concurrent use.
type Dispatcher struct {
	next      Subscription
	listeners []listenerEntry
}

// NewDispatcher returns an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Subscribe registers fn for events of one kind.
func (d *Dispatcher) Subscribe(kind EventKind, fn Listener) Subscription {
	d.next++
	d.listeners = append(d.listeners, listenerEntry{id: d.next, kind: kind, fn: fn})
	return d.next
}

// SubscribeAll registers fn for every event.
func (d *Dispatcher) SubscribeAll(fn Listener) Subscription {
	return d.Subscribe(anyKind, fn)
}

// Unsubscribe removes a listener. It reports whether id was registered.
func (d *Dispatcher) Unsubscribe(id Subscription) bool {
	i := slices.IndexFunc(d.listeners, func(e listenerEntry) bool { return e.id == id })
	if i < 0 {
		return false
	}
	// Copy on removal so an in-progress Dispatch keeps its snapshot.
	d.listeners = slices.Delete(slices.Clone(d.listeners), i, i+1)
	return true
}

// Len returns the number of registered listeners.
func (d *Dispatcher) Len() int {
	return len(d.listeners)
}

// Dispatch delivers ev to every listener subscribed to its kind or to all
// events.
func (d *Dispatcher) Dispatch(ev Event) {
	listeners := d.listeners
	kind := ev.Kind()
	for _, l := range listeners {
		if l.kind == anyKind || l.kind == kind {
			l.fn(ev)
		}
	}
}

// Updatable is an entity advanced once per frame.
type Updatable interface {
	Update(dt time.Duration) error
}

// UpdateFunc adapts a function to Updatable.
type UpdateFunc func(dt time.Duration) error

// Update calls f(dt).
func (f UpdateFunc) Update(dt time.Duration) error {
	return f(dt)
}

type updatableEntry struct {
	id Subscription
	u  Updatable
}

// Updater advances registered entities in registration order.
// An Updater is not safe for concurrent use.
type Updater struct {
	next     Subscription
	entities []updatableEntry
}

// NewUpdater returns an empty updater.
func NewUpdater() *Updater {
	return &Updater{}
}

// Add registers u and returns the id to remove it with.
func (u *Updater) Add(e Updatable) Subscription {
	u.next++
	u.entities = append(u.entities, updatableEntry{id: u.next, u: e})
	return u.next
}

// Remove unregisters an entity. It reports whether id was registered.
func (u *Updater) Remove(id Subscription) bool {
	i := slices.IndexFunc(u.entities, func(e updatableEntry) bool { return e.id == id })
	if i < 0 {
		return false
	}
	u.entities = slices.Delete(slices.Clone(u.entities), i, i+1)
	return true
}

// Len returns the number of registered entities.
func (u *Updater) Len() int {
	return len(u.entities)
}

// Update advances every entity by dt. All entities run even when some
// fail; the errors are joined.
func (u *Updater) Update(dt time.Duration) error {
	var errs []error
	for _, e := range u.entities {
		if err := e.u.Update(dt); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
