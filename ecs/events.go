package ecs

import (
	"slices"

	"github.com/cockroachdb/errors"
)

// EventKind identifies a kind of entity lifecycle event.
type EventKind uint8

const (
	EventDestroy EventKind = iota // fires after an entity is removed from its manager
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventDestroy:
		return "onDestroy"
	default:
		return "unknown"
	}
}

// Event carries the entity an event is about.
type Event[E comparable] struct {
	Kind   EventKind
	Entity E
}

// Handler receives entity events. Handlers are identified by interface
// equality, so implement it on a pointer type or obtain one from NewHandler.
type Handler[E comparable] interface {
	HandleEvent(Event[E])
}

type funcHandler[E comparable] struct {
	fn func(Event[E])
}

func (h *funcHandler[E]) HandleEvent(e Event[E]) {
	h.fn(e)
}

// NewHandler wraps fn in a Handler. Every call returns a distinct handler,
// so keep the result around to remove it later.
func NewHandler[E comparable](fn func(Event[E])) Handler[E] {
	return &funcHandler[E]{fn: fn}
}

// handlerRegistry keeps handlers per event kind in registration order.
type handlerRegistry[E comparable] struct {
	byKind map[EventKind][]Handler[E]
}

func (r *handlerRegistry[E]) add(kind EventKind, h Handler[E]) error {
	if h == nil {
		return errors.New("ecs: nil handler")
	}
	if slices.Contains(r.byKind[kind], h) {
		return errors.Wrapf(ErrDuplicateHandler, "event %s", kind)
	}
	if r.byKind == nil {
		r.byKind = make(map[EventKind][]Handler[E])
	}
	r.byKind[kind] = append(r.byKind[kind], h)
	return nil
}

// remove drops h for kind. Returns false if h was never registered.
func (r *handlerRegistry[E]) remove(kind EventKind, h Handler[E]) bool {
	list := r.byKind[kind]
	i := slices.Index(list, h)
	if i < 0 {
		return false
	}
	r.byKind[kind] = slices.Delete(list, i, i+1)
	return true
}

// emit calls every handler for the event's kind in registration order. The
// list is snapshotted so handlers may add or remove handlers while running.
func (r *handlerRegistry[E]) emit(e Event[E]) {
	list := r.byKind[e.Kind]
	if len(list) == 0 {
		return
	}
	for _, h := range slices.Clone(list) {
		h.HandleEvent(e)
	}
}

func (r *handlerRegistry[E]) count(kind EventKind) int {
	return len(r.byKind[kind])
}
