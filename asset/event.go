package asset

// Event is a list of callbacks that are invoked synchronously when the
// event is emitted. It is not safe for concurrent use, all callbacks run
// on the goroutine calling Emit.
type Event struct {
	handlers []*handler
}

type handler struct {
	fn        func()
	once      bool
	cancelled bool
}

// Subscription is the handle returned when subscribing to an Event.
// The zero value is a valid, already cancelled subscription.
type Subscription struct {
	event   *Event
	handler *handler
}

// Subscribe registers fn to be called on every emit until the returned
// Subscription is cancelled.
func (e *Event) Subscribe(fn func()) Subscription {
	return e.add(&handler{fn: fn})
}

// Once registers fn to be called on the next emit only.
func (e *Event) Once(fn func()) Subscription {
	return e.add(&handler{fn: fn, once: true})
}

func (e *Event) add(h *handler) Subscription {
	e.handlers = append(e.handlers, h)
	return Subscription{event: e, handler: h}
}

// Emit calls all handlers registered at the time of the call. Handlers
// added while emitting are not called until the next emit, handlers cancelled
// while emitting are skipped.
func (e *Event) Emit() {
	handlers := e.handlers

	// drop once handlers before calling anything, a handler may
	// resubscribe and must not see its own stale registration.
	e.handlers = nil
	for _, h := range handlers {
		if !h.once && !h.cancelled {
			e.handlers = append(e.handlers, h)
		}
	}

	for _, h := range handlers {
		if h.cancelled {
			continue
		}

		if h.once {
			h.cancelled = true
		}

		h.fn()
	}
}

// Len returns the number of active subscriptions.
func (e *Event) Len() int {
	var n int
	for _, h := range e.handlers {
		if !h.cancelled {
			n++
		}
	}

	return n
}

// Clear cancels all subscriptions.
func (e *Event) Clear() {
	for _, h := range e.handlers {
		h.cancelled = true
	}

	e.handlers = nil
}

// Cancel removes the subscription from its event. Cancelling twice is a no-op.
func (s Subscription) Cancel() {
	if s.handler == nil || s.handler.cancelled {
		return
	}

	s.handler.cancelled = true

	handlers := s.event.handlers[:0]
	for _, h := range s.event.handlers {
		if h != s.handler {
			handlers = append(handlers, h)
		}
	}

	s.event.handlers = handlers
}

// Active returns true while the subscription can still fire.
func (s Subscription) Active() bool {
	return s.handler != nil && !s.handler.cancelled
}
