package engine

// Event is a multicast event: any number of listeners, invoked in
// subscription order on the main thread.
type Event struct {
	nextID    int
	listeners []eventListener
}

type eventListener struct {
	id int
	fn func()
}

// AddListener registers a callback and returns an id usable with RemoveListener.
func (e *Event) AddListener(callback func()) int {
	if callback == nil {
		return -1
	}
	e.nextID++
	e.listeners = append(e.listeners, eventListener{id: e.nextID, fn: callback})
	return e.nextID
}

// RemoveListener unregisters the callback with the given id.
func (e *Event) RemoveListener(id int) {
	for i, l := range e.listeners {
		if l.id == id {
			e.listeners = append(e.listeners[:i], e.listeners[i+1:]...)
			return
		}
	}
}

// RemoveAllListeners clears all listeners
func (e *Event) RemoveAllListeners() {
	e.listeners = nil
}

// Invoke calls all registered listeners in subscription order
func (e *Event) Invoke() {
	for _, l := range e.listeners {
		l.fn()
	}
}

// ListenerCount returns the number of registered listeners (for debugging)
func (e *Event) ListenerCount() int {
	return len(e.listeners)
}

// EventWithArg is a multicast event carrying one argument.
type EventWithArg[T any] struct {
	nextID    int
	listeners []eventArgListener[T]
}

type eventArgListener[T any] struct {
	id int
	fn func(T)
}

func (e *EventWithArg[T]) AddListener(callback func(T)) int {
	if callback == nil {
		return -1
	}
	e.nextID++
	e.listeners = append(e.listeners, eventArgListener[T]{id: e.nextID, fn: callback})
	return e.nextID
}

func (e *EventWithArg[T]) RemoveListener(id int) {
	for i, l := range e.listeners {
		if l.id == id {
			e.listeners = append(e.listeners[:i], e.listeners[i+1:]...)
			return
		}
	}
}

func (e *EventWithArg[T]) RemoveAllListeners() {
	e.listeners = nil
}

func (e *EventWithArg[T]) Invoke(arg T) {
	for _, l := range e.listeners {
		l.fn(arg)
	}
}

func (e *EventWithArg[T]) ListenerCount() int {
	return len(e.listeners)
}
