package engine

// Event is a multi-cast event carrying a payload. Multiple listeners can
// subscribe; Invoke calls them in registration order.
type Event[T any] struct {
	listeners []func(T)
}

// AddListener adds a callback to be invoked when the event fires.
func (e *Event[T]) AddListener(callback func(T)) {
	if callback == nil {
		return
	}
	e.listeners = append(e.listeners, callback)
}

// RemoveAllListeners clears all listeners.
func (e *Event[T]) RemoveAllListeners() {
	e.listeners = nil
}

// Invoke calls all registered listeners with the payload.
func (e *Event[T]) Invoke(payload T) {
	for _, listener := range e.listeners {
		if listener != nil {
			listener(payload)
		}
	}
}

// ListenerCount returns the number of registered listeners.
func (e *Event[T]) ListenerCount() int {
	return len(e.listeners)
}
