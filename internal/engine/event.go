package engine

// ListenerID identifies a listener added to an Event.
type ListenerID int

// Event is a multicast notification carrying one value. Listeners run in
// the order they were added; a listener may remove itself while running.
type Event[T any] struct {
	next      ListenerID
	ids       []ListenerID
	listeners []func(T)
}

// AddListener registers callback and returns its id. A nil callback is
// ignored and gets id 0.
func (e *Event[T]) AddListener(callback func(T)) ListenerID {
	if callback == nil {
		return 0
	}
	e.next++
	e.ids = append(e.ids, e.next)
	e.listeners = append(e.listeners, callback)
	return e.next
}

// RemoveListener drops the listener with id and reports whether it existed.
func (e *Event[T]) RemoveListener(id ListenerID) bool {
	for i, lid := range e.ids {
		if lid == id {
			e.ids = append(e.ids[:i:i], e.ids[i+1:]...)
			e.listeners = append(e.listeners[:i:i], e.listeners[i+1:]...)
			return true
		}
	}
	return false
}

func (e *Event[T]) RemoveAllListeners() {
	e.ids = nil
	e.listeners = nil
}

func (e *Event[T]) Invoke(arg T) {
	for _, listener := range e.listeners {
		listener(arg)
	}
}

func (e *Event[T]) ListenerCount() int {
	return len(e.listeners)
}
