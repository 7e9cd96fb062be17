package dom

import "strings"

// Listener handles a dispatched event.
type Listener func(*Event)

type binding struct {
	event    string
	listener Listener
}

// Event is delivered to listeners by Dispatch.
type Event struct {
	Type          string
	Target        *Node
	CurrentTarget *Node
	Detail        any

	stopped   bool
	prevented bool
}

// NewEvent creates an event of the given type carrying detail.
func NewEvent(eventType string, detail any) *Event {
	return &Event{Type: eventType, Detail: detail}
}

// StopPropagation prevents the event from reaching further ancestors. The
// listeners on the current node still run.
func (e *Event) StopPropagation() {
	e.stopped = true
}

// PreventDefault marks the event as cancelled.
func (e *Event) PreventDefault() {
	e.prevented = true
}

// DefaultPrevented reports whether a listener called PreventDefault.
func (e *Event) DefaultPrevented() bool {
	return e.prevented
}

// AddEventListener attaches listener to n for event. Listeners run in the
// order they were added. Nil nodes and listeners are ignored.
func (d *Document) AddEventListener(n *Node, event string, listener Listener) {
	event = strings.TrimSpace(event)
	if n == nil || listener == nil || event == "" {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.listeners[n] = append(d.listeners[n], binding{event: event, listener: listener})
}

// ListenerCount returns how many listeners n has for event.
func (d *Document) ListenerCount(n *Node, event string) int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	count := 0
	for _, b := range d.listeners[n] {
		if b.event == event {
			count++
		}
	}
	return count
}

// Dispatch delivers ev to target and then to each ancestor until a listener
// stops propagation. It returns false when a listener prevented the
// default action.
func (d *Document) Dispatch(target *Node, ev *Event) bool {
	if target == nil || ev == nil {
		return true
	}
	ev.Target = target
	for current := target; current != nil; current = current.Parent {
		ev.CurrentTarget = current
		for _, listener := range d.listenersFor(current, ev.Type) {
			listener(ev)
		}
		if ev.stopped {
			break
		}
	}
	ev.CurrentTarget = nil
	return !ev.prevented
}

// listenersFor snapshots the listeners so handlers may add listeners
// without affecting the running dispatch.
func (d *Document) listenersFor(n *Node, event string) []Listener {
	d.mu.RLock()
	defer d.mu.RUnlock()
	var out []Listener
	for _, b := range d.listeners[n] {
		if b.event == event {
			out = append(out, b.listener)
		}
	}
	return out
}
