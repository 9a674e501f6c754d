package dom

// Synchronous event dispatch with capture and bubble phases. There is no
// event loop: Dispatch runs every listener before it returns, in the order
// the host would fire them. This mirrors a single-threaded UI host where
// only one event is ever in flight.

// Event is a dispatched input event. Key is set for keyboard events.
type Event struct {
	Type    string
	Key     string
	Target  *Node
	stopped bool
}

// StopPropagation prevents the event from reaching any further node.
// Remaining listeners on the current node still run.
func (e *Event) StopPropagation() {
	e.stopped = true
}

// ListenerFunc handles a dispatched event.
type ListenerFunc func(*Event)

type listener struct {
	typ     string
	capture bool
	fn      ListenerFunc
}

// ListenerHandle identifies a registered listener for removal. Go functions
// are not comparable, so registration returns a handle instead of relying
// on function identity the way removeEventListener does.
type ListenerHandle struct {
	node *Node
	l    *listener
}

// AddEventListener registers fn for the target and bubble phases.
func (n *Node) AddEventListener(typ string, fn ListenerFunc) ListenerHandle {
	l := &listener{typ: typ, fn: fn}
	n.listeners = append(n.listeners, l)
	return ListenerHandle{node: n, l: l}
}

// AddCaptureListener registers fn for the capture phase. A capture listener
// on an ancestor fires before any listener on the target.
func (n *Node) AddCaptureListener(typ string, fn ListenerFunc) ListenerHandle {
	l := &listener{typ: typ, capture: true, fn: fn}
	n.listeners = append(n.listeners, l)
	return ListenerHandle{node: n, l: l}
}

// RemoveEventListener unregisters a previously added listener. Removing a
// handle twice, or a zero handle, is a no-op.
func (n *Node) RemoveEventListener(h ListenerHandle) {
	if h.node == nil || h.l == nil {
		return
	}
	target := h.node
	for i, l := range target.listeners {
		if l == h.l {
			target.listeners = append(target.listeners[:i], target.listeners[i+1:]...)
			return
		}
	}
}

// ListenerCount returns the number of listeners registered on this node for
// the given event type, in either phase.
func (n *Node) ListenerCount(typ string) int {
	count := 0
	for _, l := range n.listeners {
		if l.typ == typ {
			count++
		}
	}
	return count
}

// Dispatch fires the event at the given target: capture listeners from the
// root down to the target's parent, then all listeners on the target, then
// bubble listeners from the parent back up to the root.
func (n *Node) Dispatch(ev *Event) {
	ev.Target = n

	// Ancestor path, target first
	var path []*Node
	for cur := n; cur != nil; cur = cur.Parent {
		path = append(path, cur)
	}

	// Capture phase: root down to the target's parent
	for i := len(path) - 1; i >= 1; i-- {
		path[i].callListeners(ev, true)
		if ev.stopped {
			return
		}
	}

	// Target phase: both listener kinds fire
	n.callListeners(ev, true)
	n.callListeners(ev, false)
	if ev.stopped {
		return
	}

	// Bubble phase: target's parent up to the root
	for i := 1; i < len(path); i++ {
		path[i].callListeners(ev, false)
		if ev.stopped {
			return
		}
	}
}

func (n *Node) callListeners(ev *Event, capture bool) {
	// Snapshot so listeners can remove themselves mid-dispatch.
	snapshot := make([]*listener, len(n.listeners))
	copy(snapshot, n.listeners)
	for _, l := range snapshot {
		if l.typ != ev.Type || l.capture != capture {
			continue
		}
		if !n.hasListener(l) {
			continue
		}
		l.fn(ev)
	}
}

func (n *Node) hasListener(target *listener) bool {
	for _, l := range n.listeners {
		if l == target {
			return true
		}
	}
	return false
}
