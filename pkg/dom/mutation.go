package dom

// Attribute observation. Delivery is synchronous: SetAttribute and
// RemoveAttribute invoke matching callbacks before they return, so an
// observer always sees mutations in the order the host applied them.

// MutationRecord describes a single attribute mutation.
type MutationRecord struct {
	Node     *Node
	Attr     string
	OldValue string
	NewValue string
}

// MutationFunc receives attribute mutation records.
type MutationFunc func(MutationRecord)

// Observer delivers attribute mutations on observed nodes to a callback.
type Observer struct {
	fn    MutationFunc
	nodes []*Node
}

type subscription struct {
	obs   *Observer
	attrs []string // empty means all attributes
}

// NewObserver creates an observer with the given callback.
func NewObserver(fn MutationFunc) *Observer {
	return &Observer{fn: fn}
}

// Observe subscribes to attribute mutations on n. With no attrs, every
// attribute is reported; otherwise only the named ones. Observing the same
// node again adds a further subscription.
func (o *Observer) Observe(n *Node, attrs ...string) {
	n.observers = append(n.observers, &subscription{obs: o, attrs: attrs})
	o.nodes = append(o.nodes, n)
}

// Disconnect removes every subscription this observer holds. Nodes release
// their observer list only through this call or their own destruction.
func (o *Observer) Disconnect() {
	for _, n := range o.nodes {
		kept := n.observers[:0]
		for _, sub := range n.observers {
			if sub.obs != o {
				kept = append(kept, sub)
			}
		}
		n.observers = kept
	}
	o.nodes = nil
}

func (n *Node) notifyAttr(name, old, value string) {
	if len(n.observers) == 0 || old == value {
		return
	}
	rec := MutationRecord{Node: n, Attr: name, OldValue: old, NewValue: value}
	// Snapshot: a callback may add or remove subscriptions.
	snapshot := make([]*subscription, len(n.observers))
	copy(snapshot, n.observers)
	for _, sub := range snapshot {
		if sub.matches(name) {
			sub.obs.fn(rec)
		}
	}
}

func (s *subscription) matches(attr string) bool {
	if len(s.attrs) == 0 {
		return true
	}
	for _, a := range s.attrs {
		if a == attr {
			return true
		}
	}
	return false
}
