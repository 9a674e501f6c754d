// Package tooltip implements an accessible, viewport-aware tooltip for a
// DOM-style host. A tooltip is attached to a trigger element and tracks two
// activation sources, pointer hover and keyboard focus, as one combined
// visibility state. On every transition from hidden to shown it recomputes
// placement against a bounding container and applies adjustment classes;
// the visual style itself is left to the host's CSS.
package tooltip

import (
	"fmt"

	"hovertip/pkg/dom"
)

// Class vocabulary the engine writes on the tooltip node. CSS in the host
// page must match these tokens exactly.
const (
	BaseClass      = "tooltip"
	VisibleClass   = "tooltip-visible"
	ContainerClass = "tooltip-container"

	LeftClass   = "tooltip-left"
	RightClass  = "tooltip-right"
	BottomClass = "tooltip-bottom"
	// Top is the unmarked default: no position class.

	AdjustedUpClass    = "tooltip-adjusted-up"
	AdjustedDownClass  = "tooltip-adjusted-down"
	AdjustedLeftClass  = "tooltip-adjusted-left"
	AdjustedRightClass = "tooltip-adjusted-right"
)

// Options configures a tooltip at construction. The zero value means:
// text derived from the trigger's aria-label, no extra classes, position
// top, visible to assistive technology. Use DefaultOptions for the
// conventional configuration, which hides the tooltip node from assistive
// technology and relies on the trigger's own label instead.
type Options struct {
	// Text is the displayed content. Empty means derive it from the
	// trigger's aria-label attribute, now and on later label mutations.
	Text string
	// Classes are extra class tokens added to the tooltip node.
	Classes []string
	// Position is the preferred side: "top", "left", "right" or "bottom".
	// Anything else falls back to "top".
	Position string
	// AriaHidden hides the tooltip node from assistive technology. When
	// false the trigger instead gains aria-describedby pointing at the
	// tooltip, which takes precedence over hiding it.
	AriaHidden bool
}

// DefaultOptions returns the conventional configuration: position top,
// tooltip node hidden from assistive technology.
func DefaultOptions() Options {
	return Options{AriaHidden: true}
}

// Factory owns the id counter that keeps tooltip element ids unique.
// Ids are issued monotonically and never reused or reset. The host model
// is single-threaded, so the counter is unsynchronized.
type Factory struct {
	nextID int
}

func NewFactory() *Factory {
	return &Factory{}
}

// defaultFactory backs the package-level New so unrelated callers still
// get process-wide unique ids.
var defaultFactory Factory

// New attaches a tooltip to trigger using the package's shared id counter.
func New(trigger *dom.Node, opts Options) *Tooltip {
	return defaultFactory.New(trigger, opts)
}

type source int

const (
	hoverSource source = iota
	focusSource
)

// Tooltip is one tooltip instance bound to a trigger element. The trigger
// owns the tooltip node in the tree; the instance holds non-owning
// references for manipulation. There is no teardown: listeners and the
// label observer live exactly as long as the trigger node does.
type Tooltip struct {
	trigger  *dom.Node
	node     *dom.Node
	text     string
	position Position

	hoverActive bool
	focusActive bool

	// One capturing document-scope keydown listener per shown instance.
	// escapeScope remembers where it was installed so install and remove
	// stay balanced even if the tree is reparented between events.
	escapeHandle    dom.ListenerHandle
	escapeScope     *dom.Node
	escapeInstalled bool
}

// New constructs a tooltip as a child of trigger and wires its listeners.
// It never fails: missing labels render as empty text and unknown
// positions fall back to top.
func (f *Factory) New(trigger *dom.Node, opts Options) *Tooltip {
	id := f.nextID
	f.nextID++

	t := &Tooltip{
		trigger:  trigger,
		node:     dom.NewElement("div"),
		text:     opts.Text,
		position: normalizePosition(opts.Position),
	}

	t.node.AddClass(BaseClass)
	t.node.AddClass(opts.Classes...)
	switch t.position {
	case Left:
		t.node.AddClass(LeftClass)
	case Right:
		t.node.AddClass(RightClass)
	case Bottom:
		t.node.AddClass(BottomClass)
	}

	elementID := fmt.Sprintf("tooltip-%d", id)
	t.node.SetAttribute("role", "tooltip")
	t.node.SetAttribute("id", elementID)
	if opts.AriaHidden {
		t.node.SetAttribute("aria-hidden", "true")
	} else {
		t.node.SetAttribute("aria-hidden", "false")
		trigger.SetAttribute("aria-describedby", elementID)
	}

	t.render()
	trigger.AddChild(t.node)

	// Late-added or mutated labels refresh the content; explicit text
	// still wins in render.
	obs := dom.NewObserver(func(rec dom.MutationRecord) {
		if rec.NewValue != "" {
			t.render()
		}
	})
	obs.Observe(trigger, "aria-label")

	trigger.AddEventListener("mouseenter", func(*dom.Event) { t.activate(hoverSource) })
	trigger.AddEventListener("mouseleave", func(*dom.Event) { t.deactivate(hoverSource) })
	trigger.AddEventListener("focusin", func(*dom.Event) { t.activate(focusSource) })
	trigger.AddEventListener("focusout", func(*dom.Event) { t.deactivate(focusSource) })

	// A tap on the tooltip itself must not reach the trigger's own click
	// handlers.
	t.node.AddEventListener("click", func(ev *dom.Event) { ev.StopPropagation() })

	return t
}

// SetText overrides the displayed content. An empty string reverts to the
// trigger's aria-label. The content re-renders immediately.
func (t *Tooltip) SetText(text string) {
	t.text = text
	t.render()
}

// Element returns the tooltip node, for embedding contexts that need to
// place or inspect it.
func (t *Tooltip) Element() *dom.Node {
	return t.node
}

// render applies the content precedence rule: explicit text, else the
// trigger's aria-label, else empty.
func (t *Tooltip) render() {
	content := t.text
	if content == "" {
		content, _ = t.trigger.GetAttribute("aria-label")
	}
	t.node.SetTextContent(content)
}

func (t *Tooltip) shown() bool {
	return t.hoverActive || t.focusActive
}

func (t *Tooltip) set(src source, active bool) {
	if src == hoverSource {
		t.hoverActive = active
	} else {
		t.focusActive = active
	}
}

// activate turns a source on. Only the hidden-to-shown edge runs show side
// effects: a second source joining an already shown tooltip updates its
// boolean and nothing else, so placement is not recomputed.
func (t *Tooltip) activate(src source) {
	wasShown := t.shown()
	t.set(src, true)
	if !wasShown {
		t.show()
	}
}

// deactivate turns a source off. The tooltip stays shown until both
// sources are off; only the shown-to-hidden edge runs hide side effects.
func (t *Tooltip) deactivate(src source) {
	wasShown := t.shown()
	t.set(src, false)
	if wasShown && !t.shown() {
		t.hide()
	}
}

func (t *Tooltip) show() {
	t.node.AddClass(VisibleClass)

	// Escape dismisses the tooltip visually without touching the
	// hover/focus booleans. That asymmetry is deliberate: dismissal is a
	// presentation shortcut, the state machine still waits for the real
	// deactivation events.
	scope := t.trigger.Root()
	t.escapeHandle = scope.AddCaptureListener("keydown", func(ev *dom.Event) {
		if ev.Key == "Escape" {
			t.node.RemoveClass(VisibleClass)
		}
	})
	t.escapeScope = scope
	t.escapeInstalled = true

	container := t.trigger.ClosestClass(ContainerClass)
	if container == nil {
		container = t.trigger.Root()
	}

	adj := ComputeAdjustment(t.position, container.Offset, t.trigger.Offset, t.node.Offset)
	applyAdjustment(t.node, adj)
}

func (t *Tooltip) hide() {
	t.node.RemoveClass(VisibleClass)
	if t.escapeInstalled {
		t.escapeScope.RemoveEventListener(t.escapeHandle)
		t.escapeInstalled = false
		t.escapeScope = nil
	}
}
