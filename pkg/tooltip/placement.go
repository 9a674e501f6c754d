package tooltip

import "hovertip/pkg/dom"

// Position is the preferred side of the trigger the tooltip opens on.
type Position string

const (
	Top    Position = "top"
	Left   Position = "left"
	Right  Position = "right"
	Bottom Position = "bottom"
)

// normalizePosition maps unrecognized values to Top. Bad configuration
// degrades, it never fails.
func normalizePosition(s string) Position {
	switch Position(s) {
	case Left, Right, Bottom:
		return Position(s)
	}
	return Top
}

// HorizontalAdjustment is the horizontal clamp applied on show.
type HorizontalAdjustment int

const (
	HorizontalNone HorizontalAdjustment = iota
	ShiftedLeft
	ShiftedRight
)

// VerticalAdjustment is the vertical clamp applied on show.
type VerticalAdjustment int

const (
	VerticalNone VerticalAdjustment = iota
	ShiftedUp
	ShiftedDown
)

// Adjustment is the per-axis placement correction for one show. It is
// recomputed on every hidden-to-shown edge and never persisted across hides.
type Adjustment struct {
	Horizontal HorizontalAdjustment
	Vertical   VerticalAdjustment
}

// ComputeAdjustment decides how the tooltip must shift to stay inside the
// container. Pure function of the three offset boxes and the preferred
// position: no DOM access, so hosts and tests can evaluate placement
// without a rendering pass.
//
// Each axis is independent and the first matching rule wins: the
// too-far-left (resp. too-high) check runs before the too-far-right
// (resp. too-low) check.
func ComputeAdjustment(pos Position, container, trigger, tip dom.Rect) Adjustment {
	var adj Adjustment

	// Horizontal: no room on the left pushes the tooltip right, no room
	// on the right pushes it left.
	if (pos == Left && trigger.Left < tip.Width) ||
		trigger.Left+trigger.Width < tip.Width {
		adj.Horizontal = ShiftedRight
	} else if (pos == Right && trigger.Left+trigger.Width+tip.Width > container.Width) ||
		trigger.Left+tip.Width > container.Width {
		adj.Horizontal = ShiftedLeft
	}

	// Vertical: the tooltip's own top offset is part of the math because
	// a tooltip opening upward sits at a negative offset from its trigger.
	if (pos == Top && trigger.Top < -tip.Top) ||
		trigger.Top < tip.Top {
		adj.Vertical = ShiftedDown
	} else if (pos == Bottom && trigger.Top+tip.Top+tip.Height > container.Height) ||
		trigger.Top+trigger.Height+tip.Top > container.Height {
		adj.Vertical = ShiftedUp
	}

	return adj
}

// applyAdjustment realizes an Adjustment as class tokens on the tooltip
// node. Markers for the other variant of each axis are always cleared, so
// repeated shows with changing geometry never accumulate stale classes.
func applyAdjustment(node *dom.Node, adj Adjustment) {
	switch adj.Horizontal {
	case ShiftedRight:
		node.AddClass(AdjustedRightClass)
		node.RemoveClass(AdjustedLeftClass)
	case ShiftedLeft:
		node.AddClass(AdjustedLeftClass)
		node.RemoveClass(AdjustedRightClass)
	default:
		node.RemoveClass(AdjustedLeftClass, AdjustedRightClass)
	}

	switch adj.Vertical {
	case ShiftedDown:
		node.AddClass(AdjustedDownClass)
		node.RemoveClass(AdjustedUpClass)
	case ShiftedUp:
		node.AddClass(AdjustedUpClass)
		node.RemoveClass(AdjustedDownClass)
	default:
		node.RemoveClass(AdjustedUpClass, AdjustedDownClass)
	}
}
