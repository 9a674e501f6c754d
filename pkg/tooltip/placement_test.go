package tooltip

import (
	"testing"

	"hovertip/pkg/dom"
)

func TestNormalizePosition(t *testing.T) {
	cases := []struct {
		in   string
		want Position
	}{
		{"top", Top},
		{"left", Left},
		{"right", Right},
		{"bottom", Bottom},
		{"", Top},
		{"center", Top},
		{"TOP", Top},
	}
	for _, c := range cases {
		if got := normalizePosition(c.in); got != c.want {
			t.Errorf("normalizePosition(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestComputeAdjustmentNoRoom(t *testing.T) {
	// Narrow trigger near the left edge: the tooltip cannot fit to the
	// left, so it shifts right regardless of preferred position.
	container := dom.Rect{Width: 100, Height: 100}
	trigger := dom.Rect{Left: 0, Top: 50, Width: 10, Height: 10}
	tip := dom.Rect{Width: 30, Height: 20}

	adj := ComputeAdjustment(Top, container, trigger, tip)
	if adj.Horizontal != ShiftedRight {
		t.Errorf("Horizontal = %v, want ShiftedRight", adj.Horizontal)
	}
	if adj.Vertical != VerticalNone {
		t.Errorf("Vertical = %v, want VerticalNone", adj.Vertical)
	}
}

func TestComputeAdjustmentLeftPosition(t *testing.T) {
	// Preferred position left, but the trigger's left offset is smaller
	// than the tooltip width.
	container := dom.Rect{Width: 200, Height: 100}
	trigger := dom.Rect{Left: 20, Top: 50, Width: 100, Height: 10}
	tip := dom.Rect{Width: 30, Height: 20}

	adj := ComputeAdjustment(Left, container, trigger, tip)
	if adj.Horizontal != ShiftedRight {
		t.Errorf("Horizontal = %v, want ShiftedRight", adj.Horizontal)
	}
}

func TestComputeAdjustmentOverflowRight(t *testing.T) {
	container := dom.Rect{Width: 100, Height: 100}
	trigger := dom.Rect{Left: 80, Top: 50, Width: 15, Height: 10}
	tip := dom.Rect{Width: 30, Height: 20}

	adj := ComputeAdjustment(Top, container, trigger, tip)
	if adj.Horizontal != ShiftedLeft {
		t.Errorf("Horizontal = %v, want ShiftedLeft", adj.Horizontal)
	}
}

func TestComputeAdjustmentRightPosition(t *testing.T) {
	// Preferred position right: trigger right edge plus tooltip width
	// exceeds the container even though the general overflow check passes.
	container := dom.Rect{Width: 100, Height: 100}
	trigger := dom.Rect{Left: 40, Top: 50, Width: 40, Height: 10}
	tip := dom.Rect{Width: 30, Height: 20}

	adj := ComputeAdjustment(Right, container, trigger, tip)
	if adj.Horizontal != ShiftedLeft {
		t.Errorf("Horizontal = %v, want ShiftedLeft", adj.Horizontal)
	}
}

func TestComputeAdjustmentOverflowTop(t *testing.T) {
	// A tooltip opening upward sits at a negative top offset. When the
	// trigger is closer to the container top than that, it flips down.
	container := dom.Rect{Width: 200, Height: 200}
	trigger := dom.Rect{Left: 50, Top: 10, Width: 60, Height: 20}
	tip := dom.Rect{Top: -30, Width: 40, Height: 24}

	adj := ComputeAdjustment(Top, container, trigger, tip)
	if adj.Vertical != ShiftedDown {
		t.Errorf("Vertical = %v, want ShiftedDown", adj.Vertical)
	}
}

func TestComputeAdjustmentOverflowBottom(t *testing.T) {
	container := dom.Rect{Width: 200, Height: 100}
	trigger := dom.Rect{Left: 50, Top: 80, Width: 60, Height: 10}
	tip := dom.Rect{Top: 12, Width: 40, Height: 20}

	adj := ComputeAdjustment(Bottom, container, trigger, tip)
	if adj.Vertical != ShiftedUp {
		t.Errorf("Vertical = %v, want ShiftedUp", adj.Vertical)
	}
}

func TestComputeAdjustmentFits(t *testing.T) {
	container := dom.Rect{Width: 400, Height: 300}
	trigger := dom.Rect{Left: 150, Top: 100, Width: 80, Height: 30}
	tip := dom.Rect{Top: -40, Width: 60, Height: 24}

	adj := ComputeAdjustment(Top, container, trigger, tip)
	if adj != (Adjustment{}) {
		t.Errorf("adjustment = %+v, want zero", adj)
	}
}

func TestComputeAdjustmentAxesIndependent(t *testing.T) {
	// Cramped both ways: near the top-left corner of a small container.
	container := dom.Rect{Width: 100, Height: 100}
	trigger := dom.Rect{Left: 0, Top: 5, Width: 10, Height: 10}
	tip := dom.Rect{Top: -30, Width: 30, Height: 24}

	adj := ComputeAdjustment(Top, container, trigger, tip)
	if adj.Horizontal != ShiftedRight || adj.Vertical != ShiftedDown {
		t.Errorf("adjustment = %+v, want shifted right and down", adj)
	}
}

func TestApplyAdjustmentClears(t *testing.T) {
	n := dom.NewElement("div")
	n.AddClass(AdjustedRightClass, AdjustedDownClass)

	applyAdjustment(n, Adjustment{})
	for _, cls := range []string{AdjustedLeftClass, AdjustedRightClass, AdjustedUpClass, AdjustedDownClass} {
		if n.HasClass(cls) {
			t.Errorf("stale class %q not cleared", cls)
		}
	}
}

func TestApplyAdjustmentReplacesOpposite(t *testing.T) {
	n := dom.NewElement("div")
	n.AddClass(AdjustedRightClass)

	applyAdjustment(n, Adjustment{Horizontal: ShiftedLeft, Vertical: ShiftedUp})
	if !n.HasClass(AdjustedLeftClass) || n.HasClass(AdjustedRightClass) {
		t.Error("horizontal marker not replaced")
	}
	if !n.HasClass(AdjustedUpClass) || n.HasClass(AdjustedDownClass) {
		t.Error("vertical marker not applied")
	}
}
