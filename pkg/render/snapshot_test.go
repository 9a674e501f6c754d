package render

import (
	"image/color"
	"testing"

	"hovertip/pkg/dom"
	"hovertip/pkg/tooltip"
)

func buildScene() (*dom.Document, *dom.Node, *tooltip.Tooltip) {
	doc := dom.NewDocument()
	doc.Root.Offset = dom.Rect{Width: 200, Height: 200}

	trigger := dom.NewElement("button")
	trigger.SetAttribute("id", "btn")
	trigger.Offset = dom.Rect{Left: 60, Top: 100, Width: 40, Height: 20}
	doc.Root.AddChild(trigger)

	opts := tooltip.DefaultOptions()
	opts.Text = "Hi"
	tip := tooltip.New(trigger, opts)
	tip.Element().Offset = dom.Rect{Top: -30, Width: 40, Height: 20}
	return doc, trigger, tip
}

func luminance(c color.Color) uint32 {
	r, g, b, _ := c.RGBA()
	return (r + g + b) / 3
}

func TestHiddenTooltipNotPainted(t *testing.T) {
	doc, _, _ := buildScene()
	snap := NewSnapshot(200, 200)
	snap.Render(doc)

	// Above the trigger, where the tooltip would sit: still background.
	if lum := luminance(snap.Image().At(80, 90)); lum < 0xF000 {
		t.Errorf("expected background above trigger, luminance=%#x", lum)
	}
}

func TestVisibleTooltipPainted(t *testing.T) {
	doc, trigger, _ := buildScene()
	trigger.Dispatch(&dom.Event{Type: "mouseenter"})

	snap := NewSnapshot(200, 200)
	snap.Render(doc)

	// The tooltip box spans (60,80)-(100,100); probe its middle.
	if lum := luminance(snap.Image().At(80, 90)); lum > 0x8000 {
		t.Errorf("expected dark tooltip box, luminance=%#x", lum)
	}
}

func TestAdjustedTooltipPaintedBelow(t *testing.T) {
	doc, trigger, tip := buildScene()
	// Move the trigger to the top edge so the engine flips downward.
	trigger.Offset = dom.Rect{Left: 60, Top: 10, Width: 40, Height: 20}
	trigger.Dispatch(&dom.Event{Type: "mouseenter"})
	if !tip.Element().HasClass(tooltip.AdjustedDownClass) {
		t.Fatal("scene should produce a downward adjustment")
	}

	snap := NewSnapshot(200, 200)
	snap.Render(doc)

	img := snap.Image()
	// Below the trigger: (60,30)-(100,50) is the flipped tooltip box.
	if lum := luminance(img.At(80, 40)); lum > 0x8000 {
		t.Errorf("expected tooltip painted below trigger, luminance=%#x", lum)
	}
	// Above the trigger there is no room, nothing should be painted.
	if lum := luminance(img.At(80, 2)); lum < 0xF000 {
		t.Errorf("expected background above trigger, luminance=%#x", lum)
	}
}

func TestImageSize(t *testing.T) {
	snap := NewSnapshot(320, 240)
	bounds := snap.Image().Bounds()
	if bounds.Dx() != 320 || bounds.Dy() != 240 {
		t.Errorf("image bounds = %v", bounds)
	}
}
