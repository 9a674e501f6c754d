// Package render draws debug snapshots of a document's tooltip state: the
// bounding container, every element with geometry, and any visible tooltip
// placed according to its position and adjustment classes. It exists for
// the demo binaries and for pixel-level tests; real styling belongs to the
// host page's CSS.
package render

import (
	"image"

	"github.com/fogleman/gg"

	"hovertip/pkg/dom"
	"hovertip/pkg/tooltip"
)

const (
	defaultTipWidth  = 80.0
	defaultTipHeight = 24.0
)

type Snapshot struct {
	context *gg.Context
}

func NewSnapshot(width, height int) *Snapshot {
	return &Snapshot{context: gg.NewContext(width, height)}
}

// Render paints the document. Boxes use host-supplied Offset geometry;
// tooltip nodes are positioned relative to their trigger (parent) from
// their class tokens alone, the same tokens a CSS stylesheet would key on.
func (s *Snapshot) Render(doc *dom.Document) {
	s.context.SetRGB(1, 1, 1)
	s.context.Clear()
	s.renderNode(doc.Root)
}

func (s *Snapshot) renderNode(n *dom.Node) {
	if n.Type == dom.ElementNode {
		switch {
		case n.HasClass(tooltip.BaseClass):
			s.drawTooltip(n)
			// Tooltip text is drawn with the box, not as child boxes.
			return
		case n.HasClass(tooltip.ContainerClass):
			s.drawContainer(n)
		case n.Offset.Width > 0 && n.Offset.Height > 0:
			s.drawElement(n)
		}
	}
	for _, child := range n.Children {
		s.renderNode(child)
	}
}

func (s *Snapshot) drawContainer(n *dom.Node) {
	s.context.SetRGB(0.93, 0.93, 0.93)
	s.context.DrawRectangle(n.Offset.Left, n.Offset.Top, n.Offset.Width, n.Offset.Height)
	s.context.FillPreserve()
	s.context.SetRGB(0.6, 0.6, 0.6)
	s.context.SetLineWidth(1)
	s.context.Stroke()
}

func (s *Snapshot) drawElement(n *dom.Node) {
	s.context.SetRGB(1, 1, 1)
	s.context.DrawRectangle(n.Offset.Left, n.Offset.Top, n.Offset.Width, n.Offset.Height)
	s.context.FillPreserve()
	s.context.SetRGB(0, 0, 0)
	s.context.SetLineWidth(1)
	s.context.Stroke()

	label := n.TagName
	if id, ok := n.GetAttribute("id"); ok {
		label = id
	}
	s.context.DrawString(label, n.Offset.Left+3, n.Offset.Top+12)
}

// drawTooltip paints a visible tooltip as a dark box beside its trigger.
// Hidden tooltips do not paint at all.
func (s *Snapshot) drawTooltip(n *dom.Node) {
	if !n.HasClass(tooltip.VisibleClass) || n.Parent == nil {
		return
	}
	trigger := n.Parent.Offset

	w := n.Offset.Width
	h := n.Offset.Height
	if w <= 0 {
		w = defaultTipWidth
	}
	if h <= 0 {
		h = defaultTipHeight
	}

	// Base placement from the position class; top is the unmarked default.
	x := trigger.Left
	y := trigger.Top - h
	switch {
	case n.HasClass(tooltip.BottomClass):
		y = trigger.Top + trigger.Height
	case n.HasClass(tooltip.LeftClass):
		x = trigger.Left - w
		y = trigger.Top
	case n.HasClass(tooltip.RightClass):
		x = trigger.Left + trigger.Width
		y = trigger.Top
	}

	// Adjustment classes override per axis.
	if n.HasClass(tooltip.AdjustedRightClass) {
		x = trigger.Left
	}
	if n.HasClass(tooltip.AdjustedLeftClass) {
		x = trigger.Left + trigger.Width - w
	}
	if n.HasClass(tooltip.AdjustedDownClass) {
		y = trigger.Top + trigger.Height
	}
	if n.HasClass(tooltip.AdjustedUpClass) {
		y = trigger.Top - h
	}

	s.context.SetRGB(0.15, 0.15, 0.2)
	s.context.DrawRectangle(x, y, w, h)
	s.context.Fill()
	s.context.SetRGB(1, 1, 1)
	s.context.DrawString(n.TextContent(), x+4, y+h/2+4)
}

// Image returns the rendered snapshot.
func (s *Snapshot) Image() image.Image {
	return s.context.Image()
}

// SavePNG writes the snapshot to a PNG file.
func (s *Snapshot) SavePNG(path string) error {
	return s.context.SavePNG(path)
}
