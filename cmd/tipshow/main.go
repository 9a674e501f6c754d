// tipshow is an interactive tooltip playground: a fyne window with controls
// that feed hover/focus/escape events into the engine and a canvas showing
// the rendered snapshot after every transition.
package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"hovertip/pkg/dom"
	"hovertip/pkg/render"
	"hovertip/pkg/tooltip"
)

const (
	viewWidth  = 640
	viewHeight = 420
)

func main() {
	a := app.New()
	w := a.NewWindow("hovertip playground")
	w.Resize(fyne.NewSize(700, 540))

	doc, trigger, tip := buildDemoDocument()

	snap := render.NewSnapshot(viewWidth, viewHeight)
	snap.Render(doc)
	canvasImg := canvas.NewImageFromImage(snap.Image())
	canvasImg.FillMode = canvas.ImageFillOriginal

	status := widget.NewLabel("hidden")
	refresh := func() {
		snap.Render(doc)
		canvasImg.Image = snap.Image()
		canvasImg.Refresh()
		status.SetText(fmt.Sprintf("classes: %v", tip.Element().Classes()))
	}

	hovering := false
	focused := false

	hoverBtn := widget.NewButton("Hover", func() {
		hovering = !hovering
		if hovering {
			trigger.Dispatch(&dom.Event{Type: "mouseenter"})
		} else {
			trigger.Dispatch(&dom.Event{Type: "mouseleave"})
		}
		refresh()
	})
	focusBtn := widget.NewButton("Focus", func() {
		focused = !focused
		if focused {
			trigger.Dispatch(&dom.Event{Type: "focusin"})
		} else {
			trigger.Dispatch(&dom.Event{Type: "focusout"})
		}
		refresh()
	})
	escapeBtn := widget.NewButton("Escape", func() {
		doc.Root.Dispatch(&dom.Event{Type: "keydown", Key: "Escape"})
		refresh()
	})

	textEntry := widget.NewEntry()
	textEntry.SetPlaceHolder("tooltip text (empty reverts to aria-label)")
	textEntry.OnSubmitted = func(s string) {
		tip.SetText(s)
		refresh()
	}

	controls := container.NewHBox(hoverBtn, focusBtn, escapeBtn)
	top := container.NewBorder(nil, nil, nil, nil, textEntry)
	content := container.NewBorder(container.NewVBox(top, controls), status, nil, nil, canvasImg)
	w.SetContent(content)

	w.ShowAndRun()
}

// buildDemoDocument lays out a container with one trigger near its left
// edge, tight enough that the engine has to clamp the tooltip.
func buildDemoDocument() (*dom.Document, *dom.Node, *tooltip.Tooltip) {
	doc := dom.NewDocument()
	doc.Root.Offset = dom.Rect{Width: viewWidth, Height: viewHeight}

	boundary := dom.NewElement("div")
	boundary.AddClass(tooltip.ContainerClass)
	boundary.Offset = dom.Rect{Left: 20, Top: 20, Width: 300, Height: 200}
	doc.Root.AddChild(boundary)

	trigger := dom.NewElement("button")
	trigger.SetAttribute("id", "demo-trigger")
	trigger.SetAttribute("aria-label", "Demo trigger")
	trigger.Offset = dom.Rect{Left: 40, Top: 60, Width: 90, Height: 28}
	boundary.AddChild(trigger)

	opts := tooltip.DefaultOptions()
	opts.Text = "Hello from hovertip"
	tip := tooltip.New(trigger, opts)
	tip.Element().Offset = dom.Rect{Top: -30, Width: 140, Height: 24}

	return doc, trigger, tip
}
