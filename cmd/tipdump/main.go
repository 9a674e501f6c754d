// tipdump attaches tooltips to an HTML page, replays an event sequence
// against the first trigger, and prints the resulting DOM. Elements opt in
// with data-tooltip (the text) and may carry data-tooltip-position plus
// data-left/top/width/height geometry. Inline <script> blocks run first,
// so pages can also construct tooltips themselves.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"hovertip/pkg/dom"
	"hovertip/pkg/js"
	"hovertip/pkg/render"
	"hovertip/pkg/tooltip"
)

func main() {
	width := flag.Int("w", 800, "document width in pixels")
	height := flag.Int("h", 600, "document height in pixels")
	output := flag.String("o", "", "optional output PNG file path")
	events := flag.String("events", "hover", "comma-separated events to replay: hover, unhover, focus, blur, escape")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: tipdump [flags] <page.html>\n\nFlags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	content, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
		os.Exit(1)
	}
	doc, err := dom.Parse(string(content))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing HTML: %v\n", err)
		os.Exit(1)
	}
	doc.Root.Offset = dom.Rect{Width: float64(*width), Height: float64(*height)}

	if len(doc.Scripts) > 0 {
		fmt.Fprintf(os.Stderr, "Running %d script(s)\n", len(doc.Scripts))
		if err := js.New().Execute(doc); err != nil {
			fmt.Fprintf(os.Stderr, "Error executing script: %v\n", err)
			os.Exit(1)
		}
	}

	triggers := doc.Root.FindByAttr("data-tooltip")
	if len(triggers) == 0 && len(doc.Scripts) == 0 {
		fmt.Fprintln(os.Stderr, "No elements with data-tooltip found")
		os.Exit(1)
	}
	for _, trigger := range triggers {
		text, _ := trigger.GetAttribute("data-tooltip")
		position, _ := trigger.GetAttribute("data-tooltip-position")
		opts := tooltip.DefaultOptions()
		opts.Text = text
		opts.Position = position
		tooltip.New(trigger, opts)
	}
	fmt.Fprintf(os.Stderr, "Attached %d tooltip(s)\n", len(triggers))

	if len(triggers) > 0 {
		first := triggers[0]
		for _, name := range strings.Split(*events, ",") {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			ev, err := eventFor(name)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			fmt.Fprintf(os.Stderr, "Dispatching %s\n", name)
			first.Dispatch(ev)
		}
	}

	fmt.Println(doc.Root.Serialize())

	if *output != "" {
		snap := render.NewSnapshot(*width, *height)
		snap.Render(doc)
		if err := snap.SavePNG(*output); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving PNG: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Saved snapshot to %s\n", *output)
	}
}

func eventFor(name string) (*dom.Event, error) {
	switch name {
	case "hover":
		return &dom.Event{Type: "mouseenter"}, nil
	case "unhover":
		return &dom.Event{Type: "mouseleave"}, nil
	case "focus":
		return &dom.Event{Type: "focusin"}, nil
	case "blur":
		return &dom.Event{Type: "focusout"}, nil
	case "escape":
		return &dom.Event{Type: "keydown", Key: "Escape"}, nil
	}
	return nil, fmt.Errorf("unknown event %q", name)
}
