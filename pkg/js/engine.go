// Package js executes embedded JavaScript against the headless DOM, so a
// host page can attach and drive tooltips the way it would in a browser.
// Element proxies are goja DynamicObjects over dom.Node; the global
// Tooltip(element, options) factory is bound to pkg/tooltip.
package js

import (
	"fmt"

	"hovertip/pkg/dom"

	"github.com/dop251/goja"
)

// Engine executes JavaScript against a document's DOM.
type Engine struct {
	vm *goja.Runtime
}

// New creates a new JS engine with a fresh goja runtime.
func New() *Engine {
	vm := goja.New()
	e := &Engine{vm: vm}

	c := &consoleAPI{}
	c.register(vm)

	return e
}

// Execute runs all scripts from the document against the DOM, in document
// order. The document and Tooltip globals are (re)bound to this document
// before the first script runs.
func (e *Engine) Execute(doc *dom.Document) error {
	ctx := registerDocument(e.vm, doc)
	registerTooltip(ctx)

	for i, script := range doc.Scripts {
		_, err := e.vm.RunString(script)
		if err != nil {
			return fmt.Errorf("script %d: %w", i, err)
		}
	}

	return nil
}
