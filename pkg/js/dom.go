package js

import (
	"strconv"
	"strings"

	"hovertip/pkg/dom"

	"github.com/dop251/goja"
)

// domContext holds shared state for DOM bindings within a single execution.
// It maintains a node-to-proxy cache so the same JS object is returned for
// the same underlying *dom.Node (needed for === identity checks), and maps
// JS listener functions back to their Go listener handles so
// removeEventListener can work on function identity.
type domContext struct {
	vm        *goja.Runtime
	doc       *dom.Document
	cache     map[*dom.Node]goja.Value
	listeners map[listenerKey]dom.ListenerHandle
}

type listenerKey struct {
	node    *dom.Node
	typ     string
	fn      *goja.Object
	capture bool
}

func newDOMContext(vm *goja.Runtime, doc *dom.Document) *domContext {
	return &domContext{
		vm:        vm,
		doc:       doc,
		cache:     make(map[*dom.Node]goja.Value),
		listeners: make(map[listenerKey]dom.ListenerHandle),
	}
}

// registerDocument sets up the global `document` object on the goja runtime.
func registerDocument(vm *goja.Runtime, doc *dom.Document) *domContext {
	ctx := newDOMContext(vm, doc)

	docObj := vm.NewObject()
	docObj.Set("getElementById", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) == 0 {
			return goja.Null()
		}
		node := doc.Root.FindByID(call.Arguments[0].String())
		if node == nil {
			return goja.Null()
		}
		return ctx.elementProxy(node)
	})
	docObj.Set("createElement", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) == 0 {
			panic(vm.NewTypeError("Failed to execute 'createElement' on 'Document': 1 argument required"))
		}
		return ctx.elementProxy(dom.NewElement(call.Arguments[0].String()))
	})
	docObj.Set("createTextNode", func(call goja.FunctionCall) goja.Value {
		text := ""
		if len(call.Arguments) > 0 {
			text = call.Arguments[0].String()
		}
		return ctx.elementProxy(dom.NewText(text))
	})
	docObj.Set("body", ctx.elementProxy(doc.Root))
	docObj.Set("addEventListener", func(call goja.FunctionCall) goja.Value {
		ctx.addListener(doc.Root, call)
		return goja.Undefined()
	})
	docObj.Set("removeEventListener", func(call goja.FunctionCall) goja.Value {
		ctx.removeListener(doc.Root, call)
		return goja.Undefined()
	})
	docObj.Set("dispatchEvent", func(call goja.FunctionCall) goja.Value {
		ctx.dispatch(doc.Root, call)
		return ctx.vm.ToValue(true)
	})

	vm.Set("document", docObj)
	return ctx
}

// elementProxy creates (or retrieves from cache) a JS DynamicObject wrapping
// a dom.Node.
func (ctx *domContext) elementProxy(node *dom.Node) goja.Value {
	if v, ok := ctx.cache[node]; ok {
		return v
	}
	v := ctx.vm.NewDynamicObject(&elementAccessor{ctx: ctx, node: node})
	ctx.cache[node] = v
	return v
}

// elementArray creates a JS array of element proxies.
func (ctx *domContext) elementArray(nodes []*dom.Node) goja.Value {
	arr := ctx.vm.NewArray()
	for i, n := range nodes {
		arr.Set(strconv.Itoa(i), ctx.elementProxy(n))
	}
	arr.Set("length", len(nodes))
	return arr
}

// unwrapNode extracts the *dom.Node from a goja value that wraps an
// elementAccessor.
func (ctx *domContext) unwrapNode(val goja.Value) *dom.Node {
	if val == nil || goja.IsNull(val) || goja.IsUndefined(val) {
		return nil
	}
	obj := val.ToObject(ctx.vm)
	for node, cached := range ctx.cache {
		if cached.SameAs(obj) {
			return node
		}
	}
	return nil
}

// addListener implements addEventListener(type, fn[, useCapture]).
func (ctx *domContext) addListener(node *dom.Node, call goja.FunctionCall) {
	if len(call.Arguments) < 2 {
		panic(ctx.vm.NewTypeError("Failed to execute 'addEventListener': 2 arguments required"))
	}
	typ := call.Arguments[0].String()
	fnObj := call.Arguments[1].ToObject(ctx.vm)
	callable, ok := goja.AssertFunction(call.Arguments[1])
	if !ok {
		panic(ctx.vm.NewTypeError("Failed to execute 'addEventListener': listener is not a function"))
	}
	capture := len(call.Arguments) > 2 && call.Arguments[2].ToBoolean()

	goFn := func(ev *dom.Event) {
		callable(goja.Undefined(), ctx.eventObject(ev))
	}
	var handle dom.ListenerHandle
	if capture {
		handle = node.AddCaptureListener(typ, goFn)
	} else {
		handle = node.AddEventListener(typ, goFn)
	}
	ctx.listeners[listenerKey{node: node, typ: typ, fn: fnObj, capture: capture}] = handle
}

// removeListener implements removeEventListener(type, fn[, useCapture]).
func (ctx *domContext) removeListener(node *dom.Node, call goja.FunctionCall) {
	if len(call.Arguments) < 2 {
		return
	}
	key := listenerKey{
		node:    node,
		typ:     call.Arguments[0].String(),
		fn:      call.Arguments[1].ToObject(ctx.vm),
		capture: len(call.Arguments) > 2 && call.Arguments[2].ToBoolean(),
	}
	if handle, ok := ctx.listeners[key]; ok {
		node.RemoveEventListener(handle)
		delete(ctx.listeners, key)
	}
}

// dispatch implements dispatchEvent({type, key}).
func (ctx *domContext) dispatch(node *dom.Node, call goja.FunctionCall) {
	if len(call.Arguments) == 0 {
		panic(ctx.vm.NewTypeError("Failed to execute 'dispatchEvent': 1 argument required"))
	}
	obj := call.Arguments[0].ToObject(ctx.vm)
	ev := &dom.Event{}
	if v := obj.Get("type"); v != nil && !goja.IsUndefined(v) {
		ev.Type = v.String()
	}
	if v := obj.Get("key"); v != nil && !goja.IsUndefined(v) {
		ev.Key = v.String()
	}
	node.Dispatch(ev)
}

// eventObject wraps a dom.Event for a JS listener.
func (ctx *domContext) eventObject(ev *dom.Event) goja.Value {
	obj := ctx.vm.NewObject()
	obj.Set("type", ev.Type)
	obj.Set("key", ev.Key)
	if ev.Target != nil {
		obj.Set("target", ctx.elementProxy(ev.Target))
	} else {
		obj.Set("target", goja.Null())
	}
	obj.Set("stopPropagation", func(call goja.FunctionCall) goja.Value {
		ev.StopPropagation()
		return goja.Undefined()
	})
	return obj
}

// elementAccessor implements goja.DynamicObject to intercept property access
// on DOM element proxies.
type elementAccessor struct {
	ctx  *domContext
	node *dom.Node
}

func (e *elementAccessor) Get(key string) goja.Value {
	vm := e.ctx.vm

	switch key {
	case "nodeType":
		if e.node.Type == dom.TextNode {
			return vm.ToValue(3) // Node.TEXT_NODE
		}
		return vm.ToValue(1) // Node.ELEMENT_NODE
	case "tagName":
		if e.node.Type == dom.TextNode {
			return goja.Undefined()
		}
		return vm.ToValue(strings.ToUpper(e.node.TagName))
	case "id":
		id, _ := e.node.GetAttribute("id")
		return vm.ToValue(id)
	case "className":
		cls, _ := e.node.GetAttribute("class")
		return vm.ToValue(cls)
	case "textContent":
		return vm.ToValue(e.node.TextContent())
	case "innerHTML":
		return vm.ToValue(e.node.Serialize())
	case "outerHTML":
		return vm.ToValue(e.node.SerializeOuter())
	case "offsetLeft":
		return vm.ToValue(e.node.Offset.Left)
	case "offsetTop":
		return vm.ToValue(e.node.Offset.Top)
	case "offsetWidth":
		return vm.ToValue(e.node.Offset.Width)
	case "offsetHeight":
		return vm.ToValue(e.node.Offset.Height)
	case "getAttribute":
		return vm.ToValue(func(call goja.FunctionCall) goja.Value {
			if len(call.Arguments) == 0 {
				return goja.Null()
			}
			val, ok := e.node.GetAttribute(call.Arguments[0].String())
			if !ok {
				return goja.Null()
			}
			return vm.ToValue(val)
		})
	case "setAttribute":
		return vm.ToValue(func(call goja.FunctionCall) goja.Value {
			if len(call.Arguments) < 2 {
				return goja.Undefined()
			}
			e.node.SetAttribute(call.Arguments[0].String(), call.Arguments[1].String())
			return goja.Undefined()
		})
	case "hasAttribute":
		return vm.ToValue(func(call goja.FunctionCall) goja.Value {
			if len(call.Arguments) == 0 {
				return vm.ToValue(false)
			}
			_, ok := e.node.GetAttribute(call.Arguments[0].String())
			return vm.ToValue(ok)
		})
	case "removeAttribute":
		return vm.ToValue(func(call goja.FunctionCall) goja.Value {
			if len(call.Arguments) == 0 {
				return goja.Undefined()
			}
			e.node.RemoveAttribute(call.Arguments[0].String())
			return goja.Undefined()
		})
	case "classList":
		return newClassListProxy(e.ctx, e.node)
	case "children":
		var elChildren []*dom.Node
		for _, child := range e.node.Children {
			if child.Type == dom.ElementNode {
				elChildren = append(elChildren, child)
			}
		}
		return e.ctx.elementArray(elChildren)
	case "parentElement":
		if e.node.Parent != nil && e.node.Parent.Type == dom.ElementNode &&
			e.node.Parent.TagName != "document" {
			return e.ctx.elementProxy(e.node.Parent)
		}
		return goja.Null()
	case "appendChild":
		return vm.ToValue(func(call goja.FunctionCall) goja.Value {
			if len(call.Arguments) == 0 {
				panic(vm.NewTypeError("Failed to execute 'appendChild': 1 argument required"))
			}
			child := e.ctx.unwrapNode(call.Arguments[0])
			if child == nil {
				panic(vm.NewTypeError("Failed to execute 'appendChild': parameter is not a Node"))
			}
			if child.Parent != nil {
				child.Parent.RemoveChild(child)
			}
			e.node.AddChild(child)
			return e.ctx.elementProxy(child)
		})
	case "removeChild":
		return vm.ToValue(func(call goja.FunctionCall) goja.Value {
			if len(call.Arguments) == 0 {
				panic(vm.NewTypeError("Failed to execute 'removeChild': 1 argument required"))
			}
			child := e.ctx.unwrapNode(call.Arguments[0])
			if child == nil || e.node.RemoveChild(child) == nil {
				panic(vm.NewTypeError("Failed to execute 'removeChild': the node is not a child of this node"))
			}
			return e.ctx.elementProxy(child)
		})
	case "remove":
		return vm.ToValue(func(call goja.FunctionCall) goja.Value {
			if e.node.Parent != nil {
				e.node.Parent.RemoveChild(e.node)
			}
			return goja.Undefined()
		})
	case "addEventListener":
		return vm.ToValue(func(call goja.FunctionCall) goja.Value {
			e.ctx.addListener(e.node, call)
			return goja.Undefined()
		})
	case "removeEventListener":
		return vm.ToValue(func(call goja.FunctionCall) goja.Value {
			e.ctx.removeListener(e.node, call)
			return goja.Undefined()
		})
	case "dispatchEvent":
		return vm.ToValue(func(call goja.FunctionCall) goja.Value {
			e.ctx.dispatch(e.node, call)
			return vm.ToValue(true)
		})
	}
	return goja.Undefined()
}

func (e *elementAccessor) Set(key string, val goja.Value) bool {
	switch key {
	case "textContent":
		e.node.SetTextContent(val.String())
		return true
	case "className":
		e.node.SetAttribute("class", val.String())
		return true
	case "id":
		e.node.SetAttribute("id", val.String())
		return true
	// Offsets are writable so harness scripts can lay elements out the way
	// a rendering host would.
	case "offsetLeft":
		e.node.Offset.Left = val.ToFloat()
		return true
	case "offsetTop":
		e.node.Offset.Top = val.ToFloat()
		return true
	case "offsetWidth":
		e.node.Offset.Width = val.ToFloat()
		return true
	case "offsetHeight":
		e.node.Offset.Height = val.ToFloat()
		return true
	}
	return false
}

func (e *elementAccessor) Has(key string) bool {
	switch key {
	case "nodeType", "tagName", "id", "className", "textContent",
		"innerHTML", "outerHTML",
		"offsetLeft", "offsetTop", "offsetWidth", "offsetHeight",
		"getAttribute", "setAttribute", "hasAttribute", "removeAttribute",
		"classList", "children", "parentElement",
		"appendChild", "removeChild", "remove",
		"addEventListener", "removeEventListener", "dispatchEvent":
		return true
	}
	return false
}

func (e *elementAccessor) Delete(key string) bool {
	return false
}

func (e *elementAccessor) Keys() []string {
	return []string{
		"nodeType", "tagName", "id", "className", "textContent",
		"innerHTML", "outerHTML",
		"offsetLeft", "offsetTop", "offsetWidth", "offsetHeight",
		"getAttribute", "setAttribute", "hasAttribute", "removeAttribute",
		"classList", "children", "parentElement",
		"appendChild", "removeChild", "remove",
		"addEventListener", "removeEventListener", "dispatchEvent",
	}
}
