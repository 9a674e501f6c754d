package js

import (
	"strconv"
	"strings"

	"hovertip/pkg/dom"

	"github.com/dop251/goja"
)

// newClassListProxy creates a JS DynamicObject implementing the DOMTokenList
// interface for element.classList. Token logic lives on dom.Node; this
// proxy only translates calls.
func newClassListProxy(ctx *domContext, node *dom.Node) goja.Value {
	return ctx.vm.NewDynamicObject(&classListAccessor{ctx: ctx, node: node})
}

type classListAccessor struct {
	ctx  *domContext
	node *dom.Node
}

func (cl *classListAccessor) Get(key string) goja.Value {
	vm := cl.ctx.vm

	switch key {
	case "length":
		return vm.ToValue(len(cl.node.Classes()))
	case "value":
		return vm.ToValue(strings.Join(cl.node.Classes(), " "))
	case "add":
		return vm.ToValue(func(call goja.FunctionCall) goja.Value {
			for _, arg := range call.Arguments {
				cl.node.AddClass(arg.String())
			}
			return goja.Undefined()
		})
	case "remove":
		return vm.ToValue(func(call goja.FunctionCall) goja.Value {
			for _, arg := range call.Arguments {
				cl.node.RemoveClass(arg.String())
			}
			return goja.Undefined()
		})
	case "toggle":
		return vm.ToValue(func(call goja.FunctionCall) goja.Value {
			if len(call.Arguments) == 0 {
				panic(vm.NewTypeError("Failed to execute 'toggle': 1 argument required"))
			}
			return vm.ToValue(cl.node.ToggleClass(call.Arguments[0].String()))
		})
	case "contains":
		return vm.ToValue(func(call goja.FunctionCall) goja.Value {
			if len(call.Arguments) == 0 {
				return vm.ToValue(false)
			}
			return vm.ToValue(cl.node.HasClass(call.Arguments[0].String()))
		})
	case "item":
		return vm.ToValue(func(call goja.FunctionCall) goja.Value {
			classes := cl.node.Classes()
			if len(call.Arguments) == 0 {
				return goja.Null()
			}
			idx := int(call.Arguments[0].ToInteger())
			if idx < 0 || idx >= len(classes) {
				return goja.Null()
			}
			return vm.ToValue(classes[idx])
		})
	case "toString":
		return vm.ToValue(func(call goja.FunctionCall) goja.Value {
			return vm.ToValue(strings.Join(cl.node.Classes(), " "))
		})
	default:
		classes := cl.node.Classes()
		if idx, err := strconv.Atoi(key); err == nil && idx >= 0 && idx < len(classes) {
			return vm.ToValue(classes[idx])
		}
	}
	return goja.Undefined()
}

func (cl *classListAccessor) Set(key string, val goja.Value) bool {
	if key == "value" {
		cl.node.SetAttribute("class", val.String())
		return true
	}
	return false
}

func (cl *classListAccessor) Has(key string) bool {
	switch key {
	case "length", "value", "add", "remove", "toggle", "contains",
		"item", "toString":
		return true
	}
	if idx, err := strconv.Atoi(key); err == nil && idx >= 0 {
		return true
	}
	return false
}

func (cl *classListAccessor) Delete(key string) bool {
	return false
}

func (cl *classListAccessor) Keys() []string {
	return []string{"length", "value", "add", "remove", "toggle",
		"contains", "item", "toString"}
}
