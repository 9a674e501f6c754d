package js

import (
	"hovertip/pkg/tooltip"

	"github.com/dop251/goja"
)

// registerTooltip binds the global Tooltip(element, options) factory.
// Scripts attach tooltips the way the host page would:
//
//	var tip = Tooltip(document.getElementById("save"), {
//	    text: "Save your work",
//	    position: "bottom",
//	    classes: ["toolbar-tip"],
//	    ariaHidden: false,
//	});
//	tip.setText("Save");
//	tip.getElement().classList.contains("tooltip");
//
// Every option may be omitted; ariaHidden defaults to true.
func registerTooltip(ctx *domContext) {
	vm := ctx.vm
	vm.Set("Tooltip", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) == 0 {
			panic(vm.NewTypeError("Failed to construct 'Tooltip': 1 argument required"))
		}
		trigger := ctx.unwrapNode(call.Arguments[0])
		if trigger == nil {
			panic(vm.NewTypeError("Failed to construct 'Tooltip': parameter 1 is not an element"))
		}

		opts := tooltip.DefaultOptions()
		if len(call.Arguments) > 1 && !goja.IsNull(call.Arguments[1]) && !goja.IsUndefined(call.Arguments[1]) {
			obj := call.Arguments[1].ToObject(vm)
			if v := obj.Get("text"); v != nil && !goja.IsUndefined(v) && !goja.IsNull(v) {
				opts.Text = v.String()
			}
			if v := obj.Get("position"); v != nil && !goja.IsUndefined(v) && !goja.IsNull(v) {
				opts.Position = v.String()
			}
			if v := obj.Get("ariaHidden"); v != nil && !goja.IsUndefined(v) && !goja.IsNull(v) {
				opts.AriaHidden = v.ToBoolean()
			}
			if v := obj.Get("classes"); v != nil && !goja.IsUndefined(v) && !goja.IsNull(v) {
				if exported, ok := v.Export().([]interface{}); ok {
					for _, item := range exported {
						if s, ok := item.(string); ok {
							opts.Classes = append(opts.Classes, s)
						}
					}
				}
			}
		}

		tip := tooltip.New(trigger, opts)

		instance := vm.NewObject()
		instance.Set("setText", func(call goja.FunctionCall) goja.Value {
			text := ""
			if len(call.Arguments) > 0 && !goja.IsNull(call.Arguments[0]) && !goja.IsUndefined(call.Arguments[0]) {
				text = call.Arguments[0].String()
			}
			tip.SetText(text)
			return goja.Undefined()
		})
		instance.Set("getElement", func(call goja.FunctionCall) goja.Value {
			return ctx.elementProxy(tip.Element())
		})
		return instance
	})
}
