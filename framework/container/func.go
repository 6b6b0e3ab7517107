package container

import (
	"fmt"
	"reflect"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// funcConstructor builds a value by calling a constructor function whose
// parameter names were declared at registration time.
type funcConstructor struct {
	name   string
	fn     reflect.Value
	params []Parameter
}

// Param declares a required constructor parameter.
func Param(name string) Parameter { return Parameter{Name: name} }

// Optional declares a parameter that falls back to def when unresolved.
// A nil def means the zero value of the parameter's type.
func Optional(name string, def any) Parameter {
	return Parameter{Name: name, HasDefault: true, Default: def}
}

// Func wraps a constructor function. Go keeps no parameter names at runtime,
// so they are declared positionally with Param / Optional:
//
//	c.Register(container.Func("Server", NewServer,
//	    container.Param("config"),
//	    container.Optional("port", 8080),
//	))
//
// fn must return T or (T, error). A variadic fn gets its last parameter marked
// Variadic automatically. Func panics when fn is not a function or the
// declared parameters do not line up with its signature.
func Func(name string, fn any, params ...Parameter) Constructor {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func {
		panic(fmt.Sprintf("container: Func(%q): %T is not a function", name, fn))
	}
	t := v.Type()
	if t.NumIn() != len(params) {
		panic(fmt.Sprintf("container: Func(%q): function takes %d parameters, %d declared",
			name, t.NumIn(), len(params)))
	}
	switch {
	case t.NumOut() == 1:
	case t.NumOut() == 2 && t.Out(1) == errorType:
	default:
		panic(fmt.Sprintf("container: Func(%q): function must return T or (T, error)", name))
	}

	declared := make([]Parameter, len(params))
	copy(declared, params)
	if t.IsVariadic() {
		declared[len(declared)-1].Variadic = true
	}
	return &funcConstructor{name: name, fn: v, params: declared}
}

func (fc *funcConstructor) Name() string { return fc.name }

func (fc *funcConstructor) Parameters() []Parameter {
	out := make([]Parameter, len(fc.params))
	copy(out, fc.params)
	return out
}

func (fc *funcConstructor) Construct(args map[string]any) (any, error) {
	t := fc.fn.Type()
	in := make([]reflect.Value, 0, len(fc.params))
	spread := false

	for i, p := range fc.params {
		want := t.In(i)
		val, ok := args[p.Name]
		if ok && val == nil {
			ok = false
		}

		if p.Variadic && t.IsVariadic() && i == len(fc.params)-1 {
			if !ok {
				break
			}
			rv, err := coerce(fc.name, p.Name, want, val)
			if err != nil {
				return nil, err
			}
			in = append(in, rv)
			spread = true
			continue
		}

		switch {
		case ok:
		case p.HasDefault && p.Default != nil:
			val = p.Default
		default:
			in = append(in, reflect.Zero(want))
			continue
		}
		rv, err := coerce(fc.name, p.Name, want, val)
		if err != nil {
			return nil, err
		}
		in = append(in, rv)
	}

	var out []reflect.Value
	if spread {
		out = fc.fn.CallSlice(in)
	} else {
		out = fc.fn.Call(in)
	}
	if len(out) == 2 && !out[1].IsNil() {
		return nil, out[1].Interface().(error)
	}
	return out[0].Interface(), nil
}
