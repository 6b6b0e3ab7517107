package container

import (
	"fmt"
	"reflect"
	"strings"
)

// structConstructor builds a struct by assigning resolved arguments to its
// exported fields. It is the reflection-backed parameter provider.
type structConstructor struct {
	typ    reflect.Type
	params []Parameter
	fields map[string][]int // parameter name → field index
}

// Struct returns a Constructor for T, which must be a struct or a pointer to
// a struct. Construct always returns a freshly allocated *T. For a zero-size
// T (a struct with no fields) the Go runtime may hand every allocation the
// same address, so transient builds of such a type compare equal as
// pointers. Give the type a field if callers rely on pointer identity.
//
// Every exported field is a parameter named after the field in snake_case.
// The `inject` tag overrides the name and adds options:
//
//	type Mailer struct {
//	    Transport Transport                    // parameter "transport"
//	    From      string    `inject:"sender"` // parameter "sender"
//	    Retries   int       `inject:",optional"`
//	    Hooks     []Hook    `inject:",variadic"`
//	    Headers   map[string]string `inject:",kwargs"`
//	    cache     *lru.Cache                   // unexported: ignored
//	    Debug     bool      `inject:"-"`        // ignored
//	}
func Struct[T any]() Constructor {
	return StructOf(reflect.TypeOf((*T)(nil)).Elem())
}

// StructOf is the non-generic form of Struct. It panics if t is not a struct
// or pointer to struct.
func StructOf(t reflect.Type) Constructor {
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		panic(fmt.Sprintf("container: StructOf(%v): not a struct type", t))
	}

	sc := &structConstructor{typ: t, fields: make(map[string][]int)}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		tag, hasTag := f.Tag.Lookup("inject")
		if tag == "-" {
			continue
		}

		p := Parameter{Name: ToSnake(f.Name)}
		if hasTag {
			name, opts, _ := strings.Cut(tag, ",")
			if name != "" {
				p.Name = name
			}
			for _, opt := range strings.Split(opts, ",") {
				switch strings.TrimSpace(opt) {
				case "optional":
					p.HasDefault = true
				case "variadic":
					p.Variadic = true
				case "kwargs":
					p.VarKeyword = true
				}
			}
		}
		sc.params = append(sc.params, p)
		sc.fields[p.Name] = f.Index
	}
	return sc
}

func (sc *structConstructor) Name() string { return sc.typ.Name() }

func (sc *structConstructor) Parameters() []Parameter {
	out := make([]Parameter, len(sc.params))
	copy(out, sc.params)
	return out
}

func (sc *structConstructor) Construct(args map[string]any) (any, error) {
	ptr := reflect.New(sc.typ)
	obj := ptr.Elem()
	for _, p := range sc.params {
		val, ok := args[p.Name]
		if !ok || val == nil {
			continue
		}
		field := obj.FieldByIndex(sc.fields[p.Name])
		rv, err := coerce(sc.Name(), p.Name, field.Type(), val)
		if err != nil {
			return nil, err
		}
		field.Set(rv)
	}
	return ptr.Interface(), nil
}

// coerce converts val into a value assignable to t. A pointer is
// dereferenced when t wants the pointed-to value, since Struct constructors
// always hand out pointers.
func coerce(service, param string, t reflect.Type, val any) (reflect.Value, error) {
	rv := reflect.ValueOf(val)
	switch {
	case rv.Type().AssignableTo(t):
		return rv, nil
	case rv.Kind() == reflect.Ptr && !rv.IsNil() && rv.Elem().Type().AssignableTo(t):
		return rv.Elem(), nil
	}
	return reflect.Value{}, InvalidArgumentError{
		Service:   service,
		Parameter: param,
		Want:      t.String(),
		Got:       rv.Type().String(),
	}
}
