package container

// ── Introspection ─────────────────────────────────────────────────────────────

// Parameter describes one constructor parameter as seen by the resolvers.
type Parameter struct {
	// Name is matched against explicit arguments and registered identifiers.
	Name string

	// HasDefault marks the parameter as optional. When nothing resolves it the
	// constructor applies Default (or the zero value when Default is nil).
	HasDefault bool
	Default    any

	// Variadic marks a rest-of-positional parameter (a Go variadic argument
	// or a slice field tagged `inject:",variadic"`).
	Variadic bool

	// VarKeyword marks a rest-of-keyword parameter (a map field tagged
	// `inject:",kwargs"`).
	VarKeyword bool
}

// Constructor is the capability a Class-kind subject exposes so the container
// can build it: an ordered parameter list and a way to build an instance from
// a name → value map.
//
// Parameters never include a receiver. Construct receives only the
// parameters that resolved to a non-nil value; absent parameters fall back to
// the constructor's own defaults.
//
// Struct and Func provide the two stock implementations.
type Constructor interface {
	Name() string
	Parameters() []Parameter
	Construct(args map[string]any) (any, error)
}
