package container

// Resolver is one argument resolution strategy. It returns the value for
// param, or nil when it has nothing to offer so the next strategy runs.
// A non-nil error aborts construction and is returned to the Get caller.
type Resolver interface {
	Resolve(param Parameter, svc *Service, c *Container) (any, error)
}

// ResolverFunc adapts a plain function to Resolver.
type ResolverFunc func(param Parameter, svc *Service, c *Container) (any, error)

func (f ResolverFunc) Resolve(param Parameter, svc *Service, c *Container) (any, error) {
	return f(param, svc, c)
}

// ServiceResolver resolves parameters from the service's declared
// arguments. A Reference argument is followed through the container.
type ServiceResolver struct{}

func (ServiceResolver) Resolve(param Parameter, svc *Service, c *Container) (any, error) {
	value, ok := svc.Argument(param.Name)
	if !ok {
		return nil, nil
	}
	ref, isRef := value.(Reference)
	if !isRef {
		return value, nil
	}
	if ref.ReturnUninstantiated() {
		return c.GetUninstantiated(ref.Name())
	}
	return c.Get(ref.Name())
}

// NameResolver resolves a parameter to the service registered under the
// parameter's name.
type NameResolver struct{}

func (NameResolver) Resolve(param Parameter, _ *Service, c *Container) (any, error) {
	if !c.HasService(param.Name) {
		return nil, nil
	}
	return c.Get(param.Name)
}

// DefaultResolvers is the resolution order used by New: explicit arguments
// first, then name matching.
func DefaultResolvers() []Resolver {
	return []Resolver{ServiceResolver{}, NameResolver{}}
}
