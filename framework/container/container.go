package container

import (
	"fmt"
	"sort"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

// ── Container ─────────────────────────────────────────────────────────────────

// Container maps identifiers to services and builds them on request,
// resolving constructor parameters from declared arguments, References and
// other registrations.
//
// The mutex only guards the two maps. Construction and recursive Get calls
// run unlocked, so hosts sharing a container across goroutines must still
// serialize registration against resolution themselves. Cyclic registrations
// (A needs B needs A) recurse without bound.
type Container struct {
	mu sync.RWMutex

	// identifier → registration
	services map[string]*Service

	// identifier → built singleton instance
	singletons map[string]any

	// strategies tried in order for every constructor parameter
	resolvers []Resolver

	log atomic.Pointer[zap.Logger]
}

// Option configures a Container.
type Option func(*Container)

// WithLogger sets the logger used for debug traces of registration and
// construction. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(c *Container) {
		c.SetLogger(l)
	}
}

// WithResolvers replaces the default ServiceResolver, NameResolver order.
func WithResolvers(rs ...Resolver) Option {
	return func(c *Container) {
		c.resolvers = append([]Resolver(nil), rs...)
	}
}

// New creates an empty container.
func New(opts ...Option) *Container {
	c := &Container{
		services:   make(map[string]*Service),
		singletons: make(map[string]any),
		resolvers:  DefaultResolvers(),
	}
	c.log.Store(zap.NewNop())
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetLogger swaps the logger used for debug traces. Hosts whose logger is
// itself a service call it once that service resolves. Nil is ignored.
func (c *Container) SetLogger(l *zap.Logger) {
	if l != nil {
		c.log.Store(l)
	}
}

func (c *Container) logger() *zap.Logger { return c.log.Load() }

// ── Registration ──────────────────────────────────────────────────────────────

// Register adds a transient service: Get builds a new instance every call.
// Without an identifier the key is derived with Identifier(subject).
// Registering an existing identifier replaces it.
//
//	c.Register(container.Struct[InnerClass]())                 // "inner_class"
//	c.Register(container.Struct[OuterClass](), "outer")
//	c.Register(&Config{Port: 8080})                            // instance, "config"
func (c *Container) Register(subject any, identifier ...string) *Service {
	return c.register(subject, false, identifier)
}

// RegisterSingleton adds a service whose first built instance is cached and
// returned by every later Get.
func (c *Container) RegisterSingleton(subject any, identifier ...string) *Service {
	return c.register(subject, true, identifier)
}

func (c *Container) register(subject any, singleton bool, identifier []string) *Service {
	key := ""
	if len(identifier) > 0 {
		key = identifier[0]
	}
	if key == "" {
		key = Identifier(subject)
	}

	svc := NewService(subject)
	svc.singleton = singleton

	c.mu.Lock()
	c.services[key] = svc
	// a replaced registration must not keep serving the old singleton
	delete(c.singletons, key)
	c.mu.Unlock()

	c.logger().Debug("service registered",
		zap.String("identifier", key),
		zap.Stringer("kind", svc.kind),
		zap.Bool("singleton", singleton),
	)
	return svc
}

// ── Lookup ────────────────────────────────────────────────────────────────────

// HasService reports whether anything is registered under the identifier.
// id may be a string or anything Identifier accepts.
func (c *Container) HasService(id any) bool {
	_, ok := c.Lookup(id)
	return ok
}

// Lookup returns the registration for id.
func (c *Container) Lookup(id any) (*Service, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	svc, ok := c.services[Identifier(id)]
	return svc, ok
}

// GetUninstantiated returns the subject exactly as registered. It never
// constructs anything and never touches the singleton cache. An identifier
// owned by a deferred provider loads that provider first, so the subject it
// registers is returned rather than the placeholder.
func (c *Container) GetUninstantiated(id any) (any, error) {
	key := Identifier(id)
	svc, ok := c.Lookup(key)
	if !ok {
		return nil, ServiceNotFoundError{Identifier: key}
	}
	if d, deferred := svc.subject.(*deferredConstructor); deferred {
		return d.subject()
	}
	return svc.subject, nil
}

// Get returns the instance for id, building it (and its dependencies) when
// needed. Singletons are built once; the same value is returned afterwards.
//
//	outer, err := c.Get("outer_class")
//	outer, err := c.Get(container.Struct[OuterClass]())
func (c *Container) Get(id any) (any, error) {
	key := Identifier(id)

	c.mu.RLock()
	svc, ok := c.services[key]
	inst, cached := c.singletons[key]
	c.mu.RUnlock()

	if !ok {
		return nil, ServiceNotFoundError{Identifier: key}
	}
	if svc.singleton && cached {
		return inst, nil
	}

	inst, err := c.build(key, svc)
	if err != nil {
		return nil, err
	}

	if svc.singleton {
		c.mu.Lock()
		// first build wins; a concurrent builder gets the stored instance
		if prev, exists := c.singletons[key]; exists && c.services[key] == svc {
			inst = prev
		} else if c.services[key] == svc {
			c.singletons[key] = inst
			c.logger().Debug("singleton cached", zap.String("identifier", key))
		}
		c.mu.Unlock()
	}
	return inst, nil
}

// MustGet is Get that panics on error.
func (c *Container) MustGet(id any) any {
	inst, err := c.Get(id)
	if err != nil {
		panic(err)
	}
	return inst
}

// ── Construction ──────────────────────────────────────────────────────────────

// build returns the subject of an instance service, or constructs a class
// service from its resolved arguments.
func (c *Container) build(key string, svc *Service) (any, error) {
	if svc.kind == KindInstance {
		return svc.subject, nil
	}

	args, err := c.arguments(key, svc)
	if err != nil {
		return nil, err
	}
	inst, err := svc.ctor.Construct(args)
	if err != nil {
		// constructors only know their own name; report the registered key
		if invalid, ok := err.(InvalidArgumentError); ok {
			invalid.Service = key
			return nil, invalid
		}
		return nil, err
	}
	c.logger().Debug("service constructed",
		zap.String("identifier", key),
		zap.Int("arguments", len(args)),
	)
	return inst, nil
}

// arguments resolves every constructor parameter of svc. Parameters that
// resolve to nothing are left out so the constructor's defaults apply.
func (c *Container) arguments(key string, svc *Service) (map[string]any, error) {
	params := svc.ctor.Parameters()
	args := make(map[string]any, len(params))

	for _, p := range params {
		value, err := c.resolve(p, svc)
		if err != nil {
			return nil, err
		}
		if value != nil {
			args[p.Name] = value
			c.logger().Debug("argument resolved",
				zap.String("identifier", key),
				zap.String("parameter", p.Name),
			)
			continue
		}
		if p.Variadic || p.VarKeyword || p.HasDefault {
			continue
		}
		return nil, ArgumentNotFoundError{Service: key, Parameter: p.Name}
	}
	return args, nil
}

// resolve runs the resolvers in order and returns the first non-nil value.
func (c *Container) resolve(p Parameter, svc *Service) (any, error) {
	for _, r := range c.resolvers {
		value, err := r.Resolve(p, svc, c)
		if err != nil {
			return nil, err
		}
		if value != nil {
			return value, nil
		}
	}
	return nil, nil
}

// ── Helpers ───────────────────────────────────────────────────────────────────

// Resolved reports whether a singleton has been built and cached for id.
func (c *Container) Resolved(id any) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.singletons[Identifier(id)]
	return ok
}

// Services returns the registered identifiers, sorted.
func (c *Container) Services() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, 0, len(c.services))
	for k := range c.services {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// ── Generics helper ───────────────────────────────────────────────────────────

// Resolve calls Get and type-asserts the result.
//
//	// Instead of: raw, err := c.Get("mailer"); m := raw.(*Mailer)
//	// Write:      m, err := container.Resolve[*Mailer](c, "mailer")
func Resolve[T any](c *Container, id any) (T, error) {
	var zero T
	inst, err := c.Get(id)
	if err != nil {
		return zero, err
	}
	typed, ok := inst.(T)
	if !ok {
		return zero, fmt.Errorf("container: Resolve[%T]: %q resolved to %T", zero, Identifier(id), inst)
	}
	return typed, nil
}
