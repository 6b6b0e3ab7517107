package container

// ── ServiceProvider interface ─────────────────────────────────────────────────

// ServiceProvider groups related registrations.
//
// Register only registers. Boot runs after every provider has registered,
// so it may Get services contributed by other providers.
//
//	type MailServiceProvider struct{ container.BaseProvider }
//
//	func (p *MailServiceProvider) Register(c *container.Container) {
//	    c.RegisterSingleton(container.Struct[SMTPTransport]())
//	    c.Register(container.Struct[Mailer]()).
//	        AddArgument("transport", container.Ref("smtp_transport"))
//	}
type ServiceProvider interface {
	Register(c *Container)

	Boot(c *Container) error

	// Provides lists the identifiers a deferred provider registers.
	Provides() []string

	// IsDeferred delays Register until one of Provides() is first requested
	// through Get, GetUninstantiated or a Reference.
	IsDeferred() bool
}

// ── BaseProvider ──────────────────────────────────────────────────────────────

// BaseProvider supplies no-op Boot, Provides and IsDeferred.
type BaseProvider struct{}

func (p *BaseProvider) Boot(_ *Container) error { return nil }
func (p *BaseProvider) Provides() []string      { return nil }
func (p *BaseProvider) IsDeferred() bool        { return false }

// ── ProviderRegistry ──────────────────────────────────────────────────────────

// ProviderRegistry registers and boots ServiceProviders against one container.
type ProviderRegistry struct {
	app        *Container
	eager      []ServiceProvider
	deferred   map[string]ServiceProvider // identifier → provider
	booted     bool
	registered map[ServiceProvider]bool
}

// NewProviderRegistry creates a registry bound to app.
func NewProviderRegistry(app *Container) *ProviderRegistry {
	return &ProviderRegistry{
		app:        app,
		deferred:   make(map[string]ServiceProvider),
		registered: make(map[ServiceProvider]bool),
	}
}

// Register calls provider.Register, or parks a deferred provider until one
// of its identifiers is requested. Registering the same provider twice is a
// no-op. A provider added after Boot is booted immediately.
func (r *ProviderRegistry) Register(provider ServiceProvider) error {
	if r.registered[provider] {
		return nil
	}
	r.registered[provider] = true

	if provider.IsDeferred() {
		for _, id := range provider.Provides() {
			r.deferred[id] = provider
			r.app.Register(&deferredConstructor{id: id, registry: r}, id)
		}
		return nil
	}

	provider.Register(r.app)
	r.eager = append(r.eager, provider)

	if r.booted {
		return provider.Boot(r.app)
	}
	return nil
}

// Boot calls Boot on every eager provider in registration order and stops at
// the first error. Later calls are no-ops.
func (r *ProviderRegistry) Boot() error {
	if r.booted {
		return nil
	}
	r.booted = true
	for _, provider := range r.eager {
		if err := provider.Boot(r.app); err != nil {
			return err
		}
	}
	return nil
}

// Booted reports whether Boot has been called.
func (r *ProviderRegistry) Booted() bool { return r.booted }

// Providers returns the eager providers.
func (r *ProviderRegistry) Providers() []ServiceProvider { return r.eager }

// load registers a deferred provider on first use. Its Register replaces the
// placeholder services, so the follow-up Get reaches the real ones.
func (r *ProviderRegistry) load(id string) error {
	provider, ok := r.deferred[id]
	if !ok {
		return nil
	}
	for _, other := range provider.Provides() {
		delete(r.deferred, other)
	}
	provider.Register(r.app)
	if r.booted {
		return provider.Boot(r.app)
	}
	return nil
}

// deferredConstructor is the placeholder registered for a deferred
// provider's identifiers.
type deferredConstructor struct {
	id       string
	registry *ProviderRegistry
}

func (d *deferredConstructor) Name() string            { return d.id }
func (d *deferredConstructor) Parameters() []Parameter { return nil }

func (d *deferredConstructor) Construct(map[string]any) (any, error) {
	if _, err := d.subject(); err != nil {
		return nil, err
	}
	return d.registry.app.Get(d.id)
}

// subject loads the provider and returns what it registered under d.id.
func (d *deferredConstructor) subject() (any, error) {
	if err := d.registry.load(d.id); err != nil {
		return nil, err
	}
	svc, ok := d.registry.app.Lookup(d.id)
	if !ok || svc.Subject() == any(d) {
		// the provider did not register what it promised
		return nil, ServiceNotFoundError{Identifier: d.id}
	}
	return svc.Subject(), nil
}
