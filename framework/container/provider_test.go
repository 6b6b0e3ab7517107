package container_test

import (
	"errors"
	"testing"

	"github.com/km-arc/go-injector/framework/container"
)

// ── stub providers ────────────────────────────────────────────────────────────

type eagerProvider struct {
	container.BaseProvider
	registerCalled bool
	bootCalled     bool
}

func (p *eagerProvider) Register(app *container.Container) {
	p.registerCalled = true
	app.RegisterSingleton("eager", "eager_svc")
}

func (p *eagerProvider) Boot(app *container.Container) error {
	p.bootCalled = true
	return nil
}

// deferredProvider is lazy: only registered when "deferred_svc" is first resolved.
type deferredProvider struct {
	container.BaseProvider
	registerCalls int
	bootCalled    bool
}

func (p *deferredProvider) Register(app *container.Container) {
	p.registerCalls++
	app.RegisterSingleton(container.Struct[Counter](), "deferred_svc").AddArgument("n", 9)
	app.Register("second-value", "deferred_other")
}

func (p *deferredProvider) Boot(app *container.Container) error {
	p.bootCalled = true
	return nil
}

func (p *deferredProvider) IsDeferred() bool { return true }
func (p *deferredProvider) Provides() []string {
	return []string{"deferred_svc", "deferred_other"}
}

// lyingProvider promises a service it never registers.
type lyingProvider struct{ container.BaseProvider }

func (p *lyingProvider) Register(app *container.Container) {}
func (p *lyingProvider) IsDeferred() bool                  { return true }
func (p *lyingProvider) Provides() []string                { return []string{"promised"} }

// bootingProvider resolves another provider's service during Boot.
type bootingProvider struct {
	container.BaseProvider
	resolved any
}

func (p *bootingProvider) Register(app *container.Container) {
	app.Register(container.Struct[OuterClass]())
}

func (p *bootingProvider) Boot(app *container.Container) error {
	v, err := app.Get("outer_class")
	p.resolved = v
	return err
}

type innerProvider struct{ container.BaseProvider }

func (p *innerProvider) Register(app *container.Container) {
	app.Register(container.Struct[InnerClass]())
}

type failingProvider struct{ container.BaseProvider }

var errBoot = errors.New("boot failed")

func (p *failingProvider) Register(app *container.Container) {}
func (p *failingProvider) Boot(app *container.Container) error {
	return errBoot
}

// ── ProviderRegistry ──────────────────────────────────────────────────────────

func TestRegistry_EagerProvider_RegisterCalled(t *testing.T) {
	c := container.New()
	reg := container.NewProviderRegistry(c)

	p := &eagerProvider{}
	if err := reg.Register(p); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if !p.registerCalled {
		t.Error("Register() should be called immediately for eager providers")
	}
}

func TestRegistry_EagerProvider_BootCalledAfterBoot(t *testing.T) {
	c := container.New()
	reg := container.NewProviderRegistry(c)

	p := &eagerProvider{}
	_ = reg.Register(p)

	if p.bootCalled {
		t.Error("Boot() should NOT be called before registry.Boot()")
	}

	if err := reg.Boot(); err != nil {
		t.Fatalf("Boot: %v", err)
	}

	if !p.bootCalled {
		t.Error("Boot() should be called after registry.Boot()")
	}
}

func TestRegistry_EagerProvider_ServiceResolvable(t *testing.T) {
	c := container.New()
	reg := container.NewProviderRegistry(c)
	_ = reg.Register(&eagerProvider{})
	_ = reg.Boot()

	got, err := c.Get("eager_svc")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != "eager" {
		t.Errorf("eager_svc: got %v, want 'eager'", got)
	}
}

func TestRegistry_Boot_IdempotentCallsAreIgnored(t *testing.T) {
	c := container.New()
	reg := container.NewProviderRegistry(c)
	_ = reg.Register(&eagerProvider{})

	_ = reg.Boot()
	_ = reg.Boot()

	if !reg.Booted() {
		t.Error("Booted() should be true after Boot()")
	}
}

func TestRegistry_Booted_FalseBeforeBoot(t *testing.T) {
	reg := container.NewProviderRegistry(container.New())
	if reg.Booted() {
		t.Error("Booted() should be false before Boot()")
	}
}

func TestRegistry_DuplicateRegister_Ignored(t *testing.T) {
	c := container.New()
	reg := container.NewProviderRegistry(c)

	p := &eagerProvider{}
	_ = reg.Register(p)
	_ = reg.Register(p)

	if len(reg.Providers()) != 1 {
		t.Errorf("Providers(): got %d, want 1", len(reg.Providers()))
	}
}

func TestRegistry_BootResolvesAcrossProviders(t *testing.T) {
	c := container.New()
	reg := container.NewProviderRegistry(c)

	booting := &bootingProvider{}
	_ = reg.Register(booting)
	_ = reg.Register(&innerProvider{})

	if err := reg.Boot(); err != nil {
		t.Fatalf("Boot: %v", err)
	}
	outer, ok := booting.resolved.(*OuterClass)
	if !ok || outer.InnerClass == nil {
		t.Errorf("Boot resolved %#v, want *OuterClass with InnerClass", booting.resolved)
	}
}

func TestRegistry_BootError(t *testing.T) {
	reg := container.NewProviderRegistry(container.New())
	_ = reg.Register(&failingProvider{})

	if err := reg.Boot(); !errors.Is(err, errBoot) {
		t.Errorf("Boot: got %v, want %v", err, errBoot)
	}
}

// ── Deferred providers ────────────────────────────────────────────────────────

func TestRegistry_DeferredProvider_NotRegisteredEagerly(t *testing.T) {
	c := container.New()
	reg := container.NewProviderRegistry(c)

	p := &deferredProvider{}
	_ = reg.Register(p)
	_ = reg.Boot()

	if p.registerCalls != 0 {
		t.Error("deferred provider Register() should not be called until Get()")
	}
	if !c.HasService("deferred_svc") {
		t.Error("deferred identifiers should be visible before loading")
	}
}

func TestRegistry_DeferredProvider_RegisteredOnFirstGet(t *testing.T) {
	c := container.New()
	reg := container.NewProviderRegistry(c)

	p := &deferredProvider{}
	_ = reg.Register(p)
	_ = reg.Boot()

	first, err := container.Resolve[*Counter](c, "deferred_svc")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if first.N != 9 {
		t.Errorf("deferred_svc: got N=%d, want 9", first.N)
	}
	second, _ := container.Resolve[*Counter](c, "deferred_svc")
	if first != second {
		t.Error("deferred singleton should be cached after loading")
	}
	if other, _ := c.Get("deferred_other"); other != "second-value" {
		t.Errorf("deferred_other: got %v, want 'second-value'", other)
	}
	if p.registerCalls != 1 {
		t.Errorf("Register() calls: got %d, want 1", p.registerCalls)
	}
	if !p.bootCalled {
		t.Error("deferred provider loaded after Boot() should be booted")
	}
}

func TestRegistry_DeferredProvider_MissingRegistration(t *testing.T) {
	c := container.New()
	reg := container.NewProviderRegistry(c)
	_ = reg.Register(&lyingProvider{})

	if _, err := c.Get("promised"); !errors.Is(err, container.ErrServiceNotFound) {
		t.Errorf("Get(promised): got %v, want ErrServiceNotFound", err)
	}
}

func TestRegistry_DeferredProvider_GetUninstantiatedLoads(t *testing.T) {
	c := container.New()
	reg := container.NewProviderRegistry(c)

	p := &deferredProvider{}
	_ = reg.Register(p)

	subject, err := c.GetUninstantiated("deferred_other")
	if err != nil {
		t.Fatalf("GetUninstantiated: %v", err)
	}
	if subject != "second-value" {
		t.Errorf("deferred_other: got %v, want 'second-value'", subject)
	}
	if p.registerCalls != 1 {
		t.Errorf("Register() calls: got %d, want 1", p.registerCalls)
	}

	ctor, err := c.GetUninstantiated("deferred_svc")
	if err != nil {
		t.Fatalf("GetUninstantiated: %v", err)
	}
	if _, ok := ctor.(container.Constructor); !ok || ctor.(container.Constructor).Name() != "Counter" {
		t.Errorf("deferred_svc: got %T, want the Counter constructor", ctor)
	}
	if c.Resolved("deferred_svc") {
		t.Error("GetUninstantiated must not build the singleton")
	}
}

func TestRegistry_DeferredProvider_RawReference(t *testing.T) {
	c := container.New()
	reg := container.NewProviderRegistry(c)
	_ = reg.Register(&deferredProvider{})

	c.Register(container.Struct[FakeService]()).AddArgument("value", container.RawRef("deferred_other"))

	got, err := container.Resolve[*FakeService](c, "fake_service")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got.Value != "second-value" {
		t.Errorf("Value: got %v, want 'second-value'", got.Value)
	}
}

func TestRegistry_DeferredProvider_GetUninstantiatedMissingRegistration(t *testing.T) {
	c := container.New()
	reg := container.NewProviderRegistry(c)
	_ = reg.Register(&lyingProvider{})

	if _, err := c.GetUninstantiated("promised"); !errors.Is(err, container.ErrServiceNotFound) {
		t.Errorf("GetUninstantiated(promised): got %v, want ErrServiceNotFound", err)
	}
}

// ── Providers list ────────────────────────────────────────────────────────────

func TestRegistry_Providers_ReturnsEagerOnes(t *testing.T) {
	c := container.New()
	reg := container.NewProviderRegistry(c)
	_ = reg.Register(&eagerProvider{})
	_ = reg.Register(&deferredProvider{})

	if len(reg.Providers()) != 1 {
		t.Errorf("Providers(): got %d, want 1 (eager only)", len(reg.Providers()))
	}
}

// ── BaseProvider defaults ─────────────────────────────────────────────────────

func TestBaseProvider_Defaults(t *testing.T) {
	var p container.BaseProvider

	if err := p.Boot(container.New()); err != nil {
		t.Errorf("BaseProvider.Boot() should return nil, got %v", err)
	}
	if p.IsDeferred() {
		t.Error("BaseProvider.IsDeferred() should be false")
	}
	if len(p.Provides()) != 0 {
		t.Error("BaseProvider.Provides() should return empty slice")
	}
}

// ── Boot after registration (late provider) ───────────────────────────────────

func TestRegistry_RegisterAfterBoot_BootsImmediately(t *testing.T) {
	c := container.New()
	reg := container.NewProviderRegistry(c)
	_ = reg.Boot()

	p := &eagerProvider{}
	_ = reg.Register(p)

	if !p.bootCalled {
		t.Error("provider registered after Boot() should be booted immediately")
	}
}
