// Package container provides a reflective dependency-injection container.
//
// # Overview
//
// A Container maps string identifiers to services. A service is either a
// pre-built instance, returned as-is, or a constructible subject whose
// parameters the container resolves before building it. Constructible
// subjects implement Constructor; Struct and Func cover the common cases.
//
// # Registering
//
//	c := container.New()
//
//	// Identifier derived from the type name: "inner_class", "outer_class"
//	c.Register(container.Struct[InnerClass]())
//	c.Register(container.Struct[OuterClass]())
//
//	// Explicit identifier, built once
//	c.RegisterSingleton(container.Struct[Pool](), "db")
//
//	// Pre-built value
//	c.Register(cfg, "config")
//
//	// Function constructor with declared parameter names
//	c.Register(container.Func("Server", NewServer,
//	    container.Param("config"),
//	    container.Optional("port", 8080),
//	))
//
// # Arguments and references
//
//	c.Register(container.Struct[Mailer]()).
//	    AddArgument("sender", "noreply@example.com").      // literal
//	    AddArgument("transport", container.Ref("smtp")).   // built service
//	    AddArgument("template", container.RawRef("tpl"))   // subject as registered
//
// # Resolution order
//
// For each constructor parameter, in declaration order:
//
//  1. an argument declared on the service (following References)
//  2. a service registered under the parameter's name
//  3. variadic parameters are left out
//  4. parameters with a default are left out
//  5. otherwise Get fails with ArgumentNotFoundError
//
// A value that resolves to nil is never passed; the constructor's default
// applies instead.
//
// # Resolving
//
//	raw, err := c.Get("outer_class")
//	outer, err := container.Resolve[*OuterClass](c, "outer_class")
//	subject, err := c.GetUninstantiated("outer_class") // the Constructor itself
//
// # Zero-size types
//
// Every transient Get of a Struct constructor allocates a new value, but Go
// may place all zero-size values (struct{} and field-less structs) at one
// address. Two transient builds of such a type are therefore == as pointers.
//
// # Cycles
//
// Dependency cycles are not detected. A registration graph where A needs B
// and B needs A recurses until the stack is exhausted.
//
// # Service providers
//
//	type MailServiceProvider struct{ container.BaseProvider }
//
//	func (p *MailServiceProvider) Register(c *container.Container) {
//	    c.RegisterSingleton(container.Struct[SMTPTransport](), "smtp")
//	}
//
//	registry := container.NewProviderRegistry(c)
//	_ = registry.Register(&MailServiceProvider{})
//	err := registry.Boot()
package container
