package container

// ContextualBuilder declares an argument on an already registered service
// from the consumer's side.
//
//	c.When("photo_controller").Needs("filesystem").Give(container.Ref("s3_filesystem"))
//	c.When("photo_controller").Needs("storage_path").Give("/tmp/photos")
//
// It is equivalent to looking the service up and calling AddArgument.
type ContextualBuilder struct {
	container *Container
	concrete  string
	needs     string
}

// When starts a contextual declaration for the service registered under id.
func (c *Container) When(id any) *ContextualBuilder {
	return &ContextualBuilder{container: c, concrete: Identifier(id)}
}

// Needs names the constructor parameter being supplied.
func (b *ContextualBuilder) Needs(param string) *ContextualBuilder {
	b.needs = param
	return b
}

// Give sets the parameter's value, a literal or a Reference.
func (b *ContextualBuilder) Give(value any) error {
	svc, ok := b.container.Lookup(b.concrete)
	if !ok {
		return ServiceNotFoundError{Identifier: b.concrete}
	}
	svc.AddArgument(b.needs, value)
	return nil
}
