package container

// Reference is an argument value meaning "resolve this from another service".
//
//	c.Register(container.Struct[UserRepository]()).
//	    AddArgument("db", container.Ref("postgres")).         // built instance
//	    AddArgument("model", container.RawRef(container.Struct[User]())) // subject as registered
type Reference struct {
	name           string
	uninstantiated bool
}

// NewReference points at target, a string identifier or anything Identifier
// accepts. With uninstantiated set, resolution yields the target's subject
// instead of a built instance.
func NewReference(target any, uninstantiated bool) Reference {
	return Reference{name: Identifier(target), uninstantiated: uninstantiated}
}

// Ref is NewReference(target, false).
func Ref(target any) Reference { return NewReference(target, false) }

// RawRef is NewReference(target, true).
func RawRef(target any) Reference { return NewReference(target, true) }

// Name returns the identifier of the referenced service.
func (r Reference) Name() string { return r.name }

// ReturnUninstantiated reports whether resolution skips construction.
func (r Reference) ReturnUninstantiated() bool { return r.uninstantiated }

func (r Reference) String() string {
	if r.uninstantiated {
		return "@" + r.name + " (raw)"
	}
	return "@" + r.name
}
