package container

import "reflect"

// Kind tells whether a service is built on Get or returned as registered.
type Kind int

const (
	// KindInstance services return their subject verbatim.
	KindInstance Kind = iota
	// KindClass services are constructed through their Constructor.
	KindClass
)

func (k Kind) String() string {
	if k == KindClass {
		return "class"
	}
	return "instance"
}

// Service is one registration: the subject, its declared arguments and
// whether Get caches the built instance.
//
// Arguments may be literals or References:
//
//	c.Register(container.Struct[Mailer]()).
//	    AddArgument("sender", "noreply@example.com").
//	    AddArgument("transport", container.Ref("smtp_transport"))
type Service struct {
	subject   any
	ctor      Constructor
	kind      Kind
	singleton bool
	arguments map[string]any
}

// NewService classifies subject once. Constructors and struct types
// (reflect.Type of a struct or pointer to struct) are KindClass; every other
// value is KindInstance.
func NewService(subject any) *Service {
	s := &Service{subject: subject, arguments: make(map[string]any)}
	switch v := subject.(type) {
	case Constructor:
		s.ctor = v
		s.kind = KindClass
	case reflect.Type:
		if isStructType(v) {
			s.ctor = StructOf(v)
			s.kind = KindClass
		}
	}
	return s
}

// Subject returns the value the service was registered with.
func (s *Service) Subject() any { return s.subject }

// Kind returns KindClass or KindInstance.
func (s *Service) Kind() Kind { return s.kind }

// Constructor returns the constructor of a KindClass service, nil otherwise.
func (s *Service) Constructor() Constructor { return s.ctor }

// IsSingleton reports whether Get caches the first built instance.
func (s *Service) IsSingleton() bool { return s.singleton }

// Arguments returns a copy of the declared arguments.
func (s *Service) Arguments() map[string]any {
	out := make(map[string]any, len(s.arguments))
	for k, v := range s.arguments {
		out[k] = v
	}
	return out
}

// Argument returns one declared argument.
func (s *Service) Argument(name string) (any, bool) {
	v, ok := s.arguments[name]
	return v, ok
}

// AddArgument declares the value for a constructor parameter, replacing any
// earlier value. Names are not checked against the constructor.
func (s *Service) AddArgument(name string, value any) *Service {
	s.arguments[name] = value
	return s
}

// AddArguments merges args into the declared arguments.
func (s *Service) AddArguments(args map[string]any) *Service {
	for k, v := range args {
		s.arguments[k] = v
	}
	return s
}

func isStructType(t reflect.Type) bool {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Kind() == reflect.Struct
}
