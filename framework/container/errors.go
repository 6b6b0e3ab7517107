package container

import (
	"errors"
	"strconv"
)

var (
	// ErrServiceNotFound matches every ServiceNotFoundError via errors.Is.
	ErrServiceNotFound = errors.New("container: service not found")

	// ErrArgumentNotFound matches every ArgumentNotFoundError via errors.Is.
	ErrArgumentNotFound = errors.New("container: argument not found")

	// ErrInvalidArgument matches every InvalidArgumentError via errors.Is.
	ErrInvalidArgument = errors.New("container: invalid argument")
)

// ServiceNotFoundError is returned by Get and GetUninstantiated when nothing
// is registered under the (normalized) identifier.
type ServiceNotFoundError struct{ Identifier string }

func (e ServiceNotFoundError) Error() string {
	// container: no service registered for "mailer"
	return "container: no service registered for " + strconv.Quote(e.Identifier)
}

func (e ServiceNotFoundError) Is(target error) bool { return target == ErrServiceNotFound }

// ArgumentNotFoundError is returned when a required constructor parameter has
// no explicit argument, no service registered under its name, is not variadic
// and declares no default.
type ArgumentNotFoundError struct {
	Service   string
	Parameter string
}

func (e ArgumentNotFoundError) Error() string {
	// container: required argument "inner_class" is not set for "outer_class"
	return "container: required argument " + strconv.Quote(e.Parameter) +
		" is not set for " + strconv.Quote(e.Service)
}

func (e ArgumentNotFoundError) Is(target error) bool { return target == ErrArgumentNotFound }

// InvalidArgumentError is returned by a Constructor when a resolved value
// cannot be assigned to the parameter it was resolved for. Called directly,
// a Constructor fills Service with its own name; Get replaces it with the
// registered identifier.
type InvalidArgumentError struct {
	Service   string
	Parameter string
	Want      string
	Got       string
}

func (e InvalidArgumentError) Error() string {
	// container: argument "port" of "server" wants int, got string
	return "container: argument " + strconv.Quote(e.Parameter) +
		" of " + strconv.Quote(e.Service) +
		" wants " + e.Want + ", got " + e.Got
}

func (e InvalidArgumentError) Is(target error) bool { return target == ErrInvalidArgument }
