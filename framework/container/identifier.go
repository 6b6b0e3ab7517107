package container

import (
	"reflect"
	"regexp"
	"strings"
)

var (
	wordBoundary = regexp.MustCompile(`(.)([A-Z][a-z]+)`)
	caseBoundary = regexp.MustCompile(`([a-z0-9])([A-Z])`)
)

// Named lets a subject choose the name its default identifier is derived from.
//
//	func (*PostgresStore) ServiceName() string { return "Store" } // → "store"
type Named interface {
	ServiceName() string
}

// Identifier returns the canonical key for v.
//
// Strings are returned unchanged. Everything else is reduced to a type name
// and converted to snake_case:
//
//	container.Identifier("mailer")                  // "mailer"
//	container.Identifier(container.Struct[Mailer]()) // "mailer"
//	container.Identifier(&SMTPMailer{})             // "smtp_mailer"
//	container.Identifier(reflect.TypeOf(Outer{}))   // "outer"
func Identifier(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case Named:
		return ToSnake(s.ServiceName())
	case Constructor:
		return ToSnake(s.Name())
	case reflect.Type:
		return ToSnake(typeName(s))
	case nil:
		return ""
	}
	return ToSnake(typeName(reflect.TypeOf(v)))
}

// ToSnake converts PascalCase or camelCase to snake_case.
//
//	ToSnake("OuterClass")  // "outer_class"
//	ToSnake("HTTPServer")  // "http_server"
//	ToSnake("outer_class") // "outer_class"
func ToSnake(s string) string {
	s = wordBoundary.ReplaceAllString(s, "${1}_${2}")
	s = caseBoundary.ReplaceAllString(s, "${1}_${2}")
	return strings.ToLower(s)
}

// typeName returns the declared name of t, looking through pointers.
func typeName(t reflect.Type) string {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}
