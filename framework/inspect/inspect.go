// Package inspect exposes a read-only JSON view of a container's
// registrations over HTTP.
//
//	GET /services?kind=class&singleton=true
//	GET /services/{identifier}
package inspect

import (
	"fmt"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/km-arc/go-injector/framework/container"
	gohttp "github.com/km-arc/go-injector/framework/http"
	"github.com/km-arc/go-injector/framework/http/validation"
	"github.com/km-arc/go-injector/framework/routing"
)

// ServiceSummary is one row of the service listing.
type ServiceSummary struct {
	Identifier string `json:"identifier"`
	Kind       string `json:"kind"`
	Singleton  bool   `json:"singleton"`
	Resolved   bool   `json:"resolved"`
}

// ParameterInfo describes one constructor parameter.
type ParameterInfo struct {
	Name       string `json:"name"`
	HasDefault bool   `json:"has_default,omitempty"`
	Variadic   bool   `json:"variadic,omitempty"`
	VarKeyword bool   `json:"var_keyword,omitempty"`
}

// ServiceDetail is the full descriptor of one registration. Arguments are
// rendered as text: references as "@name" or "@name (raw)", anything else
// by its Go type.
type ServiceDetail struct {
	ServiceSummary
	Constructor string            `json:"constructor,omitempty"`
	Parameters  []ParameterInfo   `json:"parameters,omitempty"`
	Arguments   map[string]string `json:"arguments"`
}

// Filter narrows List. Nil fields match everything.
type Filter struct {
	Kind      *container.Kind
	Singleton *bool
}

// Inspector serves descriptors of the services registered in a container.
type Inspector struct {
	c   *container.Container
	log *zap.Logger
}

// New creates an Inspector over c. A nil logger discards request logs.
func New(c *container.Container, log *zap.Logger) *Inspector {
	if log == nil {
		log = zap.NewNop()
	}
	return &Inspector{c: c, log: log}
}

// ── Queries ───────────────────────────────────────────────────────────────────

// List returns a summary of every registration matching f, sorted by
// identifier.
func (i *Inspector) List(f Filter) []ServiceSummary {
	out := make([]ServiceSummary, 0)
	for _, id := range i.c.Services() {
		svc, ok := i.c.Lookup(id)
		if !ok {
			continue
		}
		if f.Kind != nil && svc.Kind() != *f.Kind {
			continue
		}
		if f.Singleton != nil && svc.IsSingleton() != *f.Singleton {
			continue
		}
		out = append(out, i.summary(id, svc))
	}
	return out
}

// Describe returns the descriptor of id, or a container.ServiceNotFoundError.
func (i *Inspector) Describe(id string) (ServiceDetail, error) {
	svc, ok := i.c.Lookup(id)
	if !ok {
		return ServiceDetail{}, container.ServiceNotFoundError{Identifier: id}
	}

	d := ServiceDetail{
		ServiceSummary: i.summary(id, svc),
		Arguments:      make(map[string]string),
	}
	if ctor := svc.Constructor(); ctor != nil {
		d.Constructor = ctor.Name()
		for _, p := range ctor.Parameters() {
			d.Parameters = append(d.Parameters, ParameterInfo{
				Name:       p.Name,
				HasDefault: p.HasDefault,
				Variadic:   p.Variadic,
				VarKeyword: p.VarKeyword,
			})
		}
	}
	for name, v := range svc.Arguments() {
		d.Arguments[name] = renderArgument(v)
	}
	return d, nil
}

func (i *Inspector) summary(id string, svc *container.Service) ServiceSummary {
	return ServiceSummary{
		Identifier: id,
		Kind:       svc.Kind().String(),
		Singleton:  svc.IsSingleton(),
		Resolved:   i.c.Resolved(id),
	}
}

func renderArgument(v any) string {
	switch a := v.(type) {
	case container.Reference:
		return a.String()
	case nil:
		return "nil"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// ── HTTP ──────────────────────────────────────────────────────────────────────

// Routes mounts the inspector endpoints on r.
func (i *Inspector) Routes(r *routing.Router) {
	r.Get("/services", i.handleList)
	r.Get("/services/{identifier}", i.handleDescribe)
}

// Handler returns a standalone router serving the inspector endpoints.
func (i *Inspector) Handler() http.Handler {
	r := routing.New(i.log)
	i.Routes(r)
	return r
}

func (i *Inspector) handleList(w http.ResponseWriter, r *http.Request) {
	req := gohttp.NewRequest(r)
	res := gohttp.NewResponse(w)

	input := req.Only("kind", "singleton")
	v := validation.Make(input, validation.Rules{
		"kind":      "nullable|in:class,instance",
		"singleton": "nullable|boolean",
	})
	if v.Fails() {
		res.ValidationError(v.Errors())
		return
	}

	var f Filter
	switch input["kind"] {
	case "class":
		k := container.KindClass
		f.Kind = &k
	case "instance":
		k := container.KindInstance
		f.Kind = &k
	}
	if s := input["singleton"]; s != "" {
		b, _ := strconv.ParseBool(s)
		f.Singleton = &b
	}

	res.Success(i.List(f))
}

func (i *Inspector) handleDescribe(w http.ResponseWriter, r *http.Request) {
	req := gohttp.NewRequest(r)
	res := gohttp.NewResponse(w)

	id := req.RouteParam("identifier")
	v := validation.Make(map[string]string{"identifier": id}, validation.Rules{
		"identifier": "required|identifier",
	})
	if v.Fails() {
		res.ValidationError(v.Errors())
		return
	}

	d, err := i.Describe(id)
	if err != nil {
		i.log.Debug("inspect lookup failed", zap.String("identifier", id), zap.Error(err))
		res.NotFound(err.Error())
		return
	}
	res.Success(d)
}
