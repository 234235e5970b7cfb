package routes

import (
	"context"
	"strings"

	"goa.design/clue/log"
	"goa.design/goa/v3/eval"
	"goa.design/goa/v3/expr"

	"goa.design/routenames/codegen/naming"
)

// EndpointNames holds the names inferred for a route of a Goa HTTP endpoint.
type EndpointNames struct {
	// Service is the Goa service name.
	Service string `yaml:"service" json:"service"`
	// Endpoint is the Goa method name.
	Endpoint string `yaml:"endpoint" json:"endpoint"`
	// Verb is the HTTP method of the route.
	Verb string `yaml:"verb" json:"verb"`
	// Route is the route path joined with the service base path.
	Route string `yaml:"route" json:"route"`
	// Method is the inferred method name.
	Method string `yaml:"method" json:"method"`
}

// FromRoots infers names for every HTTP route of the Goa root expressions
// found in roots.
func FromRoots(ctx context.Context, n *naming.Namer, roots []eval.Root) []*EndpointNames {
	var res []*EndpointNames
	for _, root := range roots {
		r, ok := root.(*expr.RootExpr)
		if !ok || r.API == nil || r.API.HTTP == nil {
			continue
		}
		for _, svc := range r.API.HTTP.Services {
			res = append(res, fromHTTPService(ctx, n, r.API.HTTP.Path, svc)...)
		}
	}
	return res
}

// FromHTTPService infers the names of every route of svc. The first service
// base path, if any, is the controller route. The API path is not part of
// the routes given to the naming engine.
func FromHTTPService(ctx context.Context, n *naming.Namer, svc *expr.HTTPServiceExpr) []*EndpointNames {
	return fromHTTPService(ctx, n, "", svc)
}

func fromHTTPService(ctx context.Context, n *naming.Namer, apiPath string, svc *expr.HTTPServiceExpr) []*EndpointNames {
	if svc == nil || svc.ServiceExpr == nil {
		return nil
	}
	var base string
	if len(svc.Paths) > 0 {
		base = svc.Paths[0]
	}
	var res []*EndpointNames
	for _, e := range svc.HTTPEndpoints {
		if e.MethodExpr == nil {
			continue
		}
		for _, rt := range e.Routes {
			rel := joinPath(base, rt.Path)
			method := n.ActionName(base, rel, naming.ParseActionType(rt.Method))
			if method == "" {
				log.Debug(ctx, log.KV{K: "msg", V: "no name inferred"}, log.KV{K: "service", V: svc.Name()}, log.KV{K: "endpoint", V: e.MethodExpr.Name})
				continue
			}
			res = append(res, &EndpointNames{
				Service:  svc.Name(),
				Endpoint: e.MethodExpr.Name,
				Verb:     strings.ToUpper(rt.Method),
				Route:    joinPath(apiPath, rel),
				Method:   method,
			})
		}
	}
	return res
}

// joinPath joins two route fragments with a single '/'.
func joinPath(base, p string) string {
	switch {
	case base == "":
		return p
	case p == "" || p == "/":
		return base
	}
	return strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(p, "/")
}
