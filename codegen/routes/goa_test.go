package routes

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"goa.design/goa/v3/eval"
	"goa.design/goa/v3/expr"

	"goa.design/routenames/codegen/naming"
)

// newHTTPService builds an HTTP service expression with one endpoint per
// route, each endpoint named after its method.
func newHTTPService(name string, paths []string, routes map[string]*expr.RouteExpr) *expr.HTTPServiceExpr {
	svc := &expr.ServiceExpr{Name: name}
	httpSvc := &expr.HTTPServiceExpr{ServiceExpr: svc, Paths: paths}
	for _, method := range []string{"list", "show", "create", "remove"} {
		rt, ok := routes[method]
		if !ok {
			continue
		}
		m := &expr.MethodExpr{Name: method, Service: svc}
		svc.Methods = append(svc.Methods, m)
		e := &expr.HTTPEndpointExpr{MethodExpr: m, Service: httpSvc}
		rt.Endpoint = e
		e.Routes = []*expr.RouteExpr{rt}
		httpSvc.HTTPEndpoints = append(httpSvc.HTTPEndpoints, e)
	}
	return httpSvc
}

func TestFromHTTPService(t *testing.T) {
	svc := newHTTPService("users", []string{"/users"}, map[string]*expr.RouteExpr{
		"list":   {Method: "GET", Path: "/"},
		"show":   {Method: "GET", Path: "/{id}"},
		"create": {Method: "post", Path: ""},
		"remove": {Method: "DELETE", Path: "/{id}"},
	})

	names := FromHTTPService(context.Background(), naming.Default(), svc)
	require.Len(t, names, 4)

	got := make(map[string]*EndpointNames, len(names))
	for _, n := range names {
		assert.Equal(t, "users", n.Service)
		got[n.Endpoint] = n
	}
	assert.Equal(t, "getUsers", got["list"].Method)
	assert.Equal(t, "/users", got["list"].Route)
	assert.Equal(t, "getUserById", got["show"].Method)
	assert.Equal(t, "/users/{id}", got["show"].Route)
	assert.Equal(t, "createUser", got["create"].Method)
	assert.Equal(t, "POST", got["create"].Verb)
	assert.Equal(t, "deleteUserById", got["remove"].Method)
}

func TestFromRoots(t *testing.T) {
	svc := newHTTPService("orders", nil, map[string]*expr.RouteExpr{
		"show": {Method: "GET", Path: "/orders/{orderId}"},
	})
	root := &expr.RootExpr{API: &expr.APIExpr{
		Name: "shop",
		HTTP: &expr.HTTPExpr{Path: "/api", Services: []*expr.HTTPServiceExpr{svc}},
	}}

	names := FromRoots(context.Background(), naming.Default(), []eval.Root{root})
	require.Len(t, names, 1)
	assert.Equal(t, "/api/orders/{orderId}", names[0].Route)
	assert.Equal(t, "getOrderById", names[0].Method)
}

func TestFromRootsIgnoresAPIPathInMethodNames(t *testing.T) {
	svc := newHTTPService("users", []string{"/users"}, map[string]*expr.RouteExpr{
		"list":   {Method: "GET", Path: ""},
		"create": {Method: "POST", Path: "/"},
		"show":   {Method: "GET", Path: "/{id}"},
	})
	root := &expr.RootExpr{API: &expr.APIExpr{
		Name: "shop",
		HTTP: &expr.HTTPExpr{Path: "/api/v1", Services: []*expr.HTTPServiceExpr{svc}},
	}}

	names := FromRoots(context.Background(), naming.Default(), []eval.Root{root})
	require.Len(t, names, 3)
	got := make(map[string]*EndpointNames, len(names))
	for _, n := range names {
		got[n.Endpoint] = n
	}
	assert.Equal(t, "getUsers", got["list"].Method)
	assert.Equal(t, "/api/v1/users", got["list"].Route)
	assert.Equal(t, "createUser", got["create"].Method)
	assert.Equal(t, "/api/v1/users", got["create"].Route)
	assert.Equal(t, "getUserById", got["show"].Method)
	assert.Equal(t, "/api/v1/users/{id}", got["show"].Route)
}

func TestFromHTTPServiceNil(t *testing.T) {
	assert.Nil(t, FromHTTPService(context.Background(), naming.Default(), nil))
	assert.Nil(t, FromRoots(context.Background(), naming.Default(), nil))
}

func TestJoinPath(t *testing.T) {
	assert.Equal(t, "/users", joinPath("", "/users"))
	assert.Equal(t, "/users", joinPath("/users", "/"))
	assert.Equal(t, "/users", joinPath("/users", ""))
	assert.Equal(t, "/users/{id}", joinPath("/users/", "/{id}"))
	assert.Equal(t, "/users/{id}", joinPath("/users", "{id}"))
}
