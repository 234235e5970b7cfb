package routes

import (
	"context"
	"fmt"
	"sort"

	"goa.design/clue/log"

	"goa.design/routenames/codegen/naming"
	"goa.design/routenames/codegen/placeholder"
)

type (
	// Target selects the identifier convention of the generated names.
	Target string

	// Result lists the names inferred for a manifest.
	Result struct {
		// ModelPackage is the package holding request and response models.
		ModelPackage string             `yaml:"modelPackage,omitempty" json:"modelPackage,omitempty"`
		Controllers  []*ControllerNames `yaml:"controllers" json:"controllers"`
		Enums        []*EnumNames       `yaml:"enums,omitempty" json:"enums,omitempty"`
	}

	// ControllerNames holds the names inferred for a controller.
	ControllerNames struct {
		// Route is the controller route with placeholders resolved.
		Route string `yaml:"route" json:"route"`
		// ClassName is the compound name derived from the route.
		ClassName string `yaml:"className" json:"className"`
		// Resource is the name of the last literal route segment or of the
		// implementation type when the manifest names one.
		Resource string `yaml:"resource" json:"resource"`
		// Slug is a file name friendly rendition of ClassName.
		Slug string `yaml:"slug" json:"slug"`
		// Doc is the cleaned controller description.
		Doc string `yaml:"doc,omitempty" json:"doc,omitempty"`
		// Actions lists the names inferred for each action.
		Actions []*ActionNames `yaml:"actions" json:"actions"`
	}

	// ActionNames holds the names inferred for an action.
	ActionNames struct {
		// Route is the action route with placeholders resolved.
		Route string `yaml:"route" json:"route"`
		// Verb is the normalized HTTP method.
		Verb string `yaml:"verb" json:"verb"`
		// Method is the inferred method name.
		Method string `yaml:"method" json:"method"`
		// Variants lists one method name per request content type.
		Variants []string `yaml:"variants,omitempty" json:"variants,omitempty"`
		// PathParams lists the parameter names of the route parameters.
		PathParams []string `yaml:"pathParams,omitempty" json:"pathParams,omitempty"`
		// QueryParams lists the parameter names of the query parameters.
		QueryParams []string `yaml:"queryParams,omitempty" json:"queryParams,omitempty"`
		// Headers lists the parameter names of the request headers.
		Headers []string `yaml:"headers,omitempty" json:"headers,omitempty"`
		// Doc is the cleaned action description.
		Doc string `yaml:"doc,omitempty" json:"doc,omitempty"`
	}

	// EnumNames holds the names inferred for an enum.
	EnumNames struct {
		Name      string   `yaml:"name" json:"name"`
		Constants []string `yaml:"constants" json:"constants"`
	}
)

const (
	// TargetJava produces lowerCamel methods and UpperCamel classes.
	TargetJava Target = "java"
	// TargetGo produces exported Go identifiers.
	TargetGo Target = "go"
)

// Build infers the names of every controller, action and enum of m. Route
// placeholders are resolved against src. The first m.Naming.TopLevel
// segments of each route are the API root and do not take part in method
// names. Actions whose route yields no name are skipped.
func Build(ctx context.Context, m *Manifest, src placeholder.Source, target Target) (*Result, error) {
	if m == nil {
		return nil, fmt.Errorf("nil manifest")
	}
	switch target {
	case TargetJava, TargetGo:
	case "":
		target = TargetJava
	default:
		return nil, fmt.Errorf("unknown target %q", target)
	}
	n := naming.New(m.Naming.Config())
	res := &Result{}
	if m.Package != "" {
		res.ModelPackage = m.Package + naming.DefaultModelPackage
	}
	for _, c := range m.Controllers {
		res.Controllers = append(res.Controllers, buildController(ctx, n, m.Naming.NamingContext, c, src, target))
	}
	res.Enums = buildEnums(n, m.Enums, target)
	return res, nil
}

func buildController(ctx context.Context, n *naming.Namer, nc naming.NamingContext, c *Controller, src placeholder.Source, target Target) *ControllerNames {
	route := placeholder.Resolve(c.Route, src)
	class := n.SpanName(route, nc)
	if class == "" {
		class = n.LastResourceName(route, nc.Singularize)
	}
	cn := &ControllerNames{
		Route:     route,
		ClassName: class,
		Resource:  resourceName(n, route, c.Type, nc.Singularize),
		Slug:      naming.FileSlug(class, "controller"),
		Doc:       naming.CleanFreeText(c.Description),
	}
	if target == TargetGo {
		cn.ClassName = naming.GoIdentifier(cn.ClassName, true)
	}
	for _, a := range c.Actions {
		an := buildAction(n, route, nc.TopLevel, a, src, target)
		if an == nil {
			log.Debug(ctx, log.KV{K: "msg", V: "no name inferred"}, log.KV{K: "route", V: a.Route}, log.KV{K: "verb", V: a.Verb})
			continue
		}
		cn.Actions = append(cn.Actions, an)
	}
	return cn
}

// resourceName names the resource of a controller after its implementation
// type if any, else after the last route segment that is not a parameter.
func resourceName(n *naming.Namer, route, typeName string, singularize bool) string {
	if typeName != "" {
		if name := naming.ResourceClassName(typeName); name != "" {
			return naming.Capitalize(name)
		}
	}
	segs := naming.Segments(route)
	for i := len(segs) - 1; i >= 0; i-- {
		if !naming.IsURIParamResource(segs[i]) {
			return n.ResourceName(segs[i], singularize)
		}
	}
	return ""
}

func buildAction(n *naming.Namer, controllerRoute string, topLevel int, a *Action, src placeholder.Source, target Target) *ActionNames {
	route := placeholder.Resolve(a.Route, src)
	verb := naming.ParseActionType(a.Verb)
	method := n.ActionName(naming.TrimRoot(controllerRoute, topLevel), naming.TrimRoot(route, topLevel), verb)
	if method == "" {
		return nil
	}
	render := func(s string) string { return s }
	if target == TargetGo {
		render = func(s string) string { return naming.GoIdentifier(s, true) }
	}
	an := &ActionNames{
		Route:  route,
		Verb:   string(verb),
		Method: render(method),
		Doc:    naming.CleanFreeText(a.Description),
	}
	if len(a.ContentTypes) > 1 {
		for _, q := range naming.Qualifiers(a.ContentTypes) {
			an.Variants = append(an.Variants, render(method+q))
		}
	}
	for _, p := range naming.ExtractURIParams(route) {
		an.PathParams = append(an.PathParams, n.ParameterName(p))
	}
	for _, q := range a.QueryParams {
		an.QueryParams = append(an.QueryParams, n.ParameterName(q))
	}
	for _, h := range a.Headers {
		an.Headers = append(an.Headers, n.ParameterName(h))
	}
	return an
}

func buildEnums(n *naming.Namer, enums map[string][]string, target Target) []*EnumNames {
	if len(enums) == 0 {
		return nil
	}
	names := make([]string, 0, len(enums))
	for name := range enums {
		names = append(names, name)
	}
	sort.Strings(names)
	res := make([]*EnumNames, 0, len(names))
	for _, name := range names {
		en := &EnumNames{Name: n.ClassName(name)}
		if target == TargetGo {
			en.Name = naming.GoIdentifier(name, true)
		}
		for _, v := range enums[name] {
			en.Constants = append(en.Constants, naming.CleanForEnumConstant(v))
		}
		res = append(res, en)
	}
	return res
}
