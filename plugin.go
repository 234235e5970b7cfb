// Package routenames is a Goa plugin that reports the method names inferred
// for every HTTP route of a design. Import it for its side effects in the
// design package:
//
//	import _ "goa.design/routenames"
//
// "goa gen" then emits gen/http/routenames.yaml.
package routenames

import (
	"context"
	"fmt"
	"path/filepath"

	"goa.design/goa/v3/codegen"
	"goa.design/goa/v3/eval"
	"gopkg.in/yaml.v3"

	"goa.design/routenames/codegen/naming"
	"goa.design/routenames/codegen/routes"
)

// init registers the plugin generator
func init() {
	codegen.RegisterPlugin("routenames", "gen", Prepare, Generate)
}

// Prepare is a no-op; the plugin only reads the evaluated roots.
func Prepare(_ string, _ []eval.Root) error { return nil }

// Generate appends the route names report to files.
func Generate(_ string, roots []eval.Root, files []*codegen.File) ([]*codegen.File, error) {
	names := routes.FromRoots(context.Background(), naming.Default(), roots)
	if len(names) == 0 {
		return files, nil
	}
	data, err := yaml.Marshal(names)
	if err != nil {
		return nil, fmt.Errorf("encode route names: %w", err)
	}
	return append(files, &codegen.File{
		Path: filepath.Join(codegen.Gendir, "http", "routenames.yaml"),
		SectionTemplates: []*codegen.SectionTemplate{{
			Name:   "routenames",
			Source: "{{ . }}",
			Data:   string(data),
		}},
	}), nil
}
