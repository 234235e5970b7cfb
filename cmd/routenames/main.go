// Command routenames prints the class, method, parameter and enum names
// inferred from a route manifest.
//
// # Usage
//
//	routenames -manifest api.yaml [-props props.yaml] [-target java|go] [-debug]
//
// Route placeholders such as ${api.base:/api} are resolved against the
// property file first and the process environment second. The result is
// written to stdout as YAML.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"goa.design/clue/log"
	"gopkg.in/yaml.v3"

	"goa.design/routenames/codegen/placeholder"
	"goa.design/routenames/codegen/routes"
)

func main() {
	var (
		manifestF = flag.String("manifest", "", "Path to the route manifest (required)")
		propsF    = flag.String("props", "", "Path to a YAML property file used to resolve placeholders")
		targetF   = flag.String("target", string(routes.TargetJava), "Identifier convention (valid values: java, go)")
		dbgF      = flag.Bool("debug", false, "Log skipped routes")
	)
	flag.Parse()

	format := log.FormatJSON
	if log.IsTerminal() {
		format = log.FormatTerminal
	}
	ctx := log.Context(context.Background(), log.WithFormat(format))
	if *dbgF {
		ctx = log.Context(ctx, log.WithDebug())
		log.Debugf(ctx, "debug logs enabled")
	}

	if *manifestF == "" {
		flag.Usage()
		os.Exit(2)
	}
	if err := run(ctx, os.Stdout, *manifestF, *propsF, routes.Target(*targetF)); err != nil {
		log.Fatalf(ctx, err, "routenames failed")
	}
}

func run(ctx context.Context, w io.Writer, manifestPath, propsPath string, target routes.Target) error {
	m, err := routes.LoadManifest(manifestPath)
	if err != nil {
		return err
	}
	src := placeholder.Chain{placeholder.Env}
	if propsPath != "" {
		props, err := placeholder.LoadYAMLFile(propsPath)
		if err != nil {
			return err
		}
		src = placeholder.Chain{props, placeholder.Env}
		log.Debug(ctx, log.KV{K: "props", V: propsPath}, log.KV{K: "keys", V: props.Keys()})
	}
	res, err := routes.Build(ctx, m, src, target)
	if err != nil {
		return fmt.Errorf("build names: %w", err)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(res); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	return enc.Close()
}
