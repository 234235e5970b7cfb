// Package routes feeds route descriptions into the naming engine. Routes come
// either from a YAML manifest or from an evaluated Goa HTTP design.
package routes

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"

	"goa.design/routenames/codegen/naming"
)

type (
	// Manifest describes the controllers and actions of an API.
	Manifest struct {
		// Package is the base package of the generated code. Request and
		// response models live in its model sub-package.
		Package string `yaml:"package"`
		// Naming configures class name inference and inflection.
		Naming Naming `yaml:"naming"`
		// Enums maps enum type names to their raw values.
		Enums map[string][]string `yaml:"enums"`
		// Controllers lists the root resources of the API.
		Controllers []*Controller `yaml:"controllers"`
	}

	// Naming groups the naming settings of a manifest.
	Naming struct {
		naming.NamingContext `yaml:",inline"`
		// WordDelimiters overrides the sanitizer word delimiters.
		WordDelimiters string `yaml:"wordDelimiters"`
		// Uncountables lists words that must not be singularized.
		Uncountables []string `yaml:"uncountables"`
		// Irregulars maps singular words to irregular plurals.
		Irregulars map[string]string `yaml:"irregulars"`
	}

	// Controller is a root resource of the API.
	Controller struct {
		// Route is the route of the controller, e.g. "/users".
		Route string `yaml:"route"`
		// Type is the name of an existing implementation type, e.g.
		// "UserServiceImpl". When set it names the resource.
		Type string `yaml:"type"`
		// Description documents the controller.
		Description string `yaml:"description"`
		// Actions lists the operations exposed by the controller.
		Actions []*Action `yaml:"actions"`
	}

	// Action is a single HTTP operation.
	Action struct {
		// Route is the full route of the action, e.g. "/users/{id}".
		Route string `yaml:"route"`
		// Verb is the HTTP method.
		Verb string `yaml:"verb"`
		// Description documents the action.
		Description string `yaml:"description"`
		// ContentTypes lists the accepted request body content types.
		ContentTypes []string `yaml:"contentTypes"`
		// QueryParams lists the names of the query parameters.
		QueryParams []string `yaml:"queryParams"`
		// Headers lists the names of the request headers.
		Headers []string `yaml:"headers"`
	}
)

//go:embed schema.json
var schemaJSON []byte

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

// Config returns the naming configuration described by n.
func (n Naming) Config() naming.Config {
	cfg := naming.DefaultConfig()
	if n.WordDelimiters != "" {
		cfg.WordDelimiters = n.WordDelimiters
	}
	cfg.Uncountables = n.Uncountables
	cfg.Irregulars = n.Irregulars
	return cfg
}

// LoadManifest reads and validates the manifest stored at path.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest %q: %w", path, err)
	}
	m, err := ParseManifest(data)
	if err != nil {
		return nil, fmt.Errorf("manifest %q: %w", path, err)
	}
	return m, nil
}

// ParseManifest decodes a YAML manifest and validates it against the
// manifest JSON schema.
func ParseManifest(data []byte) (*Manifest, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if err := validate(doc); err != nil {
		return nil, err
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode manifest: %w", err)
	}
	return &m, nil
}

// validate checks doc against the manifest schema. doc is round-tripped
// through JSON so that numbers and maps have the types the validator
// expects.
func validate(doc any) error {
	sch, err := compiledSchema()
	if err != nil {
		return err
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("decode manifest: %w", err)
	}
	if err := sch.Validate(inst); err != nil {
		return fmt.Errorf("invalid manifest: %w", err)
	}
	return nil
}

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		var doc any
		if err := json.Unmarshal(schemaJSON, &doc); err != nil {
			schemaErr = fmt.Errorf("unmarshal schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("manifest.schema.json", doc); err != nil {
			schemaErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		schema, schemaErr = c.Compile("manifest.schema.json")
		if schemaErr != nil {
			schemaErr = fmt.Errorf("compile schema: %w", schemaErr)
		}
	})
	return schema, schemaErr
}
