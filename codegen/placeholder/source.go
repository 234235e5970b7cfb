package placeholder

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"
)

type (
	// Source looks up placeholder values by key.
	Source interface {
		// Lookup returns the value stored under key and whether it exists.
		Lookup(key string) (string, bool)
	}

	// SourceFunc adapts a function to the Source interface.
	SourceFunc func(key string) (string, bool)

	// MapSource is a Source backed by a map.
	MapSource map[string]string

	// Chain is a Source that consults each of its sources in order and
	// returns the first value found.
	Chain []Source
)

// Env is a Source backed by the process environment.
var Env Source = SourceFunc(os.LookupEnv)

// Lookup implements Source.
func (f SourceFunc) Lookup(key string) (string, bool) { return f(key) }

// Lookup implements Source.
func (m MapSource) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// Lookup implements Source.
func (c Chain) Lookup(key string) (string, bool) {
	for _, s := range c {
		if s == nil {
			continue
		}
		if v, ok := s.Lookup(key); ok {
			return v, true
		}
	}
	return "", false
}

// Keys returns the keys of m in sorted order.
func (m MapSource) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// LoadYAMLFile reads a YAML property file. Nested mappings are flattened
// into dotted keys so that
//
//	api:
//	  base: /v1
//
// yields the key "api.base". Sequences are indexed: "hosts.0", "hosts.1".
func LoadYAMLFile(path string) (MapSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read property file %q: %w", path, err)
	}
	src, err := ParseYAML(data)
	if err != nil {
		return nil, fmt.Errorf("property file %q: %w", path, err)
	}
	return src, nil
}

// ParseYAML parses YAML properties. See LoadYAMLFile.
func ParseYAML(data []byte) (MapSource, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	src := MapSource{}
	flatten("", doc, src)
	return src, nil
}

func flatten(prefix string, v any, dst MapSource) {
	switch val := v.(type) {
	case map[string]any:
		for k, child := range val {
			flatten(join(prefix, k), child, dst)
		}
	case map[any]any:
		for k, child := range val {
			flatten(join(prefix, fmt.Sprint(k)), child, dst)
		}
	case []any:
		for i, child := range val {
			flatten(join(prefix, strconv.Itoa(i)), child, dst)
		}
	case nil:
		if prefix != "" {
			dst[prefix] = ""
		}
	default:
		if prefix != "" {
			dst[prefix] = fmt.Sprint(val)
		}
	}
}

func join(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
