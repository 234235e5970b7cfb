package naming

import (
	"sort"
	"sync"

	"github.com/go-openapi/inflect"
)

type (
	// Config is the normalization configuration shared by every naming
	// operation of a Namer.
	Config struct {
		// WordDelimiters lists the characters treated as word boundaries by
		// the identifier sanitizer. Each delimiter is removed and the
		// character following it is upper-cased.
		WordDelimiters string `yaml:"wordDelimiters"`
		// Uncountables lists words the singularizer must leave untouched.
		Uncountables []string `yaml:"uncountables"`
		// Irregulars maps singular words to their irregular plural form.
		Irregulars map[string]string `yaml:"irregulars"`
	}

	// Namer applies a Config. A Namer is immutable once built and safe for
	// concurrent use.
	Namer struct {
		delimiters string
		rules      *inflect.Ruleset
	}
)

var (
	defaultOnce  sync.Once
	defaultNamer *Namer
)

// DefaultConfig returns the configuration used by the package level
// functions.
func DefaultConfig() Config {
	return Config{WordDelimiters: "-_ ."}
}

// New builds a Namer from cfg. An empty WordDelimiters falls back to the
// default delimiters.
func New(cfg Config) *Namer {
	delims := cfg.WordDelimiters
	if delims == "" {
		delims = DefaultConfig().WordDelimiters
	}
	rules := inflect.NewDefaultRuleset()
	for _, w := range cfg.Uncountables {
		if w != "" {
			rules.AddUncountable(w)
		}
	}
	singulars := make([]string, 0, len(cfg.Irregulars))
	for s := range cfg.Irregulars {
		singulars = append(singulars, s)
	}
	sort.Strings(singulars)
	for _, s := range singulars {
		if p := cfg.Irregulars[s]; s != "" && p != "" {
			rules.AddIrregular(s, p)
		}
	}
	return &Namer{delimiters: delims, rules: rules}
}

// Default returns the process-wide Namer built from DefaultConfig. It is
// constructed on first use and never modified afterwards.
func Default() *Namer {
	defaultOnce.Do(func() {
		defaultNamer = New(DefaultConfig())
	})
	return defaultNamer
}
