// Package parity loads and executes cross-language test-vector suites
// against the basicops implementation. The same YAML vector files are
// consumed by the sibling implementations in other languages; a suite that
// passes everywhere demonstrates behavioral parity.
package parity

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Suite is one vector file: a named, ordered list of cases.
type Suite struct {
	// Name identifies the suite in reports. Required.
	Name string `yaml:"name"`

	// Cases are executed in order; each case is independent.
	Cases []Case `yaml:"cases"`
}

// Case describes a single operation invocation and its expected outcome.
// Operations are named by their cross-language snake_case identifiers
// ("concat", "index_of", "logical_and", ...); see [Operations].
type Case struct {
	// Name labels the case in reports. Optional; a default of "op#index"
	// is used when empty.
	Name string `yaml:"name,omitempty"`

	// Op is the operation identifier. Required.
	Op string `yaml:"op"`

	// Args are the positional operands. Strings, integers, floats, booleans,
	// and (for join) a sequence of strings are supported.
	Args []any `yaml:"args"`

	// Want is the expected result. Ignored when WantError is set.
	Want any `yaml:"want,omitempty"`

	// WantError expects the operation to report an error, such as integer
	// division by zero. The string operations never set it: they are total.
	WantError bool `yaml:"want_error,omitempty"`
}

// LoadSuite reads and decodes one YAML vector file.
func LoadSuite(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading suite: %w", err)
	}
	var suite Suite
	if err := yaml.Unmarshal(data, &suite); err != nil {
		return nil, fmt.Errorf("decoding suite %s: %w", path, err)
	}
	if suite.Name == "" {
		return nil, fmt.Errorf("suite %s: missing name", path)
	}
	for i, c := range suite.Cases {
		if c.Op == "" {
			return nil, fmt.Errorf("suite %s: case %d: missing op", path, i)
		}
	}
	return &suite, nil
}

// LoadSuites loads every given vector file, failing on the first error.
func LoadSuites(paths []string) ([]*Suite, error) {
	suites := make([]*Suite, 0, len(paths))
	for _, path := range paths {
		suite, err := LoadSuite(path)
		if err != nil {
			return nil, err
		}
		suites = append(suites, suite)
	}
	return suites, nil
}
