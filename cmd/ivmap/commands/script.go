// Package commands implements the ivmap CLI subcommands.
package commands

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrAmbiguousOp is returned when a script operation carries both an assign
// and a get clause, or neither.
var ErrAmbiguousOp = errors.New("operation must be exactly one of assign or get")

// Script is a replayable sequence of interval-map operations. The map is
// created with the script's default value; keys are int64, values strings.
type Script struct {
	Default string `yaml:"default"`
	Ops     []Op   `yaml:"ops"`
}

// Op is a single script operation: an assignment or a point lookup.
type Op struct {
	Assign *AssignOp `yaml:"assign,omitempty"`
	Get    *int64    `yaml:"get,omitempty"`
}

// AssignOp assigns Value to the half-open key range [Begin, End).
type AssignOp struct {
	Begin int64  `yaml:"begin"`
	End   int64  `yaml:"end"`
	Value string `yaml:"value"`
}

// LoadScript reads and validates a script file.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path) //nolint:gosec // user-supplied script path is the tool's purpose.
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}

	script := &Script{}

	unmarshalErr := yaml.Unmarshal(data, script)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("parse script: %w", unmarshalErr)
	}

	for idx, op := range script.Ops {
		if (op.Assign == nil) == (op.Get == nil) {
			return nil, fmt.Errorf("op %d: %w", idx, ErrAmbiguousOp)
		}
	}

	return script, nil
}
