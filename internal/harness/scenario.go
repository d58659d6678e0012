package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Scenario defines a conformance test scenario: a snapshot to load and a
// sequence of questions with expected results.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Snapshots is an optional snapshot directory. Relative paths are
	// resolved against the scenario file location. Empty means the
	// embedded snapshot data.
	Snapshots string `yaml:"snapshots,omitempty"`

	// Steps are the questions to ask, in order.
	Steps []Step `yaml:"steps"`
}

// Step asks one question and optionally validates the result.
type Step struct {
	// Ask is the question identifier, "kind" or "kind:year".
	// Free text is deliberately allowed: scenarios also cover the
	// unknown-question path.
	Ask string `yaml:"ask"`

	// Expect specifies the expected result. If nil, the step only
	// contributes to the transcript.
	Expect *ExpectClause `yaml:"expect,omitempty"`
}

// ExpectClause specifies expected result properties. All set fields must
// hold; unset fields are not checked.
type ExpectClause struct {
	// Kind is the expected result kind name (e.g. "TEXT", "LIST").
	Kind string `yaml:"kind,omitempty"`

	// Contains lists substrings that must appear in the rendered answer.
	Contains []string `yaml:"contains,omitempty"`

	// First is the expected label of the first listing item.
	First string `yaml:"first,omitempty"`

	// Count is the expected number of listing items. A pointer so that
	// zero is expressible.
	Count *int `yaml:"count,omitempty"`
}

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	return LoadScenarioWithBasePath(path, filepath.Dir(path))
}

// LoadScenarioWithBasePath reads and parses a scenario YAML file,
// resolving the snapshot directory relative to the provided base path.
func LoadScenarioWithBasePath(path, basePath string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Strict field validation catches typos like "step:" vs "steps:".
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if scenario.Snapshots != "" && !filepath.IsAbs(scenario.Snapshots) && basePath != "" {
		scenario.Snapshots = filepath.Join(basePath, scenario.Snapshots)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if len(s.Steps) == 0 {
		return fmt.Errorf("steps list is required and must be non-empty")
	}

	if s.Snapshots != "" {
		info, err := os.Stat(s.Snapshots)
		if err != nil || !info.IsDir() {
			return fmt.Errorf("snapshot directory not found: %s", s.Snapshots)
		}
	}

	for i, step := range s.Steps {
		if step.Ask == "" {
			return fmt.Errorf("steps[%d]: ask is required", i)
		}
		if step.Expect != nil {
			if err := validateExpect(step.Expect); err != nil {
				return fmt.Errorf("steps[%d].expect: %w", i, err)
			}
		}
	}

	return nil
}

// knownKinds are the result kind names an expect clause may reference.
var knownKinds = map[string]bool{
	"TEXT":              true,
	"LIST":              true,
	"EMPTY_SLICE":       true,
	"UNKNOWN_QUESTION":  true,
	"COMPUTATION_ERROR": true,
}

func validateExpect(e *ExpectClause) error {
	if e.Kind == "" && len(e.Contains) == 0 && e.First == "" && e.Count == nil {
		return fmt.Errorf("at least one of kind, contains, first, count is required")
	}
	if e.Kind != "" && !knownKinds[e.Kind] {
		return fmt.Errorf("unknown result kind %q", e.Kind)
	}
	if e.Count != nil && *e.Count < 0 {
		return fmt.Errorf("count must be non-negative")
	}
	return nil
}
