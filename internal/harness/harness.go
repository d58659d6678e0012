package harness

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/fiscolab/fisco/internal/answer"
	"github.com/fiscolab/fisco/internal/snapshot"
)

// Entry is one question/answer pair in a scenario transcript.
type Entry struct {
	Question string `json:"question"`
	Kind     string `json:"kind"`
	Rendered string `json:"rendered"`
}

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass indicates overall scenario success.
	// True if every expect clause holds.
	Pass bool `json:"pass"`

	// Transcript contains the rendered answer for every step, in order.
	// Used for golden comparison.
	Transcript []Entry `json:"transcript"`

	// Errors contains validation error messages.
	// Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:       true,
		Transcript: []Entry{},
		Errors:     []string{},
	}
}

// AddError adds a validation error and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// Run executes a scenario and returns the result.
//
// The snapshot is loaded once per scenario through a fresh session, then
// every step asks its question against the same table set. A snapshot
// load failure is a harness error, not a failed assertion.
func Run(scenario *Scenario) (*Result, error) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	session := snapshot.NewSessionDir(scenario.Snapshots, logger)

	tables, err := session.Tables()
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshots: %w", err)
	}

	result := NewResult()
	for i, step := range scenario.Steps {
		res := answer.Answer(step.Ask, tables)

		result.Transcript = append(result.Transcript, Entry{
			Question: step.Ask,
			Kind:     string(res.Kind),
			Rendered: res.Markdown(),
		})

		if step.Expect == nil {
			continue
		}
		for _, msg := range checkExpect(step.Expect, res) {
			result.AddError(fmt.Sprintf("steps[%d] (%s): %s", i, step.Ask, msg))
		}
	}

	return result, nil
}

// checkExpect evaluates one expect clause and returns every violation,
// not just the first.
func checkExpect(e *ExpectClause, res answer.Result) []string {
	var violations []string

	if e.Kind != "" && e.Kind != string(res.Kind) {
		violations = append(violations,
			fmt.Sprintf("expected kind %s, got %s", e.Kind, res.Kind))
	}

	rendered := res.Markdown()
	for _, want := range e.Contains {
		if !strings.Contains(rendered, want) {
			violations = append(violations,
				fmt.Sprintf("rendered answer does not contain %q", want))
		}
	}

	if e.First != "" {
		if len(res.Items) == 0 {
			violations = append(violations,
				fmt.Sprintf("expected first item %q, got no items", e.First))
		} else if res.Items[0].Label != e.First {
			violations = append(violations,
				fmt.Sprintf("expected first item %q, got %q", e.First, res.Items[0].Label))
		}
	}

	if e.Count != nil && len(res.Items) != *e.Count {
		violations = append(violations,
			fmt.Sprintf("expected %d items, got %d", *e.Count, len(res.Items)))
	}

	return violations
}
