package answer

import (
	"fmt"
	"strings"
)

// Kind categorizes answer results. Every call to Answer produces exactly
// one Result; failures are result values, never panics or errors.
type Kind string

const (
	// KindText is a single-fact answer rendered as one sentence.
	KindText Kind = "TEXT"

	// KindList is an ordered listing answer with one item per record.
	KindList Kind = "LIST"

	// KindEmptySlice means the requested slice has zero rows. This is a
	// valid, descriptive answer, not a fault: it is what prevents a
	// division by zero in the share computation.
	KindEmptySlice Kind = "EMPTY_SLICE"

	// KindUnknownQuestion means the identifier is not in the catalog.
	KindUnknownQuestion Kind = "UNKNOWN_QUESTION"

	// KindComputationError is the catch-all for unanticipated faults,
	// converted at the engine boundary.
	KindComputationError Kind = "COMPUTATION_ERROR"
)

// Item is one row of a listing answer. Value and Percent are already
// formatted for display; Percent is empty when the value itself is the
// percentage (holder listings).
type Item struct {
	Label   string `json:"label"`
	Value   string `json:"value"`
	Percent string `json:"percent,omitempty"`
}

// Result is the engine's only output shape.
type Result struct {
	Kind     Kind   `json:"kind"`
	Question string `json:"question,omitempty"`
	Title    string `json:"title,omitempty"`
	Text     string `json:"text,omitempty"`
	Items    []Item `json:"items,omitempty"`
}

// Answered reports whether the result carries an actual answer (including
// the descriptive empty-slice answer) as opposed to a guidance or fault
// result.
func (r Result) Answered() bool {
	switch r.Kind {
	case KindText, KindList, KindEmptySlice:
		return true
	}
	return false
}

// Markdown renders the result for the insights tab: listing answers
// become a heading plus a bold-label bullet list, and everything else
// is the plain sentence.
func (r Result) Markdown() string {
	if r.Kind != KindList {
		return r.Text
	}

	var b strings.Builder
	fmt.Fprintf(&b, "### %s\n\n", r.Title)
	for _, item := range r.Items {
		if item.Percent != "" {
			fmt.Fprintf(&b, "- **%s**: %s (%s do total listado)\n", item.Label, item.Value, item.Percent)
		} else {
			fmt.Fprintf(&b, "- **%s**: %s\n", item.Label, item.Value)
		}
	}
	return b.String()
}
