// Package harness provides conformance testing for the answer engine.
//
// The harness loads a snapshot, asks a sequence of catalog questions,
// and validates the results as executable contract tests.
//
// # Scenario Format
//
// Scenarios are defined in YAML files with the following structure:
//
//	name: scenario_name
//	description: "What this scenario validates"
//	snapshots: path/to/snapshot/dir   # optional; embedded data when omitted
//	steps:
//	  - ask: max-spending:2024
//	    expect:
//	      kind: TEXT
//	      contains:
//	        - "Encargos Especiais"
//	  - ask: list-holders
//	    expect:
//	      kind: LIST
//	      first: "Fundos de Previdência"
//	      count: 7
//
// # Expect Clauses
//
// Each step may carry an expect clause with any combination of:
//
//   - kind: the expected result kind (TEXT, LIST, EMPTY_SLICE,
//     UNKNOWN_QUESTION, COMPUTATION_ERROR)
//   - contains: substrings that must appear in the rendered answer
//   - first: the label of the first listing item
//   - count: the exact number of listing items
//
// Steps without an expect clause only contribute to the transcript.
//
// # Deterministic Transcripts
//
// Snapshot data is static and the engine sorts deterministically, so the
// rendered transcript of a scenario is stable across runs. RunWithGolden
// compares it against a golden file under testdata/golden; regenerate with:
//
//	go test ./internal/harness -update
package harness
