// Package snapshot is the dataset store for the dashboard.
//
// It loads the three snapshot sources (debt evolution, debt holders,
// comparative spending) from local JSON files, validates each one against
// an embedded CUE schema, and exposes the result as immutable
// dataset.Tables.
//
// Loading is all-or-nothing: if any source is missing or malformed the
// whole load fails with a LoadFailure, so consumers can show one unified
// error instead of partially populated tabs.
//
// A Session memoizes the first successful load for its lifetime. Repeated
// Tables() calls return the identical triple without re-reading the
// sources. Memoization is scoped to the session, not the process, so
// unrelated sessions never share hidden state.
//
// Snapshot sources are static captures of the official portals (Tesouro
// Transparente, Siga Brasil); the defaults are embedded in the binary and
// a directory override lets operators supply their own files.
package snapshot
