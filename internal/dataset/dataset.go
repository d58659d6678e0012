// Package dataset defines the three typed snapshot tables the dashboard
// works with: debt stock evolution by year, debt holder composition, and
// comparative spending by budget function.
//
// Tables are immutable after construction. Accessors hand out copies so
// callers can never mutate the shared state behind a session.
package dataset

import "sort"

// EvolutionRecord is one year of federal public debt stock.
type EvolutionRecord struct {
	// Year is the unique record key.
	Year int

	// StockTrillions is the total debt stock in trillions of BRL.
	StockTrillions float64
}

// HolderRecord is one creditor's share of the debt snapshot.
type HolderRecord struct {
	// Creditor is the unique holder name.
	Creditor string

	// SharePercent is the holder's share in [0, 100]. The shares across
	// all holders are not required to sum to exactly 100: snapshot data
	// is rounded at the source.
	SharePercent float64
}

// SpendingRecord is one (budget function, year) spending figure.
// A function may appear for only one of the snapshot years; absence in
// the other year is valid data, not an error.
type SpendingRecord struct {
	Function      string
	Year          int
	ValueBillions float64
}

// Tables groups the three snapshot collections for one session.
//
// The zero value is empty but usable. All reads are non-mutating and the
// backing slices are never exposed, so a *Tables can be shared freely.
type Tables struct {
	evolution []EvolutionRecord
	holders   []HolderRecord
	spending  []SpendingRecord
}

// New builds an immutable table set from the given records.
//
// Inputs are copied, so later mutation of the argument slices does not
// affect the tables. Evolution records are ordered ascending by year;
// holder and spending records keep their input order, which is the order
// tie-breaks resolve to everywhere downstream.
func New(evolution []EvolutionRecord, holders []HolderRecord, spending []SpendingRecord) *Tables {
	t := &Tables{
		evolution: append([]EvolutionRecord(nil), evolution...),
		holders:   append([]HolderRecord(nil), holders...),
		spending:  append([]SpendingRecord(nil), spending...),
	}
	sort.SliceStable(t.evolution, func(i, j int) bool {
		return t.evolution[i].Year < t.evolution[j].Year
	})
	return t
}

// Evolution returns a copy of the debt evolution table, ordered ascending
// by year.
func (t *Tables) Evolution() []EvolutionRecord {
	return append([]EvolutionRecord(nil), t.evolution...)
}

// Holders returns a copy of the holder table in input order.
func (t *Tables) Holders() []HolderRecord {
	return append([]HolderRecord(nil), t.holders...)
}

// Spending returns a copy of the full spending table in input order.
func (t *Tables) Spending() []SpendingRecord {
	return append([]SpendingRecord(nil), t.spending...)
}

// SpendingForYear returns the spending records for one year, preserving
// input order. An empty slice is a valid, reportable condition for years
// absent from the snapshot; callers must not assume it is non-empty.
func (t *Tables) SpendingForYear(year int) []SpendingRecord {
	var out []SpendingRecord
	for _, r := range t.spending {
		if r.Year == year {
			out = append(out, r)
		}
	}
	return out
}

// SpendingYears returns the distinct years present in the spending table,
// ascending.
func (t *Tables) SpendingYears() []int {
	seen := make(map[int]bool)
	var years []int
	for _, r := range t.spending {
		if !seen[r.Year] {
			seen[r.Year] = true
			years = append(years, r.Year)
		}
	}
	sort.Ints(years)
	return years
}
