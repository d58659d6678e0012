// Package catalog enumerates the closed set of questions the dashboard
// can answer.
//
// A question is a kind plus, for the spending questions, a year. The
// string form is "kind" or "kind:year" (e.g. "max-spending:2018").
// Anything that does not parse into a known kind is an unknown question;
// the engine turns that into a guidance result rather than an error.
package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies one aggregation the engine knows how to run.
type Kind string

const (
	// KindListSpending lists a year's spending descending by share.
	KindListSpending Kind = "list-spending"

	// KindListHolders lists debt holders descending by share.
	KindListHolders Kind = "list-holders"

	// KindMaxSpending finds the largest spending function of a year.
	KindMaxSpending Kind = "max-spending"

	// KindMinSpending finds the smallest spending function of a year.
	KindMinSpending Kind = "min-spending"

	// KindTopHolder finds the holder with the largest share.
	KindTopHolder Kind = "top-holder"

	// KindMaxDebtYear finds the year with the largest debt stock.
	KindMaxDebtYear Kind = "max-debt-year"

	// KindMinDebtYear finds the year with the smallest debt stock.
	KindMinDebtYear Kind = "min-debt-year"
)

// yearly marks the kinds parameterized by a snapshot year.
// This doubles as the kind membership table for Parse.
var yearly = map[Kind]bool{
	KindListSpending: true,
	KindMaxSpending:  true,
	KindMinSpending:  true,
	KindListHolders:  false,
	KindTopHolder:    false,
	KindMaxDebtYear:  false,
	KindMinDebtYear:  false,
}

// Yearly reports whether the kind takes a year parameter.
func (k Kind) Yearly() bool {
	return yearly[k]
}

// Valid reports whether k is a member of the catalog.
func (k Kind) Valid() bool {
	_, ok := yearly[k]
	return ok
}

// Question is one catalog member. Year is zero for kinds that take no
// year parameter.
type Question struct {
	Kind Kind
	Year int
}

// ID returns the question's string identifier.
func (q Question) ID() string {
	if q.Kind.Yearly() {
		return fmt.Sprintf("%s:%d", q.Kind, q.Year)
	}
	return string(q.Kind)
}

// Parse converts a string identifier into a Question. ok is false when
// the identifier does not name a catalog member: unknown kind, missing or
// extra year parameter, or a non-integer year.
//
// The year itself is not checked against the loaded snapshot: asking for
// a year with no data is a valid question with an empty-slice answer.
func Parse(id string) (Question, bool) {
	name, yearPart, hasYear := strings.Cut(id, ":")
	kind := Kind(name)
	if !kind.Valid() {
		return Question{}, false
	}
	if kind.Yearly() != hasYear {
		return Question{}, false
	}
	if !hasYear {
		return Question{Kind: kind}, true
	}
	year, err := strconv.Atoi(yearPart)
	if err != nil || year < 0 {
		return Question{}, false
	}
	return Question{Kind: kind, Year: year}, true
}

// Entry pairs a question with its display prompt.
type Entry struct {
	Question Question
	Prompt   string
}

// Prompt returns the pt-BR prompt text for a question, mirroring the
// phrasing shown in the insights tab.
func Prompt(q Question) string {
	switch q.Kind {
	case KindListSpending:
		return fmt.Sprintf("Listar todos os gastos de %d (do maior para o menor)", q.Year)
	case KindListHolders:
		return "Listar todos os credores da Dívida (do maior para o menor)"
	case KindMaxSpending:
		return fmt.Sprintf("Qual foi o maior gasto em %d?", q.Year)
	case KindMinSpending:
		return fmt.Sprintf("Qual foi o menor gasto em %d?", q.Year)
	case KindTopHolder:
		return "Qual o principal credor da Dívida Pública?"
	case KindMaxDebtYear:
		return "Qual foi o ano com o maior estoque da Dívida?"
	case KindMinDebtYear:
		return "Qual foi o ano com o menor estoque da Dívida?"
	default:
		return string(q.Kind)
	}
}

// Questions enumerates the concrete catalog for the given snapshot years:
// the listing questions first, then the direct ones, in a stable order.
func Questions(years []int) []Entry {
	var entries []Entry
	add := func(q Question) {
		entries = append(entries, Entry{Question: q, Prompt: Prompt(q)})
	}

	for _, y := range years {
		add(Question{Kind: KindListSpending, Year: y})
	}
	add(Question{Kind: KindListHolders})
	for _, y := range years {
		add(Question{Kind: KindMaxSpending, Year: y})
		add(Question{Kind: KindMinSpending, Year: y})
	}
	add(Question{Kind: KindTopHolder})
	add(Question{Kind: KindMaxDebtYear})
	add(Question{Kind: KindMinDebtYear})
	return entries
}

// Kinds returns every kind in the catalog in a stable order.
// Exhaustiveness tests use this to check the engine's dispatch table.
func Kinds() []Kind {
	return []Kind{
		KindListSpending,
		KindListHolders,
		KindMaxSpending,
		KindMinSpending,
		KindTopHolder,
		KindMaxDebtYear,
		KindMinDebtYear,
	}
}
