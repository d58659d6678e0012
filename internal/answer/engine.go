// Package answer is the query/answer engine: it maps catalog questions to
// deterministic aggregations over the snapshot tables and renders the
// results as fixed-locale pt-BR text.
//
// The engine is stateless and pure. Answer never panics and never returns
// a Go error; every outcome, including faults, is a Result value.
package answer

import (
	"fmt"
	"sort"

	"github.com/fiscolab/fisco/internal/catalog"
	"github.com/fiscolab/fisco/internal/dataset"
	"github.com/fiscolab/fisco/internal/ptbr"
)

// handler executes one question kind against the tables.
type handler func(q catalog.Question, tables *dataset.Tables) Result

// handlers is the dispatch table binding every catalog kind to its
// aggregation and answer template. TestHandlersCoverCatalog keeps it
// exhaustive.
var handlers = map[catalog.Kind]handler{
	catalog.KindListSpending: listSpending,
	catalog.KindListHolders:  listHolders,
	catalog.KindMaxSpending:  maxSpending,
	catalog.KindMinSpending:  minSpending,
	catalog.KindTopHolder:    topHolder,
	catalog.KindMaxDebtYear:  maxDebtYear,
	catalog.KindMinDebtYear:  minDebtYear,
}

// Answer resolves a question identifier against the tables.
//
// Unknown identifiers yield a KindUnknownQuestion guidance result. Any
// panic inside an aggregation is recovered and converted to
// KindComputationError, so the caller can always display the result.
func Answer(id string, tables *dataset.Tables) (res Result) {
	defer func() {
		if p := recover(); p != nil {
			res = Result{
				Kind:     KindComputationError,
				Question: id,
				Text:     fmt.Sprintf("Ocorreu um erro ao processar sua pergunta: %v", p),
			}
		}
	}()

	q, ok := catalog.Parse(id)
	if !ok {
		return Result{
			Kind:     KindUnknownQuestion,
			Question: id,
			Text:     "Por favor, selecione uma pergunta válida.",
		}
	}

	res = handlers[q.Kind](q, tables)
	res.Question = q.ID()
	return res
}

func listSpending(q catalog.Question, tables *dataset.Tables) Result {
	slice := tables.SpendingForYear(q.Year)
	if len(slice) == 0 {
		return emptySpendingYear(q.Year)
	}

	var total float64
	for _, r := range slice {
		total += r.ValueBillions
	}

	// Stable sort: ties keep their snapshot order.
	sort.SliceStable(slice, func(i, j int) bool {
		return slice[i].ValueBillions > slice[j].ValueBillions
	})

	items := make([]Item, len(slice))
	for i, r := range slice {
		share := r.ValueBillions / total * 100
		items[i] = Item{
			Label:   r.Function,
			Value:   fmt.Sprintf("R$ %s bi", ptbr.Decimal(r.ValueBillions)),
			Percent: ptbr.Percent(share),
		}
	}

	return Result{
		Kind:  KindList,
		Title: fmt.Sprintf("Gastos de %d (do maior para o menor)", q.Year),
		Items: items,
	}
}

func listHolders(_ catalog.Question, tables *dataset.Tables) Result {
	holders := tables.Holders()
	if len(holders) == 0 {
		return emptyHolders()
	}

	sort.SliceStable(holders, func(i, j int) bool {
		return holders[i].SharePercent > holders[j].SharePercent
	})

	items := make([]Item, len(holders))
	for i, h := range holders {
		items[i] = Item{Label: h.Creditor, Value: ptbr.Percent(h.SharePercent)}
	}

	return Result{
		Kind:  KindList,
		Title: "Credores da Dívida (do maior para o menor)",
		Items: items,
	}
}

func maxSpending(q catalog.Question, tables *dataset.Tables) Result {
	slice := tables.SpendingForYear(q.Year)
	if len(slice) == 0 {
		return emptySpendingYear(q.Year)
	}

	best := slice[0]
	for _, r := range slice[1:] {
		if r.ValueBillions > best.ValueBillions {
			best = r
		}
	}

	return Result{
		Kind: KindText,
		Text: fmt.Sprintf("O maior gasto em %d foi com %s, no valor de %s.",
			q.Year, best.Function, ptbr.Billions(best.ValueBillions)),
	}
}

func minSpending(q catalog.Question, tables *dataset.Tables) Result {
	slice := tables.SpendingForYear(q.Year)
	if len(slice) == 0 {
		return emptySpendingYear(q.Year)
	}

	best := slice[0]
	for _, r := range slice[1:] {
		if r.ValueBillions < best.ValueBillions {
			best = r
		}
	}

	return Result{
		Kind: KindText,
		Text: fmt.Sprintf("O menor gasto em %d (entre os principais listados) foi com %s, no valor de %s.",
			q.Year, best.Function, ptbr.Billions(best.ValueBillions)),
	}
}

func topHolder(_ catalog.Question, tables *dataset.Tables) Result {
	holders := tables.Holders()
	if len(holders) == 0 {
		return emptyHolders()
	}

	best := holders[0]
	for _, h := range holders[1:] {
		if h.SharePercent > best.SharePercent {
			best = h
		}
	}

	return Result{
		Kind: KindText,
		Text: fmt.Sprintf("O principal credor da Dívida Pública são os %s, detendo %s do total.",
			best.Creditor, ptbr.Percent(best.SharePercent)),
	}
}

func maxDebtYear(_ catalog.Question, tables *dataset.Tables) Result {
	evolution := tables.Evolution()
	if len(evolution) == 0 {
		return emptyEvolution()
	}

	best := evolution[0]
	for _, r := range evolution[1:] {
		if r.StockTrillions > best.StockTrillions {
			best = r
		}
	}

	return Result{
		Kind: KindText,
		Text: fmt.Sprintf("O ano com o maior estoque da Dívida Pública no período foi %d, atingindo %s.",
			best.Year, ptbr.Trillions(best.StockTrillions)),
	}
}

func minDebtYear(_ catalog.Question, tables *dataset.Tables) Result {
	evolution := tables.Evolution()
	if len(evolution) == 0 {
		return emptyEvolution()
	}

	best := evolution[0]
	for _, r := range evolution[1:] {
		if r.StockTrillions < best.StockTrillions {
			best = r
		}
	}

	return Result{
		Kind: KindText,
		Text: fmt.Sprintf("O ano com o menor estoque da Dívida Pública no período foi %d, com %s.",
			best.Year, ptbr.Trillions(best.StockTrillions)),
	}
}

func emptySpendingYear(year int) Result {
	return Result{
		Kind: KindEmptySlice,
		Text: fmt.Sprintf("Sem dados de gastos para %d no snapshot.", year),
	}
}

func emptyHolders() Result {
	return Result{
		Kind: KindEmptySlice,
		Text: "Sem dados de credores da Dívida no snapshot.",
	}
}

func emptyEvolution() Result {
	return Result{
		Kind: KindEmptySlice,
		Text: "Sem dados de evolução da Dívida no snapshot.",
	}
}
