// Package chart renders the three snapshot charts as terminal text:
// debt evolution, two-year spending comparison and holder composition.
// Output is a plain string styled with lipgloss, sized by the caller.
package chart

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/fiscolab/fisco/internal/dataset"
	"github.com/fiscolab/fisco/internal/ptbr"
)

// DefaultWidth is used when the caller passes a non-positive width.
const DefaultWidth = 72

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	axisStyle  = lipgloss.NewStyle().Faint(true)

	evolutionBar = lipgloss.NewStyle().Foreground(lipgloss.Color("#0072B2"))
	earlierBar   = lipgloss.NewStyle().Foreground(lipgloss.Color("#4db6ac"))
	laterBar     = lipgloss.NewStyle().Foreground(lipgloss.Color("#e57373"))
	holderBar    = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffd54f"))
)

const emptyMessage = "Sem dados no snapshot."

// Evolution renders the debt stock trajectory, one bar per year with its
// value label, in ascending year order.
func Evolution(recs []dataset.EvolutionRecord, width int) string {
	if len(recs) == 0 {
		return emptyMessage
	}
	width = normalizeWidth(width)

	var max float64
	for _, r := range recs {
		if r.StockTrillions > max {
			max = r.StockTrillions
		}
	}

	// Room for "2018 " prefix and the value label suffix.
	barSpace := width - 26
	var b strings.Builder
	b.WriteString(titleStyle.Render("Evolução do Estoque da Dívida Pública Federal"))
	b.WriteString("\n\n")
	for _, r := range recs {
		bar := strings.Repeat("█", barWidth(r.StockTrillions, max, barSpace))
		fmt.Fprintf(&b, "%s %s %s\n",
			axisStyle.Render(fmt.Sprintf("%4d", r.Year)),
			evolutionBar.Render(bar),
			ptbr.Trillions(r.StockTrillions),
		)
	}
	return b.String()
}

// SpendingComparison renders grouped bars per budget function for the
// snapshot's years, ordered descending by the latest year's value.
// Functions missing a year get a zero-length bar, not an error.
func SpendingComparison(recs []dataset.SpendingRecord, width int) string {
	if len(recs) == 0 {
		return emptyMessage
	}
	width = normalizeWidth(width)

	years := distinctYears(recs)
	latest := years[len(years)-1]

	valueOf := make(map[string]map[int]float64)
	var functions []string
	var max float64
	for _, r := range recs {
		if valueOf[r.Function] == nil {
			valueOf[r.Function] = make(map[int]float64)
			functions = append(functions, r.Function)
		}
		valueOf[r.Function][r.Year] = r.ValueBillions
		if r.ValueBillions > max {
			max = r.ValueBillions
		}
	}

	sort.SliceStable(functions, func(i, j int) bool {
		return valueOf[functions[i]][latest] > valueOf[functions[j]][latest]
	})

	barSpace := width - 30
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Comparativo de Gastos por Função (%s)", yearsLabel(years))))
	b.WriteString("\n")
	for _, fn := range functions {
		b.WriteString("\n")
		b.WriteString(fn)
		b.WriteString("\n")
		for i, y := range years {
			v := valueOf[fn][y]
			style := earlierBar
			if i == len(years)-1 {
				style = laterBar
			}
			bar := strings.Repeat("█", barWidth(v, max, barSpace))
			fmt.Fprintf(&b, "  %s %s %s\n",
				axisStyle.Render(fmt.Sprintf("%4d", y)),
				style.Render(bar),
				fmt.Sprintf("R$ %s bi", ptbr.Decimal(v)),
			)
		}
	}
	return b.String()
}

// Holders renders the debt holder composition as share bars, descending
// by share. Bars are scaled against 100 so the share is readable directly.
func Holders(recs []dataset.HolderRecord, width int) string {
	if len(recs) == 0 {
		return emptyMessage
	}
	width = normalizeWidth(width)

	sorted := append([]dataset.HolderRecord(nil), recs...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].SharePercent > sorted[j].SharePercent
	})

	labelWidth := 0
	for _, h := range sorted {
		if n := lipgloss.Width(h.Creditor); n > labelWidth {
			labelWidth = n
		}
	}
	barSpace := width - labelWidth - 10

	var b strings.Builder
	b.WriteString(titleStyle.Render("Detentores da Dívida Pública (foto recente)"))
	b.WriteString("\n\n")
	for _, h := range sorted {
		bar := strings.Repeat("█", barWidth(h.SharePercent, 100, barSpace))
		fmt.Fprintf(&b, "%-*s %s %s\n",
			labelWidth, h.Creditor,
			holderBar.Render(bar),
			ptbr.Percent(h.SharePercent),
		)
	}
	return b.String()
}

// barWidth scales value against max into [0, space], with at least one
// cell for any positive value so small entries stay visible.
func barWidth(value, max float64, space int) int {
	if space < 1 {
		space = 1
	}
	if max <= 0 || value <= 0 {
		return 0
	}
	w := int(value / max * float64(space))
	if w < 1 {
		return 1
	}
	if w > space {
		return space
	}
	return w
}

func normalizeWidth(width int) int {
	if width <= 0 {
		return DefaultWidth
	}
	if width < 40 {
		return 40
	}
	return width
}

func distinctYears(recs []dataset.SpendingRecord) []int {
	seen := make(map[int]bool)
	var years []int
	for _, r := range recs {
		if !seen[r.Year] {
			seen[r.Year] = true
			years = append(years, r.Year)
		}
	}
	sort.Ints(years)
	return years
}

func yearsLabel(years []int) string {
	parts := make([]string, len(years))
	for i, y := range years {
		parts[i] = fmt.Sprintf("%d", y)
	}
	return strings.Join(parts, " vs ")
}
