package answer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkdownListWithShares(t *testing.T) {
	res := Result{
		Kind:  KindList,
		Title: "Gastos de 2024 (do maior para o menor)",
		Items: []Item{
			{Label: "Encargos Especiais", Value: "R$ 1.580,3 bi", Percent: "48,5%"},
			{Label: "Saúde", Value: "R$ 205,6 bi", Percent: "6,3%"},
		},
	}

	md := res.Markdown()
	assert.Contains(t, md, "### Gastos de 2024 (do maior para o menor)")
	assert.Contains(t, md, "- **Encargos Especiais**: R$ 1.580,3 bi (48,5% do total listado)")
	assert.Contains(t, md, "- **Saúde**: R$ 205,6 bi (6,3% do total listado)")
}

func TestMarkdownListWithoutPercentColumn(t *testing.T) {
	res := Result{
		Kind:  KindList,
		Title: "Credores da Dívida (do maior para o menor)",
		Items: []Item{{Label: "Bancos", Value: "10,0%"}},
	}

	assert.Contains(t, res.Markdown(), "- **Bancos**: 10,0%\n")
}

func TestMarkdownTextPassthrough(t *testing.T) {
	res := Result{Kind: KindText, Text: "O maior gasto foi X."}
	assert.Equal(t, "O maior gasto foi X.", res.Markdown())

	empty := Result{Kind: KindEmptySlice, Text: "Sem dados de gastos para 2025 no snapshot."}
	assert.Equal(t, empty.Text, empty.Markdown())
}

func TestAnswered(t *testing.T) {
	assert.True(t, Result{Kind: KindText}.Answered())
	assert.True(t, Result{Kind: KindList}.Answered())
	assert.True(t, Result{Kind: KindEmptySlice}.Answered())
	assert.False(t, Result{Kind: KindUnknownQuestion}.Answered())
	assert.False(t, Result{Kind: KindComputationError}.Answered())
}
