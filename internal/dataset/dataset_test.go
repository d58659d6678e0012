package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCopiesInputs(t *testing.T) {
	evolution := []EvolutionRecord{{Year: 2020, StockTrillions: 6.6}}
	holders := []HolderRecord{{Creditor: "Bancos", SharePercent: 10.0}}
	spending := []SpendingRecord{{Function: "Saúde", Year: 2024, ValueBillions: 205.6}}

	tables := New(evolution, holders, spending)

	// Mutating the original slices must not leak into the tables.
	evolution[0].Year = 1999
	holders[0].Creditor = "changed"
	spending[0].ValueBillions = -1

	assert.Equal(t, 2020, tables.Evolution()[0].Year)
	assert.Equal(t, "Bancos", tables.Holders()[0].Creditor)
	assert.Equal(t, 205.6, tables.Spending()[0].ValueBillions)
}

func TestAccessorsReturnCopies(t *testing.T) {
	tables := New(
		[]EvolutionRecord{{Year: 2018, StockTrillions: 5.2}},
		[]HolderRecord{{Creditor: "Bancos", SharePercent: 10.0}},
		nil,
	)

	got := tables.Evolution()
	got[0].StockTrillions = 99

	assert.Equal(t, 5.2, tables.Evolution()[0].StockTrillions)
}

func TestEvolutionOrderedByYear(t *testing.T) {
	tables := New(
		[]EvolutionRecord{
			{Year: 2022, StockTrillions: 6.7},
			{Year: 2018, StockTrillions: 5.2},
			{Year: 2020, StockTrillions: 6.6},
		},
		nil, nil,
	)

	evolution := tables.Evolution()
	require.Len(t, evolution, 3)
	assert.Equal(t, 2018, evolution[0].Year)
	assert.Equal(t, 2020, evolution[1].Year)
	assert.Equal(t, 2022, evolution[2].Year)
}

func TestSpendingForYearPreservesInputOrder(t *testing.T) {
	tables := New(nil, nil, []SpendingRecord{
		{Function: "Previdência Social", Year: 2018, ValueBillions: 591.0},
		{Function: "Saúde", Year: 2024, ValueBillions: 205.6},
		{Function: "Educação", Year: 2018, ValueBillions: 89.4},
		{Function: "Saúde", Year: 2018, ValueBillions: 108.2},
	})

	slice := tables.SpendingForYear(2018)
	require.Len(t, slice, 3)
	assert.Equal(t, "Previdência Social", slice[0].Function)
	assert.Equal(t, "Educação", slice[1].Function)
	assert.Equal(t, "Saúde", slice[2].Function)
}

func TestSpendingForYearMissingYear(t *testing.T) {
	tables := New(nil, nil, []SpendingRecord{
		{Function: "Saúde", Year: 2018, ValueBillions: 108.2},
	})

	assert.Empty(t, tables.SpendingForYear(2025))
}

func TestSpendingYears(t *testing.T) {
	tables := New(nil, nil, []SpendingRecord{
		{Function: "Saúde", Year: 2024, ValueBillions: 205.6},
		{Function: "Saúde", Year: 2018, ValueBillions: 108.2},
		{Function: "Educação", Year: 2024, ValueBillions: 141.7},
	})

	assert.Equal(t, []int{2018, 2024}, tables.SpendingYears())
}

func TestZeroValueTables(t *testing.T) {
	var tables Tables

	assert.Empty(t, tables.Evolution())
	assert.Empty(t, tables.Holders())
	assert.Empty(t, tables.Spending())
	assert.Empty(t, tables.SpendingYears())
}
