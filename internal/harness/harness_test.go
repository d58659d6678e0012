package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int { return &n }

func TestRunPassingScenario(t *testing.T) {
	scenario := &Scenario{
		Name:        "pass",
		Description: "every expect holds",
		Steps: []Step{
			{Ask: "top-holder", Expect: &ExpectClause{
				Kind:     "TEXT",
				Contains: []string{"Fundos de Previdência", "26,1%"},
			}},
			{Ask: "list-holders", Expect: &ExpectClause{
				Kind:  "LIST",
				First: "Fundos de Previdência",
				Count: intPtr(7),
			}},
		},
	}

	result, err := Run(scenario)

	require.NoError(t, err)
	assert.True(t, result.Pass)
	assert.Empty(t, result.Errors)
	require.Len(t, result.Transcript, 2)
	assert.Equal(t, "top-holder", result.Transcript[0].Question)
	assert.Equal(t, "TEXT", result.Transcript[0].Kind)
	assert.Contains(t, result.Transcript[1].Rendered, "### Credores da Dívida")
}

func TestRunKindMismatchFails(t *testing.T) {
	scenario := &Scenario{
		Name:        "kind_mismatch",
		Description: "expects the wrong kind",
		Steps: []Step{
			{Ask: "top-holder", Expect: &ExpectClause{Kind: "LIST"}},
		},
	}

	result, err := Run(scenario)

	require.NoError(t, err)
	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "expected kind LIST, got TEXT")
	assert.Contains(t, result.Errors[0], "steps[0]")
}

func TestRunCollectsEveryViolation(t *testing.T) {
	scenario := &Scenario{
		Name:        "multi_violation",
		Description: "one clause, several violations",
		Steps: []Step{
			{Ask: "list-holders", Expect: &ExpectClause{
				Kind:     "TEXT",
				Contains: []string{"does-not-appear"},
				First:    "Bancos",
				Count:    intPtr(3),
			}},
		},
	}

	result, err := Run(scenario)

	require.NoError(t, err)
	assert.False(t, result.Pass)
	assert.Len(t, result.Errors, 4)
}

func TestRunStepWithoutExpectOnlyTranscribes(t *testing.T) {
	scenario := &Scenario{
		Name:        "no_expect",
		Description: "the step still lands in the transcript",
		Steps: []Step{
			{Ask: "min-debt-year"},
		},
	}

	result, err := Run(scenario)

	require.NoError(t, err)
	assert.True(t, result.Pass)
	require.Len(t, result.Transcript, 1)
	assert.Contains(t, result.Transcript[0].Rendered, "2018")
}

func TestRunUnknownQuestionIsAResultNotAnError(t *testing.T) {
	scenario := &Scenario{
		Name:        "unknown",
		Description: "free text produces a guidance result",
		Steps: []Step{
			{Ask: "anything goes", Expect: &ExpectClause{Kind: "UNKNOWN_QUESTION"}},
		},
	}

	result, err := Run(scenario)

	require.NoError(t, err)
	assert.True(t, result.Pass)
}

func TestRunCustomSnapshotDir(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	write("dados_evolucao_divida.json", `[{"ano": 2030, "valor_trilhoes": 9.9}]`)
	write("dados_detentores_divida.json", `[{"credor": "Bancos", "porcentagem": 100}]`)
	write("dados_gastos_comparativo.json", `[{"funcao": "Saúde", "ano": 2030, "valor_bi": 1.0}]`)

	scenario := &Scenario{
		Name:        "custom_snapshot",
		Description: "answers come from the scenario's own snapshot",
		Snapshots:   dir,
		Steps: []Step{
			{Ask: "max-debt-year", Expect: &ExpectClause{Kind: "TEXT", Contains: []string{"2030"}}},
			{Ask: "top-holder", Expect: &ExpectClause{Kind: "TEXT", Contains: []string{"Bancos"}}},
		},
	}

	result, err := Run(scenario)

	require.NoError(t, err)
	assert.True(t, result.Pass, "errors: %v", result.Errors)
}

func TestRunLoadFailureIsAHarnessError(t *testing.T) {
	scenario := &Scenario{
		Name:        "broken_snapshot",
		Description: "an empty dir has no sources",
		Snapshots:   t.TempDir(),
		Steps: []Step{
			{Ask: "top-holder"},
		},
	}

	_, err := Run(scenario)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load snapshots")
}

func TestShippedScenariosPass(t *testing.T) {
	matches, err := filepath.Glob(filepath.Join("testdata", "scenarios", "*.yaml"))
	require.NoError(t, err)
	require.NotEmpty(t, matches)

	for _, path := range matches {
		scenario, err := LoadScenario(path)
		require.NoError(t, err)

		t.Run(scenario.Name, func(t *testing.T) {
			result, err := Run(scenario)
			require.NoError(t, err)
			assert.True(t, result.Pass, "errors: %v", result.Errors)
		})
	}
}
