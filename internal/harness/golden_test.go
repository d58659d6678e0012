package harness

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTranscriptLayout(t *testing.T) {
	result := NewResult()
	result.Transcript = []Entry{
		{Question: "top-holder", Kind: "TEXT", Rendered: "Uma frase.\n"},
		{Question: "list-holders", Kind: "LIST", Rendered: "### Título\n\n- **A**: 1\n"},
	}

	out := string(renderTranscript("layout", result))

	assert.Equal(t, "scenario: layout\n"+
		"\n== top-holder [TEXT]\nUma frase.\n"+
		"\n== list-holders [LIST]\n### Título\n\n- **A**: 1\n",
		out)
}

func TestRenderTranscriptTrimsTrailingNewlines(t *testing.T) {
	result := NewResult()
	result.Transcript = []Entry{
		{Question: "q", Kind: "TEXT", Rendered: "texto\n\n\n"},
	}

	out := string(renderTranscript("trim", result))

	assert.Equal(t, "scenario: trim\n\n== q [TEXT]\ntexto\n", out)
}

func TestShippedScenarioGoldens(t *testing.T) {
	matches, err := filepath.Glob(filepath.Join("testdata", "scenarios", "*.yaml"))
	require.NoError(t, err)
	require.NotEmpty(t, matches)

	for _, path := range matches {
		scenario, err := LoadScenario(path)
		require.NoError(t, err)

		t.Run(scenario.Name, func(t *testing.T) {
			require.NoError(t, RunWithGolden(t, scenario))
		})
	}
}
