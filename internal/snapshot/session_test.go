package snapshot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionMemoizesLoad(t *testing.T) {
	s := NewSession(validFS(), nil)

	first, err := s.Tables()
	require.NoError(t, err)
	second, err := s.Tables()
	require.NoError(t, err)

	// Identical triple, not merely equal: the load happened once.
	assert.Same(t, first, second)
}

func TestSessionMemoizesFailure(t *testing.T) {
	fsys := validFS()
	delete(fsys, SourceSpending)
	s := NewSession(fsys, nil)

	_, err1 := s.Tables()
	require.Error(t, err1)
	_, err2 := s.Tables()
	assert.Equal(t, err1, err2)
}

func TestSessionTokensAreUnique(t *testing.T) {
	a := NewSession(validFS(), nil)
	b := NewSession(validFS(), nil)

	assert.NotEmpty(t, a.Token())
	assert.NotEqual(t, a.Token(), b.Token())
}

func TestSessionDirDefaults(t *testing.T) {
	s := NewSessionDir("", nil)

	tables, err := s.Tables()
	require.NoError(t, err)
	assert.Len(t, tables.Evolution(), 7)
}

func TestSessionsDoNotShareState(t *testing.T) {
	good := NewSession(validFS(), nil)
	broken := validFS()
	delete(broken, SourceEvolution)
	bad := NewSession(broken, nil)

	_, badErr := bad.Tables()
	require.Error(t, badErr)

	tables, err := good.Tables()
	require.NoError(t, err)
	assert.NotNil(t, tables)
}
