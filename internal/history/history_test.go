package history

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "history.db")
	s, err := Open(path)
	require.NoError(t, err)
	return s
}

func TestOpenCreatesParentDirectoryAndMigrates(t *testing.T) {
	s := openTemp(t)
	require.NoError(t, s.Record(Run{Query: `fn:name == "fn1"`, Root: ".", FileCount: 1, MatchCount: 1}))
}

func TestRecentReturnsNewestFirst(t *testing.T) {
	s := openTemp(t)
	require.NoError(t, s.Record(Run{Query: "fn:name", Root: ".", FileCount: 1, MatchCount: 3}))
	require.NoError(t, s.Record(Run{Query: "cls:name", Root: ".", FileCount: 2, MatchCount: 1}))

	runs, err := s.Recent(10)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "cls:name", runs[0].Query)
	assert.Equal(t, "fn:name", runs[1].Query)
}

func TestRecentRespectsLimit(t *testing.T) {
	s := openTemp(t)
	for i := 0; i < 5; i++ {
		require.NoError(t, s.Record(Run{Query: "fn:name", Root: "."}))
	}
	runs, err := s.Recent(2)
	require.NoError(t, err)
	assert.Len(t, runs, 2)
}
