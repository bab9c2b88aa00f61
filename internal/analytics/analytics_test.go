package analytics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecordUsage(t *testing.T) {
	s := NewStore(t.TempDir())

	require.NoError(t, s.RecordUsage("work"))
	require.NoError(t, s.RecordUsage("work"))
	require.NoError(t, s.RecordUsage("personal"))

	stats, err := s.Load()
	require.NoError(t, err)
	require.Equal(t, 2, stats.AccountUsage["work"])
	require.Equal(t, 1, stats.AccountUsage["personal"])
	require.NotEmpty(t, stats.LastUsed["work"])
}

func TestRecordRepository(t *testing.T) {
	s := NewStore(t.TempDir())

	require.NoError(t, s.RecordRepository("work"))
	require.NoError(t, s.RecordRepository("work"))

	stats, err := s.Load()
	require.NoError(t, err)
	require.Equal(t, 2, stats.RepositoryCount["work"])
	require.Empty(t, stats.AccountUsage)
}

func TestLoadMissingFile(t *testing.T) {
	s := NewStore(t.TempDir())
	stats, err := s.Load()
	require.NoError(t, err)
	require.NotNil(t, stats.AccountUsage)
	require.NotNil(t, stats.LastUsed)
	require.NotNil(t, stats.RepositoryCount)
}

func TestClear(t *testing.T) {
	s := NewStore(t.TempDir())
	require.NoError(t, s.RecordUsage("work"))

	existed, err := s.Clear()
	require.NoError(t, err)
	require.True(t, existed)

	existed, err = s.Clear()
	require.NoError(t, err)
	require.False(t, existed)

	stats, err := s.Load()
	require.NoError(t, err)
	require.Empty(t, stats.AccountUsage)
}

func TestTopUsage(t *testing.T) {
	entries := TopUsage(map[string]int{"b": 2, "a": 2, "c": 5})
	require.Equal(t, []Entry{
		{Account: "c", Count: 5},
		{Account: "a", Count: 2},
		{Account: "b", Count: 2},
	}, entries)
}
