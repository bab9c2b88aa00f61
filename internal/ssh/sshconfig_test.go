package ssh

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) *ConfigManager {
	t.Helper()
	return &ConfigManager{Path: filepath.Join(t.TempDir(), "config")}
}

func TestHostAlias(t *testing.T) {
	require.Equal(t, "github.com-work", HostAlias("work"))
	require.Equal(t, "github.com-my_company", HostAlias("My Company"))
}

func TestUpsertWritesStanza(t *testing.T) {
	m := newTestManager(t)

	require.NoError(t, m.Upsert("work", "/home/u/.ssh/id_rsa_work"))

	data, err := os.ReadFile(m.Path)
	require.NoError(t, err)
	require.Equal(t, "\n# work GitHub Account (git-switch managed)\n"+
		"Host github.com-work\n"+
		"  HostName github.com\n"+
		"  User git\n"+
		"  IdentityFile /home/u/.ssh/id_rsa_work\n"+
		"  IdentitiesOnly yes\n", string(data))

	has, err := m.Has("work")
	require.NoError(t, err)
	require.True(t, has)
}

func TestUpsertIsIdempotent(t *testing.T) {
	m := newTestManager(t)

	require.NoError(t, m.Upsert("work", "/home/u/.ssh/id_rsa_work"))
	first, err := os.ReadFile(m.Path)
	require.NoError(t, err)

	require.NoError(t, m.Upsert("work", "/home/u/.ssh/id_rsa_work"))
	second, err := os.ReadFile(m.Path)
	require.NoError(t, err)

	require.Equal(t, string(first), string(second))
}

func TestRemoveDeletesOnlyOwnStanza(t *testing.T) {
	m := newTestManager(t)

	require.NoError(t, m.Upsert("alpha", "/k/a"))
	require.NoError(t, m.Upsert("beta", "/k/b"))
	require.NoError(t, m.Upsert("gamma", "/k/c"))

	require.NoError(t, m.Remove("beta"))

	has, err := m.Has("beta")
	require.NoError(t, err)
	require.False(t, has)

	for _, name := range []string{"alpha", "gamma"} {
		has, err := m.Has(name)
		require.NoError(t, err)
		require.True(t, has, "stanza for %s should survive", name)
	}
}

func TestRemoveLeavesForeignContentAlone(t *testing.T) {
	m := newTestManager(t)
	foreign := "Host myserver\n  HostName example.com\n  User admin\n"
	require.NoError(t, os.WriteFile(m.Path, []byte(foreign), 0600))

	require.NoError(t, m.Upsert("work", "/k/w"))
	require.NoError(t, m.Remove("work"))

	data, err := os.ReadFile(m.Path)
	require.NoError(t, err)
	require.Equal(t, foreign, string(data))
}

func TestRemoveIsIdempotent(t *testing.T) {
	m := newTestManager(t)

	require.NoError(t, m.Upsert("work", "/k/w"))
	require.NoError(t, m.Remove("work"))

	before, err := os.ReadFile(m.Path)
	require.NoError(t, err)

	require.NoError(t, m.Remove("work"))
	after, err := os.ReadFile(m.Path)
	require.NoError(t, err)
	require.Equal(t, string(before), string(after))
}

func TestRemoveMissingFileIsNoOp(t *testing.T) {
	m := newTestManager(t)
	require.NoError(t, m.Remove("ghost"))
	_, err := os.Stat(m.Path)
	require.True(t, os.IsNotExist(err))
}

func TestRemoveDoesNotMatchAliasPrefix(t *testing.T) {
	m := newTestManager(t)

	require.NoError(t, m.Upsert("work", "/k/w"))
	require.NoError(t, m.Upsert("work2", "/k/w2"))

	require.NoError(t, m.Remove("work"))

	has, err := m.Has("work2")
	require.NoError(t, err)
	require.True(t, has)
}
