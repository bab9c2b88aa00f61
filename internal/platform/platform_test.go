package platform

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExpandTilde(t *testing.T) {
	home := "/home/u"
	if runtime.GOOS == "windows" {
		home = `C:\Users\u`
	}

	require.Equal(t, filepath.Join(home, ".ssh", "key"), ExpandTilde(home, "~/.ssh/key"))
	require.Equal(t, home, ExpandTilde(home, "~"))
	require.Equal(t, "/abs/path", ExpandTilde(home, "/abs/path"))
	require.Equal(t, "", ExpandTilde(home, ""))
	// ~user expansion is not supported
	require.Equal(t, "~other/key", ExpandTilde(home, "~other/key"))
}

func TestContractTilde(t *testing.T) {
	home := t.TempDir()

	require.Equal(t, "~", ContractTilde(home, home))
	require.Equal(t, "~/.ssh/key", ContractTilde(home, filepath.Join(home, ".ssh", "key")))
	require.Equal(t, "/elsewhere/key", ContractTilde(home, "/elsewhere/key"))
	require.Equal(t, "", ContractTilde(home, ""))
}

func TestConfigPaths(t *testing.T) {
	home := "/home/u"
	require.Equal(t, filepath.Join(home, ".git-switch"), ConfigDir(home))
	require.Equal(t, filepath.Join(home, ".ssh", "config"), SSHConfigPath(home))
}
