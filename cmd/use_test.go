package cmd

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rein-hosz/GitSwitch/internal/config"
	"github.com/rein-hosz/GitSwitch/internal/git"
	"github.com/stretchr/testify/require"
)

// setupTestHome points HOME (and git's global config) at a temp dir and seeds
// it with one account that has no SSH key, so switching touches neither the
// SSH config nor the agent.
func setupTestHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("GIT_CONFIG_GLOBAL", filepath.Join(home, ".gitconfig"))

	cfg := config.New()
	require.NoError(t, cfg.AddAccount(config.Account{
		Name:     "work",
		Username: "john-work",
		Email:    "john@work.com",
	}))
	require.NoError(t, config.NewStore(home).Save(cfg))
	return home
}

func globalGitConfig(t *testing.T, key string) string {
	t.Helper()
	out, err := exec.Command("git", "config", "--global", key).Output()
	require.NoError(t, err)
	return strings.TrimSpace(string(out))
}

func TestUseWritesUsernameAsGitIdentity(t *testing.T) {
	if !git.IsInstalled() {
		t.Skip("git not installed")
	}
	setupTestHome(t)

	require.NoError(t, runUse(useCmd, []string{"work"}))

	require.Equal(t, "john-work", globalGitConfig(t, "user.name"))
	require.Equal(t, "john@work.com", globalGitConfig(t, "user.email"))
}

func TestAccountWritesUsernameAsLocalIdentity(t *testing.T) {
	if !git.IsInstalled() {
		t.Skip("git not installed")
	}
	setupTestHome(t)

	repoDir := t.TempDir()
	require.NoError(t, exec.Command("git", "init", repoDir).Run())
	origDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(repoDir))
	t.Cleanup(func() { os.Chdir(origDir) })

	require.NoError(t, runAccount(accountCmd, []string{"work"}))

	name, email, err := git.LocalIdentity(repoDir)
	require.NoError(t, err)
	require.Equal(t, "john-work", name)
	require.Equal(t, "john@work.com", email)
}
