package repo

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rein-hosz/GitSwitch/internal/apperr"
	"github.com/rein-hosz/GitSwitch/internal/config"
	"github.com/stretchr/testify/require"
)

func mkRepo(t *testing.T, parts ...string) string {
	t.Helper()
	dir := filepath.Join(parts...)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".git"), 0755))
	return dir
}

func testScanner() *Scanner {
	cfg := config.New()
	cfg.Accounts["work"] = config.Account{Name: "work", Email: "w@corp.com", Provider: "github"}
	return NewScanner(cfg)
}

func TestDiscoverFindsRepos(t *testing.T) {
	root := t.TempDir()
	a := mkRepo(t, root, "a")
	b := mkRepo(t, root, "nested", "b")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "plain"), 0755))

	repos, err := testScanner().Discover(root, 0)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{a, b}, repos)
}

func TestDiscoverSkipsHiddenDirs(t *testing.T) {
	root := t.TempDir()
	mkRepo(t, root, ".hidden", "repo")
	visible := mkRepo(t, root, "visible")

	repos, err := testScanner().Discover(root, 0)
	require.NoError(t, err)
	require.Equal(t, []string{visible}, repos)
}

func TestDiscoverRespectsDepth(t *testing.T) {
	root := t.TempDir()
	shallow := mkRepo(t, root, "one")
	mkRepo(t, root, "one-deep", "two", "three")

	repos, err := testScanner().Discover(root, 1)
	require.NoError(t, err)
	require.Equal(t, []string{shallow}, repos)
}

func TestDiscoverDoesNotDescendIntoRepos(t *testing.T) {
	root := t.TempDir()
	outer := mkRepo(t, root, "outer")
	mkRepo(t, outer, "vendored")

	repos, err := testScanner().Discover(root, 0)
	require.NoError(t, err)
	require.Equal(t, []string{outer}, repos)
}

func TestDiscoverMissingRoot(t *testing.T) {
	_, err := testScanner().Discover(filepath.Join(t.TempDir(), "nope"), 0)
	require.Error(t, err)
	require.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestDiscoverFileRoot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	_, err := testScanner().Discover(path, 0)
	require.Error(t, err)
	require.Equal(t, apperr.KindInvalidInput, apperr.KindOf(err))
}

func TestSummarize(t *testing.T) {
	s := testScanner()
	discovered := []Discovered{
		{Path: "/r1", SuggestedAccount: "work", Confidence: 0.9, CurrentUserEmail: "other@x.co"},
		{Path: "/r2", SuggestedAccount: "work", Confidence: 0.6, CurrentUserEmail: "w@corp.com"},
		{Path: "/r3"},
	}

	sum := s.Summarize(discovered)
	require.Equal(t, 3, sum.Total)
	require.Equal(t, 2, sum.WithSuggestion)
	require.Equal(t, 1, sum.HighConfidence)
	require.Equal(t, 1, sum.Mismatched)
}

func TestReport(t *testing.T) {
	s := testScanner()
	now := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
	discovered := []Discovered{
		{
			Path:             "/home/u/projects/app",
			RemoteURL:        "git@github.com:corp/app.git",
			Branch:           "main",
			CurrentUserName:  "John",
			CurrentUserEmail: "w@corp.com",
			SuggestedAccount: "work",
			Confidence:       0.9,
		},
		{Path: "/home/u/projects/empty"},
	}

	report := s.Report(discovered, now)
	require.True(t, strings.HasPrefix(report, "# Git Repository Analysis Report\n"))
	require.Contains(t, report, "Generated: 2024-03-01 12:30 UTC")
	require.Contains(t, report, "- Total repositories: 2")
	require.Contains(t, report, "- **Remote**: git@github.com:corp/app.git")
	require.Contains(t, report, "- **Suggested Account**: work (90% confidence)")
	require.Contains(t, report, "- **Current Config**: Not configured")
}
