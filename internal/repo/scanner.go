// Package repo discovers Git repositories on disk and drives the bulk
// account-apply workflow over them.
package repo

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rein-hosz/GitSwitch/internal/apperr"
	"github.com/rein-hosz/GitSwitch/internal/config"
	"github.com/rein-hosz/GitSwitch/internal/detect"
	"github.com/rein-hosz/GitSwitch/internal/git"
)

// DefaultMaxDepth bounds the recursive search below the scan root.
const DefaultMaxDepth = 5

// Discovered describes one repository found by a scan. Records live only for
// the duration of the invocation; nothing here is persisted.
type Discovered struct {
	Path             string
	RemoteURL        string
	CurrentUserName  string
	CurrentUserEmail string
	SuggestedAccount string
	Confidence       float64
	LastCommitAuthor string
	Branch           string
}

// Scanner walks a directory tree for repositories and scores each one
// against the configured accounts.
type Scanner struct {
	cfg *config.Config
}

// NewScanner returns a scanner over the given account set.
func NewScanner(cfg *config.Config) *Scanner {
	return &Scanner{cfg: cfg}
}

// Discover finds repositories under root, at most maxDepth levels deep
// (DefaultMaxDepth when maxDepth <= 0). Hidden directories are skipped and
// the walk does not descend into a repository's own subdirectories.
func (s *Scanner) Discover(root string, maxDepth int) ([]string, error) {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperr.NotFound("scan path not found: %s", root)
		}
		return nil, apperr.Wrap(apperr.KindFilesystem, err, "failed to access %s", root)
	}
	if !info.IsDir() {
		return nil, apperr.Invalid("scan path is not a directory: %s", root)
	}

	var repos []string
	walk(root, maxDepth, 0, &repos)
	return repos, nil
}

func walk(dir string, maxDepth, depth int, repos *[]string) {
	if depth > maxDepth {
		return
	}

	if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
		*repos = append(*repos, dir)
		return // don't recurse into a repository
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return // unreadable directories are skipped, not fatal
	}
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		walk(filepath.Join(dir, entry.Name()), maxDepth, depth+1, repos)
	}
}

// Analyze gathers the repository's remote, local identity, and branch, and
// scores the configured accounts against it. Git failures for individual
// fields are treated as absent data, not errors.
func (s *Scanner) Analyze(repoPath string) Discovered {
	d := Discovered{Path: repoPath}

	if url, err := git.RemoteURL(repoPath, "origin"); err == nil {
		d.RemoteURL = url
	}
	if name, email, err := git.LocalIdentity(repoPath); err == nil {
		d.CurrentUserName = name
		d.CurrentUserEmail = email
	}
	if branch, err := git.CurrentBranch(repoPath); err == nil {
		d.Branch = branch
	}
	if author, err := git.LastCommitAuthor(repoPath); err == nil {
		d.LastCommitAuthor = author
	}

	d.SuggestedAccount, d.Confidence = detect.Match(
		d.RemoteURL, d.CurrentUserEmail, d.CurrentUserName, s.cfg)
	return d
}

// Scan is Discover followed by Analyze on every hit.
func (s *Scanner) Scan(root string, maxDepth int) ([]Discovered, error) {
	paths, err := s.Discover(root, maxDepth)
	if err != nil {
		return nil, err
	}
	discovered := make([]Discovered, 0, len(paths))
	for _, p := range paths {
		discovered = append(discovered, s.Analyze(p))
	}
	return discovered, nil
}

// Summary aggregates scan results.
type Summary struct {
	Total          int
	WithSuggestion int
	HighConfidence int
	Mismatched     int
}

// Summarize counts suggestions, high-confidence hits, and repositories whose
// current committer email disagrees with the suggested account.
func (s *Scanner) Summarize(discovered []Discovered) Summary {
	var sum Summary
	sum.Total = len(discovered)
	for _, d := range discovered {
		if d.SuggestedAccount == "" {
			continue
		}
		sum.WithSuggestion++
		if d.Confidence > detect.HighConfidence {
			sum.HighConfidence++
		}
		if acc, ok := s.cfg.Accounts[d.SuggestedAccount]; ok {
			if d.CurrentUserEmail != "" && d.CurrentUserEmail != acc.Email {
				sum.Mismatched++
			}
		}
	}
	return sum
}
