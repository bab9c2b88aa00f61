package repo

import (
	"fmt"

	"github.com/rein-hosz/GitSwitch/internal/apperr"
	"github.com/rein-hosz/GitSwitch/internal/detect"
	"github.com/rein-hosz/GitSwitch/internal/git"
	"github.com/rein-hosz/GitSwitch/internal/platform"
)

// ApplyResult reports the outcome of one bulk-apply step.
type ApplyResult struct {
	Repo    Discovered
	Applied bool
	Skipped bool // below the confidence threshold and not forced
	Err     error
}

// BulkApply writes each suggested account into its repository's local config.
// Suggestions below detect.ApplyThreshold are skipped unless force is set.
// In dry-run mode nothing is written and every candidate is reported.
func (s *Scanner) BulkApply(home string, discovered []Discovered, dryRun, force bool) []ApplyResult {
	results := make([]ApplyResult, 0, len(discovered))
	for _, d := range discovered {
		if d.SuggestedAccount == "" {
			continue
		}

		res := ApplyResult{Repo: d}
		if dryRun {
			results = append(results, res)
			continue
		}
		if !force && d.Confidence < detect.ApplyThreshold {
			res.Skipped = true
			results = append(results, res)
			continue
		}

		res.Err = s.ApplyAccount(home, d.Path, d.SuggestedAccount)
		res.Applied = res.Err == nil
		results = append(results, res)
	}
	return results
}

// ApplyAccount sets the named account's identity and SSH command on the
// repository at repoPath.
func (s *Scanner) ApplyAccount(home, repoPath, accountName string) error {
	acc, ok := s.cfg.Accounts[accountName]
	if !ok {
		return apperr.NotFound("account '%s' not found", accountName)
	}

	if err := git.SetLocalIdentity(repoPath, acc.Name, acc.Email); err != nil {
		return fmt.Errorf("failed to set local identity: %w", err)
	}
	if acc.SSHKeyPath != "" {
		keyPath := platform.ExpandTilde(home, acc.SSHKeyPath)
		if err := git.SetSSHCommand(repoPath, keyPath); err != nil {
			return fmt.Errorf("failed to set SSH command: %w", err)
		}
	}
	return nil
}
