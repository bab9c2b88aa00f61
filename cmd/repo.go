package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/rein-hosz/GitSwitch/internal/apperr"
	"github.com/rein-hosz/GitSwitch/internal/platform"
	"github.com/rein-hosz/GitSwitch/internal/repo"
	"github.com/rein-hosz/GitSwitch/internal/ui"
	"github.com/spf13/cobra"
)

var (
	repoFlagDepth  int
	repoFlagDryRun bool
	repoFlagForce  bool
	repoFlagOutput string
)

var repoCmd = &cobra.Command{
	Use:   "repo",
	Short: "Discover repositories and manage their accounts in bulk",
}

var repoScanCmd = &cobra.Command{
	Use:   "scan [path]",
	Short: "Scan a directory tree for Git repositories",
	Long: `Walk a directory tree, find repositories, and suggest the best
matching account for each based on remote URL and committer identity.`,
	Args: cobra.MaximumNArgs(1),
	Example: `  git-switch repo scan ~/projects
  git-switch repo scan --depth 3`,
	RunE: runRepoScan,
}

var repoApplyCmd = &cobra.Command{
	Use:   "apply [path]",
	Short: "Apply suggested accounts to scanned repositories",
	Args:  cobra.MaximumNArgs(1),
	Example: `  git-switch repo apply ~/projects --dry-run
  git-switch repo apply ~/projects --force`,
	RunE: runRepoApply,
}

var repoReportCmd = &cobra.Command{
	Use:     "report [path]",
	Short:   "Write a markdown report of a repository scan",
	Args:    cobra.MaximumNArgs(1),
	Example: `  git-switch repo report ~/projects --output repos.md`,
	RunE:    runRepoReport,
}

var repoConfigureCmd = &cobra.Command{
	Use:     "configure [path]",
	Short:   "Interactively pick which suggestions to apply",
	Args:    cobra.MaximumNArgs(1),
	Example: `  git-switch repo configure ~/projects`,
	RunE:    runRepoConfigure,
}

func init() {
	rootCmd.AddCommand(repoCmd)
	repoCmd.AddCommand(repoScanCmd, repoApplyCmd, repoReportCmd, repoConfigureCmd)

	repoCmd.PersistentFlags().IntVar(&repoFlagDepth, "depth", repo.DefaultMaxDepth, "Maximum directory depth to search")
	repoApplyCmd.Flags().BoolVar(&repoFlagDryRun, "dry-run", false, "Show what would change without writing")
	repoApplyCmd.Flags().BoolVar(&repoFlagForce, "force", false, "Apply even low-confidence suggestions")
	repoReportCmd.Flags().StringVarP(&repoFlagOutput, "output", "o", "", "Write the report to a file instead of stdout")
}

func scanRoot(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	return os.Getwd()
}

func runRepoScan(cmd *cobra.Command, args []string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	cfg, p, err := e.loadConfig()
	if err != nil {
		return err
	}
	root, err := scanRoot(args)
	if err != nil {
		return err
	}

	scanner := repo.NewScanner(cfg)
	p.Printf("Scanning %s...\n", root)
	discovered, err := scanner.Scan(root, repoFlagDepth)
	if err != nil {
		return err
	}
	if len(discovered) == 0 {
		p.Info("No repositories found under %s", root)
		return nil
	}

	p.Header(fmt.Sprintf("Found %d repositories", len(discovered)))
	for _, d := range discovered {
		p.Printf("\n%s %s\n", p.Green("▶"), platform.ContractTilde(e.Home, d.Path))
		if d.RemoteURL != "" {
			p.Printf("  Remote: %s\n", d.RemoteURL)
		}
		if d.CurrentUserEmail != "" {
			p.Printf("  Identity: %s <%s>\n", d.CurrentUserName, d.CurrentUserEmail)
		}
		if d.SuggestedAccount != "" {
			p.Printf("  Suggested: %s (%d%%)\n", p.Cyan(d.SuggestedAccount), int(d.Confidence*100))
		}
	}

	sum := scanner.Summarize(discovered)
	p.Printf("\n%d with suggestions, %d high confidence, %d mismatched\n",
		sum.WithSuggestion, sum.HighConfidence, sum.Mismatched)
	return nil
}

func runRepoApply(cmd *cobra.Command, args []string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	cfg, p, err := e.loadConfig()
	if err != nil {
		return err
	}
	root, err := scanRoot(args)
	if err != nil {
		return err
	}

	scanner := repo.NewScanner(cfg)
	discovered, err := scanner.Scan(root, repoFlagDepth)
	if err != nil {
		return err
	}

	results := scanner.BulkApply(e.Home, discovered, repoFlagDryRun, repoFlagForce)
	if len(results) == 0 {
		p.Info("Nothing to apply")
		return nil
	}

	applied := 0
	for _, r := range results {
		rel := platform.ContractTilde(e.Home, r.Repo.Path)
		switch {
		case repoFlagDryRun:
			p.Printf("would apply %s to %s (%d%%)\n", r.Repo.SuggestedAccount, rel, int(r.Repo.Confidence*100))
		case r.Skipped:
			p.Warning("skipped %s: confidence %d%% below threshold (use --force)", rel, int(r.Repo.Confidence*100))
		case r.Err != nil:
			p.Error("%s: %v", rel, r.Err)
		default:
			p.Success("applied %s to %s", r.Repo.SuggestedAccount, rel)
			applied++
			if err := e.Analytics.RecordRepository(r.Repo.SuggestedAccount); err != nil {
				p.Warning("failed to record usage: %v", err)
			}
		}
	}
	if !repoFlagDryRun {
		p.Printf("\n%d repositories updated\n", applied)
	}
	return nil
}

func runRepoReport(cmd *cobra.Command, args []string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	cfg, p, err := e.loadConfig()
	if err != nil {
		return err
	}
	root, err := scanRoot(args)
	if err != nil {
		return err
	}

	scanner := repo.NewScanner(cfg)
	discovered, err := scanner.Scan(root, repoFlagDepth)
	if err != nil {
		return err
	}

	report := scanner.Report(discovered, time.Now())
	if repoFlagOutput == "" {
		p.Printf("%s", report)
		return nil
	}
	if err := os.WriteFile(repoFlagOutput, []byte(report), 0644); err != nil {
		return apperr.Wrap(apperr.KindFilesystem, err, "failed to write report %s", repoFlagOutput)
	}
	p.Success("Report written to %s", repoFlagOutput)
	return nil
}

func runRepoConfigure(cmd *cobra.Command, args []string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	cfg, p, err := e.loadConfig()
	if err != nil {
		return err
	}
	root, err := scanRoot(args)
	if err != nil {
		return err
	}

	scanner := repo.NewScanner(cfg)
	discovered, err := scanner.Scan(root, repoFlagDepth)
	if err != nil {
		return err
	}

	var candidates []repo.Discovered
	var options []string
	for _, d := range discovered {
		if d.SuggestedAccount == "" {
			continue
		}
		candidates = append(candidates, d)
		options = append(options, fmt.Sprintf("%s -> %s (%d%%)",
			platform.ContractTilde(e.Home, d.Path), d.SuggestedAccount, int(d.Confidence*100)))
	}
	if len(candidates) == 0 {
		p.Info("No repositories with suggestions found")
		return nil
	}

	selected, err := ui.PromptMultiSelect("Select repositories to configure:", options)
	if err != nil {
		return err
	}

	for _, idx := range selected {
		d := candidates[idx]
		if err := scanner.ApplyAccount(e.Home, d.Path, d.SuggestedAccount); err != nil {
			p.Error("%s: %v", d.Path, err)
			continue
		}
		p.Success("applied %s to %s", d.SuggestedAccount, platform.ContractTilde(e.Home, d.Path))
	}
	return nil
}
