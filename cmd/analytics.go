package cmd

import (
	"github.com/rein-hosz/GitSwitch/internal/analytics"
	"github.com/spf13/cobra"
)

var analyticsCmd = &cobra.Command{
	Use:   "analytics",
	Short: "Account usage statistics",
}

var analyticsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show per-account usage counters",
	RunE:  runAnalyticsShow,
}

var analyticsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all recorded usage data",
	RunE:  runAnalyticsClear,
}

func init() {
	rootCmd.AddCommand(analyticsCmd)
	analyticsCmd.AddCommand(analyticsShowCmd, analyticsClearCmd)
}

func runAnalyticsShow(cmd *cobra.Command, args []string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	_, p, err := e.loadConfig()
	if err != nil {
		return err
	}

	stats, err := e.Analytics.Load()
	if err != nil {
		return err
	}
	if len(stats.AccountUsage) == 0 && len(stats.RepositoryCount) == 0 {
		p.Info("No usage recorded yet")
		return nil
	}

	p.Header("Account Usage")
	for _, entry := range analytics.TopUsage(stats.AccountUsage) {
		p.Printf("  %s: %d switches", entry.Account, entry.Count)
		if last, ok := stats.LastUsed[entry.Account]; ok {
			p.Printf(" (last: %s)", last)
		}
		p.Printf("\n")
	}

	if len(stats.RepositoryCount) > 0 {
		p.Printf("\n")
		p.Header("Repository Applies")
		for _, entry := range analytics.TopUsage(stats.RepositoryCount) {
			p.Printf("  %s: %d repositories\n", entry.Account, entry.Count)
		}
	}
	return nil
}

func runAnalyticsClear(cmd *cobra.Command, args []string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	_, p, err := e.loadConfig()
	if err != nil {
		return err
	}

	existed, err := e.Analytics.Clear()
	if err != nil {
		return err
	}
	if existed {
		p.Success("Usage data cleared")
	} else {
		p.Info("No usage data to clear")
	}
	return nil
}
