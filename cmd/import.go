package cmd

import (
	"github.com/rein-hosz/GitSwitch/internal/backup"
	"github.com/spf13/cobra"
)

var (
	importFlagMerge     bool
	importFlagOverwrite bool
)

var importCmd = &cobra.Command{
	Use:   "import <path>",
	Short: "Import accounts from an exported file",
	Long: `Import accounts from a TOML, JSON, or YAML export. By default the
import replaces the current accounts; with --merge they are combined and
existing names win unless --overwrite is also given.`,
	Args: cobra.ExactArgs(1),
	Example: `  git-switch import accounts.json
  git-switch import accounts.yaml --merge --overwrite`,
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().BoolVar(&importFlagMerge, "merge", false, "Merge with existing accounts instead of replacing")
	importCmd.Flags().BoolVar(&importFlagOverwrite, "overwrite", false, "With --merge, imported accounts replace existing names")
}

func runImport(cmd *cobra.Command, args []string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	cfg, p, err := e.loadConfig()
	if err != nil {
		return err
	}

	m := backup.NewManager(e.Home, e.Config)
	imported, err := m.Import(args[0])
	if err != nil {
		return err
	}

	if importFlagMerge {
		skipped := backup.Merge(cfg, imported, importFlagOverwrite)
		for _, name := range skipped {
			p.Warning("kept existing account '%s' (use --overwrite to replace)", name)
		}
	} else {
		cfg.Accounts = imported.Accounts
	}

	if err := e.Config.Save(cfg); err != nil {
		return err
	}
	p.Success("Imported %d accounts from %s", len(imported.Accounts), args[0])
	return nil
}
