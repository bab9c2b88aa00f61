package cmd

import (
	"github.com/rein-hosz/GitSwitch/internal/backup"
	"github.com/spf13/cobra"
)

var exportFlagFormat string

var exportCmd = &cobra.Command{
	Use:   "export <path>",
	Short: "Export the configuration to a file",
	Long: `Export accounts and settings to a portable file. The format is
taken from --format, or inferred from the file extension.`,
	Args: cobra.ExactArgs(1),
	Example: `  git-switch export accounts.json
  git-switch export accounts.yaml --format yaml`,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportFlagFormat, "format", "f", "", "Output format: toml, json, or yaml")
}

func runExport(cmd *cobra.Command, args []string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	cfg, p, err := e.loadConfig()
	if err != nil {
		return err
	}

	path := args[0]
	format := backup.DetectFormat(path)
	if exportFlagFormat != "" {
		format, err = backup.ParseFormat(exportFlagFormat)
		if err != nil {
			return err
		}
	}

	m := backup.NewManager(e.Home, e.Config)
	if err := m.Export(cfg, path, format); err != nil {
		return err
	}
	p.Success("Exported %d accounts to %s (%s)", len(cfg.Accounts), path, format)
	return nil
}
