package cmd

import (
	"github.com/spf13/cobra"
)

var listFlagDetailed bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configured accounts",
	Example: `  git-switch list
  git-switch list --detailed`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVarP(&listFlagDetailed, "detailed", "d", false, "Show every stored field")
}

func runList(cmd *cobra.Command, args []string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	cfg, p, err := e.loadConfig()
	if err != nil {
		return err
	}

	if listFlagDetailed {
		p.PrintAccountsDetailed(cfg)
	} else {
		p.PrintAccounts(cfg)
	}
	return nil
}
