package cmd

import (
	"os"

	"github.com/rein-hosz/GitSwitch/internal/platform"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the git-switch config directory and an empty config",
	RunE:  runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	cfg, p, err := e.loadConfig()
	if err != nil {
		return err
	}

	if _, err := os.Stat(e.Config.Path); err == nil {
		p.Info("Already initialized: %s", platform.ContractTilde(e.Home, e.Config.Path))
		return nil
	}

	if err := e.Config.Save(cfg); err != nil {
		return err
	}
	p.Success("Initialized %s", platform.ContractTilde(e.Home, platform.ConfigDir(e.Home)))
	p.Printf("\nNext: %s\n", p.Cyan("git-switch add"))
	return nil
}
