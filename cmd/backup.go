package cmd

import (
	"github.com/rein-hosz/GitSwitch/internal/backup"
	"github.com/spf13/cobra"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Back up and restore the configuration",
}

var backupCreateCmd = &cobra.Command{
	Use:   "create [path]",
	Short: "Write a backup of the current configuration",
	Long: `Write a backup file. Without a path a timestamped file is created
in the backups directory under the config directory.`,
	Args: cobra.MaximumNArgs(1),
	Example: `  git-switch backup create
  git-switch backup create ~/git-switch.toml`,
	RunE: runBackupCreate,
}

var backupRestoreCmd = &cobra.Command{
	Use:   "restore <path>",
	Short: "Replace the configuration with a backup",
	Long: `Restore the configuration from a backup file. The existing config
is copied aside with a .pre-restore suffix first.`,
	Args:    cobra.ExactArgs(1),
	Example: `  git-switch backup restore ~/.git-switch/backups/git-switch-backup-20240101-120000.toml`,
	RunE:    runBackupRestore,
}

func init() {
	rootCmd.AddCommand(backupCmd)
	backupCmd.AddCommand(backupCreateCmd, backupRestoreCmd)
}

func runBackupCreate(cmd *cobra.Command, args []string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	_, p, err := e.loadConfig()
	if err != nil {
		return err
	}

	path := ""
	if len(args) == 1 {
		path = args[0]
	}

	m := backup.NewManager(e.Home, e.Config)
	written, err := m.Backup(path)
	if err != nil {
		return err
	}
	p.Success("Backup written to %s", written)
	return nil
}

func runBackupRestore(cmd *cobra.Command, args []string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	_, p, err := e.loadConfig()
	if err != nil {
		return err
	}

	m := backup.NewManager(e.Home, e.Config)
	if err := m.Restore(args[0]); err != nil {
		return err
	}
	p.Success("Configuration restored from %s", args[0])
	return nil
}
