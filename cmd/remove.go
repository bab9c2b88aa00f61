package cmd

import (
	"os"

	"github.com/rein-hosz/GitSwitch/internal/platform"
	"github.com/rein-hosz/GitSwitch/internal/ui"
	"github.com/spf13/cobra"
)

var (
	removeFlagYes        bool
	removeFlagDeleteKeys bool
)

var removeCmd = &cobra.Command{
	Use:     "remove <account>",
	Aliases: []string{"rm", "delete"},
	Short:   "Remove an account",
	Long: `Remove an account from the config and delete its managed SSH config
stanza. Key files are kept unless --delete-keys is given.`,
	Args: cobra.ExactArgs(1),
	Example: `  git-switch remove old-account
  git-switch remove old-account --yes --delete-keys`,
	RunE: runRemove,
}

func init() {
	rootCmd.AddCommand(removeCmd)
	removeCmd.Flags().BoolVarP(&removeFlagYes, "yes", "y", false, "Skip the confirmation prompt")
	removeCmd.Flags().BoolVar(&removeFlagDeleteKeys, "delete-keys", false, "Also delete the account's SSH key files")
}

func runRemove(cmd *cobra.Command, args []string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	cfg, p, err := e.loadConfig()
	if err != nil {
		return err
	}

	name := args[0]
	acc, err := requireAccount(cfg, name)
	if err != nil {
		return err
	}

	if !removeFlagYes {
		confirmed, err := ui.PromptConfirm("Remove account '" + acc.Name + "'?")
		if err != nil {
			return err
		}
		if !confirmed {
			p.Info("Aborted")
			return nil
		}
	}

	if _, err := cfg.RemoveAccount(acc.Name); err != nil {
		return err
	}
	if err := e.Config.Save(cfg); err != nil {
		return err
	}

	if err := e.SSHConfig.Remove(acc.Name); err != nil {
		p.Warning("failed to clean SSH config: %v", err)
	}

	if removeFlagDeleteKeys && acc.SSHKeyPath != "" {
		keyPath := platform.ExpandTilde(e.Home, acc.SSHKeyPath)
		for _, path := range []string{keyPath, keyPath + ".pub"} {
			if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
				p.Warning("failed to delete %s: %v", path, err)
			}
		}
	}

	p.Success("Account '%s' removed", acc.Name)
	return nil
}
