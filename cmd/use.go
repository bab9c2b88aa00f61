package cmd

import (
	"github.com/rein-hosz/GitSwitch/internal/apperr"
	"github.com/rein-hosz/GitSwitch/internal/git"
	"github.com/rein-hosz/GitSwitch/internal/ssh"
	"github.com/spf13/cobra"
)

var useCmd = &cobra.Command{
	Use:   "use <account>",
	Short: "Switch the global Git identity to an account",
	Long: `Switch the global Git identity by account name, username, or email.
Updates git config --global, ensures the SSH host stanza exists, and loads
the account's key into the SSH agent when one is running.`,
	Args: cobra.ExactArgs(1),
	Example: `  git-switch use work
  git-switch use john@work.com`,
	RunE: runUse,
}

func init() {
	rootCmd.AddCommand(useCmd)
}

func runUse(cmd *cobra.Command, args []string) error {
	if !git.IsInstalled() {
		return apperr.New(apperr.KindEnvMissing, "git is not installed")
	}

	e, err := newEnv()
	if err != nil {
		return err
	}
	cfg, p, err := e.loadConfig()
	if err != nil {
		return err
	}

	acc, err := requireAccount(cfg, args[0])
	if err != nil {
		return err
	}

	p.Printf("Switching to: %s <%s>\n", acc.Name, acc.Email)

	if err := git.SetGlobalIdentity(acc.Username, acc.Email); err != nil {
		return err
	}

	keyPath := e.keyPath(acc)
	if acc.SSHKeyPath != "" {
		if err := e.SSHConfig.Upsert(acc.Name, keyPath); err != nil {
			return err
		}
		loaded, err := ssh.AddKeyToAgent(keyPath)
		switch {
		case err != nil:
			p.Warning("could not load key into agent: %v", err)
		case !loaded:
			p.Warning("SSH agent unavailable, key not loaded")
		}
	}

	// Usage tracking is best-effort, never fails the switch.
	if err := e.Analytics.RecordUsage(acc.Name); err != nil {
		p.Warning("failed to record usage: %v", err)
	}

	p.Success("Switched to account '%s'", acc.Name)
	return nil
}
