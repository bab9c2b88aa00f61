package cmd

import (
	"os"

	"github.com/rein-hosz/GitSwitch/internal/apperr"
	"github.com/rein-hosz/GitSwitch/internal/git"
	"github.com/spf13/cobra"
)

var accountCmd = &cobra.Command{
	Use:   "account <account>",
	Short: "Apply an account to the current repository only",
	Long: `Set the account's identity and SSH key on the repository in the
current directory, leaving the global Git config untouched.`,
	Args:    cobra.ExactArgs(1),
	Example: `  git-switch account work`,
	RunE:    runAccount,
}

func init() {
	rootCmd.AddCommand(accountCmd)
}

func runAccount(cmd *cobra.Command, args []string) error {
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

	dir, err := os.Getwd()
	if err != nil {
		return apperr.Wrap(apperr.KindFilesystem, err, "failed to resolve working directory")
	}
	inRepo, err := git.IsRepository(dir)
	if err != nil {
		return err
	}
	if !inRepo {
		return apperr.Invalid("not inside a git repository: %s", dir)
	}

	if err := git.SetLocalIdentity(dir, acc.Username, acc.Email); err != nil {
		return err
	}
	if acc.SSHKeyPath != "" {
		if err := git.SetSSHCommand(dir, e.keyPath(acc)); err != nil {
			return err
		}
	}

	if err := e.Analytics.RecordRepository(acc.Name); err != nil {
		p.Warning("failed to record usage: %v", err)
	}

	p.Success("Repository now uses account '%s' <%s>", acc.Name, acc.Email)
	return nil
}
