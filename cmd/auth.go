package cmd

import (
	"github.com/rein-hosz/GitSwitch/internal/ssh"
	"github.com/rein-hosz/GitSwitch/internal/template"
	"github.com/spf13/cobra"
)

var authTestCmd = &cobra.Command{
	Use:   "auth-test [account]",
	Short: "Test SSH authentication against the hosting provider",
	Long: `Probe SSH authentication with ssh -T. With no argument every
account is tested; otherwise only the named account.`,
	Args: cobra.MaximumNArgs(1),
	Example: `  git-switch auth-test
  git-switch auth-test work`,
	RunE: runAuthTest,
}

func init() {
	rootCmd.AddCommand(authTestCmd)
}

func runAuthTest(cmd *cobra.Command, args []string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	cfg, p, err := e.loadConfig()
	if err != nil {
		return err
	}

	names := cfg.SortedNames()
	if len(args) == 1 {
		acc, err := requireAccount(cfg, args[0])
		if err != nil {
			return err
		}
		names = []string{acc.Name}
	}
	if len(names) == 0 {
		p.Info("No accounts configured")
		return nil
	}

	var failed bool
	for _, name := range names {
		acc := cfg.Accounts[name]
		host := template.TestHostFor(acc.Provider)
		p.Printf("Testing %s (%s)...\n", acc.Name, host)
		if err := ssh.TestAuth(host); err != nil {
			p.Error("%s: authentication failed", acc.Name)
			failed = true
			continue
		}
		p.Success("%s: authenticated", acc.Name)
	}

	if failed {
		p.Printf("\nIf a key is new, make sure its public half is uploaded to the provider\n")
	}
	return nil
}
