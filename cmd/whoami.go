package cmd

import (
	"os"

	"github.com/rein-hosz/GitSwitch/internal/git"
	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the active Git identity",
	Long: `Show the global Git identity and, when run inside a repository, the
local override and which configured account they belong to.`,
	RunE: runWhoami,
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}

func runWhoami(cmd *cobra.Command, args []string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	cfg, p, err := e.loadConfig()
	if err != nil {
		return err
	}

	name, email, err := git.GlobalIdentity()
	if err != nil {
		return err
	}

	p.Header("Global Identity")
	if name == "" && email == "" {
		p.Info("No global identity configured")
	} else {
		p.Printf("  %s <%s>\n", name, email)
		if acc, ok := cfg.FindAccountByEmail(email); ok {
			p.Printf("  Account: %s\n", p.Cyan(acc.Name))
		}
	}

	dir, err := os.Getwd()
	if err != nil {
		return nil
	}
	inRepo, err := git.IsRepository(dir)
	if err != nil || !inRepo {
		return nil
	}

	localName, localEmail, err := git.LocalIdentity(dir)
	if err != nil || (localName == "" && localEmail == "") {
		return nil
	}

	p.Printf("\n")
	p.Header("Repository Override")
	p.Printf("  %s <%s>\n", localName, localEmail)
	if acc, ok := cfg.FindAccountByEmail(localEmail); ok {
		p.Printf("  Account: %s\n", p.Cyan(acc.Name))
	}
	return nil
}
