package cmd

import (
	"fmt"
	"strings"

	"github.com/rein-hosz/GitSwitch/internal/config"
	"github.com/rein-hosz/GitSwitch/internal/platform"
	"github.com/rein-hosz/GitSwitch/internal/ssh"
	"github.com/rein-hosz/GitSwitch/internal/template"
	"github.com/rein-hosz/GitSwitch/internal/ui"
	"github.com/rein-hosz/GitSwitch/internal/validate"
	"github.com/spf13/cobra"
)

var (
	addFlagUsername string
	addFlagEmail    string
	addFlagSSHKey   string
	addFlagProvider string
	addFlagGroups   []string
	addFlagTemplate string
	addFlagNoKeygen bool
)

var addCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a new Git account",
	Long: `Add a new Git account with username, email, and SSH key. Generates
an SSH key pair and writes a managed Host stanza into your SSH config.`,
	Args: cobra.MaximumNArgs(1),
	Example: `  # Interactive mode
  git-switch add

  # Using flags
  git-switch add work --username john-work --email john@work.com

  # From a provider template
  git-switch add work --template gitlab --username john --email john@work.com`,
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringVar(&addFlagUsername, "username", "", "Username on the hosting provider")
	addCmd.Flags().StringVar(&addFlagEmail, "email", "", "Email address for Git commits")
	addCmd.Flags().StringVar(&addFlagSSHKey, "ssh-key", "", "Path to existing SSH private key")
	addCmd.Flags().StringVar(&addFlagProvider, "provider", "", "Hosting provider (github, gitlab, bitbucket)")
	addCmd.Flags().StringSliceVar(&addFlagGroups, "groups", nil, "Groups this account belongs to")
	addCmd.Flags().StringVar(&addFlagTemplate, "template", "", "Provider template to pre-fill defaults")
	addCmd.Flags().BoolVar(&addFlagNoKeygen, "no-keygen", false, "Skip SSH key generation")
}

func runAdd(cmd *cobra.Command, args []string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	cfg, p, err := e.loadConfig()
	if err != nil {
		return err
	}

	var name, username, email, provider string
	if len(args) == 1 {
		name = args[0]
	}

	if name == "" || addFlagUsername == "" || addFlagEmail == "" {
		name, username, email, provider, err = ui.PromptAccountInfo(name)
		if err != nil {
			return fmt.Errorf("failed to read account info: %w", err)
		}
	} else {
		username = addFlagUsername
		email = addFlagEmail
		provider = addFlagProvider
	}

	if err := validate.AccountName(name); err != nil {
		return err
	}
	if err := validate.Username(username); err != nil {
		return err
	}
	if err := validate.Email(email); err != nil {
		return err
	}
	if err := validate.Provider(provider); err != nil {
		return err
	}
	if provider == "" {
		provider = config.ProviderFromEmail(email)
	}

	acc := config.Account{
		Name:     name,
		Username: username,
		Email:    email,
		Provider: provider,
		Groups:   addFlagGroups,
	}

	if addFlagTemplate != "" {
		t, err := template.Get(addFlagTemplate)
		if err != nil {
			return err
		}
		acc = template.NewAccount(name, username, email, t)
		acc.Groups = addFlagGroups
	}

	switch {
	case addFlagSSHKey != "":
		expanded := platform.ExpandTilde(e.Home, addFlagSSHKey)
		warning, err := validate.SSHKeyFile(expanded)
		if err != nil {
			return err
		}
		if warning != "" {
			p.Warning("%s", warning)
		}
		acc.SSHKeyPath = platform.ContractTilde(e.Home, expanded)
	case acc.SSHKeyPath == "":
		slug := strings.ToLower(strings.ReplaceAll(name, " ", "_"))
		acc.SSHKeyPath = "~/.ssh/id_rsa_" + slug
	}

	if err := cfg.AddAccount(acc); err != nil {
		return err
	}
	if err := e.Config.Save(cfg); err != nil {
		return err
	}

	keyPath := e.keyPath(acc)
	if !addFlagNoKeygen && addFlagSSHKey == "" {
		if err := ssh.GenerateKey(keyPath, email); err != nil {
			return err
		}
		p.Success("SSH key generated: %s", platform.ContractTilde(e.Home, keyPath))
	}

	if err := e.SSHConfig.Upsert(name, keyPath); err != nil {
		return err
	}
	p.Success("Account '%s' added", name)

	if info, err := ssh.ReadPublicKey(keyPath); err == nil {
		p.Printf("\n%s\n", strings.Repeat("-", 70))
		p.Println("Add this public key to your hosting provider:")
		if url := template.KeyUploadURLFor(acc.Provider); url != "" {
			p.Println(url)
		}
		p.Printf("%s\n%s\n%s\n", strings.Repeat("-", 70), info.Line, strings.Repeat("-", 70))
	}

	p.Printf("\nNext: %s\n", p.Cyan("git-switch use "+name))
	p.Printf("SSH host alias: %s\n", ssh.HostAlias(name))
	return nil
}
