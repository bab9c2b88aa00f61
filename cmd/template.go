package cmd

import (
	"github.com/rein-hosz/GitSwitch/internal/template"
	"github.com/spf13/cobra"
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Provider templates for account creation",
}

var templateListCmd = &cobra.Command{
	Use:     "list",
	Short:   "List available provider templates",
	Example: `  git-switch template list`,
	RunE:    runTemplateList,
}

func init() {
	rootCmd.AddCommand(templateCmd)
	templateCmd.AddCommand(templateListCmd)
}

func runTemplateList(cmd *cobra.Command, args []string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	_, p, err := e.loadConfig()
	if err != nil {
		return err
	}

	p.Header("Provider Templates")
	for _, name := range template.Names() {
		t, _ := template.Get(name)
		p.Printf("\n%s %s\n", p.Green("▶"), name)
		p.Printf("  SSH test host: %s\n", t.SSHTestHost)
		p.Printf("  Key upload: %s\n", t.SSHKeyUploadURL)
		p.Printf("  Default key: ~/.ssh/%s\n", t.DefaultSSHKeyName)
	}
	p.Printf("\nUse with: %s\n", p.Cyan("git-switch add <name> --template <template>"))
	return nil
}
