package ui

import (
	"github.com/rein-hosz/GitSwitch/internal/config"
)

// PrintAccounts renders the account list, one line per account.
func (p *Printer) PrintAccounts(cfg *config.Config) {
	if len(cfg.Accounts) == 0 {
		p.Info("No accounts configured")
		p.Printf("Use %s to add your first account\n", p.Cyan("git-switch add"))
		return
	}

	p.Header("Configured Accounts")
	for _, name := range cfg.SortedNames() {
		acc := cfg.Accounts[name]
		username := ""
		if acc.Username != "" {
			username = " " + p.Dim(acc.Username)
		}
		provider := ""
		if acc.Provider != "" {
			provider = " (" + p.Cyan(acc.Provider) + ")"
		}
		p.Printf("  %s %s%s <%s>%s\n", p.Green("▶"), acc.Name, username, acc.Email, provider)
	}
	p.Printf("\nUse %s to switch accounts\n", p.Cyan("git-switch use <account>"))
}

// PrintAccountsDetailed renders the account list with every stored field.
func (p *Printer) PrintAccountsDetailed(cfg *config.Config) {
	if len(cfg.Accounts) == 0 {
		p.Info("No accounts configured")
		return
	}

	p.Header("Configured Accounts (Detailed)")
	for _, name := range cfg.SortedNames() {
		acc := cfg.Accounts[name]
		p.Printf("\n%s %s\n", p.Green("▶"), acc.Name)
		p.Printf("  Username: %s\n", acc.Username)
		p.Printf("  Email: %s\n", acc.Email)
		p.Printf("  SSH Key: %s\n", acc.SSHKeyPath)
		if acc.Provider != "" {
			p.Printf("  Provider: %s\n", p.Cyan(acc.Provider))
		}
		if len(acc.Groups) > 0 {
			p.Printf("  Groups: %s\n", joinComma(acc.Groups))
		}
		if len(acc.AdditionalSSHKeys) > 0 {
			p.Printf("  Additional SSH Keys: %d\n", len(acc.AdditionalSSHKeys))
		}
	}
}

// PrintPublicKey renders a public key summary plus the full copyable line.
func (p *Printer) PrintPublicKey(keyType, fingerprint, comment, line string) {
	p.Printf("%s %s\n", p.Dim("Type:"), keyType)
	p.Printf("%s %s\n", p.Dim("Fingerprint:"), fingerprint)
	if comment != "" {
		p.Printf("%s %s\n", p.Dim("Comment:"), comment)
	}
	p.Printf("\n%s\n%s\n", p.Dim("Full key (select all to copy):"), line)
}

func joinComma(items []string) string {
	out := ""
	for i, item := range items {
		if i > 0 {
			out += ", "
		}
		out += item
	}
	return out
}
