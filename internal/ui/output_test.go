package ui

import (
	"strings"
	"testing"

	"github.com/rein-hosz/GitSwitch/internal/config"
	"github.com/stretchr/testify/require"
)

func TestGlyphPrefixes(t *testing.T) {
	var b strings.Builder
	p := NewPlainPrinter(&b)

	p.Success("added %s", "work")
	p.Error("boom")
	p.Warning("careful")
	p.Info("note")

	out := b.String()
	require.Contains(t, out, "✓ added work\n")
	require.Contains(t, out, "✗ boom\n")
	require.Contains(t, out, "⚠ careful\n")
	require.Contains(t, out, "ℹ note\n")
}

func TestPlainPrinterHasNoEscapeCodes(t *testing.T) {
	var b strings.Builder
	p := NewPlainPrinter(&b)
	p.Success("%s", p.Cyan("colored"))
	require.NotContains(t, b.String(), "\x1b[")
}

func TestPrintAccountsEmpty(t *testing.T) {
	var b strings.Builder
	p := NewPlainPrinter(&b)

	p.PrintAccounts(config.New())
	require.Contains(t, b.String(), "No accounts configured")
	require.Contains(t, b.String(), "git-switch add")
}

func TestPrintAccountsShowsNameUsernameAndEmail(t *testing.T) {
	cfg := config.New()
	cfg.Accounts["work"] = config.Account{Name: "work", Username: "J Doe", Email: "j@co.com"}

	var b strings.Builder
	NewPlainPrinter(&b).PrintAccounts(cfg)

	out := b.String()
	require.Contains(t, out, "work")
	require.Contains(t, out, "J Doe")
	require.Contains(t, out, "j@co.com")
	require.Contains(t, out, "work J Doe <j@co.com>")
}

func TestPrintAccountsSortedWithProviders(t *testing.T) {
	cfg := config.New()
	cfg.Accounts["zeta"] = config.Account{Name: "zeta", Email: "z@x.co"}
	cfg.Accounts["alpha"] = config.Account{Name: "alpha", Email: "a@x.co", Provider: "github"}

	var b strings.Builder
	NewPlainPrinter(&b).PrintAccounts(cfg)

	out := b.String()
	require.Less(t, strings.Index(out, "alpha"), strings.Index(out, "zeta"))
	require.Contains(t, out, "alpha <a@x.co> (github)")
	require.Contains(t, out, "zeta <z@x.co>")
}

func TestPrintAccountsDetailed(t *testing.T) {
	cfg := config.New()
	cfg.Accounts["work"] = config.Account{
		Name:       "work",
		Username:   "john-work",
		Email:      "j@w.co",
		SSHKeyPath: "~/.ssh/id_rsa_work",
		Groups:     []string{"corp", "oss"},
	}

	var b strings.Builder
	NewPlainPrinter(&b).PrintAccountsDetailed(cfg)

	out := b.String()
	require.Contains(t, out, "Username: john-work")
	require.Contains(t, out, "SSH Key: ~/.ssh/id_rsa_work")
	require.Contains(t, out, "Groups: corp, oss")
}
