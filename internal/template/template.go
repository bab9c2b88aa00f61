// Package template ships provider presets that pre-fill new accounts.
package template

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rein-hosz/GitSwitch/internal/apperr"
	"github.com/rein-hosz/GitSwitch/internal/config"
)

// Template describes a hosting provider's SSH endpoints and key conventions.
type Template struct {
	Provider          string
	SSHTestHost       string
	SSHKeyUploadURL   string
	DefaultSSHKeyName string
}

var templates = map[string]Template{
	"github": {
		Provider:          "github",
		SSHTestHost:       "git@github.com",
		SSHKeyUploadURL:   "https://github.com/settings/keys",
		DefaultSSHKeyName: "id_rsa_github",
	},
	"gitlab": {
		Provider:          "gitlab",
		SSHTestHost:       "git@gitlab.com",
		SSHKeyUploadURL:   "https://gitlab.com/-/profile/keys",
		DefaultSSHKeyName: "id_rsa_gitlab",
	},
	"bitbucket": {
		Provider:          "bitbucket",
		SSHTestHost:       "git@bitbucket.org",
		SSHKeyUploadURL:   "https://bitbucket.org/account/settings/ssh-keys/",
		DefaultSSHKeyName: "id_rsa_bitbucket",
	},
	"azure": {
		Provider:          "azure",
		SSHTestHost:       "git@ssh.dev.azure.com",
		SSHKeyUploadURL:   "https://dev.azure.com/_usersSettings/keys",
		DefaultSSHKeyName: "id_rsa_azure",
	},
}

// Get returns the template for a provider name.
func Get(name string) (Template, error) {
	t, ok := templates[strings.ToLower(name)]
	if !ok {
		return Template{}, apperr.NotFound("unknown template: %s", name)
	}
	return t, nil
}

// Names lists available template names in stable order.
func Names() []string {
	names := make([]string, 0, len(templates))
	for name := range templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewAccount builds an account pre-filled from a template.
func NewAccount(name, username, email string, t Template) config.Account {
	return config.Account{
		Name:       name,
		Username:   username,
		Email:      email,
		SSHKeyPath: fmt.Sprintf("~/.ssh/%s", t.DefaultSSHKeyName),
		Provider:   t.Provider,
	}
}

// TestHostFor returns the SSH probe host for a provider, defaulting to
// GitHub when the provider is unknown or empty.
func TestHostFor(provider string) string {
	if t, ok := templates[strings.ToLower(provider)]; ok {
		return t.SSHTestHost
	}
	return templates["github"].SSHTestHost
}

// KeyUploadURLFor returns the provider page where a public key is added, or
// "" when the provider has no preset.
func KeyUploadURLFor(provider string) string {
	if t, ok := templates[strings.ToLower(provider)]; ok {
		return t.SSHKeyUploadURL
	}
	return ""
}
