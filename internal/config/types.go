package config

// CurrentVersion is written into every saved config file.
const CurrentVersion = "2.0"

// Account is a named Git identity with its SSH key and provider tag.
type Account struct {
	Name              string   `toml:"name" json:"name" yaml:"name"`
	Username          string   `toml:"username" json:"username" yaml:"username"`
	Email             string   `toml:"email" json:"email" yaml:"email"`
	SSHKeyPath        string   `toml:"ssh_key_path" json:"ssh_key_path" yaml:"ssh_key_path"` // may be tilde-relative
	AdditionalSSHKeys []string `toml:"additional_ssh_keys,omitempty" json:"additional_ssh_keys,omitempty" yaml:"additional_ssh_keys,omitempty"`
	Provider          string   `toml:"provider,omitempty" json:"provider,omitempty" yaml:"provider,omitempty"` // github, gitlab, bitbucket, other
	Groups            []string `toml:"groups,omitempty" json:"groups,omitempty" yaml:"groups,omitempty"`
}

// Settings holds global behavior toggles.
type Settings struct {
	DefaultProvider string `toml:"default_provider,omitempty" json:"default_provider,omitempty" yaml:"default_provider,omitempty"`
	Color           bool   `toml:"color" json:"color" yaml:"color"`
}

// Config is the full on-disk state: a version, global settings, and the
// account map keyed by account name.
type Config struct {
	Version  string             `toml:"version" json:"version" yaml:"version"`
	Settings Settings           `toml:"settings" json:"settings" yaml:"settings"`
	Accounts map[string]Account `toml:"accounts" json:"accounts" yaml:"accounts"`
}

// legacyConfig is the original JSON schema (~/.git-switch-config.json).
// Accounts carried only name, username, email, and a key path.
type legacyConfig struct {
	Accounts map[string]legacyAccount `json:"accounts"`
}

type legacyAccount struct {
	Name       string `json:"name"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	SSHKeyPath string `json:"ssh_key_path"`
}
