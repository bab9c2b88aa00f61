// Package config persists the git-switch account map. The config is loaded
// fresh per invocation and written back whole on every mutation; there is no
// locking, concurrent invocations can race on the file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rein-hosz/GitSwitch/internal/apperr"
	"github.com/rein-hosz/GitSwitch/internal/platform"
)

const (
	// ConfigFileName is the current TOML config file name inside the
	// git-switch config directory.
	ConfigFileName = "config.toml"

	// LegacyConfigFileName is the old JSON config kept directly under the
	// user's home directory. It is migrated to the TOML file on first load.
	LegacyConfigFileName = ".git-switch-config.json"
)

// Store reads and writes the config at a fixed pair of paths. Paths are
// resolved once at the entry point so nothing below reads the environment.
type Store struct {
	Path       string // current TOML config
	LegacyPath string // old JSON config, migrated when Path is absent
}

// NewStore builds a store rooted at the given home directory.
func NewStore(home string) *Store {
	return &Store{
		Path:       filepath.Join(platform.ConfigDir(home), ConfigFileName),
		LegacyPath: filepath.Join(home, LegacyConfigFileName),
	}
}

// New creates an empty config.
func New() *Config {
	return &Config{
		Version:  CurrentVersion,
		Settings: Settings{Color: true},
		Accounts: map[string]Account{},
	}
}

// Load reads the config. A missing file yields an empty config, not an
// error. If only the legacy JSON config exists it is migrated to the current
// schema and saved before being returned.
func (s *Store) Load() (*Config, error) {
	if _, err := os.Stat(s.Path); err != nil {
		if !os.IsNotExist(err) {
			return nil, apperr.Wrap(apperr.KindFilesystem, err, "failed to read config %s", s.Path)
		}
		migrated, merr := s.migrateLegacy()
		if merr != nil {
			return nil, merr
		}
		if migrated == nil {
			return New(), nil
		}
		return migrated, nil
	}

	var cfg Config
	if _, err := toml.DecodeFile(s.Path, &cfg); err != nil {
		return nil, apperr.Wrap(apperr.KindFormat, err, "failed to decode config %s", s.Path)
	}
	normalize(&cfg)
	return &cfg, nil
}

// Save writes the full config, overwriting any previous content.
func (s *Store) Save(cfg *Config) error {
	if err := platform.EnsureParentDir(s.Path); err != nil {
		return err
	}

	f, err := platform.OpenFileSecure(s.Path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC)
	if err != nil {
		return apperr.Wrap(apperr.KindFilesystem, err, "failed to open config file %s", s.Path)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return apperr.Wrap(apperr.KindFormat, err, "failed to encode config")
	}
	return nil
}

// migrateLegacy converts the old JSON config into the current schema.
// Returns nil when there is no legacy file. Migration is a pure widening of
// the old schema: new optional fields get empty defaults and the provider is
// inferred from the email domain. Migrating already-current data never
// happens because the TOML file takes precedence in Load.
func (s *Store) migrateLegacy() (*Config, error) {
	data, err := os.ReadFile(s.LegacyPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, apperr.Wrap(apperr.KindFilesystem, err, "failed to read legacy config %s", s.LegacyPath)
	}

	var legacy legacyConfig
	if err := json.Unmarshal(data, &legacy); err != nil {
		return nil, apperr.Wrap(apperr.KindFormat, err, "failed to parse legacy config %s", s.LegacyPath)
	}

	cfg := New()
	for name, acc := range legacy.Accounts {
		if acc.Name == "" {
			acc.Name = name
		}
		cfg.Accounts[name] = Account{
			Name:       acc.Name,
			Username:   acc.Username,
			Email:      acc.Email,
			SSHKeyPath: acc.SSHKeyPath,
			Provider:   ProviderFromEmail(acc.Email),
		}
	}

	if err := s.Save(cfg); err != nil {
		return nil, fmt.Errorf("failed to save migrated config: %w", err)
	}
	return cfg, nil
}

// normalize fills derived fields after decoding any supported format.
func normalize(cfg *Config) {
	if cfg.Accounts == nil {
		cfg.Accounts = map[string]Account{}
	}
	if cfg.Version == "" {
		cfg.Version = CurrentVersion
	}
	for name, acc := range cfg.Accounts {
		if acc.Name == "" {
			acc.Name = name
			cfg.Accounts[name] = acc
		}
	}
}

// ProviderFromEmail infers a hosting provider from an email domain.
// Returns "" when nothing matches.
func ProviderFromEmail(email string) string {
	switch {
	case strings.Contains(email, "@github.com"), strings.Contains(email, "@users.noreply.github.com"):
		return "github"
	case strings.Contains(email, "@gitlab.com"):
		return "gitlab"
	case strings.Contains(email, "@bitbucket.org"):
		return "bitbucket"
	default:
		return ""
	}
}

// AddAccount inserts a new account. The name must be unused.
func (c *Config) AddAccount(acc Account) error {
	if _, ok := c.Accounts[acc.Name]; ok {
		return apperr.Exists("account '%s' already exists", acc.Name)
	}
	c.Accounts[acc.Name] = acc
	return nil
}

// RemoveAccount deletes an account by name, returning the removed record.
func (c *Config) RemoveAccount(name string) (Account, error) {
	acc, ok := c.Accounts[name]
	if !ok {
		return Account{}, apperr.NotFound("account '%s' not found", name)
	}
	delete(c.Accounts, name)
	return acc, nil
}

// FindAccount resolves an account by name first, then by username or email.
func (c *Config) FindAccount(identifier string) (Account, bool) {
	if acc, ok := c.Accounts[identifier]; ok {
		return acc, true
	}
	for _, name := range c.SortedNames() {
		acc := c.Accounts[name]
		if acc.Username == identifier || acc.Email == identifier {
			return acc, true
		}
	}
	return Account{}, false
}

// FindAccountByEmail returns the account with the exact email, if any.
func (c *Config) FindAccountByEmail(email string) (Account, bool) {
	for _, name := range c.SortedNames() {
		if c.Accounts[name].Email == email {
			return c.Accounts[name], true
		}
	}
	return Account{}, false
}

// SortedNames returns account names in lexicographic order. Map iteration
// order is not stable, and several callers need deterministic output.
func (c *Config) SortedNames() []string {
	names := make([]string, 0, len(c.Accounts))
	for name := range c.Accounts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
