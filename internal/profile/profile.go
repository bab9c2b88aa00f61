// Package profile groups accounts into named contexts that switch together.
package profile

import (
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/rein-hosz/GitSwitch/internal/apperr"
	"github.com/rein-hosz/GitSwitch/internal/config"
	"github.com/rein-hosz/GitSwitch/internal/platform"
)

// FileName is the profiles file inside the git-switch config directory.
const FileName = "profiles.toml"

// Profile is a named group of accounts with an optional default.
type Profile struct {
	Name           string     `toml:"name"`
	Description    string     `toml:"description,omitempty"`
	Accounts       []string   `toml:"accounts"`
	DefaultAccount string     `toml:"default_account,omitempty"`
	CreatedAt      time.Time  `toml:"created_at"`
	LastUsed       *time.Time `toml:"last_used,omitempty"`
}

// Store persists profiles in a TOML file next to the main config.
type Store struct {
	Path string
}

// NewStore builds a profile store under the given home directory.
func NewStore(home string) *Store {
	return &Store{Path: filepath.Join(platform.ConfigDir(home), FileName)}
}

// Load reads all profiles. A missing file yields an empty map.
func (s *Store) Load() (map[string]Profile, error) {
	if _, err := os.Stat(s.Path); err != nil {
		if os.IsNotExist(err) {
			return map[string]Profile{}, nil
		}
		return nil, apperr.Wrap(apperr.KindFilesystem, err, "failed to read profiles %s", s.Path)
	}

	var profiles map[string]Profile
	if _, err := toml.DecodeFile(s.Path, &profiles); err != nil {
		return nil, apperr.Wrap(apperr.KindFormat, err, "failed to decode profiles %s", s.Path)
	}
	if profiles == nil {
		profiles = map[string]Profile{}
	}
	return profiles, nil
}

// Save writes all profiles, overwriting previous content.
func (s *Store) Save(profiles map[string]Profile) error {
	if err := platform.EnsureParentDir(s.Path); err != nil {
		return err
	}
	f, err := platform.OpenFileSecure(s.Path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC)
	if err != nil {
		return apperr.Wrap(apperr.KindFilesystem, err, "failed to open profiles file %s", s.Path)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(profiles); err != nil {
		return apperr.Wrap(apperr.KindFormat, err, "failed to encode profiles")
	}
	return nil
}

// Create adds a new profile after validating every referenced account exists
// and the default (if any) belongs to the profile.
func (s *Store) Create(cfg *config.Config, name, description string, accounts []string, defaultAccount string) error {
	profiles, err := s.Load()
	if err != nil {
		return err
	}
	if _, ok := profiles[name]; ok {
		return apperr.Exists("profile '%s' already exists", name)
	}

	for _, acc := range accounts {
		if _, ok := cfg.Accounts[acc]; !ok {
			return apperr.NotFound("account '%s' not found", acc)
		}
	}
	if defaultAccount != "" && !contains(accounts, defaultAccount) {
		return apperr.Invalid("default account '%s' is not part of profile '%s'", defaultAccount, name)
	}

	profiles[name] = Profile{
		Name:           name,
		Description:    description,
		Accounts:       accounts,
		DefaultAccount: defaultAccount,
		CreatedAt:      time.Now().UTC(),
	}
	return s.Save(profiles)
}

// Delete removes a profile by name.
func (s *Store) Delete(name string) error {
	profiles, err := s.Load()
	if err != nil {
		return err
	}
	if _, ok := profiles[name]; !ok {
		return apperr.NotFound("profile '%s' not found", name)
	}
	delete(profiles, name)
	return s.Save(profiles)
}

// Update edits a profile in place: description, account membership, and
// default selection. Removing the default account clears it.
func (s *Store) Update(cfg *config.Config, name, description string, add, remove []string, defaultAccount string) error {
	profiles, err := s.Load()
	if err != nil {
		return err
	}
	p, ok := profiles[name]
	if !ok {
		return apperr.NotFound("profile '%s' not found", name)
	}

	if description != "" {
		p.Description = description
	}
	for _, acc := range add {
		if _, ok := cfg.Accounts[acc]; !ok {
			return apperr.NotFound("account '%s' not found", acc)
		}
		if !contains(p.Accounts, acc) {
			p.Accounts = append(p.Accounts, acc)
		}
	}
	for _, acc := range remove {
		p.Accounts = without(p.Accounts, acc)
		if p.DefaultAccount == acc {
			p.DefaultAccount = ""
		}
	}
	if defaultAccount != "" {
		if !contains(p.Accounts, defaultAccount) {
			return apperr.Invalid("default account '%s' is not part of profile '%s'", defaultAccount, name)
		}
		p.DefaultAccount = defaultAccount
	}

	profiles[name] = p
	return s.Save(profiles)
}

// Resolve picks the account to use when switching to a profile: the explicit
// override when given, otherwise the profile default. The chosen account must
// belong to the profile. LastUsed is stamped on success.
func (s *Store) Resolve(name, override string) (string, error) {
	profiles, err := s.Load()
	if err != nil {
		return "", err
	}
	p, ok := profiles[name]
	if !ok {
		return "", apperr.NotFound("profile '%s' not found", name)
	}

	account := override
	if account == "" {
		account = p.DefaultAccount
	}
	if account == "" {
		return "", apperr.Invalid("profile '%s' has no default account, pass one explicitly", name)
	}
	if !contains(p.Accounts, account) {
		return "", apperr.Invalid("account '%s' is not part of profile '%s'", account, name)
	}

	now := time.Now().UTC()
	p.LastUsed = &now
	profiles[name] = p
	if err := s.Save(profiles); err != nil {
		return "", err
	}
	return account, nil
}

// SortedNames returns profile names in lexicographic order.
func SortedNames(profiles map[string]Profile) []string {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

func without(list []string, s string) []string {
	out := list[:0]
	for _, item := range list {
		if item != s {
			out = append(out, item)
		}
	}
	return out
}
