package cmd

import (
	"github.com/rein-hosz/GitSwitch/internal/analytics"
	"github.com/rein-hosz/GitSwitch/internal/apperr"
	"github.com/rein-hosz/GitSwitch/internal/config"
	"github.com/rein-hosz/GitSwitch/internal/platform"
	"github.com/rein-hosz/GitSwitch/internal/profile"
	"github.com/rein-hosz/GitSwitch/internal/ssh"
	"github.com/rein-hosz/GitSwitch/internal/ui"
)

// env bundles the per-invocation state every command needs. The home
// directory is resolved exactly once here and passed into each store.
type env struct {
	Home      string
	Config    *config.Store
	Profiles  *profile.Store
	Analytics *analytics.Store
	SSHConfig *ssh.ConfigManager
}

func newEnv() (*env, error) {
	home, err := platform.Home()
	if err != nil {
		return nil, err
	}
	return &env{
		Home:      home,
		Config:    config.NewStore(home),
		Profiles:  profile.NewStore(home),
		Analytics: analytics.NewStore(home),
		SSHConfig: ssh.NewConfigManager(home),
	}, nil
}

// loadConfig loads the account config and builds a printer honoring its
// color setting.
func (e *env) loadConfig() (*config.Config, *ui.Printer, error) {
	cfg, err := e.Config.Load()
	if err != nil {
		return nil, nil, err
	}
	return cfg, ui.NewPrinter(cfg.Settings.Color), nil
}

// requireAccount resolves an identifier to an account or fails with a
// not-found error that lists a recovery hint.
func requireAccount(cfg *config.Config, identifier string) (config.Account, error) {
	acc, ok := cfg.FindAccount(identifier)
	if !ok {
		return config.Account{}, apperr.NotFound("account '%s' not found, run: git-switch list", identifier)
	}
	return acc, nil
}

// keyPath expands an account's tilde-relative key path against home.
func (e *env) keyPath(acc config.Account) string {
	return platform.ExpandTilde(e.Home, acc.SSHKeyPath)
}
