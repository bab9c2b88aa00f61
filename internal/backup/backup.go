// Package backup exports and imports the account configuration in portable
// formats, and keeps restore-time safety copies.
package backup

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/rein-hosz/GitSwitch/internal/apperr"
	"github.com/rein-hosz/GitSwitch/internal/config"
	"github.com/rein-hosz/GitSwitch/internal/platform"
	"github.com/rein-hosz/GitSwitch/internal/validate"
	"gopkg.in/yaml.v3"
)

// BackupDirName is the default backup directory inside the config directory.
const BackupDirName = "backups"

// Format selects the serialization used for export and import files.
// It is chosen once at the boundary, never re-inferred per call.
type Format int

const (
	FormatTOML Format = iota
	FormatJSON
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return "toml"
	}
}

// ParseFormat maps a user-supplied format name to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "toml":
		return FormatTOML, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return FormatTOML, apperr.Invalid("unknown format: %q (supported: toml, json, yaml)", s)
}

// DetectFormat picks a format from a file extension, defaulting to TOML.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// Manager handles backup, restore, export, and import against a config store.
type Manager struct {
	Store     *config.Store
	BackupDir string
}

// NewManager builds a backup manager under the given home directory.
func NewManager(home string, store *config.Store) *Manager {
	return &Manager{
		Store:     store,
		BackupDir: filepath.Join(platform.ConfigDir(home), BackupDirName),
	}
}

// Backup writes the current config to path, or to a timestamped file in the
// default backup directory when path is empty. Returns the written path.
func (m *Manager) Backup(path string) (string, error) {
	cfg, err := m.Store.Load()
	if err != nil {
		return "", err
	}

	if path == "" {
		stamp := time.Now().UTC().Format("20060102-150405")
		path = filepath.Join(m.BackupDir, fmt.Sprintf("git-switch-backup-%s.toml", stamp))
	}
	if err := m.Export(cfg, path, DetectFormat(path)); err != nil {
		return "", err
	}
	return path, nil
}

// Restore replaces the current config with the contents of a backup file.
// The existing config is copied aside first so a bad restore is recoverable.
func (m *Manager) Restore(path string) error {
	cfg, err := m.Import(path)
	if err != nil {
		return err
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}

	if _, err := os.Stat(m.Store.Path); err == nil {
		aside := m.Store.Path + ".pre-restore"
		if err := copyFile(m.Store.Path, aside); err != nil {
			return apperr.Wrap(apperr.KindFilesystem, err, "failed to back up current config to %s", aside)
		}
	}
	return m.Store.Save(cfg)
}

// Export serializes cfg to path in the given format.
func (m *Manager) Export(cfg *config.Config, path string, format Format) error {
	if err := platform.EnsureParentDir(path); err != nil {
		return err
	}

	var data []byte
	var err error
	switch format {
	case FormatJSON:
		data, err = json.MarshalIndent(cfg, "", "  ")
	case FormatYAML:
		data, err = yaml.Marshal(cfg)
	default:
		var b strings.Builder
		err = toml.NewEncoder(&b).Encode(cfg)
		data = []byte(b.String())
	}
	if err != nil {
		return apperr.Wrap(apperr.KindFormat, err, "failed to serialize config as %s", format)
	}

	if err := platform.CreateFileSecure(path, data); err != nil {
		return apperr.Wrap(apperr.KindFilesystem, err, "failed to write %s", path)
	}
	return nil
}

// Import deserializes a config from path, picking the format by extension.
func (m *Manager) Import(path string) (*config.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperr.NotFound("import file not found: %s", path)
		}
		return nil, apperr.Wrap(apperr.KindFilesystem, err, "failed to read %s", path)
	}

	var cfg config.Config
	switch DetectFormat(path) {
	case FormatJSON:
		err = json.Unmarshal(data, &cfg)
	case FormatYAML:
		err = yaml.Unmarshal(data, &cfg)
	default:
		err = toml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.KindFormat, err, "failed to parse %s", path)
	}

	if cfg.Accounts == nil {
		cfg.Accounts = map[string]config.Account{}
	}
	for name, acc := range cfg.Accounts {
		if acc.Name == "" {
			acc.Name = name
			cfg.Accounts[name] = acc
		}
	}
	if cfg.Version == "" {
		cfg.Version = config.CurrentVersion
	}
	return &cfg, nil
}

// Merge copies accounts from src into dst. When overwrite is false, existing
// names are kept; the skipped names are returned.
func Merge(dst, src *config.Config, overwrite bool) (skipped []string) {
	for _, name := range src.SortedNames() {
		if _, ok := dst.Accounts[name]; ok && !overwrite {
			skipped = append(skipped, name)
			continue
		}
		dst.Accounts[name] = src.Accounts[name]
	}
	return skipped
}

// validateConfig rejects structurally broken imports before they reach disk.
func validateConfig(cfg *config.Config) error {
	for name, acc := range cfg.Accounts {
		if name == "" {
			return apperr.Invalid("imported config contains an account with an empty name")
		}
		if acc.Email == "" {
			return apperr.Invalid("imported account '%s' has no email", name)
		}
		if err := validate.Email(acc.Email); err != nil {
			return err
		}
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := platform.OpenFileSecure(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, in)
	return err
}
