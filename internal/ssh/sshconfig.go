// Package ssh manages per-account Host stanzas in the user's SSH client
// config, key generation, agent loading, and auth probing.
package ssh

import (
	"fmt"
	"os"
	"strings"

	"github.com/rein-hosz/GitSwitch/internal/apperr"
	"github.com/rein-hosz/GitSwitch/internal/platform"
)

const managedSuffix = "(git-switch managed)"

// ConfigManager maintains one managed Host stanza per account in the SSH
// config file at Path. Stanzas belonging to the user or other tools are
// never touched.
type ConfigManager struct {
	Path string
}

// NewConfigManager returns a manager for the SSH config under the given home.
func NewConfigManager(home string) *ConfigManager {
	return &ConfigManager{Path: platform.SSHConfigPath(home)}
}

// HostAlias derives the deterministic Host token for an account name:
// lowercased, spaces replaced with underscores, prefixed with the host.
func HostAlias(accountName string) string {
	return "github.com-" + strings.ToLower(strings.ReplaceAll(accountName, " ", "_"))
}

// commentMarker is the managed-ownership line written above each stanza.
func commentMarker(accountName string) string {
	return fmt.Sprintf("# %s GitHub Account %s", accountName, managedSuffix)
}

// Upsert appends a managed stanza for the account unless one already exists.
// Running it twice with the same inputs leaves the file unchanged after the
// first run. The file and its parent directory are created when missing.
func (m *ConfigManager) Upsert(accountName, identityFile string) error {
	if err := platform.EnsureParentDir(m.Path); err != nil {
		return err
	}

	content, err := m.read()
	if err != nil {
		return err
	}

	alias := HostAlias(accountName)
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) == "Host "+alias {
			return nil // already managed
		}
	}

	var stanza strings.Builder
	stanza.WriteString("\n")
	stanza.WriteString(commentMarker(accountName) + "\n")
	stanza.WriteString("Host " + alias + "\n")
	stanza.WriteString("  HostName github.com\n")
	stanza.WriteString("  User git\n")
	stanza.WriteString("  IdentityFile " + platform.NormalizePathForSSHConfig(identityFile) + "\n")
	stanza.WriteString("  IdentitiesOnly yes\n")

	if err := platform.CreateFileSecure(m.Path, []byte(content+stanza.String())); err != nil {
		return apperr.Wrap(apperr.KindFilesystem, err, "failed to write SSH config %s", m.Path)
	}
	return nil
}

// Remove deletes the managed stanza for the account. The block starts at the
// managed comment or the Host line and ends at the next line starting a Host
// declaration or a top-level comment, or at end of file. A missing stanza is
// a successful no-op. This is a line heuristic, not an ssh_config parser: an
// indented comment inside a foreign stanza is treated as a block boundary.
func (m *ConfigManager) Remove(accountName string) error {
	if _, err := os.Stat(m.Path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return apperr.Wrap(apperr.KindFilesystem, err, "failed to read SSH config %s", m.Path)
	}

	content, err := m.read()
	if err != nil {
		return err
	}

	hostMarker := "Host " + HostAlias(accountName)
	comment := commentMarker(accountName)

	lines := strings.Split(content, "\n")
	kept := make([]string, 0, len(lines))
	inBlock := false

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == comment || trimmed == hostMarker:
			inBlock = true
		case inBlock && (strings.HasPrefix(trimmed, "Host ") || strings.HasPrefix(trimmed, "# ")):
			inBlock = false
			kept = append(kept, line)
		case !inBlock:
			kept = append(kept, line)
		}
	}

	newContent := strings.Join(kept, "\n")
	if newContent == content {
		return nil
	}

	if err := platform.CreateFileSecure(m.Path, []byte(newContent)); err != nil {
		return apperr.Wrap(apperr.KindFilesystem, err, "failed to write SSH config %s", m.Path)
	}
	return nil
}

// Has reports whether a managed stanza exists for the account.
func (m *ConfigManager) Has(accountName string) (bool, error) {
	content, err := m.read()
	if err != nil {
		return false, err
	}
	alias := HostAlias(accountName)
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) == "Host "+alias {
			return true, nil
		}
	}
	return false, nil
}

func (m *ConfigManager) read() (string, error) {
	data, err := os.ReadFile(m.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", apperr.Wrap(apperr.KindFilesystem, err, "failed to read SSH config %s", m.Path)
	}
	return string(data), nil
}
